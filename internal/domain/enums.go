package domain

// FieldType is the semantic category assigned to one line of label text.
type FieldType string

const (
	FieldTypeBasicInfo       FieldType = "basic_info"
	FieldTypeNumberField     FieldType = "number_field"
	FieldTypeDrugName        FieldType = "drug_name"
	FieldTypeNumberOfSheets  FieldType = "number_of_sheets"
	FieldTypeCompanyName     FieldType = "company_name"
	FieldTypeDrugDescription FieldType = "drug_description"
)

// ValidFieldTypes is the closed set of accepted field type values.
var ValidFieldTypes = map[FieldType]bool{
	FieldTypeBasicInfo:       true,
	FieldTypeNumberField:     true,
	FieldTypeDrugName:        true,
	FieldTypeNumberOfSheets:  true,
	FieldTypeCompanyName:     true,
	FieldTypeDrugDescription: true,
}

// ParseFieldType validates and converts a raw string into a FieldType.
func ParseFieldType(s string) (FieldType, error) {
	ft := FieldType(s)
	if !ValidFieldTypes[ft] {
		return "", ErrInvalidFieldType
	}
	return ft, nil
}

// UserRole defines the role hierarchy for the service.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleEditor UserRole = "editor"
)
