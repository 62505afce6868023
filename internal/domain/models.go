package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated user of the service.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Project represents one label project, usually a single drug product.
type Project struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	CreatedBy   uuid.UUID `db:"created_by" json:"created_by"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// TranslationGroup holds one country's translation of a project's label text.
type TranslationGroup struct {
	ID          uuid.UUID `db:"id" json:"id"`
	ProjectID   uuid.UUID `db:"project_id" json:"project_id"`
	CountryCode string    `db:"country_code" json:"country_code"`
	Language    string    `db:"language" json:"language"`
	Sequence    int       `db:"sequence" json:"sequence"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// TranslationItem is a single line of label text within a group.
type TranslationItem struct {
	ID             uuid.UUID `db:"id" json:"id"`
	GroupID        uuid.UUID `db:"group_id" json:"group_id"`
	Sequence       int       `db:"sequence" json:"sequence"`
	SourceText     string    `db:"source_text" json:"source_text"`
	TranslatedText string    `db:"translated_text" json:"translated_text"`
	FieldType      FieldType `db:"field_type" json:"field_type"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// FieldTypeKeyword is one editable keyword used as classification evidence.
// CreatedBy is nil for rows loaded from seed data.
type FieldTypeKeyword struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	Keyword   string     `db:"keyword" json:"keyword"`
	FieldType FieldType  `db:"field_type" json:"field_type"`
	IsActive  bool       `db:"is_active" json:"is_active"`
	CreatedBy *uuid.UUID `db:"created_by" json:"created_by,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

// LabelSettings holds per-project layout and font configuration.
type LabelSettings struct {
	ProjectID         uuid.UUID `db:"project_id" json:"project_id"`
	PrimaryFont       string    `db:"primary_font" json:"primary_font"`
	SecondaryFont     string    `db:"secondary_font" json:"secondary_font"`
	FontSizePt        float64   `db:"font_size_pt" json:"font_size_pt"`
	HeadingFontSizePt float64   `db:"heading_font_size_pt" json:"heading_font_size_pt"`
	LineSpacing       float64   `db:"line_spacing" json:"line_spacing"`
	PageCount         int       `db:"page_count" json:"page_count"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}
