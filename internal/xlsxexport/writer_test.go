package xlsxexport_test

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"labelmedix/internal/domain"
	"labelmedix/internal/xlsxexport"
)

func TestBuild_OneSheetPerGroup(t *testing.T) {
	project := domain.Project{Name: "Paracetamol EU"}
	sheets := []xlsxexport.GroupSheet{
		{
			Group: domain.TranslationGroup{CountryCode: "de", Language: "German"},
			Items: []domain.TranslationItem{
				{Sequence: 1, SourceText: "Paracetamol", TranslatedText: "Paracetamol", FieldType: domain.FieldTypeDrugName},
				{Sequence: 2, SourceText: "Lot No:", TranslatedText: "Ch.-B.:", FieldType: domain.FieldTypeNumberField},
			},
		},
		{
			Group: domain.TranslationGroup{CountryCode: "cn", Language: "Chinese"},
			Items: []domain.TranslationItem{
				{Sequence: 1, SourceText: "Paracetamol", TranslatedText: "对乙酰氨基酚", FieldType: domain.FieldTypeDrugName},
			},
		},
	}

	data, err := xlsxexport.Build(project, sheets)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	names := f.GetSheetList()
	require.Len(t, names, 2)
	assert.Equal(t, "DE - German", names[0])
	assert.Equal(t, "CN - Chinese", names[1])

	rows, err := f.GetRows("DE - German")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Seq", "Source Text", "Translated Text", "Field Type"}, rows[0])
	assert.Equal(t, []string{"1", "Paracetamol", "Paracetamol", "drug_name"}, rows[1])
	assert.Equal(t, []string{"2", "Lot No:", "Ch.-B.:", "number_field"}, rows[2])

	cnRows, err := f.GetRows("CN - Chinese")
	require.NoError(t, err)
	require.Len(t, cnRows, 2)
	assert.Equal(t, "对乙酰氨基酚", cnRows[1][2])
}

func TestBuild_TruncatesLongSheetNames(t *testing.T) {
	sheets := []xlsxexport.GroupSheet{
		{Group: domain.TranslationGroup{CountryCode: "de", Language: strings.Repeat("verylonglanguagename", 3)}},
	}

	data, err := xlsxexport.Build(domain.Project{Name: "p"}, sheets)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	names := f.GetSheetList()
	require.Len(t, names, 1)
	assert.LessOrEqual(t, len(names[0]), 31)
}

func TestBuild_TruncatesOnRuneBoundary(t *testing.T) {
	// A Greek language name long enough to cross the limit mid-character if
	// the cut happened on bytes instead of characters.
	sheets := []xlsxexport.GroupSheet{
		{Group: domain.TranslationGroup{CountryCode: "gr", Language: strings.Repeat("ελληνικά", 5)}},
	}

	data, err := xlsxexport.Build(domain.Project{Name: "p"}, sheets)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	names := f.GetSheetList()
	require.Len(t, names, 1)
	assert.True(t, utf8.ValidString(names[0]))
	assert.LessOrEqual(t, utf8.RuneCountInString(names[0]), 31)
}

func TestBuild_DisambiguatesDuplicateSheetNames(t *testing.T) {
	group := domain.TranslationGroup{CountryCode: "de", Language: "German"}
	item := domain.TranslationItem{Sequence: 1, SourceText: "a", FieldType: domain.FieldTypeDrugDescription}
	sheets := []xlsxexport.GroupSheet{
		{Group: group, Items: []domain.TranslationItem{item}},
		{Group: group, Items: []domain.TranslationItem{item}},
		{Group: group, Items: []domain.TranslationItem{item}},
	}

	data, err := xlsxexport.Build(domain.Project{Name: "p"}, sheets)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	names := f.GetSheetList()
	require.Len(t, names, 3)
	assert.Equal(t, "DE - German", names[0])
	assert.Equal(t, "DE - German (2)", names[1])
	assert.Equal(t, "DE - German (3)", names[2])
}

func TestBuild_NoGroups(t *testing.T) {
	data, err := xlsxexport.Build(domain.Project{Name: "empty"}, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	// The workbook is still valid, just the default empty sheet.
	assert.Len(t, f.GetSheetList(), 1)
}
