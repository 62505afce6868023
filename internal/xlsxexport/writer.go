// Package xlsxexport builds Excel workbooks from a project's translations,
// one sheet per country group.
package xlsxexport

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"labelmedix/internal/domain"
)

var header = []string{"Seq", "Source Text", "Translated Text", "Field Type"}

// GroupSheet pairs a translation group with its ordered items.
type GroupSheet struct {
	Group domain.TranslationGroup
	Items []domain.TranslationItem
}

// maxSheetName is the sheet name length Excel allows, counted in characters.
const maxSheetName = 31

// sheetName builds a sheet name from the group's country and language.
func sheetName(g domain.TranslationGroup) string {
	name := fmt.Sprintf("%s - %s", strings.ToUpper(g.CountryCode), g.Language)
	return truncateRunes(name, maxSheetName)
}

// truncateRunes shortens s to at most n characters without cutting a
// multi-byte character in half.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// uniqueName disambiguates repeated sheet names with a numeric suffix, since
// two groups can share a country and language. The base is shortened when
// needed so the suffixed name stays within the Excel limit.
func uniqueName(base string, used map[string]bool) string {
	name := base
	for n := 2; used[name]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		name = truncateRunes(base, maxSheetName-len(suffix)) + suffix
	}
	used[name] = true
	return name
}

// Build writes a workbook with one sheet per group and returns the serialized
// file bytes.
func Build(project domain.Project, sheets []GroupSheet) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	used := make(map[string]bool)
	for i, sheet := range sheets {
		name := uniqueName(sheetName(sheet.Group), used)
		if i == 0 {
			// Reuse the default sheet rather than leaving an empty one behind.
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				return nil, fmt.Errorf("renaming sheet: %w", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("adding sheet %q: %w", name, err)
		}

		for col, title := range header {
			cell, err := excelize.CoordinatesToCellName(col+1, 1)
			if err != nil {
				return nil, fmt.Errorf("header cell: %w", err)
			}
			if err := f.SetCellValue(name, cell, title); err != nil {
				return nil, fmt.Errorf("writing header: %w", err)
			}
		}

		for rowIdx, item := range sheet.Items {
			values := []interface{}{item.Sequence, item.SourceText, item.TranslatedText, string(item.FieldType)}
			for col, v := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
				if err != nil {
					return nil, fmt.Errorf("data cell: %w", err)
				}
				if err := f.SetCellValue(name, cell, v); err != nil {
					return nil, fmt.Errorf("writing row %d: %w", rowIdx+2, err)
				}
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("serializing workbook for %q: %w", project.Name, err)
	}
	return buf.Bytes(), nil
}
