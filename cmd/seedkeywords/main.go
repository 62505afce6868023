// Command seedkeywords converts a keyword dictionary Excel file into a SQL
// seed file for the field_type_keywords table.
// Usage: go run ./cmd/seedkeywords [input.xlsx] [output.sql]
// Default input: keywords.xlsx, default output: db/seeds/field_type_keywords.sql
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"labelmedix/internal/domain"
)

const batchSize = 500

type keywordEntry struct {
	keyword   string
	fieldType domain.FieldType
	isActive  bool
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	xlsxPath := "keywords.xlsx"
	outPath := "db/seeds/field_type_keywords.sql"
	if len(os.Args) > 1 {
		xlsxPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		outPath = os.Args[2]
	}

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	entries, err := parseKeywordSheet(f)
	if err != nil {
		return fmt.Errorf("parse keyword sheet: %w", err)
	}
	log.Printf("keyword sheet: %d entries", len(entries))

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	w := func(s string) error { _, werr := fmt.Fprintln(out, s); return werr }

	for _, line := range []string{
		"-- Field type keyword seed data generated from Excel.",
		fmt.Sprintf("-- %d entries in batches of %d.", len(entries), batchSize),
		"-- Run: make seed-keywords",
		"BEGIN;",
		"",
	} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write header: %w", werr)
		}
	}

	for i := 0; i < len(entries); i += batchSize {
		end := i + batchSize
		if end > len(entries) {
			end = len(entries)
		}
		if err := writeBatch(out, entries[i:end]); err != nil {
			return fmt.Errorf("write batch at offset %d: %w", i, err)
		}
	}

	for _, line := range []string{"", "COMMIT;"} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write footer: %w", werr)
		}
	}

	log.Printf("Generated %d entries (%d batches) in %s",
		len(entries), (len(entries)+batchSize-1)/batchSize, outPath)
	return nil
}

// parseKeywordSheet reads the first sheet.
// Columns: A(0)=keyword, B(1)=field type, C(2)=active flag (optional).
// A header row is tolerated at row index 0.
func parseKeywordSheet(f *excelize.File) ([]keywordEntry, error) {
	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var entries []keywordEntry
	for i, row := range rows {
		keyword := strings.TrimSpace(cellVal(row, 0))
		ftRaw := strings.TrimSpace(cellVal(row, 1))
		if keyword == "" || ftRaw == "" {
			continue
		}

		ft, perr := domain.ParseFieldType(strings.ToLower(ftRaw))
		if perr != nil {
			// Skip the header row and anything else unparseable.
			if i == 0 {
				continue
			}
			log.Printf("row %d: skipping unknown field type %q", i+1, ftRaw)
			continue
		}

		key := string(ft) + "\x00" + strings.ToLower(keyword)
		if seen[key] {
			continue
		}
		seen[key] = true

		entries = append(entries, keywordEntry{
			keyword:   keyword,
			fieldType: ft,
			isActive:  parseActive(cellVal(row, 2)),
		})
	}
	return entries, nil
}

func parseActive(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "false", "0", "no", "inactive":
		return false
	}
	return true
}

func writeBatch(out *os.File, batch []keywordEntry) error {
	if len(batch) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("INSERT INTO field_type_keywords (id, keyword, field_type, is_active, created_at, updated_at) VALUES\n")

	for i := range batch {
		e := &batch[i]
		if i > 0 {
			b.WriteString(",\n")
		}
		fmt.Fprintf(&b, "  (gen_random_uuid(), '%s', '%s', %t, now(), now())",
			escapeSQL(e.keyword), e.fieldType, e.isActive)
	}

	b.WriteString("\nON CONFLICT (keyword, field_type) DO NOTHING;\n")

	_, err := out.WriteString(b.String())
	return err
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
