package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"labelmedix/internal/classify"
	"labelmedix/internal/domain"
	"labelmedix/internal/port"
)

// CreateKeywordInput is the DTO for creating a keyword.
type CreateKeywordInput struct {
	Keyword   string `json:"keyword" binding:"required"`
	FieldType string `json:"field_type" binding:"required"`
	IsActive  *bool  `json:"is_active"`
}

// UpdateKeywordInput is the DTO for updating a keyword.
type UpdateKeywordInput struct {
	Keyword   *string `json:"keyword"`
	FieldType *string `json:"field_type"`
	IsActive  *bool   `json:"is_active"`
}

// ImportKeywordRow is one row of a JSON batch import.
type ImportKeywordRow struct {
	Keyword   string `json:"keyword" binding:"required"`
	FieldType string `json:"field_type" binding:"required"`
	IsActive  *bool  `json:"is_active"`
}

// ImportResult summarizes a batch import.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// KeywordService manages the editable keyword lists used as classification
// evidence.
type KeywordService interface {
	Create(ctx context.Context, createdBy uuid.UUID, input CreateKeywordInput) (*domain.FieldTypeKeyword, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.FieldTypeKeyword, error)
	List(ctx context.Context, fieldType string, offset, limit int) ([]domain.FieldTypeKeyword, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateKeywordInput) (*domain.FieldTypeKeyword, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ImportRows(ctx context.Context, createdBy uuid.UUID, rows []ImportKeywordRow) (*ImportResult, error)
	ImportWorkbook(ctx context.Context, createdBy uuid.UUID, r io.Reader) (*ImportResult, error)
	ActiveKeywordList(ctx context.Context) (classify.KeywordList, error)
}

type keywordService struct {
	repo port.FieldTypeKeywordRepository
}

// NewKeywordService creates a new KeywordService implementation.
func NewKeywordService(repo port.FieldTypeKeywordRepository) KeywordService {
	return &keywordService{repo: repo}
}

func (s *keywordService) Create(ctx context.Context, createdBy uuid.UUID, input CreateKeywordInput) (*domain.FieldTypeKeyword, error) {
	ft, err := domain.ParseFieldType(input.FieldType)
	if err != nil {
		return nil, err
	}

	keyword := &domain.FieldTypeKeyword{
		Keyword:   strings.TrimSpace(input.Keyword),
		FieldType: ft,
		IsActive:  true,
		CreatedBy: &createdBy,
	}
	if input.IsActive != nil {
		keyword.IsActive = *input.IsActive
	}
	if keyword.Keyword == "" {
		return nil, domain.ErrEmptyImport
	}

	if err := s.repo.Create(ctx, keyword); err != nil {
		return nil, err
	}
	return keyword, nil
}

func (s *keywordService) GetByID(ctx context.Context, id uuid.UUID) (*domain.FieldTypeKeyword, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *keywordService) List(ctx context.Context, fieldType string, offset, limit int) ([]domain.FieldTypeKeyword, int, error) {
	var ftFilter *domain.FieldType
	if fieldType != "" {
		ft, err := domain.ParseFieldType(fieldType)
		if err != nil {
			return nil, 0, err
		}
		ftFilter = &ft
	}
	return s.repo.List(ctx, ftFilter, offset, limit)
}

func (s *keywordService) Update(ctx context.Context, id uuid.UUID, input UpdateKeywordInput) (*domain.FieldTypeKeyword, error) {
	keyword, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Keyword != nil {
		trimmed := strings.TrimSpace(*input.Keyword)
		if trimmed == "" {
			return nil, domain.ErrEmptyImport
		}
		keyword.Keyword = trimmed
	}
	if input.FieldType != nil {
		ft, err := domain.ParseFieldType(*input.FieldType)
		if err != nil {
			return nil, err
		}
		keyword.FieldType = ft
	}
	if input.IsActive != nil {
		keyword.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, keyword); err != nil {
		return nil, err
	}
	return keyword, nil
}

func (s *keywordService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// ImportRows bulk-inserts keywords from a JSON payload. Rows with an unknown
// field type or a blank keyword are skipped, not fatal; duplicates are
// skipped by the repository.
func (s *keywordService) ImportRows(ctx context.Context, createdBy uuid.UUID, rows []ImportKeywordRow) (*ImportResult, error) {
	var keywords []domain.FieldTypeKeyword
	skipped := 0

	for _, row := range rows {
		kw := strings.TrimSpace(row.Keyword)
		ft, err := domain.ParseFieldType(row.FieldType)
		if kw == "" || err != nil {
			skipped++
			continue
		}
		active := true
		if row.IsActive != nil {
			active = *row.IsActive
		}
		keywords = append(keywords, domain.FieldTypeKeyword{
			Keyword:   kw,
			FieldType: ft,
			IsActive:  active,
			CreatedBy: &createdBy,
		})
	}

	if len(keywords) == 0 {
		return nil, domain.ErrEmptyImport
	}

	inserted, err := s.repo.CreateBatch(ctx, keywords)
	if err != nil {
		return nil, err
	}
	skipped += len(keywords) - inserted
	return &ImportResult{Imported: inserted, Skipped: skipped}, nil
}

// ImportWorkbook reads keywords from the first sheet of an Excel workbook.
// Expected columns: keyword, field_type, optional active flag. The first row
// is treated as a header when its first cell does not parse as a keyword row.
func (s *keywordService) ImportWorkbook(ctx context.Context, createdBy uuid.UUID, r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, domain.ErrUnsupportedImport
	}
	defer func() { _ = f.Close() }()

	sheetName := f.GetSheetName(0)
	cells, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("reading workbook rows: %w", err)
	}

	var rows []ImportKeywordRow
	for i, cell := range cells {
		if len(cell) < 2 {
			continue
		}
		kw := strings.TrimSpace(cell[0])
		ftRaw := strings.TrimSpace(strings.ToLower(cell[1]))
		if _, err := domain.ParseFieldType(ftRaw); err != nil {
			// Header row or junk; only tolerate it at the top.
			if i == 0 {
				continue
			}
		}
		row := ImportKeywordRow{Keyword: kw, FieldType: ftRaw}
		if len(cell) >= 3 {
			switch strings.TrimSpace(strings.ToLower(cell[2])) {
			case "false", "0", "no", "inactive":
				inactive := false
				row.IsActive = &inactive
			}
		}
		rows = append(rows, row)
	}

	return s.ImportRows(ctx, createdBy, rows)
}

// ActiveKeywordList returns the active keywords grouped per field type, as a
// deduplicated snapshot for one classification batch.
func (s *keywordService) ActiveKeywordList(ctx context.Context) (classify.KeywordList, error) {
	keywords, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	list := make(classify.KeywordList)
	seen := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		key := string(kw.FieldType) + "\x00" + strings.ToLower(kw.Keyword)
		if seen[key] {
			continue
		}
		seen[key] = true
		list[kw.FieldType] = append(list[kw.FieldType], kw.Keyword)
	}
	return list, nil
}
