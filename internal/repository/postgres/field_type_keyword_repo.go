package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"labelmedix/internal/domain"
	"labelmedix/internal/port"
)

type fieldTypeKeywordRepo struct {
	db *sqlx.DB
}

// NewFieldTypeKeywordRepo creates a new PostgreSQL-backed FieldTypeKeywordRepository.
func NewFieldTypeKeywordRepo(db *sqlx.DB) port.FieldTypeKeywordRepository {
	return &fieldTypeKeywordRepo{db: db}
}

func (r *fieldTypeKeywordRepo) Create(ctx context.Context, keyword *domain.FieldTypeKeyword) error {
	keyword.ID = uuid.New()
	now := time.Now().UTC()
	keyword.CreatedAt = now
	keyword.UpdatedAt = now

	query := `INSERT INTO field_type_keywords (id, keyword, field_type, is_active, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		keyword.ID, keyword.Keyword, keyword.FieldType, keyword.IsActive, keyword.CreatedBy,
		keyword.CreatedAt, keyword.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateKeyword
		}
		return fmt.Errorf("fieldTypeKeywordRepo.Create: %w", err)
	}
	return nil
}

// CreateBatch inserts keywords in bulk, skipping rows that already exist for
// the same (keyword, field_type) pair. Returns the number of rows inserted.
func (r *fieldTypeKeywordRepo) CreateBatch(ctx context.Context, keywords []domain.FieldTypeKeyword) (int, error) {
	if len(keywords) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	valueStrings := make([]string, 0, len(keywords))
	valueArgs := make([]interface{}, 0, len(keywords)*7)

	for i := range keywords {
		kw := &keywords[i]
		kw.ID = uuid.New()
		kw.CreatedAt = now
		kw.UpdatedAt = now
		base := i * 7
		valueStrings = append(valueStrings, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7))
		valueArgs = append(valueArgs,
			kw.ID, kw.Keyword, kw.FieldType, kw.IsActive, kw.CreatedBy, kw.CreatedAt, kw.UpdatedAt)
	}

	query := fmt.Sprintf(
		`INSERT INTO field_type_keywords (id, keyword, field_type, is_active, created_by, created_at, updated_at)
		 VALUES %s
		 ON CONFLICT (keyword, field_type) DO NOTHING`,
		strings.Join(valueStrings, ", "))

	result, err := r.db.ExecContext(ctx, query, valueArgs...)
	if err != nil {
		return 0, fmt.Errorf("fieldTypeKeywordRepo.CreateBatch: %w", err)
	}
	rows, _ := result.RowsAffected()
	return int(rows), nil
}

func (r *fieldTypeKeywordRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.FieldTypeKeyword, error) {
	var keyword domain.FieldTypeKeyword
	err := r.db.GetContext(ctx, &keyword, "SELECT * FROM field_type_keywords WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("fieldTypeKeywordRepo.GetByID: %w", err)
	}
	return &keyword, nil
}

func (r *fieldTypeKeywordRepo) List(ctx context.Context, fieldType *domain.FieldType, offset, limit int) ([]domain.FieldTypeKeyword, int, error) {
	where := ""
	args := []interface{}{}
	if fieldType != nil {
		where = "WHERE field_type = $1"
		args = append(args, *fieldType)
	}

	var total int
	err := r.db.GetContext(ctx, &total,
		fmt.Sprintf("SELECT COUNT(*) FROM field_type_keywords %s", where), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("fieldTypeKeywordRepo.List count: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT * FROM field_type_keywords %s ORDER BY field_type, keyword LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var keywords []domain.FieldTypeKeyword
	err = r.db.SelectContext(ctx, &keywords, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("fieldTypeKeywordRepo.List: %w", err)
	}
	return keywords, total, nil
}

func (r *fieldTypeKeywordRepo) ListActive(ctx context.Context) ([]domain.FieldTypeKeyword, error) {
	var keywords []domain.FieldTypeKeyword
	err := r.db.SelectContext(ctx, &keywords,
		"SELECT * FROM field_type_keywords WHERE is_active ORDER BY field_type, keyword")
	if err != nil {
		return nil, fmt.Errorf("fieldTypeKeywordRepo.ListActive: %w", err)
	}
	return keywords, nil
}

func (r *fieldTypeKeywordRepo) Update(ctx context.Context, keyword *domain.FieldTypeKeyword) error {
	keyword.UpdatedAt = time.Now().UTC()
	query := `UPDATE field_type_keywords SET keyword = $1, field_type = $2, is_active = $3, updated_at = $4 WHERE id = $5`
	result, err := r.db.ExecContext(ctx, query,
		keyword.Keyword, keyword.FieldType, keyword.IsActive, keyword.UpdatedAt, keyword.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateKeyword
		}
		return fmt.Errorf("fieldTypeKeywordRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *fieldTypeKeywordRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM field_type_keywords WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("fieldTypeKeywordRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
