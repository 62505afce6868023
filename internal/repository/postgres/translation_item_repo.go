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

type translationItemRepo struct {
	db *sqlx.DB
}

// NewTranslationItemRepo creates a new PostgreSQL-backed TranslationItemRepository.
func NewTranslationItemRepo(db *sqlx.DB) port.TranslationItemRepository {
	return &translationItemRepo{db: db}
}

func (r *translationItemRepo) CreateBatch(ctx context.Context, items []domain.TranslationItem) error {
	if len(items) == 0 {
		return nil
	}

	now := time.Now().UTC()
	valueStrings := make([]string, 0, len(items))
	valueArgs := make([]interface{}, 0, len(items)*8)

	for i := range items {
		item := &items[i]
		item.ID = uuid.New()
		item.CreatedAt = now
		item.UpdatedAt = now
		base := i * 8
		valueStrings = append(valueStrings, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8))
		valueArgs = append(valueArgs,
			item.ID, item.GroupID, item.Sequence, item.SourceText, item.TranslatedText,
			item.FieldType, item.CreatedAt, item.UpdatedAt)
	}

	query := fmt.Sprintf(
		`INSERT INTO translation_items (id, group_id, sequence, source_text, translated_text, field_type, created_at, updated_at) VALUES %s`,
		strings.Join(valueStrings, ", "))

	_, err := r.db.ExecContext(ctx, query, valueArgs...)
	if err != nil {
		return fmt.Errorf("translationItemRepo.CreateBatch: %w", err)
	}
	return nil
}

func (r *translationItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TranslationItem, error) {
	var item domain.TranslationItem
	err := r.db.GetContext(ctx, &item, "SELECT * FROM translation_items WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("translationItemRepo.GetByID: %w", err)
	}
	return &item, nil
}

func (r *translationItemRepo) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]domain.TranslationItem, error) {
	var items []domain.TranslationItem
	err := r.db.SelectContext(ctx, &items,
		"SELECT * FROM translation_items WHERE group_id = $1 ORDER BY sequence, created_at", groupID)
	if err != nil {
		return nil, fmt.Errorf("translationItemRepo.ListByGroup: %w", err)
	}
	return items, nil
}

func (r *translationItemRepo) Update(ctx context.Context, item *domain.TranslationItem) error {
	item.UpdatedAt = time.Now().UTC()
	query := `UPDATE translation_items
		SET source_text = $1, translated_text = $2, field_type = $3, updated_at = $4
		WHERE id = $5`
	result, err := r.db.ExecContext(ctx, query,
		item.SourceText, item.TranslatedText, item.FieldType, item.UpdatedAt, item.ID)
	if err != nil {
		return fmt.Errorf("translationItemRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateFieldTypes persists re-classification results for a group's items in
// one transaction.
func (r *translationItemRepo) UpdateFieldTypes(ctx context.Context, groupID uuid.UUID, fieldTypes map[uuid.UUID]domain.FieldType) error {
	if len(fieldTypes) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("translationItemRepo.UpdateFieldTypes begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	for id, ft := range fieldTypes {
		_, err = tx.ExecContext(ctx,
			"UPDATE translation_items SET field_type = $1, updated_at = $2 WHERE id = $3 AND group_id = $4",
			ft, now, id, groupID)
		if err != nil {
			return fmt.Errorf("translationItemRepo.UpdateFieldTypes update: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("translationItemRepo.UpdateFieldTypes commit: %w", err)
	}
	return nil
}

func (r *translationItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM translation_items WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("translationItemRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *translationItemRepo) Reorder(ctx context.Context, groupID uuid.UUID, orderedIDs []uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("translationItemRepo.Reorder begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var currentIDs []uuid.UUID
	err = tx.SelectContext(ctx, &currentIDs,
		"SELECT id FROM translation_items WHERE group_id = $1 FOR UPDATE", groupID)
	if err != nil {
		return fmt.Errorf("translationItemRepo.Reorder select: %w", err)
	}
	if !sameIDSet(currentIDs, orderedIDs) {
		return domain.ErrSequenceMismatch
	}

	now := time.Now().UTC()
	for i, id := range orderedIDs {
		_, err = tx.ExecContext(ctx,
			"UPDATE translation_items SET sequence = $1, updated_at = $2 WHERE id = $3 AND group_id = $4",
			i+1, now, id, groupID)
		if err != nil {
			return fmt.Errorf("translationItemRepo.Reorder update: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("translationItemRepo.Reorder commit: %w", err)
	}
	return nil
}
