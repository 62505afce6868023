package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"labelmedix/internal/domain"
	"labelmedix/internal/port"
)

type translationGroupRepo struct {
	db *sqlx.DB
}

// NewTranslationGroupRepo creates a new PostgreSQL-backed TranslationGroupRepository.
func NewTranslationGroupRepo(db *sqlx.DB) port.TranslationGroupRepository {
	return &translationGroupRepo{db: db}
}

func (r *translationGroupRepo) Create(ctx context.Context, group *domain.TranslationGroup) error {
	group.ID = uuid.New()
	now := time.Now().UTC()
	group.CreatedAt = now
	group.UpdatedAt = now

	// New groups append to the end of the project's ordering.
	query := `INSERT INTO translation_groups (id, project_id, country_code, language, sequence, created_at, updated_at)
		VALUES ($1, $2, $3, $4,
			(SELECT COALESCE(MAX(sequence), 0) + 1 FROM translation_groups WHERE project_id = $2),
			$5, $6)
		RETURNING sequence`

	err := r.db.QueryRowxContext(ctx, query,
		group.ID, group.ProjectID, group.CountryCode, group.Language,
		group.CreatedAt, group.UpdatedAt).Scan(&group.Sequence)
	if err != nil {
		return fmt.Errorf("translationGroupRepo.Create: %w", err)
	}
	return nil
}

func (r *translationGroupRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TranslationGroup, error) {
	var group domain.TranslationGroup
	err := r.db.GetContext(ctx, &group, "SELECT * FROM translation_groups WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("translationGroupRepo.GetByID: %w", err)
	}
	return &group, nil
}

func (r *translationGroupRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.TranslationGroup, error) {
	var groups []domain.TranslationGroup
	err := r.db.SelectContext(ctx, &groups,
		"SELECT * FROM translation_groups WHERE project_id = $1 ORDER BY sequence, created_at", projectID)
	if err != nil {
		return nil, fmt.Errorf("translationGroupRepo.ListByProject: %w", err)
	}
	return groups, nil
}

func (r *translationGroupRepo) Update(ctx context.Context, group *domain.TranslationGroup) error {
	group.UpdatedAt = time.Now().UTC()
	query := `UPDATE translation_groups SET country_code = $1, language = $2, updated_at = $3 WHERE id = $4`
	result, err := r.db.ExecContext(ctx, query,
		group.CountryCode, group.Language, group.UpdatedAt, group.ID)
	if err != nil {
		return fmt.Errorf("translationGroupRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *translationGroupRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM translation_groups WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("translationGroupRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *translationGroupRepo) Reorder(ctx context.Context, projectID uuid.UUID, orderedIDs []uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("translationGroupRepo.Reorder begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var currentIDs []uuid.UUID
	err = tx.SelectContext(ctx, &currentIDs,
		"SELECT id FROM translation_groups WHERE project_id = $1 FOR UPDATE", projectID)
	if err != nil {
		return fmt.Errorf("translationGroupRepo.Reorder select: %w", err)
	}
	if !sameIDSet(currentIDs, orderedIDs) {
		return domain.ErrSequenceMismatch
	}

	now := time.Now().UTC()
	for i, id := range orderedIDs {
		_, err = tx.ExecContext(ctx,
			"UPDATE translation_groups SET sequence = $1, updated_at = $2 WHERE id = $3 AND project_id = $4",
			i+1, now, id, projectID)
		if err != nil {
			return fmt.Errorf("translationGroupRepo.Reorder update: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("translationGroupRepo.Reorder commit: %w", err)
	}
	return nil
}
