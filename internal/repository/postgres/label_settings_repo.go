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

type labelSettingsRepo struct {
	db *sqlx.DB
}

// NewLabelSettingsRepo creates a new PostgreSQL-backed LabelSettingsRepository.
func NewLabelSettingsRepo(db *sqlx.DB) port.LabelSettingsRepository {
	return &labelSettingsRepo{db: db}
}

func (r *labelSettingsRepo) Get(ctx context.Context, projectID uuid.UUID) (*domain.LabelSettings, error) {
	var settings domain.LabelSettings
	err := r.db.GetContext(ctx, &settings,
		"SELECT * FROM label_settings WHERE project_id = $1", projectID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("labelSettingsRepo.Get: %w", err)
	}
	return &settings, nil
}

func (r *labelSettingsRepo) Upsert(ctx context.Context, settings *domain.LabelSettings) error {
	settings.UpdatedAt = time.Now().UTC()

	query := `INSERT INTO label_settings
			(project_id, primary_font, secondary_font, font_size_pt, heading_font_size_pt, line_spacing, page_count, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (project_id) DO UPDATE SET
			primary_font = EXCLUDED.primary_font,
			secondary_font = EXCLUDED.secondary_font,
			font_size_pt = EXCLUDED.font_size_pt,
			heading_font_size_pt = EXCLUDED.heading_font_size_pt,
			line_spacing = EXCLUDED.line_spacing,
			page_count = EXCLUDED.page_count,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		settings.ProjectID, settings.PrimaryFont, settings.SecondaryFont,
		settings.FontSizePt, settings.HeadingFontSizePt, settings.LineSpacing,
		settings.PageCount, settings.UpdatedAt)
	if err != nil {
		return fmt.Errorf("labelSettingsRepo.Upsert: %w", err)
	}
	return nil
}
