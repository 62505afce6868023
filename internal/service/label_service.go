package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"labelmedix/internal/config"
	"labelmedix/internal/domain"
	"labelmedix/internal/label"
	"labelmedix/internal/port"
)

// UpdateLabelSettingsInput is the DTO for updating a project's label settings.
type UpdateLabelSettingsInput struct {
	PrimaryFont       *string  `json:"primary_font"`
	SecondaryFont     *string  `json:"secondary_font"`
	FontSizePt        *float64 `json:"font_size_pt"`
	HeadingFontSizePt *float64 `json:"heading_font_size_pt"`
	LineSpacing       *float64 `json:"line_spacing"`
	PageCount         *int     `json:"page_count"`
}

// LabelService manages per-project label settings and builds render-ready
// layouts for translation groups.
type LabelService interface {
	GetSettings(ctx context.Context, projectID uuid.UUID) (*domain.LabelSettings, error)
	UpdateSettings(ctx context.Context, projectID uuid.UUID, input UpdateLabelSettingsInput) (*domain.LabelSettings, error)
	GroupLayout(ctx context.Context, groupID uuid.UUID) (*label.GroupLayout, error)
}

type labelService struct {
	settingsRepo port.LabelSettingsRepository
	projectRepo  port.ProjectRepository
	groupRepo    port.TranslationGroupRepository
	itemRepo     port.TranslationItemRepository
	defaults     config.LabelConfig
}

// NewLabelService creates a new LabelService implementation.
func NewLabelService(
	settingsRepo port.LabelSettingsRepository,
	projectRepo port.ProjectRepository,
	groupRepo port.TranslationGroupRepository,
	itemRepo port.TranslationItemRepository,
	defaults config.LabelConfig,
) LabelService {
	return &labelService{
		settingsRepo: settingsRepo,
		projectRepo:  projectRepo,
		groupRepo:    groupRepo,
		itemRepo:     itemRepo,
		defaults:     defaults,
	}
}

// defaultSettings is what a project renders with before anyone touches its
// label configuration.
func (s *labelService) defaultSettings(projectID uuid.UUID) *domain.LabelSettings {
	return &domain.LabelSettings{
		ProjectID:         projectID,
		PrimaryFont:       s.defaults.PrimaryFont,
		SecondaryFont:     s.defaults.SecondaryFont,
		FontSizePt:        9,
		HeadingFontSizePt: 11,
		LineSpacing:       1.2,
		PageCount:         1,
	}
}

func (s *labelService) GetSettings(ctx context.Context, projectID uuid.UUID) (*domain.LabelSettings, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	settings, err := s.settingsRepo.Get(ctx, projectID)
	if errors.Is(err, domain.ErrNotFound) {
		return s.defaultSettings(projectID), nil
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *labelService) UpdateSettings(ctx context.Context, projectID uuid.UUID, input UpdateLabelSettingsInput) (*domain.LabelSettings, error) {
	settings, err := s.GetSettings(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if input.PrimaryFont != nil {
		settings.PrimaryFont = *input.PrimaryFont
	}
	if input.SecondaryFont != nil {
		settings.SecondaryFont = *input.SecondaryFont
	}
	if input.FontSizePt != nil {
		settings.FontSizePt = *input.FontSizePt
	}
	if input.HeadingFontSizePt != nil {
		settings.HeadingFontSizePt = *input.HeadingFontSizePt
	}
	if input.LineSpacing != nil {
		settings.LineSpacing = *input.LineSpacing
	}
	if input.PageCount != nil {
		settings.PageCount = *input.PageCount
	}

	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// GroupLayout builds the styled run layout for one translation group using
// its project's label settings.
func (s *labelService) GroupLayout(ctx context.Context, groupID uuid.UUID) (*label.GroupLayout, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	settings, err := s.GetSettings(ctx, group.ProjectID)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	layout := label.BuildGroupLayout(groupID, items, *settings)
	return &layout, nil
}
