package service

import (
	"context"

	"github.com/google/uuid"

	"labelmedix/internal/classify"
	"labelmedix/internal/domain"
	"labelmedix/internal/port"
)

// CreateGroupInput is the DTO for creating a translation group.
type CreateGroupInput struct {
	CountryCode string `json:"country_code" binding:"required"`
	Language    string `json:"language" binding:"required"`
}

// UpdateGroupInput is the DTO for updating a translation group.
type UpdateGroupInput struct {
	CountryCode *string `json:"country_code"`
	Language    *string `json:"language"`
}

// CreateItemInput is one line of label text to add to a group.
type CreateItemInput struct {
	SourceText     string `json:"source_text" binding:"required"`
	TranslatedText string `json:"translated_text"`
	FieldType      string `json:"field_type"`
}

// UpdateItemInput is the DTO for updating a translation item.
type UpdateItemInput struct {
	SourceText     *string `json:"source_text"`
	TranslatedText *string `json:"translated_text"`
	FieldType      *string `json:"field_type"`
}

// ReorderInput carries the full new ordering of a parent's children.
type ReorderInput struct {
	OrderedIDs []uuid.UUID `json:"ordered_ids" binding:"required"`
}

// TranslationService manages translation groups and their items.
type TranslationService interface {
	CreateGroup(ctx context.Context, projectID uuid.UUID, input CreateGroupInput) (*domain.TranslationGroup, error)
	GetGroup(ctx context.Context, id uuid.UUID) (*domain.TranslationGroup, error)
	ListGroups(ctx context.Context, projectID uuid.UUID) ([]domain.TranslationGroup, error)
	UpdateGroup(ctx context.Context, id uuid.UUID, input UpdateGroupInput) (*domain.TranslationGroup, error)
	DeleteGroup(ctx context.Context, id uuid.UUID) error
	ReorderGroups(ctx context.Context, projectID uuid.UUID, input ReorderInput) error

	CreateItems(ctx context.Context, groupID uuid.UUID, inputs []CreateItemInput) ([]domain.TranslationItem, error)
	ListItems(ctx context.Context, groupID uuid.UUID) ([]domain.TranslationItem, error)
	UpdateItem(ctx context.Context, id uuid.UUID, input UpdateItemInput) (*domain.TranslationItem, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
	ReorderItems(ctx context.Context, groupID uuid.UUID, input ReorderInput) error
}

type translationService struct {
	groupRepo   port.TranslationGroupRepository
	itemRepo    port.TranslationItemRepository
	projectRepo port.ProjectRepository
	keywordSvc  KeywordService
}

// NewTranslationService creates a new TranslationService implementation.
// New items without an explicit field type are classified on the way in using
// the current keyword snapshot.
func NewTranslationService(
	groupRepo port.TranslationGroupRepository,
	itemRepo port.TranslationItemRepository,
	projectRepo port.ProjectRepository,
	keywordSvc KeywordService,
) TranslationService {
	return &translationService{
		groupRepo:   groupRepo,
		itemRepo:    itemRepo,
		projectRepo: projectRepo,
		keywordSvc:  keywordSvc,
	}
}

func (s *translationService) CreateGroup(ctx context.Context, projectID uuid.UUID, input CreateGroupInput) (*domain.TranslationGroup, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	group := &domain.TranslationGroup{
		ProjectID:   projectID,
		CountryCode: input.CountryCode,
		Language:    input.Language,
	}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *translationService) GetGroup(ctx context.Context, id uuid.UUID) (*domain.TranslationGroup, error) {
	return s.groupRepo.GetByID(ctx, id)
}

func (s *translationService) ListGroups(ctx context.Context, projectID uuid.UUID) ([]domain.TranslationGroup, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.groupRepo.ListByProject(ctx, projectID)
}

func (s *translationService) UpdateGroup(ctx context.Context, id uuid.UUID, input UpdateGroupInput) (*domain.TranslationGroup, error) {
	group, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.CountryCode != nil {
		group.CountryCode = *input.CountryCode
	}
	if input.Language != nil {
		group.Language = *input.Language
	}

	if err := s.groupRepo.Update(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *translationService) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	return s.groupRepo.Delete(ctx, id)
}

func (s *translationService) ReorderGroups(ctx context.Context, projectID uuid.UUID, input ReorderInput) error {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return err
	}
	return s.groupRepo.Reorder(ctx, projectID, input.OrderedIDs)
}

// CreateItems appends items to a group in input order. Items without an
// explicit field type are auto-classified against the active keyword lists.
func (s *translationService) CreateItems(ctx context.Context, groupID uuid.UUID, inputs []CreateItemInput) ([]domain.TranslationItem, error) {
	if len(inputs) == 0 {
		return nil, nil
	}
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return nil, err
	}

	existing, err := s.itemRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	nextSeq := 1
	for _, item := range existing {
		if item.Sequence >= nextSeq {
			nextSeq = item.Sequence + 1
		}
	}

	var keywords classify.KeywordList
	items := make([]domain.TranslationItem, 0, len(inputs))
	for _, input := range inputs {
		ft := domain.FieldType(input.FieldType)
		if input.FieldType == "" {
			if keywords == nil {
				keywords, err = s.keywordSvc.ActiveKeywordList(ctx)
				if err != nil {
					return nil, err
				}
			}
			ft = classify.Classify(input.SourceText, keywords)
		} else if _, err := domain.ParseFieldType(input.FieldType); err != nil {
			return nil, err
		}

		items = append(items, domain.TranslationItem{
			GroupID:        groupID,
			Sequence:       nextSeq,
			SourceText:     input.SourceText,
			TranslatedText: input.TranslatedText,
			FieldType:      ft,
		})
		nextSeq++
	}

	if err := s.itemRepo.CreateBatch(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *translationService) ListItems(ctx context.Context, groupID uuid.UUID) ([]domain.TranslationItem, error) {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return nil, err
	}
	return s.itemRepo.ListByGroup(ctx, groupID)
}

func (s *translationService) UpdateItem(ctx context.Context, id uuid.UUID, input UpdateItemInput) (*domain.TranslationItem, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.SourceText != nil {
		item.SourceText = *input.SourceText
	}
	if input.TranslatedText != nil {
		item.TranslatedText = *input.TranslatedText
	}
	if input.FieldType != nil {
		ft, err := domain.ParseFieldType(*input.FieldType)
		if err != nil {
			return nil, err
		}
		item.FieldType = ft
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *translationService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return s.itemRepo.Delete(ctx, id)
}

func (s *translationService) ReorderItems(ctx context.Context, groupID uuid.UUID, input ReorderInput) error {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return err
	}
	return s.itemRepo.Reorder(ctx, groupID, input.OrderedIDs)
}
