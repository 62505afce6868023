package service

import (
	"context"

	"github.com/google/uuid"

	"labelmedix/internal/classify"
	"labelmedix/internal/domain"
	"labelmedix/internal/port"
)

// ClassifyTextsInput is the DTO for ad-hoc text classification.
type ClassifyTextsInput struct {
	Texts []string `json:"texts" binding:"required"`
}

// ClassifiedText pairs an input line with its assigned field type.
type ClassifiedText struct {
	Text      string           `json:"text"`
	FieldType domain.FieldType `json:"field_type"`
}

// ReclassifyResult reports a persisted group re-classification.
type ReclassifyResult struct {
	GroupID uuid.UUID        `json:"group_id"`
	Items   []ClassifiedItem `json:"items"`
	Changed int              `json:"changed"`
}

// ClassifiedItem is one item's classification outcome.
type ClassifiedItem struct {
	ItemID    uuid.UUID        `json:"item_id"`
	Text      string           `json:"text"`
	Previous  domain.FieldType `json:"previous"`
	FieldType domain.FieldType `json:"field_type"`
}

// ClassificationService runs the field type classifier against ad-hoc texts
// or a stored group's items. Each call takes a fresh keyword snapshot, so
// edits to the keyword lists apply from the next batch on.
type ClassificationService interface {
	ClassifyTexts(ctx context.Context, input ClassifyTextsInput) ([]ClassifiedText, error)
	ReclassifyGroup(ctx context.Context, groupID uuid.UUID) (*ReclassifyResult, error)
}

type classificationService struct {
	keywordSvc KeywordService
	groupRepo  port.TranslationGroupRepository
	itemRepo   port.TranslationItemRepository
}

// NewClassificationService creates a new ClassificationService implementation.
func NewClassificationService(
	keywordSvc KeywordService,
	groupRepo port.TranslationGroupRepository,
	itemRepo port.TranslationItemRepository,
) ClassificationService {
	return &classificationService{
		keywordSvc: keywordSvc,
		groupRepo:  groupRepo,
		itemRepo:   itemRepo,
	}
}

func (s *classificationService) ClassifyTexts(ctx context.Context, input ClassifyTextsInput) ([]ClassifiedText, error) {
	keywords, err := s.keywordSvc.ActiveKeywordList(ctx)
	if err != nil {
		return nil, err
	}

	fieldTypes := classify.ClassifyBatch(input.Texts, keywords)
	out := make([]ClassifiedText, len(input.Texts))
	for i, text := range input.Texts {
		out[i] = ClassifiedText{Text: text, FieldType: fieldTypes[i]}
	}
	return out, nil
}

// ReclassifyGroup re-runs classification over a group's items against the
// current keyword lists and persists any changed field types in one
// transaction.
func (s *classificationService) ReclassifyGroup(ctx context.Context, groupID uuid.UUID) (*ReclassifyResult, error) {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return nil, err
	}

	items, err := s.itemRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	keywords, err := s.keywordSvc.ActiveKeywordList(ctx)
	if err != nil {
		return nil, err
	}

	result := &ReclassifyResult{GroupID: groupID, Items: make([]ClassifiedItem, 0, len(items))}
	changed := make(map[uuid.UUID]domain.FieldType)

	for _, item := range items {
		ft := classify.Classify(item.SourceText, keywords)
		result.Items = append(result.Items, ClassifiedItem{
			ItemID:    item.ID,
			Text:      item.SourceText,
			Previous:  item.FieldType,
			FieldType: ft,
		})
		if ft != item.FieldType {
			changed[item.ID] = ft
		}
	}

	if len(changed) > 0 {
		if err := s.itemRepo.UpdateFieldTypes(ctx, groupID, changed); err != nil {
			return nil, err
		}
	}
	result.Changed = len(changed)
	return result, nil
}
