package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labelmedix/internal/domain"
	"labelmedix/internal/service"
)

func seedKeywords(t *testing.T, svc service.KeywordService) {
	t.Helper()
	_, err := svc.ImportRows(context.Background(), uuid.New(), []service.ImportKeywordRow{
		{Keyword: "paracetamol", FieldType: "drug_name"},
		{Keyword: "acme corp", FieldType: "company_name"},
		{Keyword: "lot no", FieldType: "number_field"},
	})
	require.NoError(t, err)
}

func TestClassificationService_ClassifyTexts(t *testing.T) {
	keywordSvc := service.NewKeywordService(newFakeKeywordRepo())
	seedKeywords(t, keywordSvc)
	svc := service.NewClassificationService(keywordSvc, newFakeGroupRepo(), newFakeItemRepo())

	got, err := svc.ClassifyTexts(context.Background(), service.ClassifyTextsInput{
		Texts: []string{"Paracetamol 500mg", "Lot No:", "Acme Corp", "plain text"},
	})

	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, domain.FieldTypeDrugName, got[0].FieldType)
	assert.Equal(t, domain.FieldTypeNumberField, got[1].FieldType)
	assert.Equal(t, domain.FieldTypeCompanyName, got[2].FieldType)
	assert.Equal(t, domain.FieldTypeDrugDescription, got[3].FieldType)
	assert.Equal(t, "Paracetamol 500mg", got[0].Text)
}

func TestClassificationService_ReclassifyGroup(t *testing.T) {
	keywordSvc := service.NewKeywordService(newFakeKeywordRepo())
	seedKeywords(t, keywordSvc)

	groupRepo := newFakeGroupRepo()
	itemRepo := newFakeItemRepo()
	svc := service.NewClassificationService(keywordSvc, groupRepo, itemRepo)

	group := &domain.TranslationGroup{ProjectID: uuid.New(), CountryCode: "de", Language: "German"}
	require.NoError(t, groupRepo.Create(context.Background(), group))

	items := []domain.TranslationItem{
		// Misclassified: should become drug_name.
		{GroupID: group.ID, Sequence: 1, SourceText: "Paracetamol 500mg", FieldType: domain.FieldTypeBasicInfo},
		// Already correct: should stay untouched.
		{GroupID: group.ID, Sequence: 2, SourceText: "Lot No:", FieldType: domain.FieldTypeNumberField},
	}
	require.NoError(t, itemRepo.CreateBatch(context.Background(), items))

	result, err := svc.ReclassifyGroup(context.Background(), group.ID)
	require.NoError(t, err)

	assert.Equal(t, group.ID, result.GroupID)
	assert.Equal(t, 1, result.Changed)
	require.Len(t, result.Items, 2)
	assert.Equal(t, domain.FieldTypeBasicInfo, result.Items[0].Previous)
	assert.Equal(t, domain.FieldTypeDrugName, result.Items[0].FieldType)

	// The change is persisted.
	stored, err := itemRepo.ListByGroup(context.Background(), group.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.FieldTypeDrugName, stored[0].FieldType)
	assert.Equal(t, domain.FieldTypeNumberField, stored[1].FieldType)
}

func TestClassificationService_ReclassifyGroup_NotFound(t *testing.T) {
	keywordSvc := service.NewKeywordService(newFakeKeywordRepo())
	svc := service.NewClassificationService(keywordSvc, newFakeGroupRepo(), newFakeItemRepo())

	_, err := svc.ReclassifyGroup(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
