package port

import (
	"context"

	"github.com/google/uuid"

	"labelmedix/internal/domain"
)

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// ProjectRepository defines the contract for project persistence.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	List(ctx context.Context, offset, limit int) ([]domain.Project, int, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TranslationGroupRepository defines the contract for translation group
// persistence. Sequence reorders are applied atomically.
type TranslationGroupRepository interface {
	Create(ctx context.Context, group *domain.TranslationGroup) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TranslationGroup, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.TranslationGroup, error)
	Update(ctx context.Context, group *domain.TranslationGroup) error
	Delete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, projectID uuid.UUID, orderedIDs []uuid.UUID) error
}

// TranslationItemRepository defines the contract for translation item
// persistence.
type TranslationItemRepository interface {
	CreateBatch(ctx context.Context, items []domain.TranslationItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TranslationItem, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]domain.TranslationItem, error)
	Update(ctx context.Context, item *domain.TranslationItem) error
	UpdateFieldTypes(ctx context.Context, groupID uuid.UUID, fieldTypes map[uuid.UUID]domain.FieldType) error
	Delete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, groupID uuid.UUID, orderedIDs []uuid.UUID) error
}

// FieldTypeKeywordRepository defines the contract for keyword persistence.
type FieldTypeKeywordRepository interface {
	Create(ctx context.Context, keyword *domain.FieldTypeKeyword) error
	CreateBatch(ctx context.Context, keywords []domain.FieldTypeKeyword) (int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.FieldTypeKeyword, error)
	List(ctx context.Context, fieldType *domain.FieldType, offset, limit int) ([]domain.FieldTypeKeyword, int, error)
	ListActive(ctx context.Context) ([]domain.FieldTypeKeyword, error)
	Update(ctx context.Context, keyword *domain.FieldTypeKeyword) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// LabelSettingsRepository defines the contract for per-project label settings.
type LabelSettingsRepository interface {
	Get(ctx context.Context, projectID uuid.UUID) (*domain.LabelSettings, error)
	Upsert(ctx context.Context, settings *domain.LabelSettings) error
}
