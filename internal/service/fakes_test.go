package service_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"labelmedix/internal/domain"
)

// In-memory repository fakes. They mirror the persistence semantics the
// services rely on: not-found sentinels, duplicate skipping on batch insert,
// and full-set validation on reorder.

type fakeProjectRepo struct {
	projects map[uuid.UUID]domain.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[uuid.UUID]domain.Project)}
}

func (f *fakeProjectRepo) Create(_ context.Context, p *domain.Project) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.projects[p.ID] = *p
	return nil
}

func (f *fakeProjectRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (f *fakeProjectRepo) List(_ context.Context, offset, limit int) ([]domain.Project, int, error) {
	var out []domain.Project
	for _, p := range f.projects {
		out = append(out, p)
	}
	return out, len(out), nil
}

func (f *fakeProjectRepo) Update(_ context.Context, p *domain.Project) error {
	if _, ok := f.projects[p.ID]; !ok {
		return domain.ErrNotFound
	}
	f.projects[p.ID] = *p
	return nil
}

func (f *fakeProjectRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.projects[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.projects, id)
	return nil
}

type fakeGroupRepo struct {
	groups map[uuid.UUID]domain.TranslationGroup
}

func newFakeGroupRepo() *fakeGroupRepo {
	return &fakeGroupRepo{groups: make(map[uuid.UUID]domain.TranslationGroup)}
}

func (f *fakeGroupRepo) Create(_ context.Context, g *domain.TranslationGroup) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	seq := 0
	for _, existing := range f.groups {
		if existing.ProjectID == g.ProjectID && existing.Sequence > seq {
			seq = existing.Sequence
		}
	}
	g.Sequence = seq + 1
	f.groups[g.ID] = *g
	return nil
}

func (f *fakeGroupRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.TranslationGroup, error) {
	g, ok := f.groups[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &g, nil
}

func (f *fakeGroupRepo) ListByProject(_ context.Context, projectID uuid.UUID) ([]domain.TranslationGroup, error) {
	var out []domain.TranslationGroup
	for _, g := range f.groups {
		if g.ProjectID == projectID {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Sequence < out[j].Sequence })
	return out, nil
}

func (f *fakeGroupRepo) Update(_ context.Context, g *domain.TranslationGroup) error {
	if _, ok := f.groups[g.ID]; !ok {
		return domain.ErrNotFound
	}
	f.groups[g.ID] = *g
	return nil
}

func (f *fakeGroupRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.groups[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.groups, id)
	return nil
}

func (f *fakeGroupRepo) Reorder(_ context.Context, projectID uuid.UUID, orderedIDs []uuid.UUID) error {
	var current []uuid.UUID
	for id, g := range f.groups {
		if g.ProjectID == projectID {
			current = append(current, id)
		}
	}
	if !sameIDSet(current, orderedIDs) {
		return domain.ErrSequenceMismatch
	}
	for i, id := range orderedIDs {
		g := f.groups[id]
		g.Sequence = i + 1
		f.groups[id] = g
	}
	return nil
}

type fakeItemRepo struct {
	items map[uuid.UUID]domain.TranslationItem
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[uuid.UUID]domain.TranslationItem)}
}

func (f *fakeItemRepo) CreateBatch(_ context.Context, items []domain.TranslationItem) error {
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		f.items[items[i].ID] = items[i]
	}
	return nil
}

func (f *fakeItemRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.TranslationItem, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &it, nil
}

func (f *fakeItemRepo) ListByGroup(_ context.Context, groupID uuid.UUID) ([]domain.TranslationItem, error) {
	var out []domain.TranslationItem
	for _, it := range f.items {
		if it.GroupID == groupID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Sequence < out[j].Sequence })
	return out, nil
}

func (f *fakeItemRepo) Update(_ context.Context, it *domain.TranslationItem) error {
	if _, ok := f.items[it.ID]; !ok {
		return domain.ErrNotFound
	}
	f.items[it.ID] = *it
	return nil
}

func (f *fakeItemRepo) UpdateFieldTypes(_ context.Context, groupID uuid.UUID, fieldTypes map[uuid.UUID]domain.FieldType) error {
	for id, ft := range fieldTypes {
		it, ok := f.items[id]
		if !ok || it.GroupID != groupID {
			return domain.ErrNotFound
		}
		it.FieldType = ft
		f.items[id] = it
	}
	return nil
}

func (f *fakeItemRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeItemRepo) Reorder(_ context.Context, groupID uuid.UUID, orderedIDs []uuid.UUID) error {
	var current []uuid.UUID
	for id, it := range f.items {
		if it.GroupID == groupID {
			current = append(current, id)
		}
	}
	if !sameIDSet(current, orderedIDs) {
		return domain.ErrSequenceMismatch
	}
	for i, id := range orderedIDs {
		it := f.items[id]
		it.Sequence = i + 1
		f.items[id] = it
	}
	return nil
}

type fakeKeywordRepo struct {
	keywords map[uuid.UUID]domain.FieldTypeKeyword
}

func newFakeKeywordRepo() *fakeKeywordRepo {
	return &fakeKeywordRepo{keywords: make(map[uuid.UUID]domain.FieldTypeKeyword)}
}

func (f *fakeKeywordRepo) hasDuplicate(kw *domain.FieldTypeKeyword) bool {
	for id, existing := range f.keywords {
		if id != kw.ID && existing.Keyword == kw.Keyword && existing.FieldType == kw.FieldType {
			return true
		}
	}
	return false
}

func (f *fakeKeywordRepo) Create(_ context.Context, kw *domain.FieldTypeKeyword) error {
	if f.hasDuplicate(kw) {
		return domain.ErrDuplicateKeyword
	}
	if kw.ID == uuid.Nil {
		kw.ID = uuid.New()
	}
	kw.CreatedAt = time.Now().UTC()
	f.keywords[kw.ID] = *kw
	return nil
}

func (f *fakeKeywordRepo) CreateBatch(_ context.Context, keywords []domain.FieldTypeKeyword) (int, error) {
	inserted := 0
	for i := range keywords {
		if f.hasDuplicate(&keywords[i]) {
			continue
		}
		keywords[i].ID = uuid.New()
		f.keywords[keywords[i].ID] = keywords[i]
		inserted++
	}
	return inserted, nil
}

func (f *fakeKeywordRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.FieldTypeKeyword, error) {
	kw, ok := f.keywords[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &kw, nil
}

func (f *fakeKeywordRepo) List(_ context.Context, fieldType *domain.FieldType, offset, limit int) ([]domain.FieldTypeKeyword, int, error) {
	var out []domain.FieldTypeKeyword
	for _, kw := range f.keywords {
		if fieldType == nil || kw.FieldType == *fieldType {
			out = append(out, kw)
		}
	}
	return out, len(out), nil
}

func (f *fakeKeywordRepo) ListActive(_ context.Context) ([]domain.FieldTypeKeyword, error) {
	var out []domain.FieldTypeKeyword
	for _, kw := range f.keywords {
		if kw.IsActive {
			out = append(out, kw)
		}
	}
	return out, nil
}

func (f *fakeKeywordRepo) Update(_ context.Context, kw *domain.FieldTypeKeyword) error {
	if _, ok := f.keywords[kw.ID]; !ok {
		return domain.ErrNotFound
	}
	if f.hasDuplicate(kw) {
		return domain.ErrDuplicateKeyword
	}
	f.keywords[kw.ID] = *kw
	return nil
}

func (f *fakeKeywordRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.keywords[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.keywords, id)
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeSettingsRepo struct {
	settings map[uuid.UUID]domain.LabelSettings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{settings: make(map[uuid.UUID]domain.LabelSettings)}
}

func (f *fakeSettingsRepo) Get(_ context.Context, projectID uuid.UUID) (*domain.LabelSettings, error) {
	s, ok := f.settings[projectID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (f *fakeSettingsRepo) Upsert(_ context.Context, s *domain.LabelSettings) error {
	f.settings[s.ProjectID] = *s
	return nil
}

func sameIDSet(a, b []uuid.UUID) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[uuid.UUID]bool, len(a))
	for _, id := range a {
		set[id] = true
	}
	for _, id := range b {
		if !set[id] {
			return false
		}
		delete(set, id)
	}
	return true
}
