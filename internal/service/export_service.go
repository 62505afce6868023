package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"labelmedix/internal/config"
	"labelmedix/internal/domain"
	"labelmedix/internal/port"
	"labelmedix/internal/xlsxexport"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportOutput describes a generated export and where to fetch it.
type ExportOutput struct {
	Key         string    `json:"key"`
	DownloadURL string    `json:"download_url"`
	ExpiresAt   time.Time `json:"expires_at"`
	Groups      int       `json:"groups"`
	Items       int       `json:"items"`
}

// ExportService builds translation workbooks and stores them in object
// storage.
type ExportService interface {
	ExportProject(ctx context.Context, projectID uuid.UUID) (*ExportOutput, error)
}

type exportService struct {
	projectRepo port.ProjectRepository
	groupRepo   port.TranslationGroupRepository
	itemRepo    port.TranslationItemRepository
	storage     port.ObjectStorage
	cfg         *config.S3Config
}

// NewExportService creates a new ExportService implementation.
func NewExportService(
	projectRepo port.ProjectRepository,
	groupRepo port.TranslationGroupRepository,
	itemRepo port.TranslationItemRepository,
	storage port.ObjectStorage,
	cfg *config.S3Config,
) ExportService {
	return &exportService{
		projectRepo: projectRepo,
		groupRepo:   groupRepo,
		itemRepo:    itemRepo,
		storage:     storage,
		cfg:         cfg,
	}
}

// ExportProject gathers all of a project's groups and items into one
// workbook, uploads it, and returns a presigned download link.
func (s *exportService) ExportProject(ctx context.Context, projectID uuid.UUID) (*ExportOutput, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	groups, err := s.groupRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	sheets := make([]xlsxexport.GroupSheet, 0, len(groups))
	totalItems := 0
	for _, group := range groups {
		items, err := s.itemRepo.ListByGroup(ctx, group.ID)
		if err != nil {
			return nil, err
		}
		totalItems += len(items)
		sheets = append(sheets, xlsxexport.GroupSheet{Group: group, Items: items})
	}

	data, err := xlsxexport.Build(*project, sheets)
	if err != nil {
		return nil, fmt.Errorf("building export workbook: %w", err)
	}

	key := fmt.Sprintf("exports/%s/%s-%s.xlsx",
		projectID, slugify(project.Name), time.Now().UTC().Format("20060102-150405"))

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(data),
		ContentType: xlsxContentType,
		Size:        int64(len(data)),
	})
	if err != nil {
		return nil, domain.ErrExportFailed
	}

	url, err := s.storage.GetPresignedURL(ctx, s.cfg.Bucket, key, s.cfg.PresignExpiry)
	if err != nil {
		return nil, domain.ErrExportFailed
	}

	return &ExportOutput{
		Key:         key,
		DownloadURL: url,
		ExpiresAt:   time.Now().UTC().Add(time.Duration(s.cfg.PresignExpiry) * time.Second),
		Groups:      len(groups),
		Items:       totalItems,
	}, nil
}

func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		out = "project"
	}
	return out
}
