package main

import (
	"fmt"
	"log"

	"labelmedix/internal/config"
	"labelmedix/internal/handler"
	"labelmedix/internal/repository/postgres"
	"labelmedix/internal/router"
	"labelmedix/internal/service"
	s3storage "labelmedix/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	projectRepo := postgres.NewProjectRepo(db)
	groupRepo := postgres.NewTranslationGroupRepo(db)
	itemRepo := postgres.NewTranslationItemRepo(db)
	keywordRepo := postgres.NewFieldTypeKeywordRepo(db)
	settingsRepo := postgres.NewLabelSettingsRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	projectSvc := service.NewProjectService(projectRepo)
	keywordSvc := service.NewKeywordService(keywordRepo)
	translationSvc := service.NewTranslationService(groupRepo, itemRepo, projectRepo, keywordSvc)
	classificationSvc := service.NewClassificationService(keywordSvc, groupRepo, itemRepo)
	labelSvc := service.NewLabelService(settingsRepo, projectRepo, groupRepo, itemRepo, cfg.Label)
	exportSvc := service.NewExportService(projectRepo, groupRepo, itemRepo, s3Client, &cfg.S3)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	projectH := handler.NewProjectHandler(projectSvc)
	translationH := handler.NewTranslationHandler(translationSvc)
	keywordH := handler.NewKeywordHandler(keywordSvc)
	classifyH := handler.NewClassifyHandler(classificationSvc)
	labelH := handler.NewLabelHandler(labelSvc)
	exportH := handler.NewExportHandler(exportSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(
		authSvc,
		cfg.CORS.AllowedOrigins,
		authH,
		projectH,
		translationH,
		keywordH,
		classifyH,
		labelH,
		exportH,
		healthH,
	)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
