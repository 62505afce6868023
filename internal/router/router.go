package router

import (
	"github.com/gin-gonic/gin"

	"labelmedix/internal/domain"
	"labelmedix/internal/handler"
	"labelmedix/internal/middleware"
	"labelmedix/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	allowedOrigins []string,
	authH *handler.AuthHandler,
	projectH *handler.ProjectHandler,
	translationH *handler.TranslationHandler,
	keywordH *handler.KeywordHandler,
	classifyH *handler.ClassifyHandler,
	labelH *handler.LabelHandler,
	exportH *handler.ExportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Project routes
	projects := protected.Group("/projects")
	projects.POST("", projectH.Create)
	projects.GET("", projectH.List)
	projects.GET("/:id", projectH.GetByID)
	projects.PUT("/:id", projectH.Update)
	projects.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), projectH.Delete)
	projects.POST("/:id/groups", translationH.CreateGroup)
	projects.GET("/:id/groups", translationH.ListGroups)
	projects.PUT("/:id/groups/reorder", translationH.ReorderGroups)
	projects.GET("/:id/label-settings", labelH.GetSettings)
	projects.PUT("/:id/label-settings", labelH.UpdateSettings)
	projects.POST("/:id/export", exportH.ExportProject)

	// Translation group routes
	groups := protected.Group("/groups")
	groups.PUT("/:id", translationH.UpdateGroup)
	groups.DELETE("/:id", translationH.DeleteGroup)
	groups.POST("/:id/items", translationH.CreateItems)
	groups.GET("/:id/items", translationH.ListItems)
	groups.PUT("/:id/items/reorder", translationH.ReorderItems)
	groups.POST("/:id/classify", classifyH.ReclassifyGroup)
	groups.GET("/:id/label-layout", labelH.GroupLayout)

	// Translation item routes
	items := protected.Group("/items")
	items.PUT("/:id", translationH.UpdateItem)
	items.DELETE("/:id", translationH.DeleteItem)

	// Ad-hoc classification
	protected.POST("/classify", classifyH.ClassifyTexts)

	// Keyword dictionary - mutations are admin only
	keywords := protected.Group("/field-type-keywords")
	keywords.GET("", keywordH.List)
	keywords.GET(":id", keywordH.GetByID)
	keywords.POST("", middleware.RequireRole(domain.RoleAdmin), keywordH.Create)
	keywords.PUT("/:id", middleware.RequireRole(domain.RoleAdmin), keywordH.Update)
	keywords.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), keywordH.Delete)
	keywords.POST("/batch-import", middleware.RequireRole(domain.RoleAdmin), keywordH.BatchImport)

	return r
}
