package router

import (
	"database/sql"

	"localstore_backend/internal/handlers"
	"localstore_backend/internal/repositories"
	"localstore_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application. Every route is public;
// the menu surface is intentionally anonymous.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Initialize Repositories
	tenantRepo := repositories.NewTenantRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	menuItemRepo := repositories.NewMenuItemRepository(db)

	// Initialize Services
	menuService := services.NewMenuService(tenantRepo, categoryRepo, menuItemRepo)

	// Initialize Handlers
	menuHandler := handlers.NewMenuHandler(menuService)

	apiV1 := engine.Group("/api/v1")

	apiV1.GET("/health", handlers.HealthCheck)
	SetupMenuRoutes(apiV1, menuHandler)
}
