package router

import (
	"localstore_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupMenuRoutes sets up the public menu routes.
//
// SEO-friendly URL structure:
//   - GET /menu/:tenantSlug                          full menu
//   - GET /menu/:tenantSlug/categories               categories list only
//   - GET /menu/:tenantSlug/items/:itemId            item detail by id
//   - GET /menu/:tenantSlug/:categorySlug            items in one category
//   - GET /menu/:tenantSlug/:categorySlug/:itemSlug  item detail by slug
//
// The static "categories" and "items" segments must be registered before the
// :categorySlug wildcard takes the rest.
func SetupMenuRoutes(apiGroup *gin.RouterGroup, menuHandler *handlers.MenuHandler) {
	menuRoutes := apiGroup.Group("/menu")
	{
		menuRoutes.GET("/:tenantSlug", menuHandler.GetPublicMenu)
		menuRoutes.GET("/:tenantSlug/categories", menuHandler.GetCategories)
		menuRoutes.GET("/:tenantSlug/items/:itemId", menuHandler.GetItemByID)
		menuRoutes.GET("/:tenantSlug/:categorySlug", menuHandler.GetCategoryItems)
		menuRoutes.GET("/:tenantSlug/:categorySlug/:itemSlug", menuHandler.GetItemBySlug)
	}
}
