package handlers

import (
	"errors"
	"net/http"

	"localstore_backend/internal/services"
	"localstore_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MenuHandler serves the public (unauthenticated) menu endpoints.
type MenuHandler struct {
	menuService services.MenuService
}

// NewMenuHandler creates a new instance of MenuHandler.
func NewMenuHandler(menuService services.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// GetPublicMenu handles GET /menu/:tenantSlug — the full menu with store
// info, categories and nested items.
func (h *MenuHandler) GetPublicMenu(c *gin.Context) {
	tenantSlug := c.Param("tenantSlug")

	resp, err := h.menuService.GetPublicMenu(tenantSlug)
	if err != nil {
		respondMenuError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetCategories handles GET /menu/:tenantSlug/categories — categories without
// items.
func (h *MenuHandler) GetCategories(c *gin.Context) {
	tenantSlug := c.Param("tenantSlug")

	resp, err := h.menuService.GetCategories(tenantSlug)
	if err != nil {
		respondMenuError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetCategoryItems handles GET /menu/:tenantSlug/:categorySlug — the ordered
// item list of one category.
func (h *MenuHandler) GetCategoryItems(c *gin.Context) {
	tenantSlug := c.Param("tenantSlug")
	categorySlug := c.Param("categorySlug")

	resp, err := h.menuService.GetCategoryItems(tenantSlug, categorySlug)
	if err != nil {
		respondMenuError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetItemBySlug handles GET /menu/:tenantSlug/:categorySlug/:itemSlug —
// single item detail addressed by slug.
func (h *MenuHandler) GetItemBySlug(c *gin.Context) {
	tenantSlug := c.Param("tenantSlug")
	categorySlug := c.Param("categorySlug")
	itemSlug := c.Param("itemSlug")

	resp, err := h.menuService.GetItemBySlug(tenantSlug, categorySlug, itemSlug)
	if err != nil {
		respondMenuError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetItemByID handles GET /menu/:tenantSlug/items/:itemId — single item
// detail addressed by id, without a category in the lookup.
func (h *MenuHandler) GetItemByID(c *gin.Context) {
	tenantSlug := c.Param("tenantSlug")
	itemID := c.Param("itemId")

	resp, err := h.menuService.GetItemByID(tenantSlug, itemID)
	if err != nil {
		respondMenuError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// respondMenuError translates service errors: a failed resolution step
// becomes the structured 404 payload, anything else is an internal fault.
func respondMenuError(c *gin.Context, err error) {
	var nf *services.NotFoundError
	if errors.As(err, &nf) {
		c.JSON(http.StatusNotFound, nf)
		return
	}
	utils.LogError(err, "menu request failed")
	utils.RespondWithError(c, utils.NewAPIError(
		http.StatusInternalServerError, utils.ErrCodeInternalServerError,
		"Internal server error", "",
	))
}
