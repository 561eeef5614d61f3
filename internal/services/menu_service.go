package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"localstore_backend/internal/models"
	"localstore_backend/internal/repositories"
	"localstore_backend/pkg/utils"
)

// Not-found codes carried in the structured 404 payload.
const (
	CodeTenantNotFound   = "TENANT_NOT_FOUND"
	CodeCategoryNotFound = "CATEGORY_NOT_FOUND"
	CodeItemNotFound     = "ITEM_NOT_FOUND"
)

// Localized messages, one per resolution step.
const (
	msgTenantNotFound   = "Không tìm thấy cửa hàng"
	msgCategoryNotFound = "Không tìm thấy danh mục"
	msgItemNotFound     = "Không tìm thấy sản phẩm"
)

// NotFoundError reports a failed resolution step. Details carries the
// identifiers seen up to the failing step so the caller can tell which link
// of the tenant/category/item chain broke.
type NotFoundError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details"`
}

func (e *NotFoundError) Error() string {
	pairs := make([]string, 0, len(e.Details))
	for k, v := range e.Details {
		pairs = append(pairs, k+"="+v)
	}
	return fmt.Sprintf("%s: %s", e.Code, strings.Join(pairs, " "))
}

func tenantNotFound(tenantSlug string) *NotFoundError {
	return &NotFoundError{
		Code:    CodeTenantNotFound,
		Message: msgTenantNotFound,
		Details: map[string]string{"tenantSlug": tenantSlug},
	}
}

func categoryNotFound(tenantSlug, categorySlug string) *NotFoundError {
	return &NotFoundError{
		Code:    CodeCategoryNotFound,
		Message: msgCategoryNotFound,
		Details: map[string]string{"tenantSlug": tenantSlug, "categorySlug": categorySlug},
	}
}

func itemNotFound(details map[string]string) *NotFoundError {
	return &NotFoundError{
		Code:    CodeItemNotFound,
		Message: msgItemNotFound,
		Details: details,
	}
}

// MenuService resolves public menu requests. Resolution always runs tenant
// first, then category, then item, and short-circuits on the first miss; the
// caller never sees a category/item error for a bad tenant identifier.
type MenuService interface {
	GetPublicMenu(tenantSlug string) (*PublicMenuResponse, error)
	GetCategories(tenantSlug string) (*MenuCategoriesResponse, error)
	GetCategoryItems(tenantSlug, categorySlug string) (*CategoryItemsResponse, error)
	GetItemBySlug(tenantSlug, categorySlug, itemSlug string) (*MenuItemDetailResponse, error)
	GetItemByID(tenantSlug, itemID string) (*MenuItemDetailResponse, error)
}

type menuService struct {
	tenantRepo   repositories.TenantRepository
	categoryRepo repositories.CategoryRepository
	itemRepo     repositories.MenuItemRepository
}

// NewMenuService creates a new instance of MenuService.
func NewMenuService(
	tenantRepo repositories.TenantRepository,
	categoryRepo repositories.CategoryRepository,
	itemRepo repositories.MenuItemRepository,
) MenuService {
	return &menuService{
		tenantRepo:   tenantRepo,
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
	}
}

func (s *menuService) GetPublicMenu(tenantSlug string) (*PublicMenuResponse, error) {
	tenant, err := s.resolveTenant(tenantSlug)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.GetActiveByTenant(tenant.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories for tenant %s: %w", tenant.ID, err)
	}
	items, err := s.itemRepo.GetPublishedByTenant(tenant.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu items for tenant %s: %w", tenant.ID, err)
	}

	categoriesWithItems, totalItems := s.groupItemsByCategory(categories, items)

	return &PublicMenuResponse{
		Store:         mapTenantToStoreInfo(tenant),
		Categories:    categoriesWithItems,
		TotalItems:    totalItems,
		CurrencyCode:  tenant.CurrencyCode,
		LastUpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (s *menuService) GetCategories(tenantSlug string) (*MenuCategoriesResponse, error) {
	tenant, err := s.resolveTenant(tenantSlug)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.GetActiveByTenant(tenant.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories for tenant %s: %w", tenant.ID, err)
	}

	infos := make([]CategoryInfo, 0, len(categories))
	for i := range categories {
		infos = append(infos, mapCategoryToInfo(&categories[i]))
	}

	return &MenuCategoriesResponse{
		Store:      mapTenantToStoreInfo(tenant),
		Categories: infos,
	}, nil
}

func (s *menuService) GetCategoryItems(tenantSlug, categorySlug string) (*CategoryItemsResponse, error) {
	tenant, err := s.resolveTenant(tenantSlug)
	if err != nil {
		return nil, err
	}
	category, err := s.resolveCategory(tenant, tenantSlug, categorySlug)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.GetPublishedByCategory(tenant.ID, category.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu items for category %s: %w", category.ID, err)
	}

	infos := make([]MenuItemInfo, 0, len(items))
	for i := range items {
		infos = append(infos, mapItemToInfo(&items[i]))
	}

	return &CategoryItemsResponse{
		Store:      mapTenantToStoreInfo(tenant),
		Category:   mapCategoryToInfo(category),
		Items:      infos,
		TotalItems: len(infos),
	}, nil
}

func (s *menuService) GetItemBySlug(tenantSlug, categorySlug, itemSlug string) (*MenuItemDetailResponse, error) {
	tenant, err := s.resolveTenant(tenantSlug)
	if err != nil {
		return nil, err
	}
	category, err := s.resolveCategory(tenant, tenantSlug, categorySlug)
	if err != nil {
		return nil, err
	}

	item, err := s.itemRepo.GetPublishedBySlug(tenant.ID, category.ID, itemSlug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, itemNotFound(map[string]string{
				"tenantSlug":   tenantSlug,
				"categorySlug": categorySlug,
				"itemSlug":     itemSlug,
			})
		}
		return nil, fmt.Errorf("failed to resolve item %q: %w", itemSlug, err)
	}

	return &MenuItemDetailResponse{
		Item:     mapItemToDetail(item),
		Category: &ItemCategoryRef{ID: category.ID, Name: category.NameVi},
	}, nil
}

// GetItemByID is the category-independent detail path: the item is looked up
// by tenant and id alone. The owning category is attached as context only
// when it exists and is visible.
func (s *menuService) GetItemByID(tenantSlug, itemID string) (*MenuItemDetailResponse, error) {
	tenant, err := s.resolveTenant(tenantSlug)
	if err != nil {
		return nil, err
	}

	item, err := s.itemRepo.GetPublishedByID(tenant.ID, itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, itemNotFound(map[string]string{
				"tenantSlug": tenantSlug,
				"itemId":     itemID,
			})
		}
		return nil, fmt.Errorf("failed to resolve item %s: %w", itemID, err)
	}

	var categoryRef *ItemCategoryRef
	if item.CategoryID != nil {
		category, err := s.categoryRepo.GetActiveByID(tenant.ID, *item.CategoryID)
		if err == nil {
			categoryRef = &ItemCategoryRef{ID: category.ID, Name: category.NameVi}
		} else if !errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("failed to load category %s: %w", *item.CategoryID, err)
		}
	}

	return &MenuItemDetailResponse{
		Item:     mapItemToDetail(item),
		Category: categoryRef,
	}, nil
}

func (s *menuService) resolveTenant(tenantSlug string) (*models.Tenant, error) {
	tenant, err := s.tenantRepo.GetActiveBySlug(tenantSlug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, tenantNotFound(tenantSlug)
		}
		return nil, fmt.Errorf("failed to resolve tenant %q: %w", tenantSlug, err)
	}
	return tenant, nil
}

func (s *menuService) resolveCategory(tenant *models.Tenant, tenantSlug, categorySlug string) (*models.Category, error) {
	category, err := s.categoryRepo.GetActiveBySlug(tenant.ID, categorySlug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, categoryNotFound(tenantSlug, categorySlug)
		}
		return nil, fmt.Errorf("failed to resolve category %q: %w", categorySlug, err)
	}
	return category, nil
}

// groupItemsByCategory partitions items into their owning category by
// category id. Items whose category is not in the visible set are dropped
// from the aggregate; they stay individually resolvable through the detail
// paths. Returns the nested categories and the count of items kept.
func (s *menuService) groupItemsByCategory(categories []models.Category, items []models.MenuItem) ([]CategoryWithItems, int) {
	itemsByCategory := make(map[string][]MenuItemInfo, len(categories))
	for i := range items {
		if items[i].CategoryID == nil {
			continue
		}
		catID := *items[i].CategoryID
		itemsByCategory[catID] = append(itemsByCategory[catID], mapItemToInfo(&items[i]))
	}

	result := make([]CategoryWithItems, 0, len(categories))
	totalItems := 0
	for i := range categories {
		category := &categories[i]
		categoryItems := itemsByCategory[category.ID]
		if categoryItems == nil {
			categoryItems = []MenuItemInfo{}
		}
		totalItems += len(categoryItems)
		result = append(result, CategoryWithItems{
			ID:            category.ID,
			Slug:          category.Slug,
			Name:          category.NameVi,
			NameEn:        category.NameEn,
			Description:   category.DescriptionVi,
			DescriptionEn: category.DescriptionEn,
			DisplayOrder:  category.DisplayOrder,
			Items:         categoryItems,
		})
	}
	return result, totalItems
}

func mapTenantToStoreInfo(tenant *models.Tenant) StoreInfo {
	return StoreInfo{
		ID:           tenant.ID,
		Name:         tenant.BusinessName,
		Slug:         tenant.Slug,
		LogoURL:      tenant.LogoURL,
		PrimaryColor: tenant.PrimaryColor,
		BusinessType: tenant.BusinessType,
	}
}

func mapCategoryToInfo(category *models.Category) CategoryInfo {
	return CategoryInfo{
		ID:           category.ID,
		Slug:         category.Slug,
		Name:         category.NameVi,
		NameEn:       category.NameEn,
		Description:  category.DescriptionVi,
		DisplayOrder: category.DisplayOrder,
	}
}

func mapItemToInfo(item *models.MenuItem) MenuItemInfo {
	return MenuItemInfo{
		ID:             item.ID,
		Slug:           item.Slug,
		Name:           item.NameVi,
		NameEn:         item.NameEn,
		Description:    item.DescriptionVi,
		Price:          utils.MinorUnits(item.BasePrice, item.CurrencyCode),
		CompareAtPrice: utils.MinorUnitsPtr(item.CompareAtPrice, item.CurrencyCode),
		CurrencyCode:   item.CurrencyCode,
		ImageURL:       item.ThumbnailURL,
		Available:      item.Status == models.ItemStatusPublished,
		IsFeatured:     item.IsFeatured,
		IsSpicy:        item.IsSpicy,
		IsVegetarian:   item.IsVegetarian,
		IsVegan:        item.IsVegan,
		DisplayOrder:   item.DisplayOrder,
	}
}

func mapItemToDetail(item *models.MenuItem) MenuItemDetail {
	variants := orderVariants(item.Variants)
	variantInfos := make([]ItemVariantInfo, 0, len(variants))
	for i := range variants {
		variantInfos = append(variantInfos, ItemVariantInfo{
			ID:              variants[i].ID,
			Name:            variants[i].NameVi,
			PriceAdjustment: utils.MinorUnits(variants[i].PriceAdjustment, item.CurrencyCode),
			Available:       variants[i].IsAvailable,
		})
	}

	addOns := orderAddOns(item.AddOns)
	addOnInfos := make([]ItemAddOnInfo, 0, len(addOns))
	for i := range addOns {
		addOnInfos = append(addOnInfos, ItemAddOnInfo{
			ID:            addOns[i].ID,
			Name:          addOns[i].NameVi,
			NameEn:        addOns[i].NameEn,
			ImageURL:      addOns[i].ThumbnailURL,
			Price:         utils.MinorUnits(addOns[i].Price, item.CurrencyCode),
			IsRequired:    addOns[i].IsRequired,
			MaxSelections: addOns[i].MaxSelections,
			Available:     addOns[i].IsAvailable,
		})
	}

	images := orderImages(item.Images)
	imageInfos := make([]ItemImageInfo, 0, len(images))
	for i := range images {
		imageInfos = append(imageInfos, ItemImageInfo{
			URL:       images[i].OriginalURL,
			Alt:       images[i].AltTextVi,
			IsPrimary: images[i].IsPrimary,
		})
	}

	return MenuItemDetail{
		MenuItemInfo:    mapItemToInfo(item),
		DescriptionFull: item.DescriptionVi,
		Images:          imageInfos,
		Variants:        variantInfos,
		AddOns:          addOnInfos,
	}
}
