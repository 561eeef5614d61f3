package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"localstore_backend/internal/models"

	"github.com/lib/pq"
)

// MenuItemRepository defines the read path for menu items. Every query is
// scoped to a tenant id and filtered to published, not soft-deleted rows.
// Returned items carry their variant/add-on/image collections, loaded in a
// second pass over the parent id set and joined in memory by menu_item_id.
type MenuItemRepository interface {
	GetPublishedBySlug(tenantID, categoryID, slug string) (*models.MenuItem, error)
	GetPublishedByID(tenantID, id string) (*models.MenuItem, error)
	GetPublishedByTenant(tenantID string) ([]models.MenuItem, error)
	GetPublishedByCategory(tenantID, categoryID string) ([]models.MenuItem, error)
}

type menuItemRepository struct {
	db *sql.DB
}

// NewMenuItemRepository creates a new instance of MenuItemRepository.
func NewMenuItemRepository(db *sql.DB) MenuItemRepository {
	return &menuItemRepository{db: db}
}

const menuItemColumns = `id, tenant_id, location_id, category_id, is_chain_wide, slug,
	name_vi, name_en, description_vi, description_en,
	base_price, compare_at_price, currency_code, sku,
	track_inventory, stock_quantity, low_stock_threshold,
	display_order, thumbnail_url,
	is_featured, is_spicy, is_vegetarian, is_vegan,
	status, published_at, created_at, updated_at`

func (r *menuItemRepository) GetPublishedBySlug(tenantID, categoryID, slug string) (*models.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + `
	          FROM menu_items
	          WHERE tenant_id = $1 AND category_id = $2 AND slug = $3
	            AND status = 'published' AND deleted_at IS NULL`
	item, err := scanMenuItem(r.db.QueryRow(query, tenantID, categoryID, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting menu item by slug %q for tenant %s: %v", ErrDatabaseError, slug, tenantID, err)
	}
	if err := r.loadChildren([]*models.MenuItem{item}); err != nil {
		return nil, err
	}
	return item, nil
}

// GetPublishedByID looks an item up by tenant and id only. This is the
// category-independent path: the owning category (if any) is not consulted.
func (r *menuItemRepository) GetPublishedByID(tenantID, id string) (*models.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + `
	          FROM menu_items
	          WHERE tenant_id = $1 AND id = $2
	            AND status = 'published' AND deleted_at IS NULL`
	item, err := scanMenuItem(r.db.QueryRow(query, tenantID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting menu item by ID %s for tenant %s: %v", ErrDatabaseError, id, tenantID, err)
	}
	if err := r.loadChildren([]*models.MenuItem{item}); err != nil {
		return nil, err
	}
	return item, nil
}

func (r *menuItemRepository) GetPublishedByTenant(tenantID string) ([]models.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + `
	          FROM menu_items
	          WHERE tenant_id = $1 AND status = 'published' AND deleted_at IS NULL
	          ORDER BY display_order ASC, created_at ASC`
	return r.queryItems(query, tenantID)
}

func (r *menuItemRepository) GetPublishedByCategory(tenantID, categoryID string) ([]models.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + `
	          FROM menu_items
	          WHERE tenant_id = $1 AND category_id = $2 AND status = 'published' AND deleted_at IS NULL
	          ORDER BY display_order ASC, created_at ASC`
	return r.queryItems(query, tenantID, categoryID)
}

func (r *menuItemRepository) queryItems(query string, args ...interface{}) ([]models.MenuItem, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getting menu items: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(
			&item.ID, &item.TenantID, &item.LocationID, &item.CategoryID,
			&item.IsChainWide, &item.Slug,
			&item.NameVi, &item.NameEn, &item.DescriptionVi, &item.DescriptionEn,
			&item.BasePrice, &item.CompareAtPrice, &item.CurrencyCode, &item.SKU,
			&item.TrackInventory, &item.StockQuantity, &item.LowStockThreshold,
			&item.DisplayOrder, &item.ThumbnailURL,
			&item.IsFeatured, &item.IsSpicy, &item.IsVegetarian, &item.IsVegan,
			&item.Status, &item.PublishedAt, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning menu item: %v", ErrDatabaseError, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating menu items: %v", ErrDatabaseError, err)
	}

	refs := make([]*models.MenuItem, len(items))
	for i := range items {
		refs[i] = &items[i]
	}
	if err := r.loadChildren(refs); err != nil {
		return nil, err
	}
	return items, nil
}

// loadChildren attaches variants, add-ons and images to the given items.
// Children are fetched per entity type with a single menu_item_id = ANY(...)
// query, then distributed through an id-keyed map.
func (r *menuItemRepository) loadChildren(items []*models.MenuItem) error {
	if len(items) == 0 {
		return nil
	}
	ids := make([]string, len(items))
	byID := make(map[string]*models.MenuItem, len(items))
	for i, item := range items {
		ids[i] = item.ID
		byID[item.ID] = item
	}

	if err := r.loadVariants(ids, byID); err != nil {
		return err
	}
	if err := r.loadAddOns(ids, byID); err != nil {
		return err
	}
	return r.loadImages(ids, byID)
}

func (r *menuItemRepository) loadVariants(ids []string, byID map[string]*models.MenuItem) error {
	query := `SELECT id, tenant_id, menu_item_id, name_vi, name_en, price_adjustment, sku,
	                 track_inventory, stock_quantity, display_order, is_available,
	                 created_at, updated_at
	          FROM item_variants
	          WHERE menu_item_id = ANY($1) AND deleted_at IS NULL
	          ORDER BY display_order ASC, created_at ASC`
	rows, err := r.db.Query(query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("%w: getting item variants: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var v models.ItemVariant
		if err := rows.Scan(
			&v.ID, &v.TenantID, &v.MenuItemID, &v.NameVi, &v.NameEn, &v.PriceAdjustment, &v.SKU,
			&v.TrackInventory, &v.StockQuantity, &v.DisplayOrder, &v.IsAvailable,
			&v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return fmt.Errorf("%w: scanning item variant: %v", ErrDatabaseError, err)
		}
		if item, ok := byID[v.MenuItemID]; ok {
			item.Variants = append(item.Variants, v)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: iterating item variants: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *menuItemRepository) loadAddOns(ids []string, byID map[string]*models.MenuItem) error {
	query := `SELECT id, tenant_id, menu_item_id, name_vi, name_en, price, is_required,
	                 max_selections, thumbnail_url, display_order, is_available,
	                 created_at, updated_at
	          FROM item_add_ons
	          WHERE menu_item_id = ANY($1) AND deleted_at IS NULL
	          ORDER BY display_order ASC, created_at ASC`
	rows, err := r.db.Query(query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("%w: getting item add-ons: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var a models.ItemAddOn
		if err := rows.Scan(
			&a.ID, &a.TenantID, &a.MenuItemID, &a.NameVi, &a.NameEn, &a.Price, &a.IsRequired,
			&a.MaxSelections, &a.ThumbnailURL, &a.DisplayOrder, &a.IsAvailable,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return fmt.Errorf("%w: scanning item add-on: %v", ErrDatabaseError, err)
		}
		if item, ok := byID[a.MenuItemID]; ok {
			item.AddOns = append(item.AddOns, a)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: iterating item add-ons: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *menuItemRepository) loadImages(ids []string, byID map[string]*models.MenuItem) error {
	query := `SELECT id, tenant_id, menu_item_id, original_url, thumbnail_url, medium_url, large_url,
	                 alt_text_vi, alt_text_en, display_order, is_primary,
	                 file_size_bytes, width_px, height_px, created_at, updated_at
	          FROM item_images
	          WHERE menu_item_id = ANY($1) AND deleted_at IS NULL
	          ORDER BY display_order ASC, created_at ASC`
	rows, err := r.db.Query(query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("%w: getting item images: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var img models.ItemImage
		if err := rows.Scan(
			&img.ID, &img.TenantID, &img.MenuItemID, &img.OriginalURL,
			&img.ThumbnailURL, &img.MediumURL, &img.LargeURL,
			&img.AltTextVi, &img.AltTextEn, &img.DisplayOrder, &img.IsPrimary,
			&img.FileSizeBytes, &img.WidthPx, &img.HeightPx,
			&img.CreatedAt, &img.UpdatedAt,
		); err != nil {
			return fmt.Errorf("%w: scanning item image: %v", ErrDatabaseError, err)
		}
		if item, ok := byID[img.MenuItemID]; ok {
			item.Images = append(item.Images, img)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: iterating item images: %v", ErrDatabaseError, err)
	}
	return nil
}

func scanMenuItem(row *sql.Row) (*models.MenuItem, error) {
	item := &models.MenuItem{}
	err := row.Scan(
		&item.ID, &item.TenantID, &item.LocationID, &item.CategoryID,
		&item.IsChainWide, &item.Slug,
		&item.NameVi, &item.NameEn, &item.DescriptionVi, &item.DescriptionEn,
		&item.BasePrice, &item.CompareAtPrice, &item.CurrencyCode, &item.SKU,
		&item.TrackInventory, &item.StockQuantity, &item.LowStockThreshold,
		&item.DisplayOrder, &item.ThumbnailURL,
		&item.IsFeatured, &item.IsSpicy, &item.IsVegetarian, &item.IsVegan,
		&item.Status, &item.PublishedAt, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}
