package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem lifecycle statuses. Only published items are visible through the
// public menu endpoints.
const (
	ItemStatusDraft      = "draft"
	ItemStatusPublished  = "published"
	ItemStatusArchived   = "archived"
	ItemStatusOutOfStock = "out_of_stock"
)

// Menu is an optional logical grouping of categories under a tenant.
// Categories may exist without one, so menus play no part in resolution.
type Menu struct {
	ID        string     `json:"id" db:"id"`
	TenantID  string     `json:"tenant_id" db:"tenant_id"`
	NameVi    string     `json:"name_vi" db:"name_vi"`
	NameEn    *string    `json:"name_en,omitempty" db:"name_en"`
	IsActive  bool       `json:"is_active" db:"is_active"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

// Category groups menu items within a tenant. Slug is unique per tenant.
type Category struct {
	ID            string     `json:"id" db:"id"`
	TenantID      string     `json:"tenant_id" db:"tenant_id"`
	MenuID        *string    `json:"menu_id,omitempty" db:"menu_id"`
	ParentID      *string    `json:"parent_id,omitempty" db:"parent_id"`
	Slug          string     `json:"slug" db:"slug"`
	NameVi        string     `json:"name_vi" db:"name_vi"`
	NameEn        *string    `json:"name_en,omitempty" db:"name_en"`
	DescriptionVi *string    `json:"description_vi,omitempty" db:"description_vi"`
	DescriptionEn *string    `json:"description_en,omitempty" db:"description_en"`
	DisplayOrder  int        `json:"display_order" db:"display_order"`
	IsActive      bool       `json:"is_active" db:"is_active"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

// MenuItem is a sellable dish or drink. Category linkage is optional; a
// deleted category leaves its items category-less rather than deleting them.
// Prices are decimals so projection can normalize them without float drift.
type MenuItem struct {
	ID                string              `json:"id" db:"id"`
	TenantID          string              `json:"tenant_id" db:"tenant_id"`
	LocationID        *string             `json:"location_id,omitempty" db:"location_id"`
	CategoryID        *string             `json:"category_id,omitempty" db:"category_id"`
	IsChainWide       bool                `json:"is_chain_wide" db:"is_chain_wide"`
	Slug              string              `json:"slug" db:"slug"`
	NameVi            string              `json:"name_vi" db:"name_vi"`
	NameEn            *string             `json:"name_en,omitempty" db:"name_en"`
	DescriptionVi     *string             `json:"description_vi,omitempty" db:"description_vi"`
	DescriptionEn     *string             `json:"description_en,omitempty" db:"description_en"`
	BasePrice         decimal.Decimal     `json:"base_price" db:"base_price"`
	CompareAtPrice    decimal.NullDecimal `json:"compare_at_price,omitempty" db:"compare_at_price"`
	CurrencyCode      string              `json:"currency_code" db:"currency_code"`
	SKU               *string             `json:"sku,omitempty" db:"sku"`
	TrackInventory    bool                `json:"track_inventory" db:"track_inventory"`
	StockQuantity     *int                `json:"stock_quantity,omitempty" db:"stock_quantity"`
	LowStockThreshold *int                `json:"low_stock_threshold,omitempty" db:"low_stock_threshold"`
	DisplayOrder      int                 `json:"display_order" db:"display_order"`
	ThumbnailURL      *string             `json:"thumbnail_url,omitempty" db:"thumbnail_url"`
	IsFeatured        bool                `json:"is_featured" db:"is_featured"`
	IsSpicy           bool                `json:"is_spicy" db:"is_spicy"`
	IsVegetarian      bool                `json:"is_vegetarian" db:"is_vegetarian"`
	IsVegan           bool                `json:"is_vegan" db:"is_vegan"`
	Status            string              `json:"status" db:"status"`
	PublishedAt       *time.Time          `json:"published_at,omitempty" db:"published_at"`
	CreatedAt         time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at" db:"updated_at"`
	DeletedAt         *time.Time          `json:"deleted_at,omitempty" db:"deleted_at"`

	// Child collections attached by the repository, not stored columns.
	Variants []ItemVariant `json:"variants,omitempty" db:"-"`
	AddOns   []ItemAddOn   `json:"add_ons,omitempty" db:"-"`
	Images   []ItemImage   `json:"images,omitempty" db:"-"`
}

// ItemVariant is a size/option choice that adjusts (not replaces) the item's
// base price.
type ItemVariant struct {
	ID              string          `json:"id" db:"id"`
	TenantID        string          `json:"tenant_id" db:"tenant_id"`
	MenuItemID      string          `json:"menu_item_id" db:"menu_item_id"`
	NameVi          string          `json:"name_vi" db:"name_vi"`
	NameEn          *string         `json:"name_en,omitempty" db:"name_en"`
	PriceAdjustment decimal.Decimal `json:"price_adjustment" db:"price_adjustment"`
	SKU             *string         `json:"sku,omitempty" db:"sku"`
	TrackInventory  bool            `json:"track_inventory" db:"track_inventory"`
	StockQuantity   *int            `json:"stock_quantity,omitempty" db:"stock_quantity"`
	DisplayOrder    int             `json:"display_order" db:"display_order"`
	IsAvailable     bool            `json:"is_available" db:"is_available"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`
	DeletedAt       *time.Time      `json:"deleted_at,omitempty" db:"deleted_at"`
}

// ItemAddOn is an additive extra with an absolute price, optionally required.
type ItemAddOn struct {
	ID            string          `json:"id" db:"id"`
	TenantID      string          `json:"tenant_id" db:"tenant_id"`
	MenuItemID    string          `json:"menu_item_id" db:"menu_item_id"`
	NameVi        string          `json:"name_vi" db:"name_vi"`
	NameEn        *string         `json:"name_en,omitempty" db:"name_en"`
	Price         decimal.Decimal `json:"price" db:"price"`
	IsRequired    bool            `json:"is_required" db:"is_required"`
	MaxSelections int             `json:"max_selections" db:"max_selections"`
	ThumbnailURL  *string         `json:"thumbnail_url,omitempty" db:"thumbnail_url"`
	DisplayOrder  int             `json:"display_order" db:"display_order"`
	IsAvailable   bool            `json:"is_available" db:"is_available"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
	DeletedAt     *time.Time      `json:"deleted_at,omitempty" db:"deleted_at"`
}

// ItemImage stores the original upload URL plus optional derived sizes.
type ItemImage struct {
	ID            string     `json:"id" db:"id"`
	TenantID      string     `json:"tenant_id" db:"tenant_id"`
	MenuItemID    string     `json:"menu_item_id" db:"menu_item_id"`
	OriginalURL   string     `json:"original_url" db:"original_url"`
	ThumbnailURL  *string    `json:"thumbnail_url,omitempty" db:"thumbnail_url"`
	MediumURL     *string    `json:"medium_url,omitempty" db:"medium_url"`
	LargeURL      *string    `json:"large_url,omitempty" db:"large_url"`
	AltTextVi     *string    `json:"alt_text_vi,omitempty" db:"alt_text_vi"`
	AltTextEn     *string    `json:"alt_text_en,omitempty" db:"alt_text_en"`
	DisplayOrder  int        `json:"display_order" db:"display_order"`
	IsPrimary     bool       `json:"is_primary" db:"is_primary"`
	FileSizeBytes *int64     `json:"file_size_bytes,omitempty" db:"file_size_bytes"`
	WidthPx       *int       `json:"width_px,omitempty" db:"width_px"`
	HeightPx      *int       `json:"height_px,omitempty" db:"height_px"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}
