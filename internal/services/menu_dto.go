package services

// Response shapes for the public menu endpoints. Optional fields are pointers
// with omitempty throughout: a missing English value (or logo, color, image)
// is absent from the JSON, never null and never an empty string.

// StoreInfo is the tenant's public branding block, embedded in every
// list-style response.
type StoreInfo struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	LogoURL      *string `json:"logoUrl,omitempty"`
	PrimaryColor *string `json:"primaryColor,omitempty"`
	BusinessType *string `json:"businessType,omitempty"`
}

// CategoryInfo is a category without its items (categories list, and the
// category context of the category-items response).
type CategoryInfo struct {
	ID           string  `json:"id"`
	Slug         string  `json:"slug"`
	Name         string  `json:"name"`
	NameEn       *string `json:"nameEn,omitempty"`
	Description  *string `json:"description,omitempty"`
	DisplayOrder int     `json:"displayOrder"`
}

// CategoryWithItems is the full-menu variant of a category, nested items
// included.
type CategoryWithItems struct {
	ID            string         `json:"id"`
	Slug          string         `json:"slug"`
	Name          string         `json:"name"`
	NameEn        *string        `json:"nameEn,omitempty"`
	Description   *string        `json:"description,omitempty"`
	DescriptionEn *string        `json:"descriptionEn,omitempty"`
	DisplayOrder  int            `json:"displayOrder"`
	Items         []MenuItemInfo `json:"items"`
}

// MenuItemInfo is the list projection of an item. Price fields are integer
// counts of the currency's smallest unit.
type MenuItemInfo struct {
	ID             string  `json:"id"`
	Slug           string  `json:"slug"`
	Name           string  `json:"name"`
	NameEn         *string `json:"nameEn,omitempty"`
	Description    *string `json:"description,omitempty"`
	Price          int64   `json:"price"`
	CompareAtPrice *int64  `json:"compareAtPrice,omitempty"`
	CurrencyCode   string  `json:"currencyCode"`
	ImageURL       *string `json:"imageUrl,omitempty"`
	Available      bool    `json:"available"`
	IsFeatured     bool    `json:"isFeatured"`
	IsSpicy        bool    `json:"isSpicy"`
	IsVegetarian   bool    `json:"isVegetarian"`
	IsVegan        bool    `json:"isVegan"`
	DisplayOrder   int     `json:"displayOrder"`
}

// ItemImageInfo is one entry of the detail projection's ordered image list.
type ItemImageInfo struct {
	URL       string  `json:"url"`
	Alt       *string `json:"alt,omitempty"`
	IsPrimary bool    `json:"isPrimary"`
}

// ItemVariantInfo is one entry of the detail projection's variant list.
// PriceAdjustment is a signed delta on the item's base price.
type ItemVariantInfo struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	PriceAdjustment int64  `json:"priceAdjustment"`
	Available       bool   `json:"available"`
}

// ItemAddOnInfo is one entry of the detail projection's add-on list.
// Price is absolute and additive, not a delta.
type ItemAddOnInfo struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	NameEn        *string `json:"nameEn,omitempty"`
	ImageURL      *string `json:"imageUrl,omitempty"`
	Price         int64   `json:"price"`
	IsRequired    bool    `json:"isRequired"`
	MaxSelections int     `json:"maxSelections"`
	Available     bool    `json:"available"`
}

// MenuItemDetail extends MenuItemInfo with the full description and the
// ordered child collections.
type MenuItemDetail struct {
	MenuItemInfo
	DescriptionFull *string           `json:"descriptionFull,omitempty"`
	Images          []ItemImageInfo   `json:"images"`
	Variants        []ItemVariantInfo `json:"variants"`
	AddOns          []ItemAddOnInfo   `json:"addOns"`
}

// ItemCategoryRef is the minimal category context of the item-detail response.
type ItemCategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PublicMenuResponse is the full-menu shape: store info, categories with
// nested items, aggregate counts and a generation timestamp.
type PublicMenuResponse struct {
	Store         StoreInfo           `json:"store"`
	Categories    []CategoryWithItems `json:"categories"`
	TotalItems    int                 `json:"totalItems"`
	CurrencyCode  string              `json:"currencyCode"`
	LastUpdatedAt string              `json:"lastUpdatedAt"`
}

// MenuCategoriesResponse is the categories-only shape.
type MenuCategoriesResponse struct {
	Store      StoreInfo      `json:"store"`
	Categories []CategoryInfo `json:"categories"`
}

// CategoryItemsResponse is the items-in-one-category shape.
type CategoryItemsResponse struct {
	Store      StoreInfo      `json:"store"`
	Category   CategoryInfo   `json:"category"`
	Items      []MenuItemInfo `json:"items"`
	TotalItems int            `json:"totalItems"`
}

// MenuItemDetailResponse is the single-item shape. Category is present only
// when the item's owning category resolved.
type MenuItemDetailResponse struct {
	Item     MenuItemDetail   `json:"item"`
	Category *ItemCategoryRef `json:"category,omitempty"`
}
