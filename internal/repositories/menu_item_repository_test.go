package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var menuItemRows = []string{
	"id", "tenant_id", "location_id", "category_id", "is_chain_wide", "slug",
	"name_vi", "name_en", "description_vi", "description_en",
	"base_price", "compare_at_price", "currency_code", "sku",
	"track_inventory", "stock_quantity", "low_stock_threshold",
	"display_order", "thumbnail_url",
	"is_featured", "is_spicy", "is_vegetarian", "is_vegan",
	"status", "published_at", "created_at", "updated_at",
}

var variantRows = []string{
	"id", "tenant_id", "menu_item_id", "name_vi", "name_en", "price_adjustment", "sku",
	"track_inventory", "stock_quantity", "display_order", "is_available",
	"created_at", "updated_at",
}

var addOnRows = []string{
	"id", "tenant_id", "menu_item_id", "name_vi", "name_en", "price", "is_required",
	"max_selections", "thumbnail_url", "display_order", "is_available",
	"created_at", "updated_at",
}

var imageRows = []string{
	"id", "tenant_id", "menu_item_id", "original_url", "thumbnail_url", "medium_url", "large_url",
	"alt_text_vi", "alt_text_en", "display_order", "is_primary",
	"file_size_bytes", "width_px", "height_px", "created_at", "updated_at",
}

func addItemRow(rows *sqlmock.Rows, id, categoryID, slug, nameVi, price string, now time.Time) *sqlmock.Rows {
	return rows.AddRow(
		id, "tenant-1", nil, categoryID, false, slug,
		nameVi, nil, nil, nil,
		price, nil, "VND", nil,
		false, nil, nil,
		1, nil,
		false, false, false, false,
		"published", now, now, now,
	)
}

func TestMenuItemRepository_GetPublishedBySlug_WithChildren(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMenuItemRepository(db)
	now := time.Now()

	itemRows := addItemRow(sqlmock.NewRows(menuItemRows), "item-1", "cat-1", "pho-bo-tai", "Phở bò tái", "75000.00", now)
	mock.ExpectQuery(`SELECT (.+) FROM menu_items WHERE tenant_id = \$1 AND category_id = \$2 AND slug = \$3 AND status = 'published' AND deleted_at IS NULL`).
		WithArgs("tenant-1", "cat-1", "pho-bo-tai").
		WillReturnRows(itemRows)

	mock.ExpectQuery(`SELECT (.+) FROM item_variants WHERE menu_item_id = ANY\(\$1\)`).
		WillReturnRows(sqlmock.NewRows(variantRows).
			AddRow("var-1", "tenant-1", "item-1", "Tô lớn", "Large bowl", "15000.00", nil, false, nil, 2, true, now, now))
	mock.ExpectQuery(`SELECT (.+) FROM item_add_ons WHERE menu_item_id = ANY\(\$1\)`).
		WillReturnRows(sqlmock.NewRows(addOnRows).
			AddRow("addon-1", "tenant-1", "item-1", "Thêm thịt", "Extra beef", "20000.00", false, 3, nil, 1, true, now, now))
	mock.ExpectQuery(`SELECT (.+) FROM item_images WHERE menu_item_id = ANY\(\$1\)`).
		WillReturnRows(sqlmock.NewRows(imageRows).
			AddRow("img-1", "tenant-1", "item-1", "https://cdn.example.com/pho.jpg", nil, nil, nil, "Phở bò tái", nil, 1, true, nil, nil, nil, now, now))

	item, err := repo.GetPublishedBySlug("tenant-1", "cat-1", "pho-bo-tai")
	require.NoError(t, err)
	assert.Equal(t, "item-1", item.ID)
	assert.Equal(t, "75000", item.BasePrice.String())
	assert.False(t, item.CompareAtPrice.Valid)

	require.Len(t, item.Variants, 1)
	assert.Equal(t, "Tô lớn", item.Variants[0].NameVi)
	assert.Equal(t, "15000", item.Variants[0].PriceAdjustment.String())

	require.Len(t, item.AddOns, 1)
	assert.Equal(t, "Thêm thịt", item.AddOns[0].NameVi)
	assert.Equal(t, 3, item.AddOns[0].MaxSelections)

	require.Len(t, item.Images, 1)
	assert.True(t, item.Images[0].IsPrimary)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMenuItemRepository_GetPublishedBySlug_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMenuItemRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM menu_items WHERE tenant_id = \$1 AND category_id = \$2 AND slug = \$3`).
		WithArgs("tenant-1", "cat-1", "missing").
		WillReturnRows(sqlmock.NewRows(menuItemRows))

	item, err := repo.GetPublishedBySlug("tenant-1", "cat-1", "missing")
	assert.Nil(t, item)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMenuItemRepository_GetPublishedByTenant_DistributesChildren(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMenuItemRepository(db)
	now := time.Now()

	itemRows := sqlmock.NewRows(menuItemRows)
	addItemRow(itemRows, "item-1", "cat-1", "pho-bo-tai", "Phở bò tái", "75000.00", now)
	addItemRow(itemRows, "item-2", "cat-2", "bun-bo-hue", "Bún bò Huế", "70000.00", now)

	mock.ExpectQuery(`SELECT (.+) FROM menu_items WHERE tenant_id = \$1 AND status = 'published' AND deleted_at IS NULL ORDER BY display_order ASC, created_at ASC`).
		WithArgs("tenant-1").
		WillReturnRows(itemRows)

	mock.ExpectQuery(`SELECT (.+) FROM item_variants WHERE menu_item_id = ANY\(\$1\)`).
		WillReturnRows(sqlmock.NewRows(variantRows).
			AddRow("var-1", "tenant-1", "item-2", "Tô lớn", nil, "10000.00", nil, false, nil, 1, true, now, now))
	mock.ExpectQuery(`SELECT (.+) FROM item_add_ons WHERE menu_item_id = ANY\(\$1\)`).
		WillReturnRows(sqlmock.NewRows(addOnRows))
	mock.ExpectQuery(`SELECT (.+) FROM item_images WHERE menu_item_id = ANY\(\$1\)`).
		WillReturnRows(sqlmock.NewRows(imageRows))

	items, err := repo.GetPublishedByTenant("tenant-1")
	require.NoError(t, err)
	require.Len(t, items, 2)

	// The variant lands on item-2, not item-1.
	assert.Empty(t, items[0].Variants)
	require.Len(t, items[1].Variants, 1)
	assert.Equal(t, "var-1", items[1].Variants[0].ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMenuItemRepository_GetPublishedByCategory_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMenuItemRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM menu_items WHERE tenant_id = \$1 AND category_id = \$2`).
		WithArgs("tenant-1", "cat-1").
		WillReturnRows(sqlmock.NewRows(menuItemRows))

	// No items in an existing category is a valid, empty result. No child
	// queries are issued for an empty parent set.
	items, err := repo.GetPublishedByCategory("tenant-1", "cat-1")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}
