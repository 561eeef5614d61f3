package main

import (
	"database/sql"
	"log"

	"localstore_backend/internal/database"
	"localstore_backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Seeds a demo tenant with a small Vietnamese menu so the public endpoints
// have something to serve out of the box. Safe to re-run: the demo tenant is
// removed and recreated.
func main() {
	utils.InitLogger()
	_ = godotenv.Load()

	dbHost := utils.Getenv("DB_HOST", "localhost")
	dbPort := utils.Getenv("DB_PORT", "5432")
	dbUser := utils.Getenv("DB_USER", "localstore_user")
	dbPassword := utils.Getenv("DB_PASSWORD", "localstore_password")
	dbName := utils.Getenv("DB_NAME", "localstore_db")
	dbSSLMode := utils.Getenv("DB_SSLMODE", "disable")
	dbSchemaPath := utils.Getenv("DB_SCHEMA_PATH", "db/schema.sql")

	database.InitDB(dbHost, dbPort, dbUser, dbPassword, dbName, dbSSLMode, dbSchemaPath)
	db := database.GetDB()

	if err := seed(db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	utils.LogInfo("Seeding completed", map[string]interface{}{"tenant": demoTenantSlug})
}

const demoTenantSlug = "pho-hanoi-24"

type seedCategory struct {
	id     string
	slug   string
	nameVi string
	nameEn string
	order  int
}

type seedItem struct {
	slug         string
	nameVi       string
	nameEn       string
	descVi       string
	category     string // category slug
	price        int64
	compareAt    int64 // 0 means none
	thumbnailURL string
	isFeatured   bool
	isSpicy      bool
	isVegetarian bool
	order        int
}

func seed(db *sql.DB) error {
	if _, err := db.Exec(`DELETE FROM tenants WHERE slug = $1`, demoTenantSlug); err != nil {
		return err
	}

	tenantID := uuid.NewString()
	_, err := db.Exec(`
		INSERT INTO tenants (id, business_name, slug, business_type, phone, address, city, province, status, logo_url, primary_color)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'active', $9, $10)`,
		tenantID, "Phở Hà Nội 24", demoTenantSlug, "restaurant",
		"+84 24 3826 7356", "56 Hàng Trống", "Hà Nội", "Hà Nội",
		"https://images.unsplash.com/photo-1503764654157-72d979d9af2f?w=200&h=200&fit=crop", "#E53935")
	if err != nil {
		return err
	}

	menuID := uuid.NewString()
	_, err = db.Exec(`
		INSERT INTO menus (id, tenant_id, name_vi, name_en, is_active)
		VALUES ($1, $2, $3, $4, TRUE)`,
		menuID, tenantID, "Thực đơn chính", "Main menu")
	if err != nil {
		return err
	}

	categories := []seedCategory{
		{uuid.NewString(), "pho", "Phở", "Pho", 1},
		{uuid.NewString(), "bun", "Bún", "Noodles", 2},
		{uuid.NewString(), "com", "Cơm", "Rice", 3},
		{uuid.NewString(), "do-uong", "Đồ uống", "Drinks", 4},
		{uuid.NewString(), "trang-mieng", "Tráng miệng", "Desserts", 5},
	}
	categoryIDs := map[string]string{}
	for _, cat := range categories {
		categoryIDs[cat.slug] = cat.id
		_, err = db.Exec(`
			INSERT INTO categories (id, tenant_id, menu_id, name_vi, name_en, slug, display_order, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)`,
			cat.id, tenantID, menuID, cat.nameVi, cat.nameEn, cat.slug, cat.order)
		if err != nil {
			return err
		}
	}

	items := []seedItem{
		{"pho-bo-tai", "Phở bò tái", "Rare Beef Pho", "Phở bò tái mềm, nước dùng thanh ngọt ninh xương 24 tiếng.", "pho", 75000, 85000, "https://images.unsplash.com/photo-1576577445504-6af96477db52?w=400&q=80", true, false, false, 1},
		{"pho-bo-chin", "Phở bò chín", "Well-done Beef Pho", "Thịt bò chín mềm, thơm mùi quế hồi.", "pho", 70000, 0, "", false, false, false, 2},
		{"pho-ga", "Phở gà", "Chicken Pho", "Gà ta xé phay, nước dùng trong.", "pho", 65000, 0, "", false, false, false, 3},
		{"pho-dac-biet", "Phở đặc biệt", "Special Combo Pho", "Đầy đủ tái, chín, gầu, gân.", "pho", 95000, 0, "", true, false, false, 4},
		{"bun-bo-hue", "Bún bò Huế", "Hue Beef Noodles", "Cay nồng đúng vị Huế.", "bun", 70000, 0, "", false, true, false, 1},
		{"bun-cha-ha-noi", "Bún chả Hà Nội", "Hanoi Grilled Pork Noodles", "Chả nướng than hoa, nước mắm chua ngọt.", "bun", 65000, 0, "", true, false, false, 2},
		{"com-tam-suon-bi-cha", "Cơm tấm sườn bì chả", "Broken Rice Combo", "Sườn nướng, bì, chả trứng.", "com", 80000, 0, "", false, false, false, 1},
		{"com-ga-xoi-mo", "Cơm gà xối mỡ", "Crispy Chicken Rice", "Gà giòn rụm, cơm chiên tỏi.", "com", 75000, 0, "", false, false, false, 2},
		{"ca-phe-sua-da", "Cà phê sữa đá", "Vietnamese Iced Coffee", "Cà phê phin pha đậm, sữa đặc.", "do-uong", 30000, 0, "", false, false, true, 1},
		{"tra-da", "Trà đá", "Iced Tea", "", "do-uong", 5000, 0, "", false, false, true, 2},
		{"nuoc-chanh-duong", "Nước chanh đường", "Lemonade", "", "do-uong", 20000, 0, "", false, false, true, 3},
		{"che-thai", "Chè Thái", "Thai Sweet Soup", "", "trang-mieng", 35000, 0, "", false, false, true, 1},
		{"banh-flan", "Bánh flan", "Creme Caramel", "", "trang-mieng", 25000, 0, "", false, false, true, 2},
	}

	itemIDs := map[string]string{}
	for _, item := range items {
		id := uuid.NewString()
		itemIDs[item.slug] = id

		var compareAt sql.NullInt64
		if item.compareAt > 0 {
			compareAt = sql.NullInt64{Int64: item.compareAt, Valid: true}
		}
		_, err = db.Exec(`
			INSERT INTO menu_items (
				id, tenant_id, category_id, name_vi, name_en, slug,
				description_vi, base_price, compare_at_price, currency_code,
				thumbnail_url, is_featured, is_spicy, is_vegetarian,
				display_order, status, published_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'VND', $10, $11, $12, $13, $14, 'published', NOW())`,
			id, tenantID, categoryIDs[item.category], item.nameVi, item.nameEn, item.slug,
			utils.NewNullString(item.descVi), item.price, compareAt,
			utils.NewNullString(item.thumbnailURL), item.isFeatured, item.isSpicy, item.isVegetarian,
			item.order)
		if err != nil {
			return err
		}
	}

	// Variants and add-ons for the featured pho items.
	variants := []struct {
		itemSlug   string
		nameVi     string
		nameEn     string
		adjustment int64
		order      int
	}{
		{"pho-bo-tai", "Tô thường", "Regular bowl", 0, 1},
		{"pho-bo-tai", "Tô lớn", "Large bowl", 15000, 2},
		{"pho-dac-biet", "Tô thường", "Regular bowl", 0, 1},
		{"pho-dac-biet", "Tô lớn", "Large bowl", 20000, 2},
	}
	for _, v := range variants {
		_, err = db.Exec(`
			INSERT INTO item_variants (id, tenant_id, menu_item_id, name_vi, name_en, price_adjustment, display_order, is_available)
			VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)`,
			uuid.NewString(), tenantID, itemIDs[v.itemSlug], v.nameVi, v.nameEn, v.adjustment, v.order)
		if err != nil {
			return err
		}
	}

	addOns := []struct {
		itemSlug string
		nameVi   string
		nameEn   string
		price    int64
		required bool
		order    int
	}{
		{"pho-bo-tai", "Thêm thịt", "Extra beef", 20000, false, 1},
		{"pho-bo-tai", "Thêm trứng", "Extra egg", 5000, false, 2},
		{"pho-bo-tai", "Thêm bánh phở", "Extra noodles", 10000, false, 3},
		{"bun-cha-ha-noi", "Thêm chả", "Extra grilled pork", 25000, false, 1},
	}
	for _, a := range addOns {
		_, err = db.Exec(`
			INSERT INTO item_add_ons (id, tenant_id, menu_item_id, name_vi, name_en, price, is_required, max_selections, display_order, is_available)
			VALUES ($1, $2, $3, $4, $5, $6, $7, 3, $8, TRUE)`,
			uuid.NewString(), tenantID, itemIDs[a.itemSlug], a.nameVi, a.nameEn, a.price, a.required, a.order)
		if err != nil {
			return err
		}
	}

	_, err = db.Exec(`
		INSERT INTO item_images (id, tenant_id, menu_item_id, original_url, thumbnail_url, alt_text_vi, display_order, is_primary)
		VALUES ($1, $2, $3, $4, $5, $6, 1, TRUE)`,
		uuid.NewString(), tenantID, itemIDs["pho-bo-tai"],
		"https://images.unsplash.com/photo-1576577445504-6af96477db52?w=800&q=80",
		"https://images.unsplash.com/photo-1576577445504-6af96477db52?w=400&q=80",
		"Phở bò tái")
	return err
}
