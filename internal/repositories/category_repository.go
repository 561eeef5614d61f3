package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"localstore_backend/internal/models"
)

// CategoryRepository defines the read path for categories. Every query is
// scoped to a tenant id and filtered to active, not soft-deleted rows.
type CategoryRepository interface {
	GetActiveBySlug(tenantID, slug string) (*models.Category, error)
	GetActiveByID(tenantID, id string) (*models.Category, error)
	GetActiveByTenant(tenantID string) ([]models.Category, error)
}

type categoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new instance of CategoryRepository.
func NewCategoryRepository(db *sql.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

const categoryColumns = `id, tenant_id, menu_id, parent_id, slug, name_vi, name_en,
	description_vi, description_en, display_order, is_active, created_at, updated_at`

func (r *categoryRepository) GetActiveBySlug(tenantID, slug string) (*models.Category, error) {
	query := `SELECT ` + categoryColumns + `
	          FROM categories
	          WHERE tenant_id = $1 AND slug = $2 AND is_active = TRUE AND deleted_at IS NULL`
	category, err := scanCategory(r.db.QueryRow(query, tenantID, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting category by slug %q for tenant %s: %v", ErrDatabaseError, slug, tenantID, err)
	}
	return category, nil
}

func (r *categoryRepository) GetActiveByID(tenantID, id string) (*models.Category, error) {
	query := `SELECT ` + categoryColumns + `
	          FROM categories
	          WHERE tenant_id = $1 AND id = $2 AND is_active = TRUE AND deleted_at IS NULL`
	category, err := scanCategory(r.db.QueryRow(query, tenantID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting category by ID %s for tenant %s: %v", ErrDatabaseError, id, tenantID, err)
	}
	return category, nil
}

// GetActiveByTenant returns the tenant's visible categories ordered by display
// order; created_at breaks ties so repeated calls over unchanged data yield
// the same sequence.
func (r *categoryRepository) GetActiveByTenant(tenantID string) ([]models.Category, error) {
	query := `SELECT ` + categoryColumns + `
	          FROM categories
	          WHERE tenant_id = $1 AND is_active = TRUE AND deleted_at IS NULL
	          ORDER BY display_order ASC, created_at ASC`
	rows, err := r.db.Query(query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("%w: getting categories for tenant %s: %v", ErrDatabaseError, tenantID, err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(
			&category.ID, &category.TenantID, &category.MenuID, &category.ParentID,
			&category.Slug, &category.NameVi, &category.NameEn,
			&category.DescriptionVi, &category.DescriptionEn,
			&category.DisplayOrder, &category.IsActive,
			&category.CreatedAt, &category.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning category: %v", ErrDatabaseError, err)
		}
		categories = append(categories, category)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating categories: %v", ErrDatabaseError, err)
	}
	return categories, nil
}

func scanCategory(row *sql.Row) (*models.Category, error) {
	category := &models.Category{}
	err := row.Scan(
		&category.ID, &category.TenantID, &category.MenuID, &category.ParentID,
		&category.Slug, &category.NameVi, &category.NameEn,
		&category.DescriptionVi, &category.DescriptionEn,
		&category.DisplayOrder, &category.IsActive,
		&category.CreatedAt, &category.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return category, nil
}
