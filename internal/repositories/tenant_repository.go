package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"localstore_backend/internal/models"
)

// TenantRepository defines the read path for tenant records. Only active,
// not soft-deleted tenants are ever returned; a suspended or deleted tenant
// is indistinguishable from a missing one.
type TenantRepository interface {
	GetActiveBySlug(slug string) (*models.Tenant, error)
	GetActiveByID(id string) (*models.Tenant, error)
}

type tenantRepository struct {
	db *sql.DB
}

// NewTenantRepository creates a new instance of TenantRepository.
func NewTenantRepository(db *sql.DB) TenantRepository {
	return &tenantRepository{db: db}
}

const tenantColumns = `id, business_name, business_type, slug, is_chain, total_locations,
	phone, logo_url, primary_color, address, city, province,
	country_code, locale, timezone, currency_code, status,
	created_at, updated_at`

func (r *tenantRepository) GetActiveBySlug(slug string) (*models.Tenant, error) {
	query := `SELECT ` + tenantColumns + `
	          FROM tenants
	          WHERE slug = $1 AND status = 'active' AND deleted_at IS NULL`
	tenant, err := scanTenant(r.db.QueryRow(query, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting tenant by slug %q: %v", ErrDatabaseError, slug, err)
	}
	return tenant, nil
}

func (r *tenantRepository) GetActiveByID(id string) (*models.Tenant, error) {
	query := `SELECT ` + tenantColumns + `
	          FROM tenants
	          WHERE id = $1 AND status = 'active' AND deleted_at IS NULL`
	tenant, err := scanTenant(r.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting tenant by ID %s: %v", ErrDatabaseError, id, err)
	}
	return tenant, nil
}

func scanTenant(row *sql.Row) (*models.Tenant, error) {
	tenant := &models.Tenant{}
	err := row.Scan(
		&tenant.ID, &tenant.BusinessName, &tenant.BusinessType, &tenant.Slug,
		&tenant.IsChain, &tenant.TotalLocations,
		&tenant.Phone, &tenant.LogoURL, &tenant.PrimaryColor,
		&tenant.Address, &tenant.City, &tenant.Province,
		&tenant.CountryCode, &tenant.Locale, &tenant.Timezone, &tenant.CurrencyCode,
		&tenant.Status,
		&tenant.CreatedAt, &tenant.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return tenant, nil
}
