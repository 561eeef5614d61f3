package repositories

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tenantRows = []string{
	"id", "business_name", "business_type", "slug", "is_chain", "total_locations",
	"phone", "logo_url", "primary_color", "address", "city", "province",
	"country_code", "locale", "timezone", "currency_code", "status",
	"created_at", "updated_at",
}

func TestTenantRepository_GetActiveBySlug(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTenantRepository(db)
	now := time.Now()

	rows := sqlmock.NewRows(tenantRows).AddRow(
		"tenant-1", "Phở Hà Nội 24", "restaurant", "pho-hanoi-24", false, 1,
		nil, "https://cdn.example.com/logo.png", "#E53935", nil, "Hà Nội", nil,
		"VN", "vi-VN", "Asia/Ho_Chi_Minh", "VND", "active",
		now, now,
	)
	mock.ExpectQuery(`SELECT (.+) FROM tenants WHERE slug = \$1 AND status = 'active' AND deleted_at IS NULL`).
		WithArgs("pho-hanoi-24").
		WillReturnRows(rows)

	tenant, err := repo.GetActiveBySlug("pho-hanoi-24")
	require.NoError(t, err)
	assert.Equal(t, "tenant-1", tenant.ID)
	assert.Equal(t, "Phở Hà Nội 24", tenant.BusinessName)
	assert.Equal(t, "VND", tenant.CurrencyCode)
	require.NotNil(t, tenant.LogoURL)
	assert.Equal(t, "https://cdn.example.com/logo.png", *tenant.LogoURL)
	assert.Nil(t, tenant.Phone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTenantRepository_GetActiveBySlug_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTenantRepository(db)

	// A suspended or soft-deleted tenant never matches the query, so a miss
	// and a hidden tenant look identical to the caller.
	mock.ExpectQuery(`SELECT (.+) FROM tenants WHERE slug = \$1 AND status = 'active' AND deleted_at IS NULL`).
		WithArgs("closed-shop").
		WillReturnRows(sqlmock.NewRows(tenantRows))

	tenant, err := repo.GetActiveBySlug("closed-shop")
	assert.Nil(t, tenant)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTenantRepository_GetActiveByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTenantRepository(db)
	now := time.Now()

	rows := sqlmock.NewRows(tenantRows).AddRow(
		"tenant-1", "Phở Hà Nội 24", nil, "pho-hanoi-24", false, 1,
		nil, nil, nil, nil, nil, nil,
		"VN", "vi-VN", "Asia/Ho_Chi_Minh", "VND", "active",
		now, now,
	)
	mock.ExpectQuery(`SELECT (.+) FROM tenants WHERE id = \$1 AND status = 'active' AND deleted_at IS NULL`).
		WithArgs("tenant-1").
		WillReturnRows(rows)

	tenant, err := repo.GetActiveByID("tenant-1")
	require.NoError(t, err)
	assert.Equal(t, "pho-hanoi-24", tenant.Slug)
	assert.Nil(t, tenant.BusinessType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTenantRepository_GetActiveBySlug_DatabaseError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTenantRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM tenants`).
		WithArgs("pho-hanoi-24").
		WillReturnError(errors.New("connection refused"))

	tenant, err := repo.GetActiveBySlug("pho-hanoi-24")
	assert.Nil(t, tenant)
	assert.ErrorIs(t, err, ErrDatabaseError)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
