package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var categoryRows = []string{
	"id", "tenant_id", "menu_id", "parent_id", "slug", "name_vi", "name_en",
	"description_vi", "description_en", "display_order", "is_active",
	"created_at", "updated_at",
}

func TestCategoryRepository_GetActiveBySlug(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCategoryRepository(db)
	now := time.Now()

	rows := sqlmock.NewRows(categoryRows).AddRow(
		"cat-1", "tenant-1", nil, nil, "pho", "Phở", "Pho",
		"Các món phở truyền thống", nil, 1, true,
		now, now,
	)
	mock.ExpectQuery(`SELECT (.+) FROM categories WHERE tenant_id = \$1 AND slug = \$2 AND is_active = TRUE AND deleted_at IS NULL`).
		WithArgs("tenant-1", "pho").
		WillReturnRows(rows)

	category, err := repo.GetActiveBySlug("tenant-1", "pho")
	require.NoError(t, err)
	assert.Equal(t, "cat-1", category.ID)
	assert.Equal(t, "Phở", category.NameVi)
	require.NotNil(t, category.NameEn)
	assert.Equal(t, "Pho", *category.NameEn)
	assert.Nil(t, category.DescriptionEn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_GetActiveBySlug_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCategoryRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM categories WHERE tenant_id = \$1 AND slug = \$2`).
		WithArgs("tenant-1", "does-not-exist").
		WillReturnRows(sqlmock.NewRows(categoryRows))

	category, err := repo.GetActiveBySlug("tenant-1", "does-not-exist")
	assert.Nil(t, category)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_GetActiveByTenant_Ordering(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCategoryRepository(db)
	now := time.Now()

	rows := sqlmock.NewRows(categoryRows).
		AddRow("cat-1", "tenant-1", nil, nil, "pho", "Phở", nil, nil, nil, 1, true, now, now).
		AddRow("cat-2", "tenant-1", nil, nil, "bun", "Bún", nil, nil, nil, 2, true, now, now).
		AddRow("cat-3", "tenant-1", nil, nil, "com", "Cơm", nil, nil, nil, 3, true, now, now)

	mock.ExpectQuery(`SELECT (.+) FROM categories WHERE tenant_id = \$1 AND is_active = TRUE AND deleted_at IS NULL ORDER BY display_order ASC, created_at ASC`).
		WithArgs("tenant-1").
		WillReturnRows(rows)

	categories, err := repo.GetActiveByTenant("tenant-1")
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, []string{"pho", "bun", "com"}, []string{categories[0].Slug, categories[1].Slug, categories[2].Slug})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_GetActiveByTenant_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCategoryRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM categories`).
		WithArgs("tenant-1").
		WillReturnRows(sqlmock.NewRows(categoryRows))

	// An empty collection is a valid result, not a miss.
	categories, err := repo.GetActiveByTenant("tenant-1")
	require.NoError(t, err)
	assert.Empty(t, categories)
	assert.NoError(t, mock.ExpectationsWereMet())
}
