package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localstore_backend/internal/models"
)

func TestOrderVariants(t *testing.T) {
	variants := []models.ItemVariant{
		{ID: "v-large", NameVi: "Tô lớn", DisplayOrder: 2, IsAvailable: true},
		{ID: "v-off", NameVi: "Tô đặc biệt", DisplayOrder: 1, IsAvailable: false},
		{ID: "v-small", NameVi: "Tô nhỏ", DisplayOrder: 1, IsAvailable: true},
	}

	ordered := orderVariants(variants)

	require.Len(t, ordered, 2)
	assert.Equal(t, "v-small", ordered[0].ID)
	assert.Equal(t, "v-large", ordered[1].ID)
}

func TestOrderVariants_PreservesInputOrderOnEqualKeys(t *testing.T) {
	// Equal display orders keep repository order (the created_at tie-break).
	variants := []models.ItemVariant{
		{ID: "first", DisplayOrder: 1, IsAvailable: true},
		{ID: "second", DisplayOrder: 1, IsAvailable: true},
	}

	ordered := orderVariants(variants)

	require.Len(t, ordered, 2)
	assert.Equal(t, "first", ordered[0].ID)
	assert.Equal(t, "second", ordered[1].ID)
}

func TestOrderAddOns(t *testing.T) {
	addOns := []models.ItemAddOn{
		{ID: "a-egg", NameVi: "Trứng chần", DisplayOrder: 3, IsAvailable: true},
		{ID: "a-beef", NameVi: "Thêm thịt", DisplayOrder: 1, IsAvailable: true},
		{ID: "a-off", NameVi: "Quẩy", DisplayOrder: 2, IsAvailable: false},
	}

	ordered := orderAddOns(addOns)

	require.Len(t, ordered, 2)
	assert.Equal(t, "a-beef", ordered[0].ID)
	assert.Equal(t, "a-egg", ordered[1].ID)
}

func TestOrderAddOns_EmptyInput(t *testing.T) {
	assert.Empty(t, orderAddOns(nil))
	assert.Empty(t, orderAddOns([]models.ItemAddOn{}))
}

func TestOrderImages_PrimaryFirst(t *testing.T) {
	images := []models.ItemImage{
		{ID: "side-1", DisplayOrder: 1, IsPrimary: false},
		{ID: "side-2", DisplayOrder: 2, IsPrimary: false},
		{ID: "hero", DisplayOrder: 3, IsPrimary: true},
	}

	ordered := orderImages(images)

	require.Len(t, ordered, 3)
	assert.Equal(t, "hero", ordered[0].ID)
	assert.Equal(t, "side-1", ordered[1].ID)
	assert.Equal(t, "side-2", ordered[2].ID)
}

func TestOrderImages_DoesNotMutateInput(t *testing.T) {
	images := []models.ItemImage{
		{ID: "b", DisplayOrder: 2},
		{ID: "a", DisplayOrder: 1},
	}

	ordered := orderImages(images)

	assert.Equal(t, "a", ordered[0].ID)
	// Caller's slice stays untouched.
	assert.Equal(t, "b", images[0].ID)
}
