package services

import (
	"sort"

	"localstore_backend/internal/models"
)

// Child-set ordering rules, applied before projection regardless of which
// response shape is being assembled. Stable sorts keep the repository's
// created_at tie-break intact for equal keys.

// orderVariants drops unavailable variants and sorts the rest by display
// order ascending.
func orderVariants(variants []models.ItemVariant) []models.ItemVariant {
	out := make([]models.ItemVariant, 0, len(variants))
	for i := range variants {
		if variants[i].IsAvailable {
			out = append(out, variants[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayOrder < out[j].DisplayOrder
	})
	return out
}

// orderAddOns drops unavailable add-ons and sorts the rest by display order
// ascending.
func orderAddOns(addOns []models.ItemAddOn) []models.ItemAddOn {
	out := make([]models.ItemAddOn, 0, len(addOns))
	for i := range addOns {
		if addOns[i].IsAvailable {
			out = append(out, addOns[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayOrder < out[j].DisplayOrder
	})
	return out
}

// orderImages keeps every image and applies a two-level sort: primary images
// before all non-primary ones, display order ascending within each group.
func orderImages(images []models.ItemImage) []models.ItemImage {
	out := make([]models.ItemImage, len(images))
	copy(out, images)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsPrimary != out[j].IsPrimary {
			return out[i].IsPrimary
		}
		return out[i].DisplayOrder < out[j].DisplayOrder
	})
	return out
}
