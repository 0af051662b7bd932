package service

import (
	"github.com/harshithsai-30/Recipe-generator-using-Gemini-Flash/internal/types"
)

// Serving bounds come from the product requirement that a recipe feeds
// between 1 and 45 people.
const (
	MinServings = 1
	MaxServings = 45
)

// ValidateServings rejects a target serving count outside [MinServings, MaxServings].
func ValidateServings(target int) error {
	if target < MinServings || target > MaxServings {
		return types.InvalidInputf("servings must be between %d and %d, got %d", MinServings, MaxServings, target)
	}
	return nil
}

// Scale multiplies every ingredient quantity by targetServings/referenceServings.
// Names, units and ordering are preserved. Quantities stay exact; rounding
// happens only at presentation so scaling back and forth loses nothing.
// A zero quantity stays zero: "to taste" items are not meant to scale.
// A negative quantity is a data error from the upstream source and fails fast.
func Scale(ingredients []types.Ingredient, referenceServings, targetServings int) ([]types.Ingredient, error) {
	if referenceServings <= 0 {
		return nil, types.InvalidInputf("reference servings must be positive, got %d", referenceServings)
	}
	if err := ValidateServings(targetServings); err != nil {
		return nil, err
	}
	for _, ing := range ingredients {
		if ing.Quantity < 0 {
			return nil, types.InvalidInputf("ingredient %q has negative quantity %v", ing.Name, ing.Quantity)
		}
	}

	factor := float64(targetServings) / float64(referenceServings)
	scaled := make([]types.Ingredient, len(ingredients))
	for i, ing := range ingredients {
		scaled[i] = types.Ingredient{
			Name:     ing.Name,
			Quantity: ing.Quantity * factor,
			Unit:     ing.Unit,
		}
	}
	return scaled, nil
}
