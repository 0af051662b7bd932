package service

import (
	"strings"

	"github.com/harshithsai-30/Recipe-generator-using-Gemini-Flash/internal/types"
)

// perServingDefault holds a rough per-serving amount for a common ingredient.
type perServingDefault struct {
	Token    string
	Unit     string
	Quantity float64
}

// perServingDefaults are heuristics used only when the model returns an
// ingredient without a usable quantity. Matched by token against the
// ingredient name; the first matching entry wins, so order matters for
// names that mention several tokens.
var perServingDefaults = []perServingDefault{
	{"potato", "g", 150},
	{"tomato", "g", 70},
	{"onion", "g", 50},
	{"carrot", "g", 70},
	{"chicken", "g", 150},
	{"rice", "g", 80},
	{"pasta", "g", 90},
	{"egg", "count", 1},
	{"milk", "ml", 100},
	{"oil", "ml", 10},
	{"butter", "g", 10},
	{"salt", "tsp", 0.5},
	{"sugar", "tsp", 1},
	{"pepper", "tsp", 0.25},
	{"garlic", "clove", 1},
	{"ginger", "g", 5},
	{"spices", "tsp", 1},
	{"mint", "g", 5},
	{"peas", "g", 50},
}

// EstimateQuantity returns a heuristic quantity and unit for an ingredient at
// the given serving count. Unknown ingredients default to 1 tbsp per serving.
func EstimateQuantity(name string, servings int) (float64, string) {
	key := strings.ToLower(name)
	for _, def := range perServingDefaults {
		if strings.Contains(key, def.Token) {
			return def.Quantity * float64(servings), def.Unit
		}
	}
	return float64(servings), "tbsp"
}

// FillMissingQuantities estimates quantities for ingredients the model left
// blank. An ingredient counts as blank only when it has neither quantity nor
// unit; explicit zero-with-unit entries are "to taste" and stay untouched.
func FillMissingQuantities(ingredients []types.Ingredient, servings int) []types.Ingredient {
	filled := make([]types.Ingredient, len(ingredients))
	for i, ing := range ingredients {
		if ing.Quantity == 0 && ing.Unit == "" {
			qty, unit := EstimateQuantity(ing.Name, servings)
			ing.Quantity = qty
			ing.Unit = unit
		}
		filled[i] = ing
	}
	return filled
}
