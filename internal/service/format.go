package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/harshithsai-30/Recipe-generator-using-Gemini-Flash/internal/types"
)

// FormatQuantity renders a quantity and unit the way a cook would write it:
// grams and millilitres round to the nearest 5, counts show as integers,
// 3 or more teaspoons become tablespoons, 16 or more tablespoons become cups.
// Formatting is presentation only; stored quantities stay exact.
func FormatQuantity(quantity float64, unit string) string {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "g", "gram", "grams":
		return fmt.Sprintf("%d g", roundToNearest5(quantity))
	case "ml", "milliliter", "milliliters", "millilitre", "millilitres":
		return fmt.Sprintf("%d ml", roundToNearest5(quantity))
	case "count", "pcs", "piece", "pieces":
		return fmt.Sprintf("%d pcs", int(math.Round(quantity)))
	case "clove", "cloves":
		return fmt.Sprintf("%d clove(s)", int(math.Round(quantity)))
	case "tsp", "teaspoon", "teaspoons":
		if quantity >= 3 {
			return trimFloat(quantity/3, 1) + " tbsp"
		}
		return trimFloat(quantity, 2) + " tsp"
	case "tbsp", "tablespoon", "tablespoons":
		if quantity >= 16 {
			return trimFloat(quantity/16, 2) + " cup(s)"
		}
		return trimFloat(quantity, 2) + " tbsp"
	case "":
		return trimFloat(quantity, 2)
	default:
		return trimFloat(quantity, 2) + " " + unit
	}
}

// FormatIngredient renders one ingredient line for display or PDF output.
// Zero-quantity items show as "<name> (to taste)".
func FormatIngredient(ing types.Ingredient) string {
	name := titleCase(ing.Name)
	if ing.Quantity == 0 {
		return fmt.Sprintf("%s (to taste)", name)
	}
	return fmt.Sprintf("%s %s", FormatQuantity(ing.Quantity, ing.Unit), name)
}

func roundToNearest5(v float64) int {
	return int(math.Round(v/5.0) * 5)
}

// trimFloat formats with at most prec decimals, dropping trailing zeros.
func trimFloat(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}

func titleCase(s string) string {
	words := strings.Fields(strings.TrimSpace(s))
	for i, w := range words {
		r := []rune(w)
		if len(r) > 0 {
			words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
		}
	}
	return strings.Join(words, " ")
}
