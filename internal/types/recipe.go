package types

import "time"

// Ingredient is a single recipe ingredient. Quantity is expressed for the
// draft's reference serving count; a quantity of 0 marks "to taste" items
// that never scale.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// RecipeDraft is an unscaled recipe as parsed from the model's response.
// Drafts live in Redis for the duration of a session and expire with it.
type RecipeDraft struct {
	ID                string       `json:"id"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
	DishName          string       `json:"dish_name"`
	Cuisine           string       `json:"cuisine,omitempty"`
	MealType          string       `json:"meal_type,omitempty"`
	Ingredients       []Ingredient `json:"ingredients"`
	Steps             []string     `json:"steps"`
	CookingTime       string       `json:"cooking_time,omitempty"`
	ReferenceServings int          `json:"reference_servings"`
}

// ScaledRecipe is a draft whose ingredient quantities have been multiplied
// by targetServings / referenceServings.
type ScaledRecipe struct {
	DraftID     string       `json:"draft_id"`
	DishName    string       `json:"dish_name"`
	Cuisine     string       `json:"cuisine,omitempty"`
	MealType    string       `json:"meal_type,omitempty"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []string     `json:"steps"`
	CookingTime string       `json:"cooking_time,omitempty"`
	Servings    int          `json:"servings"`
}
