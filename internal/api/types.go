package api

import "github.com/harshithsai-30/Recipe-generator-using-Gemini-Flash/internal/service"

// GenerateRecipeRequest is the body for text-mode generation.
// Field validation is deliberately left to the service layer so missing or
// out-of-range values all surface through the same typed errors.
type GenerateRecipeRequest struct {
	Ingredients        string `json:"ingredients"`
	Cuisine            string `json:"cuisine"`
	MealType           string `json:"meal_type"`
	CookingTimeMinutes int    `json:"cooking_time_minutes"`
	Servings           int    `json:"servings"`
}

// RescaleRequest is the body for rescaling an existing draft.
type RescaleRequest struct {
	Servings int `json:"servings"`
}

// RecipeResponse wraps a rendered recipe together with its draft ID so the
// client can rescale or export without regenerating.
type RecipeResponse struct {
	DraftID string              `json:"draft_id"`
	Recipe  *service.RecipeView `json:"recipe"`
}
