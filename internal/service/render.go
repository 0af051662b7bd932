package service

import (
	"fmt"

	"github.com/harshithsai-30/Recipe-generator-using-Gemini-Flash/internal/types"
)

// RecipeView is the human-readable on-screen layout of a scaled recipe.
type RecipeView struct {
	Title       string   `json:"title"`
	Cuisine     string   `json:"cuisine,omitempty"`
	MealType    string   `json:"meal_type,omitempty"`
	Servings    int      `json:"servings"`
	CookingTime string   `json:"cooking_time,omitempty"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

// ScaleDraft applies the scale factor targetServings/referenceServings to a
// draft's ingredients and returns the scaled recipe.
func ScaleDraft(draft *types.RecipeDraft, targetServings int) (*types.ScaledRecipe, error) {
	scaled, err := Scale(draft.Ingredients, draft.ReferenceServings, targetServings)
	if err != nil {
		return nil, err
	}
	return &types.ScaledRecipe{
		DraftID:     draft.ID,
		DishName:    draft.DishName,
		Cuisine:     draft.Cuisine,
		MealType:    draft.MealType,
		Ingredients: scaled,
		Steps:       draft.Steps,
		CookingTime: draft.CookingTime,
		Servings:    targetServings,
	}, nil
}

// RenderView formats a scaled recipe for display: formatted ingredient lines
// and numbered steps.
func RenderView(recipe *types.ScaledRecipe) *RecipeView {
	ingredients := make([]string, len(recipe.Ingredients))
	for i, ing := range recipe.Ingredients {
		ingredients[i] = FormatIngredient(ing)
	}

	steps := make([]string, len(recipe.Steps))
	for i, step := range recipe.Steps {
		steps[i] = fmt.Sprintf("%d. %s", i+1, step)
	}

	return &RecipeView{
		Title:       recipe.DishName,
		Cuisine:     recipe.Cuisine,
		MealType:    recipe.MealType,
		Servings:    recipe.Servings,
		CookingTime: recipe.CookingTime,
		Ingredients: ingredients,
		Steps:       steps,
	}
}
