package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshithsai-30/Recipe-generator-using-Gemini-Flash/internal/types"
)

func sampleScaledRecipe() *types.ScaledRecipe {
	return &types.ScaledRecipe{
		DraftID:  "draft-1",
		DishName: "Tomato Pasta",
		Cuisine:  "Italian",
		Ingredients: []types.Ingredient{
			{Name: "pasta", Quantity: 180, Unit: "g"},
			{Name: "tomato", Quantity: 140, Unit: "g"},
			{Name: "salt", Quantity: 0, Unit: "to taste"},
		},
		Steps: []string{
			"Boil the pasta in salted water until al dente.",
			"Simmer the tomatoes into a sauce and toss with the pasta.",
		},
		CookingTime: "25 minutes",
		Servings:    2,
	}
}

func TestRenderPDF(t *testing.T) {
	t.Run("should produce a PDF document", func(t *testing.T) {
		data, err := RenderPDF(sampleScaledRecipe())

		require.NoError(t, err)
		require.NotEmpty(t, data)
		assert.True(t, strings.HasPrefix(string(data), "%PDF"))
	})

	t.Run("should handle long recipes across page breaks", func(t *testing.T) {
		recipe := sampleScaledRecipe()
		for i := 0; i < 80; i++ {
			recipe.Steps = append(recipe.Steps, strings.Repeat("Stir thoroughly and taste. ", 8))
		}

		data, err := RenderPDF(recipe)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "%PDF"))
	})
}

func TestPDFFilename(t *testing.T) {
	assert.Equal(t, "Tomato_Pasta.pdf", PDFFilename("Tomato Pasta"))
	assert.Equal(t, "Chefs_Special.pdf", PDFFilename("Chef's Special!"))
	assert.Equal(t, "recipe.pdf", PDFFilename("   "))
}
