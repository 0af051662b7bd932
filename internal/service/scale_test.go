package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshithsai-30/Recipe-generator-using-Gemini-Flash/internal/types"
)

func testIngredients() []types.Ingredient {
	return []types.Ingredient{
		{Name: "flour", Quantity: 200, Unit: "g"},
		{Name: "milk", Quantity: 150, Unit: "ml"},
		{Name: "vanilla extract", Quantity: 0.125, Unit: "tsp"},
		{Name: "salt", Quantity: 0, Unit: "to taste"},
	}
}

func TestScale(t *testing.T) {
	t.Run("should preserve count order names and units", func(t *testing.T) {
		in := testIngredients()
		out, err := Scale(in, 2, 7)

		require.NoError(t, err)
		require.Len(t, out, len(in))
		for i := range in {
			assert.Equal(t, in[i].Name, out[i].Name)
			assert.Equal(t, in[i].Unit, out[i].Unit)
		}
	})

	t.Run("should be identity at reference servings", func(t *testing.T) {
		in := testIngredients()
		out, err := Scale(in, 2, 2)

		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("should be linear", func(t *testing.T) {
		in := testIngredients()
		single, err := Scale(in, 2, 2)
		require.NoError(t, err)
		double, err := Scale(in, 2, 4)
		require.NoError(t, err)

		for i := range single {
			assert.Equal(t, single[i].Quantity*2, double[i].Quantity)
		}
	})

	t.Run("should double flour and keep salt at zero", func(t *testing.T) {
		in := []types.Ingredient{
			{Name: "flour", Quantity: 200, Unit: "g"},
			{Name: "salt", Quantity: 0, Unit: "to taste"},
		}
		out, err := Scale(in, 2, 4)

		require.NoError(t, err)
		assert.Equal(t, 400.0, out[0].Quantity)
		assert.Equal(t, "g", out[0].Unit)
		assert.Equal(t, 0.0, out[1].Quantity)
		assert.Equal(t, "to taste", out[1].Unit)
	})

	t.Run("should keep zero quantities at zero for any target", func(t *testing.T) {
		in := []types.Ingredient{{Name: "pepper", Quantity: 0, Unit: "to taste"}}
		for _, target := range []int{1, 2, 10, 45} {
			out, err := Scale(in, 4, target)
			require.NoError(t, err)
			assert.Equal(t, 0.0, out[0].Quantity)
		}
	})

	t.Run("should keep quantities exact rather than rounding", func(t *testing.T) {
		in := []types.Ingredient{
			{Name: "rice", Quantity: 100, Unit: "g"},
			{Name: "saffron", Quantity: 0.333, Unit: "tsp"},
		}
		out, err := Scale(in, 3, 1)

		require.NoError(t, err)
		assert.Equal(t, 100.0/3.0, out[0].Quantity)
		assert.Equal(t, 0.333/3.0, out[1].Quantity)
	})

	t.Run("should reject out of range target servings", func(t *testing.T) {
		in := testIngredients()
		for _, target := range []int{0, -1, 46, 100} {
			_, err := Scale(in, 2, target)
			require.Error(t, err)
			assert.ErrorIs(t, err, types.ErrInvalidInput)
		}
	})

	t.Run("should reject non-positive reference servings", func(t *testing.T) {
		_, err := Scale(testIngredients(), 0, 4)
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrInvalidInput)
	})

	t.Run("should fail fast on negative quantity", func(t *testing.T) {
		in := []types.Ingredient{{Name: "flour", Quantity: -5, Unit: "g"}}
		_, err := Scale(in, 2, 4)

		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrInvalidInput)
		assert.Contains(t, err.Error(), "flour")
	})

	t.Run("should not mutate its input", func(t *testing.T) {
		in := testIngredients()
		_, err := Scale(in, 2, 8)

		require.NoError(t, err)
		assert.Equal(t, testIngredients(), in)
	})

	t.Run("should be deterministic", func(t *testing.T) {
		a, err := Scale(testIngredients(), 2, 9)
		require.NoError(t, err)
		b, err := Scale(testIngredients(), 2, 9)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}

func TestValidateServings(t *testing.T) {
	assert.NoError(t, ValidateServings(1))
	assert.NoError(t, ValidateServings(45))
	assert.Error(t, ValidateServings(0))
	assert.Error(t, ValidateServings(46))
}
