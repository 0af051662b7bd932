package service

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshithsai-30/Recipe-generator-using-Gemini-Flash/internal/types"
)

func testDraftStore(t *testing.T) *DraftStore {
	t.Helper()
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		t.Skip("Skipping Redis-dependent test - REDIS_HOST not set")
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}
	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port)})
	return NewDraftStore(client)
}

func TestDraftStore_SaveAndGet(t *testing.T) {
	store := testDraftStore(t)
	ctx := context.Background()

	draft := &types.RecipeDraft{
		DishName: "Test Curry",
		Cuisine:  "Indian",
		Ingredients: []types.Ingredient{
			{Name: "potato", Quantity: 300, Unit: "g"},
		},
		Steps:             []string{"step1", "step2"},
		ReferenceServings: ReferenceServings,
	}

	t.Run("should save and retrieve a draft", func(t *testing.T) {
		err := store.SaveDraft(ctx, draft)
		require.NoError(t, err)
		assert.NotEmpty(t, draft.ID)
		assert.False(t, draft.CreatedAt.IsZero())

		retrieved, err := store.GetDraft(ctx, draft.ID)
		require.NoError(t, err)
		assert.Equal(t, draft.DishName, retrieved.DishName)
		assert.Equal(t, draft.Ingredients, retrieved.Ingredients)
		assert.Equal(t, draft.Steps, retrieved.Steps)
		assert.Equal(t, draft.ReferenceServings, retrieved.ReferenceServings)

		// Clean up
		err = store.DeleteDraft(ctx, draft.ID)
		assert.NoError(t, err)
	})

	t.Run("should report missing drafts", func(t *testing.T) {
		_, err := store.GetDraft(ctx, "does-not-exist")
		assert.ErrorIs(t, err, ErrDraftNotFound)
	})
}
