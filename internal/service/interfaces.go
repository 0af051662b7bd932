package service

import (
	"context"

	"github.com/harshithsai-30/Recipe-generator-using-Gemini-Flash/internal/types"
)

// RecipeGenerator is the narrow boundary to the hosted model. The service is
// an opaque collaborator: prompt or image in, structured recipe out.
type RecipeGenerator interface {
	GenerateFromIngredients(ctx context.Context, ingredients []string, prefs RecipePreferences) (*types.RecipeDraft, error)
	GenerateFromImage(ctx context.Context, image []byte, mimeType string, prefs RecipePreferences) (*types.RecipeDraft, error)
}

// DraftStorer defines the interface for draft session storage.
type DraftStorer interface {
	SaveDraft(ctx context.Context, draft *types.RecipeDraft) error
	GetDraft(ctx context.Context, id string) (*types.RecipeDraft, error)
	DeleteDraft(ctx context.Context, id string) error
}
