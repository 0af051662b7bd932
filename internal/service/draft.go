package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/harshithsai-30/Recipe-generator-using-Gemini-Flash/internal/types"
)

// draftTTL bounds how long a draft outlives the interaction that created it.
// Drafts are session state, not persistent storage.
const draftTTL = 24 * time.Hour

// ErrDraftNotFound is returned when a draft has expired or never existed.
var ErrDraftNotFound = errors.New("draft not found")

// DraftStore keeps recipe drafts in Redis so a servings change can rescale an
// existing draft without another model call.
type DraftStore struct {
	redis *redis.Client
}

// NewDraftStore creates a new DraftStore instance
func NewDraftStore(redisClient *redis.Client) *DraftStore {
	return &DraftStore{redis: redisClient}
}

// SaveDraft assigns the draft an ID and stores it with a TTL.
func (s *DraftStore) SaveDraft(ctx context.Context, draft *types.RecipeDraft) error {
	draft.ID = uuid.New().String()
	draft.CreatedAt = time.Now()
	draft.UpdatedAt = time.Now()

	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	if err := s.redis.Set(ctx, draftKey(draft.ID), data, draftTTL).Err(); err != nil {
		return fmt.Errorf("failed to save draft to Redis: %w", err)
	}
	return nil
}

// GetDraft retrieves a draft by ID.
func (s *DraftStore) GetDraft(ctx context.Context, id string) (*types.RecipeDraft, error) {
	data, err := s.redis.Get(ctx, draftKey(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draft from Redis: %w", err)
	}

	var draft types.RecipeDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	return &draft, nil
}

// DeleteDraft removes a draft before its TTL expires.
func (s *DraftStore) DeleteDraft(ctx context.Context, id string) error {
	if err := s.redis.Del(ctx, draftKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete draft from Redis: %w", err)
	}
	return nil
}

func draftKey(id string) string {
	return fmt.Sprintf("recipe:draft:%s", id)
}
