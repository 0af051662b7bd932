package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/harshithsai-30/Recipe-generator-using-Gemini-Flash/config"
	"github.com/harshithsai-30/Recipe-generator-using-Gemini-Flash/internal/logger"
	"github.com/harshithsai-30/Recipe-generator-using-Gemini-Flash/internal/types"
)

// ReferenceServings is the serving count every generated draft's quantities
// are expressed for. The prompt pins the model to this value so scaling is
// always relative to a known baseline.
const ReferenceServings = 2

// Cooking time preference bounds, in minutes.
const (
	MinCookingTimeMinutes = 5
	MaxCookingTimeMinutes = 240
)

// allowedImageMimeTypes restricts uploads to the raster formats the vision
// endpoint accepts from us.
var allowedImageMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// LLMService handles interactions with the Gemini API
type LLMService struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
}

// NewLLMService creates a new LLMService instance
func NewLLMService(cfg *config.Config) *LLMService {
	return &LLMService{
		apiKey: cfg.GeminiAPIKey,
		apiURL: cfg.GeminiAPIURL,
		model:  cfg.GeminiModel,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// RecipePreferences carries the user's generation options into the prompt.
type RecipePreferences struct {
	Cuisine            string
	MealType           string
	CookingTimeMinutes int
}

// recipeData mirrors the JSON shape the prompt asks the model to produce.
type recipeData struct {
	DishName    string `json:"dish_name"`
	Cuisine     string `json:"cuisine"`
	Ingredients []struct {
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
	} `json:"ingredients"`
	Steps       []string `json:"steps"`
	CookingTime string   `json:"cooking_time"`
}

// Gemini generateContent wire types.
type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
	Temperature      float64 `json:"temperature,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

const recipeFormatInstruction = `You are a professional chef. Respond ONLY with JSON in this exact structure:
{
    "dish_name": "Name of the dish",
    "cuisine": "Cuisine of the dish",
    "ingredients": [
        {"name": "flour", "quantity": 200, "unit": "g"},
        {"name": "salt", "quantity": 0, "unit": "to taste"}
    ],
    "steps": [
        "Step 1 ...",
        "Step 2 ..."
    ],
    "cooking_time": "30 minutes"
}

All ingredient quantities MUST be expressed for exactly 2 servings.
Quantities must be numbers, never strings. Use quantity 0 with unit "to taste"
for seasonings that are not measured. Use metric units (g, ml) where possible.`

// SplitIngredients parses a comma-separated ingredient string into a cleaned
// list. An empty result is an InvalidInput error, caught before any external call.
func SplitIngredients(raw string) ([]string, error) {
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	if len(items) == 0 {
		return nil, types.InvalidInputf("at least one ingredient is required")
	}
	return items, nil
}

// ValidateCookingTime rejects a cooking time preference outside
// [MinCookingTimeMinutes, MaxCookingTimeMinutes]. Zero means no preference.
func ValidateCookingTime(minutes int) error {
	if minutes == 0 {
		return nil
	}
	if minutes < MinCookingTimeMinutes || minutes > MaxCookingTimeMinutes {
		return types.InvalidInputf("cooking time must be between %d and %d minutes, got %d",
			MinCookingTimeMinutes, MaxCookingTimeMinutes, minutes)
	}
	return nil
}

// ValidateImageMimeType rejects upload formats the vision endpoint does not accept.
func ValidateImageMimeType(mimeType string) error {
	if !allowedImageMimeTypes[mimeType] {
		return types.InvalidInputf("unsupported image format %q, expected image/jpeg or image/png", mimeType)
	}
	return nil
}

// GenerateFromIngredients asks the model for a recipe built around a typed
// ingredient list. The returned draft is unscaled, at ReferenceServings.
func (s *LLMService) GenerateFromIngredients(ctx context.Context, ingredients []string, prefs RecipePreferences) (*types.RecipeDraft, error) {
	if len(ingredients) == 0 {
		return nil, types.InvalidInputf("at least one ingredient is required")
	}

	prompt := "Create a recipe using these ingredients: " + strings.Join(ingredients, ", ") + "."
	prompt += preferenceClauses(prefs)

	parts := []geminiPart{{Text: recipeFormatInstruction}, {Text: prompt}}
	return s.generate(ctx, parts)
}

// GenerateFromImage sends a food photo to the multimodal endpoint and asks the
// model to identify the dish, infer its ingredients and produce a recipe.
func (s *LLMService) GenerateFromImage(ctx context.Context, image []byte, mimeType string, prefs RecipePreferences) (*types.RecipeDraft, error) {
	if len(image) == 0 {
		return nil, types.InvalidInputf("image data is empty")
	}
	if err := ValidateImageMimeType(mimeType); err != nil {
		return nil, err
	}

	prompt := "Look at this food photo. Identify the dish, infer its ingredients, and produce a complete recipe for it."
	prompt += preferenceClauses(prefs)

	parts := []geminiPart{
		{Text: recipeFormatInstruction},
		{Text: prompt},
		{InlineData: &geminiInlineData{
			MimeType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(image),
		}},
	}
	return s.generate(ctx, parts)
}

func preferenceClauses(prefs RecipePreferences) string {
	var b strings.Builder
	if prefs.Cuisine != "" && !strings.EqualFold(prefs.Cuisine, "any") {
		fmt.Fprintf(&b, " The recipe should be %s cuisine.", prefs.Cuisine)
	}
	if prefs.MealType != "" {
		fmt.Fprintf(&b, " It should be a %s.", strings.ToLower(prefs.MealType))
	}
	if prefs.CookingTimeMinutes > 0 {
		fmt.Fprintf(&b, " Total cooking time should be around %d minutes.", prefs.CookingTimeMinutes)
	}
	return b.String()
}

// generate performs one generateContent call and parses the response into a
// draft. A single failed call is reported immediately; retries are the user's.
func (s *LLMService) generate(ctx context.Context, parts []geminiPart) (*types.RecipeDraft, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{{Parts: parts}},
		GenerationConfig: &geminiGenerationConfig{
			ResponseMimeType: "application/json",
			Temperature:      0.9,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", strings.TrimRight(s.apiURL, "/"), s.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, types.ExternalServicef("failed to reach Gemini: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, types.ExternalServicef("failed to read response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.Error("gemini request failed", "status", resp.StatusCode, "body", string(body))
		return nil, types.ExternalServicef("Gemini request failed with status %d", resp.StatusCode)
	}

	var result geminiResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, types.ExternalServicef("failed to decode response: %v", err)
	}
	if result.Error != nil {
		return nil, types.ExternalServicef("Gemini error %d: %s", result.Error.Code, result.Error.Message)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, types.ExternalServicef("no candidates in Gemini response")
	}

	return parseDraft(result.Candidates[0].Content.Parts[0].Text)
}

// parseDraft turns the model's JSON text into a RecipeDraft, tolerating
// markdown code fences around the payload.
func parseDraft(text string) (*types.RecipeDraft, error) {
	cleaned := stripCodeFences(text)

	var data recipeData
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, types.ExternalServicef("malformed recipe response: %v", err)
	}
	if data.DishName == "" {
		return nil, types.ExternalServicef("recipe response is missing a dish name")
	}
	if len(data.Ingredients) == 0 {
		return nil, types.ExternalServicef("recipe response is missing the ingredients section")
	}
	if len(data.Steps) == 0 {
		return nil, types.ExternalServicef("recipe response is missing the steps section")
	}

	ingredients := make([]types.Ingredient, 0, len(data.Ingredients))
	for _, ing := range data.Ingredients {
		if ing.Quantity < 0 {
			return nil, types.ExternalServicef("ingredient %q has negative quantity %v", ing.Name, ing.Quantity)
		}
		ingredients = append(ingredients, types.Ingredient{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}
	ingredients = FillMissingQuantities(ingredients, ReferenceServings)

	return &types.RecipeDraft{
		DishName:          data.DishName,
		Cuisine:           data.Cuisine,
		Ingredients:       ingredients,
		Steps:             data.Steps,
		CookingTime:       data.CookingTime,
		ReferenceServings: ReferenceServings,
	}, nil
}

func stripCodeFences(text string) string {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
		cleaned = strings.TrimSpace(cleaned)
	}
	return cleaned
}
