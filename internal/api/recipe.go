package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/harshithsai-30/Recipe-generator-using-Gemini-Flash/internal/logger"
	"github.com/harshithsai-30/Recipe-generator-using-Gemini-Flash/internal/middleware"
	"github.com/harshithsai-30/Recipe-generator-using-Gemini-Flash/internal/service"
	"github.com/harshithsai-30/Recipe-generator-using-Gemini-Flash/internal/types"
)

// maxImageSize bounds uploaded food photos to 10 MB.
const maxImageSize = 10 << 20

// RecipeHandler handles recipe generation, rescaling and export requests
type RecipeHandler struct {
	generator   service.RecipeGenerator
	drafts      service.DraftStorer
	rateLimiter *middleware.RateLimiter
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(generator service.RecipeGenerator, drafts service.DraftStorer, rateLimiter *middleware.RateLimiter) *RecipeHandler {
	return &RecipeHandler{
		generator:   generator,
		drafts:      drafts,
		rateLimiter: rateLimiter,
	}
}

// RegisterRoutes registers the recipe routes
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")

	// Only generation hits the paid model; rescale and export stay unlimited.
	generation := recipes.Group("")
	if h.rateLimiter != nil {
		generation.Use(h.rateLimiter.RateLimitMiddleware())
	}
	{
		generation.POST("/generate", h.Generate)
		generation.POST("/generate-from-image", h.GenerateFromImage)
	}

	recipes.POST("/:id/scale", h.Rescale)
	recipes.GET("/:id/pdf", h.DownloadPDF)
	recipes.DELETE("/:id", h.DeleteDraft)
}

// Generate builds a recipe from a typed, comma-separated ingredient list.
func (h *RecipeHandler) Generate(c *gin.Context) {
	var req GenerateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// All input validation happens before the external call.
	if err := service.ValidateServings(req.Servings); err != nil {
		h.respondError(c, err)
		return
	}
	if err := service.ValidateCookingTime(req.CookingTimeMinutes); err != nil {
		h.respondError(c, err)
		return
	}
	ingredients, err := service.SplitIngredients(req.Ingredients)
	if err != nil {
		h.respondError(c, err)
		return
	}

	draft, err := h.generator.GenerateFromIngredients(c.Request.Context(), ingredients, service.RecipePreferences{
		Cuisine:            req.Cuisine,
		MealType:           req.MealType,
		CookingTimeMinutes: req.CookingTimeMinutes,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	draft.MealType = req.MealType

	h.finishGeneration(c, draft, req.Servings)
}

// GenerateFromImage builds a recipe from an uploaded food photo.
// Expects multipart form data with an "image" file plus the usual options.
func (h *RecipeHandler) GenerateFromImage(c *gin.Context) {
	servings, err := strconv.Atoi(c.DefaultPostForm("servings", strconv.Itoa(service.ReferenceServings)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "servings must be an integer"})
		return
	}
	if err := service.ValidateServings(servings); err != nil {
		h.respondError(c, err)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	if fileHeader.Size > maxImageSize {
		h.respondError(c, types.InvalidInputf("image exceeds the %d MB limit", maxImageSize>>20))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open uploaded image"})
		return
	}
	defer file.Close()

	imageBytes, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded image"})
		return
	}

	// Sniff the content type rather than trusting the upload headers.
	mimeType := http.DetectContentType(imageBytes)
	if err := service.ValidateImageMimeType(mimeType); err != nil {
		h.respondError(c, err)
		return
	}

	cookingTime := 0
	if raw := c.PostForm("cooking_time_minutes"); raw != "" {
		if cookingTime, err = strconv.Atoi(raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cooking_time_minutes must be an integer"})
			return
		}
	}
	if err := service.ValidateCookingTime(cookingTime); err != nil {
		h.respondError(c, err)
		return
	}

	mealType := c.PostForm("meal_type")
	draft, err := h.generator.GenerateFromImage(c.Request.Context(), imageBytes, mimeType, service.RecipePreferences{
		Cuisine:            c.PostForm("cuisine"),
		MealType:           mealType,
		CookingTimeMinutes: cookingTime,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	draft.MealType = mealType

	h.finishGeneration(c, draft, servings)
}

// finishGeneration saves the draft, scales it to the requested servings and
// responds with the rendered view.
func (h *RecipeHandler) finishGeneration(c *gin.Context, draft *types.RecipeDraft, servings int) {
	if err := h.drafts.SaveDraft(c.Request.Context(), draft); err != nil {
		logger.Error("failed to save draft", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save recipe draft"})
		return
	}

	scaled, err := service.ScaleDraft(draft, servings)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, RecipeResponse{
		DraftID: draft.ID,
		Recipe:  service.RenderView(scaled),
	})
}

// Rescale re-applies the scaler to an existing draft. No model call is made:
// a servings change must never trigger a regeneration.
func (h *RecipeHandler) Rescale(c *gin.Context) {
	var req RescaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := service.ValidateServings(req.Servings); err != nil {
		h.respondError(c, err)
		return
	}

	draft, err := h.loadDraft(c)
	if err != nil {
		return
	}

	scaled, err := service.ScaleDraft(draft, req.Servings)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, RecipeResponse{
		DraftID: draft.ID,
		Recipe:  service.RenderView(scaled),
	})
}

// DownloadPDF renders a draft as a downloadable PDF, scaled to the servings
// query parameter. An export failure is isolated to this endpoint.
func (h *RecipeHandler) DownloadPDF(c *gin.Context) {
	draft, err := h.loadDraft(c)
	if err != nil {
		return
	}

	servings := draft.ReferenceServings
	if raw := c.Query("servings"); raw != "" {
		if servings, err = strconv.Atoi(raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "servings must be an integer"})
			return
		}
	}
	if err := service.ValidateServings(servings); err != nil {
		h.respondError(c, err)
		return
	}

	scaled, err := service.ScaleDraft(draft, servings)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pdfBytes, err := service.RenderPDF(scaled)
	if err != nil {
		logger.Error("pdf export failed", "draft_id", draft.ID, "error", err)
		h.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", service.PDFFilename(draft.DishName)))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// DeleteDraft drops a draft before its TTL expires.
func (h *RecipeHandler) DeleteDraft(c *gin.Context) {
	if err := h.drafts.DeleteDraft(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete draft"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RecipeHandler) loadDraft(c *gin.Context) (*types.RecipeDraft, error) {
	draft, err := h.drafts.GetDraft(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrDraftNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe draft not found or expired"})
		return nil, err
	}
	if err != nil {
		logger.Error("failed to load draft", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load recipe draft"})
		return nil, err
	}
	return draft, nil
}

func (h *RecipeHandler) respondError(c *gin.Context, err error) {
	c.JSON(middleware.StatusForError(err), gin.H{"error": err.Error()})
}
