package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harshithsai-30/Recipe-generator-using-Gemini-Flash/internal/api"
	"github.com/harshithsai-30/Recipe-generator-using-Gemini-Flash/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(recipeHandler *api.RecipeHandler) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	recipeHandler.RegisterRoutes(v1)

	return router
}
