package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/harshithsai-30/Recipe-generator-using-Gemini-Flash/config"
	"github.com/harshithsai-30/Recipe-generator-using-Gemini-Flash/internal/api"
	"github.com/harshithsai-30/Recipe-generator-using-Gemini-Flash/internal/logger"
	"github.com/harshithsai-30/Recipe-generator-using-Gemini-Flash/internal/middleware"
	"github.com/harshithsai-30/Recipe-generator-using-Gemini-Flash/internal/router"
	"github.com/harshithsai-30/Recipe-generator-using-Gemini-Flash/internal/service"
)

// Server represents the HTTP server
type Server struct {
	engine *gin.Engine
	http   *http.Server
}

// NewServer wires the handler pipeline and returns a server ready to start.
func NewServer(cfg *config.Config, redisClient *redis.Client) *Server {
	llmService := service.NewLLMService(cfg)
	draftStore := service.NewDraftStore(redisClient)
	rateLimiter := middleware.NewGenerationRateLimiter(redisClient)

	recipeHandler := api.NewRecipeHandler(llmService, draftStore, rateLimiter)
	engine := router.SetupRouter(recipeHandler)

	return &Server{
		engine: engine,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: engine,
		},
	}
}

// Start starts the server and blocks until it stops serving.
func (s *Server) Start() error {
	logger.Info("starting server", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
