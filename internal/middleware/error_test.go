package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/harshithsai-30/Recipe-generator-using-Gemini-Flash/internal/types"
)

func TestStatusForError(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusForError(types.InvalidInputf("bad servings")))
	assert.Equal(t, http.StatusBadGateway, StatusForError(types.ExternalServicef("model down")))
	assert.Equal(t, http.StatusInternalServerError, StatusForError(types.Exportf("pdf failed")))
	assert.Equal(t, http.StatusInternalServerError, StatusForError(errors.New("something else")))
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("should turn panics into a JSON 500", func(t *testing.T) {
		engine := gin.New()
		engine.Use(ErrorHandler())
		engine.GET("/boom", func(c *gin.Context) {
			panic("kitchen fire")
		})

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest("GET", "/boom", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Internal Server Error")
	})

	t.Run("should map attached errors by kind", func(t *testing.T) {
		engine := gin.New()
		engine.Use(ErrorHandler())
		engine.GET("/fail", func(c *gin.Context) {
			_ = c.Error(types.ExternalServicef("model unavailable"))
		})

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest("GET", "/fail", nil))

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), "model unavailable")
	})
}
