package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/doanhtu/image-interpolation/internal/config"
	"github.com/doanhtu/image-interpolation/internal/http/handlers"
	"github.com/doanhtu/image-interpolation/internal/services/processor"
)

func testRouterConfig() *config.Config {
	return &config.Config{
		Resize: config.ResizeConfig{
			MinScale: 1.0,
			MaxScale: 4.0,
			Step:     0.5,
		},
	}
}

func TestSetupRoutesServesPage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := testRouterConfig()
	handler := handlers.NewImageHandler(
		processor.NewImageProcessor(), nil, nil, zap.NewNop(), cfg)
	router := NewRouter(handler, zap.NewNop(), cfg).SetupRoutes()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Image Resizer")
	assert.Contains(t, rec.Body.String(), `min="1" max="4" step="0.5"`)
}

func TestSetupRoutesSecurityHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := testRouterConfig()
	handler := handlers.NewImageHandler(
		processor.NewImageProcessor(), nil, nil, zap.NewNop(), cfg)
	router := NewRouter(handler, zap.NewNop(), cfg).SetupRoutes()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}
