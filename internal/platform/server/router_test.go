package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/product-api/internal/platform/middleware"
	productAPI "github.com/ridloal/product-api/internal/product/api"
	"github.com/ridloal/product-api/internal/product/repository"
	"github.com/ridloal/product-api/internal/product/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func buildRouter(origins []string, limiter *rate.Limiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := productAPI.NewProductHandler(service.NewProductService(repository.NewMemoryProductRepository()))
	return NewRouter(RouterDeps{ProductHandler: handler, AllowedOrigins: origins, RateLimiter: limiter})
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestNewRouter_ServesAllRoutes(t *testing.T) {
	router := buildRouter(nil, nil)

	root := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, root.Code)

	healthRR := serve(router, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.JSONEq(t, `{"status":"healthy"}`, healthRR.Body.String())

	req := httptest.NewRequest(http.MethodPost, "/items", bytes.NewBufferString(`{"name":"テスト商品","price":1000.0}`))
	req.Header.Set("Content-Type", "application/json")
	created := serve(router, req)
	assert.Equal(t, http.StatusCreated, created.Code)
	assert.NotEmpty(t, created.Header().Get(middleware.RequestIDHeader))

	got := serve(router, httptest.NewRequest(http.MethodGet, "/items/1", nil))
	assert.Equal(t, http.StatusOK, got.Code)

	metricsRR := serve(router, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, metricsRR.Code)
	assert.True(t, strings.Contains(metricsRR.Body.String(), "product_api_requests_total"))
}

func TestNewRouter_CORS(t *testing.T) {
	t.Run("Allowed origin is echoed", func(t *testing.T) {
		router := buildRouter([]string{"https://shop.example"}, nil)
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://shop.example")

		rr := serve(router, req)

		assert.Equal(t, "https://shop.example", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Unknown origin is refused", func(t *testing.T) {
		router := buildRouter([]string{"https://shop.example"}, nil)
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://evil.example")

		rr := serve(router, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Wildcard allows any origin", func(t *testing.T) {
		router := buildRouter([]string{"*"}, nil)
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://anywhere.example")

		rr := serve(router, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestNewRouter_RateLimitSkipsHealth(t *testing.T) {
	router := buildRouter(nil, rate.NewLimiter(rate.Limit(0.0001), 1))

	first := serve(router, httptest.NewRequest(http.MethodGet, "/items/1", nil))
	second := serve(router, httptest.NewRequest(http.MethodGet, "/items/1", nil))
	healthRR := serve(router, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusNotFound, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, http.StatusOK, healthRR.Code)
}

func TestNewRouter_UnknownRoutesAndMethods(t *testing.T) {
	router := buildRouter(nil, nil)

	t.Run("Wrong method on a known path returns 405", func(t *testing.T) {
		rr := serve(router, httptest.NewRequest(http.MethodPost, "/health", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
		assert.JSONEq(t, `{"detail":"Method Not Allowed"}`, rr.Body.String())
	})

	t.Run("DELETE on an item returns 405", func(t *testing.T) {
		rr := serve(router, httptest.NewRequest(http.MethodDelete, "/items/1", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})

	t.Run("Unknown path returns 404", func(t *testing.T) {
		rr := serve(router, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"detail":"Not Found"}`, rr.Body.String())
	})
}
