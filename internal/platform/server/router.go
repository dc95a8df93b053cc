package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ridloal/product-api/internal/platform/health"
	"github.com/ridloal/product-api/internal/platform/middleware"
	productAPI "github.com/ridloal/product-api/internal/product/api"
	"golang.org/x/time/rate"
)

type RouterDeps struct {
	ProductHandler *productAPI.ProductHandler
	AllowedOrigins []string
	// RateLimiter may be nil to disable limiting.
	RateLimiter *rate.Limiter
}

func SetGinMode(production bool) {
	if production {
		gin.SetMode(gin.ReleaseMode)
	}
}

func NewRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.RedirectTrailingSlash = false
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())
	r.Use(cors.New(corsConfig(dep.AllowedOrigins)))

	// probes and scraping bypass the limiter
	health.NewHandler().RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("")
	api.Use(middleware.RateLimit(dep.RateLimiter))
	dep.ProductHandler.RegisterRoutes(api)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"detail": "Method Not Allowed"})
	})

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, middleware.RequestIDHeader)
	cfg.ExposeHeaders = []string{middleware.RequestIDHeader}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
