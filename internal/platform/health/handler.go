package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	ServiceTitle       = "商品管理API"
	ServiceDescription = "シンプルな商品管理システムのREST API"
	ServiceVersion     = "1.0.0"

	WelcomeMessage = "商品管理APIへようこそ"
)

type RootResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// Handler serves the static liveness endpoints. Neither touches state.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.Root)
	r.GET("/health", h.HealthCheck)
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{Message: WelcomeMessage})
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy"})
}
