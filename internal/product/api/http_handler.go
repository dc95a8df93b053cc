package api

import (
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/product-api/internal/platform/logger"
	"github.com/ridloal/product-api/internal/platform/metrics"
	"github.com/ridloal/product-api/internal/product/domain"
	"github.com/ridloal/product-api/internal/product/service"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(ps service.ProductService) *ProductHandler {
	return &ProductHandler{productService: ps}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	itemRoutes := router.Group("/items")
	{
		itemRoutes.POST("", h.CreateProduct)
		itemRoutes.GET("/:id", h.GetProduct)
	}
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req domain.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.rejectInput(c, "CreateProduct", bindError(err))
		return
	}

	in, err := domain.NewProductCreate(req)
	if err != nil {
		h.rejectInput(c, "CreateProduct", domain.AsValidationError(err))
		return
	}

	product := h.productService.CreateProduct(c.Request.Context(), in)
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	rawID := c.Param("id")
	productID, err := strconv.ParseInt(rawID, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		// A well-formed integer beyond int64 was never issued by storage.
		metrics.ProductLookupsTotal.WithLabelValues("not_found").Inc()
		notFound(c, canonicalInt(rawID))
		return
	}
	if err != nil {
		h.rejectInput(c, "GetProduct", invalidIDError("product_id"))
		return
	}

	product, ok := h.productService.GetProduct(c.Request.Context(), productID)
	if !ok {
		notFound(c, strconv.FormatInt(productID, 10))
		return
	}
	c.JSON(http.StatusOK, product)
}

func notFound(c *gin.Context, id string) {
	c.JSON(http.StatusNotFound, gin.H{"detail": fmt.Sprintf("商品ID %s が見つかりません", id)})
}

// canonicalInt drops sign and leading-zero noise from a decimal string
// ParseInt already accepted syntactically ("+007" -> "7").
func canonicalInt(s string) string {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return s
	}
	return n.String()
}

func (h *ProductHandler) rejectInput(c *gin.Context, op string, verr *domain.ValidationError) {
	for _, field := range verr.Fields() {
		metrics.ValidationFailuresTotal.WithLabelValues(field).Inc()
	}
	logger.Debug("%s: rejected input: %v", op, verr)
	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": verr.Errors})
}
