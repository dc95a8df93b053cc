package service

import (
	"context"

	"github.com/ridloal/product-api/internal/platform/logger"
	"github.com/ridloal/product-api/internal/platform/metrics"
	"github.com/ridloal/product-api/internal/product/domain"
	"github.com/ridloal/product-api/internal/product/repository"
)

type ProductService interface {
	CreateProduct(ctx context.Context, in domain.ProductCreate) domain.Product
	// GetProduct returns ok == false when no product has the given id.
	GetProduct(ctx context.Context, id int64) (product domain.Product, ok bool)
}

type productServiceImpl struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productServiceImpl{repo: repo}
}

func (s *productServiceImpl) CreateProduct(ctx context.Context, in domain.ProductCreate) domain.Product {
	product := s.repo.CreateProduct(ctx, in)
	metrics.ProductsCreatedTotal.Inc()
	logger.WithFields(logger.Fields{"product_id": product.ID, "name": product.Name}).Info("Product created")
	return product
}

func (s *productServiceImpl) GetProduct(ctx context.Context, id int64) (domain.Product, bool) {
	product, ok := s.repo.GetProductByID(ctx, id)
	if !ok {
		metrics.ProductLookupsTotal.WithLabelValues("not_found").Inc()
		logger.Debug("GetProduct: product %d not found", id)
		return domain.Product{}, false
	}
	metrics.ProductLookupsTotal.WithLabelValues("found").Inc()
	return product, true
}
