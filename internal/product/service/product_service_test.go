package service

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/ridloal/product-api/internal/platform/metrics"
	pDomain "github.com/ridloal/product-api/internal/product/domain"
	"github.com/ridloal/product-api/internal/product/repository"
	"github.com/ridloal/product-api/internal/product/repository/mocks"
	"github.com/stretchr/testify/assert"
)

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(mocks.MockProductRepository)
	productServiceInstance := NewProductService(mockRepo)

	ctx := context.TODO()
	in := pDomain.ProductCreate{Name: "テスト商品", Price: 1000.0}
	stored := pDomain.Product{ID: 1, Name: in.Name, Price: in.Price, CreatedAt: time.Now()}

	t.Run("Delegates to repository and counts the creation", func(t *testing.T) {
		before := testutil.ToFloat64(metrics.ProductsCreatedTotal)
		mockRepo.On("CreateProduct", ctx, in).Return(stored).Once()

		product := productServiceInstance.CreateProduct(ctx, in)

		assert.Equal(t, stored, product)
		assert.Equal(t, before+1, testutil.ToFloat64(metrics.ProductsCreatedTotal))
		mockRepo.AssertExpectations(t)
	})
}

func TestProductService_GetProduct(t *testing.T) {
	mockRepo := new(mocks.MockProductRepository)
	productServiceInstance := NewProductService(mockRepo)

	ctx := context.TODO()
	mockProduct := pDomain.Product{ID: 7, Name: "商品A", Price: 100, CreatedAt: time.Now()}

	t.Run("Product found", func(t *testing.T) {
		found := metrics.ProductLookupsTotal.WithLabelValues("found")
		before := testutil.ToFloat64(found)
		mockRepo.On("GetProductByID", ctx, int64(7)).Return(mockProduct, true).Once()

		product, ok := productServiceInstance.GetProduct(ctx, 7)

		assert.True(t, ok)
		assert.Equal(t, mockProduct, product)
		assert.Equal(t, before+1, testutil.ToFloat64(found))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Product not found", func(t *testing.T) {
		notFound := metrics.ProductLookupsTotal.WithLabelValues("not_found")
		before := testutil.ToFloat64(notFound)
		mockRepo.On("GetProductByID", ctx, int64(999)).Return(nil, false).Once()

		product, ok := productServiceInstance.GetProduct(ctx, 999)

		assert.False(t, ok)
		assert.Equal(t, pDomain.Product{}, product)
		assert.Equal(t, before+1, testutil.ToFloat64(notFound))
		mockRepo.AssertExpectations(t)
	})
}

func TestProductService_RoundTripWithMemoryRepository(t *testing.T) {
	svc := NewProductService(repository.NewMemoryProductRepository())
	ctx := context.TODO()

	created := svc.CreateProduct(ctx, pDomain.ProductCreate{Name: "統合テスト商品", Price: 2000.0})
	got, ok := svc.GetProduct(ctx, created.ID)

	assert.True(t, ok)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.Price, got.Price)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
}
