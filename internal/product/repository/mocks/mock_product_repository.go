package mocks

import (
	"context"

	pDomain "github.com/ridloal/product-api/internal/product/domain"

	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) CreateProduct(ctx context.Context, in pDomain.ProductCreate) pDomain.Product {
	args := m.Called(ctx, in)
	return args.Get(0).(pDomain.Product)
}

func (m *MockProductRepository) GetProductByID(ctx context.Context, id int64) (pDomain.Product, bool) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(pDomain.Product), args.Bool(1)
	}
	return pDomain.Product{}, args.Bool(1)
}

func (m *MockProductRepository) Count(ctx context.Context) int {
	args := m.Called(ctx)
	return args.Int(0)
}

func (m *MockProductRepository) NextID(ctx context.Context) int64 {
	args := m.Called(ctx)
	return args.Get(0).(int64)
}
