package repository

import (
	"context"
	"sync"
	"time"

	"github.com/ridloal/product-api/internal/product/domain"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, in domain.ProductCreate) domain.Product
	// GetProductByID reports absence with ok == false; a missing id is not an error.
	GetProductByID(ctx context.Context, id int64) (product domain.Product, ok bool)
	Count(ctx context.Context) int
	NextID(ctx context.Context) int64
}

type memoryProductRepository struct {
	mu       sync.RWMutex
	products map[int64]domain.Product
	nextID   int64
	now      func() time.Time
}

func NewMemoryProductRepository() ProductRepository {
	return newMemoryProductRepository(time.Now)
}

func newMemoryProductRepository(now func() time.Time) *memoryProductRepository {
	return &memoryProductRepository{
		products: make(map[int64]domain.Product),
		nextID:   1,
		now:      now,
	}
}

func (r *memoryProductRepository) CreateProduct(_ context.Context, in domain.ProductCreate) domain.Product {
	r.mu.Lock()
	defer r.mu.Unlock()

	// id allocation, insert and increment happen under one lock
	p := domain.Product{
		ID:        r.nextID,
		Name:      in.Name,
		Price:     in.Price,
		CreatedAt: r.now(),
	}
	r.products[p.ID] = p
	r.nextID++

	return p
}

func (r *memoryProductRepository) GetProductByID(_ context.Context, id int64) (domain.Product, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	return p, ok
}

func (r *memoryProductRepository) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products)
}

func (r *memoryProductRepository) NextID(_ context.Context) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.nextID
}
