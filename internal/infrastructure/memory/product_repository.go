package memory

import (
	"context"
	"sync"
	"time"

	"github.com/smartshop/assistant-api/internal/core/domain"

	"github.com/smartshop/assistant-api/internal/core/ports"
)

// ProductRepository is an in-memory keyed store for products. Locking and
// insertion-order semantics mirror UserRepository.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
	order    []string
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: make(map[string]*domain.Product)}
}

func (r *ProductRepository) Create(_ context.Context, input ports.CreateProductInput) *domain.Product {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := newID("prd")
	for _, taken := r.products[id]; taken; _, taken = r.products[id] {
		id = newID("prd")
	}

	stock := input.Stock
	if stock < 0 {
		stock = 0
	}

	now := time.Now().UTC()
	product := &domain.Product{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Stock:       stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.products[id] = product
	r.order = append(r.order, id)

	clone := *product
	return &clone
}

func (r *ProductRepository) Get(_ context.Context, id string) (*domain.Product, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, false
	}
	clone := *product
	return &clone, true
}

// Update merges the non-nil fields of upd onto the stored record and
// refreshes UpdatedAt. A supplied stock value is clamped at zero.
func (r *ProductRepository) Update(_ context.Context, id string, upd ports.ProductUpdate) (*domain.Product, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, false
	}

	if upd.Name != nil {
		product.Name = *upd.Name
	}
	if upd.Description != nil {
		product.Description = *upd.Description
	}
	if upd.Price != nil {
		product.Price = *upd.Price
	}
	if upd.Category != nil {
		product.Category = *upd.Category
	}
	if upd.Stock != nil {
		product.Stock = *upd.Stock
		if product.Stock < 0 {
			product.Stock = 0
		}
	}
	product.UpdatedAt = nextTimestamp(product.UpdatedAt)

	clone := *product
	return &clone, true
}

func (r *ProductRepository) Delete(_ context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return false
	}
	delete(r.products, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

func (r *ProductRepository) List(_ context.Context) []*domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Product, 0, len(r.order))
	for _, id := range r.order {
		clone := *r.products[id]
		out = append(out, &clone)
	}
	return out
}

// ListByCategory returns products whose category equals category exactly.
// The match is case-sensitive: "Toys" does not include "toys".
func (r *ProductRepository) ListByCategory(_ context.Context, category string) []*domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Product
	for _, id := range r.order {
		if r.products[id].Category != category {
			continue
		}
		clone := *r.products[id]
		out = append(out, &clone)
	}
	return out
}

// AdjustStock adds delta to the current stock and clamps the result at
// zero, so stock never goes negative regardless of how large a negative
// delta is supplied.
func (r *ProductRepository) AdjustStock(_ context.Context, id string, delta int) (*domain.Product, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, false
	}

	product.Stock += delta
	if product.Stock < 0 {
		product.Stock = 0
	}
	product.UpdatedAt = nextTimestamp(product.UpdatedAt)

	clone := *product
	return &clone, true
}
