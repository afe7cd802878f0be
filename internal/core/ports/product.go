package ports

import (
	"context"

	"github.com/smartshop/assistant-api/internal/core/domain"
)

// CreateProductInput carries the fields required to create a product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Stock       int
}

// ProductUpdate is a partial update: nil fields are left untouched.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	Stock       *int
}

// ProductRepository defines the in-memory store for products.
// Absence semantics match UserRepository: ok=false, never an error.
type ProductRepository interface {
	Create(ctx context.Context, input CreateProductInput) *domain.Product
	Get(ctx context.Context, id string) (*domain.Product, bool)
	Update(ctx context.Context, id string, upd ProductUpdate) (*domain.Product, bool)
	Delete(ctx context.Context, id string) bool
	List(ctx context.Context) []*domain.Product
	// ListByCategory returns products whose category equals category exactly
	// (case-sensitive, no partial match), in insertion order.
	ListByCategory(ctx context.Context, category string) []*domain.Product
	// AdjustStock adds delta to the current stock, clamping the result at
	// zero, and refreshes the update timestamp.
	AdjustStock(ctx context.Context, id string, delta int) (*domain.Product, bool)
}

// ProductService defines use-case operations for products.
type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, id string, upd ProductUpdate) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Product, error)
	ListByCategory(ctx context.Context, category string) ([]*domain.Product, error)
	AdjustStock(ctx context.Context, id string, delta int) (*domain.Product, error)
}
