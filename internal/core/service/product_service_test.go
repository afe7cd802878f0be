package service

import (
	"context"
	"errors"
	"testing"

	"github.com/smartshop/assistant-api/internal/core/domain"
	"github.com/smartshop/assistant-api/internal/core/ports"
	"github.com/smartshop/assistant-api/internal/infrastructure/memory"
)

func newProductService() *ProductService {
	return NewProductService(memory.NewProductRepository(), discardLogger)
}

func TestProductService_CreateGetAdjustFlow(t *testing.T) {
	svc := newProductService()
	ctx := context.Background()

	created, err := svc.Create(ctx, ports.CreateProductInput{
		Name:        "Widget",
		Description: "A widget",
		Price:       9.99,
		Category:    "Tools",
		Stock:       5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" || created.Stock != 5 {
		t.Fatalf("unexpected created product: %+v", created)
	}

	adjusted, err := svc.AdjustStock(ctx, created.ID, -10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if adjusted.Stock != 0 {
		t.Fatalf("expected stock clamped to 0, got %d", adjusted.Stock)
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Stock != 0 {
		t.Fatalf("expected stock 0 after clamp, got %d", got.Stock)
	}
	if !got.UpdatedAt.After(created.UpdatedAt) {
		t.Fatal("expected UpdatedAt later than creation")
	}
}

func TestProductService_Get_Missing(t *testing.T) {
	svc := newProductService()

	_, err := svc.Get(context.Background(), "does-not-exist")
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_AdjustStock_Missing(t *testing.T) {
	svc := newProductService()

	_, err := svc.AdjustStock(context.Background(), "does-not-exist", 1)
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_ListByCategory(t *testing.T) {
	svc := newProductService()
	ctx := context.Background()

	svc.Create(ctx, ports.CreateProductInput{Name: "Teddy", Category: "Toys", Stock: 1})
	svc.Create(ctx, ports.CreateProductInput{Name: "Hammer", Category: "Tools", Stock: 1})

	toys, err := svc.ListByCategory(ctx, "Toys")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toys) != 1 || toys[0].Name != "Teddy" {
		t.Fatalf("unexpected category listing: %+v", toys)
	}
}

func TestProductService_Delete_Missing(t *testing.T) {
	svc := newProductService()

	if err := svc.Delete(context.Background(), "does-not-exist"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
