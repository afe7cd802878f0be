package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/smartshop/assistant-api/internal/core/domain"
	"github.com/smartshop/assistant-api/internal/core/ports"
)

// ProductService implements ports.ProductService on top of the in-memory
// store, translating store misses into domain.ErrProductNotFound.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	product := s.repo.Create(ctx, input)
	s.logger.Info().
		Str("product_id", product.ID).
		Str("category", product.Category).
		Int("stock", product.Stock).
		Msg("product created")
	return product, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	product, ok := s.repo.Get(ctx, id)
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id string, upd ports.ProductUpdate) (*domain.Product, error) {
	product, ok := s.repo.Update(ctx, id, upd)
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	s.logger.Info().Str("product_id", id).Msg("product updated")
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if !s.repo.Delete(ctx, id) {
		return domain.ErrProductNotFound
	}
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx), nil
}

func (s *ProductService) ListByCategory(ctx context.Context, category string) ([]*domain.Product, error) {
	return s.repo.ListByCategory(ctx, category), nil
}

func (s *ProductService) AdjustStock(ctx context.Context, id string, delta int) (*domain.Product, error) {
	product, ok := s.repo.AdjustStock(ctx, id, delta)
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	s.logger.Info().
		Str("product_id", id).
		Int("delta", delta).
		Int("stock", product.Stock).
		Msg("stock adjusted")
	return product, nil
}
