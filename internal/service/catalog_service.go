package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ouissal-yahyouni/VeggieMarket/internal/domain/entity"
	"github.com/ouissal-yahyouni/VeggieMarket/internal/platform/logger"
	"github.com/ouissal-yahyouni/VeggieMarket/internal/repository"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)

type CatalogService interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	GetCategory(ctx context.Context, id int64) (*entity.Category, error)
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
	ProductsByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error)
}

type catalogService struct {
	catalogRepo repository.CatalogRepository
	log         logger.Logger
}

func NewCatalogService(catalogRepo repository.CatalogRepository, log logger.Logger) CatalogService {
	return &catalogService{
		catalogRepo: catalogRepo,
		log:         log,
	}
}

func (s *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.catalogRepo.ListCategories(ctx)
	if err != nil {
		s.log.Errorf("Failed to list categories: %v", err)
		return nil, fmt.Errorf("could not list categories: %w", err)
	}
	return categories, nil
}

func (s *catalogService) GetCategory(ctx context.Context, id int64) (*entity.Category, error) {
	category, err := s.catalogRepo.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		s.log.Errorf("Failed to get category %d: %v", id, err)
		return nil, fmt.Errorf("could not get category: %w", err)
	}
	return category, nil
}

func (s *catalogService) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	products, err := s.catalogRepo.ListProducts(ctx, filter)
	if err != nil {
		s.log.Errorf("Failed to list products: %v", err)
		return nil, fmt.Errorf("could not list products: %w", err)
	}
	return products, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := s.catalogRepo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		s.log.Errorf("Failed to get product %d: %v", id, err)
		return nil, fmt.Errorf("could not get product: %w", err)
	}
	return product, nil
}

// ProductsByCategory lists the products of one category, failing with
// ErrCategoryNotFound when the category itself does not exist.
func (s *catalogService) ProductsByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error) {
	if _, err := s.GetCategory(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.ListProducts(ctx, entity.ProductFilter{CategoryID: categoryID})
}
