package repository

import (
	"context"

	"github.com/ouissal-yahyouni/VeggieMarket/internal/domain/entity"
)

// CatalogRepository is the read-only catalog surface: everything is
// synchronous and in-memory, there is no pagination.
type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*entity.Category, error)
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)
	GetProductByID(ctx context.Context, id int64) (*entity.Product, error)
}
