package memory

import (
	"context"
	"strings"

	"github.com/ouissal-yahyouni/VeggieMarket/internal/domain/entity"
	"github.com/ouissal-yahyouni/VeggieMarket/internal/repository"
)

// catalogRepository serves the static product catalog. The data is immutable
// once constructed, so reads need no locking.
type catalogRepository struct {
	categories []*entity.Category
	products   []*entity.Product
}

// NewCatalogRepository builds a catalog over the given data, resolving each
// product's Category reference by CategoryID.
func NewCatalogRepository(categories []*entity.Category, products []*entity.Product) repository.CatalogRepository {
	byID := make(map[int64]*entity.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}
	for _, p := range products {
		if p.Category == nil {
			p.Category = byID[p.CategoryID]
		}
	}
	return &catalogRepository{
		categories: categories,
		products:   products,
	}
}

// NewSeededCatalogRepository returns the catalog backed by the built-in
// VeggieMarket data set.
func NewSeededCatalogRepository() repository.CatalogRepository {
	return NewCatalogRepository(seedCategories(), seedProducts())
}

func (r *catalogRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *catalogRepository) GetCategoryByID(ctx context.Context, id int64) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *catalogRepository) GetProductByID(ctx context.Context, id int64) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *catalogRepository) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		if matches(p, filter) {
			out = append(out, p)
		}
	}
	return out, nil
}

func matches(p *entity.Product, f entity.ProductFilter) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}
	if f.CategoryID != 0 && p.CategoryID != f.CategoryID {
		return false
	}
	if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	return true
}
