package memory

import (
	"context"
	"testing"

	"github.com/ouissal-yahyouni/VeggieMarket/internal/domain/entity"
	"github.com/ouissal-yahyouni/VeggieMarket/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepository_SeededData(t *testing.T) {
	repo := NewSeededCatalogRepository()
	ctx := context.Background()

	categories, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 4)

	products, err := repo.ListProducts(ctx, entity.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, products, 12)

	for _, p := range products {
		require.NotNil(t, p.Category, "seeded products resolve their category")
		assert.Equal(t, p.CategoryID, p.Category.ID)
		assert.False(t, p.Price.IsNegative())
	}
}

func TestCatalogRepository_GetByID(t *testing.T) {
	repo := NewSeededCatalogRepository()
	ctx := context.Background()

	product, err := repo.GetProductByID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), product.ID)

	_, err = repo.GetProductByID(ctx, 9999)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	category, err := repo.GetCategoryByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), category.ID)

	_, err = repo.GetCategoryByID(ctx, 9999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCatalogRepository_FilterPipeline(t *testing.T) {
	min := decimal.RequireFromString("2")
	max := decimal.RequireFromString("4")

	testCases := []struct {
		name   string
		filter entity.ProductFilter
		check  func(t *testing.T, products []*entity.Product)
	}{
		{
			name:   "by category",
			filter: entity.ProductFilter{CategoryID: 2},
			check: func(t *testing.T, products []*entity.Product) {
				require.NotEmpty(t, products)
				for _, p := range products {
					assert.Equal(t, int64(2), p.CategoryID)
				}
			},
		},
		{
			name:   "by price range",
			filter: entity.ProductFilter{MinPrice: &min, MaxPrice: &max},
			check: func(t *testing.T, products []*entity.Product) {
				require.NotEmpty(t, products)
				for _, p := range products {
					assert.True(t, p.Price.GreaterThanOrEqual(min))
					assert.True(t, p.Price.LessThanOrEqual(max))
				}
			},
		},
		{
			name:   "substring search on description",
			filter: entity.ProductFilter{Query: "free-range"},
			check: func(t *testing.T, products []*entity.Product) {
				require.NotEmpty(t, products)
			},
		},
		{
			name:   "search and category combined",
			filter: entity.ProductFilter{Query: "apples", CategoryID: 1},
			check: func(t *testing.T, products []*entity.Product) {
				assert.Empty(t, products, "apples are not a vegetable")
			},
		},
	}

	repo := NewSeededCatalogRepository()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			products, err := repo.ListProducts(context.Background(), tc.filter)
			require.NoError(t, err)
			tc.check(t, products)
		})
	}
}
