package memory

import (
	"time"

	"github.com/ouissal-yahyouni/VeggieMarket/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var seedTime = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func seedCategories() []*entity.Category {
	return []*entity.Category{
		{
			ID:          1,
			Name:        "Fresh Vegetables",
			Description: "Seasonal vegetables straight from local growers",
			Slug:        "fresh-vegetables",
			Image:       "/images/categories/vegetables.jpg",
			CreatedAt:   seedTime,
			UpdatedAt:   seedTime,
		},
		{
			ID:          2,
			Name:        "Fruits",
			Description: "Ripe fruits picked at their best",
			Slug:        "fruits",
			Image:       "/images/categories/fruits.jpg",
			CreatedAt:   seedTime,
			UpdatedAt:   seedTime,
		},
		{
			ID:          3,
			Name:        "Herbs & Aromatics",
			Description: "Fresh-cut herbs, garlic and ginger",
			Slug:        "herbs-aromatics",
			Image:       "/images/categories/herbs.jpg",
			CreatedAt:   seedTime,
			UpdatedAt:   seedTime,
		},
		{
			ID:          4,
			Name:        "Dairy & Eggs",
			Description: "Farm dairy products and free-range eggs",
			Slug:        "dairy-eggs",
			Image:       "/images/categories/dairy.jpg",
			CreatedAt:   seedTime,
			UpdatedAt:   seedTime,
		},
	}
}

func seedProducts() []*entity.Product {
	return []*entity.Product{
		{
			ID:          1,
			Name:        "Organic Carrots",
			Description: "Crunchy organic carrots, sold by the kilo",
			Price:       decimal.NewFromFloat(2.49),
			Stock:       120,
			Image:       "/images/products/carrots.jpg",
			CategoryID:  1,
			CreatedAt:   seedTime,
			UpdatedAt:   seedTime,
		},
		{
			ID:          2,
			Name:        "Heirloom Tomatoes",
			Description: "Mixed heirloom tomatoes with full summer flavour",
			Price:       decimal.NewFromFloat(4.90),
			Stock:       80,
			Image:       "/images/products/tomatoes.jpg",
			CategoryID:  1,
			CreatedAt:   seedTime,
			UpdatedAt:   seedTime,
		},
		{
			ID:          3,
			Name:        "Baby Spinach",
			Description: "Tender baby spinach leaves, washed and ready",
			Price:       decimal.NewFromFloat(3.20),
			Stock:       60,
			Image:       "/images/products/spinach.jpg",
			CategoryID:  1,
			CreatedAt:   seedTime,
			UpdatedAt:   seedTime,
		},
		{
			ID:          4,
			Name:        "Red Bell Peppers",
			Description: "Sweet red peppers, great roasted or raw",
			Price:       decimal.NewFromFloat(1.85),
			Stock:       150,
			Image:       "/images/products/peppers.jpg",
			CategoryID:  1,
			CreatedAt:   seedTime,
			UpdatedAt:   seedTime,
		},
		{
			ID:          5,
			Name:        "Gala Apples",
			Description: "Crisp Gala apples, sold by the kilo",
			Price:       decimal.NewFromFloat(3.75),
			Stock:       200,
			Image:       "/images/products/apples.jpg",
			CategoryID:  2,
			CreatedAt:   seedTime,
			UpdatedAt:   seedTime,
		},
		{
			ID:          6,
			Name:        "Strawberries",
			Description: "Sweet strawberries in a 500g punnet",
			Price:       decimal.NewFromFloat(5.50),
			Stock:       45,
			Image:       "/images/products/strawberries.jpg",
			CategoryID:  2,
			CreatedAt:   seedTime,
			UpdatedAt:   seedTime,
		},
		{
			ID:          7,
			Name:        "Bananas",
			Description: "Fair-trade bananas, sold by the bunch",
			Price:       decimal.NewFromFloat(2.10),
			Stock:       300,
			Image:       "/images/products/bananas.jpg",
			CategoryID:  2,
			CreatedAt:   seedTime,
			UpdatedAt:   seedTime,
		},
		{
			ID:          8,
			Name:        "Fresh Basil",
			Description: "Fragrant basil bunch, cut to order",
			Price:       decimal.NewFromFloat(1.60),
			Stock:       40,
			Image:       "/images/products/basil.jpg",
			CategoryID:  3,
			CreatedAt:   seedTime,
			UpdatedAt:   seedTime,
		},
		{
			ID:          9,
			Name:        "Garlic Braid",
			Description: "Braided pink garlic, about 10 heads",
			Price:       decimal.NewFromFloat(6.80),
			Stock:       25,
			Image:       "/images/products/garlic.jpg",
			CategoryID:  3,
			CreatedAt:   seedTime,
			UpdatedAt:   seedTime,
		},
		{
			ID:          10,
			Name:        "Free-Range Eggs",
			Description: "Box of 12 free-range eggs",
			Price:       decimal.NewFromFloat(4.20),
			Stock:       90,
			Image:       "/images/products/eggs.jpg",
			CategoryID:  4,
			CreatedAt:   seedTime,
			UpdatedAt:   seedTime,
		},
		{
			ID:          11,
			Name:        "Farm Butter",
			Description: "Churned salted butter, 250g",
			Price:       decimal.NewFromFloat(3.95),
			Stock:       70,
			Image:       "/images/products/butter.jpg",
			CategoryID:  4,
			CreatedAt:   seedTime,
			UpdatedAt:   seedTime,
		},
		{
			ID:          12,
			Name:        "Goat Cheese",
			Description: "Soft goat cheese log from the neighbouring farm",
			Price:       decimal.NewFromFloat(7.40),
			Stock:       30,
			Image:       "/images/products/goat-cheese.jpg",
			CategoryID:  4,
			CreatedAt:   seedTime,
			UpdatedAt:   seedTime,
		},
	}
}
