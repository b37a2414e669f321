package rest

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/ouissal-yahyouni/VeggieMarket/internal/app/config"
	"github.com/ouissal-yahyouni/VeggieMarket/internal/platform/logger"
	"github.com/ouissal-yahyouni/VeggieMarket/internal/platform/metrics"
	"github.com/ouissal-yahyouni/VeggieMarket/internal/service"
)

// NewRouter assembles the storefront API. Catalog endpoints are anonymous;
// cart endpoints run behind the session cookie middleware.
func NewRouter(
	carts service.CartService,
	catalog service.CatalogService,
	sessionCfg config.SessionConfig,
	log logger.Logger,
	m *metrics.Manager,
) *gin.Engine {
	if os.Getenv("GIN_MODE") == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), MetricsMiddleware(m))

	h := NewHandler(carts, catalog, log, m)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		v1.GET("/categories", h.ListCategories)
		v1.GET("/categories/:id", h.GetCategory)
		v1.GET("/categories/:id/products", h.ListCategoryProducts)
		v1.GET("/products", h.ListProducts)
		v1.GET("/products/:id", h.GetProduct)

		cart := v1.Group("/cart")
		cart.Use(SessionMiddleware(sessionCfg))
		{
			cart.GET("", h.GetCart)
			cart.DELETE("", h.ClearCart)
			cart.POST("/items", h.AddToCart)
			cart.PATCH("/items/:productID", h.UpdateCartItem)
			cart.DELETE("/items/:productID", h.RemoveFromCart)
		}
	}

	return r
}
