package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ouissal-yahyouni/VeggieMarket/internal/domain/entity"
	"github.com/ouissal-yahyouni/VeggieMarket/internal/platform/logger"
	"github.com/ouissal-yahyouni/VeggieMarket/internal/platform/metrics"
	"github.com/ouissal-yahyouni/VeggieMarket/internal/service"
	"github.com/shopspring/decimal"
)

type Handler struct {
	carts   service.CartService
	catalog service.CatalogService
	log     logger.Logger
	metrics *metrics.Manager
}

func NewHandler(carts service.CartService, catalog service.CatalogService, log logger.Logger, m *metrics.Manager) *Handler {
	return &Handler{
		carts:   carts,
		catalog: catalog,
		log:     log,
		metrics: m,
	}
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		h.log.Errorf("error listing categories: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Failed to list categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *Handler) GetCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	category, err := h.catalog.GetCategory(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Category not found"})
			return
		}
		h.log.Errorf("error getting category %d: %v", id, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Failed to get category"})
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *Handler) ListCategoryProducts(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	products, err := h.catalog.ProductsByCategory(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Category not found"})
			return
		}
		h.log.Errorf("error listing products for category %d: %v", id, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Failed to list products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *Handler) ListProducts(c *gin.Context) {
	filter, ok := productFilter(c)
	if !ok {
		return
	}
	products, err := h.catalog.ListProducts(c.Request.Context(), filter)
	if err != nil {
		h.log.Errorf("error listing products: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Failed to list products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	product, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		h.log.Errorf("error getting product %d: %v", id, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Failed to get product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) GetCart(c *gin.Context) {
	cart, err := h.carts.GetCart(c.Request.Context(), sessionID(c))
	if err != nil {
		h.log.Errorf("error getting cart: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Failed to get cart"})
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *Handler) AddToCart(c *gin.Context) {
	var request struct {
		ProductID int64 `json:"product_id"`
		Quantity  int   `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if request.ProductID <= 0 || request.Quantity < 1 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Product ID and quantity must be valid"})
		return
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), request.ProductID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		h.log.Errorf("error resolving product %d for add to cart: %v", request.ProductID, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Failed to add product to cart"})
		return
	}

	cart, err := h.carts.AddItem(c.Request.Context(), sessionID(c), product, request.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrInvalidQuantity) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Quantity must be a positive integer"})
			return
		}
		h.log.Errorf("error adding product %d to cart: %v", request.ProductID, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Failed to add product to cart"})
		return
	}

	h.metrics.CartItemAddsTotal.Inc()
	c.JSON(http.StatusOK, cart)
}

func (h *Handler) UpdateCartItem(c *gin.Context) {
	productID, ok := pathID(c, "productID")
	if !ok {
		return
	}
	var request struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	cart, err := h.carts.UpdateItemQuantity(c.Request.Context(), sessionID(c), productID, request.Quantity)
	if err != nil {
		h.log.Errorf("error updating quantity for product %d: %v", productID, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Failed to update cart item"})
		return
	}

	h.metrics.CartQuantityUpdatesTotal.Inc()
	c.JSON(http.StatusOK, cart)
}

func (h *Handler) RemoveFromCart(c *gin.Context) {
	productID, ok := pathID(c, "productID")
	if !ok {
		return
	}

	cart, err := h.carts.RemoveItem(c.Request.Context(), sessionID(c), productID)
	if err != nil {
		h.log.Errorf("error removing product %d from cart: %v", productID, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Failed to remove cart item"})
		return
	}

	h.metrics.CartItemRemovesTotal.Inc()
	c.JSON(http.StatusOK, cart)
}

func (h *Handler) ClearCart(c *gin.Context) {
	cart, err := h.carts.ClearCart(c.Request.Context(), sessionID(c))
	if err != nil {
		h.log.Errorf("error clearing cart: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Failed to clear cart"})
		return
	}

	h.metrics.CartClearsTotal.Inc()
	c.JSON(http.StatusOK, cart)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid identifier"})
		return 0, false
	}
	return id, true
}

func productFilter(c *gin.Context) (entity.ProductFilter, bool) {
	filter := entity.ProductFilter{Query: c.Query("q")}

	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid category_id"})
			return entity.ProductFilter{}, false
		}
		filter.CategoryID = id
	}
	if raw := c.Query("min_price"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid min_price"})
			return entity.ProductFilter{}, false
		}
		filter.MinPrice = &min
	}
	if raw := c.Query("max_price"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid max_price"})
			return entity.ProductFilter{}, false
		}
		filter.MaxPrice = &max
	}
	return filter, true
}
