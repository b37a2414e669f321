package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ouissal-yahyouni/VeggieMarket/internal/adapter/memory"
	"github.com/ouissal-yahyouni/VeggieMarket/internal/app/config"
	"github.com/ouissal-yahyouni/VeggieMarket/internal/domain/entity"
	"github.com/ouissal-yahyouni/VeggieMarket/internal/platform/logger"
	"github.com/ouissal-yahyouni/VeggieMarket/internal/platform/metrics"
	"github.com/ouissal-yahyouni/VeggieMarket/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNop()
	carts := service.NewCartService(memory.NewCartRepository(), nil, log, service.CartServiceConfig{})
	catalog := service.NewCatalogService(memory.NewSeededCatalogRepository(), log)
	sessionCfg := config.SessionConfig{CookieName: "session_id", CookieMaxAge: time.Hour}

	return NewRouter(carts, catalog, sessionCfg, log, metrics.NewManager("test"))
}

// client keeps the session cookie across requests, the way a browser would.
type client struct {
	t       *testing.T
	router  *gin.Engine
	cookies []*http.Cookie
}

func newClient(t *testing.T, router *gin.Engine) *client {
	return &client{t: t, router: router}
}

func (c *client) do(method, target string, body any) *httptest.ResponseRecorder {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)

	if cookies := rec.Result().Cookies(); len(cookies) > 0 {
		c.cookies = cookies
	}
	return rec
}

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) *entity.Cart {
	t.Helper()
	var cart entity.Cart
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	return &cart
}

func TestRouter_Health(t *testing.T) {
	c := newClient(t, newTestRouter(t))

	rec := c.do(http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_CatalogEndpoints(t *testing.T) {
	c := newClient(t, newTestRouter(t))

	rec := c.do(http.MethodGet, "/api/v1/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var categoriesBody struct {
		Categories []*entity.Category `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categoriesBody))
	assert.Len(t, categoriesBody.Categories, 4)

	rec = c.do(http.MethodGet, "/api/v1/products/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var product entity.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))
	assert.Equal(t, int64(1), product.ID)

	rec = c.do(http.MethodGet, "/api/v1/products/9999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = c.do(http.MethodGet, "/api/v1/categories/9999/products", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = c.do(http.MethodGet, "/api/v1/products/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_ProductFilters(t *testing.T) {
	c := newClient(t, newTestRouter(t))

	rec := c.do(http.MethodGet, "/api/v1/products?min_price=3&max_price=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Products []*entity.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Products)
	min := decimal.RequireFromString("3")
	max := decimal.RequireFromString("5")
	for _, p := range body.Products {
		assert.True(t, p.Price.GreaterThanOrEqual(min))
		assert.True(t, p.Price.LessThanOrEqual(max))
	}

	rec = c.do(http.MethodGet, "/api/v1/products?q=organic", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Products)

	rec = c.do(http.MethodGet, "/api/v1/products?min_price=cheap", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = c.do(http.MethodGet, "/api/v1/products?category_id=-1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_CartLifecycle(t *testing.T) {
	c := newClient(t, newTestRouter(t))

	rec := c.do(http.MethodGet, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, c.cookies, "first cart request mints the session cookie")
	cart := decodeCart(t, rec)
	assert.Empty(t, cart.Items)
	assert.True(t, cart.Total.IsZero())
	sessionCookie := c.cookies[0].Value

	rec = c.do(http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": 1, "quantity": 2})
	require.Equal(t, http.StatusOK, rec.Code)
	cart = decodeCart(t, rec)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(1), cart.Items[0].ProductID)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.True(t, cart.Total.Equal(decimal.RequireFromString("4.98")))

	rec = c.do(http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": 1, "quantity": 1})
	require.Equal(t, http.StatusOK, rec.Code)
	cart = decodeCart(t, rec)
	require.Len(t, cart.Items, 1, "same product merges into one line")
	assert.Equal(t, 3, cart.Items[0].Quantity)

	rec = c.do(http.MethodPatch, "/api/v1/cart/items/1", gin.H{"quantity": 5})
	require.Equal(t, http.StatusOK, rec.Code)
	cart = decodeCart(t, rec)
	assert.Equal(t, 5, cart.Items[0].Quantity)

	rec = c.do(http.MethodPatch, "/api/v1/cart/items/1", gin.H{"quantity": 0})
	require.Equal(t, http.StatusOK, rec.Code)
	cart = decodeCart(t, rec)
	assert.Empty(t, cart.Items, "quantity zero removes the line")
	assert.True(t, cart.Total.IsZero())

	rec = c.do(http.MethodGet, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, sessionCookie, c.cookies[0].Value, "session survives the whole flow")
}

func TestRouter_CartAbsentItemOperationsAreNoOps(t *testing.T) {
	c := newClient(t, newTestRouter(t))

	rec := c.do(http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": 2, "quantity": 1})
	require.Equal(t, http.StatusOK, rec.Code)
	before := decodeCart(t, rec)

	rec = c.do(http.MethodDelete, "/api/v1/cart/items/99", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cart := decodeCart(t, rec)
	require.Len(t, cart.Items, 1)
	assert.True(t, cart.Total.Equal(before.Total))

	rec = c.do(http.MethodPatch, "/api/v1/cart/items/99", gin.H{"quantity": 3})
	require.Equal(t, http.StatusOK, rec.Code)
	cart = decodeCart(t, rec)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestRouter_ClearCart(t *testing.T) {
	c := newClient(t, newTestRouter(t))

	rec := c.do(http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": 6, "quantity": 2})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = c.do(http.MethodDelete, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cart := decodeCart(t, rec)
	assert.Empty(t, cart.Items)
	assert.True(t, cart.Total.IsZero())

	rec = c.do(http.MethodDelete, "/api/v1/cart", nil)
	assert.Equal(t, http.StatusOK, rec.Code, "clearing an empty cart is fine")
}

func TestRouter_AddToCart_Validation(t *testing.T) {
	router := newTestRouter(t)

	testCases := []struct {
		name     string
		body     any
		wantCode int
	}{
		{name: "malformed body", body: "not json", wantCode: http.StatusBadRequest},
		{name: "zero quantity", body: gin.H{"product_id": 1, "quantity": 0}, wantCode: http.StatusBadRequest},
		{name: "negative quantity", body: gin.H{"product_id": 1, "quantity": -2}, wantCode: http.StatusBadRequest},
		{name: "missing product id", body: gin.H{"quantity": 2}, wantCode: http.StatusBadRequest},
		{name: "unknown product", body: gin.H{"product_id": 9999, "quantity": 1}, wantCode: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := newClient(t, router)
			rec := c.do(http.MethodPost, "/api/v1/cart/items", tc.body)
			assert.Equal(t, tc.wantCode, rec.Code)
		})
	}
}

func TestRouter_SessionsAreIsolated(t *testing.T) {
	router := newTestRouter(t)

	first := newClient(t, router)
	rec := first.do(http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": 1, "quantity": 2})
	require.Equal(t, http.StatusOK, rec.Code)

	second := newClient(t, router)
	rec = second.do(http.MethodGet, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cart := decodeCart(t, rec)
	assert.Empty(t, cart.Items, "a new session starts with an empty cart")

	rec = first.do(http.MethodGet, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cart = decodeCart(t, rec)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}
