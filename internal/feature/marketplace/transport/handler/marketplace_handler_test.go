package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillroots/internal/feature/marketplace/domain/entity"
	"skillroots/internal/feature/marketplace/transport/http/dto"
	"skillroots/internal/feature/marketplace/usecase"
	jwtmw "skillroots/internal/platform/jwt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type mockMarketplaceUsecase struct {
	SellFunc     func(ctx context.Context, d entity.ItemDraft) (*entity.Item, error)
	ListFunc     func(ctx context.Context, q string) ([]entity.Item, error)
	GetFunc      func(ctx context.Context, id string) (*entity.Item, error)
	ListMineFunc func(ctx context.Context, seller string) ([]entity.Item, error)
	CheckoutFunc func(ctx context.Context, buyer, itemID string, m entity.PaymentMethod) (*usecase.CheckoutResult, error)
	OrdersFunc   func(ctx context.Context, buyer string) ([]entity.Order, error)
	OrderFunc    func(ctx context.Context, buyer, id string) (*entity.Order, error)
}

func (m *mockMarketplaceUsecase) Sell(ctx context.Context, d entity.ItemDraft) (*entity.Item, error) {
	return m.SellFunc(ctx, d)
}
func (m *mockMarketplaceUsecase) List(ctx context.Context, q string) ([]entity.Item, error) {
	return m.ListFunc(ctx, q)
}
func (m *mockMarketplaceUsecase) Get(ctx context.Context, id string) (*entity.Item, error) {
	return m.GetFunc(ctx, id)
}
func (m *mockMarketplaceUsecase) ListMine(ctx context.Context, seller string) ([]entity.Item, error) {
	return m.ListMineFunc(ctx, seller)
}
func (m *mockMarketplaceUsecase) Checkout(ctx context.Context, buyer, itemID string, pm entity.PaymentMethod) (*usecase.CheckoutResult, error) {
	return m.CheckoutFunc(ctx, buyer, itemID, pm)
}
func (m *mockMarketplaceUsecase) Orders(ctx context.Context, buyer string) ([]entity.Order, error) {
	return m.OrdersFunc(ctx, buyer)
}

func (m *mockMarketplaceUsecase) Order(ctx context.Context, buyer, id string) (*entity.Order, error) {
	return m.OrderFunc(ctx, buyer, id)
}

func asUser(email, name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(jwtmw.ContextUserEmail, email)
		c.Set(jwtmw.ContextUserName, name)
		c.Next()
	}
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMarketplaceHandler_Sell(t *testing.T) {
	var got entity.ItemDraft
	h := NewMarketplaceHandler(&mockMarketplaceUsecase{
		SellFunc: func(ctx context.Context, d entity.ItemDraft) (*entity.Item, error) {
			got = d
			if !d.Price.IsPositive() {
				return nil, usecase.ErrInvalidInput
			}
			return &entity.Item{ID: "item_1", UserID: d.UserID, Name: d.Name, Price: d.Price}, nil
		},
	})
	r := gin.New()
	r.POST("/items", asUser("a@x.com", "Asha"), h.Sell)

	t.Run("numeric price", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/items", `{"name":"Bowl","price":499.5}`)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.True(t, decimal.RequireFromString("499.5").Equal(got.Price))
		assert.Equal(t, "a@x.com", got.UserID)
		assert.Equal(t, "Asha", got.SellerName)
	})

	t.Run("string price", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/items", `{"name":"Bowl","price":"1200"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, decimal.NewFromInt(1200).Equal(got.Price))
	})

	t.Run("zero price rejected", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/items", `{"name":"Bowl","price":0}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing name", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/items", `{"price":10}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMarketplaceHandler_GetNotFound(t *testing.T) {
	h := NewMarketplaceHandler(&mockMarketplaceUsecase{
		GetFunc: func(ctx context.Context, id string) (*entity.Item, error) { return nil, usecase.ErrItemNotFound },
	})
	r := gin.New()
	r.GET("/items/:id", h.Get)

	w := serve(r, http.MethodGet, "/items/item_x", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMarketplaceHandler_Checkout(t *testing.T) {
	var gotBuyer, gotItem string
	var gotMethod entity.PaymentMethod
	h := NewMarketplaceHandler(&mockMarketplaceUsecase{
		CheckoutFunc: func(ctx context.Context, buyer, itemID string, m entity.PaymentMethod) (*usecase.CheckoutResult, error) {
			gotBuyer, gotItem, gotMethod = buyer, itemID, m
			if itemID == "item_x" {
				return nil, usecase.ErrItemNotFound
			}
			o := entity.Order{
				ID:            "ord_1",
				UserID:        buyer,
				Items:         []entity.Item{{ID: itemID, Name: "Bowl", Price: decimal.NewFromInt(500)}},
				TotalAmount:   decimal.NewFromInt(500),
				Status:        entity.OrderCompleted,
				PaymentMethod: m,
				TransactionID: "TXN_42",
			}
			return &usecase.CheckoutResult{Order: o, TransactionID: "TXN_42"}, nil
		},
	})
	r := gin.New()
	r.POST("/items/:id/checkout", asUser("b@x.com", "Bala"), h.Checkout)

	t.Run("success", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/items/item_1/checkout", `{"paymentMethod":"UPI"}`)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "b@x.com", gotBuyer)
		assert.Equal(t, "item_1", gotItem)
		assert.Equal(t, entity.PaymentUPI, gotMethod)

		var res dto.OrderRes
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "TXN_42", res.TransactionID)
		assert.Equal(t, "completed", res.Status)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "Bowl", res.Items[0].Name)
		assert.True(t, decimal.NewFromInt(500).Equal(res.TotalAmount))
	})

	t.Run("invalid method", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/items/item_1/checkout", `{"paymentMethod":"CASH"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown item", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/items/item_x/checkout", `{"paymentMethod":"CARD"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMarketplaceHandler_MyListsAreArrays(t *testing.T) {
	h := NewMarketplaceHandler(&mockMarketplaceUsecase{
		ListMineFunc: func(ctx context.Context, seller string) ([]entity.Item, error) { return nil, nil },
		OrdersFunc:   func(ctx context.Context, buyer string) ([]entity.Order, error) { return nil, nil },
	})
	r := gin.New()
	r.GET("/me/items", asUser("a@x.com", "Asha"), h.ListMine)
	r.GET("/me/orders", asUser("a@x.com", "Asha"), h.Orders)

	for _, path := range []string{"/me/items", "/me/orders"} {
		w := serve(r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, `[]`, w.Body.String(), path)
	}
}

func TestMarketplaceHandler_Order(t *testing.T) {
	uc := &mockMarketplaceUsecase{OrderFunc: func(ctx context.Context, buyer, id string) (*entity.Order, error) {
		if buyer == "b@x.com" && id == "ord_1" {
			return &entity.Order{ID: "ord_1", UserID: buyer, Status: entity.OrderCompleted}, nil
		}
		return nil, usecase.ErrOrderNotFound
	}}
	h := NewMarketplaceHandler(uc)

	r := gin.New()
	r.GET("/me/orders/:id", asUser("b@x.com", "Bala"), h.Order)
	w := serve(r, http.MethodGet, "/me/orders/ord_1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"ord_1"`)

	w = serve(r, http.MethodGet, "/me/orders/ord_2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
