// Package handler はmarketplaceフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillroots/internal/feature/marketplace/domain/entity"
	"skillroots/internal/feature/marketplace/transport/http/dto"
	"skillroots/internal/feature/marketplace/usecase"
	jwtmw "skillroots/internal/platform/jwt"
)

// MarketplaceUsecase はマーケットプレイスのユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type MarketplaceUsecase interface {
	Sell(ctx context.Context, draft entity.ItemDraft) (*entity.Item, error)
	List(ctx context.Context, query string) ([]entity.Item, error)
	Get(ctx context.Context, id string) (*entity.Item, error)
	ListMine(ctx context.Context, sellerEmail string) ([]entity.Item, error)
	Checkout(ctx context.Context, buyerEmail, itemID string, method entity.PaymentMethod) (*usecase.CheckoutResult, error)
	Orders(ctx context.Context, buyerEmail string) ([]entity.Order, error)
	Order(ctx context.Context, buyerEmail, id string) (*entity.Order, error)
}

// MarketplaceHandler は商品と注文のHTTPリクエストを処理します。
type MarketplaceHandler struct {
	uc MarketplaceUsecase
}

// NewMarketplaceHandler は指定されたusecaseでMarketplaceHandlerの新しいインスタンスを生成します。
func NewMarketplaceHandler(uc MarketplaceUsecase) *MarketplaceHandler {
	return &MarketplaceHandler{uc: uc}
}

// List は商品一覧を返します。
//
// エンドポイント例:
// GET /items?q=bowl
func (h *MarketplaceHandler) List(c *gin.Context) {
	items, err := h.uc.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.fail(c, "list items", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewItemList(items))
}

// Get は商品を1件返します。
func (h *MarketplaceHandler) Get(c *gin.Context) {
	it, err := h.uc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get item", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewItemRes(*it))
}

// Sell はログインユーザーの商品を出品します。
func (h *MarketplaceHandler) Sell(c *gin.Context) {
	var req dto.SellItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	it, err := h.uc.Sell(c.Request.Context(), entity.ItemDraft{
		UserID:      jwtmw.UserEmail(c),
		SellerName:  jwtmw.UserName(c),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		h.fail(c, "sell item", err)
		return
	}
	slog.Info("item listed", "id", it.ID, "seller", it.UserID, "price", it.Price.String())
	c.JSON(http.StatusCreated, dto.NewItemRes(*it))
}

// Checkout は模擬決済を行い、作成された注文を返します。
// 決済の待ち時間のため、レスポンスは数秒遅れます。
func (h *MarketplaceHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.uc.Checkout(c.Request.Context(), jwtmw.UserEmail(c), c.Param("id"), entity.PaymentMethod(req.PaymentMethod))
	if err != nil {
		h.fail(c, "checkout", err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewOrderRes(res.Order))
}

// ListMine はログインユーザーの出品を新しい順で返します。
func (h *MarketplaceHandler) ListMine(c *gin.Context) {
	items, err := h.uc.ListMine(c.Request.Context(), jwtmw.UserEmail(c))
	if err != nil {
		h.fail(c, "list my items", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewItemList(items))
}

// Orders はログインユーザーの注文を新しい順で返します。
func (h *MarketplaceHandler) Orders(c *gin.Context) {
	orders, err := h.uc.Orders(c.Request.Context(), jwtmw.UserEmail(c))
	if err != nil {
		h.fail(c, "list orders", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderList(orders))
}

// Order はログインユーザーの注文を1件返します。
func (h *MarketplaceHandler) Order(c *gin.Context) {
	o, err := h.uc.Order(c.Request.Context(), jwtmw.UserEmail(c), c.Param("id"))
	if err != nil {
		h.fail(c, "get order", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderRes(*o))
}

func (h *MarketplaceHandler) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, usecase.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
	case errors.Is(err, usecase.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
	case errors.Is(err, usecase.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		slog.Error("marketplace request failed", "op", op, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
