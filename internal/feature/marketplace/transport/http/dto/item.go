// Package dto defines data transfer objects for the marketplace feature's HTTP transport layer.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"skillroots/internal/feature/marketplace/domain/entity"
)

// SellItemReq is the request body for POST /items.
// Price accepts a JSON number or a decimal string.
type SellItemReq struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl" binding:"omitempty,url"`
}

// ItemRes is the public view of an item.
type ItemRes struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	SellerName  string          `json:"sellerName"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// NewItemRes converts an item to its response form.
func NewItemRes(it entity.Item) ItemRes {
	return ItemRes(it)
}

// NewItemList converts items to their response form; never nil.
func NewItemList(items []entity.Item) []ItemRes {
	out := make([]ItemRes, 0, len(items))
	for _, it := range items {
		out = append(out, NewItemRes(it))
	}
	return out
}
