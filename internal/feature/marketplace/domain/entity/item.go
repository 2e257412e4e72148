// Package entity defines the core domain entities of the marketplace feature.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a product listed for sale. Items are immutable once listed.
// The JSON form is what an Order stores as its snapshot.
type Item struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"` // seller email
	SellerName  string          `json:"sellerName"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ItemDraft carries the fields supplied when listing an item.
type ItemDraft struct {
	UserID      string
	SellerName  string
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
}
