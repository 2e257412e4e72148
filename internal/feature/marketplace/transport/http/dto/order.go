package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"skillroots/internal/feature/marketplace/domain/entity"
)

// CheckoutReq is the request body for POST /items/:id/checkout.
type CheckoutReq struct {
	PaymentMethod string `json:"paymentMethod" binding:"required,oneof=UPI CARD NETBANKING"`
}

// OrderRes is the public view of an order.
type OrderRes struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	Items         []ItemRes       `json:"items"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Date          time.Time       `json:"date"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"paymentMethod"`
	TransactionID string          `json:"transactionId"`
}

// NewOrderRes converts an order to its response form.
func NewOrderRes(o entity.Order) OrderRes {
	return OrderRes{
		ID:            o.ID,
		UserID:        o.UserID,
		Items:         NewItemList(o.Items),
		TotalAmount:   o.TotalAmount,
		Date:          o.Date,
		Status:        string(o.Status),
		PaymentMethod: string(o.PaymentMethod),
		TransactionID: o.TransactionID,
	}
}

// NewOrderList converts orders to their response form; never nil.
func NewOrderList(orders []entity.Order) []OrderRes {
	out := make([]OrderRes, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrderRes(o))
	}
	return out
}
