package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order. Only OrderCompleted is
// produced today; the other values are reserved for real payment outcomes.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderFailed    OrderStatus = "failed"
	OrderRefunded  OrderStatus = "refunded"
)

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderCompleted, OrderFailed, OrderRefunded:
		return true
	}
	return false
}

// PaymentMethod is how the buyer paid.
type PaymentMethod string

const (
	PaymentUPI        PaymentMethod = "UPI"
	PaymentCard       PaymentMethod = "CARD"
	PaymentNetBanking PaymentMethod = "NETBANKING"
)

// Valid reports whether m is a supported payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentUPI, PaymentCard, PaymentNetBanking:
		return true
	}
	return false
}

// Order is a completed purchase. Items is a snapshot taken at purchase time.
type Order struct {
	ID            string
	UserID        string // buyer email
	Items         []Item
	TotalAmount   decimal.Decimal
	Date          time.Time
	Status        OrderStatus
	PaymentMethod PaymentMethod
	TransactionID string
}
