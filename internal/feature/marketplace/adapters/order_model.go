package adapters

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"skillroots/internal/feature/marketplace/domain/entity"
)

// OrderModel is the orders table row. Items is stored as a JSON snapshot,
// never as a reference to the items table.
type OrderModel struct {
	ID            string                           `gorm:"primaryKey;size:64"`
	UserID        string                           `gorm:"size:255;not null;index:idx_orders_by_owner"`
	Items         datatypes.JSONSlice[entity.Item] `gorm:"not null"`
	TotalAmount   decimal.Decimal                  `gorm:"type:decimal(12,2);not null"`
	Date          time.Time                        `gorm:"not null"`
	Status        string                           `gorm:"size:16;not null"`
	PaymentMethod string                           `gorm:"size:16;not null"`
	TransactionID string                           `gorm:"size:64"`
}

func (OrderModel) TableName() string {
	return "orders"
}

// ToEntity converts the row into its domain form.
func (m OrderModel) ToEntity() entity.Order {
	return entity.Order{
		ID:            m.ID,
		UserID:        m.UserID,
		Items:         append([]entity.Item(nil), m.Items...),
		TotalAmount:   m.TotalAmount,
		Date:          m.Date,
		Status:        entity.OrderStatus(m.Status),
		PaymentMethod: entity.PaymentMethod(m.PaymentMethod),
		TransactionID: m.TransactionID,
	}
}
