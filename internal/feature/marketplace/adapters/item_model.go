package adapters

import (
	"time"

	"github.com/shopspring/decimal"

	"skillroots/internal/feature/marketplace/domain/entity"
)

// Owner index names of the marketplace tables.
const (
	ItemOwnerIndex  = "idx_items_by_owner"
	OrderOwnerIndex = "idx_orders_by_owner"
)

// ItemModel is the items table row.
type ItemModel struct {
	ID          string          `gorm:"primaryKey;size:64"`
	UserID      string          `gorm:"size:255;not null;index:idx_items_by_owner"`
	SellerName  string          `gorm:"size:255;not null"`
	Name        string          `gorm:"size:255;not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ImageURL    string          `gorm:"size:1024"`
	CreatedAt   time.Time       `gorm:"not null"`
}

func (ItemModel) TableName() string {
	return "items"
}

// ToEntity converts the row into its domain form.
func (m ItemModel) ToEntity() entity.Item {
	return entity.Item{
		ID:          m.ID,
		UserID:      m.UserID,
		SellerName:  m.SellerName,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		ImageURL:    m.ImageURL,
		CreatedAt:   m.CreatedAt,
	}
}

// ItemModelFromEntity converts a domain item into a row.
func ItemModelFromEntity(it entity.Item) ItemModel {
	return ItemModel{
		ID:          it.ID,
		UserID:      it.UserID,
		SellerName:  it.SellerName,
		Name:        it.Name,
		Description: it.Description,
		Price:       it.Price,
		ImageURL:    it.ImageURL,
		CreatedAt:   it.CreatedAt,
	}
}
