package adapters

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"skillroots/internal/feature/marketplace/domain/entity"
	"skillroots/internal/feature/marketplace/usecase"
	platformdb "skillroots/internal/platform/db"
)

// OrderIDPrefix is prepended to every generated order ID.
const OrderIDPrefix = "ord"

type orderGorm struct {
	db *gorm.DB
}

var _ usecase.OrderRepository = (*orderGorm)(nil)

// NewOrderRepository は指定されたgorm.DB接続でorderGormの新しいインスタンスを生成します。
func NewOrderRepository(db *gorm.DB) *orderGorm {
	return &orderGorm{db: db}
}

// Add は現在時刻と completed ステータスで注文を作成します。
// 重複チェックは行わず、呼び出しごとに新しい注文が作られます。
func (r *orderGorm) Add(ctx context.Context, buyerEmail string, items []entity.Item, total decimal.Decimal, method entity.PaymentMethod, transactionID string) (*entity.Order, error) {
	m := OrderModel{
		ID:            platformdb.NewID(OrderIDPrefix),
		UserID:        buyerEmail,
		Items:         slices.Clone(items),
		TotalAmount:   total,
		Date:          time.Now().UTC(),
		Status:        string(entity.OrderCompleted),
		PaymentMethod: string(method),
		TransactionID: transactionID,
	}
	if m.Items == nil {
		m.Items = []entity.Item{}
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, platformdb.TxError("add order", err)
	}
	o := m.ToEntity()
	return &o, nil
}

func (r *orderGorm) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	var m OrderModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrOrderNotFound
		}
		return nil, platformdb.TxError("find order", err)
	}
	o := m.ToEntity()
	return &o, nil
}

// FindByOwner は購入者インデックスを使って注文を主キー順で返します。
func (r *orderGorm) FindByOwner(ctx context.Context, buyerEmail string) ([]entity.Order, error) {
	var rows []OrderModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", buyerEmail).Order("id").Find(&rows).Error; err != nil {
		return nil, platformdb.TxError("list orders by owner", err)
	}
	out := make([]entity.Order, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.ToEntity())
	}
	return out, nil
}
