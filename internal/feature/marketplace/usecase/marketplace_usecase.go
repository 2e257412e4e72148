package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"skillroots/internal/feature/marketplace/domain/entity"
)

// DefaultPaymentDelay は模擬決済ゲートウェイの既定の待ち時間です。
const DefaultPaymentDelay = 3 * time.Second

// ItemRepository はitemsコレクションへのアクセスを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type ItemRepository interface {
	Add(ctx context.Context, draft entity.ItemDraft) (*entity.Item, error)
	FindAll(ctx context.Context) ([]entity.Item, error)
	// FindByID は存在しない場合 ErrItemNotFound を返します。
	FindByID(ctx context.Context, id string) (*entity.Item, error)
	FindByOwner(ctx context.Context, ownerEmail string) ([]entity.Item, error)
}

// OrderRepository はordersコレクションへのアクセスを抽象化します。
type OrderRepository interface {
	// Add は商品のスナップショットを持つ完了済み注文を作成します。
	Add(ctx context.Context, buyerEmail string, items []entity.Item, total decimal.Decimal, method entity.PaymentMethod, transactionID string) (*entity.Order, error)
	// FindByID は存在しない場合 ErrOrderNotFound を返します。
	FindByID(ctx context.Context, id string) (*entity.Order, error)
	FindByOwner(ctx context.Context, buyerEmail string) ([]entity.Order, error)
}

// CheckoutResult は模擬決済の結果です。
type CheckoutResult struct {
	Order         entity.Order
	TransactionID string
}

// marketplaceUsecase はマーケットプレイスのユースケースを実装します。
type marketplaceUsecase struct {
	items        ItemRepository
	orders       OrderRepository
	paymentDelay time.Duration
	sleep        func(time.Duration)
	newTxnID     func() string
}

// NewMarketplaceUsecase はmarketplaceUsecaseの新しいインスタンスを生成します。
// paymentDelayが負の場合はDefaultPaymentDelayを使用します。
func NewMarketplaceUsecase(items ItemRepository, orders OrderRepository, paymentDelay time.Duration) *marketplaceUsecase {
	if paymentDelay < 0 {
		paymentDelay = DefaultPaymentDelay
	}
	return &marketplaceUsecase{
		items:        items,
		orders:       orders,
		paymentDelay: paymentDelay,
		sleep:        time.Sleep,
		newTxnID:     newTransactionID,
	}
}

// Sell は商品を出品します。価格は0より大きくなければなりません。
func (u *marketplaceUsecase) Sell(ctx context.Context, draft entity.ItemDraft) (*entity.Item, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	switch {
	case draft.UserID == "":
		return nil, fmt.Errorf("%w: seller is required", ErrInvalidInput)
	case draft.Name == "":
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	case !draft.Price.IsPositive():
		return nil, fmt.Errorf("%w: price must be greater than zero", ErrInvalidInput)
	}
	return u.items.Add(ctx, draft)
}

// List は全商品を返します。queryが空でない場合、商品名・出品者名・説明で絞り込みます。
func (u *marketplaceUsecase) List(ctx context.Context, query string) ([]entity.Item, error) {
	items, err := u.items.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items, nil
	}
	return lo.Filter(items, func(it entity.Item, _ int) bool {
		return strings.Contains(strings.ToLower(it.Name), q) ||
			strings.Contains(strings.ToLower(it.SellerName), q) ||
			strings.Contains(strings.ToLower(it.Description), q)
	}), nil
}

// Get は商品を1件取得します。
func (u *marketplaceUsecase) Get(ctx context.Context, id string) (*entity.Item, error) {
	return u.items.FindByID(ctx, id)
}

// ListMine は出品者の商品を新しい順で返します。
func (u *marketplaceUsecase) ListMine(ctx context.Context, sellerEmail string) ([]entity.Item, error) {
	items, err := u.items.FindByOwner(ctx, sellerEmail)
	if err != nil {
		return nil, err
	}
	return lo.Reverse(items), nil
}

// Checkout は商品1点の模擬決済を行い、注文を記録します。
// 固定の待ち時間の後に注文を書き込みます。待ち時間中にリクエストが切断されても注文は確定します。
func (u *marketplaceUsecase) Checkout(ctx context.Context, buyerEmail, itemID string, method entity.PaymentMethod) (*CheckoutResult, error) {
	if buyerEmail == "" {
		return nil, fmt.Errorf("%w: buyer is required", ErrInvalidInput)
	}
	if !method.Valid() {
		return nil, fmt.Errorf("%w: unsupported payment method %q", ErrInvalidInput, method)
	}

	item, err := u.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	u.sleep(u.paymentDelay)
	txnID := u.newTxnID()

	order, err := u.orders.Add(context.WithoutCancel(ctx), buyerEmail, []entity.Item{*item}, item.Price, method, txnID)
	if err != nil {
		return nil, err
	}
	slog.Info("order completed", "order_id", order.ID, "buyer", buyerEmail, "item_id", item.ID, "transaction_id", txnID)
	return &CheckoutResult{Order: *order, TransactionID: txnID}, nil
}

// Orders は購入者の注文を新しい順で返します。
func (u *marketplaceUsecase) Orders(ctx context.Context, buyerEmail string) ([]entity.Order, error) {
	orders, err := u.orders.FindByOwner(ctx, buyerEmail)
	if err != nil {
		return nil, err
	}
	return lo.Reverse(orders), nil
}

// Order は購入者自身の注文を1件返します。他人の注文はErrOrderNotFoundとして扱います。
func (u *marketplaceUsecase) Order(ctx context.Context, buyerEmail, id string) (*entity.Order, error) {
	o, err := u.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.UserID != buyerEmail {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

// newTransactionID は "TXN_" に続く最大9桁の数字を生成します。
func newTransactionID() string {
	return fmt.Sprintf("TXN_%d", rand.IntN(1_000_000_000))
}
