// Package adapters はmarketplaceフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"skillroots/internal/feature/marketplace/domain/entity"
	"skillroots/internal/feature/marketplace/usecase"
	platformdb "skillroots/internal/platform/db"
)

// ItemIDPrefix is prepended to every generated item ID.
const ItemIDPrefix = "item"

type itemGorm struct {
	db *gorm.DB
}

var _ usecase.ItemRepository = (*itemGorm)(nil)

// NewItemRepository は指定されたgorm.DB接続でitemGormの新しいインスタンスを生成します。
func NewItemRepository(db *gorm.DB) *itemGorm {
	return &itemGorm{db: db}
}

func (r *itemGorm) Add(ctx context.Context, draft entity.ItemDraft) (*entity.Item, error) {
	m := ItemModel{
		ID:          platformdb.NewID(ItemIDPrefix),
		UserID:      draft.UserID,
		SellerName:  draft.SellerName,
		Name:        draft.Name,
		Description: draft.Description,
		Price:       draft.Price,
		ImageURL:    draft.ImageURL,
		CreatedAt:   time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, platformdb.TxError("add item", err)
	}
	it := m.ToEntity()
	return &it, nil
}

func (r *itemGorm) FindAll(ctx context.Context) ([]entity.Item, error) {
	var rows []ItemModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, platformdb.TxError("list items", err)
	}
	return itemEntities(rows), nil
}

func (r *itemGorm) FindByID(ctx context.Context, id string) (*entity.Item, error) {
	var m ItemModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrItemNotFound
		}
		return nil, platformdb.TxError("find item", err)
	}
	it := m.ToEntity()
	return &it, nil
}

// FindByOwner は出品者インデックスを使って商品を主キー順で返します。
func (r *itemGorm) FindByOwner(ctx context.Context, ownerEmail string) ([]entity.Item, error) {
	var rows []ItemModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", ownerEmail).Order("id").Find(&rows).Error; err != nil {
		return nil, platformdb.TxError("list items by owner", err)
	}
	return itemEntities(rows), nil
}

func itemEntities(rows []ItemModel) []entity.Item {
	out := make([]entity.Item, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.ToEntity())
	}
	return out
}
