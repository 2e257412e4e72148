// Package adapters はvideosフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"skillroots/internal/feature/videos/domain/entity"
	"skillroots/internal/feature/videos/usecase"
	platformdb "skillroots/internal/platform/db"
)

// IDPrefix is prepended to every generated video ID.
const IDPrefix = "vid"

type videoGorm struct {
	db *gorm.DB
}

var _ usecase.VideoRepository = (*videoGorm)(nil)

// NewVideoRepository は指定されたgorm.DB接続でvideoGormの新しいインスタンスを生成します。
func NewVideoRepository(db *gorm.DB) *videoGorm {
	return &videoGorm{db: db}
}

func (r *videoGorm) Add(ctx context.Context, draft entity.VideoDraft) (*entity.Video, error) {
	m := VideoModel{
		ID:           platformdb.NewID(IDPrefix),
		UserID:       draft.UserID,
		UploaderName: draft.UploaderName,
		Title:        draft.Title,
		Description:  draft.Description,
		ThumbnailURL: draft.ThumbnailURL,
		VideoURL:     draft.VideoURL,
		CreatedAt:    time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, platformdb.TxError("add video", err)
	}
	v := m.ToEntity()
	return &v, nil
}

func (r *videoGorm) FindAll(ctx context.Context) ([]entity.Video, error) {
	var rows []VideoModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, platformdb.TxError("list videos", err)
	}
	return toEntities(rows), nil
}

func (r *videoGorm) FindByID(ctx context.Context, id string) (*entity.Video, error) {
	var m VideoModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrVideoNotFound
		}
		return nil, platformdb.TxError("find video", err)
	}
	v := m.ToEntity()
	return &v, nil
}

// FindByOwner は所有者インデックスを使って動画を主キー順で返します。
func (r *videoGorm) FindByOwner(ctx context.Context, ownerEmail string) ([]entity.Video, error) {
	var rows []VideoModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerEmail).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, platformdb.TxError("list videos by owner", err)
	}
	return toEntities(rows), nil
}

func (r *videoGorm) IncrementViews(ctx context.Context, id string) error {
	return r.increment(ctx, id, "views")
}

func (r *videoGorm) Like(ctx context.Context, id string) error {
	return r.increment(ctx, id, "likes")
}

// increment はカウンタ列をデータベース側で加算します。
// 読み取り値を書き戻さないため、同時実行でも更新が失われません。
func (r *videoGorm) increment(ctx context.Context, id, column string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&VideoModel{}).
			Where("id = ?", id).
			UpdateColumn(column, gorm.Expr(column+" + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrVideoNotFound
		}
		return nil
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, usecase.ErrVideoNotFound):
		return err
	default:
		return platformdb.TxError("increment "+column, err)
	}
}
