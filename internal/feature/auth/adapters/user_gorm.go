// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"skillroots/internal/feature/auth/domain/entity"
	"skillroots/internal/feature/auth/usecase"
	platformdb "skillroots/internal/platform/db"
)

// userGorm はUserRepositoryインターフェースのGORM実装です。
type userGorm struct {
	db *gorm.DB
}

// userGormがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserRepository は指定されたgorm.DB接続でuserGormの新しいインスタンスを生成します。
func NewUserRepository(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Register はメールアドレスを小文字に正規化し、存在確認と登録を1つのトランザクションで行います。
// 同じメールアドレスのユーザーが既に存在する場合、usecase.ErrUserExistsを返し、何も書き込みません。
func (r *userGorm) Register(ctx context.Context, name, email string) (*entity.User, error) {
	u := &entity.User{Name: name, Email: entity.NormalizeEmail(email)}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entity.User{}).Where("email = ?", u.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return usecase.ErrUserExists
		}
		return tx.Create(u).Error
	})

	switch {
	case err == nil:
		return u, nil
	// 同時登録で一意制約に違反した場合も重複として扱う
	case errors.Is(err, usecase.ErrUserExists), errors.Is(err, gorm.ErrDuplicatedKey):
		return nil, usecase.ErrUserExists
	default:
		return nil, platformdb.TxError("register user", err)
	}
}

// FindByEmail は正規化したメールアドレスでユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", entity.NormalizeEmail(email)).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, platformdb.TxError("find user", err)
	}
	return &u, nil
}
