package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"skillroots/internal/feature/videos/domain/entity"
)

// VideoRepository はvideosコレクションへのアクセスを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type VideoRepository interface {
	// Add は新しいIDを採番し、views=0, likes=0 で保存します。
	Add(ctx context.Context, draft entity.VideoDraft) (*entity.Video, error)
	// FindAll は全件を主キー順で返します。
	FindAll(ctx context.Context) ([]entity.Video, error)
	// FindByID は存在しない場合 ErrVideoNotFound を返します。
	FindByID(ctx context.Context, id string) (*entity.Video, error)
	// FindByOwner は所有者インデックス経由で取得します。
	FindByOwner(ctx context.Context, ownerEmail string) ([]entity.Video, error)
	// IncrementViews は views を1つ増やします。存在しない場合 ErrVideoNotFound を返します。
	IncrementViews(ctx context.Context, id string) error
	// Like は likes を1つ増やします。存在しない場合 ErrVideoNotFound を返します。
	Like(ctx context.Context, id string) error
}

// videosUsecase は動画操作のユースケースを実装します。
type videosUsecase struct {
	videos VideoRepository
}

// NewVideosUsecase はvideosUsecaseの新しいインスタンスを生成します。
func NewVideosUsecase(videos VideoRepository) *videosUsecase {
	return &videosUsecase{videos: videos}
}

// Upload はタイトルと動画URLを検証して動画を登録します。
func (u *videosUsecase) Upload(ctx context.Context, draft entity.VideoDraft) (*entity.Video, error) {
	draft.Title = strings.TrimSpace(draft.Title)
	draft.VideoURL = strings.TrimSpace(draft.VideoURL)
	switch {
	case draft.UserID == "":
		return nil, fmt.Errorf("%w: owner is required", ErrInvalidInput)
	case draft.Title == "":
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	case draft.VideoURL == "":
		return nil, fmt.Errorf("%w: video url is required", ErrInvalidInput)
	}
	return u.videos.Add(ctx, draft)
}

// List は全動画を返します。queryが空でない場合、タイトル・投稿者名・説明で大文字小文字を区別せず絞り込みます。
func (u *videosUsecase) List(ctx context.Context, query string) ([]entity.Video, error) {
	vs, err := u.videos.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return vs, nil
	}
	return lo.Filter(vs, func(v entity.Video, _ int) bool {
		return strings.Contains(strings.ToLower(v.Title), q) ||
			strings.Contains(strings.ToLower(v.UploaderName), q) ||
			strings.Contains(strings.ToLower(v.Description), q)
	}), nil
}

// Get は動画を1件取得します。
func (u *videosUsecase) Get(ctx context.Context, id string) (*entity.Video, error) {
	return u.videos.FindByID(ctx, id)
}

// Watch は再生回数を加算し、更新後の動画を返します。
func (u *videosUsecase) Watch(ctx context.Context, id string) (*entity.Video, error) {
	if err := u.videos.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	return u.videos.FindByID(ctx, id)
}

// Like はいいね数を加算し、更新後の動画を返します。
// 重複いいねの防止はクライアント側の責務です。
func (u *videosUsecase) Like(ctx context.Context, id string) (*entity.Video, error) {
	if err := u.videos.Like(ctx, id); err != nil {
		return nil, err
	}
	return u.videos.FindByID(ctx, id)
}

// ListMine はユーザーの動画を新しい順で返します。
func (u *videosUsecase) ListMine(ctx context.Context, ownerEmail string) ([]entity.Video, error) {
	vs, err := u.videos.FindByOwner(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}
	return lo.Reverse(vs), nil
}
