// Package usecase はdashboardフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"skillroots/internal/feature/dashboard/domain/entity"
	itementity "skillroots/internal/feature/marketplace/domain/entity"
	videoentity "skillroots/internal/feature/videos/domain/entity"
)

const (
	didPrefix = "did:skillroots:"
	didLength = 16

	reputationPerVideo   = 50
	reputationPerItem    = 30
	viewsPerReputation   = 10
	influencerViewsFloor = 100
)

// perViewPayout は1再生あたりの収益です。
var perViewPayout = decimal.RequireFromString("0.5")

// VideoSource はユーザーの動画一覧を提供します。
type VideoSource interface {
	FindByOwner(ctx context.Context, ownerEmail string) ([]videoentity.Video, error)
}

// ItemSource はユーザーの出品一覧を提供します。
type ItemSource interface {
	FindByOwner(ctx context.Context, ownerEmail string) ([]itementity.Item, error)
}

// dashboardUsecase はダッシュボードの集計を実装します。
type dashboardUsecase struct {
	videos VideoSource
	items  ItemSource
}

// NewDashboardUsecase はdashboardUsecaseの新しいインスタンスを生成します。
func NewDashboardUsecase(videos VideoSource, items ItemSource) *dashboardUsecase {
	return &dashboardUsecase{videos: videos, items: items}
}

// Stats はユーザーの活動を集計します。
func (u *dashboardUsecase) Stats(ctx context.Context, email string) (*entity.Stats, error) {
	videos, err := u.videos.FindByOwner(ctx, email)
	if err != nil {
		return nil, err
	}
	items, err := u.items.FindByOwner(ctx, email)
	if err != nil {
		return nil, err
	}

	totalViews := lo.SumBy(videos, func(v videoentity.Video) int64 { return v.Views })
	itemValue := decimal.Sum(decimal.Zero, lo.Map(items, func(it itementity.Item, _ int) decimal.Decimal { return it.Price })...)

	return &entity.Stats{
		VideosUploaded: len(videos),
		ItemsListed:    len(items),
		TotalViews:     totalViews,
		Earnings:       itemValue.Add(perViewPayout.Mul(decimal.NewFromInt(totalViews))),
	}, nil
}

// Wallet はスキルウォレット（DID・評価スコア・バッジ）を返します。
func (u *dashboardUsecase) Wallet(ctx context.Context, email string) (*entity.Wallet, error) {
	stats, err := u.Stats(ctx, email)
	if err != nil {
		return nil, err
	}
	return &entity.Wallet{
		DID:        DID(email),
		Reputation: Reputation(*stats),
		Badges:     Badges(*stats),
		Stats:      *stats,
	}, nil
}

// DID は "did:skillroots:" にメールアドレスのBase64表現の先頭16文字（小文字）を連結します。
func DID(email string) string {
	enc := base64.StdEncoding.EncodeToString([]byte(email))
	if len(enc) > didLength {
		enc = enc[:didLength]
	}
	return didPrefix + strings.ToLower(enc)
}

// Reputation は 動画数×50 + 出品数×30 + 再生数/10（切り捨て） を返します。
func Reputation(s entity.Stats) int64 {
	return int64(s.VideosUploaded)*reputationPerVideo +
		int64(s.ItemsListed)*reputationPerItem +
		s.TotalViews/viewsPerReputation
}

// Badges は獲得条件を評価したバッジ一覧を返します。
func Badges(s entity.Stats) []entity.Badge {
	return []entity.Badge{
		{ID: entity.BadgeEarlyAdopter, Title: "Early Adopter", Description: "Joined SkillRoots early", Earned: true},
		{ID: entity.BadgeCreator, Title: "Creator", Description: "Uploaded first video tutorial", Earned: s.VideosUploaded > 0},
		{ID: entity.BadgeMerchant, Title: "Merchant", Description: "Listed item for sale", Earned: s.ItemsListed > 0},
		{ID: entity.BadgeInfluencer, Title: "Influencer", Description: "Reached 100+ views", Earned: s.TotalViews > influencerViewsFloor},
	}
}
