// Package dto defines data transfer objects for the dashboard feature's HTTP transport layer.
package dto

import (
	"github.com/shopspring/decimal"

	"skillroots/internal/feature/dashboard/domain/entity"
)

// StatsRes is the response of GET /me/stats.
type StatsRes struct {
	VideosUploaded int             `json:"videosUploaded"`
	ItemsListed    int             `json:"itemsListed"`
	TotalViews     int64           `json:"totalViews"`
	Earnings       decimal.Decimal `json:"earnings"`
}

// BadgeRes is one skill badge.
type BadgeRes struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Earned      bool   `json:"earned"`
}

// WalletRes is the response of GET /me/wallet.
type WalletRes struct {
	DID        string     `json:"did"`
	Reputation int64      `json:"reputationScore"`
	Badges     []BadgeRes `json:"badges"`
	Stats      StatsRes   `json:"stats"`
}

// NewStatsRes converts stats to their response form.
func NewStatsRes(s entity.Stats) StatsRes {
	return StatsRes(s)
}

// NewWalletRes converts a wallet to its response form.
func NewWalletRes(w entity.Wallet) WalletRes {
	badges := make([]BadgeRes, 0, len(w.Badges))
	for _, b := range w.Badges {
		badges = append(badges, BadgeRes{ID: string(b.ID), Title: b.Title, Description: b.Description, Earned: b.Earned})
	}
	return WalletRes{
		DID:        w.DID,
		Reputation: w.Reputation,
		Badges:     badges,
		Stats:      NewStatsRes(w.Stats),
	}
}
