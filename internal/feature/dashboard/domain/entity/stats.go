// Package entity defines the activity summary shown on a user's dashboard.
package entity

import "github.com/shopspring/decimal"

// Stats summarizes a user's activity.
type Stats struct {
	VideosUploaded int
	ItemsListed    int
	TotalViews     int64
	// Earnings is the listed item value plus the per-view video payout.
	Earnings decimal.Decimal
}

// BadgeID identifies a skill badge.
type BadgeID string

const (
	BadgeEarlyAdopter BadgeID = "early_adopter"
	BadgeCreator      BadgeID = "creator"
	BadgeMerchant     BadgeID = "merchant"
	BadgeInfluencer   BadgeID = "influencer"
)

// Badge is a skill badge and whether the user has earned it.
type Badge struct {
	ID          BadgeID
	Title       string
	Description string
	Earned      bool
}

// Wallet is the user's skill wallet: a decentralized identifier, a
// reputation score and the badge list.
type Wallet struct {
	DID        string
	Reputation int64
	Badges     []Badge
	Stats      Stats
}
