// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"skillroots/internal/app/seed"
	authadapters "skillroots/internal/feature/auth/adapters"
	authentity "skillroots/internal/feature/auth/domain/entity"
	marketadapters "skillroots/internal/feature/marketplace/adapters"
	videoadapters "skillroots/internal/feature/videos/adapters"
	"skillroots/internal/platform/db"
)

// Collections lists every table of the store with its owner index.
func Collections() []db.Collection {
	return []db.Collection{
		{Name: "users", Model: &authentity.User{}},
		{Name: "videos", Model: &videoadapters.VideoModel{}, OwnerIndex: videoadapters.OwnerIndex},
		{Name: "items", Model: &marketadapters.ItemModel{}, OwnerIndex: marketadapters.ItemOwnerIndex},
		{Name: "orders", Model: &marketadapters.OrderModel{}, OwnerIndex: marketadapters.OrderOwnerIndex},
		{Name: "sessions", Model: &authadapters.SessionModel{}},
	}
}

// NewStore creates the store handle. The demo catalog is seeded on first open.
func NewStore(cfg db.Config) *db.Store {
	return db.NewStore(cfg, nil, Collections(), seed.SeedIfEmpty)
}

// OpenStore opens primary. If it cannot be reached the process keeps running
// on a seeded in-memory SQLite store instead, and that store is returned.
func OpenStore(ctx context.Context, primary *db.Store) (*db.Store, *gorm.DB, error) {
	gdb, err := primary.Open(ctx)
	if err == nil {
		return primary, gdb, nil
	}
	if !errors.Is(err, db.ErrStoreUnavailable) {
		return nil, nil, err
	}

	slog.Warn("store unavailable; falling back to an in-memory store, data will not persist", "error", err)
	fallback := NewStore(db.Config{Driver: db.DriverSQLite, Path: ":memory:", ConnectTimeout: time.Second})
	gdb, err = fallback.Open(ctx)
	if err != nil {
		return nil, nil, err
	}
	return fallback, gdb, nil
}
