package di

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	marketadapters "skillroots/internal/feature/marketplace/adapters"
	videoadapters "skillroots/internal/feature/videos/adapters"
	"skillroots/internal/platform/db"
)

func TestOpenStore_UsesPrimaryWhenReachable(t *testing.T) {
	primary := NewStore(db.Config{Driver: db.DriverSQLite, Path: ":memory:", ConnectTimeout: time.Second})

	store, gdb, err := OpenStore(context.Background(), primary)
	require.NoError(t, err)
	assert.Same(t, primary, store)
	assert.NotNil(t, gdb)
}

func TestOpenStore_FallsBackToSeededMemoryStore(t *testing.T) {
	unreachable := func(dsn string) (*gorm.DB, error) {
		return nil, errors.New("connection refused")
	}
	primary := db.NewStore(
		db.Config{Driver: db.DriverPostgres, Host: "db.invalid", ConnectTimeout: time.Nanosecond},
		unreachable, Collections(), nil,
	)

	store, gdb, err := OpenStore(context.Background(), primary)
	require.NoError(t, err)
	require.NotNil(t, gdb)
	assert.NotSame(t, primary, store)
	assert.NoError(t, store.Ping(context.Background()))
	assert.ErrorIs(t, primary.Ping(context.Background()), db.ErrStoreUnavailable)

	m := gdb.Migrator()
	for _, c := range Collections() {
		assert.True(t, m.HasTable(c.Model), c.Name)
	}

	var videos, items int64
	require.NoError(t, gdb.Model(&videoadapters.VideoModel{}).Count(&videos).Error)
	require.NoError(t, gdb.Model(&marketadapters.ItemModel{}).Count(&items).Error)
	assert.Equal(t, int64(6), videos)
	assert.Equal(t, int64(5), items)
}
