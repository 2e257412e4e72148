package db

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type noteModel struct {
	ID     string `gorm:"primaryKey;size:64"`
	UserID string `gorm:"size:255;not null;index:idx_notes_by_owner"`
}

func (noteModel) TableName() string { return "notes" }

type tagModel struct {
	ID string `gorm:"primaryKey;size:64"`
}

func (tagModel) TableName() string { return "tags" }

func testCollections() []Collection {
	return []Collection{
		{Name: "notes", Model: &noteModel{}, OwnerIndex: "idx_notes_by_owner"},
		{Name: "tags", Model: &tagModel{}},
	}
}

// countingOpener returns an in-memory SQLite opener that counts its calls.
func countingOpener(calls *atomic.Int32) Opener {
	return func(dsn string) (*gorm.DB, error) {
		calls.Add(1)
		return gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	}
}

func memoryConfig() Config {
	return Config{Driver: DriverSQLite, Path: ":memory:", ConnectTimeout: time.Second}
}

func TestStore_OpenCreatesCollectionsAndIndexes(t *testing.T) {
	var calls atomic.Int32
	store := NewStore(memoryConfig(), countingOpener(&calls), testCollections(), nil)

	db, err := store.Open(context.Background())
	require.NoError(t, err)

	m := db.Migrator()
	assert.True(t, m.HasTable(&noteModel{}))
	assert.True(t, m.HasTable(&tagModel{}))
	assert.True(t, m.HasIndex(&noteModel{}, "idx_notes_by_owner"))

	var meta schemaMeta
	require.NoError(t, db.First(&meta).Error)
	assert.Equal(t, SchemaVersion, meta.Version)
}

func TestStore_OpenIsIdempotent(t *testing.T) {
	var calls atomic.Int32
	store := NewStore(memoryConfig(), countingOpener(&calls), testCollections(), nil)

	first, err := store.Open(context.Background())
	require.NoError(t, err)
	second, err := store.Open(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), calls.Load())
}

func TestStore_ConcurrentOpenSharesOneAttempt(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	opener := func(dsn string) (*gorm.DB, error) {
		calls.Add(1)
		<-release
		return gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	}
	store := NewStore(memoryConfig(), opener, testCollections(), nil)

	const callers = 16
	results := make([]*gorm.DB, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			db, err := store.Open(context.Background())
			assert.NoError(t, err)
			results[i] = db
		}()
	}

	// give every caller a chance to join the in-flight attempt
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, db := range results {
		assert.Same(t, results[0], db)
	}
}

func TestStore_OpenFailureIsNotCached(t *testing.T) {
	var calls atomic.Int32
	opener := func(dsn string) (*gorm.DB, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New("permission denied")
		}
		return gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	}
	cfg := memoryConfig()
	cfg.ConnectTimeout = time.Nanosecond
	store := NewStore(cfg, opener, testCollections(), nil)

	_, err := store.Open(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, store.Ping(context.Background()), ErrStoreUnavailable)

	db, err := store.Open(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, db)
	assert.NoError(t, store.Ping(context.Background()))
}

func TestStore_MigrationFailureClosesConnection(t *testing.T) {
	var opened *gorm.DB
	opener := func(dsn string) (*gorm.DB, error) {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		if err != nil {
			return nil, err
		}
		// schema_meta without a version column makes the version write fail
		if err := db.Exec("CREATE TABLE schema_meta (id INTEGER PRIMARY KEY)").Error; err != nil {
			return nil, err
		}
		opened = db
		return db, nil
	}
	store := NewStore(memoryConfig(), opener, testCollections(), nil)

	_, err := store.Open(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorContains(t, err, "failed to migrate")
	assert.ErrorIs(t, store.Ping(context.Background()), ErrStoreUnavailable)

	require.NotNil(t, opened)
	sqlDB, err := opened.DB()
	require.NoError(t, err)
	assert.ErrorContains(t, sqlDB.Ping(), "database is closed")
}

func TestStore_SeederRunsOnceAndFailureIsNotFatal(t *testing.T) {
	var calls, seeds atomic.Int32
	seeder := func(ctx context.Context, db *gorm.DB) error {
		seeds.Add(1)
		return errors.New("seed exploded")
	}
	store := NewStore(memoryConfig(), countingOpener(&calls), testCollections(), seeder)

	_, err := store.Open(context.Background())
	require.NoError(t, err, "seed failure must not fail Open")
	_, err = store.Open(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(1), seeds.Load())
}

func TestMigrate_PartiallyMigratedStore(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	// an older store that already has one of the collections and some data
	require.NoError(t, db.Migrator().CreateTable(&noteModel{}))
	require.NoError(t, db.Create(&noteModel{ID: "n1", UserID: "a@x.com"}).Error)

	require.NoError(t, Migrate(context.Background(), db, testCollections()))
	require.NoError(t, Migrate(context.Background(), db, testCollections()), "second run must be a no-op")

	assert.True(t, db.Migrator().HasTable(&tagModel{}))
	assert.True(t, db.Migrator().HasIndex(&noteModel{}, "idx_notes_by_owner"))

	var count int64
	require.NoError(t, db.Model(&noteModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "existing rows must survive migration")
}

func TestMigrate_SkipsWhenVersionIsCurrent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.Migrator().CreateTable(&schemaMeta{}))
	require.NoError(t, db.Create(&schemaMeta{ID: 1, Version: SchemaVersion}).Error)

	require.NoError(t, Migrate(context.Background(), db, testCollections()))

	assert.False(t, db.Migrator().HasTable(&tagModel{}), "current schema version must not re-run migration")
}

func TestNewID(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for range 1000 {
		id := NewID("vid")
		assert.Regexp(t, `^vid_[0-9a-f-]{36}$`, id)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
