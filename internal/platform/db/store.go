package db

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// SchemaVersion is the schema version written by Migrate.
// Bump it whenever a collection or index is added.
const SchemaVersion = 2

const defaultConnectTimeout = 60 * time.Second

// Collection describes one table of the store.
type Collection struct {
	Name  string
	Model any
	// OwnerIndex is the name of the non-unique owner index declared on Model; empty if none.
	OwnerIndex string
}

// Seeder populates a freshly opened store. Its failure is logged, never returned from Open.
type Seeder func(ctx context.Context, db *gorm.DB) error

type schemaMeta struct {
	ID        uint `gorm:"primaryKey"`
	Version   int  `gorm:"not null"`
	UpdatedAt time.Time
}

func (schemaMeta) TableName() string {
	return "schema_meta"
}

// Store owns the single long-lived connection to the local store.
// Build one per process and pass it to the components that need it.
type Store struct {
	cfg         Config
	opener      Opener
	collections []Collection
	seeder      Seeder

	group singleflight.Group
	mu    sync.RWMutex
	db    *gorm.DB
}

// NewStore creates a Store. Nothing is opened until Open is called.
func NewStore(cfg Config, opener Opener, collections []Collection, seeder Seeder) *Store {
	if opener == nil {
		opener = OpenerFor(cfg.Driver)
	}
	return &Store{
		cfg:         cfg,
		opener:      opener,
		collections: collections,
		seeder:      seeder,
	}
}

// Open returns the store connection, establishing it on first use.
// Concurrent callers share a single in-flight attempt. A failed attempt is not
// remembered, so a later call tries again.
func (s *Store) Open(ctx context.Context) (*gorm.DB, error) {
	if db := s.current(); db != nil {
		return db, nil
	}

	v, err, _ := s.group.Do("open", func() (any, error) {
		if db := s.current(); db != nil {
			return db, nil
		}
		db, err := s.open(ctx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.db = db
		s.mu.Unlock()
		return db, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return v.(*gorm.DB), nil
}

// Ping checks that the opened connection is still usable.
func (s *Store) Ping(ctx context.Context) error {
	db := s.current()
	if db == nil {
		return ErrStoreUnavailable
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

func (s *Store) current() *gorm.DB {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.db
}

func (s *Store) open(ctx context.Context) (*gorm.DB, error) {
	timeout := s.cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	db, err := ConnectWithRetry(BuildDSN(s.cfg), timeout, s.opener)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if s.cfg.Driver != DriverPostgres {
		// SQLite has a single writer; one connection serializes transactions
		// and keeps a ":memory:" database alive for the whole process.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetConnMaxLifetime(0)
	}

	if err := Migrate(ctx, db, s.collections); err != nil {
		// 失敗した接続は保持されないので、ここで閉じる
		if cerr := sqlDB.Close(); cerr != nil {
			slog.Warn("failed to close store after migration error", "error", cerr)
		}
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	if s.seeder != nil {
		if err := s.seeder(ctx, db); err != nil {
			slog.Warn("seeding failed; continuing with an empty catalog", "error", err)
		}
	}

	slog.Info("store opened", "driver", s.driverName(), "schema_version", SchemaVersion)
	return db, nil
}

func (s *Store) driverName() string {
	if s.cfg.Driver == "" {
		return DriverSQLite
	}
	return s.cfg.Driver
}

// Migrate brings the schema up to SchemaVersion. Every collection table and
// owner index is created only if absent, so it is safe on a partially
// migrated store.
func Migrate(ctx context.Context, db *gorm.DB, collections []Collection) error {
	tx := db.WithContext(ctx)
	m := tx.Migrator()

	if !m.HasTable(&schemaMeta{}) {
		if err := m.CreateTable(&schemaMeta{}); err != nil {
			return fmt.Errorf("create schema_meta: %w", err)
		}
	}

	var meta schemaMeta
	if err := tx.Limit(1).Find(&meta).Error; err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if meta.Version >= SchemaVersion {
		return nil
	}

	for _, c := range collections {
		if !m.HasTable(c.Model) {
			if err := m.CreateTable(c.Model); err != nil {
				return fmt.Errorf("create collection %s: %w", c.Name, err)
			}
		}
		if c.OwnerIndex != "" && !m.HasIndex(c.Model, c.OwnerIndex) {
			if err := m.CreateIndex(c.Model, c.OwnerIndex); err != nil {
				return fmt.Errorf("create index %s: %w", c.OwnerIndex, err)
			}
		}
	}

	from := meta.Version
	meta.ID = 1
	meta.Version = SchemaVersion
	if err := tx.Save(&meta).Error; err != nil {
		return fmt.Errorf("write schema version: %w", err)
	}
	slog.Info("schema migrated", "from", from, "to", SchemaVersion)
	return nil
}
