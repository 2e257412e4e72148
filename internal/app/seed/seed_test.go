package seed

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	marketadapters "skillroots/internal/feature/marketplace/adapters"
	videoadapters "skillroots/internal/feature/videos/adapters"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&videoadapters.VideoModel{}, &marketadapters.ItemModel{}))
	return db
}

func counts(t *testing.T, db *gorm.DB) (videos, items int64) {
	t.Helper()
	require.NoError(t, db.Model(&videoadapters.VideoModel{}).Count(&videos).Error)
	require.NoError(t, db.Model(&marketadapters.ItemModel{}).Count(&items).Error)
	return videos, items
}

func TestDefaultCatalog(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	assert.Equal(t, "admin@skillroots.com", c.Owner)
	assert.Len(t, c.Videos, 6)
	assert.Len(t, c.Items, 5)
	assert.Equal(t, "vid_seed_1", c.Videos[0].ID)
	assert.Equal(t, int64(3420), c.Videos[0].Views)
	assert.Equal(t, "12500", c.Items[1].Price)
	assert.Contains(t, c.Items[0].Description, "Krishna's")
}

func TestSeedIfEmpty_FreshStore(t *testing.T) {
	db := setupDB(t)

	require.NoError(t, SeedIfEmpty(context.Background(), db))

	videos, items := counts(t, db)
	assert.Equal(t, int64(6), videos)
	assert.Equal(t, int64(5), items)

	var saree marketadapters.ItemModel
	require.NoError(t, db.First(&saree, "id = ?", "item_seed_2").Error)
	assert.True(t, decimal.NewFromInt(12500).Equal(saree.Price))
	assert.Equal(t, "admin@skillroots.com", saree.UserID)
}

func TestSeedIfEmpty_RunsOnce(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, SeedIfEmpty(context.Background(), db))

	// a like after seeding must survive a second initialization
	require.NoError(t, db.Model(&videoadapters.VideoModel{}).Where("id = ?", "vid_seed_1").
		Update("likes", gorm.Expr("likes + 1")).Error)

	c, err := DefaultCatalog()
	require.NoError(t, err)
	seeded, err := c.SeedIfEmpty(context.Background(), db)
	require.NoError(t, err)
	assert.False(t, seeded)

	videos, items := counts(t, db)
	assert.Equal(t, int64(6), videos)
	assert.Equal(t, int64(5), items)

	var v videoadapters.VideoModel
	require.NoError(t, db.First(&v, "id = ?", "vid_seed_1").Error)
	assert.Equal(t, int64(216), v.Likes)
}

func TestSeedIfEmpty_NonEmptyStoreIsLeftAlone(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Create(&videoadapters.VideoModel{ID: "vid_user", UserID: "a@x.com", UploaderName: "A", Title: "t", VideoURL: "u"}).Error)

	require.NoError(t, SeedIfEmpty(context.Background(), db))

	videos, items := counts(t, db)
	assert.Equal(t, int64(1), videos)
	assert.Equal(t, int64(0), items)
}

func TestSeedIfEmpty_FailureRollsBack(t *testing.T) {
	db := setupDB(t)
	c := &Catalog{
		Owner:  "admin@skillroots.com",
		Videos: []CatalogVideo{{ID: "v1", Uploader: "u", Title: "t", VideoURL: "x"}},
		// duplicate primary key makes the items insert fail
		Items: []CatalogItem{{ID: "i1", Seller: "s", Name: "n", Price: "1"}, {ID: "i1", Seller: "s", Name: "n", Price: "1"}},
	}

	_, err := c.SeedIfEmpty(context.Background(), db)
	require.Error(t, err)

	videos, items := counts(t, db)
	assert.Zero(t, videos, "videos must not be committed when items fail")
	assert.Zero(t, items)
}

func TestParseCatalog_Errors(t *testing.T) {
	_, err := ParseCatalog([]byte("videos: ["))
	assert.Error(t, err)

	_, err = ParseCatalog([]byte("videos: []"))
	assert.ErrorContains(t, err, "owner is required")

	c, err := ParseCatalog([]byte("owner: a@x.com\nitems:\n  - id: i\n    price: abc\n"))
	require.NoError(t, err)
	_, err = c.SeedIfEmpty(context.Background(), setupDB(t))
	assert.ErrorContains(t, err, "invalid price")
}
