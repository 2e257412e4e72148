// Package seed populates an empty store with the demo catalog.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	marketadapters "skillroots/internal/feature/marketplace/adapters"
	videoadapters "skillroots/internal/feature/videos/adapters"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog is the demo content inserted into a fresh store.
type Catalog struct {
	Owner  string        `yaml:"owner"`
	Videos []CatalogVideo `yaml:"videos"`
	Items  []CatalogItem  `yaml:"items"`
}

type CatalogVideo struct {
	ID           string `yaml:"id"`
	Uploader     string `yaml:"uploader"`
	Title        string `yaml:"title"`
	Description  string `yaml:"description"`
	ThumbnailURL string `yaml:"thumbnail_url"`
	VideoURL     string `yaml:"video_url"`
	Views        int64  `yaml:"views"`
	Likes        int64  `yaml:"likes"`
}

type CatalogItem struct {
	ID          string `yaml:"id"`
	Seller      string `yaml:"seller"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
	ImageURL    string `yaml:"image_url"`
}

// DefaultCatalog parses the embedded catalog.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(catalogYAML)
}

// ParseCatalog decodes a YAML catalog.
func ParseCatalog(b []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if c.Owner == "" {
		return nil, fmt.Errorf("parse catalog: owner is required")
	}
	return &c, nil
}

func (c *Catalog) rows(now time.Time) ([]videoadapters.VideoModel, []marketadapters.ItemModel, error) {
	videos := make([]videoadapters.VideoModel, 0, len(c.Videos))
	for _, v := range c.Videos {
		videos = append(videos, videoadapters.VideoModel{
			ID:           v.ID,
			UserID:       c.Owner,
			UploaderName: v.Uploader,
			Title:        v.Title,
			Description:  v.Description,
			ThumbnailURL: v.ThumbnailURL,
			VideoURL:     v.VideoURL,
			Views:        v.Views,
			Likes:        v.Likes,
			CreatedAt:    now,
		})
	}

	items := make([]marketadapters.ItemModel, 0, len(c.Items))
	for _, it := range c.Items {
		price, err := decimal.NewFromString(it.Price)
		if err != nil {
			return nil, nil, fmt.Errorf("item %s: invalid price %q: %w", it.ID, it.Price, err)
		}
		items = append(items, marketadapters.ItemModel{
			ID:          it.ID,
			UserID:      c.Owner,
			SellerName:  it.Seller,
			Name:        it.Name,
			Description: it.Description,
			Price:       price,
			ImageURL:    it.ImageURL,
			CreatedAt:   now,
		})
	}
	return videos, items, nil
}

// SeedIfEmpty inserts the embedded catalog when the videos table is empty.
// It matches db.Seeder.
func SeedIfEmpty(ctx context.Context, db *gorm.DB) error {
	c, err := DefaultCatalog()
	if err != nil {
		return err
	}
	_, err = c.SeedIfEmpty(ctx, db)
	return err
}

// SeedIfEmpty inserts every video and item of c in one transaction, unless the
// store already holds at least one video. It reports whether anything was written.
func (c *Catalog) SeedIfEmpty(ctx context.Context, db *gorm.DB) (bool, error) {
	videos, items, err := c.rows(time.Now().UTC())
	if err != nil {
		return false, err
	}

	seeded := false
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&videoadapters.VideoModel{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		if len(videos) > 0 {
			if err := tx.Create(&videos).Error; err != nil {
				return fmt.Errorf("insert videos: %w", err)
			}
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return fmt.Errorf("insert items: %w", err)
			}
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("seed catalog: %w", err)
	}
	if seeded {
		slog.Info("store seeded with demo catalog", "videos", len(videos), "items", len(items))
	}
	return seeded, nil
}
