package adapters

import (
	"time"

	"skillroots/internal/feature/videos/domain/entity"
)

// VideoModel is the videos table row. UserID carries the non-unique owner index.
type VideoModel struct {
	ID           string    `gorm:"primaryKey;size:64"`
	UserID       string    `gorm:"size:255;not null;index:idx_videos_by_owner"`
	UploaderName string    `gorm:"size:255;not null"`
	Title        string    `gorm:"size:255;not null"`
	Description  string    `gorm:"type:text"`
	ThumbnailURL string    `gorm:"size:1024"`
	VideoURL     string    `gorm:"size:1024;not null"`
	Views        int64     `gorm:"not null;default:0"`
	Likes        int64     `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (VideoModel) TableName() string {
	return "videos"
}

// OwnerIndex is the name of the owner index on the videos table.
const OwnerIndex = "idx_videos_by_owner"

// ToEntity converts the row into its domain form.
func (m VideoModel) ToEntity() entity.Video {
	return entity.Video{
		ID:           m.ID,
		UserID:       m.UserID,
		UploaderName: m.UploaderName,
		Title:        m.Title,
		Description:  m.Description,
		ThumbnailURL: m.ThumbnailURL,
		VideoURL:     m.VideoURL,
		Views:        m.Views,
		Likes:        m.Likes,
		CreatedAt:    m.CreatedAt,
	}
}

// VideoModelFromEntity converts a domain video into a row.
func VideoModelFromEntity(v entity.Video) VideoModel {
	return VideoModel{
		ID:           v.ID,
		UserID:       v.UserID,
		UploaderName: v.UploaderName,
		Title:        v.Title,
		Description:  v.Description,
		ThumbnailURL: v.ThumbnailURL,
		VideoURL:     v.VideoURL,
		Views:        v.Views,
		Likes:        v.Likes,
		CreatedAt:    v.CreatedAt,
	}
}

func toEntities(rows []VideoModel) []entity.Video {
	out := make([]entity.Video, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.ToEntity())
	}
	return out
}
