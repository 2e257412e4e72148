// Package dto defines data transfer objects for the videos feature's HTTP transport layer.
package dto

import (
	"time"

	"skillroots/internal/feature/videos/domain/entity"
)

// UploadVideoReq is the request body for POST /videos.
type UploadVideoReq struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnailUrl" binding:"omitempty,url"`
	VideoURL     string `json:"videoUrl" binding:"required"`
}

// VideoRes is the public view of a video.
type VideoRes struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	UploaderName string    `json:"uploaderName"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	VideoURL     string    `json:"videoUrl"`
	Views        int64     `json:"views"`
	Likes        int64     `json:"likes"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewVideoRes converts a video to its response form.
func NewVideoRes(v entity.Video) VideoRes {
	return VideoRes{
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

// NewVideoList converts videos to their response form; never nil.
func NewVideoList(vs []entity.Video) []VideoRes {
	out := make([]VideoRes, 0, len(vs))
	for _, v := range vs {
		out = append(out, NewVideoRes(v))
	}
	return out
}
