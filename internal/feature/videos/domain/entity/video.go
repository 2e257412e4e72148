// Package entity defines the core domain entities of the videos feature.
package entity

import "time"

// Video is an uploaded craft video. Views and Likes only ever grow.
type Video struct {
	ID           string
	UserID       string // owner email
	UploaderName string
	Title        string
	Description  string
	ThumbnailURL string
	VideoURL     string
	Views        int64
	Likes        int64
	CreatedAt    time.Time
}

// VideoDraft carries the fields supplied on upload.
type VideoDraft struct {
	UserID       string
	UploaderName string
	Title        string
	Description  string
	ThumbnailURL string
	VideoURL     string
}
