package db

import "github.com/google/uuid"

// NewID returns a globally unique, time-ordered identifier such as "vid_0190c6e1-…".
func NewID(prefix string) string {
	return prefix + "_" + uuid.Must(uuid.NewV7()).String()
}
