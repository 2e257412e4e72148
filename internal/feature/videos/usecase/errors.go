// Package usecase implements the business logic for the videos feature.
package usecase

import "errors"

var (
	// ErrVideoNotFound is returned when no video exists for an ID.
	ErrVideoNotFound = errors.New("video not found")

	// ErrInvalidInput is returned when upload input fails validation.
	ErrInvalidInput = errors.New("invalid input")
)
