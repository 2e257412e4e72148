// Package usecase はmarketplaceフィーチャーのビジネスロジックを実装します。
package usecase

import "errors"

var (
	// ErrItemNotFound is returned when no item exists for an ID.
	ErrItemNotFound = errors.New("item not found")

	// ErrOrderNotFound is returned when no order exists for an ID.
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidInput is returned when listing or checkout input fails validation.
	ErrInvalidInput = errors.New("invalid input")
)
