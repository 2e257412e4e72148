package db

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreUnavailable is returned when the store cannot be opened
	// (permissions, missing server, unsupported environment).
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrTransactionFailed is returned when a single operation's transaction aborted.
	ErrTransactionFailed = errors.New("transaction failed")
)

// TxError wraps a driver error of operation op as ErrTransactionFailed.
func TxError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrTransactionFailed, err)
}
