package share

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientShares is returned when fewer than k shares are available.
	ErrInsufficientShares = errors.New("share: insufficient shares")
	// ErrInvalidThreshold is returned when k < 1.
	ErrInvalidThreshold = errors.New("share: threshold must be at least 1")
	// ErrInvalidIndex is returned when a share index is not a positive base 10 integer.
	ErrInvalidIndex = errors.New("share: invalid share index")
	// ErrMissingKeys is returned when a document has no "keys" object.
	ErrMissingKeys = errors.New("share: missing \"keys\" object")
)

// InsufficientSharesError reports how many shares were found, and how many were needed.
type InsufficientSharesError struct {
	Have, Need int
}

func (e *InsufficientSharesError) Error() string {
	return fmt.Sprintf("share: need %d shares, got %d", e.Need, e.Have)
}

func (e *InsufficientSharesError) Unwrap() error { return ErrInsufficientShares }

// Error wraps a failure to decode a particular share.
type Error struct {
	// Index is the share index as written in the document.
	Index string
	// Err is the underlying error
	Err error
}

func (e Error) Error() string {
	return fmt.Sprintf("share %s: %s", e.Index, e.Err)
}

func (e Error) Unwrap() error {
	return e.Err
}
