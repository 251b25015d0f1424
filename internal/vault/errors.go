package vault

import "errors"

var (
	// ErrNotFound is returned by Retrieve when no file exists under the
	// given stored name.
	ErrNotFound = errors.New("vault: file not found")

	// ErrInvalidName is returned when a stored name tries to escape the
	// vault directory or is empty.
	ErrInvalidName = errors.New("vault: invalid file name")
)
