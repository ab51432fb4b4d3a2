package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrFileNotFound indicates a local input file does not exist.
	ErrFileNotFound = errors.New("File not found")

	// ErrUnsupportedFormat indicates a file extension outside the
	// supported media type table.
	ErrUnsupportedFormat = errors.New("Unsupported file type")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
