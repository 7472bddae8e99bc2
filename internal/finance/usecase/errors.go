package usecase

import "errors"

var (
	// ErrNotFound is returned when no resource matches the given id.
	ErrNotFound = errors.New("resource not found")
	// ErrNotOwner is returned when the caller does not own the resource.
	ErrNotOwner = errors.New("not authorized to access this route")
	// ErrInvalidDate is returned when an expense date cannot be parsed.
	ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")
)
