package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrSlugTaken          = errors.New("slug already in use")
	ErrStorageUnavailable = errors.New("object storage is not configured")
)

// invalidf wraps ErrInvalidInput with a message fit for the API response.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Message strips the sentinel prefix so handlers can return the detail only.
func Message(err error) string {
	return strings.TrimPrefix(err.Error(), ErrInvalidInput.Error()+": ")
}
