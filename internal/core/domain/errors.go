package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// Authentication failures, all surfaced as 401.
	ErrUnauthenticated = errors.New("authentication required")
	ErrTokenExpired    = errors.New("session token expired")
	ErrTokenInvalid    = errors.New("session token invalid")

	// ErrForbidden marks an authenticated request that the policy denies.
	ErrForbidden = errors.New("access forbidden")

	ErrUserNotFound   = errors.New("user not found")
	ErrProjetNotFound = errors.New("projet not found")
	ErrReviewNotFound = errors.New("review not found")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownRole        = errors.New("unknown role")
)

// ValidationError carries one message per offending field so a single
// response can enumerate every problem, not just the first.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add records a failure for field. Returns the receiver for chaining.
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields[field] = message
	return e
}

// HasErrors reports whether any field failed.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
