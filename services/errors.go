package services

import (
	"errors"
	"fmt"

	"comment_monitor/repository"
)

var (
	// ErrUnauthorized means the caller has no valid owner identity. Nothing was read or written.
	ErrUnauthorized = errors.New("unauthorized")

	ErrNotFound          = repository.ErrNotFound
	ErrLimitReached      = errors.New("limit reached")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrDuplicateProfile  = errors.New("profile already monitored")
)

// LoadError aborts a run before anything is written.
type LoadError struct {
	What string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.What, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SampleError is a per-profile sampler failure. The profile is skipped.
type SampleError struct {
	ProfileID string
	Err       error
}

func (e *SampleError) Error() string {
	return fmt.Sprintf("sample profile %s: %v", e.ProfileID, e.Err)
}

func (e *SampleError) Unwrap() error { return e.Err }

// PersistError is a failed write of one profile's draft batch. The batch is dropped.
type PersistError struct {
	ProfileID string
	Err       error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("persist drafts for profile %s: %v", e.ProfileID, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
