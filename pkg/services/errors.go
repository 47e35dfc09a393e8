package services

import (
	"errors"
	"fmt"

	"github.com/codeready-toolchain/runsheet/pkg/commit"
	"github.com/codeready-toolchain/runsheet/pkg/live"
	"github.com/codeready-toolchain/runsheet/pkg/schedule"
	"github.com/codeready-toolchain/runsheet/pkg/store"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// InvalidTransitionError is returned when an event or item status change is
// not permitted from the current state.
type InvalidTransitionError = live.InvalidTransitionError

// IsInvalidTransition checks if an error is an invalid transition
func IsInvalidTransition(err error) bool {
	var te *InvalidTransitionError
	return errors.As(err, &te)
}

// PartialCommitError is returned when some item updates of a live action
// were written and others failed. The written ones stay committed.
type PartialCommitError = commit.PartialCommitError

// AsPartialCommit extracts a PartialCommitError from err.
func AsPartialCommit(err error) (*PartialCommitError, bool) {
	var pce *PartialCommitError
	ok := errors.As(err, &pce)
	return pce, ok
}

// BatchFailedError is returned when every item update of a live action
// failed. Nothing was written.
type BatchFailedError = commit.BatchFailedError

// AsBatchFailed extracts a BatchFailedError from err.
func AsBatchFailed(err error) (*BatchFailedError, bool) {
	var bfe *BatchFailedError
	ok := errors.As(err, &bfe)
	return bfe, ok
}

// translate maps store and engine errors onto the service taxonomy.
func translate(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, schedule.ErrAnchorNotFound),
		errors.Is(err, schedule.ErrItemNotFound):
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	case errors.Is(err, schedule.ErrMixedEvents):
		return NewValidationError("items", err.Error())
	}
	return fmt.Errorf("failed to %s: %w", what, err)
}
