package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/codeready-toolchain/runsheet/pkg/services"
)

// HTTPError is an error with an HTTP status, rendered as {"error": message}.
type HTTPError struct {
	Code          int      `json:"-"`
	Message       string   `json:"error"`
	FailedItemIDs []string `json:"failed_item_ids,omitempty"`
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("code=%d, message=%s", e.Code, e.Message)
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) *HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	if errors.Is(err, services.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "resource not found")
	}
	var transErr *services.InvalidTransitionError
	if errors.As(err, &transErr) {
		return NewHTTPError(http.StatusConflict, transErr.Error())
	}
	if pce, ok := services.AsPartialCommit(err); ok {
		he := NewHTTPError(http.StatusInternalServerError, "timeline partially updated")
		he.FailedItemIDs = pce.FailedIDs()
		return he
	}
	if bfe, ok := services.AsBatchFailed(err); ok {
		slog.Error("Timeline update batch failed", "error", err)
		he := NewHTTPError(http.StatusInternalServerError, "timeline not updated")
		he.FailedItemIDs = bfe.FailedIDs()
		return he
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return NewHTTPError(http.StatusInternalServerError, "internal server error")
}
