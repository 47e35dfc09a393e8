package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codeready-toolchain/runsheet/pkg/commit"
	"github.com/codeready-toolchain/runsheet/pkg/live"
	"github.com/codeready-toolchain/runsheet/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	partial := &commit.PartialCommitError{
		Applied: []string{"a", "c"},
		Failed:  []commit.FailedUpdate{{ItemID: "b", Err: errors.New("write failed")}},
	}

	batchFailed := &commit.BatchFailedError{
		Failed: []commit.FailedUpdate{
			{ItemID: "b", Err: errors.New("write failed")},
			{ItemID: "a", Err: errors.New("write failed")},
		},
	}

	tests := map[string]struct {
		err  error
		code int
		msg  string
		ids  []string
	}{
		"validation": {
			err:  services.NewValidationError("item_id", "item_id is required"),
			code: http.StatusBadRequest,
			msg:  "item_id is required",
		},
		"not found through wrapping": {
			err:  fmt.Errorf("failed to load item: %w", services.ErrNotFound),
			code: http.StatusNotFound,
			msg:  "resource not found",
		},
		"event transition": {
			err:  &live.InvalidTransitionError{Entity: "event", From: "draft", To: "paused"},
			code: http.StatusConflict,
			msg:  "invalid event transition from 'draft' to 'paused'",
		},
		"partial commit": {
			err:  fmt.Errorf("jump: %w", partial),
			code: http.StatusInternalServerError,
			msg:  "timeline partially updated",
			ids:  []string{"b"},
		},
		"every write failed": {
			err:  fmt.Errorf("failed to apply jump_to: %w", batchFailed),
			code: http.StatusInternalServerError,
			msg:  "timeline not updated",
			ids:  []string{"a", "b"},
		},
		"store failure": {
			err:  errors.New("connection reset by peer"),
			code: http.StatusInternalServerError,
			msg:  "internal server error",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			he := mapServiceError(tt.err)
			assert.Equal(t, tt.code, he.Code)
			assert.Contains(t, he.Message, tt.msg)
			assert.Equal(t, tt.ids, he.FailedItemIDs)
			assert.NotContains(t, he.Message, "connection reset", "internal details stay in the log")
		})
	}
}
