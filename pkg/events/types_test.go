package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventChannel(t *testing.T) {
	assert.Equal(t, "event:abc-123", EventChannel("abc-123"))

	id, ok := EventIDFromChannel("event:abc-123")
	assert.True(t, ok)
	assert.Equal(t, "abc-123", id)

	for _, ch := range []string{"events", "event:", "session:abc", ""} {
		_, ok := EventIDFromChannel(ch)
		assert.False(t, ok, ch)
	}
}
