package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifyListener_WithoutConnection(t *testing.T) {
	manager := NewConnectionManager(nil, 0)
	listener := NewNotifyListener("host=localhost dbname=test", manager)

	t.Run("subscribe returns error", func(t *testing.T) {
		err := listener.Subscribe(t.Context(), "event:abc")
		assert.ErrorIs(t, err, errListenerStopped)
		assert.False(t, listener.isListening("event:abc"))
	})

	t.Run("unsubscribe is a no-op", func(t *testing.T) {
		assert.NoError(t, listener.Unsubscribe(t.Context(), "event:abc"))
	})

	t.Run("stop before start", func(t *testing.T) {
		listener.Stop(t.Context())
	})
}
