package live

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/runsheet/pkg/models"
)

func TestEventTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    models.EventStatus
		action  Action
		want    models.EventStatus
		wantErr bool
	}{
		{name: "start from draft", from: models.EventStatusDraft, action: ActionStart, want: models.EventStatusLive},
		{name: "start from scheduled", from: models.EventStatusScheduled, action: ActionStart, want: models.EventStatusLive},
		{name: "start while live fails", from: models.EventStatusLive, action: ActionStart, wantErr: true},
		{name: "start while paused fails", from: models.EventStatusPaused, action: ActionStart, wantErr: true},
		{name: "start after completion fails", from: models.EventStatusCompleted, action: ActionStart, wantErr: true},
		{name: "pause live", from: models.EventStatusLive, action: ActionPause, want: models.EventStatusPaused},
		{name: "pause retry is a no-op", from: models.EventStatusPaused, action: ActionPause, want: models.EventStatusPaused},
		{name: "pause while not live fails", from: models.EventStatusDraft, action: ActionPause, wantErr: true},
		{name: "resume paused", from: models.EventStatusPaused, action: ActionResume, want: models.EventStatusLive},
		{name: "resume retry is a no-op", from: models.EventStatusLive, action: ActionResume, want: models.EventStatusLive},
		{name: "resume while not live fails", from: models.EventStatusScheduled, action: ActionResume, wantErr: true},
		{name: "end live", from: models.EventStatusLive, action: ActionEnd, want: models.EventStatusCompleted},
		{name: "end paused", from: models.EventStatusPaused, action: ActionEnd, want: models.EventStatusCompleted},
		{name: "end retry is a no-op", from: models.EventStatusCompleted, action: ActionEnd, want: models.EventStatusCompleted},
		{name: "end while not live fails", from: models.EventStatusDraft, action: ActionEnd, wantErr: true},
		{name: "cancel live", from: models.EventStatusLive, action: ActionCancel, want: models.EventStatusCancelled},
		{name: "cancel draft", from: models.EventStatusDraft, action: ActionCancel, want: models.EventStatusCancelled},
		{name: "cancel completed fails", from: models.EventStatusCompleted, action: ActionCancel, wantErr: true},
		{name: "schedule draft", from: models.EventStatusDraft, action: ActionSchedule, want: models.EventStatusScheduled},
		{name: "schedule live fails", from: models.EventStatusLive, action: ActionSchedule, wantErr: true},
		{name: "unschedule", from: models.EventStatusScheduled, action: ActionUnschedule, want: models.EventStatusDraft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transition(tt.from, tt.action)
			if tt.wantErr {
				require.Error(t, err)
				var ite *InvalidTransitionError
				assert.ErrorAs(t, err, &ite)
				assert.Equal(t, tt.from, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNamedTransitions(t *testing.T) {
	status, err := Start(models.EventStatusScheduled)
	require.NoError(t, err)
	status, err = Pause(status)
	require.NoError(t, err)
	status, err = Resume(status)
	require.NoError(t, err)
	status, err = End(status)
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusCompleted, status)

	_, err = Pause(models.EventStatusCompleted)
	assert.Error(t, err)
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		from, to models.EventStatus
		want     Action
	}{
		{models.EventStatusDraft, models.EventStatusLive, ActionStart},
		{models.EventStatusPaused, models.EventStatusLive, ActionResume},
		{models.EventStatusLive, models.EventStatusLive, ActionResume},
		{models.EventStatusLive, models.EventStatusPaused, ActionPause},
		{models.EventStatusPaused, models.EventStatusCompleted, ActionEnd},
		{models.EventStatusLive, models.EventStatusCancelled, ActionCancel},
		{models.EventStatusDraft, models.EventStatusScheduled, ActionSchedule},
		{models.EventStatusScheduled, models.EventStatusDraft, ActionUnschedule},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			got, err := ActionFor(tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ActionFor(models.EventStatusDraft, models.EventStatus("bogus"))
	assert.Error(t, err)
}

func TestAcceptsLiveActions(t *testing.T) {
	assert.True(t, AcceptsLiveActions(models.EventStatusLive))
	assert.True(t, AcceptsLiveActions(models.EventStatusPaused))
	assert.False(t, AcceptsLiveActions(models.EventStatusDraft))
	assert.False(t, AcceptsLiveActions(models.EventStatusCompleted))
}

func TestValidateItemTransition(t *testing.T) {
	tests := []struct {
		from, to models.ItemStatus
		ok       bool
	}{
		{models.ItemStatusPending, models.ItemStatusInProgress, true},
		{models.ItemStatusPending, models.ItemStatusSkipped, true},
		{models.ItemStatusPending, models.ItemStatusCompleted, true},
		{models.ItemStatusInProgress, models.ItemStatusCompleted, true},
		{models.ItemStatusInProgress, models.ItemStatusSkipped, true},
		{models.ItemStatusInProgress, models.ItemStatusPending, false},
		{models.ItemStatusCompleted, models.ItemStatusInProgress, false},
		{models.ItemStatusSkipped, models.ItemStatusPending, false},
		{models.ItemStatusCompleted, models.ItemStatusCompleted, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			err := ValidateItemTransition(tt.from, tt.to)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
