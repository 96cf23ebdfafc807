package workflow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wl0182/Restaurant-Ordering-System/internal/entity"
	"github.com/wl0182/Restaurant-Ordering-System/internal/workflow"
)

func TestTransition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from  workflow.State
		event workflow.Event
		want  workflow.State
		err   bool
	}{
		{from: workflow.StateIdle, event: workflow.EventStart, want: workflow.StateActive},
		{from: workflow.StateActive, event: workflow.EventResume, want: workflow.StateActive},
		{from: workflow.StateActive, event: workflow.EventOrder, want: workflow.StateActive},
		{from: workflow.StateActive, event: workflow.EventRequestEnd, want: workflow.StateCheckoutPending},
		{from: workflow.StateCheckoutPending, event: workflow.EventEnd, want: workflow.StateEnded},
		{from: workflow.StateEnded, event: workflow.EventRelease, want: workflow.StateIdle},

		{from: workflow.StateIdle, event: workflow.EventOrder, want: workflow.StateIdle, err: true},
		{from: workflow.StateIdle, event: workflow.EventEnd, want: workflow.StateIdle, err: true},
		{from: workflow.StateActive, event: workflow.EventStart, want: workflow.StateActive, err: true},
		{from: workflow.StateCheckoutPending, event: workflow.EventOrder, want: workflow.StateCheckoutPending, err: true},
		{from: workflow.StateEnded, event: workflow.EventStart, want: workflow.StateEnded, err: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+string(tt.event), func(t *testing.T) {
			t.Parallel()

			got, err := workflow.Transition(tt.from, tt.event)
			if tt.err {
				require.ErrorIs(t, err, entity.ErrInvalidTransition)
			} else {
				require.NoError(t, err)
			}

			require.Equal(t, tt.want, got)
		})
	}
}
