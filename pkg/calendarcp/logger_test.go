package calendarcp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPropagationLoggerTracksCallsAndConflicts(t *testing.T) {
	pl := NewPropagationLogger("test", nil)

	pl.StartCall("ok").Done()
	pl.StartCall("bad").Conflict()

	stats := pl.Stats()
	require.EqualValues(t, 2, stats.Calls)
	require.EqualValues(t, 1, stats.Conflicts)
}

func TestNilPropagationLoggerIsSafe(t *testing.T) {
	var pl *PropagationLogger
	tracker := pl.StartCall("noop")
	tracker.Done()
	tracker.Conflict()
	require.Equal(t, Stats{}, pl.Stats())
}
