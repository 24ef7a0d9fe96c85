package calendarcp

import (
	"log"
	"sync"
	"time"
)

// PropagationLogger traces propagate() calls and tracks basic timing
// statistics, grounded on the teacher's ContextMonitor/OperationTracker
// (context_utils.go): the same "optional *log.Logger, named operation,
// start/complete with a duration" shape, minus the context.Context
// cancellation and goroutine plumbing the teacher built for monitoring
// miniKanren's async goal streams — spec §5 is explicit that propagate() is
// single-threaded cooperative with no suspension or cancellation, so that
// half of the teacher's type has nothing to attach to here.
//
// A nil *PropagationLogger is always safe to call through and records
// nothing; one built with a nil logger keeps its counters but prints nothing.
type PropagationLogger struct {
	operationID string
	logger      *log.Logger

	mu        sync.Mutex
	calls     int64
	conflicts int64
	totalTime time.Duration
}

// NewPropagationLogger builds a logger identified by operationID, printing
// through out (nil disables printing; counts are still tracked).
func NewPropagationLogger(operationID string, out *log.Logger) *PropagationLogger {
	return &PropagationLogger{operationID: operationID, logger: out}
}

// PropagationTracker times a single propagate() call.
type PropagationTracker struct {
	pl        *PropagationLogger
	name      string
	start     time.Time
	completed bool
}

// StartCall marks the beginning of a propagate() invocation named name (e.g.
// "profile-build", "calendar-day"). Safe to call on a nil *PropagationLogger.
func (pl *PropagationLogger) StartCall(name string) *PropagationTracker {
	if pl == nil {
		return nil
	}
	if pl.logger != nil {
		pl.logger.Printf("[calendarcp:%s] start %s", pl.operationID, name)
	}
	return &PropagationTracker{pl: pl, name: name, start: time.Now()}
}

// Done records a successful propagate() return.
func (pt *PropagationTracker) Done() {
	if pt == nil || pt.completed {
		return
	}
	pt.completed = true
	d := time.Since(pt.start)

	pt.pl.mu.Lock()
	pt.pl.calls++
	pt.pl.totalTime += d
	pt.pl.mu.Unlock()

	if pt.pl.logger != nil {
		pt.pl.logger.Printf("[calendarcp:%s] done %s (%v)", pt.pl.operationID, pt.name, d)
	}
}

// Conflict records a propagate() call that ended in conflict.
func (pt *PropagationTracker) Conflict() {
	if pt == nil || pt.completed {
		return
	}
	pt.completed = true
	d := time.Since(pt.start)

	pt.pl.mu.Lock()
	pt.pl.calls++
	pt.pl.conflicts++
	pt.pl.totalTime += d
	pt.pl.mu.Unlock()

	if pt.pl.logger != nil {
		pt.pl.logger.Printf("[calendarcp:%s] conflict in %s (%v)", pt.pl.operationID, pt.name, d)
	}
}

// Stats is a point-in-time snapshot of a PropagationLogger's counters.
type Stats struct {
	Calls     int64
	Conflicts int64
	TotalTime time.Duration
}

// Stats returns a snapshot of the call counters. Safe to call on nil.
func (pl *PropagationLogger) Stats() Stats {
	if pl == nil {
		return Stats{}
	}
	pl.mu.Lock()
	defer pl.mu.Unlock()
	return Stats{Calls: pl.calls, Conflicts: pl.conflicts, TotalTime: pl.totalTime}
}
