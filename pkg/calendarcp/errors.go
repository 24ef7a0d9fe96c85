package calendarcp

import (
	"errors"
	"fmt"
)

// Sentinel errors, in the style of the teacher's fd.go error block.
var (
	// ErrInconsistent reports that propagate() returned a conflict: no
	// feasible placement exists for some task under the current bounds. The
	// host contract itself (spec §6/§7) signals this through a bool return
	// plus the ReasonSink, never through a Go error; ErrInconsistent exists
	// so callers one level up (a CLI, a search driver) have a wrappable
	// sentinel to report when they give up on a run that ended in conflict.
	ErrInconsistent = errors.New("calendarcp: no feasible placement under current bounds")
	// ErrInvalidArgument reports a malformed constructor argument.
	ErrInvalidArgument = errors.New("calendarcp: invalid argument")
)

// mustArg panics if cond is false, formatting msg like fmt.Sprintf. This is
// the Go analogue of the host engine's rassert(...): a violated precondition
// is a programmer error and is fatal, never a recoverable propagation
// failure (see spec §7.1).
func mustArg(cond bool, msg string, args ...any) {
	if !cond {
		panic(fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(msg, args...)))
	}
}
