// Package refhost is a minimal concrete implementation of the host
// interfaces calendarcp consumes (calendarcp.IntVar, calendarcp.Tint,
// calendarcp.ReasonSink, calendarcp.TintFactory). It exists only to exercise
// the propagators in this module's own tests and in cmd/calendarcp-demo; it
// is not a constraint solver and performs no search or clause learning; its
// only scheduling is RunToFixpoint's round-robin loop (runner.go).
//
// Grounded on the teacher's pkg/minikanren solver.go copy-on-write state and
// variable.go FDVariable: refhost keeps the same "trail of undo actions"
// shape but represents it as a plain stack of closures rather than a
// persistent structure, since calendarcp's host contract only requires
// Checkpoint/Undo semantics, not full immutability.
package refhost

// Trail is a LIFO stack of undo actions. Checkpoint marks the current depth;
// Undo rolls every action recorded since back out, in reverse order.
type Trail struct {
	actions []func()
}

// NewTrail builds an empty trail.
func NewTrail() *Trail {
	return &Trail{}
}

// Checkpoint returns a mark that can later be passed to Undo.
func (t *Trail) Checkpoint() int {
	return len(t.actions)
}

// push records an undo action at the current trail depth.
func (t *Trail) push(undo func()) {
	t.actions = append(t.actions, undo)
}

// Undo reverts every action recorded since mark, in reverse order, and
// truncates the trail back to mark.
func (t *Trail) Undo(mark int) {
	for i := len(t.actions) - 1; i >= mark; i-- {
		t.actions[i]()
	}
	t.actions = t.actions[:mark]
}
