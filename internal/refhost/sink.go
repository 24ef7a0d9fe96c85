package refhost

import "github.com/gitrdm/calendarcp/pkg/calendarcp"

// Tint is a trailed integer primitive, grounded on the teacher's
// SolverState copy-on-write bookkeeping (solver.go): instead of snapshotting
// a whole state map, a Tint undoes its own single value through the shared
// Trail.
type Tint struct {
	trail *Trail
	val   int
}

// NewTint allocates a Tint initialized to v.
func NewTint(trail *Trail, v int) *Tint {
	return &Tint{trail: trail, val: v}
}

func (t *Tint) Get() int { return t.val }

func (t *Tint) Set(v int) {
	old := t.val
	t.val = v
	t.trail.push(func() { t.val = old })
}

// TintFactory implements calendarcp.TintFactory against a shared Trail.
type TintFactory struct {
	Trail *Trail
}

// NewTintFactory builds a factory that allocates Tints against trail.
func NewTintFactory(trail *Trail) *TintFactory {
	return &TintFactory{Trail: trail}
}

func (f *TintFactory) NewTint(init int) calendarcp.Tint {
	return NewTint(f.Trail, init)
}

// Sink is a minimal calendarcp.ReasonSink: it wraps reason tails into a
// Clause unchanged, and records the most recent conflict for callers (tests,
// the demo CLI) to inspect instead of feeding a SAT conflict-driven search.
type Sink struct {
	LastConflict []calendarcp.Lit
}

// NewSink builds an empty conflict sink.
func NewSink() *Sink { return &Sink{} }

func (s *Sink) Reason(lits []calendarcp.Lit) *calendarcp.Clause {
	return &calendarcp.Clause{Lits: lits}
}

func (s *Sink) Conflict(lits []calendarcp.Lit) {
	s.LastConflict = lits
}

// HasConflict reports whether Conflict has been called since the sink (or
// its owning propagate loop) was last reset.
func (s *Sink) HasConflict() bool { return s.LastConflict != nil }

// Reset clears the recorded conflict.
func (s *Sink) Reset() { s.LastConflict = nil }
