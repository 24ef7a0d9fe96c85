package calendarcp

// TaskVars bundles the host variables a per-task calendar propagator owns by
// borrow (spec §4.4). O is nil for the NoOver flavor, where overtime is
// forced to zero and never attached.
type TaskVars struct {
	S, E, O IntVar
}

// axis identifies one of the three task variables in the fixed propagation
// order S, E, O (spec §5, "Fixed-order axis pruning").
type axis int

const (
	axisS axis = iota
	axisE
	axisO
)

// CalendarPropagator is the per-task bound-consistency propagator of spec
// §4.4: it narrows (S, E, O) to the bounds consistent with some feasible
// placement of working amount p on an attached calendar, emitting
// explanations through the host's ReasonSink.
type CalendarPropagator struct {
	vars TaskVars
	p    int
	cal  *Calendar
	hasO bool
}

// NewCalendarPropagator builds a propagator for one task. o may be nil only
// when cal's flavor is NoOver.
func NewCalendarPropagator(s, e, o IntVar, p int, cal *Calendar) *CalendarPropagator {
	hasO := cal.Flavor() != FlavorNoOver
	mustArg(hasO == (o != nil), "CalendarPropagator: overtime var presence must match calendar flavor")
	return &CalendarPropagator{vars: TaskVars{S: s, E: e, O: o}, p: p, cal: cal, hasO: hasO}
}

func (cp *CalendarPropagator) varFor(a axis) IntVar {
	switch a {
	case axisS:
		return cp.vars.S
	case axisE:
		return cp.vars.E
	default:
		return cp.vars.O
	}
}

func (cp *CalendarPropagator) queryBound(a axis, doms TaskDoms, min bool) int {
	switch a {
	case axisS:
		return cp.cal.BoundStart(doms, cp.p, min)
	case axisE:
		return cp.cal.BoundElapsed(doms, cp.p, min)
	default:
		return cp.cal.BoundOver(doms, cp.p, min)
	}
}

// allLits returns the full six-literal universe (four for NoOver) in the
// fixed order S.min, S.max, E.min, E.max, O.min, O.max.
func (cp *CalendarPropagator) allLits() []Lit {
	lits := []Lit{cp.vars.S.GetMinLit(), cp.vars.S.GetMaxLit(), cp.vars.E.GetMinLit(), cp.vars.E.GetMaxLit()}
	if cp.hasO {
		lits = append(lits, cp.vars.O.GetMinLit(), cp.vars.O.GetMaxLit())
	}
	return lits
}

// otherLits returns allLits() minus the single literal for (a, dir): the
// explanation policy of spec §4.4.
func (cp *CalendarPropagator) otherLits(a axis, dir LitDirection) []Lit {
	all := cp.allLits()
	idx := int(a) * 2
	if dir == LRLE {
		idx++
	}
	out := make([]Lit, 0, len(all)-1)
	for i, l := range all {
		if i == idx {
			continue
		}
		out = append(out, l)
	}
	return out
}

func readDoms(cp *CalendarPropagator) TaskDoms {
	d := TaskDoms{
		MinS: cp.vars.S.GetMin(), MaxS: cp.vars.S.GetMax(),
		MinE: cp.vars.E.GetMin(), MaxE: cp.vars.E.GetMax(),
	}
	if cp.hasO {
		d.MinO = cp.vars.O.GetMin()
		d.MaxO = cp.vars.O.GetMax()
	}
	return d
}

// Propagate runs one fixed-order S/E/O tightening pass (spec §4.4). It
// returns false after reporting a conflict to sink when no feasible placement
// exists, and returns false without touching sink when the host rejects a
// bound update; the host is responsible for restoring prior bounds on
// backtrack.
func (cp *CalendarPropagator) Propagate(sink ReasonSink) bool {
	cur := readDoms(cp)
	axes := []axis{axisS, axisE}
	if cp.hasO {
		axes = append(axes, axisO)
	}
	for _, a := range axes {
		lo := cp.queryBound(a, cur, true)
		if lo == NoFeasibleMin {
			if Lazy {
				sink.Conflict(cp.allLits())
			} else {
				sink.Conflict(nil)
			}
			return false
		}
		hi := cp.queryBound(a, cur, false)

		v := cp.varFor(a)
		if v.SetMinNotR(lo) {
			var reason *Clause
			if Lazy {
				reason = sink.Reason(cp.otherLits(a, LRGE))
			}
			if !v.SetMin(lo, reason) {
				return false
			}
		}
		if v.SetMaxNotR(hi) {
			var reason *Clause
			if Lazy {
				reason = sink.Reason(cp.otherLits(a, LRLE))
			}
			if !v.SetMax(hi, reason) {
				return false
			}
		}

		switch a {
		case axisS:
			cur.MinS, cur.MaxS = v.GetMin(), v.GetMax()
		case axisE:
			cur.MinE, cur.MaxE = v.GetMin(), v.GetMax()
		default:
			cur.MinO, cur.MaxO = v.GetMin(), v.GetMax()
		}
	}
	return true
}
