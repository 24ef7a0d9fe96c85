package calendarcp

// This file implements the per-flavor bound queries of spec §4.3:
// bound_start, bound_elapsed, bound_over, lst(lct), ect(est). All five share
// the same scan mechanics (step via next_workable/previous_workable, using a
// break/continue asymmetry between the forward and backward scans per the
// Open Question in spec §9.1) and differ only in the per-(s,e) feasibility
// predicate, so the scan loops are written once and parameterized by a
// feasibility closure.

// feasibleFn reports, for a candidate start s, the end e implied by the
// flavor's construction rule and whether (s, e) is feasible under doms.
type feasibleFn func(s int) (e int, ok bool)

// scanUp walks s upward from next_workable(from, any), stopping (without
// examining further starts) the first time e exceeds the calendar length:
// elapsed cannot shrink as candidate starts increase on a fixed calendar
// suffix, so no later s can be feasible either (spec §9.1).
func (c *Calendar) scanUp(from, to int, feasible feasibleFn) (s, e int, ok bool) {
	for t := c.NextWorkable(from, TimeAny); t <= to; t = c.NextWorkable(t+1, TimeAny) {
		v, good := feasible(t)
		if v > c.Size() {
			break
		}
		if good {
			return t, v, true
		}
	}
	return 0, 0, false
}

// scanDown walks s downward from previous_workable(from, any); unlike scanUp
// it continues past an infeasible-by-overflow candidate, since an earlier s
// may still reach a feasible e (spec §9.1).
func (c *Calendar) scanDown(from, to int, feasible feasibleFn) (s, e int, ok bool) {
	for t := c.PreviousWorkable(from, TimeAny); t >= to; t = c.PreviousWorkable(t-1, TimeAny) {
		if t < 0 {
			break
		}
		v, good := feasible(t)
		if v > c.Size() {
			continue
		}
		if good {
			return t, v, true
		}
	}
	return 0, 0, false
}

// scanAllUp walks every candidate start forward (no early return), invoking
// visit(s, e) for each feasible placement; visit returns false to stop the
// scan early.
func (c *Calendar) scanAllUp(from, to int, feasible feasibleFn, visit func(s, e int) bool) {
	for t := c.NextWorkable(from, TimeAny); t <= to; t = c.NextWorkable(t+1, TimeAny) {
		v, good := feasible(t)
		if v > c.Size() {
			break
		}
		if good {
			if !visit(t, v) {
				return
			}
		}
	}
}

// headTailOvertime counts the overtime (Hour flavor) units at the window's
// head (s) and tail (e-1), counting a unit only once when head and tail
// coincide (spec §4.3 Hour).
func (c *Calendar) headTailOvertime(s, e int) int {
	if e <= s {
		return 0
	}
	n := 0
	if c.Workable(s, TimeOvertime) {
		n++
	}
	last := e - 1
	if last != s && c.Workable(last, TimeOvertime) {
		n++
	}
	return n
}

// getMinEnd computes the smallest e satisfying minE and the maxO-implied
// work floor p-maxO, measuring work on time-type tt (any for Day, regular
// for Hour), per spec §4.3.
func (c *Calendar) getMinEnd(s, minE, maxO, p int, tt TimeType) int {
	e := c.NextWorkable(s+minE-1, tt) + 1
	need := p - maxO
	if need > 0 && c.CountTime(s, e, tt) < need {
		if e2 := c.GetEnd(s, need, tt); e2 > e {
			e = e2
		}
	}
	return e
}

// getMaxEnd computes the largest e (capped at s+maxE) satisfying the
// minO-implied work ceiling p-minO, measuring work on time-type tt.
func (c *Calendar) getMaxEnd(s, maxE, minO, p int, tt TimeType) int {
	cap := s + maxE
	if cap > c.Size() {
		cap = c.Size()
	}
	e := c.PreviousWorkable(cap-1, tt) + 1
	need := p - minO
	if c.CountTime(s, e, tt) > need {
		e = c.GetEnd(s, need, tt)
	}
	return e
}

// --- NoOver ---------------------------------------------------------------

func (c *Calendar) feasibleNoOver(doms TaskDoms, p, s int) (int, bool) {
	e := c.GetEnd(s, p, TimeAny)
	if e > c.Size() {
		return e, false
	}
	elapsed := e - s
	return e, elapsed >= doms.MinE && elapsed <= doms.MaxE
}

// BoundStartNoOver returns the min (or max, if min is false) feasible start
// for a NoOver task.
func (c *Calendar) BoundStartNoOver(doms TaskDoms, p int, min bool) int {
	f := func(s int) (int, bool) { return c.feasibleNoOver(doms, p, s) }
	if min {
		if s, _, ok := c.scanUp(doms.MinS, doms.MaxS, f); ok {
			return s
		}
		return NoFeasibleMin
	}
	if s, _, ok := c.scanDown(doms.MaxS, doms.MinS, f); ok {
		return s
	}
	return NoFeasibleMax
}

// BoundElapsedNoOver returns the min/max feasible elapsed value.
func (c *Calendar) BoundElapsedNoOver(doms TaskDoms, p int, min bool) int {
	f := func(s int) (int, bool) { return c.feasibleNoOver(doms, p, s) }
	best := NoFeasibleMin
	if !min {
		best = NoFeasibleMax
	}
	found := false
	c.scanAllUp(doms.MinS, doms.MaxS, f, func(s, e int) bool {
		elapsed := e - s
		found = true
		if min {
			if elapsed < best || best == NoFeasibleMin {
				best = elapsed
			}
			return elapsed != doms.MinE
		}
		if elapsed > best || best == NoFeasibleMax {
			best = elapsed
		}
		return elapsed != doms.MaxE
	})
	if !found {
		if min {
			return NoFeasibleMin
		}
		return NoFeasibleMax
	}
	return best
}

// BoundOverNoOver is always 0, provided some feasible placement exists.
func (c *Calendar) BoundOverNoOver(doms TaskDoms, p int, min bool) int {
	f := func(s int) (int, bool) { return c.feasibleNoOver(doms, p, s) }
	if _, _, ok := c.scanUp(doms.MinS, doms.MaxS, f); !ok {
		if min {
			return NoFeasibleMin
		}
		return NoFeasibleMax
	}
	return 0
}

// EctNoOver returns the earliest completion time reachable with a start at
// or after est.
func (c *Calendar) EctNoOver(doms TaskDoms, p, est int) int {
	from := doms.MinS
	if est > from {
		from = est
	}
	f := func(s int) (int, bool) { return c.feasibleNoOver(doms, p, s) }
	if _, e, ok := c.scanUp(from, doms.MaxS, f); ok {
		return e
	}
	return NoFeasibleMin
}

// LstNoOver returns the latest start time from which completion by lct is
// still feasible.
func (c *Calendar) LstNoOver(doms TaskDoms, p, lct int) int {
	f := func(s int) (int, bool) {
		e, ok := c.feasibleNoOver(doms, p, s)
		return e, ok && e <= lct
	}
	if s, _, ok := c.scanDown(doms.MaxS, doms.MinS, f); ok {
		return s
	}
	return NoFeasibleMax
}

// --- Day -------------------------------------------------------------------

// windowDay computes the feasible end-time window [e1, e2] for a start s: e1
// is the smallest end meeting minE/maxO, e2 the largest meeting maxE/minO.
// Because count_time changes by exactly 0 or 1 per unit step in e, overtime
// is monotone non-increasing across [e1, e2], so every elapsed/overtime value
// in between is also achievable — callers only need the two extremes.
func (c *Calendar) windowDay(doms TaskDoms, p, s int) (e1, e2 int, ok bool) {
	e1 = c.getMinEnd(s, doms.MinE, doms.MaxO, p, TimeAny)
	if e1 > c.Size() {
		return e1, 0, false
	}
	e2 = c.getMaxEnd(s, doms.MaxE, doms.MinO, p, TimeAny)
	if e1 > e2 {
		return e1, e2, false
	}
	elapsed := e1 - s
	if elapsed < doms.MinE || elapsed > doms.MaxE {
		return e1, e2, false
	}
	o := p - c.CountTime(s, e1, TimeAny)
	if o < doms.MinO || o > doms.MaxO {
		return e1, e2, false
	}
	return e1, e2, true
}

func (c *Calendar) feasibleDay(doms TaskDoms, p, s int) (int, bool) {
	e1, _, ok := c.windowDay(doms, p, s)
	return e1, ok
}

// BoundStartDay returns the min/max feasible start for a Day task.
func (c *Calendar) BoundStartDay(doms TaskDoms, p int, min bool) int {
	f := func(s int) (int, bool) { return c.feasibleDay(doms, p, s) }
	if min {
		if s, _, ok := c.scanUp(doms.MinS, doms.MaxS, f); ok {
			return s
		}
		return NoFeasibleMin
	}
	if s, _, ok := c.scanDown(doms.MaxS, doms.MinS, f); ok {
		return s
	}
	return NoFeasibleMax
}

// BoundElapsedDay returns the min/max feasible elapsed value for a Day task.
// The minimum is attained at each s's smallest feasible end (e1), the
// maximum at its largest (e2).
func (c *Calendar) BoundElapsedDay(doms TaskDoms, p int, min bool) int {
	best := NoFeasibleMin
	if !min {
		best = NoFeasibleMax
	}
	found := false
	for t := c.NextWorkable(doms.MinS, TimeAny); t <= doms.MaxS; t = c.NextWorkable(t+1, TimeAny) {
		e1, e2, ok := c.windowDay(doms, p, t)
		if e1 > c.Size() {
			break
		}
		if !ok {
			continue
		}
		found = true
		if min {
			v := e1 - t
			if v < best || best == NoFeasibleMin {
				best = v
			}
			if v == doms.MinE {
				return v
			}
			continue
		}
		v := e2 - t
		if v > best || best == NoFeasibleMax {
			best = v
		}
		if v == doms.MaxE {
			return v
		}
	}
	if !found {
		if min {
			return NoFeasibleMin
		}
		return NoFeasibleMax
	}
	return best
}

// BoundOverDay returns the min/max feasible overtime value for a Day task.
// Overtime is monotone non-increasing in e, so the minimum overtime is
// attained at each s's largest feasible end (e2) and the maximum at its
// smallest (e1).
func (c *Calendar) BoundOverDay(doms TaskDoms, p int, min bool) int {
	best := NoFeasibleMin
	if !min {
		best = NoFeasibleMax
	}
	found := false
	for t := c.NextWorkable(doms.MinS, TimeAny); t <= doms.MaxS; t = c.NextWorkable(t+1, TimeAny) {
		e1, e2, ok := c.windowDay(doms, p, t)
		if e1 > c.Size() {
			break
		}
		if !ok {
			continue
		}
		found = true
		if min {
			v := p - c.CountTime(t, e2, TimeAny)
			if v < best || best == NoFeasibleMin {
				best = v
			}
			if v == doms.MinO {
				return v
			}
			continue
		}
		v := p - c.CountTime(t, e1, TimeAny)
		if v > best || best == NoFeasibleMax {
			best = v
		}
		if v == doms.MaxO {
			return v
		}
	}
	if !found {
		if min {
			return NoFeasibleMin
		}
		return NoFeasibleMax
	}
	return best
}

// EctDay returns the earliest completion time reachable with a start at or
// after est.
func (c *Calendar) EctDay(doms TaskDoms, p, est int) int {
	from := doms.MinS
	if est > from {
		from = est
	}
	f := func(s int) (int, bool) { return c.feasibleDay(doms, p, s) }
	if _, e, ok := c.scanUp(from, doms.MaxS, f); ok {
		return e
	}
	return NoFeasibleMin
}

// LstDay returns the latest start time from which completion by lct remains
// feasible.
func (c *Calendar) LstDay(doms TaskDoms, p, lct int) int {
	f := func(s int) (int, bool) {
		e, ok := c.feasibleDay(doms, p, s)
		return e, ok && e <= lct
	}
	if s, _, ok := c.scanDown(doms.MaxS, doms.MinS, f); ok {
		return s
	}
	return NoFeasibleMax
}

// --- Hour --------------------------------------------------------------

// windowHour is windowDay's Hour-flavor counterpart: e1/e2 are nudged by one
// step at the window head/tail when the regular-time budget alone can't
// absorb the overtime implied by a partial boundary block (spec §4.3's
// head/tail rule). The same monotonicity argument as windowDay lets callers
// use only the two extremes.
func (c *Calendar) windowHour(doms TaskDoms, p, s int) (e1, e2 int, ok bool) {
	// Unlike Day's any-time accounting, maxO/minO do not discount the
	// regular-hour requirement itself: p regular hours must be present in
	// the window, with overtime at the boundaries tracked (and budgeted)
	// separately by the head-and-tail rule below.
	e1 = c.getMinEnd(s, doms.MinE, 0, p, TimeRegular)
	if e1 > c.Size() {
		// A true capacity overflow: no later s can do better either (spec
		// §9.1's break asymmetry), so callers must see this in e1.
		return e1, 0, false
	}
	if ht := c.headTailOvertime(s, e1); ht > p-c.CountTime(s, e1, TimeRegular) {
		if bumped := c.NextWorkable(e1, TimeRegular) + 1; bumped <= c.Size() {
			e1 = bumped
		} else {
			// The bump itself is unreachable: infeasible at this s only,
			// not a calendar-capacity overflow, so report failure without
			// inflating e1 past Size() (which would wrongly stop a scan).
			return e1, 0, false
		}
	}
	e2 = c.getMaxEnd(s, doms.MaxE, 0, p, TimeRegular)
	if ht := c.headTailOvertime(s, e2); e2 > s && ht > p-c.CountTime(s, e2, TimeRegular) {
		sameBlock := e2-1 == s
		if !(sameBlock && p == 1) && e2-1 > s {
			e2--
		}
	}
	if e1 > e2 {
		return e1, e2, false
	}
	elapsed := e1 - s
	if elapsed < doms.MinE || elapsed > doms.MaxE {
		return e1, e2, false
	}
	reg := c.CountTime(s, e1, TimeRegular)
	o := p - reg
	if o < doms.MinO || o > doms.MaxO {
		return e1, e2, false
	}
	if c.headTailOvertime(s, e1) > o {
		return e1, e2, false
	}
	return e1, e2, true
}

func (c *Calendar) feasibleHour(doms TaskDoms, p, s int) (int, bool) {
	e1, _, ok := c.windowHour(doms, p, s)
	return e1, ok
}

// BoundStartHour returns the min/max feasible start for an Hour task.
func (c *Calendar) BoundStartHour(doms TaskDoms, p int, min bool) int {
	f := func(s int) (int, bool) { return c.feasibleHour(doms, p, s) }
	if min {
		if s, _, ok := c.scanUp(doms.MinS, doms.MaxS, f); ok {
			return s
		}
		return NoFeasibleMin
	}
	if s, _, ok := c.scanDown(doms.MaxS, doms.MinS, f); ok {
		return s
	}
	return NoFeasibleMax
}

// BoundElapsedHour returns the min/max feasible elapsed value for an Hour
// task.
func (c *Calendar) BoundElapsedHour(doms TaskDoms, p int, min bool) int {
	best := NoFeasibleMin
	if !min {
		best = NoFeasibleMax
	}
	found := false
	for t := c.NextWorkable(doms.MinS, TimeAny); t <= doms.MaxS; t = c.NextWorkable(t+1, TimeAny) {
		e1, e2, ok := c.windowHour(doms, p, t)
		if e1 > c.Size() {
			break
		}
		if !ok {
			continue
		}
		found = true
		if min {
			v := e1 - t
			if v < best || best == NoFeasibleMin {
				best = v
			}
			if v == doms.MinE {
				return v
			}
			continue
		}
		v := e2 - t
		if v > best || best == NoFeasibleMax {
			best = v
		}
		if v == doms.MaxE {
			return v
		}
	}
	if !found {
		if min {
			return NoFeasibleMin
		}
		return NoFeasibleMax
	}
	return best
}

// BoundOverHour returns the min/max feasible overtime value for an Hour
// task.
func (c *Calendar) BoundOverHour(doms TaskDoms, p int, min bool) int {
	best := NoFeasibleMin
	if !min {
		best = NoFeasibleMax
	}
	found := false
	for t := c.NextWorkable(doms.MinS, TimeAny); t <= doms.MaxS; t = c.NextWorkable(t+1, TimeAny) {
		e1, e2, ok := c.windowHour(doms, p, t)
		if e1 > c.Size() {
			break
		}
		if !ok {
			continue
		}
		found = true
		if min {
			v := p - c.CountTime(t, e2, TimeRegular)
			if v < best || best == NoFeasibleMin {
				best = v
			}
			if v == doms.MinO {
				return v
			}
			continue
		}
		v := p - c.CountTime(t, e1, TimeRegular)
		if v > best || best == NoFeasibleMax {
			best = v
		}
		if v == doms.MaxO {
			return v
		}
	}
	if !found {
		if min {
			return NoFeasibleMin
		}
		return NoFeasibleMax
	}
	return best
}

// EctHour returns the earliest completion time reachable with a start at or
// after est.
func (c *Calendar) EctHour(doms TaskDoms, p, est int) int {
	from := doms.MinS
	if est > from {
		from = est
	}
	f := func(s int) (int, bool) { return c.feasibleHour(doms, p, s) }
	if _, e, ok := c.scanUp(from, doms.MaxS, f); ok {
		return e
	}
	return NoFeasibleMin
}

// LstHour returns the latest start time from which completion by lct remains
// feasible.
func (c *Calendar) LstHour(doms TaskDoms, p, lct int) int {
	f := func(s int) (int, bool) {
		e, ok := c.feasibleHour(doms, p, s)
		return e, ok && e <= lct
	}
	if s, _, ok := c.scanDown(doms.MaxS, doms.MinS, f); ok {
		return s
	}
	return NoFeasibleMax
}

// --- Flavor-dispatching entry points used by the propagators ---------------

// BoundStart dispatches to the flavor-specific start query.
func (c *Calendar) BoundStart(doms TaskDoms, p int, min bool) int {
	switch c.flavor {
	case FlavorNoOver:
		return c.BoundStartNoOver(doms, p, min)
	case FlavorDay:
		return c.BoundStartDay(doms, p, min)
	default:
		return c.BoundStartHour(doms, p, min)
	}
}

// BoundElapsed dispatches to the flavor-specific elapsed query.
func (c *Calendar) BoundElapsed(doms TaskDoms, p int, min bool) int {
	switch c.flavor {
	case FlavorNoOver:
		return c.BoundElapsedNoOver(doms, p, min)
	case FlavorDay:
		return c.BoundElapsedDay(doms, p, min)
	default:
		return c.BoundElapsedHour(doms, p, min)
	}
}

// BoundOver dispatches to the flavor-specific overtime query.
func (c *Calendar) BoundOver(doms TaskDoms, p int, min bool) int {
	switch c.flavor {
	case FlavorNoOver:
		return c.BoundOverNoOver(doms, p, min)
	case FlavorDay:
		return c.BoundOverDay(doms, p, min)
	default:
		return c.BoundOverHour(doms, p, min)
	}
}

// Ect dispatches to the flavor-specific earliest-completion-time query.
func (c *Calendar) Ect(doms TaskDoms, p, est int) int {
	switch c.flavor {
	case FlavorNoOver:
		return c.EctNoOver(doms, p, est)
	case FlavorDay:
		return c.EctDay(doms, p, est)
	default:
		return c.EctHour(doms, p, est)
	}
}

// Lst dispatches to the flavor-specific latest-start-time query.
func (c *Calendar) Lst(doms TaskDoms, p, lct int) int {
	switch c.flavor {
	case FlavorNoOver:
		return c.LstNoOver(doms, p, lct)
	case FlavorDay:
		return c.LstDay(doms, p, lct)
	default:
		return c.LstHour(doms, p, lct)
	}
}
