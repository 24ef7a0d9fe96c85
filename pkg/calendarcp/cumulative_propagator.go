package calendarcp

// CumulativeCalendar is the cumulative-resource propagator with calendars of
// spec §4.5: it enforces that, at every instant, the summed usage of tasks
// whose calendar-corrected compulsory part covers that instant does not
// exceed limit, tightening unfixed tasks' start times and reporting
// conflicts through a ReasonSink.
type CumulativeCalendar struct {
	s, o, e      []IntVar
	dur, usage   []int
	limit        int
	cals         []*Calendar // cals[i] == nil: task i follows no calendar
	n            int
	unfixedTasks *ReversibleSet
	profileSet   *ScratchSet
	actualLst    []int
	actualEct    []int
	logger       *PropagationLogger
}

// SetLogger attaches a PropagationLogger that traces each Propagate call
// (profile rebuild plus the filter sweeps). Passing nil disables tracing;
// this is also the zero-value behavior, so calling SetLogger is optional.
func (cp *CumulativeCalendar) SetLogger(l *PropagationLogger) {
	cp.logger = l
}

// NewCumulativeCalendar builds a cumulative-calendar propagator over n
// tasks, validating the preconditions of spec §6 (vector lengths, dur/usage
// non-negativity, E.min/O.min non-negativity).
func NewCumulativeCalendar(s, o, e []IntVar, dur, usage []int, limit int, cals []*Calendar, tf TintFactory) *CumulativeCalendar {
	n := len(s)
	mustArg(len(o) == n && len(e) == n && len(dur) == n && len(usage) == n && len(cals) == n,
		"CumulativeCalendar: task vectors must share length, got s=%d o=%d e=%d dur=%d usage=%d cals=%d",
		len(s), len(o), len(e), len(dur), len(usage), len(cals))
	for i := 0; i < n; i++ {
		mustArg(dur[i] >= 0, "CumulativeCalendar: dur[%d] = %d < 0", i, dur[i])
		mustArg(usage[i] >= 0, "CumulativeCalendar: usage[%d] = %d < 0", i, usage[i])
		mustArg(e[i].GetMin() >= 0, "CumulativeCalendar: E[%d].min = %d < 0", i, e[i].GetMin())
		mustArg(o[i].GetMin() >= 0, "CumulativeCalendar: O[%d].min = %d < 0", i, o[i].GetMin())
	}
	return &CumulativeCalendar{
		s: s, o: o, e: e, dur: dur, usage: usage, limit: limit, cals: cals, n: n,
		unfixedTasks: NewReversibleSet(0, n-1, tf.NewTint(n)),
		profileSet:   NewScratchSet(0, n-1),
		actualLst:    make([]int, n),
		actualEct:    make([]int, n),
	}
}

func (cp *CumulativeCalendar) taskDoms(i int) TaskDoms {
	return TaskDoms{
		MinS: cp.s[i].GetMin(), MaxS: cp.s[i].GetMax(),
		MinE: cp.e[i].GetMin(), MaxE: cp.e[i].GetMax(),
		MinO: cp.o[i].GetMin(), MaxO: cp.o[i].GetMax(),
	}
}

// computeActual returns the calendar-corrected (actual_lst, actual_ect) pair
// for task i, per spec §4.5 "Actual (calendar-corrected) bounds".
func (cp *CumulativeCalendar) computeActual(i int) (lst, ect int) {
	if cp.cals[i] == nil {
		return cp.s[i].GetMax(), cp.s[i].GetMin() + cp.dur[i]
	}
	doms := cp.taskDoms(i)
	lst = cp.cals[i].BoundStart(doms, cp.dur[i], false)
	ect = cp.cals[i].Ect(doms, cp.dur[i], doms.MinS)
	return lst, ect
}

// actualDur returns the duration implied by anchoring task t's placement at
// time, from the start (givenStart) or from the end, per spec §4.5. A
// result of 0 means no completion is feasible from this anchor.
func (cp *CumulativeCalendar) actualDur(t, time int, givenStart bool) int {
	if cp.cals[t] == nil {
		return cp.dur[t]
	}
	doms := cp.taskDoms(t)
	if givenStart {
		end := cp.cals[t].Ect(doms, cp.dur[t], time)
		if end == NoFeasibleMin || end > cp.cals[t].Size() {
			return 0
		}
		return end - time
	}
	start := cp.cals[t].Lst(doms, cp.dur[t], time)
	if start == NoFeasibleMax || start < 0 {
		return 0
	}
	return time - start
}

func (cp *CumulativeCalendar) taskLits(k int) []Lit {
	return []Lit{
		cp.s[k].GetMinLit(), cp.s[k].GetMaxLit(),
		cp.e[k].GetMinLit(), cp.e[k].GetMaxLit(),
		cp.o[k].GetMinLit(), cp.o[k].GetMaxLit(),
	}
}

// negGeqLit and negLeqLit mirror the source's getNegGeqLit/getNegLeqLit:
// when the requested value is exactly the variable's current bound, reuse
// the cheap GetMinLit/GetMaxLit; otherwise build the literal at the
// arbitrary value via GetLit.
func negGeqLit(v IntVar, val int) Lit {
	if v.GetType() == VarLiteralBacked && v.GetMin() == val {
		return v.GetMinLit()
	}
	return v.GetLit(val-1, LRLE)
}

func negLeqLit(v IntVar, val int) Lit {
	if v.GetType() == VarLiteralBacked && v.GetMax() == val {
		return v.GetMaxLit()
	}
	return v.GetLit(val+1, LRGE)
}

// explainLowerUpdate builds the tail literals for tightening S[t]'s lower
// bound to explEnd, per spec §4.5 "Explanation for each update".
func (cp *CumulativeCalendar) explainLowerUpdate(t, explEnd int) []Lit {
	if cp.cals[t] != nil {
		return cp.rootDivergedLits(t)
	}
	tail := []Lit{negGeqLit(cp.s[t], explEnd-cp.e[t].GetMin())}
	if cp.e[t].GetMin() > cp.e[t].GetMin0() {
		tail = append(tail, cp.e[t].GetMinLit())
	}
	return tail
}

// explainUpperUpdate builds the tail literals for tightening S[t]'s upper
// bound, given the profile part that forced it.
func (cp *CumulativeCalendar) explainUpperUpdate(t int, part ProfilePart) []Lit {
	if cp.cals[t] != nil {
		return cp.rootDivergedLits(t)
	}
	bound := part.Begin
	if cp.s[t].GetMax() > bound {
		bound = cp.s[t].GetMax()
	}
	tail := []Lit{negLeqLit(cp.s[t], bound)}
	if cp.e[t].GetMin() > cp.e[t].GetMin0() {
		tail = append(tail, cp.e[t].GetMinLit())
	}
	return tail
}

// rootDivergedLits is the coarse calendar-correction fallback of spec §4.5:
// every bound literal of t's S, E, O that has moved from its root value.
func (cp *CumulativeCalendar) rootDivergedLits(t int) []Lit {
	var lits []Lit
	if cp.s[t].GetMin() > cp.s[t].GetMin0() {
		lits = append(lits, cp.s[t].GetMinLit())
	}
	if cp.s[t].GetMax() < cp.s[t].GetMax0() {
		lits = append(lits, cp.s[t].GetMaxLit())
	}
	if cp.e[t].GetMin() > cp.e[t].GetMin0() {
		lits = append(lits, cp.e[t].GetMinLit())
	}
	if cp.e[t].GetMax() < cp.e[t].GetMax0() {
		lits = append(lits, cp.e[t].GetMaxLit())
	}
	if cp.o[t].GetMin() > cp.o[t].GetMin0() {
		lits = append(lits, cp.o[t].GetMinLit())
	}
	if cp.o[t].GetMax() < cp.o[t].GetMax0() {
		lits = append(lits, cp.o[t].GetMaxLit())
	}
	return lits
}

// analyseTasks is the lift step of spec §4.5: tasks whose usage fits in the
// remaining slack are dropped from the explanation; the rest contribute
// either a tight justification of at most three literals (when their rigid
// interval already covers the conflict point) or their full six-literal
// bound set.
func (cp *CumulativeCalendar) analyseTasks(tasks []int, slack, pointBegin, pointEnd int) []Lit {
	var expl []Lit
	for _, k := range tasks {
		if cp.usage[k] <= slack {
			slack -= cp.usage[k]
			continue
		}
		sv, ev := cp.s[k], cp.e[k]
		rigidCovers := sv.GetMax() <= pointBegin && pointEnd <= sv.GetMin()+ev.GetMin()
		if rigidCovers {
			if sv.GetMin0()+ev.GetMin() <= pointEnd {
				expl = append(expl, negGeqLit(sv, pointEnd-ev.GetMin()))
			}
			if pointBegin < sv.GetMax0() {
				expl = append(expl, negLeqLit(sv, pointBegin))
			}
			if ev.GetMin() > ev.GetMin0() {
				expl = append(expl, ev.GetMinLit())
			}
		} else {
			expl = append(expl, cp.taskLits(k)...)
		}
	}
	return expl
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// filterLowerBoundStartTask sweeps forward from S[t].min through the
// profile, pushing S[t]'s lower bound past every blocking part, per spec
// §4.5 "Lower bound on S".
func (cp *CumulativeCalendar) filterLowerBoundStartTask(t int, parts []ProfilePart, sink ReasonSink) bool {
	s := cp.s[t].GetMin()
	lst, ect := cp.actualLst[t], cp.actualEct[t]
	hasNoCompPart := !(lst < ect)

	currentDur := cp.actualDur(t, s, true)
	if currentDur == 0 {
		if Lazy {
			sink.Conflict(cp.taskLits(t))
		} else {
			sink.Conflict(nil)
		}
		return false
	}

	j := findProfile(parts, s)
	for j < len(parts) && parts[j].Begin < s+currentDur {
		part := parts[j]
		advance := true
		skip := !hasNoCompPart && lst < part.End && ect > part.Begin
		if !skip && cp.limit-cp.usage[t] < part.Level {
			explEnd := minInt(s+currentDur, part.End)
			var reason *Clause
			if Lazy {
				reason = sink.Reason(cp.explainLowerUpdate(t, explEnd))
			}
			if cp.s[t].SetMinNotR(explEnd) {
				if !cp.s[t].SetMin(explEnd, reason) {
					return false
				}
			}
			s = explEnd
			currentDur = cp.actualDur(t, s, true)
			if currentDur == 0 {
				if Lazy {
					sink.Conflict(cp.taskLits(t))
				} else {
					sink.Conflict(nil)
				}
				return false
			}
			if s < part.End {
				advance = false
			}
		}
		if advance {
			j++
		}
	}
	return true
}

// filterUpperBoundStartTask is the symmetric backward sweep bounding S[t]'s
// upper bound.
func (cp *CumulativeCalendar) filterUpperBoundStartTask(t int, parts []ProfilePart, sink ReasonSink) bool {
	anchor := cp.s[t].GetMax()
	lst, ect := cp.actualLst[t], cp.actualEct[t]
	hasNoCompPart := !(lst < ect)

	currentDur := cp.actualDur(t, anchor, false)
	if currentDur == 0 {
		if Lazy {
			sink.Conflict(cp.taskLits(t))
		} else {
			sink.Conflict(nil)
		}
		return false
	}

	j := findProfile(parts, anchor)
	for j >= 0 && parts[j].End > anchor-currentDur {
		part := parts[j]
		advance := true
		skip := !hasNoCompPart && lst < part.End && ect > part.Begin
		if !skip && cp.limit-cp.usage[t] < part.Level {
			explBegin := maxInt(anchor-currentDur, part.Begin)
			var reason *Clause
			if Lazy {
				reason = sink.Reason(cp.explainUpperUpdate(t, part))
			}
			if cp.s[t].SetMaxNotR(explBegin) {
				if !cp.s[t].SetMax(explBegin, reason) {
					return false
				}
			}
			anchor = explBegin
			currentDur = cp.actualDur(t, anchor, false)
			if currentDur == 0 {
				if Lazy {
					sink.Conflict(cp.taskLits(t))
				} else {
					sink.Conflict(nil)
				}
				return false
			}
			if anchor > part.Begin {
				advance = false
			}
		}
		if advance {
			j--
		}
	}
	return true
}

// Propagate rebuilds the time-table profile from scratch and sweeps every
// still-relevant unfixed task through it, per spec §4.5 and the concurrency
// model of §5 ("scratch buffers ... rebuilt from scratch on each call").
func (cp *CumulativeCalendar) Propagate(sink ReasonSink) bool {
	tracker := cp.logger.StartCall("cumulative-profile")

	fixed := make([]int, 0, cp.unfixedTasks.Size())
	for i := 0; i < cp.unfixedTasks.Size(); i++ {
		t := cp.unfixedTasks.At(i)
		if cp.s[t].IsFixed() && cp.e[t].IsFixed() {
			fixed = append(fixed, t)
		}
	}
	for _, t := range fixed {
		cp.unfixedTasks.Remove(t)
	}

	compulsory := make([]int, 0, cp.n)
	for i := 0; i < cp.n; i++ {
		lst, ect := cp.computeActual(i)
		cp.actualLst[i], cp.actualEct[i] = lst, ect
		if lst < ect {
			compulsory = append(compulsory, i)
		}
	}

	parts, maxLevel, conflict := buildProfile(compulsory, cp.actualLst, cp.actualEct, cp.usage, cp.limit, cp.profileSet, cp.analyseTasks)
	if conflict != nil {
		if Lazy {
			sink.Conflict(conflict)
		} else {
			sink.Conflict(nil)
		}
		tracker.Conflict()
		return false
	}

	for i := 0; i < cp.unfixedTasks.Size(); i++ {
		t := cp.unfixedTasks.At(i)
		if cp.e[t].GetMin() <= 0 {
			continue
		}
		if maxLevel+cp.usage[t] <= cp.limit {
			continue
		}
		if !cp.filterLowerBoundStartTask(t, parts, sink) {
			tracker.Conflict()
			return false
		}
		if !cp.filterUpperBoundStartTask(t, parts, sink) {
			tracker.Conflict()
			return false
		}
	}
	tracker.Done()
	return true
}

// CumulativeCalendarDay registers a cumulative-calendar propagator whose
// attached calendars (where present) are Day flavor, per spec §6.
func CumulativeCalendarDay(s, o, e []IntVar, dur, usage []int, limit int, calendars [][]int, calsFollowed []int, factory *CalendarFactory, tf TintFactory) *CumulativeCalendar {
	return newCumulativeCalendarRegistration(s, o, e, dur, usage, limit, calendars, calsFollowed, factory, tf, factory.GetDayCalendar)
}

// CumulativeCalendarHour registers a cumulative-calendar propagator whose
// attached calendars (where present) are Hour flavor, per spec §6.
func CumulativeCalendarHour(s, o, e []IntVar, dur, usage []int, limit int, calendars [][]int, calsFollowed []int, factory *CalendarFactory, tf TintFactory) *CumulativeCalendar {
	return newCumulativeCalendarRegistration(s, o, e, dur, usage, limit, calendars, calsFollowed, factory, tf, factory.GetHourCalendar)
}

func newCumulativeCalendarRegistration(s, o, e []IntVar, dur, usage []int, limit int, calendars [][]int, calsFollowed []int, factory *CalendarFactory, tf TintFactory, lookup func([]int) *Calendar) *CumulativeCalendar {
	n := len(s)
	mustArg(len(o) == n && len(e) == n && len(dur) == n && len(usage) == n && len(calsFollowed) == n,
		"CumulativeCalendar registration: task vectors must share length")
	K := len(calendars)
	var length int
	if K > 0 {
		length = len(calendars[0])
		for i, c := range calendars {
			mustArg(len(c) == length, "CumulativeCalendar registration: calendar %d length mismatch", i)
		}
	}
	cals := make([]*Calendar, n)
	for i, k := range calsFollowed {
		mustArg(k == -1 || (k >= 0 && k < K), "CumulativeCalendar registration: cals_followed[%d] = %d out of range", i, k)
		if k != -1 {
			cals[i] = lookup(calendars[k])
		}
	}
	return NewCumulativeCalendar(s, o, e, dur, usage, limit, cals, tf)
}
