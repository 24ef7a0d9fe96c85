package calendarcp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// --- Calendar primitive invariants (spec §8) --------------------------------

func TestWorkableMatchesEntry(t *testing.T) {
	vec := []int{1, 1, 0, 0, 1, 1, 1}
	c := NewDayCalendar(vec)
	for t2, v := range vec {
		require.Equal(t, v >= 1, c.Workable(t2, TimeAny), "t=%d", t2)
	}
}

func TestCountTimeMatchesBruteForce(t *testing.T) {
	vec := []int{1, 1, 0, 0, 1, 1, 1}
	c := NewDayCalendar(vec)
	for a := -2; a <= 9; a++ {
		for b := -2; b <= 9; b++ {
			want := 0
			for t2 := a; t2 < b; t2++ {
				if t2 >= 0 && t2 < len(vec) && vec[t2] >= 1 {
					want++
				}
			}
			require.Equal(t, want, c.CountTime(a, b, TimeAny), "a=%d b=%d", a, b)
		}
	}
}

func TestGetEndRoundTrip(t *testing.T) {
	vec := []int{1, 1, 0, 0, 1, 1, 1}
	c := NewDayCalendar(vec)
	for s := 0; s < len(vec); s++ {
		for w := 1; w <= 4; w++ {
			e := c.GetEnd(s, w, TimeAny)
			if e > c.Size() {
				continue
			}
			require.GreaterOrEqual(t, e-s, w)
			require.Equal(t, w, c.CountTime(s, e, TimeAny))
		}
	}
}

func TestGetStartMatchesBruteForceAndMaximality(t *testing.T) {
	vec := []int{1, 1, 0, 0, 1, 1, 1}
	c := NewDayCalendar(vec)
	for e := 0; e <= len(vec); e++ {
		for w := 1; w <= 4; w++ {
			s := c.GetStart(e, w, TimeAny)
			if s < 0 {
				continue
			}
			require.Equal(t, w, c.CountTime(s, e, TimeAny), "e=%d w=%d s=%d", e, w, s)
			require.Equal(t, w-1, c.CountTime(s+1, e, TimeAny), "s=%d should be maximal for e=%d w=%d", s, e, w)
		}
	}
}

func TestGetStartConcreteExample(t *testing.T) {
	// I=[0,1,1,1,2,3,4], X=[0,1,4,5,6]; the largest s with CountTime(s,6)==2
	// is 4 (s=3 and s=2 also count 2 but are not maximal).
	c := NewDayCalendar([]int{1, 1, 0, 0, 1, 1, 1})
	require.Equal(t, 4, c.GetStart(6, 2, TimeAny))
}

func TestNextPreviousWorkableIdempotent(t *testing.T) {
	vec := []int{1, 1, 0, 0, 1, 1, 1}
	c := NewDayCalendar(vec)
	for t2 := 0; t2 < len(vec); t2++ {
		if !c.Workable(t2, TimeAny) {
			continue
		}
		require.Equal(t, t2, c.NextWorkable(t2, TimeAny))
		require.Equal(t, t2, c.PreviousWorkable(t2, TimeAny))
	}
}

// --- Concrete scenarios (spec §8) -------------------------------------------

func TestScenarioC1DayNoOvertime(t *testing.T) {
	cal := NewDayCalendar([]int{1, 1, 0, 0, 1, 1, 1})
	doms := NewTaskDoms(0, 6, 0, 7, 0, 0)
	p := 3

	require.Equal(t, 0, cal.BoundStart(doms, p, true))
	require.Equal(t, 4, cal.BoundStart(doms, p, false))
	require.Equal(t, 3, cal.BoundElapsed(doms, p, true))
	require.Equal(t, 6, cal.BoundElapsed(doms, p, false))
}

func TestScenarioC2DayOvertimeAllowed(t *testing.T) {
	cal := NewDayCalendar([]int{1, 1, 0, 0, 1, 1, 1})
	doms := NewTaskDoms(0, 6, 4, 7, 0, 2)
	p := 4

	require.Equal(t, 0, cal.BoundStart(doms, p, true))
}

func TestScenarioC3HourHeadTail(t *testing.T) {
	cal := NewHourCalendar([]int{2, 1, 1, 2})
	doms := NewTaskDoms(0, 3, 0, 4, 0, 1)
	p := 2

	require.Equal(t, 1, cal.BoundStart(doms, p, true))
	require.Equal(t, 2, cal.BoundElapsed(doms, p, true))
}

// --- Propagator-level exercise of scenario C1 via an in-package test double

func TestCalendarPropagatorScenarioC1(t *testing.T) {
	cal := NewDayCalendar([]int{1, 1, 0, 0, 1, 1, 1})
	s, e, o := testVar(0, 6), testVar(0, 7), testVar(0, 0)
	prop := NewCalendarPropagator(s, e, o, 3, cal)
	sink := &collectingSink{}
	require.True(t, prop.Propagate(sink))
	require.Equal(t, 0, s.min)
	require.Equal(t, 4, s.max)
	require.Equal(t, 3, e.min)
	require.Equal(t, 6, e.max)
}

// --- minimal in-package test double IntVar, independent of internal/refhost

type testIntVar struct {
	min, max int
}

func testVar(lo, hi int) *testIntVar { return &testIntVar{min: lo, max: hi} }

func (v *testIntVar) GetMin() int  { return v.min }
func (v *testIntVar) GetMax() int  { return v.max }
func (v *testIntVar) GetMin0() int { return v.min }
func (v *testIntVar) GetMax0() int { return v.max }
func (v *testIntVar) IsFixed() bool { return v.min == v.max }

func (v *testIntVar) SetMinNotR(val int) bool { return val > v.min }
func (v *testIntVar) SetMaxNotR(val int) bool { return val < v.max }

func (v *testIntVar) SetMin(val int, reason *Clause) bool {
	if val <= v.min {
		return true
	}
	if val > v.max {
		return false
	}
	v.min = val
	return true
}

func (v *testIntVar) SetMax(val int, reason *Clause) bool {
	if val >= v.max {
		return true
	}
	if val < v.min {
		return false
	}
	v.max = val
	return true
}

func (v *testIntVar) GetMinLit() Lit                         { return Lit{Dir: LRGE, Val: v.min} }
func (v *testIntVar) GetMaxLit() Lit                         { return Lit{Dir: LRLE, Val: v.max} }
func (v *testIntVar) GetLit(val int, dir LitDirection) Lit   { return Lit{Dir: dir, Val: val} }
func (v *testIntVar) GetType() VarType                       { return VarLiteralBacked }

type collectingSink struct {
	conflict []Lit
}

func (s *collectingSink) Reason(lits []Lit) *Clause  { return &Clause{Lits: lits} }
func (s *collectingSink) Conflict(lits []Lit)        { s.conflict = lits }
