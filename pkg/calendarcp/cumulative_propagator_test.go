package calendarcp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitrdm/calendarcp/internal/refhost"
	"github.com/gitrdm/calendarcp/pkg/calendarcp"
)

// TestCumulativeOverloadConflict is spec scenario C4: two calendarless tasks
// with dur=[3,3], usage=[2,2], limit=3, both S fixed to 0 overload the
// profile part [0,3) (level 4 > 3) and must conflict. The S variables are
// built with a wider root domain and then pinned to 0 via SetMin/SetMax (as
// a prior search decision would), so the conflict's rigid-interval analysis
// has root bounds to cite and yields the four literals (S.min/S.max of both
// tasks) spec.md promises, rather than trivially-empty ones.
func TestCumulativeOverloadConflict(t *testing.T) {
	trail := refhost.NewTrail()
	tf := refhost.NewTintFactory(trail)
	sink := refhost.NewSink()

	s0 := refhost.NewIntVar(trail, 0, -5, 10)
	e0 := refhost.NewIntVar(trail, 1, 3, 3)
	o0 := refhost.NewIntVar(trail, 2, 0, 0)
	s1 := refhost.NewIntVar(trail, 3, -5, 10)
	e1 := refhost.NewIntVar(trail, 4, 3, 3)
	o1 := refhost.NewIntVar(trail, 5, 0, 0)

	require.True(t, s0.SetMin(0, nil))
	require.True(t, s0.SetMax(0, nil))
	require.True(t, s1.SetMin(0, nil))
	require.True(t, s1.SetMax(0, nil))

	s := []calendarcp.IntVar{s0, s1}
	o := []calendarcp.IntVar{o0, o1}
	e := []calendarcp.IntVar{e0, e1}

	prop := calendarcp.NewCumulativeCalendar(s, o, e, []int{3, 3}, []int{2, 2}, 3, []*calendarcp.Calendar{nil, nil}, tf)

	require.False(t, prop.Propagate(sink))
	require.Len(t, sink.LastConflict, 4)
}

// TestCumulativeCalendarPush is spec scenario C5: task A is fixed at s=0,
// dur=3, usage=3, filling the profile part [0,3) to level=3 (at, not over,
// the limit). Task B (p=2, usage=2, S in [0,5]) has no compulsory part of
// its own, so the filter must still push it past A's window: S.min(B)=3.
func TestCumulativeCalendarPush(t *testing.T) {
	trail := refhost.NewTrail()
	tf := refhost.NewTintFactory(trail)
	sink := refhost.NewSink()

	sA := refhost.NewIntVar(trail, 0, 0, 0)
	eA := refhost.NewIntVar(trail, 1, 3, 3)
	oA := refhost.NewIntVar(trail, 2, 0, 0)
	sB := refhost.NewIntVar(trail, 3, 0, 5)
	eB := refhost.NewIntVar(trail, 4, 2, 2)
	oB := refhost.NewIntVar(trail, 5, 0, 0)

	s := []calendarcp.IntVar{sA, sB}
	o := []calendarcp.IntVar{oA, oB}
	e := []calendarcp.IntVar{eA, eB}

	prop := calendarcp.NewCumulativeCalendar(s, o, e, []int{3, 2}, []int{3, 2}, 3, []*calendarcp.Calendar{nil, nil}, tf)

	require.True(t, prop.Propagate(sink))
	require.Equal(t, 3, sB.GetMin())
	require.Equal(t, 5, sB.GetMax())
}

// TestCumulativeCompulsoryPartCarveout is spec scenario C6: task C is fixed
// at s=2 (usage=1), and task D's own domain forces a compulsory part [3,5)
// (usage=2) overlapping C's [2,5) window at level<=limit=3 throughout. The
// has_no_comp_part||lst>=end||ect<=begin carveout must keep the filter from
// treating D's own contribution to the profile as a conflict with itself:
// D's bounds must come out unchanged.
func TestCumulativeCompulsoryPartCarveout(t *testing.T) {
	trail := refhost.NewTrail()
	tf := refhost.NewTintFactory(trail)
	sink := refhost.NewSink()

	sC := refhost.NewIntVar(trail, 0, 2, 2)
	eC := refhost.NewIntVar(trail, 1, 3, 3)
	oC := refhost.NewIntVar(trail, 2, 0, 0)
	sD := refhost.NewIntVar(trail, 3, 2, 3)
	eD := refhost.NewIntVar(trail, 4, 3, 5)
	oD := refhost.NewIntVar(trail, 5, 0, 0)

	s := []calendarcp.IntVar{sC, sD}
	o := []calendarcp.IntVar{oC, oD}
	e := []calendarcp.IntVar{eC, eD}

	prop := calendarcp.NewCumulativeCalendar(s, o, e, []int{3, 3}, []int{1, 2}, 3, []*calendarcp.Calendar{nil, nil}, tf)

	require.True(t, prop.Propagate(sink))
	require.Equal(t, 2, sD.GetMin())
	require.Equal(t, 3, sD.GetMax())
}
