package calendarcp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalendarFactoryInternsByValue(t *testing.T) {
	f := NewCalendarFactory()
	vecA := []int{1, 1, 0, 1}
	vecB := []int{1, 1, 0, 1}

	day1 := f.GetDayCalendar(vecA)
	day2 := f.GetDayCalendar(vecB)
	require.Same(t, day1, day2, "equal vectors must intern to the same *Calendar")

	hour := f.GetHourCalendar([]int{1, 1, 0, 1})
	require.NotSame(t, day1, hour, "different flavors must not share an interned object")

	other := f.GetDayCalendar([]int{1, 0, 0, 1})
	require.NotSame(t, day1, other, "distinct vectors must not share an interned object")
}
