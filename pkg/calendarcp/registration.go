package calendarcp

// This file holds the per-task registration entry points of spec §6:
// calendar_day, calendar_hour, calendar_no_over. Each validates its
// preconditions (fatal on violation, per spec §7.1) and returns an attached
// CalendarPropagator; the host is responsible for calling Propagate()
// whenever S, E, or O changes.

func checkTaskPreconditions(s, e, o IntVar, p int, cal *Calendar) {
	L := cal.Size()
	mustArg(p >= 0 && p < L, "calendar registration: p = %d out of [0, %d)", p, L)
	mustArg(s.GetMin() >= 0, "calendar registration: S.min = %d < 0", s.GetMin())
	mustArg(s.GetMax() < L, "calendar registration: S.max = %d >= L (%d)", s.GetMax(), L)
	mustArg(e.GetMax() >= 0 && e.GetMax() <= L, "calendar registration: E.max = %d out of [0, %d]", e.GetMax(), L)
	if o != nil {
		mustArg(o.GetMax() >= 0 && o.GetMax() <= p, "calendar registration: O.max = %d out of [0, %d]", o.GetMax(), p)
	}
}

// CalendarDay registers a per-task propagator for a Day-flavor calendar.
func CalendarDay(s, o, e IntVar, p int, cal *Calendar) *CalendarPropagator {
	mustArg(cal.Flavor() == FlavorDay, "CalendarDay: calendar must be Day flavor")
	checkTaskPreconditions(s, e, o, p, cal)
	return NewCalendarPropagator(s, e, o, p, cal)
}

// CalendarHour registers a per-task propagator for an Hour-flavor calendar.
func CalendarHour(s, o, e IntVar, p int, cal *Calendar) *CalendarPropagator {
	mustArg(cal.Flavor() == FlavorHour, "CalendarHour: calendar must be Hour flavor")
	checkTaskPreconditions(s, e, o, p, cal)
	return NewCalendarPropagator(s, e, o, p, cal)
}

// CalendarNoOver registers a per-task propagator for a NoOver-flavor
// calendar. There is no overtime variable; overtime is forced to zero.
func CalendarNoOver(s, e IntVar, p int, cal *Calendar) *CalendarPropagator {
	mustArg(cal.Flavor() == FlavorNoOver, "CalendarNoOver: calendar must be NoOver flavor")
	checkTaskPreconditions(s, e, nil, p, cal)
	return NewCalendarPropagator(s, e, nil, p, cal)
}
