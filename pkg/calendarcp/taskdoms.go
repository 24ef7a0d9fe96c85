package calendarcp

// TaskDoms is a value object holding the current bound-domains of a task's
// (S, E, O) variables, passed into every calendar query (spec §3).
type TaskDoms struct {
	MinS, MaxS int
	MinE, MaxE int
	MinO, MaxO int
}

// NewTaskDoms builds a full Day/Hour bundle.
func NewTaskDoms(minS, maxS, minE, maxE, minO, maxO int) TaskDoms {
	return TaskDoms{MinS: minS, MaxS: maxS, MinE: minE, MaxE: maxE, MinO: minO, MaxO: maxO}
}

// NewNoOverTaskDoms builds a bundle for the NoOver flavor, where overtime is
// forced to zero.
func NewNoOverTaskDoms(minS, maxS, minE, maxE int) TaskDoms {
	return TaskDoms{MinS: minS, MaxS: maxS, MinE: minE, MaxE: maxE, MinO: 0, MaxO: 0}
}
