package refhost

import "github.com/gitrdm/calendarcp/pkg/calendarcp"

// IntVar is a trailed bounded integer variable, grounded on the teacher's
// FDVariable (variable.go): a stable identity plus a mutable bound pair,
// here undone via the Trail instead of a pooled persistent domain.
type IntVar struct {
	trail      *Trail
	id         int
	min, max   int
	min0, max0 int
}

// NewIntVar builds a variable with domain [lo, hi]; lo/hi also become its
// root bounds.
func NewIntVar(trail *Trail, id, lo, hi int) *IntVar {
	return &IntVar{trail: trail, id: id, min: lo, max: hi, min0: lo, max0: hi}
}

func (v *IntVar) GetMin() int  { return v.min }
func (v *IntVar) GetMax() int  { return v.max }
func (v *IntVar) GetMin0() int { return v.min0 }
func (v *IntVar) GetMax0() int { return v.max0 }

func (v *IntVar) IsFixed() bool { return v.min == v.max }

func (v *IntVar) SetMinNotR(val int) bool { return val > v.min }
func (v *IntVar) SetMaxNotR(val int) bool { return val < v.max }

// SetMin raises the lower bound, trailing the previous value for undo.
// reason is accepted for interface conformance; refhost does not build a
// clause database, so it is discarded here.
func (v *IntVar) SetMin(val int, reason *calendarcp.Clause) bool {
	if val <= v.min {
		return true
	}
	if val > v.max {
		return false
	}
	old := v.min
	v.min = val
	v.trail.push(func() { v.min = old })
	return true
}

// SetMax lowers the upper bound, trailing the previous value for undo.
func (v *IntVar) SetMax(val int, reason *calendarcp.Clause) bool {
	if val >= v.max {
		return true
	}
	if val < v.min {
		return false
	}
	old := v.max
	v.max = val
	v.trail.push(func() { v.max = old })
	return true
}

func (v *IntVar) GetMinLit() calendarcp.Lit {
	return calendarcp.Lit{Var: v.id, Dir: calendarcp.LRGE, Val: v.min}
}

func (v *IntVar) GetMaxLit() calendarcp.Lit {
	return calendarcp.Lit{Var: v.id, Dir: calendarcp.LRLE, Val: v.max}
}

func (v *IntVar) GetLit(val int, dir calendarcp.LitDirection) calendarcp.Lit {
	return calendarcp.Lit{Var: v.id, Dir: dir, Val: val}
}

// GetType reports literal-backed, since refhost builds a Lit for any
// (val, dir) pair directly rather than manufacturing one lazily.
func (v *IntVar) GetType() calendarcp.VarType { return calendarcp.VarLiteralBacked }
