package calendarcp

import "sort"

// ScratchSet is a prefilled sparse set over the contiguous integer range
// [lb, ub], initially full. It is rebuilt (via Clear + reinsertion) on every
// propagate() call rather than trailed, matching the cumulative
// propagator's tasks_in_profile (spec §3, §4.1), which is scratch state with
// no backtracking requirement.
//
// All operations are O(1) except Sort, which also invalidates contains()
// until the set is cleared and refilled (the map is not maintained across a
// sort, mirroring the source's PrefilledSparseSet).
type ScratchSet struct {
	lb, ub int
	vals   []int
	// idx maps a value (offset by lb) to its position in vals.
	idx  []int
	size int
}

// NewScratchSet builds a scratch set over [lb, ub], initially containing
// every value in the range.
func NewScratchSet(lb, ub int) *ScratchSet {
	mustArg(ub >= lb, "ScratchSet: ub (%d) < lb (%d)", ub, lb)
	n := ub - lb + 1
	s := &ScratchSet{lb: lb, ub: ub, vals: make([]int, n), idx: make([]int, n), size: n}
	for i := 0; i < n; i++ {
		s.vals[i] = lb + i
		s.idx[i] = i
	}
	return s
}

// Size returns the number of values currently present.
func (s *ScratchSet) Size() int { return s.size }

// Contains reports whether v is present. v must lie within [lb, ub].
func (s *ScratchSet) Contains(v int) bool {
	return s.idx[v-s.lb] < s.size
}

// At returns the i-th present value (0 <= i < Size()); order is
// insertion-driven, not sorted, unless Sort was called since the last Clear.
func (s *ScratchSet) At(i int) int {
	return s.vals[i]
}

// Clear empties the set; values are retained for re-insertion.
func (s *ScratchSet) Clear() { s.size = 0 }

func (s *ScratchSet) swap(i, j int) {
	s.vals[i], s.vals[j] = s.vals[j], s.vals[i]
	s.idx[s.vals[i]-s.lb] = i
	s.idx[s.vals[j]-s.lb] = j
}

// Insert adds v to the set if absent.
func (s *ScratchSet) Insert(v int) {
	if !s.Contains(v) {
		s.swap(s.idx[v-s.lb], s.size)
		s.size++
	}
}

// Remove removes v from the set if present.
func (s *ScratchSet) Remove(v int) {
	if s.Contains(v) {
		s.size--
		s.swap(s.idx[v-s.lb], s.size)
	}
}

// Sort sorts the present prefix in place using cmp. After calling Sort the
// caller must not call Contains/Insert/Remove until the set is Clear'd and
// rebuilt, since the index map is no longer maintained.
func (s *ScratchSet) Sort(cmp func(a, b int) bool) {
	present := s.vals[:s.size]
	sort.Slice(present, func(i, j int) bool { return cmp(present[i], present[j]) })
}

// Tint is a trailed integer primitive: its value's assignment is undone on
// backtrack by the host. calendarcp never inspects how; it only reads and
// writes through this interface.
type Tint interface {
	// Get returns the current value.
	Get() int
	// Set assigns a new value, recorded on the host's trail.
	Set(v int)
}

// ReversibleSet has the same swap-based layout as ScratchSet, but size is
// backed by a Tint so backtracking restores a prior size automatically. It
// supports no insertion: once a value is removed within a search branch, it
// can only return via backtrack (spec §4.1).
type ReversibleSet struct {
	lb, ub int
	vals   []int
	idx    []int
	size   Tint
}

// NewReversibleSet builds a reversible set over [lb, ub], initially
// containing every value, with size trailed through the supplied Tint
// (already initialized to ub-lb+1 by the caller).
func NewReversibleSet(lb, ub int, size Tint) *ReversibleSet {
	mustArg(ub >= lb, "ReversibleSet: ub (%d) < lb (%d)", ub, lb)
	n := ub - lb + 1
	s := &ReversibleSet{lb: lb, ub: ub, vals: make([]int, n), idx: make([]int, n), size: size}
	for i := 0; i < n; i++ {
		s.vals[i] = lb + i
		s.idx[i] = i
	}
	return s
}

// Size returns the number of values currently present.
func (s *ReversibleSet) Size() int { return s.size.Get() }

// Contains reports whether v is present.
func (s *ReversibleSet) Contains(v int) bool {
	return s.idx[v-s.lb] < s.size.Get()
}

// At returns the i-th present value (0 <= i < Size()).
func (s *ReversibleSet) At(i int) int { return s.vals[i] }

func (s *ReversibleSet) swap(i, j int) {
	s.vals[i], s.vals[j] = s.vals[j], s.vals[i]
	s.idx[s.vals[i]-s.lb] = i
	s.idx[s.vals[j]-s.lb] = j
}

// Remove removes v from the set if present.
func (s *ReversibleSet) Remove(v int) {
	if s.Contains(v) {
		sz := s.size.Get() - 1
		s.swap(s.idx[v-s.lb], sz)
		s.size.Set(sz)
	}
}

// Bind reduces the set to {v} if v is present, or to the empty set
// otherwise.
func (s *ReversibleSet) Bind(v int) {
	if s.Contains(v) {
		s.swap(s.idx[v-s.lb], 0)
		s.size.Set(1)
	} else {
		s.size.Set(0)
	}
}
