package calendarcp

import (
	"math"
	"sort"
)

const (
	negInf = math.MinInt
	posInf = math.MaxInt
)

// ProfilePart is one segment of a time-table profile (spec §3): a
// half-open interval [Begin, End) during which the summed usage of the
// tasks in Tasks (their calendar-corrected compulsory parts) is Level.
type ProfilePart struct {
	Begin, End, Level int
	Tasks             []int
}

func snapshotTasks(s *ScratchSet) []int {
	out := make([]int, s.Size())
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}

// buildProfile sweeps the compulsory parts of the tasks named by indices
// (actual_lst[i] < actual_ect[i] for each) into a time-table profile,
// per spec §4.5's "Profile construction". scratch is cleared and reused as
// the sweep's open-task set (tasks_in_profile).
//
// On overload (height exceeding limit at some point), the sweep stops
// immediately, calls analyse with the tasks open at that point, the slack
// budget height-limit-1, and the conflict point [pointBegin, pointEnd), and
// returns its result (never nil, possibly empty) as the third value with a
// nil profile. Otherwise it
// returns the full profile, the max level reached, and a nil conflict.
func buildProfile(indices []int, lst, ect, usage []int, limit int, scratch *ScratchSet, analyse func(tasks []int, slack, pointBegin, pointEnd int) []Lit) ([]ProfilePart, int, []Lit) {
	n := len(indices)
	if n == 0 {
		return []ProfilePart{{Begin: negInf, End: posInf, Level: 0}}, 0, nil
	}

	orderedLst := append([]int(nil), indices...)
	sort.Slice(orderedLst, func(i, j int) bool { return lst[orderedLst[i]] < lst[orderedLst[j]] })
	orderedEct := append([]int(nil), indices...)
	sort.Slice(orderedEct, func(i, j int) bool { return ect[orderedEct[i]] < ect[orderedEct[j]] })

	scratch.Clear()
	begin := lst[orderedLst[0]]
	parts := []ProfilePart{{Begin: negInf, End: begin, Level: 0}}

	li, ei, height, maxLevel := 0, 0, 0, 0
	for {
		for ei < n && ect[orderedEct[ei]] <= begin {
			t := orderedEct[ei]
			height -= usage[t]
			scratch.Remove(t)
			ei++
		}
		for li < n && lst[orderedLst[li]] == begin {
			t := orderedLst[li]
			height += usage[t]
			scratch.Insert(t)
			li++
		}

		nextUnopened := posInf
		if li < n {
			nextUnopened = lst[orderedLst[li]]
		}
		nextUnclosed := posInf
		if ei < n {
			nextUnclosed = ect[orderedEct[ei]]
		}
		ending := nextUnopened
		if nextUnclosed < ending {
			ending = nextUnclosed
		}

		if height > limit {
			pointBegin := begin + (ending-begin)/2
			pointEnd := pointBegin + 1
			conflict := analyse(snapshotTasks(scratch), height-limit-1, pointBegin, pointEnd)
			if conflict == nil {
				conflict = []Lit{}
			}
			return nil, maxLevel, conflict
		}

		parts = append(parts, ProfilePart{Begin: begin, End: ending, Level: height, Tasks: snapshotTasks(scratch)})
		if height > maxLevel {
			maxLevel = height
		}
		if ending == posInf {
			break
		}
		begin = ending
	}
	return parts, maxLevel, nil
}

// findProfile binary-searches parts (sorted, strictly increasing Begin) for
// the part containing t, per spec §4.5.
func findProfile(parts []ProfilePart, t int) int {
	lo, hi := 0, len(parts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if parts[mid].Begin <= t {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
