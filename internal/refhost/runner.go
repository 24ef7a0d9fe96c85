package refhost

import "github.com/gitrdm/calendarcp/pkg/calendarcp"

// Propagator is the subset of the host's Propagator contract (spec §6) that
// refhost needs to drive: a single propagate() call.
type Propagator interface {
	Propagate(sink calendarcp.ReasonSink) bool
}

// RunToFixpoint repeatedly sweeps props in order until a full sweep makes no
// further bound changes or a propagator reports failure. The host engine
// this package targets schedules propagators by priority and event
// attachment (spec §6, out of scope here); this is a simple round-robin
// substitute sufficient for tests and the demo CLI. It stops after 64 sweeps
// and returns true even if the last sweep still changed a bound.
func RunToFixpoint(sink *Sink, vars []*IntVar, props []Propagator) bool {
	const maxRounds = 64
	for round := 0; round < maxRounds; round++ {
		before := snapshot(vars)
		for _, p := range props {
			if !p.Propagate(sink) {
				return false
			}
		}
		if snapshot(vars) == before {
			return true
		}
	}
	return true
}

func snapshot(vars []*IntVar) string {
	buf := make([]byte, 0, len(vars)*8)
	for _, v := range vars {
		buf = appendInt(buf, v.GetMin())
		buf = append(buf, ':')
		buf = appendInt(buf, v.GetMax())
		buf = append(buf, ',')
	}
	return string(buf)
}

func appendInt(buf []byte, v int) []byte {
	if v < 0 {
		buf = append(buf, '-')
		v = -v
	}
	start := len(buf)
	if v == 0 {
		return append(buf, '0')
	}
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	// reverse the digits just appended
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}
