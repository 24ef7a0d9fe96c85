// Command calendarcp-demo exercises the calendarcp propagators against the
// reference host in internal/refhost, printing the tightened bounds (or the
// reported conflict) for a small built-in scenario per subcommand.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gitrdm/calendarcp/internal/refhost"
	"github.com/gitrdm/calendarcp/pkg/calendarcp"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "calendarcp-demo",
		Short: "Drive calendarcp propagators against a small reference host",
	}
	root.AddCommand(newCalendarCmd())
	root.AddCommand(newCumulativeCmd())
	return root
}

func parseCalendarVec(s string) []int {
	parts := strings.Split(s, ",")
	vec := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid calendar entry %q: %v\n", p, err)
			os.Exit(1)
		}
		vec[i] = v
	}
	return vec
}

func newCalendarCmd() *cobra.Command {
	var (
		calStr     string
		p          int
		sMin, sMax int
		eMin, eMax int
		oMin, oMax int
	)
	cmd := &cobra.Command{
		Use:   "calendar [day|hour|nooverage]",
		Short: "Run the per-task calendar propagator to a fixpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flavor := args[0]
			vec := parseCalendarVec(calStr)
			trail := refhost.NewTrail()
			s := refhost.NewIntVar(trail, 0, sMin, sMax)
			e := refhost.NewIntVar(trail, 1, eMin, eMax)
			sink := refhost.NewSink()

			var prop refhost.Propagator
			var o *refhost.IntVar
			switch flavor {
			case "day":
				cal := calendarcp.NewDayCalendar(vec)
				o = refhost.NewIntVar(trail, 2, oMin, oMax)
				prop = calendarcp.CalendarDay(s, o, e, p, cal)
			case "hour":
				cal := calendarcp.NewHourCalendar(vec)
				o = refhost.NewIntVar(trail, 2, oMin, oMax)
				prop = calendarcp.CalendarHour(s, o, e, p, cal)
			case "nooverage":
				cal := calendarcp.NewNoOverCalendar(vec)
				prop = calendarcp.CalendarNoOver(s, e, p, cal)
			default:
				return fmt.Errorf("unknown flavor %q (want day, hour, or nooverage)", flavor)
			}

			vars := []*refhost.IntVar{s, e}
			if o != nil {
				vars = append(vars, o)
			}
			if !refhost.RunToFixpoint(sink, vars, []refhost.Propagator{prop}) {
				return fmt.Errorf("%w (%d literals)", calendarcp.ErrInconsistent, len(sink.LastConflict))
			}
			fmt.Printf("S in [%d, %d]\n", s.GetMin(), s.GetMax())
			fmt.Printf("E in [%d, %d]\n", e.GetMin(), e.GetMax())
			if o != nil {
				fmt.Printf("O in [%d, %d]\n", o.GetMin(), o.GetMax())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&calStr, "calendar", "1,1,0,0,1,1,1", "comma-separated calendar entries")
	cmd.Flags().IntVar(&p, "p", 3, "required working amount")
	cmd.Flags().IntVar(&sMin, "s-min", 0, "S lower bound")
	cmd.Flags().IntVar(&sMax, "s-max", 6, "S upper bound")
	cmd.Flags().IntVar(&eMin, "e-min", 0, "E lower bound")
	cmd.Flags().IntVar(&eMax, "e-max", 7, "E upper bound")
	cmd.Flags().IntVar(&oMin, "o-min", 0, "O lower bound (Day/Hour only)")
	cmd.Flags().IntVar(&oMax, "o-max", 0, "O upper bound (Day/Hour only)")
	return cmd
}

func newCumulativeCmd() *cobra.Command {
	var (
		flavor   string
		calStr   string
		durs     string
		usages   string
		limit    int
		followed string
		verbose  bool
	)
	cmd := &cobra.Command{
		Use:   "cumulative",
		Short: "Run the cumulative-calendar propagator over a fixed task set",
		RunE: func(cmd *cobra.Command, args []string) error {
			durVec := parseCalendarVec(durs)
			usageVec := parseCalendarVec(usages)
			followedVec := parseCalendarVec(followed)
			n := len(durVec)
			if len(usageVec) != n || len(followedVec) != n {
				return fmt.Errorf("dur, usage, and cals-followed must have equal length")
			}

			trail := refhost.NewTrail()
			tf := refhost.NewTintFactory(trail)
			sink := refhost.NewSink()

			sVars := make([]*refhost.IntVar, n)
			oVars := make([]*refhost.IntVar, n)
			eVars := make([]*refhost.IntVar, n)
			s := make([]calendarcp.IntVar, n)
			o := make([]calendarcp.IntVar, n)
			e := make([]calendarcp.IntVar, n)
			vars := make([]*refhost.IntVar, 0, n*3)
			for i := 0; i < n; i++ {
				sVars[i] = refhost.NewIntVar(trail, i*3, 0, 20)
				oVars[i] = refhost.NewIntVar(trail, i*3+1, 0, durVec[i])
				eVars[i] = refhost.NewIntVar(trail, i*3+2, durVec[i], durVec[i])
				s[i], o[i], e[i] = sVars[i], oVars[i], eVars[i]
				vars = append(vars, sVars[i], oVars[i], eVars[i])
			}

			factory := calendarcp.NewCalendarFactory()
			var calendars [][]int
			if calStr != "" {
				calendars = [][]int{parseCalendarVec(calStr)}
			}

			var prop *calendarcp.CumulativeCalendar
			switch flavor {
			case "day":
				prop = calendarcp.CumulativeCalendarDay(s, o, e, durVec, usageVec, limit, calendars, followedVec, factory, tf)
			case "hour":
				prop = calendarcp.CumulativeCalendarHour(s, o, e, durVec, usageVec, limit, calendars, followedVec, factory, tf)
			default:
				return fmt.Errorf("unknown flavor %q (want day or hour)", flavor)
			}

			if verbose {
				prop.SetLogger(calendarcp.NewPropagationLogger("cumulative-demo", log.New(os.Stderr, "", log.LstdFlags)))
			}

			if !refhost.RunToFixpoint(sink, vars, []refhost.Propagator{prop}) {
				return fmt.Errorf("%w (%d literals)", calendarcp.ErrInconsistent, len(sink.LastConflict))
			}
			for i := 0; i < n; i++ {
				fmt.Printf("task %d: S in [%d, %d]\n", i, sVars[i].GetMin(), sVars[i].GetMax())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&flavor, "flavor", "day", "calendar flavor: day or hour")
	cmd.Flags().StringVar(&calStr, "calendar", "", "comma-separated calendar entries shared by every task that follows one")
	cmd.Flags().StringVar(&durs, "dur", "3,2", "comma-separated per-task durations")
	cmd.Flags().StringVar(&usages, "usage", "2,2", "comma-separated per-task resource usage")
	cmd.Flags().StringVar(&followed, "cals-followed", "-1,-1", "comma-separated per-task calendar index (-1 for none)")
	cmd.Flags().IntVar(&limit, "limit", 3, "resource capacity")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "trace each propagate() call to stderr")
	return cmd
}
