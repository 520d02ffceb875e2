package planner

import (
	"gonum.org/v1/gonum/stat"

	"github.com/mfaulds/weekplan/core/model"
	"github.com/mfaulds/weekplan/core/timeline"
)

// CoverageRow counts one employee's scheduled conversations of either kind.
type CoverageRow struct {
	ID            string
	Name          string
	OneOnOnes     int
	TeamSessions  int
	Conversations int
}

// Diagnostics is the per-run report handed back with a generated plan.
type Diagnostics struct {
	OneOnOneCount int
	TeamCount     int
	// TeamHeadcount is the summed attendee count over all team sessions.
	TeamHeadcount int
	// EmployeesWithOneOnOne counts distinct employees holding at least one
	// one-on-one.
	EmployeesWithOneOnOne int
	// WithoutOneOnOne names the employees left without a one-on-one.
	// Populated in 1on1 and scramble modes only; team mode does not aim
	// for individual conversations.
	WithoutOneOnOne []string
	// DayConversations counts conversations per weekday: a one-on-one is
	// one, a team session counts each attendee.
	DayConversations [7]int
	Coverage         []CoverageRow
	// FreeMinutesMean and FreeMinutesStdDev describe the spread of
	// resolved per-employee availability, a quick scarcity signal.
	FreeMinutesMean   float64
	FreeMinutesStdDev float64
}

// Summarize derives the output-contract diagnostics from a reconciled plan.
func Summarize(employees []model.Employee, plan model.Plan, mode model.Mode, byEmp map[string][]model.Interval) Diagnostics {
	ones := plan.OneOnOnes()
	sessions := plan.TeamSessions()

	d := Diagnostics{
		OneOnOneCount: len(ones),
		TeamCount:     len(sessions),
	}
	withOne := make(map[string]struct{})
	for _, o := range ones {
		withOne[o.EmployeeID] = struct{}{}
	}
	d.EmployeesWithOneOnOne = len(withOne)
	for _, s := range sessions {
		d.TeamHeadcount += len(s.AttendeeIDs)
	}

	if mode == model.ModeOneOnOne || mode == model.ModeScramble {
		for _, e := range employees {
			if _, ok := withOne[e.ID]; !ok {
				d.WithoutOneOnOne = append(d.WithoutOneOnOne, e.Name)
			}
		}
	}

	for _, m := range plan {
		day := timeline.DayOf(m.Span().StartMin)
		switch v := m.(type) {
		case model.TeamSession:
			d.DayConversations[day] += len(v.AttendeeIDs)
		default:
			d.DayConversations[day]++
		}
	}

	for _, e := range employees {
		row := CoverageRow{ID: e.ID, Name: e.Name}
		for _, o := range ones {
			if o.EmployeeID == e.ID {
				row.OneOnOnes++
			}
		}
		for _, s := range sessions {
			for _, id := range s.AttendeeIDs {
				if id == e.ID {
					row.TeamSessions++
					break
				}
			}
		}
		row.Conversations = row.OneOnOnes + row.TeamSessions
		d.Coverage = append(d.Coverage, row)
	}

	if len(byEmp) > 0 {
		mins := make([]float64, 0, len(byEmp))
		for _, e := range employees {
			mins = append(mins, float64(timeline.TotalMinutes(byEmp[e.ID])))
		}
		if len(mins) > 0 {
			d.FreeMinutesMean = stat.Mean(mins, nil)
		}
		if len(mins) > 1 {
			d.FreeMinutesStdDev = stat.StdDev(mins, nil)
		}
	}
	return d
}
