package scenarios

import (
	"testing"

	"github.com/mfaulds/weekplan/core/logger"
	"github.com/mfaulds/weekplan/core/planner"
)

// RunScenario feeds one scenario through the engine and checks the expected
// meeting counts plus the convener's no-overlap invariant.
func RunScenario(t *testing.T, sc *Scenario) {
	req := planner.Request{Settings: sc.Settings()}
	for _, e := range sc.Employees {
		req.Employees = append(req.Employees, e.ToModel())
	}
	for _, w := range sc.ConvenerWindows {
		req.ConvenerWindows = append(req.ConvenerWindows, w.ToModel())
	}

	eng := planner.New(logger.NopLogger{})
	res, err := eng.Generate(req)
	if err != nil {
		t.Fatalf("scenario %s: %v", sc.Name, err)
	}

	if res.Diagnostics.OneOnOneCount != sc.Expected.OneOnOnes {
		t.Errorf("scenario %s expected %d one-on-ones, got %d",
			sc.Name, sc.Expected.OneOnOnes, res.Diagnostics.OneOnOneCount)
	}
	if res.Diagnostics.TeamCount != sc.Expected.TeamSessions {
		t.Errorf("scenario %s expected %d team sessions, got %d",
			sc.Name, sc.Expected.TeamSessions, res.Diagnostics.TeamCount)
	}
	if res.Diagnostics.EmployeesWithOneOnOne != sc.Expected.Covered {
		t.Errorf("scenario %s expected %d covered employees, got %d",
			sc.Name, sc.Expected.Covered, res.Diagnostics.EmployeesWithOneOnOne)
	}

	for i, a := range res.Plan {
		for _, b := range res.Plan[i+1:] {
			if planner.Conflicts(a, b) {
				t.Errorf("scenario %s: meetings %s and %s overlap",
					sc.Name, a.MeetingID(), b.MeetingID())
			}
		}
	}
}
