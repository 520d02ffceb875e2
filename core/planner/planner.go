// Package planner holds the conflict policy, the two greedy schedulers and
// the engine entry point that ties them to the availability resolver. Runs
// are synchronous and share no state: every invocation works on its own
// busy lists and counters, so concurrent callers only need to leave the
// input employees and windows alone while a run is in flight.
package planner

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mfaulds/weekplan/core/availability"
	"github.com/mfaulds/weekplan/core/logger"
	"github.com/mfaulds/weekplan/core/model"
)

// Request is one self-contained scheduling run. All state comes in as
// arguments and leaves as results; the engine keeps nothing between runs.
type Request struct {
	Employees       []model.Employee
	ConvenerWindows []model.ConvenerWindow
	Settings        model.Settings
	// PerEmployeeDayCap limits one-on-ones per employee per day. Zero
	// means the default of 1.
	PerEmployeeDayCap int
	// Append merges generated meetings into Current instead of replacing
	// it.
	Append  bool
	Current model.Plan
}

// Result carries the reconciled plan and the per-run diagnostics the caller
// reports from.
type Result struct {
	Plan        model.Plan
	Diagnostics Diagnostics
}

// Engine runs scheduling requests. It is stateless apart from its logger.
type Engine struct {
	log logger.Logger
}

// New returns an Engine logging through log.
func New(log logger.Logger) *Engine {
	return &Engine{log: log}
}

// Generate resolves availability, runs the scheduler(s) selected by the
// request mode and reconciles the outcome with the currently held plan.
// Unsatisfiable targets are not an error: the greedy passes place what they
// can and the diagnostics carry the shortfall.
func (e *Engine) Generate(req Request) (Result, error) {
	if !req.Settings.Mode.Valid() {
		return Result{}, fmt.Errorf("unknown mode %q", req.Settings.Mode)
	}

	normalized, err := availability.NormalizeOvernights(req.Employees)
	if err != nil {
		return Result{}, err
	}
	convenerAbs, err := availability.ConvenerWindowsAbs(req.ConvenerWindows)
	if err != nil {
		return Result{}, err
	}

	params := OneOnOneParams{
		SlotMinutes:       req.Settings.SlotMinutes,
		BufferMinutes:     req.Settings.BufferMinutes,
		MaxPerDay:         req.Settings.MaxPerDay,
		WeekTarget:        req.Settings.TargetConversations,
		PerEmployeeDayCap: req.PerEmployeeDayCap,
	}
	if params.PerEmployeeDayCap <= 0 {
		params.PerEmployeeDayCap = 1
	}

	var generated model.Plan
	switch req.Settings.Mode {
	case model.ModeOneOnOne:
		ones, err := ScheduleOneOnOnes(normalized, convenerAbs, params, nil)
		if err != nil {
			return Result{}, err
		}
		for _, m := range ones {
			generated = append(generated, m)
		}
	case model.ModeTeam:
		sessions, err := ScheduleTeamSessions(normalized, convenerAbs, req.Settings.SessionMinutes)
		if err != nil {
			return Result{}, err
		}
		for _, s := range sessions {
			generated = append(generated, s)
		}
	case model.ModeScramble:
		generated, err = ScheduleScramble(normalized, convenerAbs, req.Settings.SessionMinutes, params)
		if err != nil {
			return Result{}, err
		}
	}

	var plan model.Plan
	if req.Append {
		plan = MergeWithoutConflicts(req.Current, generated)
	} else {
		plan = StripInternalConflicts(generated)
	}

	byEmp, err := availability.ByEmployee(normalized, convenerAbs)
	if err != nil {
		return Result{}, err
	}
	diags := Summarize(req.Employees, plan, req.Settings.Mode, byEmp)

	e.log.Debugw("plan generated", map[string]any{
		"mode":       string(req.Settings.Mode),
		"employees":  len(req.Employees),
		"candidates": len(generated),
		"kept":       len(plan),
	})
	e.log.Infof("mode %s: %d one-on-ones, %d team sessions, %d employees uncovered",
		req.Settings.Mode, diags.OneOnOneCount, diags.TeamCount, len(diags.WithoutOneOnOne))

	return Result{Plan: plan, Diagnostics: diags}, nil
}

func newMeetingID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.NewString()[:8])
}
