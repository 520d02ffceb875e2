package planner

import (
	"sort"

	"github.com/mfaulds/weekplan/core/model"
)

// ScheduleScramble composes both schedulers: team sessions are placed first
// to cover as many employees as possible, then one-on-ones fill the gaps
// with the sessions treated as pre-occupied convener time, so the two kinds
// can never collide.
func ScheduleScramble(employees []model.Employee, convenerAbs []model.Interval, sessionMinutes int, p OneOnOneParams) (model.Plan, error) {
	sessions, err := ScheduleTeamSessions(employees, convenerAbs, sessionMinutes)
	if err != nil {
		return nil, err
	}
	busy := make(model.Plan, 0, len(sessions))
	for _, s := range sessions {
		busy = append(busy, s)
	}
	ones, err := ScheduleOneOnOnes(employees, convenerAbs, p, busy)
	if err != nil {
		return nil, err
	}
	out := make(model.Plan, 0, len(sessions)+len(ones))
	out = append(out, busy...)
	for _, m := range ones {
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Span().StartMin < out[j].Span().StartMin })
	return out, nil
}
