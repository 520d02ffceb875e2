package planner

import (
	"sort"

	"github.com/mfaulds/weekplan/core/availability"
	"github.com/mfaulds/weekplan/core/model"
	"github.com/mfaulds/weekplan/core/timeline"
)

type sessionCandidate struct {
	interval  model.Interval
	attendees []string
}

// ScheduleTeamSessions picks team sessions out of the convener's windows
// with a weighted greedy maximum-coverage heuristic. Employees with less
// mutual free time weigh more, biasing selection toward sessions that catch
// the hard-to-reach people first. This is deliberately not an exact
// set-cover solver; ties fall to candidate generation order.
func ScheduleTeamSessions(employees []model.Employee, convenerAbs []model.Interval, sessionMinutes int) ([]model.TeamSession, error) {
	byEmp, err := availability.ByEmployee(employees, convenerAbs)
	if err != nil {
		return nil, err
	}

	maxFree := 0
	freeMins := make(map[string]int, len(employees))
	for id, ivs := range byEmp {
		m := timeline.TotalMinutes(ivs)
		freeMins[id] = m
		if m > maxFree {
			maxFree = m
		}
	}
	weight := make(map[string]float64, len(employees))
	for _, e := range employees {
		scarcity := 1.0
		if maxFree > 0 {
			scarcity = float64(maxFree-freeMins[e.ID]) / float64(maxFree)
		}
		weight[e.ID] = 1 + scarcity
	}

	// Candidate sessions slide across each convener window on the slot
	// grid. An employee is eligible only when one availability interval
	// contains the whole candidate, not merely overlaps it.
	var cands []sessionCandidate
	for _, w := range convenerAbs {
		for _, win := range timeline.SliceIntoSlots(w, sessionMinutes, slotStep) {
			var attendees []string
			for _, e := range employees {
				for _, iv := range byEmp[e.ID] {
					if iv.StartMin <= win.StartMin && win.EndMin <= iv.EndMin {
						attendees = append(attendees, e.ID)
						break
					}
				}
			}
			if len(attendees) >= 2 {
				cands = append(cands, sessionCandidate{interval: win, attendees: attendees})
			}
		}
	}

	var sessions []model.TeamSession
	scheduled := make(map[string]struct{}, len(employees))

	conflictsAccepted := func(iv model.Interval) bool {
		for _, s := range sessions {
			if timeline.Overlaps(model.Interval{StartMin: s.StartMin, EndMin: s.EndMin}, iv) {
				return true
			}
		}
		return false
	}

	for len(scheduled) < len(employees) {
		var best *sessionCandidate
		bestScore := 0.0
		for _, c := range cands {
			if conflictsAccepted(c.interval) {
				continue
			}
			var open []string
			for _, id := range c.attendees {
				if _, done := scheduled[id]; !done {
					open = append(open, id)
				}
			}
			// A session with a single newcomer is just a 1:1 in disguise.
			if len(open) < 2 {
				continue
			}
			score := 0.0
			for _, id := range open {
				score += weight[id]
			}
			if score > bestScore {
				bestScore = score
				best = &sessionCandidate{interval: c.interval, attendees: open}
			}
		}
		if best == nil || bestScore <= 0 {
			break
		}
		sessions = append(sessions, model.TeamSession{
			ID:          newMeetingID("tm"),
			Title:       "Team Session",
			StartMin:    best.interval.StartMin,
			EndMin:      best.interval.EndMin,
			AttendeeIDs: best.attendees,
		})
		for _, id := range best.attendees {
			scheduled[id] = struct{}{}
		}
	}

	sort.Slice(sessions, func(i, j int) bool { return sessions[i].StartMin < sessions[j].StartMin })
	return sessions, nil
}
