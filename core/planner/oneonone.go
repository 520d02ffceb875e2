package planner

import (
	"sort"

	"github.com/mfaulds/weekplan/core/availability"
	"github.com/mfaulds/weekplan/core/model"
	"github.com/mfaulds/weekplan/core/timeline"
)

// slotStep is the grid granularity candidate slots are aligned to. Starts
// off this grid are never considered.
const slotStep = 15

// OneOnOneParams bundles the knobs of the scarcity-first one-on-one pass.
type OneOnOneParams struct {
	SlotMinutes   int
	BufferMinutes int
	// MaxPerDay caps the convener's total meetings on any single day.
	MaxPerDay int
	// WeekTarget is the number of conversations wanted per employee.
	WeekTarget int
	// PerEmployeeDayCap limits how many of those land on the same day.
	PerEmployeeDayCap int
}

type slotCandidate struct {
	employeeID string
	slot       model.Interval
}

// ScheduleOneOnOnes greedily places one-on-one conversations into the
// mutual availability of convener and employees. A first fairness pass only
// lets an employee book while their week count equals the global minimum, so
// nobody gets a second conversation before everyone reachable has one; a
// second pass then fills remaining capacity up to the week target.
// existingBusy seeds the convener's occupied time and is never modified.
func ScheduleOneOnOnes(employees []model.Employee, convenerAbs []model.Interval, p OneOnOneParams, existingBusy model.Plan) ([]model.OneOnOne, error) {
	byEmp, err := availability.ByEmployee(employees, convenerAbs)
	if err != nil {
		return nil, err
	}

	weekCount := make(map[string]int, len(employees))
	dayCount := make(map[string]map[model.Day]int, len(employees))
	for _, e := range employees {
		weekCount[e.ID] = 0
		dayCount[e.ID] = make(map[model.Day]int)
	}

	busy := make(model.Plan, len(existingBusy))
	copy(busy, existingBusy)

	// Candidate slots are generated employee by employee, then stably
	// sorted by start. Equal starts therefore resolve in employee input
	// order, which is the documented tie-break.
	var all []slotCandidate
	for _, e := range employees {
		for _, iv := range byEmp[e.ID] {
			for _, slot := range timeline.SliceIntoSlots(iv, p.SlotMinutes, slotStep) {
				all = append(all, slotCandidate{employeeID: e.ID, slot: slot})
			}
		}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].slot.StartMin < all[j].slot.StartMin })

	respectsBuffer := func(c model.Interval) bool {
		day := timeline.DayOf(c.StartMin)
		for _, b := range busy {
			span := b.Span()
			if timeline.DayOf(span.StartMin) != day {
				continue
			}
			if c.EndMin+p.BufferMinutes > span.StartMin && span.EndMin+p.BufferMinutes > c.StartMin {
				return false
			}
		}
		return true
	}
	convenerDayLoad := func(c model.Interval) int {
		day := timeline.DayOf(c.StartMin)
		n := 0
		for _, b := range busy {
			if timeline.DayOf(b.Span().StartMin) == day {
				n++
			}
		}
		return n
	}
	minWeekCount := func() int {
		first := true
		m := 0
		for _, n := range weekCount {
			if first || n < m {
				m = n
				first = false
			}
		}
		return m
	}

	var placed []model.OneOnOne
	place := func(c slotCandidate) {
		mtg := model.OneOnOne{
			ID:         newMeetingID("oo"),
			Title:      "1:1",
			StartMin:   c.slot.StartMin,
			EndMin:     c.slot.EndMin,
			EmployeeID: c.employeeID,
		}
		placed = append(placed, mtg)
		busy = append(busy, mtg)
		weekCount[c.employeeID]++
		dayCount[c.employeeID][timeline.DayOf(c.slot.StartMin)]++
	}

	admissible := func(c slotCandidate) bool {
		if weekCount[c.employeeID] >= p.WeekTarget {
			return false
		}
		if dayCount[c.employeeID][timeline.DayOf(c.slot.StartMin)] >= p.PerEmployeeDayCap {
			return false
		}
		if !respectsBuffer(c.slot) {
			return false
		}
		return convenerDayLoad(c.slot) < p.MaxPerDay
	}

	// Fairness pass: hold everyone to the current global minimum.
	for _, c := range all {
		if !admissible(c) {
			continue
		}
		if weekCount[c.employeeID] > minWeekCount() {
			continue
		}
		place(c)
	}

	// Fill pass: same gates minus the minimum, skipping spans already taken.
	for _, c := range all {
		if !admissible(c) {
			continue
		}
		taken := false
		for _, m := range placed {
			if m.StartMin == c.slot.StartMin && m.EndMin == c.slot.EndMin {
				taken = true
				break
			}
		}
		if taken {
			continue
		}
		place(c)
	}

	sort.Slice(placed, func(i, j int) bool { return placed[i].StartMin < placed[j].StartMin })
	return placed, nil
}
