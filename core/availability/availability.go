// Package availability derives per-employee free time from layered weekly
// constraints: shift minus breaks, intersected with the convener's own
// windows. Its output feeds both schedulers.
package availability

import (
	"fmt"

	"github.com/mfaulds/weekplan/core/model"
	"github.com/mfaulds/weekplan/core/timeline"
)

const (
	startOfDay = "00:00"
	endOfDay   = "24:00"
)

// NormalizeOvernights splits every overnight shift into two day-local
// segments: the original day up to midnight and the next day from midnight.
// Each break follows whichever half it falls within: a break starting at or
// after the shift's start time-of-day stays with the first half, anything
// else belongs to the early-morning half. Day shifts pass through untouched.
func NormalizeOvernights(employees []model.Employee) ([]model.Employee, error) {
	out := make([]model.Employee, 0, len(employees))
	for _, e := range employees {
		norm := model.Employee{ID: e.ID, Name: e.Name}
		for i, s := range e.Shifts {
			startMin, err := timeline.ParseClock(shiftField(e.ID, i, "start"), s.Start)
			if err != nil {
				return nil, err
			}
			endMin, err := timeline.ParseClock(shiftField(e.ID, i, "end"), s.End)
			if err != nil {
				return nil, err
			}
			if endMin > startMin {
				norm.Shifts = append(norm.Shifts, s)
				continue
			}

			var breaksA, breaksB []model.Break
			for j, b := range s.Breaks {
				bStart, err := timeline.ParseClock(breakField(e.ID, i, j, "start"), b.Start)
				if err != nil {
					return nil, err
				}
				if bStart >= startMin {
					breaksA = append(breaksA, b)
				} else {
					breaksB = append(breaksB, b)
				}
			}
			norm.Shifts = append(norm.Shifts,
				model.Shift{Day: s.Day, Start: s.Start, End: endOfDay, Breaks: breaksA},
				model.Shift{Day: (s.Day + 1) % 7, Start: startOfDay, End: s.End, Breaks: breaksB},
			)
		}
		out = append(out, norm)
	}
	return out, nil
}

// ConvenerWindowsAbs converts the convener's windows into absolute week
// intervals, carrying a window whose end clock is at or before its start
// into the next day.
func ConvenerWindowsAbs(wins []model.ConvenerWindow) ([]model.Interval, error) {
	out := make([]model.Interval, 0, len(wins))
	for i, w := range wins {
		field := fmt.Sprintf("convener window %d", i)
		startMin, err := timeline.ParseClock(field+" start", w.Start)
		if err != nil {
			return nil, err
		}
		endMin, err := timeline.ParseClock(field+" end", w.End)
		if err != nil {
			return nil, err
		}
		endDay := w.Day
		if endMin <= startMin {
			endDay = (w.Day + 1) % 7
		}
		out = append(out, timeline.AbsInterval(w.Day, startMin, endDay, endMin))
	}
	return out, nil
}

// ShiftFree returns the absolute free intervals of one shift: the shift span
// minus its breaks. Breaks are clamped to the shift so a stray break outside
// it cannot eat into other shifts.
func ShiftFree(employeeID string, idx int, s model.Shift) ([]model.Interval, error) {
	startMin, err := timeline.ParseClock(shiftField(employeeID, idx, "start"), s.Start)
	if err != nil {
		return nil, err
	}
	endMin, err := timeline.ParseClock(shiftField(employeeID, idx, "end"), s.End)
	if err != nil {
		return nil, err
	}
	endDay := s.Day
	if endMin <= startMin {
		endDay = (s.Day + 1) % 7
	}
	shiftAbs := timeline.AbsInterval(s.Day, startMin, endDay, endMin)

	var holes []model.Interval
	for j, b := range s.Breaks {
		bStart, err := timeline.ParseClock(breakField(employeeID, idx, j, "start"), b.Start)
		if err != nil {
			return nil, err
		}
		bEnd, err := timeline.ParseClock(breakField(employeeID, idx, j, "end"), b.End)
		if err != nil {
			return nil, err
		}
		bEndDay := s.Day
		if bEnd <= bStart {
			bEndDay = (s.Day + 1) % 7
		}
		iv := timeline.AbsInterval(s.Day, bStart, bEndDay, bEnd)
		if clamped, ok := timeline.Intersect(shiftAbs, iv); ok {
			holes = append(holes, clamped)
		}
	}
	return timeline.Subtract([]model.Interval{shiftAbs}, holes), nil
}

// ByEmployee resolves the authoritative availability of every employee: the
// merged intersections of their break-free shift time with the convener's
// windows. An employee with no shifts resolves to an empty set; that is not
// an error, they just never get placed.
func ByEmployee(employees []model.Employee, convenerAbs []model.Interval) (map[string][]model.Interval, error) {
	byEmp := make(map[string][]model.Interval, len(employees))
	for _, e := range employees {
		var base []model.Interval
		for i, s := range e.Shifts {
			free, err := ShiftFree(e.ID, i, s)
			if err != nil {
				return nil, err
			}
			base = append(base, free...)
		}
		var hits []model.Interval
		for _, w := range convenerAbs {
			for _, iv := range base {
				if j, ok := timeline.Intersect(iv, w); ok {
					hits = append(hits, j)
				}
			}
		}
		byEmp[e.ID] = timeline.Merge(hits)
	}
	return byEmp, nil
}

// EmployeeStats summarizes how much schedulable time an employee has.
type EmployeeStats struct {
	Minutes int
	Slots   int
}

// Stats computes per-employee totals for a given slot length. Slot counts
// use the same 15-minute grid the schedulers search over.
func Stats(byEmp map[string][]model.Interval, slotLen int) map[string]EmployeeStats {
	out := make(map[string]EmployeeStats, len(byEmp))
	for id, ivs := range byEmp {
		st := EmployeeStats{Minutes: timeline.TotalMinutes(ivs)}
		for _, iv := range ivs {
			st.Slots += len(timeline.SliceIntoSlots(iv, slotLen, 15))
		}
		out[id] = st
	}
	return out
}

func shiftField(employeeID string, idx int, part string) string {
	return fmt.Sprintf("employee %s shift %d %s", employeeID, idx, part)
}

func breakField(employeeID string, shiftIdx, breakIdx int, part string) string {
	return fmt.Sprintf("employee %s shift %d break %d %s", employeeID, shiftIdx, breakIdx, part)
}
