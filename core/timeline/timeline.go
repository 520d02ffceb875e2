// Package timeline implements minute arithmetic and interval algebra on the
// cyclic 7-day week all scheduling runs on. Every operation is a pure
// function over model.Interval values.
package timeline

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mfaulds/weekplan/core/model"
)

// MalformedTimeError reports an HH:MM string that could not be parsed at the
// input boundary. The engine never substitutes a default for a bad clock.
type MalformedTimeError struct {
	Field string
	Value string
}

func (e *MalformedTimeError) Error() string {
	return fmt.Sprintf("malformed time %q in %s: want 24-hour HH:MM", e.Value, e.Field)
}

// ParseClock parses a strict 24-hour HH:MM string into minutes from
// midnight. "24:00" is accepted as the end-of-day boundary and parses to
// 1440; any other hour above 23, minute above 59, or non-numeric text fails
// with a *MalformedTimeError naming the offending field.
func ParseClock(field, value string) (int, error) {
	hh, mm, ok := strings.Cut(value, ":")
	if !ok {
		return 0, &MalformedTimeError{Field: field, Value: value}
	}
	h, errH := strconv.Atoi(hh)
	m, errM := strconv.Atoi(mm)
	if errH != nil || errM != nil {
		return 0, &MalformedTimeError{Field: field, Value: value}
	}
	if h < 0 || m < 0 || m > 59 || h > 24 || (h == 24 && m != 0) {
		return 0, &MalformedTimeError{Field: field, Value: value}
	}
	return h*60 + m, nil
}

// FormatClock renders a minute offset as HH:MM time-of-day.
func FormatClock(min int) string {
	min %= model.MinutesPerDay
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// DayTimeToAbs converts a day index plus minute-of-day into an absolute week
// minute.
func DayTimeToAbs(day model.Day, clockMin int) int {
	return int(day)*model.MinutesPerDay + clockMin
}

// AbsInterval builds the absolute interval for a day-attributed start/end
// pair. When the computed end is at or before the start the span wraps past
// the week boundary and a full week is added, keeping the interval monotonic.
func AbsInterval(startDay model.Day, startMin int, endDay model.Day, endMin int) model.Interval {
	s := DayTimeToAbs(startDay, startMin)
	e := DayTimeToAbs(endDay, endMin)
	if e <= s {
		e += model.MinutesPerWeek
	}
	return model.Interval{StartMin: s, EndMin: e}
}

// Intersect returns the overlap of a and b, if any.
func Intersect(a, b model.Interval) (model.Interval, bool) {
	s := max(a.StartMin, b.StartMin)
	e := min(a.EndMin, b.EndMin)
	if e <= s {
		return model.Interval{}, false
	}
	return model.Interval{StartMin: s, EndMin: e}, true
}

// Overlaps reports whether the two half-open intervals share any minute.
// Touching intervals do not overlap.
func Overlaps(a, b model.Interval) bool {
	return !(a.EndMin <= b.StartMin || b.EndMin <= a.StartMin)
}

// Merge sorts the intervals and coalesces neighbours whose start is at or
// before the previous end. Touching intervals merge on purpose so later
// slicing never sees micro-gaps. The result is sorted and pairwise disjoint.
func Merge(list []model.Interval) []model.Interval {
	if len(list) == 0 {
		return nil
	}
	s := make([]model.Interval, len(list))
	copy(s, list)
	sort.Slice(s, func(i, j int) bool { return s[i].StartMin < s[j].StartMin })
	out := []model.Interval{s[0]}
	for _, iv := range s[1:] {
		last := &out[len(out)-1]
		if iv.StartMin <= last.EndMin {
			if iv.EndMin > last.EndMin {
				last.EndMin = iv.EndMin
			}
		} else {
			out = append(out, iv)
		}
	}
	return out
}

// minus removes b from a, leaving up to two remainders.
func minus(a, b model.Interval) []model.Interval {
	if b.EndMin <= a.StartMin || b.StartMin >= a.EndMin {
		return []model.Interval{a}
	}
	var out []model.Interval
	if b.StartMin > a.StartMin {
		out = append(out, model.Interval{StartMin: a.StartMin, EndMin: min(b.StartMin, a.EndMin)})
	}
	if b.EndMin < a.EndMin {
		out = append(out, model.Interval{StartMin: max(b.EndMin, a.StartMin), EndMin: a.EndMin})
	}
	return out
}

// Subtract removes every hole from every base interval. Holes are merged
// first so overlapping holes cannot resurrect removed time.
func Subtract(base, holes []model.Interval) []model.Interval {
	acc := Merge(base)
	for _, h := range Merge(holes) {
		var next []model.Interval
		for _, iv := range acc {
			next = append(next, minus(iv, h)...)
		}
		acc = next
	}
	return acc
}

// SliceIntoSlots cuts a window into fixed-length candidate slots aligned to
// the step grid. The first slot starts at the smallest step multiple at or
// after the window start; no slot ever runs past the window end. This grid
// is the discretization the schedulers search over.
func SliceIntoSlots(win model.Interval, slotLen, step int) []model.Interval {
	var slots []model.Interval
	start := (win.StartMin + step - 1) / step * step
	for t := start; t+slotLen <= win.EndMin; t += step {
		slots = append(slots, model.Interval{StartMin: t, EndMin: t + slotLen})
	}
	return slots
}

// DayOf attributes an absolute week minute to a weekday, wrapping values
// past the week boundary.
func DayOf(minute int) model.Day {
	return model.Day(minute / model.MinutesPerDay % 7)
}

// TotalMinutes sums the lengths of the intervals.
func TotalMinutes(list []model.Interval) int {
	total := 0
	for _, iv := range list {
		total += iv.Minutes()
	}
	return total
}

// DaySpan is a day-local fragment of an absolute interval. StartMin and
// EndMin are minutes within the day; a fragment covering the rest of a day
// ends at 1440, never 0.
type DaySpan struct {
	Day      model.Day
	StartMin int
	EndMin   int
}

// SliceAcrossDays fragments an interval that may span several days into
// per-day pieces for rendering and attribution.
func SliceAcrossDays(iv model.Interval) []DaySpan {
	var out []DaySpan
	s := iv.StartMin
	for s < iv.EndMin {
		dayIdx := s / model.MinutesPerDay
		dayEnd := (dayIdx + 1) * model.MinutesPerDay
		sliceEnd := min(iv.EndMin, dayEnd)
		endInDay := sliceEnd % model.MinutesPerDay
		if endInDay == 0 {
			endInDay = model.MinutesPerDay
		}
		out = append(out, DaySpan{
			Day:      model.Day(dayIdx % 7),
			StartMin: s % model.MinutesPerDay,
			EndMin:   endInDay,
		})
		s = sliceEnd
	}
	return out
}
