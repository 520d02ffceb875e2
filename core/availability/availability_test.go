package availability

import (
	"errors"
	"reflect"
	"testing"

	"github.com/mfaulds/weekplan/core/model"
	"github.com/mfaulds/weekplan/core/timeline"
)

func TestNormalizeOvernightsSplitsShift(t *testing.T) {
	emp := model.Employee{
		ID:   "e1",
		Name: "Avery",
		Shifts: []model.Shift{{
			Day:   6,
			Start: "22:00",
			End:   "06:00",
			Breaks: []model.Break{
				{Kind: model.BreakLunch, Start: "02:00", End: "02:30"},
				{Kind: model.BreakFirst, Start: "23:00", End: "23:15"},
			},
		}},
	}
	out, err := NormalizeOvernights([]model.Employee{emp})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	shifts := out[0].Shifts
	if len(shifts) != 2 {
		t.Fatalf("expected 2 segments got %d", len(shifts))
	}
	a, b := shifts[0], shifts[1]
	if a.Day != 6 || a.Start != "22:00" || a.End != "24:00" {
		t.Fatalf("unexpected segment A %+v", a)
	}
	if b.Day != 0 || b.Start != "00:00" || b.End != "06:00" {
		t.Fatalf("unexpected segment B %+v", b)
	}
	// The 02:00 break starts before the shift's start-of-day clock, so it
	// belongs to the early-morning half; the 23:00 break stays in A.
	if len(a.Breaks) != 1 || a.Breaks[0].Start != "23:00" {
		t.Fatalf("segment A got wrong breaks %+v", a.Breaks)
	}
	if len(b.Breaks) != 1 || b.Breaks[0].Start != "02:00" {
		t.Fatalf("segment B got wrong breaks %+v", b.Breaks)
	}
}

func TestNormalizeOvernightsKeepsDayShift(t *testing.T) {
	emp := model.Employee{ID: "e1", Shifts: []model.Shift{{Day: 2, Start: "09:00", End: "17:00"}}}
	out, err := NormalizeOvernights([]model.Employee{emp})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if !reflect.DeepEqual(out[0].Shifts, emp.Shifts) {
		t.Fatalf("day shift must pass through untouched: %+v", out[0].Shifts)
	}
}

func TestShiftFreeSubtractsBreaks(t *testing.T) {
	s := model.Shift{
		Day:    0,
		Start:  "09:00",
		End:    "17:00",
		Breaks: []model.Break{{Kind: model.BreakLunch, Start: "12:00", End: "12:30"}},
	}
	free, err := ShiftFree("e1", 0, s)
	if err != nil {
		t.Fatalf("shift free: %v", err)
	}
	want := []model.Interval{
		{StartMin: 9 * 60, EndMin: 12 * 60},
		{StartMin: 12*60 + 30, EndMin: 17 * 60},
	}
	if !reflect.DeepEqual(free, want) {
		t.Fatalf("expected %v got %v", want, free)
	}
}

func TestShiftFreeClampsStrayBreak(t *testing.T) {
	s := model.Shift{
		Day:    0,
		Start:  "09:00",
		End:    "12:00",
		Breaks: []model.Break{{Kind: model.BreakFirst, Start: "14:00", End: "14:15"}},
	}
	free, err := ShiftFree("e1", 0, s)
	if err != nil {
		t.Fatalf("shift free: %v", err)
	}
	want := []model.Interval{{StartMin: 9 * 60, EndMin: 12 * 60}}
	if !reflect.DeepEqual(free, want) {
		t.Fatalf("break outside the shift must not bite: got %v", free)
	}
}

func TestByEmployeeBridgesMidnight(t *testing.T) {
	// Overnight shift and matching convener window resolve to one merged
	// interval spanning the day boundary.
	employees := []model.Employee{{
		ID:     "e1",
		Shifts: []model.Shift{{Day: 0, Start: "23:00", End: "07:00"}},
	}}
	normalized, err := NormalizeOvernights(employees)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	wins, err := ConvenerWindowsAbs([]model.ConvenerWindow{{Day: 0, Start: "23:00", End: "07:00"}})
	if err != nil {
		t.Fatalf("windows: %v", err)
	}
	byEmp, err := ByEmployee(normalized, wins)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	got := byEmp["e1"]
	want := []model.Interval{{StartMin: 23 * 60, EndMin: model.MinutesPerDay + 7*60}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected contiguous overnight availability %v, got %v", want, got)
	}
}

func TestByEmployeeIdempotent(t *testing.T) {
	employees := []model.Employee{
		{ID: "e1", Shifts: []model.Shift{
			{Day: 1, Start: "08:00", End: "16:00", Breaks: []model.Break{{Kind: model.BreakLunch, Start: "11:30", End: "12:00"}}},
			{Day: 3, Start: "22:00", End: "06:00"},
		}},
		{ID: "e2", Shifts: []model.Shift{{Day: 1, Start: "10:00", End: "18:00"}}},
	}
	wins, err := ConvenerWindowsAbs([]model.ConvenerWindow{
		{Day: 1, Start: "09:00", End: "15:00"},
		{Day: 4, Start: "00:00", End: "05:00"},
	})
	if err != nil {
		t.Fatalf("windows: %v", err)
	}
	normalized, err := NormalizeOvernights(employees)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	first, err := ByEmployee(normalized, wins)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	second, err := ByEmployee(normalized, wins)
	if err != nil {
		t.Fatalf("resolve again: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("availability resolution not idempotent:\n%v\n%v", first, second)
	}
}

func TestByEmployeeNoShifts(t *testing.T) {
	wins, err := ConvenerWindowsAbs([]model.ConvenerWindow{{Day: 0, Start: "09:00", End: "17:00"}})
	if err != nil {
		t.Fatalf("windows: %v", err)
	}
	byEmp, err := ByEmployee([]model.Employee{{ID: "idle"}}, wins)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(byEmp["idle"]) != 0 {
		t.Fatalf("employee without shifts must have no availability, got %v", byEmp["idle"])
	}
}

func TestMalformedClockNamesField(t *testing.T) {
	employees := []model.Employee{{
		ID:     "e9",
		Shifts: []model.Shift{{Day: 0, Start: "9am", End: "17:00"}},
	}}
	_, err := NormalizeOvernights(employees)
	if err == nil {
		t.Fatalf("expected error for malformed clock")
	}
	var mte *timeline.MalformedTimeError
	if !errors.As(err, &mte) {
		t.Fatalf("expected MalformedTimeError, got %T", err)
	}
	if mte.Field != "employee e9 shift 0 start" {
		t.Fatalf("error names wrong field: %q", mte.Field)
	}
}

func TestStats(t *testing.T) {
	byEmp := map[string][]model.Interval{
		"e1": {{StartMin: 0, EndMin: 60}, {StartMin: 120, EndMin: 150}},
		"e2": nil,
	}
	stats := Stats(byEmp, 30)
	if stats["e1"].Minutes != 90 {
		t.Fatalf("expected 90 minutes got %d", stats["e1"].Minutes)
	}
	// [0,60) fits 30-minute slots at 0,15,30; [120,150) fits one at 120.
	if stats["e1"].Slots != 4 {
		t.Fatalf("expected 4 slots got %d", stats["e1"].Slots)
	}
	if stats["e2"].Minutes != 0 || stats["e2"].Slots != 0 {
		t.Fatalf("empty availability must produce zero stats: %+v", stats["e2"])
	}
}
