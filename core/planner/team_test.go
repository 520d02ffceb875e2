package planner

import (
	"testing"

	"github.com/mfaulds/weekplan/core/model"
)

func TestScheduleTeamSessionsSingleBestSession(t *testing.T) {
	// Three employees all free for the convener's single one-hour window:
	// one session carrying all three beats two smaller ones.
	employees := []model.Employee{
		dayShiftEmployee("e1", "Kim", 0, "09:00", "17:00"),
		dayShiftEmployee("e2", "Lee", 0, "09:00", "17:00"),
		dayShiftEmployee("e3", "Nur", 0, "09:00", "17:00"),
	}
	wins := mustWindows(t, model.ConvenerWindow{Day: 0, Start: "10:00", End: "11:00"})

	sessions, err := ScheduleTeamSessions(employees, wins, 30)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected a single session got %d: %v", len(sessions), sessions)
	}
	if len(sessions[0].AttendeeIDs) != 3 {
		t.Fatalf("expected all 3 attendees got %v", sessions[0].AttendeeIDs)
	}
}

func TestScheduleTeamSessionsRequiresContainment(t *testing.T) {
	// e2 is only around for the first 15 minutes of any candidate, so no
	// candidate window fits inside their availability.
	employees := []model.Employee{
		dayShiftEmployee("e1", "Kim", 0, "09:00", "17:00"),
		dayShiftEmployee("e2", "Lee", 0, "10:00", "10:15"),
	}
	wins := mustWindows(t, model.ConvenerWindow{Day: 0, Start: "10:00", End: "11:00"})

	sessions, err := ScheduleTeamSessions(employees, wins, 30)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if len(sessions) != 0 {
		t.Fatalf("partial overlap must not make an attendee eligible: %v", sessions)
	}
}

func TestScheduleTeamSessionsScarcityWeighting(t *testing.T) {
	// e3 only exists inside the early window; a fair pick must catch them
	// there even though the later window also covers two employees.
	employees := []model.Employee{
		dayShiftEmployee("e1", "Kim", 0, "09:00", "17:00"),
		dayShiftEmployee("e2", "Lee", 0, "09:00", "17:00"),
		dayShiftEmployee("e3", "Nur", 0, "09:00", "10:00"),
	}
	wins := mustWindows(t,
		model.ConvenerWindow{Day: 0, Start: "09:00", End: "10:00"},
		model.ConvenerWindow{Day: 0, Start: "15:00", End: "16:00"},
	)
	sessions, err := ScheduleTeamSessions(employees, wins, 30)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if len(sessions) == 0 {
		t.Fatalf("expected at least one session")
	}
	first := sessions[0]
	found := false
	for _, id := range first.AttendeeIDs {
		if id == "e3" {
			found = true
		}
	}
	if !found {
		t.Fatalf("scarce employee missing from the first session: %v", first.AttendeeIDs)
	}
}

func TestScheduleTeamSessionsCoversDisjointGroups(t *testing.T) {
	employees := []model.Employee{
		dayShiftEmployee("e1", "Kim", 0, "09:00", "10:00"),
		dayShiftEmployee("e2", "Lee", 0, "09:00", "10:00"),
		dayShiftEmployee("e3", "Nur", 0, "14:00", "15:00"),
		dayShiftEmployee("e4", "Pat", 0, "14:00", "15:00"),
	}
	wins := mustWindows(t, model.ConvenerWindow{Day: 0, Start: "08:00", End: "16:00"})
	sessions, err := ScheduleTeamSessions(employees, wins, 30)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions got %d: %v", len(sessions), sessions)
	}
	covered := map[string]bool{}
	for _, s := range sessions {
		for _, id := range s.AttendeeIDs {
			covered[id] = true
		}
	}
	if len(covered) != 4 {
		t.Fatalf("expected everyone covered, got %v", covered)
	}
}

func TestScheduleTeamSessionsNoLoneAttendee(t *testing.T) {
	employees := []model.Employee{dayShiftEmployee("e1", "Kim", 0, "09:00", "17:00")}
	wins := mustWindows(t, model.ConvenerWindow{Day: 0, Start: "09:00", End: "17:00"})
	sessions, err := ScheduleTeamSessions(employees, wins, 30)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if len(sessions) != 0 {
		t.Fatalf("a single eligible employee must not form a team session: %v", sessions)
	}
}
