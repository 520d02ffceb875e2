package planner

import (
	"testing"

	"github.com/mfaulds/weekplan/core/model"
)

func oo(id string, start, end int) model.OneOnOne {
	return model.OneOnOne{ID: id, Title: "1:1", StartMin: start, EndMin: end, EmployeeID: "e-" + id}
}

func TestMergeWithoutConflicts(t *testing.T) {
	existing := model.Plan{oo("a", 100, 130)}

	got := MergeWithoutConflicts(existing, model.Plan{
		oo("b", 120, 150), // overlaps a, dropped
		oo("c", 130, 160), // touches a, kept
		oo("a", 500, 530), // duplicate id, dropped
		oo("d", 140, 170), // overlaps the just-accepted c, dropped
	})
	if len(got) != 2 {
		t.Fatalf("expected 2 meetings got %d: %v", len(got), got)
	}
	if got[0].MeetingID() != "a" || got[1].MeetingID() != "c" {
		t.Fatalf("unexpected survivors: %v, %v", got[0].MeetingID(), got[1].MeetingID())
	}
	for i := range got {
		for j := i + 1; j < len(got); j++ {
			if Conflicts(got[i], got[j]) {
				t.Fatalf("result violates no-overlap invariant: %v %v", got[i], got[j])
			}
		}
	}
	// Input plans are not mutated.
	if len(existing) != 1 {
		t.Fatalf("existing plan was modified")
	}
}

func TestStripInternalConflictsFirstWins(t *testing.T) {
	got := StripInternalConflicts(model.Plan{
		oo("a", 0, 30),
		oo("b", 15, 45),
		oo("c", 30, 60),
	})
	if len(got) != 2 {
		t.Fatalf("expected 2 meetings got %d", len(got))
	}
	if got[0].MeetingID() != "a" || got[1].MeetingID() != "c" {
		t.Fatalf("first-in-order must win: %v %v", got[0].MeetingID(), got[1].MeetingID())
	}
}

func TestConflictsIgnoresAttendees(t *testing.T) {
	a := model.OneOnOne{ID: "x", StartMin: 0, EndMin: 30, EmployeeID: "e1"}
	b := model.TeamSession{ID: "y", StartMin: 15, EndMin: 45, AttendeeIDs: []string{"e2", "e3"}}
	if !Conflicts(a, b) {
		t.Fatalf("time overlap must conflict regardless of attendees")
	}
}
