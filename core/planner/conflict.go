package planner

import (
	"github.com/mfaulds/weekplan/core/model"
	"github.com/mfaulds/weekplan/core/timeline"
)

// Conflicts reports whether two meetings collide. The convener attends every
// meeting, so a time overlap is always a conflict; attendee identity never
// needs to be compared.
func Conflicts(a, b model.Meeting) bool {
	return timeline.Overlaps(a.Span(), b.Span())
}

// MergeWithoutConflicts appends candidates to an existing plan, keeping each
// candidate in input order only when its id is new and it collides with
// nothing accepted so far, earlier candidates included. Rejected candidates
// are dropped silently; callers surface the shortfall through diagnostics.
func MergeWithoutConflicts(existing, candidates model.Plan) model.Plan {
	result := make(model.Plan, len(existing))
	copy(result, existing)
	seen := make(map[string]struct{}, len(existing))
	for _, m := range existing {
		seen[m.MeetingID()] = struct{}{}
	}
	for _, c := range candidates {
		if _, dup := seen[c.MeetingID()]; dup {
			continue
		}
		collides := false
		for _, q := range result {
			if Conflicts(c, q) {
				collides = true
				break
			}
		}
		if !collides {
			result = append(result, c)
			seen[c.MeetingID()] = struct{}{}
		}
	}
	return result
}

// StripInternalConflicts applies the same acceptance rule starting from an
// empty plan. Used when a generated plan replaces the held one; first in
// order wins.
func StripInternalConflicts(candidates model.Plan) model.Plan {
	return MergeWithoutConflicts(nil, candidates)
}
