package model

// Day indexes a weekday within the planning week. Sunday is 0, Saturday is 6.
type Day int

const (
	// MinutesPerDay is the length of one day on the week timeline.
	MinutesPerDay = 24 * 60
	// MinutesPerWeek bounds the cyclic 7-day timeline all scheduling math
	// runs on. Interval ends may temporarily exceed it before overnight
	// normalization.
	MinutesPerWeek = 7 * MinutesPerDay
)

// DayNames maps Day values to their short display names.
var DayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Interval is a half-open [StartMin, EndMin) span in minutes since the start
// of the week. EndMin must be strictly greater than StartMin.
type Interval struct {
	StartMin int `json:"startMin" yaml:"startMin"`
	EndMin   int `json:"endMin" yaml:"endMin"`
}

// Minutes returns the interval length.
func (iv Interval) Minutes() int { return iv.EndMin - iv.StartMin }

// BreakKind identifies which of the contractual pauses a break is.
type BreakKind string

const (
	BreakFirst  BreakKind = "break1"
	BreakSecond BreakKind = "break2"
	BreakLunch  BreakKind = "lunch"
)

// Break is a pause inside a shift, expressed as HH:MM clock strings on the
// shift's day. It is subtracted from the shift when availability is resolved.
type Break struct {
	Kind  BreakKind `json:"kind" yaml:"kind"`
	Start string    `json:"start" yaml:"start"`
	End   string    `json:"end" yaml:"end"`
}

// Shift is one recurring weekly work segment of an employee. An End clock at
// or before Start marks an overnight shift that continues into the next day.
type Shift struct {
	Day    Day     `json:"day" yaml:"day"`
	Start  string  `json:"start" yaml:"start"`
	End    string  `json:"end" yaml:"end"`
	Breaks []Break `json:"breaks,omitempty" yaml:"breaks,omitempty"`
}

// Employee is a participant the convener wants to meet. Employees with no
// shifts are valid and simply never get scheduled.
type Employee struct {
	ID     string  `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Shifts []Shift `json:"shifts" yaml:"shifts"`
}

// ConvenerWindow is one weekly slice of the convener's own availability.
// The convener attends every meeting, so nothing is ever scheduled outside
// these windows. The serialized name managerWindows is kept for
// compatibility with exported planner files.
type ConvenerWindow struct {
	Day   Day    `json:"day" yaml:"day"`
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// Mode selects which scheduler(s) a generation run executes.
type Mode string

const (
	ModeOneOnOne Mode = "1on1"
	ModeTeam     Mode = "team"
	ModeScramble Mode = "scramble"
)

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeOneOnOne, ModeTeam, ModeScramble:
		return true
	}
	return false
}

// Settings carries the numeric scheduling parameters exactly as they appear
// in persisted planner files.
type Settings struct {
	Mode                Mode `json:"mode" yaml:"mode"`
	SlotMinutes         int  `json:"slotMinutes" yaml:"slotMinutes"`
	BufferMinutes       int  `json:"bufferMinutes" yaml:"bufferMinutes"`
	MaxPerDay           int  `json:"maxPerDay" yaml:"maxPerDay"`
	SessionMinutes      int  `json:"sessionMinutes" yaml:"sessionMinutes"`
	TargetConversations int  `json:"targetConversations" yaml:"targetConversations"`
}

// MeetingStatus tracks the lifecycle of a meeting after it was planned.
type MeetingStatus string

const (
	StatusScheduled MeetingStatus = "scheduled"
	StatusConfirmed MeetingStatus = "confirmed"
	StatusCompleted MeetingStatus = "completed"
	StatusCancelled MeetingStatus = "cancelled"
)

// MeetingMeta holds notes and outcomes recorded against a planned meeting.
// ID matches the meeting id in the plan.
type MeetingMeta struct {
	ID             string        `json:"id" yaml:"id"`
	Notes          string        `json:"notes,omitempty" yaml:"notes,omitempty"`
	Agenda         string        `json:"agenda,omitempty" yaml:"agenda,omitempty"`
	Status         MeetingStatus `json:"status,omitempty" yaml:"status,omitempty"`
	ActualStartMin *int          `json:"actualStartMin,omitempty" yaml:"actualStartMin,omitempty"`
	ActualEndMin   *int          `json:"actualEndMin,omitempty" yaml:"actualEndMin,omitempty"`
	Tags           []string      `json:"tags,omitempty" yaml:"tags,omitempty"`
	Rating         int           `json:"rating,omitempty" yaml:"rating,omitempty"` // 1-5
}
