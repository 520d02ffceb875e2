package model

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MeetingType discriminates the two planned meeting variants on the wire.
type MeetingType string

const (
	TypeOneOnOne    MeetingType = "1on1"
	TypeTeamSession MeetingType = "team"
)

// Meeting is one planned entry on the convener's week. The two variants are
// OneOnOne and TeamSession; the shared surface is deliberately minimal since
// only the time span and id matter to conflict handling.
type Meeting interface {
	MeetingID() string
	Span() Interval
	Type() MeetingType
}

// OneOnOne is a conversation between the convener and a single employee.
type OneOnOne struct {
	ID         string
	Title      string
	StartMin   int
	EndMin     int
	EmployeeID string
}

func (m OneOnOne) MeetingID() string { return m.ID }
func (m OneOnOne) Span() Interval    { return Interval{StartMin: m.StartMin, EndMin: m.EndMin} }
func (m OneOnOne) Type() MeetingType { return TypeOneOnOne }

// TeamSession is a meeting between the convener and several employees.
// Attendee ordering carries no meaning.
type TeamSession struct {
	ID          string
	Title       string
	StartMin    int
	EndMin      int
	AttendeeIDs []string
}

func (m TeamSession) MeetingID() string { return m.ID }
func (m TeamSession) Span() Interval    { return Interval{StartMin: m.StartMin, EndMin: m.EndMin} }
func (m TeamSession) Type() MeetingType { return TypeTeamSession }

// Plan is the collection of meetings held for one week. A plan produced by
// the conflict policy never contains two meetings with overlapping spans,
// because the convener attends all of them.
type Plan []Meeting

// OneOnOnes returns the one-on-one meetings in plan order.
func (p Plan) OneOnOnes() []OneOnOne {
	var out []OneOnOne
	for _, m := range p {
		if oo, ok := m.(OneOnOne); ok {
			out = append(out, oo)
		}
	}
	return out
}

// TeamSessions returns the team sessions in plan order.
func (p Plan) TeamSessions() []TeamSession {
	var out []TeamSession
	for _, m := range p {
		if ts, ok := m.(TeamSession); ok {
			out = append(out, ts)
		}
	}
	return out
}

// meetingDoc is the wire shape shared by both meeting variants. The type
// field is the discriminator.
type meetingDoc struct {
	Type        MeetingType `json:"type" yaml:"type"`
	ID          string      `json:"id" yaml:"id"`
	Title       string      `json:"title" yaml:"title"`
	StartMin    int         `json:"startMin" yaml:"startMin"`
	EndMin      int         `json:"endMin" yaml:"endMin"`
	EmployeeID  string      `json:"employeeId,omitempty" yaml:"employeeId,omitempty"`
	AttendeeIDs []string    `json:"attendeeIds,omitempty" yaml:"attendeeIds,omitempty"`
}

func docOf(m Meeting) meetingDoc {
	switch v := m.(type) {
	case OneOnOne:
		return meetingDoc{Type: TypeOneOnOne, ID: v.ID, Title: v.Title, StartMin: v.StartMin, EndMin: v.EndMin, EmployeeID: v.EmployeeID}
	case TeamSession:
		return meetingDoc{Type: TypeTeamSession, ID: v.ID, Title: v.Title, StartMin: v.StartMin, EndMin: v.EndMin, AttendeeIDs: v.AttendeeIDs}
	default:
		return meetingDoc{}
	}
}

func (d meetingDoc) meeting() (Meeting, error) {
	switch d.Type {
	case TypeOneOnOne:
		return OneOnOne{ID: d.ID, Title: d.Title, StartMin: d.StartMin, EndMin: d.EndMin, EmployeeID: d.EmployeeID}, nil
	case TypeTeamSession:
		return TeamSession{ID: d.ID, Title: d.Title, StartMin: d.StartMin, EndMin: d.EndMin, AttendeeIDs: d.AttendeeIDs}, nil
	default:
		return nil, fmt.Errorf("unknown meeting type %q", d.Type)
	}
}

// MarshalJSON encodes the meeting with its type discriminator.
func (m OneOnOne) MarshalJSON() ([]byte, error) { return json.Marshal(docOf(m)) }

// MarshalJSON encodes the session with its type discriminator.
func (m TeamSession) MarshalJSON() ([]byte, error) { return json.Marshal(docOf(m)) }

// UnmarshalJSON decodes a heterogeneous meeting list using the type
// discriminator of each element.
func (p *Plan) UnmarshalJSON(b []byte) error {
	var docs []meetingDoc
	if err := json.Unmarshal(b, &docs); err != nil {
		return err
	}
	out := make(Plan, 0, len(docs))
	for _, d := range docs {
		m, err := d.meeting()
		if err != nil {
			return err
		}
		out = append(out, m)
	}
	*p = out
	return nil
}

// MarshalYAML mirrors the JSON wire shape for YAML state files.
func (p Plan) MarshalYAML() (interface{}, error) {
	docs := make([]meetingDoc, 0, len(p))
	for _, m := range p {
		docs = append(docs, docOf(m))
	}
	return docs, nil
}

// UnmarshalYAML decodes a meeting list from a YAML sequence node.
func (p *Plan) UnmarshalYAML(value *yaml.Node) error {
	var docs []meetingDoc
	if err := value.Decode(&docs); err != nil {
		return err
	}
	out := make(Plan, 0, len(docs))
	for _, d := range docs {
		m, err := d.meeting()
		if err != nil {
			return err
		}
		out = append(out, m)
	}
	*p = out
	return nil
}
