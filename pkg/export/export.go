// Package export renders a generated plan for downstream tooling: JSON for
// round-tripping, CSV for spreadsheets.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strings"

	"github.com/mfaulds/weekplan/core/model"
	"github.com/mfaulds/weekplan/core/timeline"
)

// WriteJSON writes the plan to w in JSON format.
func WriteJSON(w io.Writer, plan model.Plan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(plan)
}

// WriteCSV writes the plan to w as one row per meeting. The day column uses
// the meeting's start day; overnight meetings keep their clock-accurate end
// time on the next day.
func WriteCSV(w io.Writer, plan model.Plan) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "type", "day", "start", "end", "who"}); err != nil {
		return err
	}
	for _, m := range plan {
		span := m.Span()
		var who string
		switch v := m.(type) {
		case model.OneOnOne:
			who = v.EmployeeID
		case model.TeamSession:
			who = strings.Join(v.AttendeeIDs, ";")
		}
		rec := []string{
			m.MeetingID(),
			string(m.Type()),
			model.DayNames[timeline.DayOf(span.StartMin)],
			timeline.FormatClock(span.StartMin),
			timeline.FormatClock(span.EndMin),
			who,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
