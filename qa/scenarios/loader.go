// Package scenarios runs YAML-described planning scenarios against the
// engine. Each *.yaml file in this directory is one scenario; adding a case
// is a data change, not a code change.
package scenarios

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mfaulds/weekplan/core/model"
)

type BreakDef struct {
	Kind  string `yaml:"kind"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

type ShiftDef struct {
	Day    int        `yaml:"day"`
	Start  string     `yaml:"start"`
	End    string     `yaml:"end"`
	Breaks []BreakDef `yaml:"breaks,omitempty"`
}

type EmployeeDef struct {
	ID     string     `yaml:"id"`
	Name   string     `yaml:"name"`
	Shifts []ShiftDef `yaml:"shifts"`
}

func (e EmployeeDef) ToModel() model.Employee {
	out := model.Employee{ID: e.ID, Name: e.Name}
	for _, s := range e.Shifts {
		shift := model.Shift{Day: model.Day(s.Day), Start: s.Start, End: s.End}
		for _, b := range s.Breaks {
			shift.Breaks = append(shift.Breaks, model.Break{Kind: model.BreakKind(b.Kind), Start: b.Start, End: b.End})
		}
		out.Shifts = append(out.Shifts, shift)
	}
	return out
}

type WindowDef struct {
	Day   int    `yaml:"day"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

func (w WindowDef) ToModel() model.ConvenerWindow {
	return model.ConvenerWindow{Day: model.Day(w.Day), Start: w.Start, End: w.End}
}

type Expected struct {
	OneOnOnes    int `yaml:"one_on_ones"`
	TeamSessions int `yaml:"team_sessions"`
	Covered      int `yaml:"covered"`
}

type Scenario struct {
	Name                string        `yaml:"name"`
	Description         string        `yaml:"description,omitempty"`
	Mode                string        `yaml:"mode"`
	SlotMinutes         int           `yaml:"slot_minutes"`
	BufferMinutes       int           `yaml:"buffer_minutes"`
	MaxPerDay           int           `yaml:"max_per_day"`
	SessionMinutes      int           `yaml:"session_minutes"`
	TargetConversations int           `yaml:"target_conversations"`
	Employees           []EmployeeDef `yaml:"employees"`
	ConvenerWindows     []WindowDef   `yaml:"convener_windows"`
	Expected            Expected      `yaml:"expected"`
}

func (sc Scenario) Settings() model.Settings {
	return model.Settings{
		Mode:                model.Mode(sc.Mode),
		SlotMinutes:         sc.SlotMinutes,
		BufferMinutes:       sc.BufferMinutes,
		MaxPerDay:           sc.MaxPerDay,
		SessionMinutes:      sc.SessionMinutes,
		TargetConversations: sc.TargetConversations,
	}
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}
