package config

import (
	"fmt"

	"github.com/mfaulds/weekplan/core/model"
)

// EngineConfig carries the default scheduling parameters applied when a
// state file does not pin its own settings.
type EngineConfig struct {
	// Mode selects the scheduler: 1on1, team or scramble.
	Mode string `json:"mode"`
	// SlotMinutes is the one-on-one length.
	SlotMinutes int `json:"slot_minutes"`
	// BufferMinutes pads every one-on-one on both sides within a day.
	BufferMinutes int `json:"buffer_minutes"`
	// MaxPerDay caps the convener's meetings on a single day.
	MaxPerDay int `json:"max_per_day"`
	// SessionMinutes is the team session length.
	SessionMinutes int `json:"session_minutes"`
	// TargetConversations is the weekly one-on-one target per employee.
	TargetConversations int `json:"target_conversations"`
	// MaxPerEmployeePerDay limits one-on-ones per employee per day.
	MaxPerEmployeePerDay int `json:"max_per_employee_per_day"`
}

// SetDefaults applies the planner's stock parameters.
func (c *EngineConfig) SetDefaults() {
	if c.Mode == "" {
		c.Mode = string(model.ModeOneOnOne)
	}
	if c.SlotMinutes == 0 {
		c.SlotMinutes = 30
	}
	if c.BufferMinutes == 0 {
		c.BufferMinutes = 15
	}
	if c.MaxPerDay == 0 {
		c.MaxPerDay = 5
	}
	if c.SessionMinutes == 0 {
		c.SessionMinutes = 30
	}
	if c.TargetConversations == 0 {
		c.TargetConversations = 1
	}
	if c.MaxPerEmployeePerDay == 0 {
		c.MaxPerEmployeePerDay = 1
	}
}

// Validate checks ranges and the mode name.
func (c EngineConfig) Validate() error {
	if !model.Mode(c.Mode).Valid() {
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.SlotMinutes <= 0 || c.SessionMinutes <= 0 {
		return fmt.Errorf("meeting lengths must be positive")
	}
	if c.BufferMinutes < 0 {
		return fmt.Errorf("buffer_minutes must not be negative")
	}
	if c.MaxPerDay <= 0 || c.TargetConversations <= 0 || c.MaxPerEmployeePerDay <= 0 {
		return fmt.Errorf("caps and targets must be positive")
	}
	return nil
}

// Settings converts the config section into engine settings.
func (c EngineConfig) Settings() model.Settings {
	return model.Settings{
		Mode:                model.Mode(c.Mode),
		SlotMinutes:         c.SlotMinutes,
		BufferMinutes:       c.BufferMinutes,
		MaxPerDay:           c.MaxPerDay,
		SessionMinutes:      c.SessionMinutes,
		TargetConversations: c.TargetConversations,
	}
}
