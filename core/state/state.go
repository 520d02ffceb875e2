// Package state reads and writes the persisted planner state exchanged with
// the editing and rendering layers: employees, convener windows, settings,
// the held plan and per-meeting notes.
package state

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mfaulds/weekplan/core/model"
)

// State is the exact shape persisted planner files carry.
type State struct {
	Employees      []model.Employee             `json:"employees" yaml:"employees"`
	ManagerWindows []model.ConvenerWindow       `json:"managerWindows" yaml:"managerWindows"`
	Settings       model.Settings               `json:"settings" yaml:"settings"`
	Plan           model.Plan                   `json:"plan" yaml:"plan"`
	MeetingMeta    map[string]model.MeetingMeta `json:"meetingMeta,omitempty" yaml:"meetingMeta,omitempty"`
}

// BundleVersion is the only export bundle version in circulation.
const BundleVersion = 1

// Bundle wraps a state snapshot with versioning for file exchange.
type Bundle struct {
	Version    int       `json:"version" yaml:"version"`
	ExportedAt time.Time `json:"exportedAt" yaml:"exportedAt"`
	Data       State     `json:"data" yaml:"data"`
}

// Load reads a state file, JSON or YAML by extension. Both a raw state
// object and a versioned export bundle are accepted.
func Load(path string) (State, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return State{}, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return decode(b, "yaml")
	case ".json":
		return decode(b, "json")
	default:
		return State{}, fmt.Errorf("unsupported state format: %s", ext)
	}
}

// Decode reads a state document from r in the given format ("json" or
// "yaml"), accepting either a raw state or an export bundle.
func Decode(r io.Reader, format string) (State, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return State{}, err
	}
	return decode(b, format)
}

func decode(b []byte, format string) (State, error) {
	// Probe for the bundle envelope first; a raw state has no version.
	var probe struct {
		Version int    `json:"version" yaml:"version"`
		Data    *State `json:"data" yaml:"data"`
	}
	var st State
	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(b, &probe); err == nil && probe.Version == BundleVersion && probe.Data != nil {
			return *probe.Data, nil
		}
		if err := yaml.Unmarshal(b, &st); err != nil {
			return State{}, err
		}
	case "json":
		if err := json.Unmarshal(b, &probe); err == nil && probe.Version == BundleVersion && probe.Data != nil {
			return *probe.Data, nil
		}
		if err := json.Unmarshal(b, &st); err != nil {
			return State{}, err
		}
	default:
		return State{}, fmt.Errorf("unsupported state format: %s", format)
	}
	return st, nil
}

// Save writes st as a versioned bundle, JSON or YAML by extension.
func Save(path string, st State) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return Encode(f, "yaml", st)
	case ".json":
		return Encode(f, "json", st)
	default:
		return fmt.Errorf("unsupported state format: %s", ext)
	}
}

// Encode writes st to w as a versioned bundle in the given format.
func Encode(w io.Writer, format string, st State) error {
	bundle := Bundle{Version: BundleVersion, ExportedAt: time.Now().UTC(), Data: st}
	switch strings.ToLower(format) {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(bundle)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(bundle)
	default:
		return fmt.Errorf("unsupported state format: %s", format)
	}
}
