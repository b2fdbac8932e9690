package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrorPolicy decides what happens when a matching file cannot be measured.
type ErrorPolicy string

const (
	// PolicyAbort stops the scan at the first failing file. No total is reported.
	PolicyAbort ErrorPolicy = "abort"

	// PolicySkip records the failing file, emits a warning and continues.
	PolicySkip ErrorPolicy = "skip"
)

// ParseErrorPolicy converts a string to an ErrorPolicy.
// Matching is case-insensitive; an empty string means PolicyAbort.
func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(PolicyAbort):
		return PolicyAbort, nil
	case string(PolicySkip):
		return PolicySkip, nil
	default:
		return "", fmt.Errorf("unknown error policy %q (want %q or %q)", s, PolicyAbort, PolicySkip)
	}
}

// LogSettings holds diagnostic logging options.
type LogSettings struct {
	Level  string `json:"level" yaml:"level"`   // debug, info, warn, error
	Format string `json:"format" yaml:"format"` // text, json
}

// Settings holds all configuration options.
type Settings struct {
	// Scan settings
	Directory string      `json:"directory" yaml:"directory"`
	Extension string      `json:"extension" yaml:"extension"`
	OnError   ErrorPolicy `json:"on_error" yaml:"on_error"`

	// Output settings
	Verbose bool        `json:"verbose" yaml:"verbose"`
	Log     LogSettings `json:"log" yaml:"log"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		Directory: filepath.Join(".", "Data", "wavs"),
		Extension: ".wav",
		OnError:   PolicyAbort,

		Verbose: false,
		Log: LogSettings{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load reads settings from a JSON or YAML file.
//
// Files ending in .yaml or .yml are parsed as YAML, anything else as JSON.
// A missing file yields the defaults. Fields absent from the file keep
// their default values.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if isYAML(path) {
		err = yaml.Unmarshal(data, settings)
	} else {
		err = json.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a JSON or YAML file, chosen by extension.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks that the settings can drive a scan.
// It normalizes OnError in place.
func (s *Settings) Validate() error {
	if s.Directory == "" {
		return fmt.Errorf("directory must not be empty")
	}
	policy, err := ParseErrorPolicy(string(s.OnError))
	if err != nil {
		return err
	}
	s.OnError = policy
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
