// Package config provides configuration management for wav-duration.
//
// This package handles:
//   - Default configuration values
//   - Loading and saving settings from JSON or YAML files
//   - Parsing the error policy applied to unreadable or malformed files
//
// # Default Settings
//
// Use DefaultSettings() to get the defaults:
//
//	settings := config.DefaultSettings()
//	// Scans ./Data/wavs for *.wav files
//	// Aborts on the first unreadable or malformed file
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/wavdur.yaml")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Error Policy
//
//	settings.OnError = config.PolicySkip // skip bad files with a warning
package config
