package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/wav-duration/internal/config"
)

func TestParseSettings_Defaults(t *testing.T) {
	settings, err := parseSettings(nil)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSettings(), settings)
}

func TestParseSettings_Env(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WAVDUR_DIR", dir)
	t.Setenv("WAVDUR_EXT", ".wave")
	t.Setenv("WAVDUR_ON_ERROR", "skip")

	settings, err := parseSettings(nil)
	require.NoError(t, err)
	assert.Equal(t, dir, settings.Directory)
	assert.Equal(t, ".wave", settings.Extension)
	assert.Equal(t, config.PolicySkip, settings.OnError)
}

func TestParseSettings_PositionalDir(t *testing.T) {
	t.Setenv("WAVDUR_DIR", "/from/env")
	dir := filepath.Join(t.TempDir(), "takes")

	settings, err := parseSettings([]string{dir})
	require.NoError(t, err)
	assert.Equal(t, dir, settings.Directory)
}

func TestParseSettings_InvalidPolicy(t *testing.T) {
	_, err := parseSettings([]string{"--on-error", "retry"})
	assert.ErrorContains(t, err, "unknown error policy")
}

func TestParseSettings_Help(t *testing.T) {
	_, err := parseSettings([]string{"--help"})
	var flagsErr *flags.Error
	require.True(t, errors.As(err, &flagsErr))
	assert.Equal(t, flags.ErrHelp, flagsErr.Type)
}
