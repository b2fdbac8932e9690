package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, filepath.Join("Data", "wavs"), filepath.Clean(s.Directory))
	assert.Equal(t, ".wav", s.Extension)
	assert.Equal(t, PolicyAbort, s.OnError)
	assert.NoError(t, s.Validate())
}

func TestParseErrorPolicy(t *testing.T) {
	tests := []struct {
		input   string
		want    ErrorPolicy
		wantErr bool
	}{
		{"", PolicyAbort, false},
		{"abort", PolicyAbort, false},
		{"SKIP", PolicySkip, false},
		{" skip ", PolicySkip, false},
		{"retry", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseErrorPolicy(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoad_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wavdur.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"directory": "/srv/audio", "on_error": "skip"}`), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/audio", s.Directory)
	assert.Equal(t, PolicySkip, s.OnError)
	assert.Equal(t, ".wav", s.Extension, "unset fields keep defaults")
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wavdur.yaml")
	content := "directory: /srv/audio\nextension: .wave\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/audio", s.Directory)
	assert.Equal(t, ".wave", s.Extension)
	assert.Equal(t, "debug", s.Log.Level)
	assert.Equal(t, "text", s.Log.Format)
	assert.Equal(t, PolicyAbort, s.OnError)
}

func TestLoad_InvalidPolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wavdur.yml")
	require.NoError(t, os.WriteFile(path, []byte("on_error: retry\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveAndLoad(t *testing.T) {
	for _, name := range []string{"settings.json", "settings.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			s := DefaultSettings()
			s.Directory = "/music/wavs"
			s.OnError = PolicySkip
			s.Verbose = true

			require.NoError(t, s.Save(path))

			loaded, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, s, loaded)
		})
	}
}
