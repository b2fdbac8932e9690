package audio_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/wav-duration/internal/audio"
	"github.com/handiism/wav-duration/internal/audio/audiotest"
)

func TestReadHeader(t *testing.T) {
	tests := []struct {
		name        string
		format      audiotest.Format
		wantSeconds float64
	}{
		{"one second mono", audiotest.Mono16(44100, 44100), 1},
		{"two seconds mono", audiotest.Mono16(88200, 44100), 2},
		{"stereo 48k", audiotest.Format{Frames: 24000, SampleRate: 48000, Channels: 2, BitDepth: 16}, 0.5},
		{"8-bit", audiotest.Format{Frames: 8000, SampleRate: 8000, Channels: 1, BitDepth: 8}, 1},
		{"24-bit stereo", audiotest.Format{Frames: 96000, SampleRate: 96000, Channels: 2, BitDepth: 24}, 1},
		{"32-bit mono", audiotest.Format{Frames: 44100, SampleRate: 44100, Channels: 1, BitDepth: 32}, 1},
		{"empty data chunk", audiotest.Mono16(0, 22050), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "fixture.wav")
			audiotest.WriteWAV(t, path, tt.format)

			h, err := audio.ReadHeader(path)
			require.NoError(t, err)
			assert.Equal(t, tt.format.Frames, h.Frames)
			assert.Equal(t, tt.format.SampleRate, h.SampleRate)
			assert.Equal(t, tt.format.Channels, h.Channels)
			assert.Equal(t, tt.format.BitDepth, h.BitDepth)
			assert.Equal(t, tt.wantSeconds, h.Seconds())
		})
	}
}

func TestReadHeader_LargeDataChunk(t *testing.T) {
	// 3 GiB of 16-bit stereo; only the header is written.
	format := audiotest.Format{Frames: 750_000_000, SampleRate: 44100, Channels: 2, BitDepth: 16}
	path := filepath.Join(t.TempDir(), "long.wav")
	audiotest.WriteFile(t, path, audiotest.Header(format))

	h, err := audio.ReadHeader(path)
	require.NoError(t, err)
	assert.Equal(t, 750_000_000, h.Frames)
	assert.InDelta(t, 17006.8, h.Seconds(), 0.1)
}

func TestReadHeader_Unreadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.wav")

	_, err := audio.ReadHeader(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, audio.ErrUnreadableFile)
	assert.NotErrorIs(t, err, audio.ErrMalformedHeader)

	var fe *audio.FileError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, path, fe.Path)
}

func TestReadHeader_Malformed(t *testing.T) {
	zeroRate := audiotest.Header(audiotest.Format{Frames: 10, SampleRate: 0, Channels: 1, BitDepth: 16})
	zeroChannels := audiotest.Header(audiotest.Format{Frames: 10, SampleRate: 44100, Channels: 0, BitDepth: 16})
	noData := audiotest.Header(audiotest.Mono16(10, 44100))[:36]
	adpcm := audiotest.Header(audiotest.Mono16(10, 44100))
	adpcm[20] = 0x02

	tests := []struct {
		name string
		data []byte
	}{
		{"plain text", []byte("this is not audio at all, just some text")},
		{"empty file", nil},
		{"truncated header", []byte("RIFF\x24\x00\x00\x00WA")},
		{"zero sample rate", zeroRate},
		{"zero channels", zeroChannels},
		{"no data chunk", noData},
		{"compressed format", adpcm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.wav")
			audiotest.WriteFile(t, path, tt.data)

			_, err := audio.ReadHeader(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, audio.ErrMalformedHeader)
			assert.Contains(t, err.Error(), path)
		})
	}
}
