// Package audiotest writes WAV fixtures for tests.
package audiotest

import (
	"bytes"
	"encoding/binary"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// Format describes the header of a generated WAV file.
type Format struct {
	Frames     int
	SampleRate int
	Channels   int
	BitDepth   int
}

// Mono16 returns a 16-bit mono Format.
func Mono16(frames, sampleRate int) Format {
	return Format{Frames: frames, SampleRate: sampleRate, Channels: 1, BitDepth: 16}
}

// Header returns a canonical 44-byte PCM header for s.
func Header(s Format) []byte {
	blockAlign := s.Channels * s.BitDepth / 8
	dataSize := s.Frames * blockAlign

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	binary.Write(&buf, binary.LittleEndian, uint16(s.Channels))
	binary.Write(&buf, binary.LittleEndian, uint32(s.SampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(s.SampleRate*blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(s.BitDepth))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataSize))
	return buf.Bytes()
}

// WriteWAV writes a silent WAV file described by s to path.
//
// The data chunk is zero-filled by extending the file, so large frame
// counts stay cheap.
func WriteWAV(t testing.TB, path string, s Format) {
	t.Helper()

	header := Header(s)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	_, err = f.Write(header)
	require.NoError(t, err)

	dataSize := int64(s.Frames * s.Channels * s.BitDepth / 8)
	require.NoError(t, f.Truncate(int64(len(header))+dataSize))
}

// WriteFile writes raw bytes to path, for malformed fixtures.
func WriteFile(t testing.TB, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, data, 0644))
}
