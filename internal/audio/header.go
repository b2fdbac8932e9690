package audio

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/wav"
)

// WAVE format tags accepted as uncompressed audio.
const (
	formatPCM        = 0x0001
	formatFloat      = 0x0003
	formatExtensible = 0xFFFE
)

var (
	// ErrUnreadableFile is returned when a matching file cannot be opened.
	ErrUnreadableFile = errors.New("unreadable file")

	// ErrMalformedHeader is returned when a file's header cannot be parsed
	// as a RIFF/WAVE container or carries impossible values.
	ErrMalformedHeader = errors.New("malformed header")
)

// FileError describes why a single file could not be measured.
//
// Kind is one of ErrUnreadableFile or ErrMalformedHeader, Err is the
// underlying cause. Both are reachable with errors.Is:
//
//	_, err := ReadHeader(path)
//	if errors.Is(err, ErrMalformedHeader) {
//	    // not a WAV file
//	}
type FileError struct {
	Path string
	Kind error
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Path, e.Kind, e.Err)
}

func (e *FileError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// Header holds the fields of a WAV header needed to compute a duration.
type Header struct {
	// Frames is the number of sample frames in the data chunk.
	Frames int

	// SampleRate is the number of frames per second.
	SampleRate int

	// Channels is the number of interleaved channels.
	Channels int

	// BitDepth is the number of bits per sample.
	BitDepth int
}

// Seconds returns Frames / SampleRate as a floating-point duration in seconds.
func (h *Header) Seconds() float64 {
	return float64(h.Frames) / float64(h.SampleRate)
}

// ReadHeader opens the file at path and reads its WAV header.
//
// Only the header is parsed; no audio samples are decoded. The file handle
// is released before ReadHeader returns, on success and on failure.
//
// Returns a *FileError whose Kind is:
//   - ErrUnreadableFile if the file cannot be opened
//   - ErrMalformedHeader if the header is not an uncompressed RIFF/WAVE
//     header, declares a zero sample rate or frame size, or has no data chunk
func ReadHeader(path string) (*Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Path: path, Kind: ErrUnreadableFile, Err: err}
	}
	defer f.Close()

	h, err := decodeHeader(f)
	if err != nil {
		return nil, &FileError{Path: path, Kind: ErrMalformedHeader, Err: err}
	}
	return h, nil
}

// decodeHeader parses the fmt chunk and locates the data chunk without
// reading any samples. Frames is the data chunk size divided by the frame
// size, where the frame size rounds each sample up to whole bytes.
func decodeHeader(f *os.File) (*Header, error) {
	d := wav.NewDecoder(f)
	d.ReadInfo()
	if err := d.Err(); err != nil {
		return nil, err
	}

	switch d.WavAudioFormat {
	case formatPCM, formatFloat, formatExtensible:
	default:
		return nil, fmt.Errorf("unsupported audio format %d", d.WavAudioFormat)
	}
	if d.SampleRate == 0 {
		return nil, fmt.Errorf("invalid sample rate %d", d.SampleRate)
	}
	if d.NumChans == 0 || d.BitDepth == 0 {
		return nil, fmt.Errorf("invalid frame layout: %d channel(s) of %d bit(s)", d.NumChans, d.BitDepth)
	}

	if err := d.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("locating data chunk: %w", err)
	}

	frameSize := int64(d.NumChans) * int64((d.BitDepth+7)/8)
	return &Header{
		Frames:     int(int64(d.PCMSize) / frameSize),
		SampleRate: int(d.SampleRate),
		Channels:   int(d.NumChans),
		BitDepth:   int(d.BitDepth),
	}, nil
}
