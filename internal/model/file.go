package model

import (
	"path/filepath"
	"time"
)

// AudioFile represents a single audio file found in the scanned directory.
//
// AudioFile holds the header fields needed to compute its duration:
//   - Frames and SampleRate, read from the container header
//   - Channels and BitDepth, kept for verbose reporting
//   - Seconds, computed as Frames / SampleRate when the file is created
//
// A file whose header could not be read has Err set and a zero duration.
// Use NewAudioFile and NewFailedAudioFile rather than building the struct
// by hand so Seconds stays consistent with the header fields.
type AudioFile struct {
	// Path is the full path of the file.
	Path string

	// Name is the base name of the file, used in messages.
	Name string

	// Frames is the total number of sample frames in the data chunk.
	Frames int

	// SampleRate is the number of frames per second.
	SampleRate int

	// Channels is the number of interleaved channels per frame.
	Channels int

	// BitDepth is the number of bits per sample.
	BitDepth int

	// Seconds is the playback duration in seconds.
	Seconds float64

	// Err is the reason the file could not be measured, or nil.
	Err error
}

// NewAudioFile creates an AudioFile from header fields and computes its duration.
//
// Parameters:
//   - path: full file path
//   - frames: total sample frame count
//   - sampleRate: frames per second (must be positive)
//   - channels, bitDepth: informational header fields
//
// A non-positive sampleRate yields a zero duration; callers are expected
// to reject such headers before building the file.
func NewAudioFile(path string, frames, sampleRate, channels, bitDepth int) *AudioFile {
	f := &AudioFile{
		Path:       path,
		Name:       filepath.Base(path),
		Frames:     frames,
		SampleRate: sampleRate,
		Channels:   channels,
		BitDepth:   bitDepth,
	}
	if sampleRate > 0 && frames > 0 {
		f.Seconds = float64(frames) / float64(sampleRate)
	}
	return f
}

// NewFailedAudioFile creates an AudioFile recording why it could not be measured.
func NewFailedAudioFile(path string, err error) *AudioFile {
	return &AudioFile{
		Path: path,
		Name: filepath.Base(path),
		Err:  err,
	}
}

// Failed reports whether the file could not be measured.
func (f *AudioFile) Failed() bool {
	return f.Err != nil
}

// Duration returns the playback duration as a time.Duration.
func (f *AudioFile) Duration() time.Duration {
	return time.Duration(f.Seconds * float64(time.Second))
}
