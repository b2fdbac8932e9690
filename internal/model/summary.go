package model

import (
	"time"

	"github.com/hashicorp/go-multierror"
)

// Summary is the result of scanning one directory.
//
// Summary owns the running total. It starts at zero and is only increased
// through Add, so the total is non-negative and never decreases while
// files are processed.
//
// Example:
//
//	s := NewSummary("./Data/wavs", ".wav")
//	s.Add(NewAudioFile("a.wav", 44100, 44100, 1, 16))
//	s.Add(NewAudioFile("b.wav", 88200, 44100, 1, 16))
//	// s.TotalSeconds = 3, s.Minutes() = 0.05
type Summary struct {
	// Directory is the scanned directory.
	Directory string

	// Extension is the file name suffix that selected the files.
	Extension string

	// Files contains every successfully measured file, in scan order.
	Files []*AudioFile

	// Skipped contains files that failed and were skipped by policy.
	Skipped []*AudioFile

	// TotalSeconds is the sum of Files[i].Seconds.
	TotalSeconds float64
}

// NewSummary creates an empty Summary for a directory.
func NewSummary(directory, extension string) *Summary {
	return &Summary{
		Directory: directory,
		Extension: extension,
	}
}

// Add records a file. Failed files go to Skipped and do not touch the total.
func (s *Summary) Add(f *AudioFile) {
	if f.Failed() {
		s.Skipped = append(s.Skipped, f)
		return
	}
	s.Files = append(s.Files, f)
	if f.Seconds > 0 {
		s.TotalSeconds += f.Seconds
	}
}

// Minutes returns the total duration in minutes.
func (s *Summary) Minutes() float64 {
	return s.TotalSeconds / 60
}

// Duration returns the total duration as a time.Duration.
func (s *Summary) Duration() time.Duration {
	return time.Duration(s.TotalSeconds * float64(time.Second))
}

// Count returns the number of files that contributed to the total.
func (s *Summary) Count() int {
	return len(s.Files)
}

// Err returns the errors of all skipped files combined, or nil when
// nothing was skipped.
func (s *Summary) Err() error {
	var result *multierror.Error
	for _, f := range s.Skipped {
		result = multierror.Append(result, f.Err)
	}
	return result.ErrorOrNil()
}
