package scan

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/handiism/wav-duration/internal/audio"
	"github.com/handiism/wav-duration/internal/config"
	ioutils "github.com/handiism/wav-duration/internal/io"
	"github.com/handiism/wav-duration/internal/model"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a scan progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Scanner sums the durations of the audio files in a directory.
type Scanner struct {
	settings *config.Settings

	totalFiles   int32
	scannedFiles int32

	onProgress func(ProgressEvent)
}

// NewScanner creates a new Scanner.
func NewScanner(settings *config.Settings, onProgress func(ProgressEvent)) *Scanner {
	if settings == nil {
		settings = config.DefaultSettings()
	}
	return &Scanner{
		settings:   settings,
		onProgress: onProgress,
	}
}

// Scan lists dir, reads the header of every file matching the configured
// extension and returns the accumulated Summary. An empty dir means the
// configured directory.
//
// Files are processed one at a time in name order. Each file is opened,
// read and closed before the next one. A missing directory fails before
// any file is read. A failing file either aborts the scan or is skipped,
// depending on the configured ErrorPolicy. Cancelling ctx stops the scan
// before listing or between files.
func (s *Scanner) Scan(ctx context.Context, dir string) (*model.Summary, error) {
	if dir == "" {
		dir = s.settings.Directory
	}
	ext := s.settings.Extension

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	paths, err := ioutils.ListFiles(dir, ext)
	if err != nil {
		s.progress(ProgressEvent{Message: fmt.Sprintf("Cannot scan %s: %v", dir, err), Level: LevelError})
		return nil, err
	}

	atomic.StoreInt32(&s.totalFiles, int32(len(paths)))
	atomic.StoreInt32(&s.scannedFiles, 0)
	s.progress(ProgressEvent{Message: fmt.Sprintf("Found %d %s file(s) in %s", len(paths), ext, dir), Level: LevelInfo})

	summary := model.NewSummary(dir, ext)
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		file, err := s.measure(path)
		if err != nil {
			if s.settings.OnError != config.PolicySkip {
				s.progress(ProgressEvent{Message: err.Error(), Level: LevelError})
				return nil, err
			}
			slog.Warn("skipping file", "path", path, "error", err)
			s.progress(ProgressEvent{Message: fmt.Sprintf("Skipping %s", err), Level: LevelWarning})
			file = model.NewFailedAudioFile(path, err)
		}

		summary.Add(file)
		atomic.AddInt32(&s.scannedFiles, 1)
	}

	if len(summary.Skipped) > 0 {
		s.progress(ProgressEvent{Message: fmt.Sprintf("Measured %d file(s), skipped %d", summary.Count(), len(summary.Skipped)), Level: LevelWarning})
	} else {
		s.progress(ProgressEvent{Message: fmt.Sprintf("Measured %d file(s)", summary.Count()), Level: LevelSuccess})
	}

	return summary, nil
}

// Progress returns how many files have been processed out of how many were listed.
func (s *Scanner) Progress() (scanned, total int32) {
	return atomic.LoadInt32(&s.scannedFiles), atomic.LoadInt32(&s.totalFiles)
}

func (s *Scanner) measure(path string) (*model.AudioFile, error) {
	h, err := audio.ReadHeader(path)
	if err != nil {
		return nil, err
	}

	file := model.NewAudioFile(path, h.Frames, h.SampleRate, h.Channels, h.BitDepth)
	slog.Debug("read header", "path", path, "frames", h.Frames, "rate", h.SampleRate, "seconds", file.Seconds)
	s.progress(ProgressEvent{
		Message: fmt.Sprintf("%s: %.2fs (%d frames @ %d Hz)", file.Name, file.Seconds, file.Frames, file.SampleRate),
		Level:   LevelVerbose,
	})
	return file, nil
}

func (s *Scanner) progress(event ProgressEvent) {
	if s.onProgress != nil {
		s.onProgress(event)
	}
}
