// Package ioutils provides file system utilities for wav-duration.
//
// This package contains functions for:
//   - Checking that the scanned directory exists
//   - Listing the files of a directory that match an extension
package ioutils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrDirectoryNotFound is returned when the configured path does not exist
// or is not a directory.
var ErrDirectoryNotFound = errors.New("directory not found")

// EnsureDir checks that path exists and is a directory.
//
// Returns an error wrapping ErrDirectoryNotFound if the path is missing or
// points at something other than a directory. Other stat failures (for
// example permission errors) are returned as they are.
func EnsureDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrDirectoryNotFound, path)
		}
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrDirectoryNotFound, path)
	}
	return nil
}

// ListFiles returns the paths of the entries in dir whose name ends with ext.
//
// Only the top level of dir is listed; subdirectories are neither descended
// into nor returned, even when their name ends with ext. The suffix match is
// case-sensitive. An empty ext matches every file.
//
// Paths are returned joined with dir and sorted by file name.
//
// Example:
//
//	paths, err := ListFiles("./Data/wavs", ".wav")
//	// ["Data/wavs/001.wav", "Data/wavs/002.wav"]
func ListFiles(dir, ext string) ([]string, error) {
	if err := EnsureDir(dir); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}

	return paths, nil
}
