// Package ioutils provides file system utilities.
//
// # Directory Checks
//
// EnsureDir reports ErrDirectoryNotFound for a missing path or a path
// that is not a directory:
//
//	if err := ioutils.EnsureDir("./Data/wavs"); errors.Is(err, ioutils.ErrDirectoryNotFound) {
//	    // fatal: nothing to scan
//	}
//
// # Listing
//
// ListFiles returns the top-level files of a directory that end with an
// extension, sorted by name:
//
//	paths, err := ioutils.ListFiles("./Data/wavs", ".wav")
package ioutils
