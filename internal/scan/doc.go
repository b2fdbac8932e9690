// Package scan provides the duration accumulator for a directory of WAV
// files.
//
// # Scanner
//
// The Scanner drives a single pass over a directory:
//
//  1. List the files ending with the configured extension
//  2. Read each file's header (frame count and sample rate)
//  3. Add frames / rate to the running total
//  4. Return the Summary
//
// # Basic Usage
//
//	scanner := scan.NewScanner(settings, func(event scan.ProgressEvent) {
//	    fmt.Fprintln(os.Stderr, event.Message)
//	})
//
//	summary, err := scanner.Scan(ctx, "./Data/wavs")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(scan.FormatTotal(summary.TotalSeconds))
//
// # Error Policy
//
// settings.OnError selects what happens when a file cannot be opened or
// its header cannot be parsed:
//   - config.PolicyAbort: the scan stops and returns the error
//   - config.PolicySkip: the file is recorded in Summary.Skipped and the
//     scan continues
//
// A missing directory always fails before any file is read.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent.
// Per-file durations are sent with LevelVerbose. Pollers can read counters
// with Scanner.Progress.
package scan
