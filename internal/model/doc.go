// Package model defines the data structures shared by the scanner, the
// CLI and the TUI.
//
// # AudioFile
//
// AudioFile is the result of reading one file's header. It either carries
// a duration or the reason it could not be measured:
//
//	f := model.NewAudioFile("/data/wavs/take1.wav", 44100, 44100, 1, 16)
//	fmt.Println(f.Seconds) // 1
//
//	bad := model.NewFailedAudioFile("/data/wavs/broken.wav", err)
//	fmt.Println(bad.Failed()) // true
//
// # Summary
//
// Summary is the running total for one directory:
//
//	s := model.NewSummary("/data/wavs", ".wav")
//	s.Add(f)
//	fmt.Printf("%.2f\n", s.Minutes())
//
// The total only ever grows, and always equals the sum of the durations
// of the files it was given.
package model
