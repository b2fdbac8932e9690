// Package audio reads the metadata of WAV files.
//
// # Headers
//
// ReadHeader parses the RIFF/WAVE header of a file without decoding any
// audio samples:
//
//	h, err := audio.ReadHeader("/data/wavs/take1.wav")
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d frames @ %d Hz = %.2fs\n", h.Frames, h.SampleRate, h.Seconds())
//
// Integer PCM of any byte-aligned depth, IEEE float and WAVE_FORMAT_EXTENSIBLE
// headers are supported. Data chunks up to the 4 GiB RIFF limit are counted.
//
// # Errors
//
// Failures are returned as *FileError and classified by kind:
//   - ErrUnreadableFile: the file could not be opened
//   - ErrMalformedHeader: the header could not be parsed
//
// Use errors.Is to check the kind.
package audio
