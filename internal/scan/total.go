package scan

import (
	"fmt"

	"github.com/handiism/wav-duration/internal/model"
)

// Sum returns the total duration in seconds of the measured files.
// Failed files contribute nothing.
func Sum(files []*model.AudioFile) float64 {
	var total float64
	for _, f := range files {
		if f.Failed() {
			continue
		}
		total += f.Seconds
	}
	return total
}

// FormatTotal renders a total in seconds as the result line, in minutes
// with two decimals.
func FormatTotal(totalSeconds float64) string {
	return fmt.Sprintf("Total audio duration: %.2f minutes", totalSeconds/60)
}
