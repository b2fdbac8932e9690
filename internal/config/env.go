package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// LoadEnv loads WAVDUR_* variables from the given .env files, or from .env
// in the working directory when none are given. Variables already set in
// the environment win. Missing files are ignored.
func LoadEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
