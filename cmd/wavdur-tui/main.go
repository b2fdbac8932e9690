package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/handiism/wav-duration/internal/config"
	"github.com/handiism/wav-duration/internal/logging"
	"github.com/handiism/wav-duration/internal/tui"
)

type options struct {
	Dir       string `short:"d" long:"dir" env:"WAVDUR_DIR" description:"Directory to scan (default ./Data/wavs)"`
	Extension string `short:"e" long:"ext" env:"WAVDUR_EXT" description:"File name suffix to match (default .wav)"`
	OnError   string `long:"on-error" env:"WAVDUR_ON_ERROR" description:"What to do with unreadable or malformed files: abort or skip (default abort)"`
	Config    string `short:"c" long:"config" env:"WAVDUR_CONFIG" description:"Path to a JSON or YAML settings file"`

	Args struct {
		Dir string `positional-arg-name:"DIR"`
	} `positional-args:"yes"`
}

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
		os.Exit(1)
	}

	settings, err := parseSettings(os.Args[1:])
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) {
			if flagsErr.Type == flags.ErrHelp {
				fmt.Println(err)
				os.Exit(0)
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The alt screen owns the terminal; diagnostics would corrupt it.
	if err := logging.Init(settings.Log, io.Discard); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseSettings resolves settings the same way wavdur does: the settings
// file first, then WAVDUR_* variables and flags.
func parseSettings(args []string) (*config.Settings, error) {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "wavdur-tui"
	parser.Usage = "[OPTIONS] [DIR]"
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}

	settings := config.DefaultSettings()
	if opts.Config != "" {
		var err error
		settings, err = config.Load(opts.Config)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	switch {
	case opts.Args.Dir != "":
		settings.Directory = opts.Args.Dir
	case opts.Dir != "":
		settings.Directory = opts.Dir
	}
	if opts.Extension != "" {
		settings.Extension = opts.Extension
	}
	if opts.OnError != "" {
		settings.OnError = config.ErrorPolicy(opts.OnError)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}
