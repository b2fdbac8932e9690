package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"

	"github.com/handiism/wav-duration/internal/config"
	"github.com/handiism/wav-duration/internal/logging"
	"github.com/handiism/wav-duration/internal/scan"
)

// Options are read from flags first, then from WAVDUR_* environment
// variables, then from the settings file. Unset values keep the defaults.
type options struct {
	Dir       string `short:"d" long:"dir" env:"WAVDUR_DIR" description:"Directory to scan (default ./Data/wavs)"`
	Extension string `short:"e" long:"ext" env:"WAVDUR_EXT" description:"File name suffix to match (default .wav)"`
	OnError   string `long:"on-error" env:"WAVDUR_ON_ERROR" description:"What to do with unreadable or malformed files: abort or skip (default abort)"`
	Config    string `short:"c" long:"config" env:"WAVDUR_CONFIG" description:"Path to a JSON or YAML settings file"`
	Verbose   bool   `short:"v" long:"verbose" description:"Print per-file durations to stderr"`
	LogLevel  string `long:"log-level" env:"WAVDUR_LOG_LEVEL" description:"Diagnostic log level: debug, info, warn, error"`
	LogFormat string `long:"log-format" env:"WAVDUR_LOG_FORMAT" description:"Diagnostic log format: text, json"`

	Args struct {
		Dir string `positional-arg-name:"DIR"`
	} `positional-args:"yes"`
}

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "wavdur"
	parser.Usage = "[OPTIONS] [DIR]"

	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	settings, err := loadSettings(&opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if err := logging.Init(settings.Log, stderr); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	scanner := scan.NewScanner(settings, func(event scan.ProgressEvent) {
		prefix := ""
		switch event.Level {
		case scan.LevelError:
			// Reported once below.
			return
		case scan.LevelWarning:
			prefix = "⚠️  "
		case scan.LevelSuccess, scan.LevelInfo, scan.LevelVerbose:
			if !settings.Verbose {
				return
			}
			prefix = "   "
			if event.Level == scan.LevelSuccess {
				prefix = "✅ "
			}
		}
		fmt.Fprintln(stderr, prefix+event.Message)
	})

	summary, err := scanner.Scan(ctx, settings.Directory)
	if err != nil {
		if ctx.Err() != nil {
			fmt.Fprintln(stderr, "Interrupted, scan cancelled.")
			return 130
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, scan.FormatTotal(summary.TotalSeconds))
	return 0
}

// loadSettings merges the settings file with command line options.
func loadSettings(opts *options) (*config.Settings, error) {
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
	if opts.Verbose {
		settings.Verbose = true
	}
	if opts.LogLevel != "" {
		settings.Log.Level = opts.LogLevel
	}
	if opts.LogFormat != "" {
		settings.Log.Format = opts.LogFormat
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}
