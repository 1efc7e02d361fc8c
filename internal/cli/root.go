package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	str2duration "github.com/xhit/go-str2duration/v2"

	"github.com/lucrnz/humandur/internal/config"
	"github.com/lucrnz/humandur/internal/logging"
	"github.com/lucrnz/humandur/internal/version"
	"github.com/lucrnz/humandur/pkg/humandur"
)

var (
	format     string
	syntax     string
	configPath string
	logLevel   string
	logFormat  string
)

var rootCmd = &cobra.Command{
	Use:   "humandur [duration]...",
	Short: "Convert human-readable durations into seconds",
	Long: `humandur

Converts short duration strings like "1h 1m 1s" into a total second count.
Recognized units: d (days), h (hours), m (minutes), s (seconds). Repeated
units accumulate and order does not matter. Pass "-" as the only argument
to read the input from stdin.

Copyright (c) 2025 Luciano Hillcoat.
This program is open-source and warranty-free.
`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    run,
	Version: version.Print(),
}

func init() {
	rootCmd.Flags().StringVarP(&format, "format", "f", "", `Output format: "seconds" (raw integer), "pretty" (grouped digits) or "go" (time.Duration notation)`)
	rootCmd.Flags().StringVarP(&syntax, "syntax", "s", "", `Input syntax: "human" (1h 1m 1s) or "go" (1h30m, time.ParseDuration style)`)
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a TOML defaults file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&logFormat, "log-format", "", "Log format: text or json")

	// Silence usage output for runtime errors, but show it for flag errors
	// SilenceErrors is true so we can control error output format in main()
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	// Show usage only when there's a flag parsing error
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		_ = cmd.Usage()
		return err
	})
}

// ExecuteContext runs the root command
func ExecuteContext(ctx context.Context) error {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Show usage for argument count errors (not caught by SetFlagErrorFunc)
		if strings.Contains(err.Error(), "requires at least") {
			_ = rootCmd.Usage()
		}
		return err
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Flags win over config file values
	outFormat := format
	if outFormat == "" {
		outFormat = cfg.Format
	}
	inSyntax := syntax
	if inSyntax == "" {
		inSyntax = cfg.Syntax
	}
	level := logLevel
	if level == "" {
		level = cfg.LogLevel
	}
	lformat := logFormat
	if lformat == "" {
		lformat = cfg.LogFormat
	}

	logger, err := logging.New(level, lformat)
	if err != nil {
		return err
	}

	input := strings.Join(args, " ")
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		input = string(data)
	}

	logger.Debug("parsing", "input", input, "syntax", inSyntax)

	secs, err := parseInput(input, inSyntax)
	if err != nil {
		return fmt.Errorf("cannot parse %q: %w", input, err)
	}

	out, err := render(secs, outFormat)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// parseInput converts the input into total seconds using the selected
// syntax. The "go" syntax exists for callers migrating inputs that were
// written for time.ParseDuration; sub-second remainders are truncated.
func parseInput(input, syntax string) (uint64, error) {
	switch syntax {
	case "", "human":
		return humandur.ParseSeconds(input)
	case "go":
		d, err := str2duration.ParseDuration(strings.TrimSpace(input))
		if err != nil {
			return 0, err
		}
		if d < 0 {
			return 0, errors.New("negative durations are not supported")
		}
		return uint64(d / time.Second), nil
	default:
		return 0, fmt.Errorf("unknown syntax %q (expected human or go)", syntax)
	}
}

func render(secs uint64, format string) (string, error) {
	switch format {
	case "", "seconds":
		return strconv.FormatUint(secs, 10), nil
	case "pretty":
		return humanize.Comma(int64(secs)), nil
	case "go":
		return humandur.FromSeconds(secs).String(), nil
	default:
		return "", fmt.Errorf("unknown format %q (expected seconds, pretty or go)", format)
	}
}

// loadConfig resolves the defaults file. A missing file is only an error
// when --config named it explicitly.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}

	path, err := config.DefaultPath()
	if err != nil {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config.DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}
