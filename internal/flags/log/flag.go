// Package log configures the CLI's slog logger from command-line flags.
// It supports JSON and text formats, four levels, and stdout or stderr output.
package log

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Sriram-PR/go-wildpat/internal/flags/enum"
)

// Log format constants
const (
	FormatFlagName = "logformat"

	FormatJSON = "json"
	FormatText = "text"
)

// Log level constants
const (
	LevelFlagName = "loglevel"

	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Log output constants
const (
	OutputFlagName = "logoutput"

	OutputStdout = "stdout"
	OutputStderr = "stderr"
)

// RegisterLoggingFlags registers FormatFlagName, LevelFlagName and
// OutputFlagName on flagset.
//
// Usage examples:
//
//	--logformat json     # Output logs in JSON format
//	--loglevel debug     # Show all logs including prefilter decisions
//	--logoutput stdout   # Write logs to standard output
func RegisterLoggingFlags(flagset *pflag.FlagSet) {
	enum.Var(flagset, FormatFlagName, []string{
		FormatText,
		FormatJSON,
	}, `set the log output format`)

	enum.Var(flagset, LevelFlagName, []string{
		LevelWarn,
		LevelDebug,
		LevelInfo,
		LevelError,
	}, `sets the logging level`)

	// Logs default to stderr so they never mix with match and format results.
	enum.Var(flagset, OutputFlagName, []string{
		OutputStderr,
		OutputStdout,
	}, `set the log output destination`)
}

// GetBaseLogger creates a slog.Logger from the command's logging flags.
func GetBaseLogger(cmd *cobra.Command) (*slog.Logger, error) {
	level, err := loggerLevelFromCommand(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to get log level: %w", err)
	}

	format, err := enum.Get(cmd.Flags(), FormatFlagName)
	if err != nil {
		return nil, fmt.Errorf("failed to get the log format from the command flag: %w", err)
	}

	output, err := enum.Get(cmd.Flags(), OutputFlagName)
	if err != nil {
		return nil, fmt.Errorf("failed to get the log output from the command flag: %w", err)
	}

	var w io.Writer
	switch output {
	case OutputStdout:
		w = cmd.OutOrStdout()
	case OutputStderr:
		w = cmd.ErrOrStderr()
	default:
		return nil, fmt.Errorf("invalid log output: %s", output)
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	case FormatText:
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	return slog.New(handler), nil
}

func loggerLevelFromCommand(cmd *cobra.Command) (slog.Level, error) {
	logLevel, err := enum.Get(cmd.Flags(), LevelFlagName)
	if err != nil {
		return slog.LevelWarn, err
	}
	switch logLevel {
	case LevelDebug:
		return slog.LevelDebug, nil
	case LevelInfo:
		return slog.LevelInfo, nil
	case LevelWarn:
		return slog.LevelWarn, nil
	case LevelError:
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("invalid log level: %s", logLevel)
	}
}
