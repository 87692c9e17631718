package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	slogctx "github.com/veqryn/slog-context"

	"github.com/Sriram-PR/go-wildpat"
	"github.com/Sriram-PR/go-wildpat/internal/flags/log"
)

// preRunE installs the base logger, both as slog default and in the command context.
func preRunE(cmd *cobra.Command, _ []string) error {
	logger, err := log.GetBaseLogger(cmd)
	if err != nil {
		return fmt.Errorf("could not retrieve logger: %w", err)
	}
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(slogctx.NewCtx(ctx, logger))
	return nil
}

// patternOptions reads --marker and --max-output-len.
func patternOptions(cmd *cobra.Command) (wildpat.Options, error) {
	markerValue, err := cmd.Flags().GetString(MarkerFlag)
	if err != nil {
		return wildpat.Options{}, err
	}
	marker, err := wildpat.MarkerFromString(markerValue)
	if err != nil {
		return wildpat.Options{}, err
	}
	maxLen, err := cmd.Flags().GetInt(MaxOutputLenFlag)
	if err != nil {
		return wildpat.Options{}, err
	}
	return wildpat.Options{Marker: marker, MaxOutputLen: maxLen}, nil
}

func addPatternFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(MarkerFlag, "m", string(wildpat.DefaultMarker), "wildcard marker, a single byte")
	cmd.Flags().Int(MaxOutputLenFlag, wildpat.DefaultMaxOutputLen, "largest formatted output in bytes, -1 for no limit")
}

// loadConfig resolves the config from --config or the default location.
// A missing file at the default location yields an empty config.
func loadConfig(cmd *cobra.Command) (*wildpat.Config, error) {
	ctx := cmd.Context()
	path, err := cmd.Flags().GetString(ConfigFlag)
	if err != nil {
		return nil, err
	}

	if path == "" {
		if path, err = wildpat.DefaultConfigPath(); err != nil {
			return nil, err
		}
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			slogctx.FromCtx(ctx).DebugContext(ctx, "no configuration found", slog.String("path", path))
			return &wildpat.Config{}, nil
		}
	}

	slogctx.FromCtx(ctx).DebugContext(ctx, "loading configuration", slog.String("path", path))
	return wildpat.LoadConfig(ctx, path)
}

// loadSet builds the template set from the config plus name=template pairs.
func loadSet(cmd *cobra.Command, inline []string) (*wildpat.Set, error) {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	set, _, err := cfg.NewSet(ctx, func(w wildpat.ParseWarning) {
		slogctx.FromCtx(ctx).WarnContext(ctx, w.Message,
			slog.String("name", w.Name), slog.Int("line", w.Line), slog.String("text", w.Text))
	})
	if err != nil {
		return nil, fmt.Errorf("building template set: %w", err)
	}

	for _, t := range inline {
		name, template, ok := strings.Cut(t, "=")
		if !ok {
			name = t
			template = t
		}
		if err := set.Add(name, template); err != nil {
			return nil, err
		}
	}
	return set, nil
}
