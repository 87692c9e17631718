// Package cli implements the wildpat command line.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Sriram-PR/go-wildpat/internal/flags/log"
)

// Flag names shared by several sub-commands.
const (
	ConfigFlag       = "config"
	MarkerFlag       = "marker"
	MaxOutputLenFlag = "max-output-len"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := New().Execute(); err != nil {
		os.Exit(1)
	}
}

// New returns the root command with all sub-commands attached.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wildpat [sub-command]",
		Short: "Match and format strings against single-wildcard templates",
		Long: `wildpat aligns strings with templates such as "/tmp/*.log", where every
  marker occurrence stands for the same value, and builds strings from them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: preRunE,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
	}

	cmd.PersistentFlags().StringP(ConfigFlag, "c", "", `template set configuration (YAML or JSON path or URL); defaults to $WILDPAT_CONFIG or ~/.config/wildpat/config.yaml`)
	log.RegisterLoggingFlags(cmd.PersistentFlags())

	cmd.AddCommand(newMatchCmd())
	cmd.AddCommand(newFormatCmd())
	cmd.AddCommand(newProbeCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}
