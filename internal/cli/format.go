package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sriram-PR/go-wildpat"
)

func newFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format TEMPLATE VALUE",
		Short: "Substitute VALUE into every marker of TEMPLATE",
		Example: `  wildpat format "/tmp/*.log" service
  wildpat format "x*y" ""`,
		Args: cobra.ExactArgs(2),
		RunE: runFormat,
	}
	addPatternFlags(cmd)
	return cmd
}

func runFormat(cmd *cobra.Command, args []string) error {
	opts, err := patternOptions(cmd)
	if err != nil {
		return err
	}
	out, err := wildpat.CompileWithOptions(args[0], opts).Format(args[1])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
