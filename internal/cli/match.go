package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	slogctx "github.com/veqryn/slog-context"

	"github.com/Sriram-PR/go-wildpat"
)

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match TEMPLATE VALUE",
		Short: "Print the value every marker of TEMPLATE stands for in VALUE",
		Example: `  wildpat match "/tmp/*.log" /tmp/service.log
  wildpat match -m % "100%-%" 100ab-AB`,
		Args: cobra.ExactArgs(2),
		RunE: runMatch,
	}
	addPatternFlags(cmd)
	return cmd
}

func runMatch(cmd *cobra.Command, args []string) error {
	opts, err := patternOptions(cmd)
	if err != nil {
		return err
	}
	p := wildpat.CompileWithOptions(args[0], opts)

	capture, err := p.Capture(args[1])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	slogctx.FromCtx(ctx).DebugContext(ctx, "matched",
		slog.String("template", p.String()), slog.Int("markers", p.MarkerCount()), slog.Int("capture_len", capture.Len()))

	_, err = fmt.Fprintln(cmd.OutOrStdout(), capture.String())
	return err
}
