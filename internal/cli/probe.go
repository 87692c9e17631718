package cli

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"sigs.k8s.io/yaml"

	"github.com/Sriram-PR/go-wildpat"
	"github.com/Sriram-PR/go-wildpat/internal/flags/enum"
)

const (
	OutputFlag      = "output"
	TemplateFlag    = "template"
	AllFlag         = "all"
	StrictFlag      = "strict"
	ConcurrencyFlag = "concurrency"

	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// errUnmatched is returned with --strict when some value matched no template.
var errUnmatched = errors.New("some values matched no template")

// probeRow is one line of probe output.
type probeRow struct {
	Value    string `json:"value"`
	Matched  bool   `json:"matched"`
	Name     string `json:"name,omitempty"`
	Template string `json:"template,omitempty"`
	Capture  string `json:"capture,omitempty"`
	Captured bool   `json:"captured,omitempty"`
}

func newProbeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe [VALUE...]",
		Short: "Find which configured template each value matches",
		Long: `Probe every VALUE, or every line of standard input when no value is given,
against the configured template set. The first matching template wins unless
--all is set.`,
		Example: `  wildpat probe -t logs=/tmp/*.log -t cfg=/etc/*.conf /tmp/api.log /etc/api.conf
  ls /tmp | wildpat probe -c templates.yaml -o json`,
		RunE: runProbe,
	}
	enum.VarP(cmd.Flags(), OutputFlag, "o", []string{OutputTable, OutputJSON, OutputYAML}, "output format")
	cmd.Flags().StringArrayP(TemplateFlag, "t", nil, "additional template as name=template (repeatable)")
	cmd.Flags().Bool(AllFlag, false, "report every matching template, not just the first")
	cmd.Flags().Bool(StrictFlag, false, "fail if any value matches no template")
	cmd.Flags().Int(ConcurrencyFlag, runtime.NumCPU(), "number of values probed in parallel")
	return cmd
}

func runProbe(cmd *cobra.Command, args []string) error {
	inline, err := cmd.Flags().GetStringArray(TemplateFlag)
	if err != nil {
		return err
	}
	all, err := cmd.Flags().GetBool(AllFlag)
	if err != nil {
		return err
	}
	strict, err := cmd.Flags().GetBool(StrictFlag)
	if err != nil {
		return err
	}
	concurrency, err := cmd.Flags().GetInt(ConcurrencyFlag)
	if err != nil {
		return err
	}
	output, err := enum.Get(cmd.Flags(), OutputFlag)
	if err != nil {
		return err
	}

	set, err := loadSet(cmd, inline)
	if err != nil {
		return err
	}
	if set.Len() == 0 {
		return fmt.Errorf("no templates configured: use --%s or --%s", ConfigFlag, TemplateFlag)
	}

	values := args
	if len(values) == 0 {
		if values, err = readLines(cmd.InOrStdin()); err != nil {
			return fmt.Errorf("reading values: %w", err)
		}
	}

	rows, err := probeValues(cmd, set, values, all, concurrency)
	if err != nil {
		return err
	}

	data, err := encodeRows(output, rows)
	if err != nil {
		return err
	}
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return err
	}

	if strict {
		for _, r := range rows {
			if !r.Matched {
				return errUnmatched
			}
		}
	}
	return nil
}

// probeValues probes values concurrently and returns rows in input order.
func probeValues(cmd *cobra.Command, set *wildpat.Set, values []string, all bool, concurrency int) ([]probeRow, error) {
	perValue := make([][]probeRow, len(values))

	eg, ctx := errgroup.WithContext(cmd.Context())
	if concurrency > 0 {
		eg.SetLimit(concurrency)
	}
	for i, value := range values {
		i, value := i, value
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var results []wildpat.SetResult
			if all {
				results = set.ProbeAll(ctx, value)
			} else if r := set.Probe(ctx, value); r.Matched {
				results = []wildpat.SetResult{r}
			}
			perValue[i] = rowsFor(value, results)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var rows []probeRow
	for _, r := range perValue {
		rows = append(rows, r...)
	}
	return rows, nil
}

func rowsFor(value string, results []wildpat.SetResult) []probeRow {
	if len(results) == 0 {
		return []probeRow{{Value: value}}
	}
	rows := make([]probeRow, len(results))
	for i, r := range results {
		rows[i] = probeRow{
			Value:    value,
			Matched:  true,
			Name:     r.Name,
			Template: r.Template,
			Capture:  r.Capture.String(),
			Captured: r.Captured,
		}
	}
	return rows
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

func encodeRows(output string, rows []probeRow) ([]byte, error) {
	switch output {
	case OutputJSON:
		return encodeRowsAsNDJSON(rows)
	case OutputYAML:
		return yaml.Marshal(rows)
	case OutputTable:
		return encodeRowsAsTable(rows), nil
	default:
		return nil, fmt.Errorf("unknown output format: %q", output)
	}
}

func encodeRowsAsNDJSON(rows []probeRow) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	for _, r := range rows {
		if err := encoder.Encode(r); err != nil {
			return nil, fmt.Errorf("encoding probe result failed: %w", err)
		}
	}
	return buf.Bytes(), nil
}

func encodeRowsAsTable(rows []probeRow) []byte {
	var buf bytes.Buffer
	t := table.NewWriter()
	t.SetOutputMirror(&buf)
	t.AppendHeader(table.Row{"Value", "Name", "Template", "Capture"})
	for _, r := range rows {
		if !r.Matched {
			t.AppendRow(table.Row{r.Value, "-", "-", "-"})
			continue
		}
		t.AppendRow(table.Row{r.Value, r.Name, r.Template, r.Capture})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return buf.Bytes()
}
