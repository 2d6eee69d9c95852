package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/surveyspace/dataset"
	"github.com/katalvlaran/surveyspace/engine"
)

func newInspectCmd(a *app) *cobra.Command {
	var labels bool

	cmd := &cobra.Command{
		Use:   "inspect [BASE...]",
		Short: "Summarize questions as a table",
		Long: `Print one row per question: answer columns, projection method,
chosen global k, distinct answer patterns, jitter and group count.

With --labels, every question is followed by its wording, its answer
columns with their display labels, and its option codes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, closer, err := a.engine(cmd.Context())
			if err != nil {
				return err
			}
			defer closer()

			scenes, runErr := e.Precompute(cmd.Context(), args, a.embedMode())

			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "BASE\tD\tMETHOD\tK\tDISTINCT\tJITTER_SD\tGROUPS\tPOINTS")
			for _, sc := range scenes {
				if sc == nil {
					continue
				}
				fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%d\t%.1f\t%d\t%d\n",
					sc.Base, sc.Meta.Columns, sc.Method, sc.Global.K, sc.Meta.Distinct,
					sc.Meta.JitterSD, len(sc.Groups), len(sc.Points))
			}
			if err = tw.Flush(); err != nil {
				return err
			}

			if labels {
				if err = writeLabels(a.out, e.Manifest(), scenes); err != nil {
					return err
				}
			}

			return runErr
		},
	}
	cmd.Flags().BoolVar(&labels, "labels", false, "Also list question wording, column labels and option codes")

	return cmd
}

// writeLabels prints the manifest text of every built scene.
func writeLabels(w io.Writer, m *dataset.Manifest, scenes []*engine.Scene) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, sc := range scenes {
		if sc == nil {
			continue
		}
		q, err := m.Question(sc.Base)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "\n%s\t%s\n", q.Base, q.QuestionFull)
		for _, col := range q.Columns {
			fmt.Fprintf(tw, "  %s\t%s\n", col, m.ColumnLabel(col))
		}

		opts := q.Options()
		if len(opts) == 0 {
			continue
		}
		codes := make([]string, 0, len(opts))
		for c := range opts {
			codes = append(codes, c)
		}
		sort.Strings(codes)
		parts := make([]string, len(codes))
		for i, c := range codes {
			parts[i] = c + "=" + opts[c]
		}
		fmt.Fprintf(tw, "  options\t%s\n", strings.Join(parts, ", "))
	}

	return tw.Flush()
}
