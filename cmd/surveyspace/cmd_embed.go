package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/surveyspace/engine"
	"github.com/katalvlaran/surveyspace/feature"
)

func newEmbedCmd(a *app) *cobra.Command {
	var (
		question string
		group    string
		filter   string
		outFile  string
	)

	cmd := &cobra.Command{
		Use:   "embed",
		Short: "Compute the scene of one question",
		Long: `Compute the full scene of one question: coordinates, global clusters,
per-group clusters and cluster ellipsoids, written as JSON.

Examples:
  surveyspace embed --question Q7
  surveyspace embed --question Q7 --group LDP --mode pre_umap
  surveyspace embed --question Q1 --filter 'Q1-2=1' --out q1.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := engine.Request{Base: question, Mode: a.embedMode(), Group: group}
			if filter != "" {
				f, err := parseFilter(filter)
				if err != nil {
					return err
				}
				req.Filter = &f
			}

			e, closer, err := a.engine(cmd.Context())
			if err != nil {
				return err
			}
			defer closer()

			sc, err := e.Scene(cmd.Context(), req)
			if err != nil {
				return err
			}

			return writeJSON(a.out, outFile, sc)
		},
	}
	cmd.Flags().StringVar(&question, "question", "", "Question base, e.g. Q7")
	cmd.Flags().StringVar(&group, "group", "", "Cluster only this group")
	cmd.Flags().StringVar(&filter, "filter", "", "Option filter COLUMN=VALUE; COLUMN may be * for any column")
	cmd.Flags().StringVar(&outFile, "out", "", "Output file (default: stdout)")
	_ = cmd.MarkFlagRequired("question")

	return cmd
}

// parseFilter reads "column=value".
func parseFilter(s string) (feature.OptionFilter, error) {
	col, val, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(col) == "" {
		return feature.OptionFilter{}, fmt.Errorf("filter %q: want COLUMN=VALUE", s)
	}

	return feature.OptionFilter{Column: strings.TrimSpace(col), Value: strings.TrimSpace(val)}, nil
}

// writeJSON writes v indented to path, or to w when path is empty.
func writeJSON(w io.Writer, path string, v any) error {
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
