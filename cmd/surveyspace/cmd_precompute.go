package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func newPrecomputeCmd(a *app) *cobra.Command {
	var (
		outDir     string
		workers    int
		metricsOut string
	)

	cmd := &cobra.Command{
		Use:   "precompute [BASE...]",
		Short: "Compute scenes for many questions in parallel",
		Long: `Compute the scene of every listed question (every manifest question
when none is given) on a bounded worker pool and write one
scene_{base}.json per question into --out.

Examples:
  surveyspace precompute --out scenes/
  surveyspace precompute --out scenes/ --workers 8 Q1 Q2 Q3
  surveyspace precompute --out scenes/ --metrics-out metrics.prom`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if workers > 0 {
				a.cfg.Workers = workers
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}

			e, closer, err := a.engine(cmd.Context())
			if err != nil {
				return err
			}
			defer closer()

			scenes, runErr := e.Precompute(cmd.Context(), args, a.embedMode())
			written := 0
			for _, sc := range scenes {
				if sc == nil {
					continue
				}
				if err = writeJSON(nil, filepath.Join(outDir, "scene_"+sc.Base+".json"), sc); err != nil {
					return err
				}
				written++
			}
			a.log.Info().Int("written", written).Int("requested", len(scenes)).Str("dir", outDir).Msg("Scenes written")

			if metricsOut != "" {
				if err = prometheus.WriteToTextfile(metricsOut, a.reg); err != nil {
					runErr = errors.Join(runErr, fmt.Errorf("metrics: %w", err))
				}
			}

			return runErr
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "", "Output directory")
	cmd.Flags().IntVar(&workers, "workers", 0, "Parallel questions (default: config workers)")
	cmd.Flags().StringVar(&metricsOut, "metrics-out", "", "Write Prometheus metrics in text format to this file")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
