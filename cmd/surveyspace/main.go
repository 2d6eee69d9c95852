// Command surveyspace computes clustered 3-D survey scenes from a data directory.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/surveyspace/cache"
	"github.com/katalvlaran/surveyspace/config"
	"github.com/katalvlaran/surveyspace/dataset"
	"github.com/katalvlaran/surveyspace/embed"
	"github.com/katalvlaran/surveyspace/engine"
)

// app carries the state shared by every subcommand.
type app struct {
	configPath string
	logLevel   string
	manifest   string
	dataDir    string
	csvPath    string
	mode       string

	cfg    *config.Config
	log    zerolog.Logger
	reg    *prometheus.Registry
	out    io.Writer
	errOut io.Writer
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "surveyspace",
		Short: "Deterministic survey embedding and clustering",
		Long: `surveyspace places survey respondents in 3-D from their answers,
clusters them with an elbow-selected k-means, and fits an outline
ellipsoid to every cluster. Identical inputs always give identical scenes.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (default: $"+config.EnvPath+")")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	pf.StringVar(&a.manifest, "manifest", "", "Question manifest (default: config data.manifest)")
	pf.StringVar(&a.dataDir, "data-dir", "", "Directory holding the embed files (default: config data.dir)")
	pf.StringVar(&a.csvPath, "csv", "", "Respondent table read by every question instead of embed files (default: config data.csv)")
	pf.StringVar(&a.mode, "mode", "", "Embedding mode: pca_js, pre_pca, pre_umap (default: config embedding.mode)")

	root.AddCommand(newEmbedCmd(a), newPrecomputeCmd(a), newInspectCmd(a), newInvalidateCmd(a))

	return root
}

// setup loads the config, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.manifest != "" {
		cfg.Data.Manifest = a.manifest
	}
	if a.dataDir != "" {
		cfg.Data.Dir = a.dataDir
	}
	if a.csvPath != "" {
		cfg.Data.CSV = a.csvPath
	}
	if a.mode != "" {
		cfg.Embedding.Mode = a.mode
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	var w io.Writer = a.errOut
	if cfg.Log.Console {
		w = zerolog.ConsoleWriter{Out: a.errOut, TimeFormat: time.RFC3339}
	}
	a.log = zerolog.New(w).Level(cfg.LogLevel()).With().Timestamp().Str("cmd", cmd.Name()).Logger()
	a.reg = prometheus.NewRegistry()

	return nil
}

func (a *app) embedMode() embed.Mode {
	m, _ := embed.ParseMode(a.cfg.Embedding.Mode) // validated in setup
	return m
}

// source opens the respondent table when one is configured, else the
// per-question embed files of the data directory.
func (a *app) source() (dataset.Source, error) {
	d := a.cfg.Data
	if d.CSV == "" {
		return dataset.OpenDir(d.Dir, d.Manifest)
	}
	a.log.Debug().Str("csv", d.CSV).Str("id_column", d.IDColumn).Msg("Reading respondent table")

	return dataset.OpenCSV(d.Dir, d.Manifest, d.CSV, d.IDColumn, d.GroupColumn)
}

// engine builds an Engine with the configured source and cache backend.
// The returned func releases the cache connection.
func (a *app) engine(ctx context.Context) (*engine.Engine, func(), error) {
	src, err := a.source()
	if err != nil {
		return nil, nil, err
	}

	metrics, err := cache.NewMetrics(a.reg)
	if err != nil {
		return nil, nil, fmt.Errorf("metrics: %w", err)
	}
	opts := []engine.Option{
		engine.WithLogger(a.log),
		engine.WithMetrics(metrics),
		engine.WithEmbedOptions(a.cfg.EmbedOptions()...),
		engine.WithEllipsoidOptions(a.cfg.EllipsoidOptions()...),
		engine.WithProfiles(a.cfg.Clusters.Global, a.cfg.Clusters.Group),
		engine.WithWorkers(a.cfg.Workers),
	}

	closer := func() {}
	switch a.cfg.Cache.Backend {
	case config.BackendMemory:
		opts = append(opts, engine.WithCache(cache.NewResults(cache.NewMemory(), metrics, a.cfg.Cache.TTL)))
	case config.BackendRedis:
		rdb, err := cache.DialRedis(ctx, a.cfg.Cache.RedisAddr, a.cfg.Cache.RedisPassword, a.cfg.Cache.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		closer = func() {
			if err := rdb.Close(); err != nil {
				a.log.Warn().Err(err).Msg("Closing redis client")
			}
		}
		store := cache.NewRedisStore(rdb, a.cfg.Cache.RedisPrefix)
		opts = append(opts, engine.WithCache(cache.NewResults(store, metrics, a.cfg.Cache.TTL)))
		a.log.Debug().Str("addr", a.cfg.Cache.RedisAddr).Msg("Using redis cluster cache")
	}

	return engine.New(src, opts...), closer, nil
}
