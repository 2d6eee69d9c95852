package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/surveyspace/cache"
	"github.com/katalvlaran/surveyspace/cluster"
	"github.com/katalvlaran/surveyspace/ellipsoid"
	"github.com/katalvlaran/surveyspace/embed"
	"github.com/katalvlaran/surveyspace/feature"
	"github.com/katalvlaran/surveyspace/matrix/ops"
)

// EnvPath names the environment variable consulted when Load gets no path.
const EnvPath = "SURVEYSPACE_CONFIG"

// Cache backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendNone   = "none"
)

// ErrInvalidConfig is returned (wrapped with the offending field) by Validate.
var ErrInvalidConfig = errors.New("config: invalid value")

// Clusters holds the k-range profiles of the global and per-group runs.
type Clusters struct {
	Global cluster.Profile `yaml:"global"`
	Group  cluster.Profile `yaml:"group"`
}

// Embedding selects the mode and tunes the computed projection.
type Embedding struct {
	Mode            string  `yaml:"mode"`
	TargetRMS       float64 `yaml:"target_rms"`
	PowerIterations int     `yaml:"power_iterations"`
	HelixRadius     float64 `yaml:"helix_radius"`
	Jitter          bool    `yaml:"jitter"`
}

// Ellipsoid sizes the cluster outlines.
type Ellipsoid struct {
	Coverage  float64 `yaml:"coverage"`
	Margin    float64 `yaml:"margin"`
	MinExtent float64 `yaml:"min_extent"`
}

// Cache picks where cluster results are kept. TTL 0 keeps them forever.
type Cache struct {
	Backend       string        `yaml:"backend"`
	RedisAddr     string        `yaml:"redis_addr"`
	RedisPassword string        `yaml:"redis_password"`
	RedisDB       int           `yaml:"redis_db"`
	RedisPrefix   string        `yaml:"redis_prefix"`
	TTL           time.Duration `yaml:"ttl"`
}

// Log configures the zerolog logger of the command.
type Log struct {
	Level   string `yaml:"level"`
	Console bool   `yaml:"console"`
}

// Data locates the manifest and the answers. With CSV set, every question
// reads one respondent table instead of per-question embed files.
type Data struct {
	Manifest    string `yaml:"manifest"`
	Dir         string `yaml:"dir"`
	CSV         string `yaml:"csv"`
	IDColumn    string `yaml:"id_column"`
	GroupColumn string `yaml:"group_column"`
}

// Config is the root document.
type Config struct {
	Clusters  Clusters           `yaml:"clusters"`
	Fill      feature.FillPolicy `yaml:"fill"`
	Embedding Embedding          `yaml:"embedding"`
	Ellipsoid Ellipsoid          `yaml:"ellipsoid"`
	Cache     Cache              `yaml:"cache"`
	Log       Log                `yaml:"log"`
	Data      Data               `yaml:"data"`
	Workers   int                `yaml:"workers"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Clusters: Clusters{Global: cluster.GlobalProfile(), Group: cluster.GroupProfile()},
		Fill:     feature.DefaultFillPolicy(),
		Embedding: Embedding{
			Mode:            embed.PCAJS.String(),
			TargetRMS:       embed.DefaultTargetRMS,
			PowerIterations: ops.DefaultPowerIterations,
			HelixRadius:     embed.DefaultHelixRadius,
			Jitter:          true,
		},
		Ellipsoid: Ellipsoid{
			Coverage:  ellipsoid.DefaultCoverage,
			Margin:    ellipsoid.DefaultMargin,
			MinExtent: ellipsoid.DefaultMinExtent,
		},
		Cache:   Cache{Backend: BackendMemory, RedisPrefix: cache.DefaultRedisPrefix},
		Log:     Log{Level: "info", Console: true},
		Data: Data{
			Manifest:    "question_manifest.json",
			Dir:         ".",
			IDColumn:    "id",
			GroupColumn: "party",
		},
		Workers: 4,
	}
}

// Load reads path, or the file named by $SURVEYSPACE_CONFIG when path is
// empty. With neither set it returns Default(). A named file that cannot
// be opened is an error. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvPath)
	}
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	cfg.normalize()
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse decodes YAML bytes on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// normalize restores fields that YAML cannot carry.
func (c *Config) normalize() {
	c.Clusters.Global.Scope = cluster.ScopeGlobal
	c.Clusters.Group.Scope = cluster.ScopeGroup
}

// Validate rejects structurally impossible values. Cluster bounds larger
// than the population are legal; they are clamped at run time.
func (c *Config) Validate() error {
	if err := c.Clusters.Global.Validate(); err != nil {
		return fmt.Errorf("clusters.global: %w: %w", ErrInvalidConfig, err)
	}
	if err := c.Clusters.Group.Validate(); err != nil {
		return fmt.Errorf("clusters.group: %w: %w", ErrInvalidConfig, err)
	}
	if _, err := embed.ParseMode(c.Embedding.Mode); err != nil {
		return fmt.Errorf("embedding.mode: %w: %w", ErrInvalidConfig, err)
	}

	switch {
	case !(c.Embedding.TargetRMS > 0):
		return invalid("embedding.target_rms", c.Embedding.TargetRMS)
	case c.Embedding.PowerIterations < 1:
		return invalid("embedding.power_iterations", c.Embedding.PowerIterations)
	case !(c.Embedding.HelixRadius > 0):
		return invalid("embedding.helix_radius", c.Embedding.HelixRadius)
	case !(c.Ellipsoid.Coverage > 0):
		return invalid("ellipsoid.coverage", c.Ellipsoid.Coverage)
	case !(c.Ellipsoid.Margin >= 0):
		return invalid("ellipsoid.margin", c.Ellipsoid.Margin)
	case !(c.Ellipsoid.MinExtent > 0):
		return invalid("ellipsoid.min_extent", c.Ellipsoid.MinExtent)
	case c.Workers < 1:
		return invalid("workers", c.Workers)
	case c.Cache.TTL < 0:
		return invalid("cache.ttl", c.Cache.TTL)
	case c.Data.CSV != "" && c.Data.IDColumn == "":
		return invalid("data.id_column", `""`)
	}

	switch c.Cache.Backend {
	case BackendMemory, BackendNone:
	case BackendRedis:
		if c.Cache.RedisAddr == "" {
			return invalid("cache.redis_addr", `""`)
		}
	default:
		return invalid("cache.backend", c.Cache.Backend)
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return invalid("log.level", c.Log.Level)
	}

	return nil
}

func invalid(field string, v any) error {
	return fmt.Errorf("%s=%v: %w", field, v, ErrInvalidConfig)
}

// EmbedOptions translates the embedding and fill sections.
func (c *Config) EmbedOptions() []embed.Option {
	opts := []embed.Option{
		embed.WithTargetRMS(c.Embedding.TargetRMS),
		embed.WithPowerIterations(c.Embedding.PowerIterations),
		embed.WithHelixRadius(c.Embedding.HelixRadius),
		embed.WithFillPolicy(c.Fill),
	}
	if !c.Embedding.Jitter {
		opts = append(opts, embed.WithoutJitter())
	}

	return opts
}

// EllipsoidOptions translates the ellipsoid section.
func (c *Config) EllipsoidOptions() []ellipsoid.Option {
	return []ellipsoid.Option{
		ellipsoid.WithCoverage(c.Ellipsoid.Coverage),
		ellipsoid.WithMargin(c.Ellipsoid.Margin),
		ellipsoid.WithMinExtent(c.Ellipsoid.MinExtent),
	}
}

// LogLevel returns the parsed log level, Info when unparsable.
func (c *Config) LogLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}

	return lvl
}
