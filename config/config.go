package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/taskalloc/core/factory"
	"github.com/kilianp07/taskalloc/core/fitness"
	"github.com/kilianp07/taskalloc/core/genetic"
	"github.com/kilianp07/taskalloc/core/metrics"
	"github.com/kilianp07/taskalloc/core/resolve"
	"github.com/kilianp07/taskalloc/infra/mqtt"
)

// Config is the full application configuration.
type Config struct {
	Optimizer  genetic.Config       `json:"optimizer"`
	Fitness    fitness.Config       `json:"fitness"`
	Efficiency resolve.Weights      `json:"efficiency"`
	Scheduler  SchedulerConfig      `json:"scheduler"`
	Metrics    metrics.Config       `json:"metrics"`
	MQTT       mqtt.Config          `json:"mqtt"`
	History    factory.ModuleConfig `json:"history"`
	Data       DataConfig           `json:"data"`
	Logging    LoggingConfig        `json:"logging"`
}

// SchedulerConfig tunes the schedule builder.
type SchedulerConfig struct {
	// Workers bounds how many employee timelines are built concurrently.
	// 0 means one goroutine per employee.
	Workers int `json:"workers"`
}

// Default returns a configuration with every section at its default.
func Default() Config {
	return Config{
		Optimizer:  genetic.DefaultConfig(),
		Fitness:    fitness.DefaultConfig(),
		Efficiency: resolve.DefaultWeights(),
		MQTT:       mqtt.DefaultConfig(),
		Logging:    LoggingConfig{Level: "info", Format: "json"},
	}
}

// Load reads the configuration file at path, applies K_ prefixed
// environment overrides (K_OPTIMIZER__GENERATIONS=200) and validates the
// result. An empty path loads defaults and environment only. Keys absent
// from the file keep their default values, so a probability may be set to 0
// explicitly.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("K_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "k_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults fills optional fields of every section.
func (c *Config) SetDefaults() {
	c.Optimizer.SetDefaults()
	c.Fitness.SetDefaults()
	c.Efficiency.SetDefaults()
	if c.MQTT.Enabled() {
		c.MQTT.SetDefaults()
	}
	c.Logging.SetDefaults()
}

// Validate checks every section and reports all failures together.
func (c Config) Validate() error {
	var errs []error
	if err := c.Optimizer.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("optimizer: %w", err))
	}
	if err := c.Fitness.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("fitness: %w", err))
	}
	if err := c.Efficiency.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("efficiency: %w", err))
	}
	if c.Scheduler.Workers < 0 {
		errs = append(errs, errors.New("scheduler: workers must not be negative"))
	}
	if err := c.MQTT.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("mqtt: %w", err))
	}
	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}
	return errors.Join(errs...)
}
