package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/taskalloc/core/genetic"
	"github.com/kilianp07/taskalloc/core/model"
)

func writeConfig(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "config.yaml", `optimizer:
  population_size: 60
  generations: 20
  mutation_prob: 0
  seed: 42
fitness:
  missing_skill_penalty: 800
efficiency:
  skill_match: 0.5
  cost_efficiency: 0.3
  experience: 0.2
scheduler:
  workers: 2
metrics:
  sinks:
    - type: "nop"
mqtt:
  broker: "tcp://localhost:1883"
  topic_prefix: "plans"
history:
  type: sqlite
  conf:
    path: "runs.db"
data:
  project: "project.yaml"
logging:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	checks := []struct {
		name string
		got  any
		want any
	}{
		{"population_size", cfg.Optimizer.PopulationSize, 60},
		{"generations", cfg.Optimizer.Generations, 20},
		{"crossover default kept", cfg.Optimizer.CrossoverProb, 0.7},
		{"explicit zero mutation", cfg.Optimizer.MutationProb, 0.0},
		{"seed", cfg.Optimizer.Seed, uint64(42)},
		{"tournament default", cfg.Optimizer.TournamentSize, 3},
		{"missing_skill_penalty", cfg.Fitness.MissingSkillPenalty, 800.0},
		{"scale default kept", cfg.Fitness.Scale, 10000.0},
		{"skill weight", cfg.Efficiency.SkillMatch, 0.5},
		{"scheduler workers", cfg.Scheduler.Workers, 2},
		{"metrics sink", len(cfg.Metrics.Sinks) == 1 && cfg.Metrics.Sinks[0].Type == "nop", true},
		{"mqtt prefix", cfg.MQTT.Topic("progress"), "plans/progress"},
		{"history type", cfg.History.Type, "sqlite"},
		{"history path", cfg.History.Conf["path"], "runs.db"},
		{"data project", cfg.Data.Project, "project.yaml"},
		{"log level", cfg.Logging.Level, "debug"},
		{"log format default", cfg.Logging.Format, "json"},
	}
	for _, c := range checks {
		assert.Equal(t, c.want, c.got, c.name)
	}
}

func TestLoad_DefaultsAndEnv(t *testing.T) {
	t.Setenv("K_OPTIMIZER__GENERATIONS", "7")
	cfg, err := Load("")
	require.NoError(t, err)
	d := genetic.DefaultConfig()
	assert.Equal(t, 7, cfg.Optimizer.Generations)
	assert.Equal(t, d.PopulationSize, cfg.Optimizer.PopulationSize)
	assert.Positive(t, cfg.Optimizer.Workers)
	assert.False(t, cfg.MQTT.Enabled())
	assert.True(t, cfg.Data.Empty())
}

func TestLoad_ExplicitZerosKept(t *testing.T) {
	path := writeConfig(t, "config.yaml", `optimizer:
  gene_mutation_prob: 0
mqtt:
  broker: "tcp://localhost:1883"
  max_retries: 0
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.0, cfg.Optimizer.GeneMutationProb)
	assert.Equal(t, 0, cfg.MQTT.MaxRetries)

	cfg, err = Load(writeConfig(t, "config.yaml", "mqtt:\n  broker: tcp://localhost:1883\n"))
	require.NoError(t, err)
	assert.Equal(t, 0.1, cfg.Optimizer.GeneMutationProb)
	assert.Equal(t, 3, cfg.MQTT.MaxRetries)
}

func TestLoad_JSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{"optimizer": {"population_size": 10, "tournament_size": 4}}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Optimizer.TournamentSize)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(writeConfig(t, "config.toml", ``))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "config.yaml", "optimizer:\n  population_size: 3\n  tournament_size: 3\n"))
	assert.ErrorIs(t, err, model.ErrConfiguration)

	_, err = Load(writeConfig(t, "config.yaml", "logging:\n  format: xml\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "config.yaml", "mqtt:\n  broker: tcp://x:1883\n  qos: 5\n"))
	assert.Error(t, err)
}
