package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/kilianp07/taskalloc/core/factory"
	coremetrics "github.com/kilianp07/taskalloc/core/metrics"
	_ "github.com/kilianp07/taskalloc/infra/metrics"
)

// TestMetricsFactory_Builtins verifies registration of the builtin sinks.
func TestMetricsFactory_Builtins(t *testing.T) {
	s, err := coremetrics.NewMetricsSink([]factory.ModuleConfig{{Type: "nop"}})
	require.NoError(t, err)
	assert.NotNil(t, s)

	_, err = coremetrics.NewMetricsSink([]factory.ModuleConfig{{Type: "missing"}})
	assert.ErrorIs(t, err, factory.ErrUnknownModule)
}

// Test decoding sinks from YAML with multiple entries.
func TestMetricsConfigDecodeYAML(t *testing.T) {
	data := `sinks:
  - type: nop
  - type: prometheus
prometheus_addr: ":9090"
`
	var cfg coremetrics.Config
	require.NoError(t, yaml.Unmarshal([]byte(data), &cfg))
	assert.Equal(t, ":9090", cfg.PrometheusAddr)
	s, err := coremetrics.NewMetricsSink(cfg.Sinks)
	require.NoError(t, err)
	multi, ok := s.(*coremetrics.MultiSink)
	require.True(t, ok)
	assert.Len(t, multi.Sinks, 2)
}
