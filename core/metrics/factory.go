package metrics

import "github.com/kilianp07/taskalloc/core/factory"

var sinkRegistry = factory.NewRegistry[MetricsSink]()

// RegisterMetricsSink adds a metrics sink factory identified by name.
func RegisterMetricsSink(name string, f factory.Factory[MetricsSink]) error {
	return sinkRegistry.Register(name, f)
}

// NewMetricsSink builds every configured sink. No entry gives a NopSink and a
// single entry is returned as is. When one sink fails to build, the sinks
// already created are closed before the error is returned.
func NewMetricsSink(cfgs []factory.ModuleConfig) (MetricsSink, error) {
	sinks := make([]MetricsSink, 0, len(cfgs))
	for _, c := range cfgs {
		s, err := sinkRegistry.Create(c)
		if err != nil {
			for _, built := range sinks {
				CloseSink(built)
			}
			return nil, err
		}
		sinks = append(sinks, s)
	}
	switch len(sinks) {
	case 0:
		return NopSink{}, nil
	case 1:
		return sinks[0], nil
	}
	return NewMultiSink(sinks...), nil
}

// closer is implemented by sinks holding a connection or client.
type closer interface {
	Close()
}

// CloseSink releases s when it holds resources. It is a no-op otherwise.
func CloseSink(s MetricsSink) {
	if c, ok := s.(closer); ok {
		c.Close()
	}
}
