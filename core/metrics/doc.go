// Package metrics defines the sinks that observe optimization runs. Sinks
// like PromSink and InfluxSink live in infra/metrics and register themselves
// under a type name; NewMetricsSink builds them from configuration and wraps
// several sinks in a MultiSink.
package metrics
