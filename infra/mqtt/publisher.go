package mqtt

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	coremetrics "github.com/kilianp07/taskalloc/core/metrics"
	"github.com/kilianp07/taskalloc/infra/logger"
)

// ErrPublish is returned once every publish attempt for a message failed.
var ErrPublish = errors.New("mqtt publish failed")

// Topic suffixes below the configured prefix.
const (
	TopicProgress = "progress"
	TopicResult   = "result"
	TopicStatus   = "status"
)

type pahoClient interface {
	IsConnected() bool
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// ProgressMessage is published on <prefix>/progress after every generation.
type ProgressMessage struct {
	RunID       string  `json:"run_id"`
	Generation  int     `json:"generation"`
	Total       int     `json:"total"`
	BestFitness float64 `json:"best_fitness"`
	AvgFitness  float64 `json:"avg_fitness"`
	Timestamp   int64   `json:"timestamp"`
}

// ResultMessage is published on <prefix>/result when a run ends.
type ResultMessage struct {
	RunID             string  `json:"run_id"`
	Tasks             int     `json:"tasks"`
	Employees         int     `json:"employees"`
	BestFitness       float64 `json:"best_fitness"`
	TotalCost         float64 `json:"total_cost"`
	TotalDurationDays int     `json:"total_duration_days"`
	OnTimeProbability float64 `json:"on_time_probability"`
	ExecutionMS       int64   `json:"execution_ms"`
	Interrupted       bool    `json:"interrupted"`
	Timestamp         int64   `json:"timestamp"`
}

// Publisher streams optimization progress to an MQTT broker. It satisfies
// metrics.MetricsSink so it can be combined with the other sinks.
type Publisher struct {
	cli     pahoClient
	cfg     Config
	backoff time.Duration
	log     logger.Logger
}

var _ coremetrics.MetricsSink = (*Publisher)(nil)

// NewPublisher connects to the broker. The will message marks the publisher
// offline on <prefix>/status if the connection drops.
func NewPublisher(cfg Config) (*Publisher, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts, err := NewClientOptions(cfg)
	if err != nil {
		return nil, err
	}
	log := logger.New("mqtt_publisher")
	p := &Publisher{cfg: cfg, backoff: time.Duration(cfg.BackoffMS) * time.Millisecond, log: log}

	opts.OnConnect = func(c paho.Client) {
		log.Infof("MQTT connected")
		c.Publish(cfg.Topic(TopicStatus), cfg.LWTQoS, true, "online")
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		log.Errorf("connection lost: %v", err)
	}
	opts.OnReconnecting = func(_ paho.Client, _ *paho.ClientOptions) {
		log.Warnf("reconnecting to MQTT broker")
	}
	c := newMQTTClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	p.cli = c
	return p, nil
}

// NewClientOptions builds mqtt client options from Config.
func NewClientOptions(cfg Config) (*paho.ClientOptions, error) {
	opts := paho.NewClientOptions().AddBroker(cfg.Broker).SetClientID(cfg.ClientID)
	opts.AutoReconnect = true
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}
	if cfg.UseTLS {
		tlsCfg, err := cfg.LoadTLSConfig()
		if err != nil {
			return nil, err
		}
		opts.SetTLSConfig(tlsCfg)
	}
	if cfg.TopicPrefix != "" {
		opts.SetWill(cfg.Topic(TopicStatus), cfg.LWTPayload, cfg.LWTQoS, true)
	}
	return opts, nil
}

// RecordGeneration publishes a ProgressMessage.
func (p *Publisher) RecordGeneration(ev coremetrics.GenerationEvent) error {
	return p.publish(p.cfg.Topic(TopicProgress), false, ProgressMessage{
		RunID:       ev.RunID,
		Generation:  ev.Generation,
		Total:       ev.Total,
		BestFitness: ev.BestFitness,
		AvgFitness:  ev.AvgFitness,
		Timestamp:   ev.Time.UnixMilli(),
	})
}

// RecordRun publishes a ResultMessage, retained when RetainLast is set.
func (p *Publisher) RecordRun(ev coremetrics.RunEvent) error {
	return p.publish(p.cfg.Topic(TopicResult), p.cfg.RetainLast, ResultMessage{
		RunID:             ev.RunID,
		Tasks:             ev.TaskCount,
		Employees:         ev.EmployeeCount,
		BestFitness:       ev.BestFitness,
		TotalCost:         ev.TotalCost,
		TotalDurationDays: ev.TotalDurationDays,
		OnTimeProbability: ev.OnTimeProbability,
		ExecutionMS:       ev.Duration.Milliseconds(),
		Interrupted:       ev.Interrupted,
		Timestamp:         ev.Time.UnixMilli(),
	})
}

func (p *Publisher) publish(topic string, retained bool, msg any) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	var publishErr error
	for attempt := 0; attempt <= p.cfg.MaxRetries; attempt++ {
		token := p.cli.Publish(topic, p.cfg.QoS, retained, payload)
		token.Wait()
		if publishErr = token.Error(); publishErr == nil {
			p.log.Debugf("published %d bytes to %s", len(payload), topic)
			return nil
		}
		p.log.Errorf("publish attempt %d to %s failed: %v", attempt+1, topic, publishErr)
		if attempt < p.cfg.MaxRetries {
			time.Sleep(p.backoff * time.Duration(1<<attempt))
		}
	}
	return fmt.Errorf("%w: %s: %w", ErrPublish, topic, publishErr)
}

// Close marks the publisher offline and disconnects.
func (p *Publisher) Close() {
	if p.cli != nil && p.cli.IsConnected() {
		p.cli.Publish(p.cfg.Topic(TopicStatus), p.cfg.LWTQoS, true, p.cfg.LWTPayload).Wait()
		p.cli.Disconnect(250)
	}
}
