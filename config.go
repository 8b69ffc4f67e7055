package kafkametrics

import (
	"time"

	"github.com/funkygao/kafkametrics/serializer"
)

const (
	DefaultTopic    = "metrics"
	DefaultInterval = time.Minute
)

type config struct {
	topic    string
	interval time.Duration

	rateUnit     time.Duration // rates are reported as events per this unit
	durationUnit time.Duration // timer durations are scaled to this unit

	filter     serializer.MetricFilter
	serializer serializer.Serializer
}

// NewConfig creates a reporter config with the given topic and report
// interval. Rates default to events/second, durations to milliseconds,
// all metrics pass the filter and each metric becomes one JSON string
// message. The config is fixed once handed to New.
func NewConfig(topic string, interval time.Duration) (*config, error) {
	if topic == "" {
		return nil, ErrEmptyTopic
	}
	if interval <= 0 {
		return nil, ErrBadInterval
	}

	return &config{
		topic:        topic,
		interval:     interval,
		rateUnit:     time.Second,
		durationUnit: time.Millisecond,
		serializer:   &serializer.JSONStringSerializer{},
	}, nil
}

// RateUnit converts rates to the given time unit.
func (this *config) RateUnit(u time.Duration) *config {
	this.rateUnit = u
	return this
}

// DurationUnit converts timer durations to the given time unit.
func (this *config) DurationUnit(u time.Duration) *config {
	this.durationUnit = u
	return this
}

// Filter restricts reporting to metrics the filter accepts.
func (this *config) Filter(f serializer.MetricFilter) *config {
	this.filter = f
	return this
}

// Serializer converts metrics to messages with the given strategy
// instead of the default one-JSON-string-message-per-metric.
func (this *config) Serializer(s serializer.Serializer) *config {
	this.serializer = s
	return this
}
