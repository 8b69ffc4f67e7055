// Package serializer converts metrics.Registry snapshots into Kafka
// producer messages.
package serializer

import (
	"fmt"
	"time"

	"github.com/Shopify/sarama"
)

// Metric kind names, also used to tag serialization failures.
const (
	KindGauge     = "gauge"
	KindCounter   = "counter"
	KindHistogram = "histogram"
	KindMeter     = "meter"
	KindTimer     = "timer"
)

// A Serializer converts one registry snapshot into the list of messages
// that should be posted to Kafka.
//
// The serializer is free to return as many or as few messages as it
// wants: one message per metric, one message containing all the metrics,
// or anything in between. All messages of one Serialize call share the
// given timestamp.
type Serializer interface {
	Serialize(snap *Snapshot, topic string, timestamp time.Time,
		rateUnit, durationUnit time.Duration) ([]*sarama.ProducerMessage, error)
}

// SerializationError means one metric could not be converted into its
// structured encoding. The whole reporting cycle it belongs to is dropped.
type SerializationError struct {
	Name string // dotted metric name
	Kind string // gauge/counter/histogram/meter/timer
	Err  error
}

func (this *SerializationError) Error() string {
	return fmt.Sprintf("serialize %s[%s]: %v", this.Kind, this.Name, this.Err)
}
