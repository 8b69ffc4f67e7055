package serializer

import (
	"time"

	"github.com/Shopify/sarama"
)

// JSONStringSerializer is the default Serializer: one message per metric,
// key is the metric name, value a JSON document of the metric's native
// fields plus a trailing "timestamp" field, both encoded with
// sarama.StringEncoder. For a gauge:
//
//	{"value":42,"timestamp":"2015-10-22T11:50:34.762+00:00"}
//
// Use it with a producer configured for string (or raw) key/value
// serialization.
type JSONStringSerializer struct{}

func (this *JSONStringSerializer) Serialize(snap *Snapshot, topic string,
	timestamp time.Time, rateUnit, durationUnit time.Duration) ([]*sarama.ProducerMessage, error) {
	return serializeJSON(snap, topic, timestamp, rateUnit, durationUnit, stringMessage)
}

// JSONBytesSerializer is JSONStringSerializer with sarama.ByteEncoder
// key/value: the same metrics map to the same messages with the value
// being the UTF-8 bytes of what the string variant produces. The two
// only differ in the final encoding step.
type JSONBytesSerializer struct{}

func (this *JSONBytesSerializer) Serialize(snap *Snapshot, topic string,
	timestamp time.Time, rateUnit, durationUnit time.Duration) ([]*sarama.ProducerMessage, error) {
	return serializeJSON(snap, topic, timestamp, rateUnit, durationUnit, bytesMessage)
}

func stringMessage(topic, key string, value []byte) *sarama.ProducerMessage {
	return &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.StringEncoder(value),
	}
}

func bytesMessage(topic, key string, value []byte) *sarama.ProducerMessage {
	return &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(value),
	}
}

// serializeJSON walks the snapshot partitions in fixed kind order, names
// ascending within each partition, and emits one message per metric. The
// timestamp is formatted once and shared by every message of the cycle.
// The first metric that fails to encode aborts the whole cycle: no
// partial message list is ever returned.
func serializeJSON(snap *Snapshot, topic string, timestamp time.Time,
	rateUnit, durationUnit time.Duration,
	newMessage func(topic, key string, value []byte) *sarama.ProducerMessage) ([]*sarama.ProducerMessage, error) {
	stamp := formatTimestamp(timestamp)

	partitions := []struct {
		kind    string
		metrics map[string]interface{}
	}{
		{KindGauge, snap.Gauges},
		{KindCounter, snap.Counters},
		{KindHistogram, snap.Histograms},
		{KindMeter, snap.Meters},
		{KindTimer, snap.Timers},
	}

	messages := make([]*sarama.ProducerMessage, 0, snap.Len())
	for _, p := range partitions {
		for _, name := range sortedNames(p.metrics) {
			doc, err := encodeMetric(p.kind, p.metrics[name], rateUnit, durationUnit)
			if err != nil {
				return nil, &SerializationError{Name: name, Kind: p.kind, Err: err}
			}

			doc.add("timestamp", stamp)

			body, err := doc.encode()
			if err != nil {
				return nil, &SerializationError{Name: name, Kind: p.kind, Err: err}
			}

			messages = append(messages, newMessage(topic, name, body))
		}
	}

	return messages, nil
}
