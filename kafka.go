package kafkametrics

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/Shopify/sarama"
	log "github.com/funkygao/log4go"
	"github.com/rcrowley/go-metrics"

	"github.com/funkygao/kafkametrics/serializer"
)

var _ Reporter = &KafkaReporter{}

// KafkaReporter posts the metrics of a registry to a Kafka topic, one
// message per metric by default. Start runs the interval loop; Report
// publishes a single snapshot and is what the loop calls every tick.
type KafkaReporter struct {
	cf       *config
	reg      metrics.Registry
	producer Producer

	quiting, quit chan struct{}
}

// New creates a Kafka reporter which will post the metrics from the
// given registry at each interval. The producer is shared, read-only and
// stays open after Stop: closing it is the owner's business.
func New(reg metrics.Registry, producer Producer, cf *config) (*KafkaReporter, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	if producer == nil {
		return nil, ErrNilProducer
	}

	return &KafkaReporter{
		cf:       cf,
		reg:      reg,
		producer: producer,
		quiting:  make(chan struct{}),
		quit:     make(chan struct{}),
	}, nil
}

func (*KafkaReporter) Name() string {
	return "kafka"
}

func (this *KafkaReporter) Stop() {
	close(this.quiting)
	<-this.quit
}

func (this *KafkaReporter) Start() error {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println(err)
			debug.PrintStack()
		}
	}()

	intervalTicker := time.Tick(this.cf.interval)
	for {
		select {
		case <-this.quiting:
			// flush
			this.report()
			close(this.quit)
			return nil

		case <-intervalTicker:
			this.report()

		}
	}
}

func (this *KafkaReporter) report() {
	if err := this.Report(serializer.TakeSnapshot(this.reg, this.cf.filter)); err != nil {
		// this cycle is lost, never buffered for the next tick
		log.Error("kafka reporter: %v", err)
	}
}

// Report publishes one snapshot: a single timestamp for the whole cycle,
// serialize, then fire-and-forget every message. It returns once all
// submissions have been initiated, not once they are acked; delivery
// failures surface only through the logging callback. A serialization
// failure or a producer rejection aborts the cycle, already-submitted
// messages are not recalled and nothing is retried.
func (this *KafkaReporter) Report(snap *serializer.Snapshot) error {
	messages, err := this.cf.serializer.Serialize(snap, this.cf.topic,
		time.Now(), this.cf.rateUnit, this.cf.durationUnit)
	if err != nil {
		return err
	}

	for _, msg := range messages {
		if err = this.producer.Send(msg, deliveryCallback); err != nil {
			return err
		}
	}

	return nil
}

func deliveryCallback(msg *sarama.ProducerMessage, err error) {
	if err != nil {
		log.Error("kafka metrics[%s/%v] delivery: %v", msg.Topic, msg.Key, err)
	}
}
