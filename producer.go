package kafkametrics

import (
	"sync"

	"github.com/Shopify/sarama"
	log "github.com/funkygao/log4go"
)

// Callback is invoked exactly once per sent message, after the broker
// acked it (err nil) or delivery finally failed (err set). It runs on a
// producer internal goroutine, never on the caller of Send.
type Callback func(msg *sarama.ProducerMessage, err error)

// A Producer is the message sink of the reporter: fire-and-forget
// submission of pre-built messages with a completion callback.
type Producer interface {
	// Send enqueues one message without waiting for the broker. ErrBusy
	// means the producer queue is full right now and the message was not
	// taken; the caller decides what to drop.
	Send(msg *sarama.ProducerMessage, cb Callback) error

	Close() error
}

var _ Producer = &asyncProducerClient{}

type asyncProducerClient struct {
	sarama.AsyncProducer

	wg sync.WaitGroup
}

// NewAsyncProducer wraps a sarama.AsyncProducer into a Producer that
// routes delivery outcomes to per-message callbacks.
//
// The underlying producer MUST be created with
// Producer.Return.Successes=true and Producer.Return.Errors=true,
// otherwise callbacks will never fire.
func NewAsyncProducer(p sarama.AsyncProducer) Producer {
	this := &asyncProducerClient{AsyncProducer: p}

	this.wg.Add(2)
	go this.dispatchSuccesses()
	go this.dispatchErrors()

	return this
}

func (this *asyncProducerClient) Send(msg *sarama.ProducerMessage, cb Callback) (err error) {
	// Input() of a closed async producer panics
	defer func() {
		if e := recover(); e != nil {
			err = ErrProducerClosed
		}
	}()

	// callbacks ride along in Metadata, which sarama never sends on the wire
	msg.Metadata = cb

	select {
	case this.Input() <- msg:
	default:
		err = ErrBusy
	}

	return
}

// Close flushes buffered messages, then waits till all outstanding
// callbacks have fired.
func (this *asyncProducerClient) Close() error {
	this.AsyncClose()
	this.wg.Wait()
	return nil
}

func (this *asyncProducerClient) dispatchSuccesses() {
	defer this.wg.Done()

	for msg := range this.Successes() {
		fireCallback(msg, nil)
	}
}

func (this *asyncProducerClient) dispatchErrors() {
	defer this.wg.Done()

	for e := range this.Errors() {
		fireCallback(e.Msg, e.Err)
	}
}

// fireCallback invokes the callback carried by msg. A callback must not
// take down the dispatch goroutine: panics are swallowed after being
// logged.
func fireCallback(msg *sarama.ProducerMessage, err error) {
	defer func() {
		if e := recover(); e != nil {
			log.Error("producer callback panic: %v", e)
		}
	}()

	cb, ok := msg.Metadata.(Callback)
	if !ok || cb == nil {
		if err != nil {
			log.Error("producer[%s/%v] delivery: %v", msg.Topic, msg.Key, err)
		}
		return
	}

	cb(msg, err)
}
