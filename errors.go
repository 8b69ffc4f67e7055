package kafkametrics

import (
	"errors"
)

var (
	ErrBusy           = errors.New("kafka producer queue full")
	ErrEmptyTopic     = errors.New("empty topic")
	ErrBadInterval    = errors.New("report interval must be positive")
	ErrNilProducer    = errors.New("nil producer")
	ErrNilRegistry    = errors.New("nil metrics registry")
	ErrProducerClosed = errors.New("producer already closed")
)
