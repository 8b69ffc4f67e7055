package kafkametrics

// A Reporter continuously scans a metrics.Registry and persists all
// metrics to durable storage.
type Reporter interface {
	Name() string

	Start() error
	Stop()
}
