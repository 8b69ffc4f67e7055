// Package kafkametrics publishes go-metrics metrics.Registry to Apache Kafka:
// each metric becomes one keyed message on a configurable topic.
package kafkametrics

var (
	// Version is the version of the kafkametrics library.
	Version = "unknown"

	// BuildId is the SCM commit id.
	BuildId = "?"

	// BuiltAt is the time when build.sh was run.
	BuiltAt = "1970"
)
