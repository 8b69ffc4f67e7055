package serializer

import (
	"sort"

	"github.com/rcrowley/go-metrics"
)

// MetricFilter decides whether a metric shows up in a snapshot.
// nil means accept all.
type MetricFilter func(name string, metric interface{}) bool

// Snapshot is an immutable point-in-time view of a metrics.Registry,
// partitioned by metric kind. Values are the go-metrics snapshot types,
// never the live metrics, so a snapshot stays stable while the registry
// moves on.
//
// Gauges holds metrics.Gauge or metrics.GaugeFloat64 values.
type Snapshot struct {
	Gauges     map[string]interface{}
	Counters   map[string]interface{}
	Histograms map[string]interface{}
	Meters     map[string]interface{}
	Timers     map[string]interface{}
}

func NewSnapshot() *Snapshot {
	return &Snapshot{
		Gauges:     make(map[string]interface{}),
		Counters:   make(map[string]interface{}),
		Histograms: make(map[string]interface{}),
		Meters:     make(map[string]interface{}),
		Timers:     make(map[string]interface{}),
	}
}

// Len is the total number of metrics across all five partitions.
func (this *Snapshot) Len() int {
	return len(this.Gauges) + len(this.Counters) + len(this.Histograms) +
		len(this.Meters) + len(this.Timers)
}

// TakeSnapshot captures the current metrics of reg, keeping only those
// the filter accepts. Healthchecks carry no reportable value and are
// skipped.
func TakeSnapshot(reg metrics.Registry, filter MetricFilter) *Snapshot {
	snap := NewSnapshot()
	reg.Each(func(name string, i interface{}) {
		if filter != nil && !filter(name, i) {
			return
		}

		switch m := i.(type) {
		case metrics.Gauge:
			snap.Gauges[name] = m.Snapshot()

		case metrics.GaugeFloat64:
			snap.Gauges[name] = m.Snapshot()

		case metrics.Counter:
			snap.Counters[name] = m.Snapshot()

		case metrics.Histogram:
			snap.Histograms[name] = m.Snapshot()

		case metrics.Meter:
			snap.Meters[name] = m.Snapshot()

		case metrics.Timer:
			snap.Timers[name] = m.Snapshot()
		}
	})

	return snap
}

func sortedNames(metrics map[string]interface{}) []string {
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
