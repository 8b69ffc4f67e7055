package serializer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rcrowley/go-metrics"
)

// ISO 8601, UTC, millisecond precision, explicit numeric offset.
// e,g 2015-10-22T11:50:34.762+00:00
const timestampLayout = "2006-01-02T15:04:05.000-07:00"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// document is an ordered JSON object under construction: the native
// fields of one metric, later extended with the cycle timestamp. Field
// order is insertion order, encoding happens once at the end, so the
// timestamp splice never has to re-parse or trim the native encoding.
type document struct {
	fields []field
}

type field struct {
	name  string
	value interface{}
}

func (this *document) add(name string, value interface{}) {
	this.fields = append(this.fields, field{name: name, value: value})
}

func (this *document) encode() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range this.fields {
		if i > 0 {
			buf.WriteByte(',')
		}

		name, err := json.Marshal(f.name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')

		value, err := json.Marshal(f.value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

var percentileRanks = []float64{0.5, 0.75, 0.95, 0.98, 0.99, 0.999}

// encodeMetric builds the native field set of one metric. Rates become
// events per rateUnit, timer durations are scaled to durationUnit.
// Deterministic for well-formed metric values; a nil value yields an
// empty field set rather than an error.
func encodeMetric(kind string, metric interface{},
	rateUnit, durationUnit time.Duration) (*document, error) {
	doc := &document{}
	if metric == nil {
		return doc, nil
	}

	switch kind {
	case KindGauge:
		switch m := metric.(type) {
		case metrics.Gauge:
			doc.add("value", m.Value())
		case metrics.GaugeFloat64:
			doc.add("value", m.Value())
		default:
			return nil, fmt.Errorf("unknown gauge type %T", metric)
		}

	case KindCounter:
		m, ok := metric.(metrics.Counter)
		if !ok {
			return nil, fmt.Errorf("unknown counter type %T", metric)
		}
		doc.add("count", m.Count())

	case KindHistogram:
		m, ok := metric.(metrics.Histogram)
		if !ok {
			return nil, fmt.Errorf("unknown histogram type %T", metric)
		}
		ps := m.Percentiles(percentileRanks)
		doc.add("count", m.Count())
		doc.add("min", m.Min())
		doc.add("max", m.Max())
		doc.add("mean", m.Mean())
		doc.add("stddev", m.StdDev())
		doc.add("p50", ps[0])
		doc.add("p75", ps[1])
		doc.add("p95", ps[2])
		doc.add("p98", ps[3])
		doc.add("p99", ps[4])
		doc.add("p999", ps[5])

	case KindMeter:
		m, ok := metric.(metrics.Meter)
		if !ok {
			return nil, fmt.Errorf("unknown meter type %T", metric)
		}
		doc.add("count", m.Count())
		doc.add("rate_1m", toRate(m.Rate1(), rateUnit))
		doc.add("rate_5m", toRate(m.Rate5(), rateUnit))
		doc.add("rate_15m", toRate(m.Rate15(), rateUnit))
		doc.add("rate_mean", toRate(m.RateMean(), rateUnit))
		doc.add("unit", rateUnitName(rateUnit))

	case KindTimer:
		m, ok := metric.(metrics.Timer)
		if !ok {
			return nil, fmt.Errorf("unknown timer type %T", metric)
		}
		ps := m.Percentiles(percentileRanks)
		doc.add("count", m.Count())
		doc.add("min", toDuration(float64(m.Min()), durationUnit))
		doc.add("max", toDuration(float64(m.Max()), durationUnit))
		doc.add("mean", toDuration(m.Mean(), durationUnit))
		doc.add("stddev", toDuration(m.StdDev(), durationUnit))
		doc.add("p50", toDuration(ps[0], durationUnit))
		doc.add("p75", toDuration(ps[1], durationUnit))
		doc.add("p95", toDuration(ps[2], durationUnit))
		doc.add("p98", toDuration(ps[3], durationUnit))
		doc.add("p99", toDuration(ps[4], durationUnit))
		doc.add("p999", toDuration(ps[5], durationUnit))
		doc.add("rate_1m", toRate(m.Rate1(), rateUnit))
		doc.add("rate_5m", toRate(m.Rate5(), rateUnit))
		doc.add("rate_15m", toRate(m.Rate15(), rateUnit))
		doc.add("rate_mean", toRate(m.RateMean(), rateUnit))
		doc.add("unit", rateUnitName(rateUnit))

	default:
		return nil, fmt.Errorf("unknown metric kind %q", kind)
	}

	return doc, nil
}

// go-metrics rates are events/second.
func toRate(perSecond float64, rateUnit time.Duration) float64 {
	return perSecond * rateUnit.Seconds()
}

// go-metrics durations are nanoseconds.
func toDuration(nanos float64, durationUnit time.Duration) float64 {
	return nanos / float64(durationUnit)
}

func rateUnitName(u time.Duration) string {
	switch u {
	case time.Nanosecond:
		return "events/nanosecond"
	case time.Microsecond:
		return "events/microsecond"
	case time.Millisecond:
		return "events/millisecond"
	case time.Second:
		return "events/second"
	case time.Minute:
		return "events/minute"
	case time.Hour:
		return "events/hour"
	}

	return "events/" + u.String()
}
