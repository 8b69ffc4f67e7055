package serializer

import (
	"math"
	"testing"
	"time"

	"github.com/funkygao/assert"
	"github.com/rcrowley/go-metrics"
)

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2015, 10, 22, 11, 50, 34, 762000000, time.UTC)
	assert.Equal(t, "2015-10-22T11:50:34.762+00:00", formatTimestamp(ts))

	// non-UTC wall clocks normalize to UTC
	cst := time.FixedZone("CST", 8*3600)
	assert.Equal(t, "2015-10-22T11:50:34.762+00:00",
		formatTimestamp(time.Date(2015, 10, 22, 19, 50, 34, 762000000, cst)))
}

func TestRateUnitName(t *testing.T) {
	assert.Equal(t, "events/second", rateUnitName(time.Second))
	assert.Equal(t, "events/minute", rateUnitName(time.Minute))
	assert.Equal(t, "events/millisecond", rateUnitName(time.Millisecond))
	assert.Equal(t, "events/hour", rateUnitName(time.Hour))
	assert.Equal(t, "events/2s", rateUnitName(2*time.Second))
}

func TestToRateToDuration(t *testing.T) {
	assert.Equal(t, 1.5, toRate(1.5, time.Second))
	assert.Equal(t, 90.0, toRate(1.5, time.Minute))
	assert.Equal(t, 1000.0, toDuration(float64(time.Second), time.Millisecond))
	assert.Equal(t, 1.0, toDuration(float64(time.Second), time.Second))
}

func TestDocumentEncode(t *testing.T) {
	doc := &document{}
	b, err := doc.encode()
	assert.Equal(t, nil, err)
	assert.Equal(t, "{}", string(b))

	doc.add("value", int64(42))
	doc.add("timestamp", "2015-10-22T11:50:34.762+00:00")
	b, err = doc.encode()
	assert.Equal(t, nil, err)
	assert.Equal(t, `{"value":42,"timestamp":"2015-10-22T11:50:34.762+00:00"}`, string(b))
}

func TestDocumentEncodeBadValue(t *testing.T) {
	doc := &document{}
	doc.add("value", math.NaN())
	_, err := doc.encode()
	assert.NotEqual(t, nil, err)
}

func fieldNames(doc *document) []string {
	names := make([]string, 0, len(doc.fields))
	for _, f := range doc.fields {
		names = append(names, f.name)
	}
	return names
}

func TestEncodeGauge(t *testing.T) {
	g := metrics.NewGauge()
	g.Update(42)
	doc, err := encodeMetric(KindGauge, g.Snapshot(), time.Second, time.Millisecond)
	assert.Equal(t, nil, err)
	assert.Equal(t, []string{"value"}, fieldNames(doc))
	assert.Equal(t, int64(42), doc.fields[0].value)

	gf := metrics.NewGaugeFloat64()
	gf.Update(0.5)
	doc, err = encodeMetric(KindGauge, gf.Snapshot(), time.Second, time.Millisecond)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0.5, doc.fields[0].value)
}

func TestEncodeGaugeDegenerate(t *testing.T) {
	// a nil value still encodes, as an empty field set
	doc, err := encodeMetric(KindGauge, nil, time.Second, time.Millisecond)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(doc.fields))
}

func TestEncodeGaugeUnknownType(t *testing.T) {
	_, err := encodeMetric(KindGauge, "not a gauge", time.Second, time.Millisecond)
	assert.NotEqual(t, nil, err)
}

func TestEncodeCounter(t *testing.T) {
	c := metrics.NewCounter()
	c.Inc(7)
	doc, err := encodeMetric(KindCounter, c.Snapshot(), time.Second, time.Millisecond)
	assert.Equal(t, nil, err)
	assert.Equal(t, []string{"count"}, fieldNames(doc))
	assert.Equal(t, int64(7), doc.fields[0].value)
}

func TestEncodeHistogram(t *testing.T) {
	h := metrics.NewHistogram(metrics.NewUniformSample(128))
	h.Update(1)
	h.Update(2)
	h.Update(3)

	doc, err := encodeMetric(KindHistogram, h.Snapshot(), time.Second, time.Millisecond)
	assert.Equal(t, nil, err)
	assert.Equal(t, []string{"count", "min", "max", "mean", "stddev",
		"p50", "p75", "p95", "p98", "p99", "p999"}, fieldNames(doc))
	assert.Equal(t, int64(3), doc.fields[0].value)
	assert.Equal(t, int64(1), doc.fields[1].value)
	assert.Equal(t, int64(3), doc.fields[2].value)
	assert.Equal(t, 2.0, doc.fields[3].value)
}

func TestEncodeMeter(t *testing.T) {
	m := metrics.NewMeter()
	defer m.Stop()
	m.Mark(7)

	doc, err := encodeMetric(KindMeter, m.Snapshot(), time.Minute, time.Millisecond)
	assert.Equal(t, nil, err)
	assert.Equal(t, []string{"count", "rate_1m", "rate_5m", "rate_15m",
		"rate_mean", "unit"}, fieldNames(doc))
	assert.Equal(t, int64(7), doc.fields[0].value)
	assert.Equal(t, "events/minute", doc.fields[5].value)
}

func TestEncodeTimer(t *testing.T) {
	tm := metrics.NewTimer()
	defer tm.Stop()
	tm.Update(time.Second)

	doc, err := encodeMetric(KindTimer, tm.Snapshot(), time.Second, time.Millisecond)
	assert.Equal(t, nil, err)
	assert.Equal(t, []string{"count", "min", "max", "mean", "stddev",
		"p50", "p75", "p95", "p98", "p99", "p999",
		"rate_1m", "rate_5m", "rate_15m", "rate_mean", "unit"}, fieldNames(doc))

	// 1s scaled to milliseconds
	assert.Equal(t, int64(1), doc.fields[0].value)
	assert.Equal(t, 1000.0, doc.fields[1].value)
	assert.Equal(t, 1000.0, doc.fields[2].value)
	assert.Equal(t, 1000.0, doc.fields[3].value)
	assert.Equal(t, "events/second", doc.fields[15].value)
}

func TestEncodeUnknownKind(t *testing.T) {
	_, err := encodeMetric("thermometer", metrics.NewCounter(), time.Second, time.Millisecond)
	assert.NotEqual(t, nil, err)
}

// 1276 ns/op	     688 B/op	      11 allocs/op
func BenchmarkEncodeTimer(b *testing.B) {
	tm := metrics.NewTimer()
	defer tm.Stop()
	tm.Update(time.Second)
	snapshot := tm.Snapshot()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		encodeMetric(KindTimer, snapshot, time.Second, time.Millisecond)
	}
}
