// kafkametricsd feeds a demo metrics registry and publishes it to a
// kafka topic until interrupted.
package main

import (
	"fmt"
	l "log"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Shopify/sarama"
	log "github.com/funkygao/log4go"
	"github.com/rcrowley/go-metrics"

	"github.com/funkygao/kafkametrics"
	"github.com/funkygao/kafkametrics/serializer"
)

func init() {
	parseFlags()

	if options.showVersion {
		fmt.Fprintf(os.Stderr, "%s-%s\n", kafkametrics.Version, kafkametrics.BuildId)
		os.Exit(0)
	}

	if options.debug {
		sarama.Logger = l.New(os.Stdout, "[Sarama]", l.LstdFlags|l.Lshortfile)
	}
}

func main() {
	cf, err := kafkametrics.NewConfig(options.topic, options.interval)
	if err != nil {
		panic(err)
	}
	if options.byteEncoded {
		cf.Serializer(&serializer.JSONBytesSerializer{})
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true

	asyncProducer, err := sarama.NewAsyncProducer(strings.Split(options.brokers, ","), saramaConfig)
	if err != nil {
		panic(err)
	}
	producer := kafkametrics.NewAsyncProducer(asyncProducer)

	reg := metrics.NewRegistry()
	go feed(reg)

	reporter, err := kafkametrics.New(reg, producer, cf)
	if err != nil {
		panic(err)
	}
	go reporter.Start()

	log.Info("%s reporter started, publishing to %s every %s",
		reporter.Name(), options.topic, options.interval)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("quiting...")
	reporter.Stop()
	producer.Close()
	log.Close()
}

// feed keeps a small zoo of metrics moving so that each report cycle
// has fresh values for every metric kind.
func feed(reg metrics.Registry) {
	gauge := metrics.NewRegisteredGauge("demo.random", reg)
	counter := metrics.NewRegisteredCounter("demo.ticks", reg)
	histogram := metrics.NewRegisteredHistogram("demo.sizes", reg,
		metrics.NewExpDecaySample(1028, 0.015))
	meter := metrics.NewRegisteredMeter("demo.throughput", reg)
	timer := metrics.NewRegisteredTimer("demo.latency", reg)

	for range time.Tick(time.Second) {
		gauge.Update(rand.Int63n(100))
		counter.Inc(1)
		histogram.Update(rand.Int63n(1 << 20))
		meter.Mark(rand.Int63n(10))
		timer.Update(time.Duration(rand.Int63n(int64(time.Second))))
	}
}
