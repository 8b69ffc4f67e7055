package main

import (
	"flag"
	"time"
)

var options struct {
	brokers     string
	topic       string
	interval    time.Duration
	byteEncoded bool
	debug       bool
	showVersion bool
}

func parseFlags() {
	flag.StringVar(&options.brokers, "brokers", "localhost:9092", "comma separated kafka broker list")
	flag.StringVar(&options.topic, "topic", "metrics", "kafka topic to publish metrics to")
	flag.DurationVar(&options.interval, "interval", time.Second*10, "report interval")
	flag.BoolVar(&options.byteEncoded, "bytes", false, "produce byte encoded messages instead of strings")
	flag.BoolVar(&options.debug, "debug", false, "debug mode")
	flag.BoolVar(&options.showVersion, "version", false, "show version and exit")

	flag.Parse()
}
