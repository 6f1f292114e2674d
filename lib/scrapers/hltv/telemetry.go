package hltv

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var tracer = otel.Tracer("hltvstats/scrapers/hltv")

var meter = otel.Meter("hltvstats/scrapers/hltv")

var (
	matchesFetched metric.Int64Counter
	fetchDuration  metric.Float64Histogram
)

func init() {
	var err error
	matchesFetched, err = meter.Int64Counter(
		"hltv.matches.fetched",
		metric.WithDescription("Match sections found on fetched history pages."),
	)
	if err != nil {
		otel.Handle(err)
	}
	fetchDuration, err = meter.Float64Histogram(
		"hltv.fetch.duration",
		metric.WithDescription("Time taken to fetch and parse a history page."),
		metric.WithUnit("s"),
	)
	if err != nil {
		otel.Handle(err)
	}
}
