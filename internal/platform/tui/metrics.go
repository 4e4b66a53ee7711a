package tui

import (
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/vovakirdan/tui-defender/internal/platform/tui"

// instruments are the counters recorded by the TUI and the SSH server.
// They report to the global OTel provider and are no-ops until one is set.
type instruments struct {
	runs     metric.Int64Counter
	replays  metric.Int64Counter
	sessions metric.Int64UpDownCounter
}

var loadInstruments = sync.OnceValue(func() *instruments {
	m := otel.Meter(instrumentationName)
	ins := &instruments{}

	var err error
	ins.runs, err = m.Int64Counter(
		"defender.runs.finished",
		metric.WithDescription("Runs that reached the end screen"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		logger.Warn("cannot create runs counter", "error", err)
		ins.runs = noop.Int64Counter{}
	}

	ins.replays, err = m.Int64Counter(
		"defender.replays.saved",
		metric.WithDescription("Replays written to the store"),
		metric.WithUnit("{replay}"),
	)
	if err != nil {
		logger.Warn("cannot create replays counter", "error", err)
		ins.replays = noop.Int64Counter{}
	}

	ins.sessions, err = m.Int64UpDownCounter(
		"defender.ssh.sessions",
		metric.WithDescription("Open SSH sessions"),
		metric.WithUnit("{session}"),
	)
	if err != nil {
		logger.Warn("cannot create sessions counter", "error", err)
		ins.sessions = noop.Int64UpDownCounter{}
	}

	return ins
})
