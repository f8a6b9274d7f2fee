// Package telemetry owns the OpenTelemetry SDK lifecycle for the tracker and
// the instruments recorded by its HTTP, command and event layers.
//
//	p, err := telemetry.Start(ctx, cfg.Telemetry)
//	defer p.Shutdown(ctx)
//	p.Metrics.CommandTotal.Add(ctx, 1, ...)
//
// A disabled configuration yields Providers with a nil Metrics; every
// consumer treats nil Metrics as "record nothing".
package telemetry

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// instrumentationScope names the meter that owns every instrument below.
const instrumentationScope = "github.com/jsamuelsen11/project-tracker"

// Attribute keys for metric labels.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrCommand     = attribute.Key("command")
	AttrEventType   = attribute.Key("event.type")
)

// Metrics holds pre-registered OpenTelemetry metric instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// CommandDuration and CommandTotal record every application use case,
	// labelled with the command name and its failure kind ("ok" on success).
	CommandDuration metric.Float64Histogram
	CommandTotal    metric.Int64Counter

	// EventDispatchTotal counts domain events handed to subscribers.
	EventDispatchTotal metric.Int64Counter
}

// NewMetrics creates all metric instruments from mp. The serviceName is
// attached to the meter as an instrumentation attribute.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(instrumentationScope,
		metric.WithInstrumentationAttributes(attribute.String("service.name", serviceName)),
	)

	var (
		m    Metrics
		errs []error
	)

	m.ServerRequestDuration = histogram(meter, &errs,
		"http.server.request.duration", "Duration of incoming HTTP requests", "s")
	m.ServerRequestTotal = counter(meter, &errs,
		"http.server.request.total", "Total number of incoming HTTP requests", "{request}")
	m.ClientRequestDuration = histogram(meter, &errs,
		"http.client.request.duration", "Duration of outgoing webhook requests", "s")
	m.ClientRequestTotal = counter(meter, &errs,
		"http.client.request.total", "Total number of outgoing webhook requests", "{request}")
	m.CommandDuration = histogram(meter, &errs,
		"tracker.command.duration", "Duration of project commands", "s")
	m.CommandTotal = counter(meter, &errs,
		"tracker.command.total", "Total number of project commands by outcome", "{command}")
	m.EventDispatchTotal = counter(meter, &errs,
		"tracker.event.dispatch.total", "Total number of domain events dispatched", "{event}")

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &m, nil
}

func histogram(meter metric.Meter, errs *[]error, name, desc, unit string) metric.Float64Histogram {
	h, err := meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		*errs = append(*errs, fmt.Errorf("creating %s: %w", name, err))
	}
	return h
}

func counter(meter metric.Meter, errs *[]error, name, desc, unit string) metric.Int64Counter {
	c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		*errs = append(*errs, fmt.Errorf("creating %s: %w", name, err))
	}
	return c
}
