package telemetry_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/project-tracker/internal/platform/config"
	"github.com/jsamuelsen11/project-tracker/internal/platform/telemetry"
)

func TestStart_Disabled(t *testing.T) {
	p, err := telemetry.Start(context.Background(), config.TelemetryConfig{Enabled: false})
	require.NoError(t, err)

	assert.Nil(t, p.Tracer)
	assert.Nil(t, p.Meter)
	assert.Nil(t, p.Metrics)
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestStart_Exporters(t *testing.T) {
	tests := []struct {
		name     string
		exporter string
		endpoint string
	}{
		{name: "stdout", exporter: telemetry.ExporterStdout},
		{name: "otlp over http", exporter: telemetry.ExporterOTLP, endpoint: "http://localhost:4318"},
		{name: "otlp over https", exporter: telemetry.ExporterOTLP, endpoint: "https://collector.internal:4318"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			p, err := telemetry.Start(ctx, config.TelemetryConfig{
				Enabled:     true,
				Exporter:    tt.exporter,
				Endpoint:    tt.endpoint,
				ServiceName: "tracker-test",
			})
			require.NoError(t, err)

			assert.NotNil(t, p.Tracer)
			assert.NotNil(t, p.Meter)
			assert.NotNil(t, p.Metrics)

			if tt.exporter == telemetry.ExporterStdout {
				assert.NoError(t, p.Shutdown(ctx))
				return
			}
			// No collector is listening; only bound the flush.
			shutdownCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
			defer cancel()
			_ = p.Shutdown(shutdownCtx)
		})
	}
}

func TestStart_SetsGlobalPropagator(t *testing.T) {
	ctx := context.Background()
	p, err := telemetry.Start(ctx, config.TelemetryConfig{
		Enabled:     true,
		Exporter:    telemetry.ExporterStdout,
		ServiceName: "tracker-test",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = p.Shutdown(ctx)
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator())
	})

	fields := otel.GetTextMapPropagator().Fields()
	assert.Contains(t, fields, "traceparent")
	assert.Contains(t, fields, "baggage")
}

func TestStart_InvalidExporter(t *testing.T) {
	tests := []struct {
		name     string
		exporter string
		endpoint string
		wantErr  string
	}{
		{name: "unknown exporter", exporter: "zipkin", wantErr: `unsupported exporter "zipkin"`},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP, wantErr: "requires an endpoint"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := telemetry.Start(context.Background(), config.TelemetryConfig{
				Enabled:  true,
				Exporter: tt.exporter,
				Endpoint: tt.endpoint,
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Nil(t, p)
		})
	}
}

func TestProviders_ShutdownNil(t *testing.T) {
	var p *telemetry.Providers
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNewMetrics_RegistersInstruments(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := telemetry.NewMetrics(mp, "tracker-test")
	require.NoError(t, err)

	ctx := context.Background()
	m.ServerRequestDuration.Record(ctx, 0.01)
	m.ServerRequestTotal.Add(ctx, 1)
	m.ClientRequestDuration.Record(ctx, 0.02)
	m.ClientRequestTotal.Add(ctx, 1)
	m.CommandDuration.Record(ctx, 0.003)
	m.CommandTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrCommand.String("RenameProject"),
		telemetry.AttrResult.String("ok"),
	))
	m.EventDispatchTotal.Add(ctx, 2, metric.WithAttributes(
		telemetry.AttrEventType.String("project.item_added"),
	))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	names := make([]string, 0, len(rm.ScopeMetrics[0].Metrics))
	for _, md := range rm.ScopeMetrics[0].Metrics {
		names = append(names, md.Name)
	}
	assert.ElementsMatch(t, []string{
		"http.server.request.duration",
		"http.server.request.total",
		"http.client.request.duration",
		"http.client.request.total",
		"tracker.command.duration",
		"tracker.command.total",
		"tracker.event.dispatch.total",
	}, names)
}
