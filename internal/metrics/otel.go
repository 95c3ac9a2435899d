package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const defaultServiceName = "ballknowers"

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Telemetry bundles the recorder with the registry backing its Prometheus exporter.
type Telemetry struct {
	Recorder *Recorder
	Gatherer prometheus.Gatherer
	shutdown func(context.Context) error
}

// Shutdown flushes and stops the meter provider.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t == nil || t.shutdown == nil {
		return nil
	}
	return t.shutdown(ctx)
}

// Push sends the gathered metrics to a Prometheus Pushgateway under job.
// It is a no-op when metrics are disabled or url is empty.
func (t *Telemetry) Push(ctx context.Context, url, job string) error {
	if t == nil || t.Gatherer == nil || url == "" {
		return nil
	}
	if err := push.New(url, job).Gatherer(t.Gatherer).PushContext(ctx); err != nil {
		return fmt.Errorf("pushing metrics: %w", err)
	}
	return nil
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and optional OTLP exporter.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Telemetry, error) {
	if !cfg.Enabled {
		return &Telemetry{Recorder: NewRecorder()}, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = defaultServiceName
	}

	promReader, reg, err := promReaderFactory()
	if err != nil {
		return nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, err
	}

	return &Telemetry{
		Recorder: newRecorder(otelInst),
		Gatherer: reg,
		shutdown: provider.Shutdown,
	}, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

type otelInstruments struct {
	ctx               context.Context
	providerAttempts  metric.Int64Counter
	providerErrors    metric.Int64Counter
	providerLatencyMs metric.Float64Histogram
	rateLimitHits     metric.Int64Counter
	retryAfterMs      metric.Float64Histogram
	breakerChanges    metric.Int64Counter
	runs              metric.Int64Counter
	runErrors         metric.Int64Counter
	runLatencyMs      metric.Float64Histogram
	playersScored     metric.Int64Counter
	trendingMatched   metric.Int64Counter
	trendingSeen      metric.Int64Counter
}

func prometheusComponents() (sdkmetric.Reader, *prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, reg, nil
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter(defaultServiceName)
	inst := &otelInstruments{ctx: context.Background()}

	counters := []struct {
		name string
		dst  *metric.Int64Counter
	}{
		{"provider_attempts_total", &inst.providerAttempts},
		{"provider_errors_total", &inst.providerErrors},
		{"provider_rate_limit_hits_total", &inst.rateLimitHits},
		{"provider_breaker_state_changes_total", &inst.breakerChanges},
		{"report_runs_total", &inst.runs},
		{"report_run_errors_total", &inst.runErrors},
		{"report_players_scored_total", &inst.playersScored},
		{"report_trending_matched_total", &inst.trendingMatched},
		{"report_trending_entries_total", &inst.trendingSeen},
	}
	for _, c := range counters {
		counter, err := meter.Int64Counter(c.name)
		if err != nil {
			return nil, err
		}
		*c.dst = counter
	}

	histograms := []struct {
		name string
		dst  *metric.Float64Histogram
	}{
		{"provider_duration_ms", &inst.providerLatencyMs},
		{"provider_retry_after_ms", &inst.retryAfterMs},
		{"report_run_duration_ms", &inst.runLatencyMs},
	}
	for _, h := range histograms {
		hist, err := meter.Float64Histogram(h.name)
		if err != nil {
			return nil, err
		}
		*h.dst = hist
	}

	return inst, nil
}

func (o *otelInstruments) recordProviderAttempt(provider string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrProvider, provider)}
	o.recordCounter(o.providerAttempts, 1, attrs...)
	o.recordHistogram(o.providerLatencyMs, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.recordCounter(o.providerErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordRateLimit(provider string, retryAfter time.Duration) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrProvider, provider)}
	o.recordCounter(o.rateLimitHits, 1, attrs...)
	if retryAfter > 0 {
		o.recordHistogram(o.retryAfterMs, float64(retryAfter.Milliseconds()), attrs...)
	}
}

func (o *otelInstruments) recordBreakerState(name, to string) {
	if o == nil {
		return
	}
	o.recordCounter(o.breakerChanges, 1,
		attribute.String(AttrBreaker, name),
		attribute.String(AttrState, to),
	)
}

func (o *otelInstruments) recordRun(command string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrCommand, command)}
	o.recordCounter(o.runs, 1, attrs...)
	o.recordHistogram(o.runLatencyMs, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.recordCounter(o.runErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordReport(playersScored, trendingMatched, trendingTotal int) {
	if o == nil {
		return
	}
	o.recordCounter(o.playersScored, int64(playersScored))
	o.recordCounter(o.trendingMatched, int64(trendingMatched))
	o.recordCounter(o.trendingSeen, int64(trendingTotal))
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogram(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	hist.Record(o.ctx, value, metric.WithAttributes(attrs...))
}
