package calculator

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments — initialized once via InitMetrics().
var (
	keystrokeCounter metric.Int64Counter
	evalCounter      metric.Int64Counter
	evalHistogram    metric.Float64Histogram
	errorCounter     metric.Int64Counter
	lastResultGauge  metric.Float64Gauge
)

// InitMetrics registers custom OTel metric instruments for the calculator
// domain. Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("calculator")

	var err error

	keystrokeCounter, err = meter.Int64Counter("calculator.keystrokes.total",
		metric.WithDescription("Total keystrokes processed by the sanitizer"),
		metric.WithUnit("{keystroke}"),
	)
	if err != nil {
		return fmt.Errorf("creating keystroke counter: %w", err)
	}

	evalCounter, err = meter.Int64Counter("calculator.evaluations.total",
		metric.WithDescription("Total display-string evaluations performed"),
		metric.WithUnit("{evaluation}"),
	)
	if err != nil {
		return fmt.Errorf("creating evaluation counter: %w", err)
	}

	evalHistogram, err = meter.Float64Histogram("calculator.evaluate.duration",
		metric.WithDescription("Duration of display-string evaluations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating evaluate histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("calculator.errors.total",
		metric.WithDescription("Total calculator request failures"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	lastResultGauge, err = meter.Float64Gauge("calculator.last_result",
		metric.WithDescription("The most recent successful evaluation result"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating result gauge: %w", err)
	}

	return nil
}
