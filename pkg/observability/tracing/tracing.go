/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tracing

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

var logger = log.New("tracing")

// SpanExporterType specifies the type of span exporter used by tracer provider.
type SpanExporterType = string

const (
	None    SpanExporterType = ""
	Default SpanExporterType = "DEFAULT"
	Stdout  SpanExporterType = "STDOUT"
)

const (
	tracerName = "https://github.com/proofly/proofly"
)

// IsExportedSupported reports whether exporter is a known span exporter type.
func IsExportedSupported(exporter SpanExporterType) bool {
	switch exporter {
	case None, Default, Stdout:
		return true
	default:
		return false
	}
}

type options struct {
	collectorURL string
	stdout       io.Writer
}

// Opt configures Initialize.
type Opt func(o *options)

// WithCollectorURL sets the OTLP HTTP endpoint of the DEFAULT exporter, overriding the
// OTEL_EXPORTER_OTLP_* environment variables.
func WithCollectorURL(url string) Opt {
	return func(o *options) {
		o.collectorURL = url
	}
}

// WithStdoutWriter sets the destination of the STDOUT exporter. Spans go to os.Stdout by default.
func WithStdoutWriter(w io.Writer) Opt {
	return func(o *options) {
		o.stdout = w
	}
}

// Initialize creates and registers globally a new tracer provider with specified span exporter.
// Return values are:
// - func() - Should be called to gracefully shut down the tracer provider before the process terminates.
// - trace.Tracer - Used to start new spans.
// - trace.TracerProvider - Passed to instrumented clients (MongoDB, Redis).
// - error - An error if the tracer provider could not be initialized or nil if successful.
func Initialize(exporter SpanExporterType, serviceName string,
	opts ...Opt) (func(), trace.Tracer, trace.TracerProvider, error) {
	o := &options{}

	for _, opt := range opts {
		opt(o)
	}

	if exporter == None {
		tp := noop.NewTracerProvider()

		return func() {}, tp.Tracer(""), tp, nil
	}

	var (
		spanExporter tracesdk.SpanExporter
		err          error
	)

	switch exporter {
	case Default:
		// Without a collector URL the endpoint comes from the OTEL_EXPORTER_OTLP_* environment variables.
		var httpOpts []otlptracehttp.Option

		if o.collectorURL != "" {
			httpOpts = append(httpOpts, otlptracehttp.WithEndpointURL(o.collectorURL))
		}

		spanExporter, err = otlptracehttp.New(context.Background(), httpOpts...)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("create otlp http exporter: %w", err)
		}
	case Stdout:
		var stdoutOpts []stdouttrace.Option

		if o.stdout != nil {
			stdoutOpts = append(stdoutOpts, stdouttrace.WithWriter(o.stdout))
		}

		spanExporter, err = stdouttrace.New(stdoutOpts...)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("create stdout exporter: %w", err)
		}
	default:
		return nil, nil, nil, fmt.Errorf("unsupported exporter type: %s", exporter)
	}

	tracerProvider := tracesdk.NewTracerProvider(
		tracesdk.WithBatcher(spanExporter),
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
			semconv.ProcessPIDKey.Int(os.Getpid()),
		)),
	)

	// Register the TracerProvider as the global so any imported
	// instrumentation in the future will default to using it.
	otel.SetTracerProvider(tracerProvider)

	// Propagate trace context via traceparent and tracestate headers (https://www.w3.org/TR/trace-context/).
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return func() {
		if err = tracerProvider.Shutdown(context.Background()); err != nil {
			logger.Warn("Error shutting down tracer provider", log.WithError(err))
		}
	}, tracerProvider.Tracer(tracerName), tracerProvider, nil
}
