package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// HTTPMetricsMiddleware returns a Gin middleware recording "<namespace>_http_requests_total" and
// "<namespace>_http_request_duration_seconds" with method, path and status_code labels.
// The path label is the matched route pattern, or "unknown", never the raw URL, so query
// strings carrying tokens never reach the metrics backend.
func HTTPMetricsMiddleware(meterProvider metric.MeterProvider, namespace string) gin.HandlerFunc {
	meter := meterProvider.Meter(namespace)

	// Create counter for total HTTP requests
	requestCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_http_requests_total", namespace),
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		// Metrics are optional; serve requests without them
		return passThrough
	}

	// Create histogram for HTTP request durations
	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_http_request_duration_seconds", namespace),
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DurationBuckets...),
	)
	if err != nil {
		return passThrough
	}

	return func(c *gin.Context) {
		start := time.Now()

		// Process request
		c.Next()

		// Record metrics after request completes, labelled by route pattern
		attrs := metric.WithAttributes(
			attribute.String("method", c.Request.Method),
			attribute.String("path", sanitizePath(c.FullPath())),
			attribute.String("status_code", strconv.Itoa(c.Writer.Status())),
		)

		// Record request count and duration
		ctx := c.Request.Context()
		requestCounter.Add(ctx, 1, attrs)
		durationHisto.Record(ctx, time.Since(start).Seconds(), attrs)
	}
}

// passThrough is the no-op middleware used when instruments cannot be created.
func passThrough(c *gin.Context) {
	c.Next()
}

// sanitizePath returns the route pattern, or "unknown" when no route matched.
func sanitizePath(fullPath string) string {
	if fullPath == "" {
		return "unknown"
	}
	return fullPath
}
