package telemetry

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the application instruments. A nil *Metrics records
// nothing, so callers never need to guard.
type Metrics struct {
	commentsSubmitted metric.Int64Counter
	categoryOrphans   metric.Int64Counter
	rateLimited       metric.Int64Counter
	requestDuration   metric.Float64Histogram
}

func NewMetrics(meter metric.Meter) (*Metrics, error) {
	var (
		m   Metrics
		err error
	)

	m.commentsSubmitted, err = meter.Int64Counter("newsportal_comments_submitted",
		metric.WithDescription("Comments submitted, by initial moderation status"))
	if err != nil {
		return nil, err
	}

	m.categoryOrphans, err = meter.Int64Counter("newsportal_category_orphans",
		metric.WithDescription("Categories promoted to roots because their parent did not resolve"))
	if err != nil {
		return nil, err
	}

	m.rateLimited, err = meter.Int64Counter("newsportal_rate_limited",
		metric.WithDescription("Requests rejected by the rate limiter"))
	if err != nil {
		return nil, err
	}

	m.requestDuration, err = meter.Float64Histogram("newsportal_http_request_duration",
		metric.WithDescription("HTTP request latency"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (m *Metrics) CommentSubmitted(ctx context.Context, status string) {
	if m == nil {
		return
	}
	m.commentsSubmitted.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
}

func (m *Metrics) CategoryOrphans(ctx context.Context, n int) {
	if m == nil || n == 0 {
		return
	}
	m.categoryOrphans.Add(ctx, int64(n))
}

func (m *Metrics) RateLimited(ctx context.Context, route string) {
	if m == nil {
		return
	}
	m.rateLimited.Add(ctx, 1, metric.WithAttributes(attribute.String("route", route)))
}

// Middleware records request latency by route template, method and status.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if m == nil {
			return
		}
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requestDuration.Record(c.Request.Context(), time.Since(start).Seconds(),
			metric.WithAttributes(
				attribute.String("route", route),
				attribute.String("method", c.Request.Method),
				attribute.String("status", strconv.Itoa(c.Writer.Status())),
			))
	}
}
