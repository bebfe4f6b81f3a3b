// Package metrics provides Prometheus metrics for the portfolio API.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestsTotal counts HTTP requests by route and status.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// RequestDuration measures handler latency.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "portfolio",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// MutationsTotal counts content writes by resource and outcome.
	MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "mutations_total",
			Help:      "Total number of create/update/delete operations",
		},
		[]string{"resource", "operation", "outcome"},
	)

	// ArticleViews counts view increments that reached the database.
	ArticleViews = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "article_views_total",
			Help:      "Total number of counted article views",
		},
	)

	// DBConnections mirrors database/sql pool stats.
	DBConnections = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "portfolio",
			Name:      "db_connections",
			Help:      "Database connection pool state",
		},
		[]string{"state"},
	)
)

// RecordMutation records a create/update/delete attempt.
func RecordMutation(resource, operation, outcome string) {
	MutationsTotal.WithLabelValues(resource, operation, outcome).Inc()
}

// Middleware observes every request under its route template.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		RequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		RequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the default registry.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
