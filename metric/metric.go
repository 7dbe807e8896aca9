package metric

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	dashboardNS  = "health_dashboard"
	serverSubsys = "server"
	repoSubsys   = "repository"

	componentLabel  = "component"
	methodLabel     = "method"
	statusCodeLabel = "status_code"
	errorTypeLabel  = "error_type"
	tableLabel      = "table"
	queryLabel      = "query"
)

var (
	defaultBuckets = prometheus.ExponentialBuckets(0.002, 2, 16)

	// server metrics
	ServerRequestReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: dashboardNS,
		Subsystem: serverSubsys,
		Name:      "requests_received_total",
		Help:      "",
	}, []string{componentLabel, methodLabel})
	ServerRequestHandled = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: dashboardNS,
		Subsystem: serverSubsys,
		Name:      "requests_handled_total",
		Help:      "",
	}, []string{componentLabel, methodLabel, statusCodeLabel})
	ServerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: dashboardNS,
		Subsystem: serverSubsys,
		Name:      "requests_duration_seconds",
		Help:      "",
		Buckets:   defaultBuckets,
	}, []string{componentLabel, methodLabel, statusCodeLabel})
	ServerRequestPanics = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: dashboardNS,
		Subsystem: serverSubsys,
		Name:      "requests_panics_total",
		Help:      "",
	})
	ServerRateLimits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: dashboardNS,
		Subsystem: serverSubsys,
		Name:      "requests_rate_limits_total",
		Help:      "",
	})

	// repository metrics
	RepositoryRequestSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: dashboardNS,
		Subsystem: repoSubsys,
		Name:      "requests_sent_total",
		Help:      "",
	}, []string{tableLabel, queryLabel})
	RepositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: dashboardNS,
		Subsystem: repoSubsys,
		Name:      "requests_sent_duration_seconds",
		Help:      "",
		Buckets:   defaultBuckets,
	}, []string{tableLabel, queryLabel})
	RepositoryRequestError = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: dashboardNS,
		Subsystem: repoSubsys,
		Name:      "requests_errors_total",
		Help:      "",
	}, []string{tableLabel, queryLabel, errorTypeLabel})
)

// HandledIncomingRequest handles metrics for processed incoming request.
func HandledIncomingRequest(ctx context.Context, component, method, statusCode string, took time.Duration) {
	ctxErr := ctx.Err()
	if errors.Is(ctxErr, context.Canceled) {
		statusCode = context.Canceled.Error()
	} else if errors.Is(ctxErr, context.DeadlineExceeded) {
		statusCode = context.DeadlineExceeded.Error()
	}
	ServerRequestDuration.WithLabelValues(component, method, statusCode).Observe(took.Seconds())
	ServerRequestHandled.WithLabelValues(component, method, statusCode).Inc()
}
