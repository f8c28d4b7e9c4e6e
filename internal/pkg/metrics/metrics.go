package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	ModerationTotal    *prometheus.CounterVec
	ModerationDuration *prometheus.HistogramVec
	OutboxPublished    prometheus.Counter
	OutboxFailed       prometheus.Counter
	HTTPRequests       *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	moderation := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pricewatch_moderation_total",
		Help: "Moderation decisions by action and outcome.",
	}, []string{"action", "outcome"})
	moderationDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pricewatch_moderation_duration_seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"action"})
	published := prometheus.NewCounter(prometheus.CounterOpts{Name: "pricewatch_outbox_published_total"})
	failed := prometheus.NewCounter(prometheus.CounterOpts{Name: "pricewatch_outbox_failed_total"})
	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pricewatch_http_requests_total",
	}, []string{"method", "route", "status"})

	r.MustRegister(
		moderation, moderationDuration, published, failed, httpRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &Registry{
		reg:                r,
		ModerationTotal:    moderation,
		ModerationDuration: moderationDuration,
		OutboxPublished:    published,
		OutboxFailed:       failed,
		HTTPRequests:       httpRequests,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }

// Gatherer exposes the registry to tests.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }
