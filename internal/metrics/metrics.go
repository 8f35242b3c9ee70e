// Package metrics exposes Prometheus counters for HTTP traffic and record
// store access.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BruksfildServices01/salon-scheduler/internal/store"
)

const namespace = "salon"

type Metrics struct {
	gatherer prometheus.Gatherer

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec
	storeOps     *prometheus.CounterVec
}

// New registers the collectors on reg. A nil reg uses a fresh registry.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		gatherer: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		storeOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Record store operations by collection and outcome",
		}, []string{"op", "collection", "result"}),
	}

	reg.MustRegister(m.httpRequests, m.httpLatency, m.storeOps)
	return m
}

func (m *Metrics) ObserveStore(op string, c store.Collection, err error) {
	if m == nil {
		return
	}
	result := "ok"
	switch {
	case err == nil:
	case errors.Is(err, store.ErrNotFound):
		result = "miss"
	default:
		result = "error"
	}
	m.storeOps.WithLabelValues(op, string(c), result).Inc()
}

// Middleware counts requests by matched route.
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
		m.httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpLatency.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// ===============================
// Instrumented store
// ===============================

type instrumented struct {
	next store.Store
	m    *Metrics
}

// InstrumentStore counts every operation that reaches s.
func InstrumentStore(s store.Store, m *Metrics) store.Store {
	return &instrumented{next: s, m: m}
}

func (i *instrumented) Load(ctx context.Context, c store.Collection) ([]byte, error) {
	b, err := i.next.Load(ctx, c)
	i.m.ObserveStore("load", c, err)
	return b, err
}

func (i *instrumented) Save(ctx context.Context, c store.Collection, payload []byte) error {
	err := i.next.Save(ctx, c, payload)
	i.m.ObserveStore("save", c, err)
	return err
}

func (i *instrumented) Delete(ctx context.Context, c store.Collection) error {
	err := i.next.Delete(ctx, c)
	i.m.ObserveStore("delete", c, err)
	return err
}

func (i *instrumented) Close() error {
	return i.next.Close()
}
