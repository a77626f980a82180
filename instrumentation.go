package imggen

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "imggen_client"

// clientMetrics records per-operation request counts and latency.
// A nil *clientMetrics is valid and records nothing.
type clientMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func newClientMetrics(reg prometheus.Registerer) *clientMetrics {
	if reg == nil {
		return nil
	}

	m := &clientMetrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "requests_total",
				Help:      "Total number of requests sent to the image generator API",
			},
			[]string{"operation", "status", "code"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "request_duration_seconds",
				Help:      "Image generator API request duration in seconds",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"operation"},
		),
	}

	var err error
	if m.requestsTotal, err = registerOrReuse(reg, m.requestsTotal); err != nil {
		return nil
	}
	if m.requestDuration, err = registerOrReuse(reg, m.requestDuration); err != nil {
		return nil
	}
	return m
}

// registerOrReuse registers c, or returns the collector already registered
// under the same descriptor so several clients can share one registry.
func registerOrReuse[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (m *clientMetrics) observe(op string, status int, err error, d time.Duration) {
	if m == nil {
		return
	}

	code := "ok"
	var e *Error
	if errors.As(err, &e) {
		code = e.Code
	}

	m.requestsTotal.WithLabelValues(op, strconv.Itoa(status), code).Inc()
	m.requestDuration.WithLabelValues(op).Observe(d.Seconds())
}
