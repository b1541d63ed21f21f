package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tone_converter"

var (
	// HTTPRequests is labelled by the matched route pattern, not the raw path.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Requests served, by method, route pattern and response status.",
	}, []string{"method", "route", "status"})

	// Conversions outcome is one of ok, unavailable, provider_error or error.
	Conversions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "conversions_total",
		Help:      "Rewrite attempts per audience, split by how they ended.",
	}, []string{"target", "outcome"})

	ProviderLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "provider",
		Name:      "call_seconds",
		Help:      "Wall time of one chat-completion round trip, successful or not.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10),
	}, []string{"provider"})

	// InputRunes mirrors the 500 character cap of the frontend counter.
	InputRunes = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "input_runes",
		Help:      "Length of submitted messages in characters.",
		Buckets:   prometheus.LinearBuckets(50, 50, 10),
	})

	ProviderConfigured = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "provider",
		Name:      "configured",
		Help:      "1 when an API key is present and /api/convert can reach the provider, else 0.",
	})
)
