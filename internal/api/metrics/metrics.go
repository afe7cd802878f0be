// Package metrics defines all custom Prometheus metrics for the SmartShop
// assistant API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry
// via promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "smartshop"

// ── LLM metrics ───────────────────────────────────────────────────────────────

// LLMRequestsTotal counts completion calls to the upstream provider.
// Labels:
//   - provider: "together" or "ollama"
//   - outcome: "success" or "error"
var LLMRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "llm_requests_total",
		Help:      "Total number of completion requests sent upstream, by provider and outcome.",
	},
	[]string{"provider", "outcome"},
)

// LLMRequestDuration measures the wall time of a single upstream completion
// call, including the full response read.
// Label:
//   - provider: "together" or "ollama"
var LLMRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "llm_request_duration_seconds",
		Help:      "Duration of upstream completion calls.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
	},
	[]string{"provider"},
)

// ── Recommendation metrics ────────────────────────────────────────────────────

// RecommendationParsesTotal counts attempts to parse a completion as a JSON
// array of product names.
// Label:
//   - result: "success" or "failure" (failure degrades to an empty list)
var RecommendationParsesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recommendation_parses_total",
		Help:      "Total number of recommendation completions parsed, by result.",
	},
	[]string{"result"},
)
