package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	ParseDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "jsanalyzer_parse_seconds",
		Help:    "Time spent parsing a pasted source into a syntax tree.",
		Buckets: prometheus.DefBuckets,
	}, []string{"dialect"})

	ParseFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jsanalyzer_parse_failures_total",
		Help: "Total number of sources rejected by the parser.",
	}, []string{"dialect"})

	LintDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "jsanalyzer_lint_seconds",
		Help:    "Time spent waiting on the external linter.",
		Buckets: prometheus.DefBuckets,
	})

	LintFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jsanalyzer_lint_failures_total",
		Help: "Total number of linter runs converted into a synthetic diagnostic.",
	})

	QuestionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jsanalyzer_questions_total",
		Help: "Total number of answered questions by answer kind.",
	}, []string{"kind"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jsanalyzer_http_requests_total",
		Help: "Total number of web form requests by route and status code.",
	}, []string{"route", "code"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "jsanalyzer_http_request_seconds",
		Help:    "Latency of web form requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	WatcherEventsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jsanalyzer_watcher_events_total",
		Help: "Total number of file system events received by the watcher.",
	})
)
