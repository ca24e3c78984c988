// Package telemetry provides OpenTelemetry instrumentation for the
// profiler service. It exports Prometheus metrics and a tracer.
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "profiler"

// Metrics holds all profiler Prometheus metrics.
type Metrics struct {
	// Profile generation metrics
	ProfilesGenerated *prometheus.CounterVec
	ProfileDuration   prometheus.Histogram
	DataQuality       prometheus.Histogram

	// Signal source metrics
	SourceAvailability *prometheus.CounterVec

	// Recommendation metrics
	CandidatesRanked    prometheus.Counter
	RecommendationScore prometheus.Histogram
	CatalogSearchErrors prometheus.Counter
	CatalogSearchTime   prometheus.Histogram

	// Feedback metrics
	FeedbackEvents *prometheus.CounterVec
}

// Provider wraps telemetry providers.
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics.
func NewProvider() *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(),
	}
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics() *Metrics {
	m := &Metrics{}

	m.ProfilesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profiler_profiles_generated_total",
		Help: "Total identity profiles generated, by outcome",
	}, []string{"status"})

	m.ProfileDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "profiler_profile_duration_seconds",
		Help:    "Time to generate a single identity profile",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
	})

	m.DataQuality = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "profiler_data_quality_score",
		Help:    "Distribution of per-request data quality scores",
		Buckets: []float64{0, 10, 25, 50, 70, 80, 90, 100},
	})

	m.SourceAvailability = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profiler_source_availability_total",
		Help: "Per-source fetch outcomes during signal collection",
	}, []string{"source", "available"})

	m.CandidatesRanked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "profiler_candidates_ranked_total",
		Help: "Total catalog candidates scored",
	})

	m.RecommendationScore = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "profiler_recommendation_score",
		Help:    "Distribution of composite recommendation scores",
		Buckets: []float64{0, 15, 30, 45, 60, 70, 80},
	})

	m.CatalogSearchErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "profiler_catalog_search_errors_total",
		Help: "Total failed catalog searches",
	})

	m.CatalogSearchTime = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "profiler_catalog_search_duration_seconds",
		Help:    "Time per catalog search request",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
	})

	m.FeedbackEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profiler_feedback_events_total",
		Help: "Total recorded feedback events, by action",
	}, []string{"action"})

	return m
}

// RecordProfile records the outcome of one profile generation.
func (p *Provider) RecordProfile(success bool, qualityScore int, duration time.Duration) {
	status := "success"
	if !success {
		status = "error"
	}
	p.Metrics.ProfilesGenerated.WithLabelValues(status).Inc()
	p.Metrics.ProfileDuration.Observe(duration.Seconds())
	if success {
		p.Metrics.DataQuality.Observe(float64(qualityScore))
	}
}

// RecordSource records one source fetch outcome.
func (p *Provider) RecordSource(source string, available bool) {
	label := "false"
	if available {
		label = "true"
	}
	p.Metrics.SourceAvailability.WithLabelValues(source, label).Inc()
}

// RecordRanking records scores from one ranking pass.
func (p *Provider) RecordRanking(scores []int) {
	p.Metrics.CandidatesRanked.Add(float64(len(scores)))
	for _, s := range scores {
		p.Metrics.RecommendationScore.Observe(float64(s))
	}
}

// RecordCatalogSearch records one catalog search attempt.
func (p *Provider) RecordCatalogSearch(duration time.Duration, err error) {
	p.Metrics.CatalogSearchTime.Observe(duration.Seconds())
	if err != nil {
		p.Metrics.CatalogSearchErrors.Inc()
	}
}

// RecordFeedbackEvent records one accepted feedback event.
func (p *Provider) RecordFeedbackEvent(action string) {
	p.Metrics.FeedbackEvents.WithLabelValues(action).Inc()
}
