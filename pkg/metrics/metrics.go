package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Ingestion metrics
	ChunksReceived     *prometheus.CounterVec
	PipelineRuns       *prometheus.CounterVec
	PipelineDuration   *prometheus.HistogramVec
	PipelineInProgress prometheus.Gauge
	RowsProcessed      *prometheus.CounterVec
	RowsFailed         *prometheus.CounterVec

	// Decoder metrics
	UndecodedIdentifiers prometheus.Counter

	// Campaign metrics
	CampaignsMerged prometheus.Counter
	GroupsProduced  prometheus.Histogram
}

func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),

		ChunksReceived: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upload_chunks_received_total",
				Help: "Total number of upload chunks received",
			},
			[]string{"status"},
		),

		PipelineRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pipeline_runs_total",
				Help: "Total number of ingestion pipeline runs",
			},
			[]string{"status", "stage"},
		),

		PipelineDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pipeline_run_duration_seconds",
				Help:    "Ingestion pipeline run duration in seconds",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
			},
			[]string{"stage"},
		),

		PipelineInProgress: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "pipeline_runs_in_progress",
				Help: "Number of pipeline runs currently in progress",
			},
		),

		RowsProcessed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "csv_rows_processed_total",
				Help: "Total number of CSV rows mapped to canonical records",
			},
			[]string{"format"},
		),

		RowsFailed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "csv_rows_failed_total",
				Help: "Total number of CSV rows that could not be mapped",
			},
			[]string{"format", "error_type"},
		),

		UndecodedIdentifiers: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "undecoded_identifiers_total",
				Help: "Total number of ad-network identifiers returned verbatim by the decoder",
			},
		),

		CampaignsMerged: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "campaigns_merged_total",
				Help: "Total number of uploads merged into an existing campaign dataset",
			},
		),

		GroupsProduced: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "aggregation_groups_produced",
				Help:    "Number of groups produced per aggregation pass",
				Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
			},
		),
	}
}

// HTTP request metrics
func (m *Metrics) RecordHTTPRequest(method, endpoint, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// Upload chunk metrics
func (m *Metrics) RecordChunk(status string) {
	m.ChunksReceived.WithLabelValues(status).Inc()
}

// Pipeline run metrics
func (m *Metrics) RecordPipelineRun(status, stage string, duration time.Duration) {
	m.PipelineRuns.WithLabelValues(status, stage).Inc()
	m.PipelineDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

// Row processing metrics
func (m *Metrics) RecordRows(format string, count int) {
	m.RowsProcessed.WithLabelValues(format).Add(float64(count))
}

// Row failure metrics
func (m *Metrics) RecordRowFailure(format, errorType string) {
	m.RowsFailed.WithLabelValues(format, errorType).Inc()
}

// Undecoded identifier counter
func (m *Metrics) RecordUndecodedIdentifier() {
	m.UndecodedIdentifiers.Inc()
}

// Campaign merge counter
func (m *Metrics) RecordCampaignMerge() {
	m.CampaignsMerged.Inc()
}

// Aggregation group count
func (m *Metrics) RecordGroupCount(count int) {
	m.GroupsProduced.Observe(float64(count))
}

// Pipeline in progress counter
func (m *Metrics) IncPipelineInProgress() {
	m.PipelineInProgress.Inc()
}

// Pipeline in progress counter
func (m *Metrics) DecPipelineInProgress() {
	m.PipelineInProgress.Dec()
}

// HTTP requests in flight counter
func (m *Metrics) IncHTTPRequestsInFlight() {
	m.HTTPRequestsInFlight.Inc()
}

// HTTP requests in flight counter
func (m *Metrics) DecHTTPRequestsInFlight() {
	m.HTTPRequestsInFlight.Dec()
}
