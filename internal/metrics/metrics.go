// Package metrics exposes the numbers of a coloring run as Prometheus
// metrics, written to a node_exporter textfile since the tool is a batch job.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/25smoking/heatdot/internal/graph"
)

// Registry holds the metrics of one run.
type Registry struct {
	CounterNodes     prometheus.Gauge
	CounterMax       prometheus.Gauge
	GraphLinesTotal  *prometheus.CounterVec
	StageDuration    *prometheus.HistogramVec
	LastSuccessStamp prometheus.Gauge

	registry *prometheus.Registry
}

// NewRegistry creates a registry with every metric initialized.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{registry: reg}

	r.CounterNodes = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "heatdot_counter_nodes",
			Help: "Number of distinct nodes found in the counter log",
		},
	)

	r.CounterMax = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "heatdot_counter_max",
			Help: "Highest execution count in the counter log",
		},
	)

	r.GraphLinesTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "heatdot_graph_lines_total",
			Help: "Graph lines processed, by outcome",
		},
		[]string{"outcome"},
	)

	r.StageDuration = promauto.With(reg).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "heatdot_stage_duration_seconds",
			Help:    "Duration of each pipeline stage in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"stage"},
	)

	r.LastSuccessStamp = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "heatdot_last_success_timestamp_seconds",
			Help: "Unix time of the last successful run",
		},
	)

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// RecordCounters records the size of the counter table.
func (r *Registry) RecordCounters(nodes int, maxCount uint64) {
	r.CounterNodes.Set(float64(nodes))
	r.CounterMax.Set(float64(maxCount))
}

// RecordRewrite records the line outcomes of a rewrite.
func (r *Registry) RecordRewrite(stats graph.Stats) {
	r.GraphLinesTotal.WithLabelValues("recolored").Add(float64(stats.Recolored))
	r.GraphLinesTotal.WithLabelValues("exempt").Add(float64(stats.Exempt))
	r.GraphLinesTotal.WithLabelValues("passed_through").Add(float64(stats.PassedThrough))
}

// RecordStage records how long a stage took.
func (r *Registry) RecordStage(stage string, duration time.Duration) {
	r.StageDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

// MarkSuccess stamps the completion time of a successful run.
func (r *Registry) MarkSuccess(at time.Time) {
	r.LastSuccessStamp.Set(float64(at.Unix()))
}

// WriteTextfile writes every metric to path in the text exposition format.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}
