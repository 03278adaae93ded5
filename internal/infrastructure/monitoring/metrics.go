// Package monitoring exposes Prometheus metrics for the prediction
// pipeline. Metrics are registered on an explicit registerer rather
// than the global default so tests can run collectors in isolation.
package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// PredictionMetrics collects counters mirroring the usage stats
// tracker.
type PredictionMetrics struct {
	predictionsTotal *prometheus.CounterVec
	rejectionsTotal  prometheus.Counter
	confidence       prometheus.Histogram
}

// NewPredictionMetrics registers the prediction metrics on reg.
func NewPredictionMetrics(reg prometheus.Registerer) *PredictionMetrics {
	factory := promauto.With(reg)
	return &PredictionMetrics{
		predictionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kalorye_predictions_total",
				Help: "Total number of calorie predictions by method and category",
			},
			[]string{"method", "category"},
		),
		rejectionsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "kalorye_prediction_rejections_total",
				Help: "Total number of ML predictions rejected as implausible",
			},
		),
		confidence: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "kalorye_prediction_confidence",
				Help:    "Confidence of returned predictions",
				Buckets: []float64{0.5, 0.65, 0.7, 0.75, 0.85, 0.9, 0.95, 1},
			},
		),
	}
}

// ObservePrediction records one returned prediction.
func (m *PredictionMetrics) ObservePrediction(method, category string, confidence float64) {
	if category == "" {
		category = "unknown"
	}
	m.predictionsTotal.WithLabelValues(method, category).Inc()
	m.confidence.Observe(confidence)
}

// ObserveRejection records one implausible ML prediction.
func (m *PredictionMetrics) ObserveRejection() {
	m.rejectionsTotal.Inc()
}

// Serve starts a blocking metrics listener exposing reg on /metrics.
func Serve(addr string, reg *prometheus.Registry, logger *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("metrics listener starting", zap.String("addr", addr))
	return server.ListenAndServe()
}
