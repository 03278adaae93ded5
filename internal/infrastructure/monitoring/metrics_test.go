package monitoring

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictionMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPredictionMetrics(reg)

	m.ObservePrediction("ml_model", "meats", 0.9)
	m.ObservePrediction("ml_model", "meats", 0.85)
	m.ObservePrediction("database_lookup", "", 0.95)
	m.ObserveRejection()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.predictionsTotal.WithLabelValues("ml_model", "meats")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.predictionsTotal.WithLabelValues("database_lookup", "unknown")),
		"empty category is reported as unknown")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rejectionsTotal))

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, len(families))
	for i, f := range families {
		names[i] = f.GetName()
	}
	assert.Contains(t, names, "kalorye_predictions_total")
	assert.Contains(t, names, "kalorye_prediction_rejections_total")
	assert.Contains(t, names, "kalorye_prediction_confidence")
}

func TestMetricsIsolatedPerRegistry(t *testing.T) {
	// Registering twice on separate registries must not panic the way a
	// shared default registry would.
	assert.NotPanics(t, func() {
		NewPredictionMetrics(prometheus.NewRegistry())
		NewPredictionMetrics(prometheus.NewRegistry())
	})
}
