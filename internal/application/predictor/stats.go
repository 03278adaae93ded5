package predictor

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alchemorsel/kalorye/internal/domain/prediction"
	"github.com/alchemorsel/kalorye/internal/infrastructure/monitoring"
	"github.com/alchemorsel/kalorye/internal/ports/outbound"
)

// Tracker owns the process-lifetime usage counters and the prediction
// log. All mutation goes through a single mutex; reads get immutable
// snapshots. Sink and metrics failures never reach prediction callers.
type Tracker struct {
	mu            sync.Mutex
	total         int64
	ml            int64
	database      int64
	ruleBased     int64
	rejections    int64
	confidenceSum float64
	byCategory    map[string]int64
	byMethod      map[string]int64

	sink    outbound.PredictionSink
	metrics *monitoring.PredictionMetrics
	logger  *zap.Logger
	now     func() time.Time
}

// NewTracker builds a tracker. metrics may be nil when the Prometheus
// collector is disabled.
func NewTracker(sink outbound.PredictionSink, metrics *monitoring.PredictionMetrics, logger *zap.Logger) *Tracker {
	return &Tracker{
		byCategory: make(map[string]int64),
		byMethod:   make(map[string]int64),
		sink:       sink,
		metrics:    metrics,
		logger:     logger.Named("usage-stats"),
		now:        time.Now,
	}
}

// Observe records one returned prediction: counters, metrics, and the
// append-only log. The log append is best-effort by contract.
func (t *Tracker) Observe(res *prediction.Result) {
	category := res.Category.String()
	if category == "" {
		category = "unknown"
	}

	t.mu.Lock()
	t.total++
	t.confidenceSum += res.Confidence
	switch res.Method {
	case prediction.MethodMLModel:
		t.ml++
	case prediction.MethodDatabaseLookup:
		t.database++
	case prediction.MethodRuleBased:
		t.ruleBased++
	}
	t.byCategory[category]++
	t.byMethod[string(res.Method)]++
	t.mu.Unlock()

	if t.metrics != nil {
		t.metrics.ObservePrediction(string(res.Method), category, res.Confidence)
	}

	rec := prediction.NewRecord(uuid.NewString(), t.now(), res)
	if err := t.sink.Record(rec); err != nil {
		t.logger.Debug("prediction log append failed, dropping record",
			zap.String("food_name", res.FoodName), zap.Error(err))
	}
}

// ObserveRejection records one ML prediction rejected as implausible.
func (t *Tracker) ObserveRejection() {
	t.mu.Lock()
	t.rejections++
	t.mu.Unlock()

	if t.metrics != nil {
		t.metrics.ObserveRejection()
	}
}

// Snapshot returns an immutable copy of the counters.
func (t *Tracker) Snapshot() prediction.StatsSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	snap := prediction.StatsSnapshot{
		Total:         t.total,
		ML:            t.ml,
		Database:      t.database,
		RuleBased:     t.ruleBased,
		Rejections:    t.rejections,
		ConfidenceSum: t.confidenceSum,
		ByCategory:    make(map[string]int64, len(t.byCategory)),
		ByMethod:      make(map[string]int64, len(t.byMethod)),
	}
	if t.total > 0 {
		snap.AverageConfidence = t.confidenceSum / float64(t.total)
	}
	for k, v := range t.byCategory {
		snap.ByCategory[k] = v
	}
	for k, v := range t.byMethod {
		snap.ByMethod[k] = v
	}
	return snap
}

// Reset zeroes every counter. Only an explicit caller request does
// this; the prediction log is left untouched.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.total = 0
	t.ml = 0
	t.database = 0
	t.ruleBased = 0
	t.rejections = 0
	t.confidenceSum = 0
	t.byCategory = make(map[string]int64)
	t.byMethod = make(map[string]int64)
}
