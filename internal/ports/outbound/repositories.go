// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces the application core uses to reach the food
// knowledge base, the trained calorie model, and the prediction log sink.
package outbound

import (
	"github.com/alchemorsel/kalorye/internal/domain/food"
	"github.com/alchemorsel/kalorye/internal/domain/prediction"
)

// FoodRepository is the read-only view over the curated and expanded
// food tables. Implementations are immutable after construction and
// safe for unsynchronized concurrent reads.
type FoodRepository interface {
	// FindByName resolves a normalized name against both tables,
	// preferring the expanded table.
	FindByName(name string) (food.Entry, bool)

	// FindCurated resolves a normalized name against the curated table
	// only. The exact-match prediction tier uses this.
	FindCurated(name string) (food.Entry, bool)

	// Search returns entries whose English name, Filipino name, or meal
	// category contains the query as a substring.
	Search(query string) []food.Entry

	// All lists every known entry.
	All() []food.Entry

	// Capabilities reports which tables loaded at construction.
	Capabilities() FoodCapabilities
}

// FoodCapabilities describes what the knowledge base managed to load.
type FoodCapabilities struct {
	ExpandedTable   bool
	CuratedEntries  int
	ExpandedEntries int
}

// CalorieModel is the consumption contract for the trained regression
// artifact. Predict returns kcal per 100 grams.
type CalorieModel interface {
	// Available reports whether an artifact loaded successfully. When
	// false, Predict always errors and the ML tier is skipped.
	Available() bool

	// InputDim is the artifact's declared feature-vector width. The
	// caller must prepare exactly this many features; mismatched
	// vectors are rejected before inference.
	InputDim() int

	Predict(features []float64) (float64, error)
}

// PredictionSink receives one record per prediction. Implementations
// own their error channel: a failed append is returned to the stats
// tracker, which logs and drops it. Sink failures must never surface
// to prediction callers.
type PredictionSink interface {
	Record(rec prediction.Record) error
	Close() error
}
