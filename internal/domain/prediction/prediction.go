// Package prediction defines the value objects produced by the calorie
// prediction pipeline: the per-call result, the append-only log record,
// and the process-lifetime usage statistics snapshot.
package prediction

import (
	"time"

	"github.com/alchemorsel/kalorye/internal/domain/food"
)

// Method identifies which tier of the pipeline produced an estimate.
type Method string

const (
	MethodDatabaseLookup Method = "database_lookup"
	MethodMLModel        Method = "ml_model"
	MethodRuleBased      Method = "rule_based"
)

// Result is a single calorie prediction. Created fresh per call and
// never mutated after return; the caller owns it.
type Result struct {
	Calories        float64       `json:"calories"`
	Confidence      float64       `json:"confidence"`
	Method          Method        `json:"method"`
	FoodName        string        `json:"food_name"`
	Category        food.Category `json:"category"`
	ServingSizeG    float64       `json:"serving_size_g"`
	CaloriesPer100g float64       `json:"calories_per_100g,omitempty"`

	// Raw per-100g tier outputs, reported for transparency when the ML
	// tier ran.
	MLCaloriesPer100g   *float64 `json:"ml_prediction,omitempty"`
	RuleCaloriesPer100g *float64 `json:"rule_based_prediction,omitempty"`
}

// Record is one line of the append-only prediction log.
type Record struct {
	ID             string   `json:"id"`
	Timestamp      string   `json:"timestamp"`
	FoodName       string   `json:"food_name"`
	Method         Method   `json:"method"`
	Calories       float64  `json:"calories"`
	Confidence     float64  `json:"confidence"`
	Category       string   `json:"category"`
	MLPrediction   *float64 `json:"ml_prediction,omitempty"`
	RulePrediction *float64 `json:"rule_based_prediction,omitempty"`
}

// NewRecord builds a log record from a result.
func NewRecord(id string, at time.Time, res *Result) Record {
	return Record{
		ID:             id,
		Timestamp:      at.UTC().Format(time.RFC3339),
		FoodName:       res.FoodName,
		Method:         res.Method,
		Calories:       res.Calories,
		Confidence:     res.Confidence,
		Category:       res.Category.String(),
		MLPrediction:   res.MLCaloriesPer100g,
		RulePrediction: res.RuleCaloriesPer100g,
	}
}

// StatsSnapshot is an immutable copy of the usage counters. Maps are
// freshly allocated per snapshot so callers can never reach the live
// state.
type StatsSnapshot struct {
	Total             int64            `json:"total"`
	ML                int64            `json:"ml"`
	Database          int64            `json:"database"`
	RuleBased         int64            `json:"rule_based"`
	Rejections        int64            `json:"rejections"`
	ConfidenceSum     float64          `json:"confidence_sum"`
	AverageConfidence float64          `json:"average_confidence"`
	ByCategory        map[string]int64 `json:"by_category"`
	ByMethod          map[string]int64 `json:"by_method"`
}
