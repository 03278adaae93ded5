// Package nutrition computes daily nutrient targets, per-serving
// nutrient amounts, and gap analysis against a day's food log.
package nutrition

import (
	"math"

	"go.uber.org/zap"

	"github.com/alchemorsel/kalorye/internal/application/predictor"
	"github.com/alchemorsel/kalorye/internal/domain/food"
	"github.com/alchemorsel/kalorye/internal/domain/prediction"
	"github.com/alchemorsel/kalorye/internal/domain/profile"
	"github.com/alchemorsel/kalorye/internal/ports/outbound"
)

// Macro-energy apportioning for foods with no database match: the
// predicted calories are split 15/25/60 across protein, fat, and carbs
// at 4, 9, and 4 kcal per gram.
const (
	proteinEnergyShare = 0.15
	fatEnergyShare     = 0.25
	carbEnergyShare    = 0.60
	kcalPerGramProtein = 4.0
	kcalPerGramFat     = 9.0
	kcalPerGramCarb    = 4.0
)

// Gap analysis thresholds.
const (
	gapThresholdPercent    = 80
	excessThresholdPercent = 120
	gapPenalty             = 10
	excessPenalty          = 5
)

// Aggregator expands calorie estimates into nutrient profiles and
// compares intake against demographic targets.
type Aggregator struct {
	foods     outbound.FoodRepository
	predictor *predictor.Predictor
	logger    *zap.Logger
}

// NewAggregator builds the nutrition aggregator.
func NewAggregator(foods outbound.FoodRepository, pred *predictor.Predictor, logger *zap.Logger) *Aggregator {
	return &Aggregator{foods: foods, predictor: pred, logger: logger.Named("nutrition")}
}

// DailyNeeds derives one day's calorie and nutrient targets from a
// demographic profile. Recomputed on every call, never cached.
func (a *Aggregator) DailyNeeds(p profile.Profile) profile.DailyNeeds {
	needs := profile.GuidelineNeeds(p.Sex)
	needs.Calories = math.Round(p.BMR() * p.ActivityLevel.Factor())
	return needs
}

// ServingNutrition computes absolute nutrient amounts for a serving.
// A database match is scaled linearly; otherwise the calorie predictor
// supplies calories and macros are apportioned by fixed energy shares
// with placeholder micronutrients.
func (a *Aggregator) ServingNutrition(name string, servingSizeG float64) (food.NutrientProfile, prediction.Method) {
	if entry, ok := a.foods.FindByName(name); ok {
		return entry.NutrientsForServing(servingSizeG), prediction.MethodDatabaseLookup
	}

	res := a.predictor.Predict(predictor.Input{
		Name:         name,
		Category:     food.CategoryUnknown,
		ServingSizeG: servingSizeG,
	})

	return food.NutrientProfile{
		Calories: res.Calories,
		ProteinG: res.Calories * proteinEnergyShare / kcalPerGramProtein,
		FatG:     res.Calories * fatEnergyShare / kcalPerGramFat,
		CarbsG:   res.Calories * carbEnergyShare / kcalPerGramCarb,
	}, res.Method
}

// NutrientStatus reports one nutrient's intake against its target.
type NutrientStatus struct {
	Nutrient   string  `json:"nutrient"`
	Consumed   float64 `json:"consumed"`
	Needed     float64 `json:"needed"`
	Percentage float64 `json:"percentage"`
	Status     string  `json:"status"`
}

// GapAnalysis summarizes a day's intake against daily needs.
type GapAnalysis struct {
	Nutrients    []NutrientStatus `json:"nutrients"`
	Gaps         []string         `json:"gaps"`
	Excesses     []string         `json:"excesses"`
	OverallScore float64          `json:"overall_score"`
}

// Analyze compares total consumed nutrients against daily needs. A
// nutrient under 80% of target is a gap, over 120% an excess; the
// overall score starts at 100 and loses 10 per gap and 5 per excess,
// floored at zero.
func (a *Aggregator) Analyze(total food.NutrientProfile, needs profile.DailyNeeds) *GapAnalysis {
	tracked := []struct {
		name     string
		consumed float64
		needed   float64
	}{
		{"calories", total.Calories, needs.Calories},
		{"protein_g", total.ProteinG, needs.ProteinG},
		{"iron_mg", total.IronMg, needs.IronMg},
		{"calcium_mg", total.CalciumMg, needs.CalciumMg},
		{"fiber_g", total.FiberG, needs.FiberG},
		{"vitamin_c_mg", total.VitaminCMg, needs.VitaminCMg},
	}

	analysis := &GapAnalysis{}
	for _, t := range tracked {
		status := NutrientStatus{Nutrient: t.name, Consumed: t.consumed, Needed: t.needed}
		if t.needed > 0 {
			status.Percentage = t.consumed / t.needed * 100
		}
		switch {
		case status.Percentage < gapThresholdPercent:
			status.Status = "gap"
			analysis.Gaps = append(analysis.Gaps, t.name)
		case status.Percentage > excessThresholdPercent:
			status.Status = "excess"
			analysis.Excesses = append(analysis.Excesses, t.name)
		default:
			status.Status = "adequate"
		}
		analysis.Nutrients = append(analysis.Nutrients, status)
	}

	analysis.OverallScore = math.Max(0,
		100-gapPenalty*float64(len(analysis.Gaps))-excessPenalty*float64(len(analysis.Excesses)))
	return analysis
}
