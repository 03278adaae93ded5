package predictor

import (
	"go.uber.org/zap"

	"github.com/alchemorsel/kalorye/internal/domain/food"
	"github.com/alchemorsel/kalorye/internal/domain/prediction"
	"github.com/alchemorsel/kalorye/internal/ports/outbound"
)

// Validation policy constants. The blend weights and per-branch
// confidences are empirically chosen product contracts; change them
// only with a product decision, and in this one place.
const (
	hardRejectPer100g = 5000

	extremeBlendMLWeight   = 0.3
	extremeBlendRuleWeight = 0.7
	extremeBlendConfidence = 0.65

	wildRatioHigh          = 10.0
	wildRatioLow           = 0.1
	wildBlendMLWeight      = 0.6
	wildBlendRuleWeight    = 0.4
	wildBlendConfidence    = 0.70
	stretchRatioHigh       = 3.0
	stretchRatioLow        = 0.33
	stretchConfidence      = 0.75
	agreementRatioLow      = 0.8
	agreementRatioHigh     = 1.2
	agreementConfidence    = 0.90
	defaultMLConfidence    = 0.85
	databaseConfidence     = 0.95
	ruleBasedConfidence    = 0.70
)

// Input describes a food to predict calories for. The boundary has
// already validated it: Name is non-empty and ServingSizeG is positive.
type Input struct {
	Name         string
	Category     food.Category
	ServingSizeG float64
	PrepMethod   food.PrepMethod
	Ingredients  []string
}

// Predictor resolves calorie estimates through the three-tier pipeline.
// Tiers are evaluated in strict order and each is terminal on match:
// exact curated lookup, validated ML inference, rule baseline.
type Predictor struct {
	foods  outbound.FoodRepository
	model  outbound.CalorieModel
	stats  *Tracker
	logger *zap.Logger
}

// New builds a predictor. Degraded capabilities are reported once here,
// not per call.
func New(foods outbound.FoodRepository, calorieModel outbound.CalorieModel, stats *Tracker, logger *zap.Logger) *Predictor {
	log := logger.Named("predictor")

	if !calorieModel.Available() {
		log.Warn("calorie model unavailable, ML tier disabled for process lifetime")
	}
	if caps := foods.Capabilities(); !caps.ExpandedTable {
		log.Warn("expanded food table unavailable, running on curated table only",
			zap.Int("curated_entries", caps.CuratedEntries))
	}

	return &Predictor{foods: foods, model: calorieModel, stats: stats, logger: log}
}

// Predict runs the pipeline and records the outcome in the usage
// tracker. The returned result is owned by the caller.
func (p *Predictor) Predict(in Input) *prediction.Result {
	res := p.resolve(in)
	p.stats.Observe(res)
	return res
}

func (p *Predictor) resolve(in Input) *prediction.Result {
	// Tier 1: exact match against the curated table. The preparation
	// multiplier applies only when the caller named a method; detection
	// is not used here.
	if entry, ok := p.foods.FindCurated(in.Name); ok {
		per100 := entry.CaloriesPer100g()
		return &prediction.Result{
			Calories:        per100 * in.ServingSizeG / 100 * in.PrepMethod.CalorieMultiplier(),
			Confidence:      databaseConfidence,
			Method:          prediction.MethodDatabaseLookup,
			FoodName:        in.Name,
			Category:        entry.Category,
			ServingSizeG:    in.ServingSizeG,
			CaloriesPer100g: per100,
		}
	}

	// Auto-fill the preparation method for the remaining tiers.
	prep := in.PrepMethod
	if prep == food.PrepNone {
		prep = food.DetectPreparation(in.Name)
	}
	rulePer100 := in.Category.BaselineCaloriesPer100g()

	// Tier 2: ML inference, validated against the rule baseline.
	if res := p.inferML(in, prep, rulePer100); res != nil {
		return res
	}

	// Tier 3: rule baseline, preparation-adjusted.
	return &prediction.Result{
		Calories:            rulePer100 * in.ServingSizeG / 100 * prep.CalorieMultiplier(),
		Confidence:          ruleBasedConfidence,
		Method:              prediction.MethodRuleBased,
		FoodName:            in.Name,
		Category:            in.Category,
		ServingSizeG:        in.ServingSizeG,
		CaloriesPer100g:     rulePer100,
		RuleCaloriesPer100g: &rulePer100,
	}
}

// inferML attempts model inference and plausibility validation. A nil
// return means no usable ML prediction: model unavailable, width
// mismatch, inference error, or outright rejection. None of these are
// errors to the caller.
func (p *Predictor) inferML(in Input, prep food.PrepMethod, rulePer100 float64) *prediction.Result {
	if !p.model.Available() {
		return nil
	}

	var features []float64
	switch p.model.InputDim() {
	case BasicFeatureCount:
		features = PrepareBasic(in.Name, in.Category, in.ServingSizeG, prep, in.Ingredients)
	case EnhancedFeatureCount:
		features = PrepareEnhanced(in.Name, in.Category, in.ServingSizeG, prep, in.Ingredients)
	default:
		p.logger.Warn("model declares unsupported input width, skipping ML tier",
			zap.Int("input_dim", p.model.InputDim()))
		return nil
	}

	raw, err := p.model.Predict(features)
	if err != nil {
		p.logger.Debug("inference failed, falling through to rule tier",
			zap.String("food_name", in.Name), zap.Error(err))
		return nil
	}

	if raw > hardRejectPer100g {
		p.stats.ObserveRejection()
		p.logger.Warn("ML prediction rejected as implausible",
			zap.String("food_name", in.Name),
			zap.Float64("ml_per_100g", raw))
		return nil
	}

	final := raw
	confidence := defaultMLConfidence
	ceiling := in.Category.CalorieCeilingPer100g()

	switch {
	case raw > 2*ceiling:
		final = extremeBlendMLWeight*raw + extremeBlendRuleWeight*rulePer100
		confidence = extremeBlendConfidence
	case rulePer100 > 0:
		ratio := raw / rulePer100
		switch {
		case ratio > wildRatioHigh || ratio < wildRatioLow:
			final = wildBlendMLWeight*raw + wildBlendRuleWeight*rulePer100
			confidence = wildBlendConfidence
		case ratio > stretchRatioHigh || ratio < stretchRatioLow:
			confidence = stretchConfidence
		case ratio >= agreementRatioLow && ratio <= agreementRatioHigh:
			confidence = agreementConfidence
		}
	}

	return &prediction.Result{
		Calories:            final * in.ServingSizeG / 100,
		Confidence:          confidence,
		Method:              prediction.MethodMLModel,
		FoodName:            in.Name,
		Category:            in.Category,
		ServingSizeG:        in.ServingSizeG,
		CaloriesPer100g:     final,
		MLCaloriesPer100g:   &raw,
		RuleCaloriesPer100g: &rulePer100,
	}
}

// Stats exposes the tracker for the engine facade.
func (p *Predictor) Stats() *Tracker {
	return p.stats
}
