// Package engine exposes the prediction-and-recommendation entry
// points consumed by the web layer. It validates boundary input,
// delegates to the predictor, aggregator, and meal planner, and
// composes human-readable insights.
package engine

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/alchemorsel/kalorye/internal/application/mealplan"
	"github.com/alchemorsel/kalorye/internal/application/nutrition"
	"github.com/alchemorsel/kalorye/internal/application/predictor"
	"github.com/alchemorsel/kalorye/internal/domain/food"
	"github.com/alchemorsel/kalorye/internal/domain/prediction"
	"github.com/alchemorsel/kalorye/internal/domain/profile"
	"github.com/alchemorsel/kalorye/internal/ports/inbound"
	"github.com/alchemorsel/kalorye/internal/ports/outbound"
	"github.com/alchemorsel/kalorye/pkg/errors"
)

// defaultServingSizeG applies when a request leaves the serving size
// unset.
const defaultServingSizeG = 100

// Goal adjustment factors for meal recommendation.
const (
	weightLossCalorieFactor = 0.85
	muscleGainCalorieFactor = 1.15
	muscleGainProteinFactor = 1.25
)

// Engine implements inbound.NutritionEngine.
type Engine struct {
	foods      outbound.FoodRepository
	predictor  *predictor.Predictor
	aggregator *nutrition.Aggregator
	planner    *mealplan.Generator
	validate   *validator.Validate
	logger     *zap.Logger
}

// New wires the engine facade.
func New(
	foods outbound.FoodRepository,
	pred *predictor.Predictor,
	aggregator *nutrition.Aggregator,
	planner *mealplan.Generator,
	logger *zap.Logger,
) *Engine {
	return &Engine{
		foods:      foods,
		predictor:  pred,
		aggregator: aggregator,
		planner:    planner,
		validate:   validator.New(),
		logger:     logger.Named("engine"),
	}
}

// PredictCalories resolves a calorie estimate for a described food.
func (e *Engine) PredictCalories(req inbound.PredictCaloriesRequest) (*prediction.Result, error) {
	if err := e.validate.Struct(req); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	serving := req.ServingSizeG
	if serving == 0 {
		serving = defaultServingSizeG
	}

	res := e.predictor.Predict(predictor.Input{
		Name:         req.Name,
		Category:     food.ParseCategory(req.Category),
		ServingSizeG: serving,
		PrepMethod:   food.ParsePrepMethod(req.PrepMethod),
		Ingredients:  req.Ingredients,
	})
	return res, nil
}

// PredictNutrition expands a prediction into nutrient amounts and
// compares them with the profile's daily needs.
func (e *Engine) PredictNutrition(req inbound.PredictNutritionRequest) (*inbound.NutritionReport, error) {
	if err := e.validate.Struct(req); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	serving := req.ServingSizeG
	if serving == 0 {
		serving = defaultServingSizeG
	}

	needs := e.aggregator.DailyNeeds(toProfile(req.Sex, req.Age, req.WeightKg, req.HeightCm, req.ActivityLevel))
	nutrients, source := e.aggregator.ServingNutrition(req.Name, serving)

	report := &inbound.NutritionReport{
		FoodName:     req.Name,
		ServingSizeG: serving,
		Nutrition:    nutrients,
		Source:       source,
		DailyNeeds:   needs,
	}
	report.Insights = servingInsights(req.Name, nutrients, needs)
	report.Recommendations = servingRecommendations(nutrients, needs)
	return report, nil
}

// RecommendMeals builds a categorized meal plan for the profile.
func (e *Engine) RecommendMeals(req inbound.RecommendMealsRequest) (*inbound.MealRecommendation, error) {
	if err := e.validate.Struct(req); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	needs := e.aggregator.DailyNeeds(toProfile(req.Sex, req.Age, req.WeightKg, req.HeightCm, req.ActivityLevel))
	goal := profile.ParseGoal(req.Goal)
	needs = adjustForGoal(needs, goal)

	plan := e.planner.Generate(e.foods.All(), needs, req.Preferences)

	return &inbound.MealRecommendation{
		Plan:                  plan,
		DailyNeeds:            needs,
		MedicalConsiderations: e.planner.MedicalConsiderations(req.MedicalHistory),
		Recommendations:       goalRecommendations(goal, needs),
	}, nil
}

// AnalyzeFoodLog totals a day's log and reports gaps and excesses.
func (e *Engine) AnalyzeFoodLog(req inbound.AnalyzeFoodLogRequest) (*inbound.FoodLogReport, error) {
	if err := e.validate.Struct(req); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var total food.NutrientProfile
	for _, entry := range req.Entries {
		serving := entry.ServingSizeG
		if serving == 0 {
			serving = defaultServingSizeG
		}
		nutrients, _ := e.aggregator.ServingNutrition(entry.Name, serving)
		total = total.Add(nutrients)
	}

	needs := e.aggregator.DailyNeeds(toProfile(req.Sex, req.Age, req.WeightKg, req.HeightCm, req.ActivityLevel))
	needs = adjustForGoal(needs, profile.ParseGoal(req.Goal))
	analysis := e.aggregator.Analyze(total, needs)

	return &inbound.FoodLogReport{
		TotalNutrition:  total,
		DailyNeeds:      needs,
		Analysis:        analysis,
		Recommendations: gapRecommendations(analysis),
	}, nil
}

// UsageStats returns an immutable counters snapshot.
func (e *Engine) UsageStats() prediction.StatsSnapshot {
	return e.predictor.Stats().Snapshot()
}

// ResetStats zeroes the usage counters.
func (e *Engine) ResetStats() {
	e.predictor.Stats().Reset()
	e.logger.Info("usage stats reset")
}

func toProfile(sex string, age int, weightKg, heightCm float64, activityLevel string) profile.Profile {
	return profile.Profile{
		Sex:           profile.ParseSex(sex),
		Age:           age,
		WeightKg:      weightKg,
		HeightCm:      heightCm,
		ActivityLevel: profile.ActivityLevel(strings.ToLower(activityLevel)),
	}
}

func adjustForGoal(needs profile.DailyNeeds, goal profile.Goal) profile.DailyNeeds {
	switch goal {
	case profile.GoalWeightLoss:
		needs.Calories *= weightLossCalorieFactor
	case profile.GoalMuscleGain:
		needs.Calories *= muscleGainCalorieFactor
		needs.ProteinG *= muscleGainProteinFactor
	}
	return needs
}

func servingInsights(name string, n food.NutrientProfile, needs profile.DailyNeeds) []string {
	var insights []string
	if needs.Calories > 0 {
		share := n.Calories / needs.Calories * 100
		if share > 30 {
			insights = append(insights, fmt.Sprintf("One serving of %s covers %.0f%% of your daily calories.", name, share))
		}
	}
	if needs.ProteinG > 0 && n.ProteinG/needs.ProteinG >= 0.25 {
		insights = append(insights, fmt.Sprintf("%s is protein-rich: %.1fg per serving.", name, n.ProteinG))
	}
	if needs.FiberG > 0 && n.FiberG/needs.FiberG >= 0.2 {
		insights = append(insights, fmt.Sprintf("%s is a good fiber source: %.1fg per serving.", name, n.FiberG))
	}
	if n.VitaminCMg >= 30 {
		insights = append(insights, fmt.Sprintf("%s delivers %.0fmg of vitamin C.", name, n.VitaminCMg))
	}
	return insights
}

func servingRecommendations(n food.NutrientProfile, needs profile.DailyNeeds) []string {
	var recs []string
	if needs.Calories > 0 && n.Calories/needs.Calories > 0.4 {
		recs = append(recs, "This is a heavy serving; balance the rest of the day with lighter meals.")
	}
	if n.FiberG < 1 {
		recs = append(recs, "Pair this with vegetables or fruit to add fiber.")
	}
	return recs
}

func goalRecommendations(goal profile.Goal, needs profile.DailyNeeds) []string {
	switch goal {
	case profile.GoalWeightLoss:
		return []string{
			fmt.Sprintf("Daily target reduced to %.0f kcal for steady weight loss.", needs.Calories),
			"Favor soups, vegetables, and steamed preparations to stay satisfied at fewer calories.",
		}
	case profile.GoalMuscleGain:
		return []string{
			fmt.Sprintf("Daily target raised to %.0f kcal with %.0fg protein to support muscle gain.", needs.Calories, needs.ProteinG),
			"Spread protein-rich foods across all main meals.",
		}
	default:
		return []string{fmt.Sprintf("Daily target is %.0f kcal to maintain current weight.", needs.Calories)}
	}
}

func gapRecommendations(analysis *nutrition.GapAnalysis) []string {
	var recs []string
	for _, gap := range analysis.Gaps {
		switch gap {
		case "calories":
			recs = append(recs, "You are eating well under your calorie target; add a meal or larger servings.")
		case "protein_g":
			recs = append(recs, "Protein is low today; add fish, chicken, eggs, or legumes.")
		case "iron_mg":
			recs = append(recs, "Iron is low; consider lean red meat, monggo, or dark leafy greens.")
		case "calcium_mg":
			recs = append(recs, "Calcium is low; add milk, kesong puti, or small fish eaten with bones.")
		case "fiber_g":
			recs = append(recs, "Fiber is low; add vegetables, fruits, or whole grains.")
		case "vitamin_c_mg":
			recs = append(recs, "Vitamin C is low; add citrus, papaya, or guava.")
		}
	}
	for _, excess := range analysis.Excesses {
		if excess == "calories" {
			recs = append(recs, "You are well over your calorie target; lighten remaining meals.")
		}
	}
	if len(recs) == 0 {
		recs = append(recs, "Intake looks balanced against your daily needs.")
	}
	return recs
}

var _ inbound.NutritionEngine = (*Engine)(nil)
