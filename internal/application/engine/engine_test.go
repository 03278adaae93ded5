package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alchemorsel/kalorye/internal/application/mealplan"
	"github.com/alchemorsel/kalorye/internal/application/nutrition"
	"github.com/alchemorsel/kalorye/internal/application/predictor"
	"github.com/alchemorsel/kalorye/internal/domain/food"
	"github.com/alchemorsel/kalorye/internal/domain/prediction"
	"github.com/alchemorsel/kalorye/internal/infrastructure/knowledge"
	"github.com/alchemorsel/kalorye/internal/infrastructure/model"
	"github.com/alchemorsel/kalorye/internal/infrastructure/predictionlog"
	"github.com/alchemorsel/kalorye/internal/ports/inbound"
	apperrors "github.com/alchemorsel/kalorye/pkg/errors"
)

func testEntries() []food.Entry {
	return []food.Entry{
		{
			Name: "chicken adobo", Category: food.CategoryMeats,
			Nutrients: food.NutrientProfile{Calories: 280, ProteinG: 26, FatG: 17, CarbsG: 4, IronMg: 1.3, CalciumMg: 16},
		},
		{
			Name: "white rice", Category: food.CategoryGrains,
			Nutrients: food.NutrientProfile{Calories: 130, ProteinG: 2.7, CarbsG: 28, FiberG: 0.4, CalciumMg: 10},
		},
		{
			Name: "mango", Category: food.CategoryFruits,
			Nutrients: food.NutrientProfile{Calories: 60, ProteinG: 0.8, CarbsG: 15, FiberG: 1.6, VitaminCMg: 36, CalciumMg: 11},
		},
		{
			Name: "pinakbet", Category: food.CategoryVegetables,
			Nutrients: food.NutrientProfile{Calories: 45, ProteinG: 2, CarbsG: 7, FiberG: 2.5, VitaminCMg: 18, IronMg: 1.1},
		},
	}
}

func newTestEngine(t *testing.T) inbound.NutritionEngine {
	t.Helper()
	log := zap.NewNop()

	foods := knowledge.NewBaseFromEntries(testEntries(), nil, log)
	tracker := predictor.NewTracker(predictionlog.NopSink{}, nil, log)
	pred := predictor.New(foods, model.NewUnavailable(), tracker, log)
	aggregator := nutrition.NewAggregator(foods, pred, log)
	planner := mealplan.NewGenerator(log)
	return New(foods, pred, aggregator, planner, log)
}

func TestPredictCalories(t *testing.T) {
	eng := newTestEngine(t)

	t.Run("KnownFood", func(t *testing.T) {
		res, err := eng.PredictCalories(inbound.PredictCaloriesRequest{Name: "chicken adobo", ServingSizeG: 150})

		require.NoError(t, err)
		assert.Equal(t, prediction.MethodDatabaseLookup, res.Method)
		assert.InDelta(t, 420.0, res.Calories, 1e-9)
		assert.Equal(t, 0.95, res.Confidence)
	})

	t.Run("ServingDefaultsTo100", func(t *testing.T) {
		res, err := eng.PredictCalories(inbound.PredictCaloriesRequest{Name: "chicken adobo"})

		require.NoError(t, err)
		assert.Equal(t, 100.0, res.ServingSizeG)
		assert.InDelta(t, 280.0, res.Calories, 1e-9)
	})

	t.Run("UnknownFoodFallsToRule", func(t *testing.T) {
		res, err := eng.PredictCalories(inbound.PredictCaloriesRequest{
			Name: "mystery dish", Category: "meats", ServingSizeG: 100,
		})

		require.NoError(t, err)
		assert.Equal(t, prediction.MethodRuleBased, res.Method)
		assert.InDelta(t, 250.0, res.Calories, 1e-9)
	})

	t.Run("EmptyNameRejected", func(t *testing.T) {
		_, err := eng.PredictCalories(inbound.PredictCaloriesRequest{ServingSizeG: 100})

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.CodeValidationFailed))
	})

	t.Run("NegativeServingRejected", func(t *testing.T) {
		_, err := eng.PredictCalories(inbound.PredictCaloriesRequest{Name: "adobo", ServingSizeG: -50})

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.CodeValidationFailed))
	})
}

func TestPredictNutrition(t *testing.T) {
	eng := newTestEngine(t)

	report, err := eng.PredictNutrition(inbound.PredictNutritionRequest{
		Name: "mango", ServingSizeG: 150,
		Sex: "female", Age: 25, WeightKg: 70, HeightCm: 170, ActivityLevel: "moderate",
	})

	require.NoError(t, err)
	assert.Equal(t, prediction.MethodDatabaseLookup, report.Source)
	assert.InDelta(t, 90.0, report.Nutrition.Calories, 1e-9)
	assert.InDelta(t, 54.0, report.Nutrition.VitaminCMg, 1e-9)
	assert.Equal(t, 2289.0, report.DailyNeeds.Calories)
	assert.Equal(t, 46.0, report.DailyNeeds.ProteinG)
	assert.NotEmpty(t, report.Insights, "vitamin C rich serving yields an insight")
}

func TestRecommendMeals(t *testing.T) {
	eng := newTestEngine(t)
	base := inbound.RecommendMealsRequest{
		Sex: "male", Age: 30, WeightKg: 80, HeightCm: 175, ActivityLevel: "sedentary",
	}

	t.Run("PlanCoversAllSlots", func(t *testing.T) {
		rec, err := eng.RecommendMeals(base)

		require.NoError(t, err)
		require.NotNil(t, rec.Plan)
		assert.NotEmpty(t, rec.Plan.Breakfast.Foods)
		assert.NotEmpty(t, rec.Plan.Lunch.Foods)
		assert.NotEmpty(t, rec.Plan.Dinner.Foods)
		assert.NotEmpty(t, rec.Plan.Snacks.Foods)
		// BMR 1748.75 * 1.2 rounded, split 25/35/30/10.
		assert.InDelta(t, 2099*0.25, rec.Plan.Breakfast.TargetCalories, 1e-9)
	})

	t.Run("WeightLossLowersTarget", func(t *testing.T) {
		req := base
		req.Goal = "weight_loss"
		rec, err := eng.RecommendMeals(req)

		require.NoError(t, err)
		assert.InDelta(t, 2099*0.85, rec.DailyNeeds.Calories, 1e-9)
		assert.NotEmpty(t, rec.Recommendations)
	})

	t.Run("MuscleGainRaisesProtein", func(t *testing.T) {
		req := base
		req.Goal = "muscle_gain"
		rec, err := eng.RecommendMeals(req)

		require.NoError(t, err)
		assert.InDelta(t, 2099*1.15, rec.DailyNeeds.Calories, 1e-9)
		assert.InDelta(t, 56*1.25, rec.DailyNeeds.ProteinG, 1e-9)
	})

	t.Run("PreferencesAndMedicalHistory", func(t *testing.T) {
		req := base
		req.Preferences = []string{"plant-based"}
		req.MedicalHistory = []string{"diabetes"}
		rec, err := eng.RecommendMeals(req)

		require.NoError(t, err)
		for _, slot := range []mealplan.Slot{rec.Plan.Breakfast, rec.Plan.Lunch, rec.Plan.Dinner, rec.Plan.Snacks} {
			assert.NotContains(t, slot.Foods, "chicken adobo")
		}
		require.Len(t, rec.MedicalConsiderations, 1)
		assert.Contains(t, rec.MedicalConsiderations[0], "fiber")
	})

	t.Run("MissingProfileRejected", func(t *testing.T) {
		_, err := eng.RecommendMeals(inbound.RecommendMealsRequest{Age: 30})

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.CodeValidationFailed))
	})
}

func TestAnalyzeFoodLog(t *testing.T) {
	eng := newTestEngine(t)

	t.Run("TotalsAndGaps", func(t *testing.T) {
		report, err := eng.AnalyzeFoodLog(inbound.AnalyzeFoodLogRequest{
			Entries: []inbound.FoodLogEntry{
				{Name: "chicken adobo", ServingSizeG: 150},
				{Name: "white rice", ServingSizeG: 150},
				{Name: "mango"}, // serving defaults to 100
			},
			Sex: "female", Age: 25, WeightKg: 70, HeightCm: 170, ActivityLevel: "moderate",
		})

		require.NoError(t, err)
		// 280*1.5 + 130*1.5 + 60 = 675
		assert.InDelta(t, 675.0, report.TotalNutrition.Calories, 1e-9)
		require.NotNil(t, report.Analysis)
		assert.Contains(t, report.Analysis.Gaps, "calories")
		assert.NotEmpty(t, report.Recommendations)
	})

	t.Run("EmptyLogRejected", func(t *testing.T) {
		_, err := eng.AnalyzeFoodLog(inbound.AnalyzeFoodLogRequest{
			Sex: "female", Age: 25, WeightKg: 70, HeightCm: 170,
		})

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.CodeValidationFailed))
	})
}

func TestUsageStatsFlow(t *testing.T) {
	eng := newTestEngine(t)

	_, err := eng.PredictCalories(inbound.PredictCaloriesRequest{Name: "chicken adobo"})
	require.NoError(t, err)
	_, err = eng.PredictCalories(inbound.PredictCaloriesRequest{Name: "mystery dish"})
	require.NoError(t, err)

	snap := eng.UsageStats()
	assert.Equal(t, int64(2), snap.Total)
	assert.Equal(t, int64(1), snap.Database)
	assert.Equal(t, int64(1), snap.RuleBased)

	eng.ResetStats()
	assert.Equal(t, int64(0), eng.UsageStats().Total)
}
