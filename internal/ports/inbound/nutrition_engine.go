// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the entry points the excluded web layer consumes.
package inbound

import (
	"github.com/alchemorsel/kalorye/internal/application/mealplan"
	"github.com/alchemorsel/kalorye/internal/application/nutrition"
	"github.com/alchemorsel/kalorye/internal/domain/food"
	"github.com/alchemorsel/kalorye/internal/domain/prediction"
	"github.com/alchemorsel/kalorye/internal/domain/profile"
)

// NutritionEngine defines the prediction and recommendation use cases.
// Every operation is a synchronous, stateless-per-call computation; the
// only mutable state behind it is the usage stats tracker.
type NutritionEngine interface {
	// PredictCalories resolves a calorie estimate through the
	// three-tier pipeline: exact lookup, validated ML inference, rule
	// baseline.
	PredictCalories(req PredictCaloriesRequest) (*prediction.Result, error)

	// PredictNutrition expands a calorie prediction into full nutrient
	// amounts and compares them against the profile's daily needs.
	PredictNutrition(req PredictNutritionRequest) (*NutritionReport, error)

	// RecommendMeals builds a categorized meal plan from daily targets,
	// dietary preferences, and medical history.
	RecommendMeals(req RecommendMealsRequest) (*MealRecommendation, error)

	// AnalyzeFoodLog totals a day's logged foods and reports nutrient
	// gaps and excesses against daily needs.
	AnalyzeFoodLog(req AnalyzeFoodLogRequest) (*FoodLogReport, error)

	// UsageStats returns an immutable snapshot of the process counters.
	UsageStats() prediction.StatsSnapshot

	// ResetStats zeroes the process counters.
	ResetStats()
}

// PredictCaloriesRequest describes a food to estimate. ServingSizeG
// defaults to 100 when zero; negative values are rejected at the
// boundary.
type PredictCaloriesRequest struct {
	Name         string   `validate:"required"`
	Category     string   `validate:"omitempty"`
	ServingSizeG float64  `validate:"gte=0"`
	PrepMethod   string   `validate:"omitempty"`
	Ingredients  []string `validate:"omitempty,dive,required"`
}

// PredictNutritionRequest combines a food description with the
// demographic profile used for daily-needs comparison.
type PredictNutritionRequest struct {
	Name          string  `validate:"required"`
	Category      string  `validate:"omitempty"`
	ServingSizeG  float64 `validate:"gte=0"`
	PrepMethod    string  `validate:"omitempty"`
	Sex           string  `validate:"omitempty"`
	Age           int     `validate:"gte=0,lte=130"`
	WeightKg      float64 `validate:"gte=0"`
	HeightCm      float64 `validate:"gte=0"`
	ActivityLevel string  `validate:"omitempty"`
}

// NutritionReport is the result of PredictNutrition.
type NutritionReport struct {
	FoodName        string               `json:"food_name"`
	ServingSizeG    float64              `json:"serving_size_g"`
	Nutrition       food.NutrientProfile `json:"nutrition"`
	Source          prediction.Method    `json:"source"`
	DailyNeeds      profile.DailyNeeds   `json:"daily_needs"`
	Insights        []string             `json:"insights"`
	Recommendations []string             `json:"recommendations"`
}

// RecommendMealsRequest carries the inputs for meal-plan generation.
type RecommendMealsRequest struct {
	Sex            string   `validate:"omitempty"`
	Age            int      `validate:"gt=0,lte=130"`
	WeightKg       float64  `validate:"gt=0"`
	HeightCm       float64  `validate:"gt=0"`
	ActivityLevel  string   `validate:"omitempty"`
	Goal           string   `validate:"omitempty"`
	Preferences    []string `validate:"omitempty,dive,required"`
	MedicalHistory []string `validate:"omitempty,dive,required"`
}

// MealRecommendation is the result of RecommendMeals.
type MealRecommendation struct {
	Plan                  *mealplan.Plan     `json:"meal_plan"`
	DailyNeeds            profile.DailyNeeds `json:"daily_needs"`
	MedicalConsiderations []string           `json:"medical_considerations"`
	Recommendations       []string           `json:"recommendations"`
}

// FoodLogEntry is one consumed item in a day's log.
type FoodLogEntry struct {
	Name         string  `validate:"required"`
	ServingSizeG float64 `validate:"gte=0"`
}

// AnalyzeFoodLogRequest carries a day's log plus the profile to compare
// against.
type AnalyzeFoodLogRequest struct {
	Entries       []FoodLogEntry `validate:"required,min=1,dive"`
	Sex           string         `validate:"omitempty"`
	Age           int            `validate:"gt=0,lte=130"`
	WeightKg      float64        `validate:"gt=0"`
	HeightCm      float64        `validate:"gt=0"`
	ActivityLevel string         `validate:"omitempty"`
	Goal          string         `validate:"omitempty"`
}

// FoodLogReport is the result of AnalyzeFoodLog.
type FoodLogReport struct {
	TotalNutrition  food.NutrientProfile   `json:"total_nutrition"`
	DailyNeeds      profile.DailyNeeds     `json:"daily_needs"`
	Analysis        *nutrition.GapAnalysis `json:"analysis"`
	Recommendations []string               `json:"recommendations"`
}
