// Package profile models the demographic inputs and daily nutrient
// targets used by the nutrition and meal-planning services.
package profile

import "strings"

// Sex as used by the Mifflin-St Jeor equation and the nutrient
// guideline tables. Unrecognized values fall back to the male tables.
type Sex string

const (
	SexFemale Sex = "female"
	SexMale   Sex = "male"
)

// ParseSex normalizes a free-form sex string.
func ParseSex(s string) Sex {
	if strings.ToLower(strings.TrimSpace(s)) == string(SexFemale) {
		return SexFemale
	}
	return SexMale
}

// ActivityLevel scales basal metabolic rate into total daily energy
// expenditure.
type ActivityLevel string

const (
	ActivitySedentary     ActivityLevel = "sedentary"
	ActivityLightlyActive ActivityLevel = "lightly_active"
	ActivityModerate      ActivityLevel = "moderate"
	ActivityActive        ActivityLevel = "active"
	ActivityVeryActive    ActivityLevel = "very_active"
)

// activityFactors is the single source of truth for valid activity
// levels. Both "moderate" and "active" map to the same factor.
var activityFactors = map[ActivityLevel]float64{
	ActivitySedentary:     1.2,
	ActivityLightlyActive: 1.375,
	ActivityModerate:      1.55,
	ActivityActive:        1.55,
	ActivityVeryActive:    1.725,
}

const defaultActivityFactor = 1.55

// Factor returns the TDEE multiplier for the level, defaulting to the
// moderate factor for unknown levels.
func (a ActivityLevel) Factor() float64 {
	if f, ok := activityFactors[ActivityLevel(strings.ToLower(string(a)))]; ok {
		return f
	}
	return defaultActivityFactor
}

// Goal adjusts calorie targets for meal recommendation.
type Goal string

const (
	GoalMaintain   Goal = "maintain"
	GoalWeightLoss Goal = "weight_loss"
	GoalMuscleGain Goal = "muscle_gain"
)

// ParseGoal normalizes a free-form goal string, defaulting to maintain.
func ParseGoal(s string) Goal {
	switch Goal(strings.ToLower(strings.TrimSpace(s))) {
	case GoalWeightLoss:
		return GoalWeightLoss
	case GoalMuscleGain:
		return GoalMuscleGain
	default:
		return GoalMaintain
	}
}

// Profile carries the demographic inputs for daily-needs computation.
type Profile struct {
	Sex           Sex
	Age           int
	WeightKg      float64
	HeightCm      float64
	ActivityLevel ActivityLevel
}

// BMR computes basal metabolic rate via Mifflin-St Jeor. The female
// equation subtracts 161; every other sex value adds 5.
func (p Profile) BMR() float64 {
	base := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Sex == SexFemale {
		return base - 161
	}
	return base + 5
}

// DailyNeeds holds one day's target intake of calories and tracked
// nutrients. Recomputed on demand, never cached.
type DailyNeeds struct {
	Calories   float64 `json:"calories"`
	ProteinG   float64 `json:"protein_g"`
	IronMg     float64 `json:"iron_mg"`
	CalciumMg  float64 `json:"calcium_mg"`
	FiberG     float64 `json:"fiber_g"`
	VitaminCMg float64 `json:"vitamin_c_mg"`
}

// nutrientGuidelines holds daily nutrient targets by sex, based on
// adult dietary reference intakes.
var nutrientGuidelines = map[Sex]DailyNeeds{
	SexFemale: {ProteinG: 46, IronMg: 18, CalciumMg: 1000, FiberG: 25, VitaminCMg: 75},
	SexMale:   {ProteinG: 56, IronMg: 8, CalciumMg: 1000, FiberG: 38, VitaminCMg: 90},
}

// GuidelineNeeds returns the non-calorie nutrient targets for the sex.
// The male table is the default for unrecognized values.
func GuidelineNeeds(sex Sex) DailyNeeds {
	if needs, ok := nutrientGuidelines[sex]; ok {
		return needs
	}
	return nutrientGuidelines[SexMale]
}
