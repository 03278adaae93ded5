// Package food contains the core domain model for food items:
// categories, preparation methods, nutrient profiles, and the pure
// text heuristics used to classify free-form food names.
package food

import "strings"

// Category classifies a food item into one of the fixed food groups.
type Category string

const (
	CategoryMeats      Category = "meats"
	CategoryVegetables Category = "vegetables"
	CategoryFruits     Category = "fruits"
	CategoryGrains     Category = "grains"
	CategoryLegumes    Category = "legumes"
	CategorySoups      Category = "soups"
	CategoryDairy      Category = "dairy"
	CategorySnacks     Category = "snacks"
	CategoryUnknown    Category = ""
)

// Categories lists all known categories in their canonical order.
// The order doubles as the one-hot encoding order for feature vectors,
// so it must not be rearranged.
var Categories = []Category{
	CategoryMeats,
	CategoryVegetables,
	CategoryFruits,
	CategoryGrains,
	CategoryLegumes,
	CategorySoups,
	CategoryDairy,
	CategorySnacks,
}

// baselineCaloriesPer100g holds the rule-based calorie estimate for each
// category, used as the fallback prediction and as the plausibility
// baseline for ML output.
var baselineCaloriesPer100g = map[Category]float64{
	CategoryMeats:      250,
	CategoryVegetables: 25,
	CategoryFruits:     60,
	CategoryGrains:     130,
	CategoryLegumes:    120,
	CategorySoups:      80,
	CategoryDairy:      100,
	CategorySnacks:     300,
}

// defaultBaselineCaloriesPer100g applies when the category is unknown.
const defaultBaselineCaloriesPer100g = 150

// calorieCeilingPer100g holds the per-category plausibility ceiling for
// ML predictions. Predictions above twice the ceiling are heavily
// blended toward the rule baseline.
var calorieCeilingPer100g = map[Category]float64{
	CategoryMeats:      600,
	CategorySnacks:     550,
	CategoryDairy:      400,
	CategoryGrains:     400,
	CategoryLegumes:    350,
	CategorySoups:      300,
	CategoryFruits:     150,
	CategoryVegetables: 200,
}

const defaultCalorieCeilingPer100g = 500

// ParseCategory maps a free-form category string to a known Category.
// Unrecognized values map to CategoryUnknown rather than erroring, since
// callers routinely pass uncategorized foods.
func ParseCategory(s string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return known
		}
	}
	return CategoryUnknown
}

// IsKnown reports whether the category is one of the fixed food groups.
func (c Category) IsKnown() bool {
	_, ok := baselineCaloriesPer100g[c]
	return ok
}

// BaselineCaloriesPer100g returns the rule-based calorie estimate for
// the category per 100 grams.
func (c Category) BaselineCaloriesPer100g() float64 {
	if v, ok := baselineCaloriesPer100g[c]; ok {
		return v
	}
	return defaultBaselineCaloriesPer100g
}

// CalorieCeilingPer100g returns the plausibility ceiling for ML
// predictions in this category.
func (c Category) CalorieCeilingPer100g() float64 {
	if v, ok := calorieCeilingPer100g[c]; ok {
		return v
	}
	return defaultCalorieCeilingPer100g
}

func (c Category) String() string {
	return string(c)
}
