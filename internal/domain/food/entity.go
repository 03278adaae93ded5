package food

import "strings"

// NutrientProfile holds nutrient amounts. Depending on context the
// values are either per 100 grams of food (as stored) or absolute
// amounts for a serving (after Scale).
type NutrientProfile struct {
	Calories   float64 `json:"calories"`
	ProteinG   float64 `json:"protein_g"`
	FatG       float64 `json:"fat_g"`
	CarbsG     float64 `json:"carbs_g"`
	FiberG     float64 `json:"fiber_g"`
	CalciumMg  float64 `json:"calcium_mg"`
	IronMg     float64 `json:"iron_mg"`
	VitaminCMg float64 `json:"vitamin_c_mg"`
}

// Scale returns a copy of the profile with every nutrient multiplied by
// factor. Scaling per-100g values by servingSize/100 yields absolute
// amounts for the serving.
func (n NutrientProfile) Scale(factor float64) NutrientProfile {
	return NutrientProfile{
		Calories:   n.Calories * factor,
		ProteinG:   n.ProteinG * factor,
		FatG:       n.FatG * factor,
		CarbsG:     n.CarbsG * factor,
		FiberG:     n.FiberG * factor,
		CalciumMg:  n.CalciumMg * factor,
		IronMg:     n.IronMg * factor,
		VitaminCMg: n.VitaminCMg * factor,
	}
}

// Add returns the element-wise sum of two profiles.
func (n NutrientProfile) Add(other NutrientProfile) NutrientProfile {
	return NutrientProfile{
		Calories:   n.Calories + other.Calories,
		ProteinG:   n.ProteinG + other.ProteinG,
		FatG:       n.FatG + other.FatG,
		CarbsG:     n.CarbsG + other.CarbsG,
		FiberG:     n.FiberG + other.FiberG,
		CalciumMg:  n.CalciumMg + other.CalciumMg,
		IronMg:     n.IronMg + other.IronMg,
		VitaminCMg: n.VitaminCMg + other.VitaminCMg,
	}
}

// Entry is a food item with its per-100g nutrient profile. Entries are
// immutable once loaded; the knowledge base owns them exclusively.
// Identity is the normalized name, or the external source id when the
// entry came from the expanded dataset.
type Entry struct {
	Name             string          `json:"name"`
	NameFilipino     string          `json:"name_filipino,omitempty"`
	SourceID         string          `json:"source_id,omitempty"`
	Category         Category        `json:"category"`
	MealCategory     string          `json:"meal_category,omitempty"`
	Nutrients        NutrientProfile `json:"nutrients"`
	ServingSizeG     float64         `json:"serving_size_g"`
	HouseholdMeasure string          `json:"household_measure,omitempty"`
	DataSource       string          `json:"data_source,omitempty"`
}

// CaloriesPer100g returns the entry's calorie density.
func (e Entry) CaloriesPer100g() float64 {
	return e.Nutrients.Calories
}

// NutrientsForServing returns absolute nutrient amounts for a serving
// of the given size in grams.
func (e Entry) NutrientsForServing(servingSizeG float64) NutrientProfile {
	return e.Nutrients.Scale(servingSizeG / 100)
}

// NormalizeName canonicalizes a food name for lookup: lowercase,
// trimmed, underscores treated as spaces, internal runs of whitespace
// collapsed.
func NormalizeName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "_", " ")
	return strings.Join(strings.Fields(s), " ")
}
