// Package mealplan generates categorized daily meal plans from calorie
// targets, dietary preferences, and medical-history constraints.
package mealplan

import (
	"strings"

	"go.uber.org/zap"

	"github.com/alchemorsel/kalorye/internal/domain/food"
	"github.com/alchemorsel/kalorye/internal/domain/profile"
)

// Fixed calorie split across the four meal slots.
const (
	breakfastCalorieShare = 0.25
	lunchCalorieShare     = 0.35
	dinnerCalorieShare    = 0.30
	snacksCalorieShare    = 0.10
)

// Slot size caps.
const (
	mealSlotCap  = 5
	snackSlotCap = 3
)

// snackCaloriesPer100gCap marks light items as snack candidates
// regardless of category.
const snackCaloriesPer100gCap = 150

// proteinRichThresholdG marks foods promoted to every main slot under
// the protein preference.
const proteinRichThresholdG = 10

// Slot is one meal slot of a plan: up to the cap of food names plus
// the slot's calorie target.
type Slot struct {
	Foods          []string `json:"foods"`
	TargetCalories float64  `json:"target_calories"`
}

// Plan is a one-day meal plan across the four fixed slots.
type Plan struct {
	Breakfast Slot `json:"breakfast"`
	Lunch     Slot `json:"lunch"`
	Dinner    Slot `json:"dinner"`
	Snacks    Slot `json:"snacks"`
}

// medicalAdvisories maps recognized conditions to advisory text.
// Unrecognized conditions produce no advisory.
var medicalAdvisories = map[string]string{
	"diabetes":      "Limit refined carbohydrates and sugary foods; prefer high-fiber options and spread carbohydrate intake across meals.",
	"hypertension":  "Keep sodium low: go easy on salted, cured, and fermented foods, and favor fresh vegetables and fruits.",
	"heart disease": "Limit saturated fat and fried foods; prefer fish, legumes, and steamed or boiled preparations.",
}

// Generator builds meal plans. It is stateless; each call works on the
// food list it is handed.
type Generator struct {
	logger *zap.Logger
}

// NewGenerator builds a meal plan generator.
func NewGenerator(logger *zap.Logger) *Generator {
	return &Generator{logger: logger.Named("mealplan")}
}

func normalizeToken(s string) string {
	t := strings.ToLower(strings.TrimSpace(s))
	t = strings.ReplaceAll(t, "-", "_")
	return t
}

func hasPreference(prefs []string, want string) bool {
	for _, p := range prefs {
		if normalizeToken(p) == want {
			return true
		}
	}
	return false
}

func isProduceCategory(c food.Category) bool {
	switch c {
	case food.CategoryVegetables, food.CategoryFruits, food.CategoryGrains, food.CategoryLegumes:
		return true
	}
	return false
}

// FilterByPreferences applies exclusion rules for the restrictive
// preference tokens. Non-restrictive tokens (healthy, protein, spicy,
// sweet, comfort) pass everything through and only influence slot
// placement later. No preferences means identity pass-through.
func FilterByPreferences(foods []food.Entry, prefs []string) []food.Entry {
	if len(prefs) == 0 {
		return foods
	}

	plantBased := hasPreference(prefs, "plant_based")
	vegetarian := hasPreference(prefs, "vegetarian")
	vegan := hasPreference(prefs, "vegan")
	if !plantBased && !vegetarian && !vegan {
		return foods
	}

	var kept []food.Entry
	for _, f := range foods {
		if excludeByPreference(f, plantBased, vegetarian, vegan) {
			continue
		}
		kept = append(kept, f)
	}
	return kept
}

func excludeByPreference(f food.Entry, plantBased, vegetarian, vegan bool) bool {
	isMeatName := food.ContainsMeatKeyword(f.Name) && !food.ContainsVegetableKeyword(f.Name)

	if plantBased {
		if f.Category == food.CategoryMeats || isMeatName {
			return true
		}
		// Dairy stays only for produce categories; a dairy-category food
		// never has one, so plant_based always drops dairy. Kept as-is
		// deliberately; see the pinning test before simplifying.
		if f.Category == food.CategoryDairy && !isProduceCategory(f.Category) {
			return true
		}
	}

	if vegetarian || vegan {
		if f.Category == food.CategoryMeats || isMeatName {
			return true
		}
	}
	if vegan {
		if f.Category == food.CategoryDairy || food.ContainsDairyKeyword(f.Name) {
			return true
		}
	}
	return false
}

// Generate builds a plan from the available foods and daily targets.
// Slot targets are fixed fractions of the daily calories; every slot is
// guaranteed non-empty when any food is available.
func (g *Generator) Generate(available []food.Entry, needs profile.DailyNeeds, prefs []string) *Plan {
	filtered := FilterByPreferences(available, prefs)

	proteinPref := hasPreference(prefs, "protein")
	plantPref := hasPreference(prefs, "plant_based")
	sweetPref := hasPreference(prefs, "sweet")

	var breakfast, lunch, dinner, snacks []food.Entry
	for _, f := range filtered {
		switch f.Category {
		case food.CategoryGrains, food.CategoryFruits:
			breakfast = append(breakfast, f)
		case food.CategoryMeats, food.CategoryVegetables:
			lunch = append(lunch, f)
		default:
			dinner = append(dinner, f)
		}

		if f.Category == food.CategoryFruits || f.Category == food.CategorySnacks ||
			f.CaloriesPer100g() < snackCaloriesPer100gCap {
			snacks = append(snacks, f)
		}

		if proteinPref && f.Nutrients.ProteinG > proteinRichThresholdG {
			breakfast = append(breakfast, f)
			lunch = append(lunch, f)
			dinner = append(dinner, f)
		}
		if plantPref && (f.Category == food.CategoryVegetables || f.Category == food.CategoryLegumes) {
			breakfast = append(breakfast, f)
		}
		if sweetPref && f.Category == food.CategoryFruits {
			snacks = append(snacks, f)
		}
	}

	breakfast = truncateUnique(breakfast, mealSlotCap)
	lunch = truncateUnique(lunch, mealSlotCap)
	dinner = truncateUnique(dinner, mealSlotCap)
	snacks = truncateUnique(snacks, snackSlotCap)

	used := make(map[string]bool)
	for _, slot := range [][]food.Entry{breakfast, lunch, dinner, snacks} {
		for _, f := range slot {
			used[food.NormalizeName(f.Name)] = true
		}
	}

	breakfast = backfill(breakfast, filtered, used, mealSlotCap)
	lunch = backfill(lunch, filtered, used, mealSlotCap)
	dinner = backfill(dinner, filtered, used, mealSlotCap)
	snacks = backfill(snacks, filtered, used, snackSlotCap)

	g.logger.Debug("meal plan generated",
		zap.Int("available", len(available)),
		zap.Int("after_filter", len(filtered)),
		zap.Strings("preferences", prefs))

	return &Plan{
		Breakfast: Slot{Foods: names(breakfast), TargetCalories: needs.Calories * breakfastCalorieShare},
		Lunch:     Slot{Foods: names(lunch), TargetCalories: needs.Calories * lunchCalorieShare},
		Dinner:    Slot{Foods: names(dinner), TargetCalories: needs.Calories * dinnerCalorieShare},
		Snacks:    Slot{Foods: names(snacks), TargetCalories: needs.Calories * snacksCalorieShare},
	}
}

// truncateUnique deduplicates by normalized name, keeping first
// occurrence order, and cuts at the cap.
func truncateUnique(entries []food.Entry, limit int) []food.Entry {
	seen := make(map[string]bool)
	var out []food.Entry
	for _, f := range entries {
		key := food.NormalizeName(f.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, f)
		if len(out) == limit {
			break
		}
	}
	return out
}

// backfill fills an empty slot with the first unused foods so no slot
// comes back empty. If everything is already used it falls back to the
// head of the filtered list.
func backfill(slot, filtered []food.Entry, used map[string]bool, limit int) []food.Entry {
	if len(slot) > 0 || len(filtered) == 0 {
		return slot
	}
	for _, f := range filtered {
		key := food.NormalizeName(f.Name)
		if used[key] {
			continue
		}
		used[key] = true
		slot = append(slot, f)
		if len(slot) == limit {
			return slot
		}
	}
	if len(slot) == 0 {
		slot = truncateUnique(filtered, limit)
	}
	return slot
}

func names(entries []food.Entry) []string {
	out := make([]string, len(entries))
	for i, f := range entries {
		out[i] = f.Name
	}
	return out
}

// MedicalConsiderations returns advisory text for recognized
// conditions. Condition names match case-insensitively with
// underscores treated as spaces.
func (g *Generator) MedicalConsiderations(history []string) []string {
	var out []string
	for _, condition := range history {
		key := strings.ReplaceAll(normalizeToken(condition), "_", " ")
		if advisory, ok := medicalAdvisories[key]; ok {
			out = append(out, advisory)
		}
	}
	return out
}
