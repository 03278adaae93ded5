package mealplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alchemorsel/kalorye/internal/domain/food"
	"github.com/alchemorsel/kalorye/internal/domain/profile"
	"github.com/alchemorsel/kalorye/test/testutils"
)

func entry(name string, c food.Category, kcal, protein float64) food.Entry {
	return food.Entry{
		Name:      name,
		Category:  c,
		Nutrients: food.NutrientProfile{Calories: kcal, ProteinG: protein},
	}
}

func testFoods() []food.Entry {
	return []food.Entry{
		entry("chicken adobo", food.CategoryMeats, 280, 20),
		entry("grilled bangus", food.CategoryMeats, 150, 22),
		entry("pinakbet", food.CategoryVegetables, 45, 2),
		entry("white rice", food.CategoryGrains, 130, 2.5),
		entry("pandesal", food.CategoryGrains, 310, 9),
		entry("mango", food.CategoryFruits, 60, 0.8),
		entry("ginisang monggo", food.CategoryLegumes, 105, 7),
		entry("sinigang na baboy", food.CategorySoups, 85, 6),
		entry("fresh milk", food.CategoryDairy, 61, 3.2),
		entry("turon", food.CategorySnacks, 312, 2),
	}
}

func TestFilterByPreferences(t *testing.T) {
	foods := testFoods()

	t.Run("NoPreferencesPassesThrough", func(t *testing.T) {
		assert.Len(t, FilterByPreferences(foods, nil), len(foods))
	})

	t.Run("NonRestrictivePreferencesPassThrough", func(t *testing.T) {
		assert.Len(t, FilterByPreferences(foods, []string{"healthy", "spicy"}), len(foods))
	})

	t.Run("PlantBasedDropsMeatAndDairy", func(t *testing.T) {
		kept := FilterByPreferences(foods, []string{"plant-based"})

		names := entryNames(kept)
		assert.NotContains(t, names, "chicken adobo")
		assert.NotContains(t, names, "grilled bangus")
		assert.NotContains(t, names, "fresh milk")
		assert.Contains(t, names, "mango")
		assert.Contains(t, names, "pinakbet")
		assert.Contains(t, names, "ginisang monggo")
	})

	t.Run("VegetarianKeepsDairy", func(t *testing.T) {
		kept := FilterByPreferences(foods, []string{"vegetarian"})

		names := entryNames(kept)
		assert.NotContains(t, names, "chicken adobo")
		assert.Contains(t, names, "fresh milk")
	})

	t.Run("VeganDropsDairyByNameToo", func(t *testing.T) {
		withDessert := append(testFoods(), entry("coconut milk dessert", food.CategorySnacks, 250, 2))
		kept := FilterByPreferences(withDessert, []string{"vegan"})

		names := entryNames(kept)
		assert.NotContains(t, names, "fresh milk")
		assert.NotContains(t, names, "coconut milk dessert")
		assert.Contains(t, names, "mango")
	})

	t.Run("MeatNameWithoutVegetableNameDropped", func(t *testing.T) {
		// "chicken soup" is soups by category but meat by name.
		withSoup := append(testFoods(), entry("chicken soup", food.CategorySoups, 70, 5))
		kept := FilterByPreferences(withSoup, []string{"vegetarian"})

		assert.NotContains(t, entryNames(kept), "chicken soup")
	})
}

// Pins the current plant_based dairy handling: the produce-category
// carve-out can never apply to a dairy-category food, so plant_based
// always drops dairy. Simplifying the condition must keep this output.
func TestPlantBasedAlwaysDropsDairyCategory(t *testing.T) {
	dairyOnly := []food.Entry{
		entry("fresh milk", food.CategoryDairy, 61, 3.2),
		entry("kesong puti", food.CategoryDairy, 260, 17),
	}

	kept := FilterByPreferences(dairyOnly, []string{"plant_based"})

	assert.Empty(t, kept)
}

func TestGenerate(t *testing.T) {
	g := NewGenerator(zap.NewNop())
	needs := profile.DailyNeeds{Calories: 2000}

	t.Run("SlotTargetsSplitDailyCalories", func(t *testing.T) {
		plan := g.Generate(testFoods(), needs, nil)

		assert.Equal(t, 500.0, plan.Breakfast.TargetCalories)
		assert.Equal(t, 700.0, plan.Lunch.TargetCalories)
		assert.Equal(t, 600.0, plan.Dinner.TargetCalories)
		assert.Equal(t, 200.0, plan.Snacks.TargetCalories)
	})

	t.Run("CategorizedSlots", func(t *testing.T) {
		plan := g.Generate(testFoods(), needs, nil)

		assert.Contains(t, plan.Breakfast.Foods, "white rice")
		assert.Contains(t, plan.Breakfast.Foods, "mango")
		assert.Contains(t, plan.Lunch.Foods, "chicken adobo")
		assert.Contains(t, plan.Lunch.Foods, "pinakbet")
		assert.Contains(t, plan.Dinner.Foods, "sinigang na baboy")
		assert.Contains(t, plan.Dinner.Foods, "ginisang monggo")
		assert.Contains(t, plan.Dinner.Foods, "turon")
		// Light foods and fruits fill the snack slot up to its cap.
		assert.Contains(t, plan.Snacks.Foods, "pinakbet")
		assert.Contains(t, plan.Snacks.Foods, "mango")
		assert.Len(t, plan.Snacks.Foods, 3)
	})

	t.Run("SlotCaps", func(t *testing.T) {
		factory := testutils.NewFoodFactory(7)
		var many []food.Entry
		for i := 0; i < 12; i++ {
			many = append(many, factory.Entry(food.CategoryMeats))
		}
		plan := g.Generate(many, needs, nil)

		assert.LessOrEqual(t, len(plan.Lunch.Foods), 5)
		assert.LessOrEqual(t, len(plan.Snacks.Foods), 3)
	})

	t.Run("NoSlotLeftEmpty", func(t *testing.T) {
		// Only meats: breakfast and dinner start empty and get backfilled.
		meatsOnly := []food.Entry{
			entry("tapa", food.CategoryMeats, 250, 25),
			entry("tocino", food.CategoryMeats, 345, 15),
			entry("longganisa", food.CategoryMeats, 390, 14),
		}
		plan := g.Generate(meatsOnly, needs, nil)

		assert.NotEmpty(t, plan.Breakfast.Foods)
		assert.NotEmpty(t, plan.Lunch.Foods)
		assert.NotEmpty(t, plan.Dinner.Foods)
		assert.NotEmpty(t, plan.Snacks.Foods)
	})

	t.Run("ProteinPreferencePromotesProteinRichFoods", func(t *testing.T) {
		plan := g.Generate(testFoods(), needs, []string{"protein"})

		// grilled bangus carries 22g protein, above the threshold.
		assert.Contains(t, plan.Breakfast.Foods, "grilled bangus")
		assert.Contains(t, plan.Lunch.Foods, "grilled bangus")
		assert.Contains(t, plan.Dinner.Foods, "grilled bangus")
	})

	t.Run("PlantBasedPreferencePromotesVegetablesToBreakfast", func(t *testing.T) {
		plan := g.Generate(testFoods(), needs, []string{"plant_based"})

		assert.Contains(t, plan.Breakfast.Foods, "pinakbet")
		assert.NotContains(t, plan.Lunch.Foods, "chicken adobo")
	})

	t.Run("NoDuplicatesWithinSlot", func(t *testing.T) {
		plan := g.Generate(testFoods(), needs, []string{"sweet"})

		seen := make(map[string]int)
		for _, f := range plan.Snacks.Foods {
			seen[f]++
		}
		for name, count := range seen {
			assert.Equal(t, 1, count, "duplicate %q in snacks", name)
		}
	})

	t.Run("EmptyFoodListYieldsEmptyPlan", func(t *testing.T) {
		plan := g.Generate(nil, needs, nil)

		require.NotNil(t, plan)
		assert.Empty(t, plan.Breakfast.Foods)
		assert.Equal(t, 500.0, plan.Breakfast.TargetCalories)
	})
}

func TestMedicalConsiderations(t *testing.T) {
	g := NewGenerator(zap.NewNop())

	t.Run("RecognizedConditions", func(t *testing.T) {
		out := g.MedicalConsiderations([]string{"Diabetes", "heart_disease"})

		require.Len(t, out, 2)
		assert.Contains(t, out[0], "refined carbohydrates")
		assert.Contains(t, out[1], "saturated fat")
	})

	t.Run("UnrecognizedConditionsIgnored", func(t *testing.T) {
		assert.Empty(t, g.MedicalConsiderations([]string{"asthma"}))
	})

	t.Run("EmptyHistory", func(t *testing.T) {
		assert.Empty(t, g.MedicalConsiderations(nil))
	})
}

func entryNames(entries []food.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}
