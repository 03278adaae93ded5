package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alchemorsel/kalorye/internal/domain/food"
)

func TestCategoryForGroup(t *testing.T) {
	tests := []struct {
		group string
		want  food.Category
	}{
		{"meats", food.CategoryMeats},
		{"Meat, Poultry and Fish", food.CategoryMeats},
		{"Starchy Roots and Vegetables", food.CategoryVegetables},
		{"Fruits", food.CategoryFruits},
		{"Cereals and Cereal Products", food.CategoryGrains},
		{"Dried Beans, Nuts and Seeds", food.CategoryLegumes},
		{"Milk and Milk Products", food.CategoryDairy},
		{"Sweets and Snacks", food.CategorySnacks},
		{"Condiments", food.CategoryUnknown},
		{"", food.CategoryUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, categoryForGroup(tt.group), "group %q", tt.group)
	}
}

func TestLoadFoodRecords(t *testing.T) {
	db, err := SetupTestStore()
	require.NoError(t, err)

	records := []FoodRecordModel{
		{
			FoodNameEnglish: "Milkfish, boiled", FoodNameFilipino: "bangus, nilaga",
			FoodGroup: "Meat, Poultry and Fish", MealCategory: "lunch",
			EnergyKcal: 116, ProteinG: 20, FatTotalG: 3.5,
			ServingSizeG: 120, HouseholdMeasure: "1 slice", DataSource: "FNRI",
		},
		{
			FoodNameEnglish: "Kangkong, raw", FoodGroup: "Leafy Vegetables",
			EnergyKcal: 19, DietaryFiberG: 2.1, VitaminCMg: 55,
		},
		// Skipped rows: no name, no calories.
		{FoodNameEnglish: "", EnergyKcal: 100},
		{FoodNameEnglish: "No Energy", EnergyKcal: 0},
	}
	require.NoError(t, db.Create(&records).Error)

	entries, err := LoadFoodRecords(db)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byName := make(map[string]food.Entry)
	for _, e := range entries {
		byName[e.Name] = e
	}

	fish := byName["Milkfish, boiled"]
	assert.Equal(t, food.CategoryMeats, fish.Category)
	assert.Equal(t, "bangus, nilaga", fish.NameFilipino)
	assert.Equal(t, 116.0, fish.Nutrients.Calories)
	assert.Equal(t, 120.0, fish.ServingSizeG)
	assert.Equal(t, "lunch", fish.MealCategory)
	assert.NotEmpty(t, fish.SourceID)

	veg := byName["Kangkong, raw"]
	assert.Equal(t, food.CategoryVegetables, veg.Category)
	assert.Equal(t, 100.0, veg.ServingSizeG, "missing serving size defaults to 100g")
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open("/nonexistent/foods.db")
	assert.Error(t, err)
}
