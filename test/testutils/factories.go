// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/alchemorsel/kalorye/internal/domain/food"
	"github.com/alchemorsel/kalorye/internal/domain/profile"
)

// FoodFactory creates food entries with plausible nutrient profiles.
type FoodFactory struct {
	faker *gofakeit.Faker
}

// NewFoodFactory creates a food factory with a seeded faker so tests
// are reproducible.
func NewFoodFactory(seed int64) *FoodFactory {
	return &FoodFactory{faker: gofakeit.New(seed)}
}

// Entry generates a random entry in the given category, with calories
// near the category baseline so generated data passes plausibility
// checks.
func (f *FoodFactory) Entry(category food.Category) food.Entry {
	base := category.BaselineCaloriesPer100g()
	calories := base * (0.7 + f.faker.Float64Range(0, 0.6))
	return food.Entry{
		Name:     fmt.Sprintf("%s %s", f.faker.AdjectiveDescriptive(), f.faker.NounConcrete()),
		Category: category,
		Nutrients: food.NutrientProfile{
			Calories:   calories,
			ProteinG:   f.faker.Float64Range(1, 30),
			FatG:       f.faker.Float64Range(0, 25),
			CarbsG:     f.faker.Float64Range(0, 50),
			FiberG:     f.faker.Float64Range(0, 6),
			CalciumMg:  f.faker.Float64Range(5, 300),
			IronMg:     f.faker.Float64Range(0, 5),
			VitaminCMg: f.faker.Float64Range(0, 60),
		},
		ServingSizeG: f.faker.Float64Range(50, 250),
		DataSource:   "test",
	}
}

// Entries generates n random entries cycling through all categories.
func (f *FoodFactory) Entries(n int) []food.Entry {
	out := make([]food.Entry, n)
	for i := range out {
		out[i] = f.Entry(food.Categories[i%len(food.Categories)])
	}
	return out
}

// FoodBuilder provides a fluent interface for building test entries.
type FoodBuilder struct {
	entry food.Entry
}

// NewFoodBuilder creates a builder with sane defaults.
func NewFoodBuilder() *FoodBuilder {
	return &FoodBuilder{
		entry: food.Entry{
			Name:         "test food",
			Category:     food.CategoryMeats,
			Nutrients:    food.NutrientProfile{Calories: 200, ProteinG: 15, FatG: 10, CarbsG: 8},
			ServingSizeG: 100,
			DataSource:   "test",
		},
	}
}

// WithName sets the entry name
func (b *FoodBuilder) WithName(name string) *FoodBuilder {
	b.entry.Name = name
	return b
}

// WithCategory sets the entry category
func (b *FoodBuilder) WithCategory(c food.Category) *FoodBuilder {
	b.entry.Category = c
	return b
}

// WithCalories sets calories per 100g
func (b *FoodBuilder) WithCalories(kcal float64) *FoodBuilder {
	b.entry.Nutrients.Calories = kcal
	return b
}

// WithProtein sets protein grams per 100g
func (b *FoodBuilder) WithProtein(grams float64) *FoodBuilder {
	b.entry.Nutrients.ProteinG = grams
	return b
}

// WithNutrients replaces the whole nutrient profile
func (b *FoodBuilder) WithNutrients(n food.NutrientProfile) *FoodBuilder {
	b.entry.Nutrients = n
	return b
}

// Build returns the entry
func (b *FoodBuilder) Build() food.Entry {
	return b.entry
}

// ProfileFactory creates demographic profiles.
type ProfileFactory struct {
	faker *gofakeit.Faker
}

// NewProfileFactory creates a profile factory with a seeded faker.
func NewProfileFactory(seed int64) *ProfileFactory {
	return &ProfileFactory{faker: gofakeit.New(seed)}
}

// Adult generates a random adult profile.
func (f *ProfileFactory) Adult() profile.Profile {
	sex := profile.SexMale
	if f.faker.Bool() {
		sex = profile.SexFemale
	}
	levels := []profile.ActivityLevel{
		profile.ActivitySedentary,
		profile.ActivityLightlyActive,
		profile.ActivityModerate,
		profile.ActivityActive,
		profile.ActivityVeryActive,
	}
	return profile.Profile{
		Sex:           sex,
		Age:           f.faker.Number(18, 65),
		WeightKg:      f.faker.Float64Range(45, 110),
		HeightCm:      f.faker.Float64Range(145, 195),
		ActivityLevel: levels[f.faker.Number(0, len(levels)-1)],
	}
}
