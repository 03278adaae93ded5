// Package sqlite loads the expanded food table from a local SQLite
// store. The store is a read-only data source: it is read once at
// startup and never written by the engine.
package sqlite

import (
	"fmt"
	"os"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/alchemorsel/kalorye/internal/domain/food"
)

// FoodRecordModel mirrors the food_records table of the expanded
// dataset (FNRI-derived composition data).
type FoodRecordModel struct {
	ID               uint    `gorm:"primaryKey"`
	FoodNameEnglish  string  `gorm:"column:food_name_english;index"`
	FoodNameFilipino string  `gorm:"column:food_name_filipino"`
	FoodGroup        string  `gorm:"column:food_group"`
	MealCategory     string  `gorm:"column:meal_category"`
	EnergyKcal       float64 `gorm:"column:energy_kcal"`
	ProteinG         float64 `gorm:"column:protein_g"`
	FatTotalG        float64 `gorm:"column:fat_total_g"`
	CarbohydratesG   float64 `gorm:"column:carbohydrates_g"`
	DietaryFiberG    float64 `gorm:"column:dietary_fiber_g"`
	CalciumMg        float64 `gorm:"column:calcium_mg"`
	IronMg           float64 `gorm:"column:iron_mg"`
	VitaminCMg       float64 `gorm:"column:vitamin_c_mg"`
	ServingSizeG     float64 `gorm:"column:serving_size_g"`
	HouseholdMeasure string  `gorm:"column:household_measure"`
	DataSource       string  `gorm:"column:data_source"`
}

// TableName sets the table name for GORM
func (FoodRecordModel) TableName() string {
	return "food_records"
}

// foodGroupAliases maps dataset food-group labels onto the fixed
// category set. Lookup is by lowercased substring so labels like
// "Meat, Poultry and Fish" resolve.
var foodGroupAliases = []struct {
	fragment string
	category food.Category
}{
	{"meat", food.CategoryMeats},
	{"poultry", food.CategoryMeats},
	{"fish", food.CategoryMeats},
	{"vegetable", food.CategoryVegetables},
	{"fruit", food.CategoryFruits},
	{"cereal", food.CategoryGrains},
	{"grain", food.CategoryGrains},
	{"rice", food.CategoryGrains},
	{"legume", food.CategoryLegumes},
	{"bean", food.CategoryLegumes},
	{"nut", food.CategoryLegumes},
	{"soup", food.CategorySoups},
	{"milk", food.CategoryDairy},
	{"dairy", food.CategoryDairy},
	{"snack", food.CategorySnacks},
	{"sweet", food.CategorySnacks},
}

// categoryForGroup resolves a free-form food-group label.
func categoryForGroup(group string) food.Category {
	if c := food.ParseCategory(group); c.IsKnown() {
		return c
	}
	lowered := strings.ToLower(group)
	for _, alias := range foodGroupAliases {
		if strings.Contains(lowered, alias.fragment) {
			return alias.category
		}
	}
	return food.CategoryUnknown
}

// Open opens the store at path. The file must already exist: the
// engine never creates or migrates the expanded dataset.
func Open(path string) (*gorm.DB, error) {
	if path != ":memory:" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("food store not found at %s: %w", path, err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open food store: %w", err)
	}
	return db, nil
}

// LoadFoodRecords reads every row of the expanded table and maps it to
// domain entries. Rows without a usable name or calorie value are
// skipped rather than failing the load.
func LoadFoodRecords(db *gorm.DB) ([]food.Entry, error) {
	var models []FoodRecordModel
	if err := db.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to read food_records: %w", err)
	}

	entries := make([]food.Entry, 0, len(models))
	for _, m := range models {
		if m.FoodNameEnglish == "" || m.EnergyKcal <= 0 {
			continue
		}
		entries = append(entries, toEntry(m))
	}
	return entries, nil
}

func toEntry(m FoodRecordModel) food.Entry {
	serving := m.ServingSizeG
	if serving <= 0 {
		serving = 100
	}
	return food.Entry{
		Name:         m.FoodNameEnglish,
		NameFilipino: m.FoodNameFilipino,
		SourceID:     fmt.Sprintf("fnri-%d", m.ID),
		Category:     categoryForGroup(m.FoodGroup),
		MealCategory: m.MealCategory,
		Nutrients: food.NutrientProfile{
			Calories:   m.EnergyKcal,
			ProteinG:   m.ProteinG,
			FatG:       m.FatTotalG,
			CarbsG:     m.CarbohydratesG,
			FiberG:     m.DietaryFiberG,
			CalciumMg:  m.CalciumMg,
			IronMg:     m.IronMg,
			VitaminCMg: m.VitaminCMg,
		},
		ServingSizeG:     serving,
		HouseholdMeasure: m.HouseholdMeasure,
		DataSource:       m.DataSource,
	}
}

// SetupTestStore creates an in-memory store with the schema migrated.
// Only tests use this; production stores ship pre-built.
func SetupTestStore() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&FoodRecordModel{}); err != nil {
		return nil, err
	}
	return db, nil
}
