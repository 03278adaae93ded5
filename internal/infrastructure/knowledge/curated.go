package knowledge

import "github.com/alchemorsel/kalorye/internal/domain/food"

// curatedEntries is the built-in food table: common Filipino dishes and
// staples with per-100g profiles. Values are hand-checked against
// published composition data and act as the high-confidence exact-match
// tier, so edits here change prediction output directly.
var curatedEntries = []food.Entry{
	{
		Name: "adobo", NameFilipino: "adobo", Category: food.CategoryMeats,
		Nutrients:    food.NutrientProfile{Calories: 320, ProteinG: 25, FatG: 22, CarbsG: 4, FiberG: 0.3, CalciumMg: 18, IronMg: 1.6, VitaminCMg: 1},
		ServingSizeG: 150, HouseholdMeasure: "1 cup", DataSource: "curated",
	},
	{
		Name: "chicken adobo", NameFilipino: "adobong manok", Category: food.CategoryMeats,
		Nutrients:    food.NutrientProfile{Calories: 280, ProteinG: 26, FatG: 17, CarbsG: 4, FiberG: 0.3, CalciumMg: 16, IronMg: 1.3, VitaminCMg: 1},
		ServingSizeG: 150, HouseholdMeasure: "1 cup", DataSource: "curated",
	},
	{
		Name: "pork adobo", NameFilipino: "adobong baboy", Category: food.CategoryMeats,
		Nutrients:    food.NutrientProfile{Calories: 350, ProteinG: 23, FatG: 27, CarbsG: 4, FiberG: 0.3, CalciumMg: 20, IronMg: 1.8, VitaminCMg: 1},
		ServingSizeG: 150, HouseholdMeasure: "1 cup", DataSource: "curated",
	},
	{
		Name: "sinigang", NameFilipino: "sinigang", Category: food.CategorySoups,
		Nutrients:    food.NutrientProfile{Calories: 85, ProteinG: 7, FatG: 4, CarbsG: 5, FiberG: 1.2, CalciumMg: 35, IronMg: 1.1, VitaminCMg: 12},
		ServingSizeG: 250, HouseholdMeasure: "1 bowl", DataSource: "curated",
	},
	{
		Name: "tinola", NameFilipino: "tinolang manok", Category: food.CategorySoups,
		Nutrients:    food.NutrientProfile{Calories: 75, ProteinG: 8, FatG: 3, CarbsG: 4, FiberG: 1, CalciumMg: 30, IronMg: 0.9, VitaminCMg: 15},
		ServingSizeG: 250, HouseholdMeasure: "1 bowl", DataSource: "curated",
	},
	{
		Name: "bulalo", NameFilipino: "bulalo", Category: food.CategorySoups,
		Nutrients:    food.NutrientProfile{Calories: 120, ProteinG: 11, FatG: 7, CarbsG: 3, FiberG: 0.8, CalciumMg: 28, IronMg: 1.4, VitaminCMg: 6},
		ServingSizeG: 250, HouseholdMeasure: "1 bowl", DataSource: "curated",
	},
	{
		Name: "kare-kare", NameFilipino: "kare-kare", Category: food.CategoryMeats,
		Nutrients:    food.NutrientProfile{Calories: 265, ProteinG: 18, FatG: 18, CarbsG: 8, FiberG: 2, CalciumMg: 55, IronMg: 2.1, VitaminCMg: 8},
		ServingSizeG: 200, HouseholdMeasure: "1 cup", DataSource: "curated",
	},
	{
		Name: "sisig", NameFilipino: "sisig", Category: food.CategoryMeats,
		Nutrients:    food.NutrientProfile{Calories: 380, ProteinG: 20, FatG: 32, CarbsG: 3, FiberG: 0.2, CalciumMg: 22, IronMg: 1.9, VitaminCMg: 4},
		ServingSizeG: 150, HouseholdMeasure: "1 sizzling plate", DataSource: "curated",
	},
	{
		Name: "lechon", NameFilipino: "lechon", Category: food.CategoryMeats,
		Nutrients:    food.NutrientProfile{Calories: 450, ProteinG: 22, FatG: 40, CarbsG: 0, FiberG: 0, CalciumMg: 15, IronMg: 1.5, VitaminCMg: 0},
		ServingSizeG: 100, HouseholdMeasure: "2 slices", DataSource: "curated",
	},
	{
		Name: "menudo", NameFilipino: "menudo", Category: food.CategoryMeats,
		Nutrients:    food.NutrientProfile{Calories: 210, ProteinG: 15, FatG: 12, CarbsG: 10, FiberG: 1.5, CalciumMg: 25, IronMg: 1.8, VitaminCMg: 10},
		ServingSizeG: 180, HouseholdMeasure: "1 cup", DataSource: "curated",
	},
	{
		Name: "caldereta", NameFilipino: "kaldereta", Category: food.CategoryMeats,
		Nutrients:    food.NutrientProfile{Calories: 240, ProteinG: 17, FatG: 15, CarbsG: 9, FiberG: 1.4, CalciumMg: 24, IronMg: 2, VitaminCMg: 11},
		ServingSizeG: 180, HouseholdMeasure: "1 cup", DataSource: "curated",
	},
	{
		Name: "tapa", NameFilipino: "tapa", Category: food.CategoryMeats,
		Nutrients:    food.NutrientProfile{Calories: 250, ProteinG: 27, FatG: 14, CarbsG: 3, FiberG: 0, CalciumMg: 12, IronMg: 2.6, VitaminCMg: 0},
		ServingSizeG: 100, HouseholdMeasure: "1 serving", DataSource: "curated",
	},
	{
		Name: "longganisa", NameFilipino: "longganisa", Category: food.CategoryMeats,
		Nutrients:    food.NutrientProfile{Calories: 340, ProteinG: 14, FatG: 28, CarbsG: 8, FiberG: 0, CalciumMg: 14, IronMg: 1.2, VitaminCMg: 0},
		ServingSizeG: 80, HouseholdMeasure: "2 pieces", DataSource: "curated",
	},
	{
		Name: "tocino", NameFilipino: "tocino", Category: food.CategoryMeats,
		Nutrients:    food.NutrientProfile{Calories: 310, ProteinG: 15, FatG: 22, CarbsG: 12, FiberG: 0, CalciumMg: 10, IronMg: 1, VitaminCMg: 0},
		ServingSizeG: 90, HouseholdMeasure: "1 serving", DataSource: "curated",
	},
	{
		Name: "bangus", NameFilipino: "bangus", Category: food.CategoryMeats,
		Nutrients:    food.NutrientProfile{Calories: 190, ProteinG: 22, FatG: 11, CarbsG: 0, FiberG: 0, CalciumMg: 50, IronMg: 0.7, VitaminCMg: 0},
		ServingSizeG: 120, HouseholdMeasure: "1 piece", DataSource: "curated",
	},
	{
		Name: "tilapia", NameFilipino: "tilapia", Category: food.CategoryMeats,
		Nutrients:    food.NutrientProfile{Calories: 130, ProteinG: 26, FatG: 2.7, CarbsG: 0, FiberG: 0, CalciumMg: 14, IronMg: 0.6, VitaminCMg: 0},
		ServingSizeG: 120, HouseholdMeasure: "1 piece", DataSource: "curated",
	},
	{
		Name: "pinakbet", NameFilipino: "pinakbet", Category: food.CategoryVegetables,
		Nutrients:    food.NutrientProfile{Calories: 90, ProteinG: 4, FatG: 5, CarbsG: 8, FiberG: 3, CalciumMg: 45, IronMg: 1.3, VitaminCMg: 22},
		ServingSizeG: 150, HouseholdMeasure: "1 cup", DataSource: "curated",
	},
	{
		Name: "laing", NameFilipino: "laing", Category: food.CategoryVegetables,
		Nutrients:    food.NutrientProfile{Calories: 150, ProteinG: 4, FatG: 12, CarbsG: 7, FiberG: 3.5, CalciumMg: 120, IronMg: 1.8, VitaminCMg: 8},
		ServingSizeG: 150, HouseholdMeasure: "1 cup", DataSource: "curated",
	},
	{
		Name: "chopsuey", NameFilipino: "chopsuey", Category: food.CategoryVegetables,
		Nutrients:    food.NutrientProfile{Calories: 70, ProteinG: 4, FatG: 3, CarbsG: 7, FiberG: 2.5, CalciumMg: 40, IronMg: 1, VitaminCMg: 30},
		ServingSizeG: 150, HouseholdMeasure: "1 cup", DataSource: "curated",
	},
	{
		Name: "ginisang monggo", NameFilipino: "ginisang monggo", Category: food.CategoryLegumes,
		Nutrients:    food.NutrientProfile{Calories: 110, ProteinG: 8, FatG: 3, CarbsG: 14, FiberG: 5, CalciumMg: 38, IronMg: 2.2, VitaminCMg: 3},
		ServingSizeG: 200, HouseholdMeasure: "1 cup", DataSource: "curated",
	},
	{
		Name: "tokwa", NameFilipino: "tokwa", Category: food.CategoryLegumes,
		Nutrients:    food.NutrientProfile{Calories: 145, ProteinG: 15, FatG: 8, CarbsG: 4, FiberG: 1, CalciumMg: 200, IronMg: 2.7, VitaminCMg: 0},
		ServingSizeG: 100, HouseholdMeasure: "1 block", DataSource: "curated",
	},
	{
		Name: "pancit canton", NameFilipino: "pancit canton", Category: food.CategoryGrains,
		Nutrients:    food.NutrientProfile{Calories: 180, ProteinG: 7, FatG: 6, CarbsG: 25, FiberG: 2, CalciumMg: 20, IronMg: 1.5, VitaminCMg: 5},
		ServingSizeG: 200, HouseholdMeasure: "1 plate", DataSource: "curated",
	},
	{
		Name: "pancit bihon", NameFilipino: "pancit bihon", Category: food.CategoryGrains,
		Nutrients:    food.NutrientProfile{Calories: 160, ProteinG: 6, FatG: 4, CarbsG: 26, FiberG: 1.8, CalciumMg: 18, IronMg: 1.3, VitaminCMg: 5},
		ServingSizeG: 200, HouseholdMeasure: "1 plate", DataSource: "curated",
	},
	{
		Name: "white rice", NameFilipino: "kanin", Category: food.CategoryGrains,
		Nutrients:    food.NutrientProfile{Calories: 130, ProteinG: 2.7, FatG: 0.3, CarbsG: 28, FiberG: 0.4, CalciumMg: 10, IronMg: 0.2, VitaminCMg: 0},
		ServingSizeG: 150, HouseholdMeasure: "1 cup", DataSource: "curated",
	},
	{
		Name: "garlic rice", NameFilipino: "sinangag", Category: food.CategoryGrains,
		Nutrients:    food.NutrientProfile{Calories: 175, ProteinG: 3, FatG: 5, CarbsG: 29, FiberG: 0.5, CalciumMg: 12, IronMg: 0.4, VitaminCMg: 1},
		ServingSizeG: 150, HouseholdMeasure: "1 cup", DataSource: "curated",
	},
	{
		Name: "pandesal", NameFilipino: "pandesal", Category: food.CategoryGrains,
		Nutrients:    food.NutrientProfile{Calories: 290, ProteinG: 9, FatG: 4, CarbsG: 54, FiberG: 2, CalciumMg: 30, IronMg: 2.5, VitaminCMg: 0},
		ServingSizeG: 35, HouseholdMeasure: "1 piece", DataSource: "curated",
	},
	{
		Name: "lumpia", NameFilipino: "lumpia", Category: food.CategorySnacks,
		Nutrients:    food.NutrientProfile{Calories: 250, ProteinG: 8, FatG: 14, CarbsG: 23, FiberG: 1.8, CalciumMg: 25, IronMg: 1.2, VitaminCMg: 4},
		ServingSizeG: 100, HouseholdMeasure: "2 rolls", DataSource: "curated",
	},
	{
		Name: "halo-halo", NameFilipino: "halo-halo", Category: food.CategorySnacks,
		Nutrients:    food.NutrientProfile{Calories: 160, ProteinG: 3, FatG: 4, CarbsG: 30, FiberG: 1, CalciumMg: 80, IronMg: 0.6, VitaminCMg: 6},
		ServingSizeG: 250, HouseholdMeasure: "1 glass", DataSource: "curated",
	},
	{
		Name: "turon", NameFilipino: "turon", Category: food.CategorySnacks,
		Nutrients:    food.NutrientProfile{Calories: 230, ProteinG: 2, FatG: 9, CarbsG: 37, FiberG: 2, CalciumMg: 12, IronMg: 0.5, VitaminCMg: 6},
		ServingSizeG: 80, HouseholdMeasure: "1 piece", DataSource: "curated",
	},
	{
		Name: "mango", NameFilipino: "mangga", Category: food.CategoryFruits,
		Nutrients:    food.NutrientProfile{Calories: 60, ProteinG: 0.8, FatG: 0.4, CarbsG: 15, FiberG: 1.6, CalciumMg: 11, IronMg: 0.2, VitaminCMg: 36},
		ServingSizeG: 150, HouseholdMeasure: "1 cup sliced", DataSource: "curated",
	},
	{
		Name: "banana", NameFilipino: "saging", Category: food.CategoryFruits,
		Nutrients:    food.NutrientProfile{Calories: 89, ProteinG: 1.1, FatG: 0.3, CarbsG: 23, FiberG: 2.6, CalciumMg: 5, IronMg: 0.3, VitaminCMg: 9},
		ServingSizeG: 120, HouseholdMeasure: "1 medium", DataSource: "curated",
	},
	{
		Name: "papaya", NameFilipino: "papaya", Category: food.CategoryFruits,
		Nutrients:    food.NutrientProfile{Calories: 43, ProteinG: 0.5, FatG: 0.3, CarbsG: 11, FiberG: 1.7, CalciumMg: 20, IronMg: 0.3, VitaminCMg: 61},
		ServingSizeG: 150, HouseholdMeasure: "1 cup cubed", DataSource: "curated",
	},
	{
		Name: "pineapple", NameFilipino: "pinya", Category: food.CategoryFruits,
		Nutrients:    food.NutrientProfile{Calories: 50, ProteinG: 0.5, FatG: 0.1, CarbsG: 13, FiberG: 1.4, CalciumMg: 13, IronMg: 0.3, VitaminCMg: 48},
		ServingSizeG: 150, HouseholdMeasure: "1 cup chunks", DataSource: "curated",
	},
	{
		Name: "fresh milk", NameFilipino: "gatas", Category: food.CategoryDairy,
		Nutrients:    food.NutrientProfile{Calories: 61, ProteinG: 3.2, FatG: 3.3, CarbsG: 4.8, FiberG: 0, CalciumMg: 113, IronMg: 0, VitaminCMg: 0},
		ServingSizeG: 250, HouseholdMeasure: "1 glass", DataSource: "curated",
	},
	{
		Name: "kesong puti", NameFilipino: "kesong puti", Category: food.CategoryDairy,
		Nutrients:    food.NutrientProfile{Calories: 220, ProteinG: 14, FatG: 17, CarbsG: 3, FiberG: 0, CalciumMg: 350, IronMg: 0.3, VitaminCMg: 0},
		ServingSizeG: 50, HouseholdMeasure: "2 slices", DataSource: "curated",
	},
	{
		Name: "boiled egg", NameFilipino: "nilagang itlog", Category: food.CategoryMeats,
		Nutrients:    food.NutrientProfile{Calories: 155, ProteinG: 13, FatG: 11, CarbsG: 1.1, FiberG: 0, CalciumMg: 50, IronMg: 1.2, VitaminCMg: 0},
		ServingSizeG: 50, HouseholdMeasure: "1 piece", DataSource: "curated",
	},
}
