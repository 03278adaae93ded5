package food

import "strings"

// Pure text-pattern heuristics over food names. These feed both the
// feature encoder and the prediction pipeline, so their keyword tables
// are ordered slices: the first matching row wins, and the declaration
// order is part of the behavioral contract.

// prepKeywordRow associates a preparation method with the name
// fragments that imply it.
type prepKeywordRow struct {
	method   PrepMethod
	keywords []string
}

// prepKeywordTable is evaluated top to bottom; deep_fried must precede
// fried or it could never match.
var prepKeywordTable = []prepKeywordRow{
	{PrepDeepFried, []string{"deep fried", "deep-fried", "crispy"}},
	{PrepStirFried, []string{"stir fried", "stir-fried", "stir fry", "ginisa", "sauteed"}},
	{PrepFried, []string{"fried", "pinirito", "prito"}},
	{PrepGrilled, []string{"grilled", "inihaw", "ihaw", "bbq", "barbecue"}},
	{PrepBaked, []string{"baked", "oven"}},
	{PrepBoiled, []string{"boiled", "nilaga", "pinakuluan"}},
	{PrepSteamed, []string{"steamed", "pinasingaw"}},
	{PrepBraised, []string{"braised", "humba"}},
	{PrepRoasted, []string{"roasted", "roast", "lechon"}},
	{PrepRaw, []string{"raw", "fresh", "kinilaw"}},
}

// DetectPreparation infers the preparation method from a food name.
// Returns PrepNone when no keyword matches.
func DetectPreparation(name string) PrepMethod {
	lowered := strings.ToLower(name)
	for _, row := range prepKeywordTable {
		for _, kw := range row.keywords {
			if strings.Contains(lowered, kw) {
				return row.method
			}
		}
	}
	return PrepNone
}

// Ingredient-category keyword tables. English and Filipino terms are
// mixed since the expanded dataset carries both.
var (
	meatKeywords = []string{
		"chicken", "pork", "beef", "fish", "shrimp", "meat",
		"manok", "baboy", "baka", "isda", "hipon", "bangus", "tilapia",
	}
	vegetableKeywords = []string{
		"vegetable", "gulay", "kangkong", "sitaw", "talong", "eggplant",
		"spinach", "cabbage", "repolyo", "carrot", "pechay", "malunggay",
		"squash", "kalabasa", "okra", "ampalaya",
	}
	grainKeywords = []string{
		"rice", "kanin", "bigas", "noodle", "pancit", "bihon", "canton",
		"bread", "tinapay", "pasta", "corn", "mais", "oat",
	}
	dairyKeywords = []string{
		"milk", "gatas", "cheese", "keso", "cream", "butter", "yogurt",
	}
	legumeKeywords = []string{
		"beans", "monggo", "mung", "lentil", "chickpea", "garbanzos",
		"tofu", "tokwa", "peanut", "mani",
	}
)

// IngredientAnalysis summarizes ingredient-category signals found in a
// food name and any caller-supplied ingredient strings.
type IngredientAnalysis struct {
	MeatCount      int
	VegetableCount int
	GrainCount     int
	DairyCount     int
	LegumeCount    int
	HasMeat        bool
	HasVegetable   bool
	HasGrain       bool
	HasDairy       bool
	HasLegume      bool
	Total          int
}

// ExtractIngredients counts ingredient-category keyword occurrences
// over the concatenation of the food name and any provided ingredient
// strings.
func ExtractIngredients(name string, provided []string) IngredientAnalysis {
	haystack := strings.ToLower(name)
	if len(provided) > 0 {
		haystack += " " + strings.ToLower(strings.Join(provided, " "))
	}

	count := func(keywords []string) int {
		total := 0
		for _, kw := range keywords {
			total += strings.Count(haystack, kw)
		}
		return total
	}

	a := IngredientAnalysis{
		MeatCount:      count(meatKeywords),
		VegetableCount: count(vegetableKeywords),
		GrainCount:     count(grainKeywords),
		DairyCount:     count(dairyKeywords),
		LegumeCount:    count(legumeKeywords),
	}
	a.HasMeat = a.MeatCount > 0
	a.HasVegetable = a.VegetableCount > 0
	a.HasGrain = a.GrainCount > 0
	a.HasDairy = a.DairyCount > 0
	a.HasLegume = a.LegumeCount > 0
	a.Total = a.MeatCount + a.VegetableCount + a.GrainCount + a.DairyCount + a.LegumeCount
	return a
}

// ContainsMeatKeyword reports whether the name mentions a meat term.
// Used by preference filtering in addition to feature extraction.
func ContainsMeatKeyword(name string) bool {
	return containsAny(name, meatKeywords)
}

// ContainsVegetableKeyword reports whether the name mentions a
// vegetable term.
func ContainsVegetableKeyword(name string) bool {
	return containsAny(name, vegetableKeywords)
}

// ContainsDairyKeyword reports whether the name mentions a dairy term.
func ContainsDairyKeyword(name string) bool {
	return containsAny(name, dairyKeywords)
}

func containsAny(name string, keywords []string) bool {
	lowered := strings.ToLower(name)
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// Descriptor tables for semantic tagging.
var (
	localCuisineKeywords = []string{
		"adobo", "sinigang", "tinola", "kare-kare", "kare kare", "lechon",
		"pancit", "lumpia", "sisig", "bulalo", "menudo", "caldereta",
		"afritada", "tapa", "longganisa", "tocino", "dinuguan", "laing",
		"pinakbet", "halo-halo",
	}
	regionalCuisineKeywords = []string{
		"bicol", "ilocano", "ilocos", "kapampangan", "cebu", "batangas",
		"visayan", "bisaya", "pampanga",
	}
	spicyKeywords  = []string{"spicy", "chili", "sili", "labuyo", "hot sauce"}
	sweetKeywords  = []string{"sweet", "sugar", "caramel", "matamis", "honey"}
	creamyKeywords = []string{"creamy", "cream", "gata", "coconut milk", "carbonara"}
	sourKeywords   = []string{"sour", "sinigang", "paksiw", "kinilaw", "vinegar", "maasim", "sampalok"}
)

// SemanticTags captures cuisine and flavor descriptors detected in a
// food name.
type SemanticTags struct {
	IsLocalCuisine    bool
	IsRegionalCuisine bool
	WordCount         int
	HasMultipleWords  bool
	HasSpicy          bool
	HasSweet          bool
	HasCreamy         bool
	HasSour           bool
}

// ExtractSemanticTags tags a food name against the fixed descriptor
// tables.
func ExtractSemanticTags(name string) SemanticTags {
	words := strings.Fields(name)
	return SemanticTags{
		IsLocalCuisine:    containsAny(name, localCuisineKeywords),
		IsRegionalCuisine: containsAny(name, regionalCuisineKeywords),
		WordCount:         len(words),
		HasMultipleWords:  len(words) > 1,
		HasSpicy:          containsAny(name, spicyKeywords),
		HasSweet:          containsAny(name, sweetKeywords),
		HasCreamy:         containsAny(name, creamyKeywords),
		HasSour:           containsAny(name, sourKeywords),
	}
}
