// Package predictor implements the hybrid calorie prediction pipeline:
// exact database lookup, validated ML inference, and the rule-based
// fallback, together with feature encoding and usage tracking.
package predictor

import "github.com/alchemorsel/kalorye/internal/domain/food"

// Feature vector widths. The loaded model artifact declares which
// variant it was trained on; the matching preparer must be used.
const (
	BasicFeatureCount    = 13
	EnhancedFeatureCount = 41
)

func boolToFloat(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}

// ingredientCount is the caller-supplied ingredient count. When the
// caller names no ingredients the count is filled from the keyword
// extraction over the name, so name-only calls still carry a signal.
func ingredientCount(name string, ingredients []string) float64 {
	if len(ingredients) > 0 {
		return float64(len(ingredients))
	}
	return float64(food.ExtractIngredients(name, nil).Total)
}

// categoryOneHot encodes the category over the fixed category order.
// An unknown category yields all zeros.
func categoryOneHot(c food.Category) []float64 {
	flags := make([]float64, len(food.Categories))
	for i, known := range food.Categories {
		if c == known {
			flags[i] = 1.0
			break
		}
	}
	return flags
}

// PrepareBasic encodes a food description into the 13-feature basic
// vector: five base features followed by the 8 category one-hot flags.
// Feature order is a fixed contract with the trained model.
func PrepareBasic(name string, category food.Category, servingSizeG float64, prepMethod food.PrepMethod, ingredients []string) []float64 {
	features := make([]float64, 0, BasicFeatureCount)
	features = append(features,
		float64(len(name)),
		servingSizeG,
		boolToFloat(category.IsKnown()),
		boolToFloat(prepMethod != food.PrepNone),
		ingredientCount(name, ingredients),
	)
	return append(features, categoryOneHot(category)...)
}

// PrepareEnhanced encodes a food description into the 41-feature
// enhanced vector: the 5 base features, 10 preparation one-hot flags,
// 10 ingredient-analysis values, 8 semantic values, and the 8 category
// one-hot flags, in exactly that order. When no preparation method is
// given it is inferred from the name.
func PrepareEnhanced(name string, category food.Category, servingSizeG float64, prepMethod food.PrepMethod, ingredients []string) []float64 {
	if prepMethod == food.PrepNone {
		prepMethod = food.DetectPreparation(name)
	}

	features := make([]float64, 0, EnhancedFeatureCount)
	features = append(features,
		float64(len(name)),
		servingSizeG,
		boolToFloat(category.IsKnown()),
		boolToFloat(prepMethod != food.PrepNone),
		ingredientCount(name, ingredients),
	)

	for _, known := range food.PrepMethods {
		features = append(features, boolToFloat(prepMethod == known))
	}

	analysis := food.ExtractIngredients(name, ingredients)
	features = append(features,
		float64(analysis.MeatCount),
		float64(analysis.VegetableCount),
		float64(analysis.GrainCount),
		float64(analysis.DairyCount),
		float64(analysis.LegumeCount),
		boolToFloat(analysis.HasMeat),
		boolToFloat(analysis.HasVegetable),
		boolToFloat(analysis.HasGrain),
		boolToFloat(analysis.HasDairy),
		boolToFloat(analysis.HasLegume),
	)

	tags := food.ExtractSemanticTags(name)
	features = append(features,
		boolToFloat(tags.IsLocalCuisine),
		boolToFloat(tags.IsRegionalCuisine),
		float64(tags.WordCount),
		boolToFloat(tags.HasMultipleWords),
		boolToFloat(tags.HasSpicy),
		boolToFloat(tags.HasSweet),
		boolToFloat(tags.HasCreamy),
		boolToFloat(tags.HasSour),
	)

	return append(features, categoryOneHot(category)...)
}
