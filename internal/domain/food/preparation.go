package food

import "strings"

// PrepMethod identifies how a food item was prepared. Preparation
// affects calorie density (frying adds oil, boiling leaches fat).
type PrepMethod string

const (
	PrepFried     PrepMethod = "fried"
	PrepDeepFried PrepMethod = "deep_fried"
	PrepGrilled   PrepMethod = "grilled"
	PrepBaked     PrepMethod = "baked"
	PrepBoiled    PrepMethod = "boiled"
	PrepSteamed   PrepMethod = "steamed"
	PrepStirFried PrepMethod = "stir_fried"
	PrepRaw       PrepMethod = "raw"
	PrepBraised   PrepMethod = "braised"
	PrepRoasted   PrepMethod = "roasted"
	PrepNone      PrepMethod = ""
)

// PrepMethods lists all preparation methods in their canonical order,
// which is also the one-hot encoding order for the enhanced feature
// vector. Do not rearrange.
var PrepMethods = []PrepMethod{
	PrepFried,
	PrepDeepFried,
	PrepGrilled,
	PrepBaked,
	PrepBoiled,
	PrepSteamed,
	PrepStirFried,
	PrepRaw,
	PrepBraised,
	PrepRoasted,
}

// calorieMultipliers adjusts a base calorie estimate for the preparation
// method. Methods absent from the table (braised, roasted) carry no
// adjustment.
var calorieMultipliers = map[PrepMethod]float64{
	PrepFried:     1.3,
	PrepDeepFried: 1.5,
	PrepGrilled:   0.9,
	PrepBaked:     0.95,
	PrepBoiled:    0.85,
	PrepSteamed:   0.8,
	PrepRaw:       1.0,
	PrepStirFried: 1.2,
}

// ParsePrepMethod maps a free-form string to a known PrepMethod.
// Hyphens and spaces are treated as underscores so "deep-fried" and
// "deep fried" both resolve.
func ParsePrepMethod(s string) PrepMethod {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	normalized = strings.ReplaceAll(normalized, " ", "_")
	m := PrepMethod(normalized)
	for _, known := range PrepMethods {
		if m == known {
			return known
		}
	}
	return PrepNone
}

// CalorieMultiplier returns the calorie adjustment factor for the
// method, 1.0 when the method carries no adjustment.
func (m PrepMethod) CalorieMultiplier() float64 {
	if v, ok := calorieMultipliers[m]; ok {
		return v
	}
	return 1.0
}

func (m PrepMethod) String() string {
	return string(m)
}
