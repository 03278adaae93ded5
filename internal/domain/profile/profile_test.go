package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBMR(t *testing.T) {
	t.Run("Female", func(t *testing.T) {
		p := Profile{Sex: SexFemale, Age: 25, WeightKg: 70, HeightCm: 170}
		// 10*70 + 6.25*170 - 5*25 - 161 = 1476.5
		assert.InDelta(t, 1476.5, p.BMR(), 1e-9)
	})

	t.Run("Male", func(t *testing.T) {
		p := Profile{Sex: SexMale, Age: 30, WeightKg: 80, HeightCm: 175}
		// 10*80 + 6.25*175 - 5*30 + 5 = 1748.75
		assert.InDelta(t, 1748.75, p.BMR(), 1e-9)
	})

	t.Run("UnrecognizedSexUsesMaleEquation", func(t *testing.T) {
		a := Profile{Sex: "other", Age: 30, WeightKg: 80, HeightCm: 175}
		b := Profile{Sex: SexMale, Age: 30, WeightKg: 80, HeightCm: 175}
		assert.Equal(t, b.BMR(), a.BMR())
	})
}

func TestParseSex(t *testing.T) {
	assert.Equal(t, SexFemale, ParseSex("female"))
	assert.Equal(t, SexFemale, ParseSex("  FEMALE "))
	assert.Equal(t, SexMale, ParseSex("male"))
	assert.Equal(t, SexMale, ParseSex(""))
	assert.Equal(t, SexMale, ParseSex("nonbinary"))
}

func TestActivityFactor(t *testing.T) {
	tests := []struct {
		level ActivityLevel
		want  float64
	}{
		{ActivitySedentary, 1.2},
		{ActivityLightlyActive, 1.375},
		{ActivityModerate, 1.55},
		{ActivityActive, 1.55},
		{ActivityVeryActive, 1.725},
		{"MODERATE", 1.55},
		{"couch potato", 1.55},
		{"", 1.55},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.level.Factor(), "level %q", tt.level)
	}
}

func TestParseGoal(t *testing.T) {
	assert.Equal(t, GoalWeightLoss, ParseGoal("weight_loss"))
	assert.Equal(t, GoalMuscleGain, ParseGoal(" Muscle_Gain "))
	assert.Equal(t, GoalMaintain, ParseGoal("maintain"))
	assert.Equal(t, GoalMaintain, ParseGoal(""))
	assert.Equal(t, GoalMaintain, ParseGoal("bulk"))
}

func TestGuidelineNeeds(t *testing.T) {
	female := GuidelineNeeds(SexFemale)
	assert.Equal(t, 46.0, female.ProteinG)
	assert.Equal(t, 18.0, female.IronMg)
	assert.Equal(t, 25.0, female.FiberG)

	male := GuidelineNeeds(SexMale)
	assert.Equal(t, 56.0, male.ProteinG)
	assert.Equal(t, 8.0, male.IronMg)
	assert.Equal(t, 90.0, male.VitaminCMg)

	assert.Equal(t, male, GuidelineNeeds("other"))
}
