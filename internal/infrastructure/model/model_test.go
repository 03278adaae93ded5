package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const validArtifact = `{
	"version": 1,
	"kind": "tree_ensemble",
	"input_dim": 13,
	"bias": 10,
	"trees": [
		{
			"nodes": [
				{"feature": 1, "threshold": 100, "left": 1, "right": 2},
				{"feature": 0, "threshold": 0, "left": -1, "right": -1, "value": 100},
				{"feature": 0, "threshold": 0, "left": -1, "right": -1, "value": 200}
			]
		},
		{
			"nodes": [
				{"feature": 0, "threshold": 0, "left": -1, "right": -1, "value": 5}
			]
		}
	]
}`

func writeArtifact(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	m, err := Load(writeArtifact(t, validArtifact), zap.NewNop())

	require.NoError(t, err)
	assert.True(t, m.Available())
	assert.Equal(t, 13, m.InputDim())
}

func TestLoadFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Malformed", `{not json`},
		{"WrongVersion", `{"version": 2, "kind": "tree_ensemble", "input_dim": 13, "trees": [{"nodes": [{"left": -1, "value": 1}]}]}`},
		{"WrongKind", `{"version": 1, "kind": "linear", "input_dim": 13, "trees": [{"nodes": [{"left": -1, "value": 1}]}]}`},
		{"UnsupportedWidth", `{"version": 1, "kind": "tree_ensemble", "input_dim": 20, "trees": [{"nodes": [{"left": -1, "value": 1}]}]}`},
		{"NoTrees", `{"version": 1, "kind": "tree_ensemble", "input_dim": 13, "trees": []}`},
		{"ChildOutOfRange", `{"version": 1, "kind": "tree_ensemble", "input_dim": 13, "trees": [{"nodes": [{"feature": 0, "threshold": 1, "left": 5, "right": 6}]}]}`},
		{"BackPointingChild", `{"version": 1, "kind": "tree_ensemble", "input_dim": 13, "trees": [{"nodes": [{"feature": 0, "threshold": 1, "left": 1, "right": 0}, {"left": -1, "value": 1}]}]}`},
		{"SelfReferencingChild", `{"version": 1, "kind": "tree_ensemble", "input_dim": 13, "trees": [{"nodes": [{"feature": 0, "threshold": 1, "left": 0, "right": 1}, {"left": -1, "value": 1}]}]}`},
		{"FeatureOutOfRange", `{"version": 1, "kind": "tree_ensemble", "input_dim": 13, "trees": [{"nodes": [{"feature": 13, "threshold": 1, "left": 1, "right": 1}, {"left": -1, "value": 1}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Load(writeArtifact(t, tt.content), zap.NewNop())

			assert.Error(t, err)
			require.NotNil(t, m, "callers degrade on the returned model")
			assert.False(t, m.Available())
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), "absent.json"), zap.NewNop())

	assert.Error(t, err)
	assert.False(t, m.Available())
}

func TestPredict(t *testing.T) {
	m, err := Load(writeArtifact(t, validArtifact), zap.NewNop())
	require.NoError(t, err)

	features := make([]float64, 13)

	t.Run("LeftBranch", func(t *testing.T) {
		features[1] = 50
		got, err := m.Predict(features)
		require.NoError(t, err)
		// bias 10 + left leaf 100 + second tree 5
		assert.InDelta(t, 115.0, got, 1e-9)
	})

	t.Run("RightBranch", func(t *testing.T) {
		features[1] = 150
		got, err := m.Predict(features)
		require.NoError(t, err)
		assert.InDelta(t, 215.0, got, 1e-9)
	})

	t.Run("ThresholdGoesLeft", func(t *testing.T) {
		features[1] = 100
		got, err := m.Predict(features)
		require.NoError(t, err)
		assert.InDelta(t, 115.0, got, 1e-9)
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		_, err := m.Predict(make([]float64, 41))
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})
}

func TestUnavailableModel(t *testing.T) {
	m := NewUnavailable()

	assert.False(t, m.Available())
	assert.Zero(t, m.InputDim())

	_, err := m.Predict(make([]float64, 13))
	assert.ErrorIs(t, err, ErrNotLoaded)
}
