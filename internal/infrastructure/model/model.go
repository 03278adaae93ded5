// Package model consumes the trained calorie-regression artifact. The
// engine only loads and evaluates artifacts; training happens in an
// external pipeline that exports this JSON format.
package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/alchemorsel/kalorye/internal/ports/outbound"
)

const (
	artifactVersion  = 1
	kindTreeEnsemble = "tree_ensemble"
)

var (
	ErrNotLoaded         = errors.New("no model artifact loaded")
	ErrDimensionMismatch = errors.New("feature vector length does not match model input dimension")
)

// node is one decision node. A node is a leaf when Left < 0; leaves
// carry the regression value in Value.
type node struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
}

type tree struct {
	Nodes []node `json:"nodes"`
}

// artifact is the on-disk schema exported by the training pipeline.
type artifact struct {
	Version  int     `json:"version"`
	Kind     string  `json:"kind"`
	InputDim int     `json:"input_dim"`
	Bias     float64 `json:"bias"`
	Trees    []tree  `json:"trees"`
}

// Model evaluates a loaded tree-ensemble artifact. A zero Model is the
// unavailable state: Predict errors and the ML tier is skipped.
type Model struct {
	art       *artifact
	available bool
}

// Load reads and validates an artifact from path. Any failure returns
// an unavailable model alongside the error, so callers can degrade
// instead of aborting.
func Load(path string, logger *zap.Logger) (*Model, error) {
	log := logger.Named("model")

	raw, err := os.ReadFile(path)
	if err != nil {
		return &Model{}, fmt.Errorf("model artifact not readable: %w", err)
	}

	var art artifact
	if err := json.Unmarshal(raw, &art); err != nil {
		return &Model{}, fmt.Errorf("model artifact malformed: %w", err)
	}
	if err := validate(&art); err != nil {
		return &Model{}, fmt.Errorf("model artifact invalid: %w", err)
	}

	log.Info("model artifact loaded",
		zap.String("path", path),
		zap.Int("input_dim", art.InputDim),
		zap.Int("trees", len(art.Trees)))

	return &Model{art: &art, available: true}, nil
}

// NewUnavailable returns the degraded no-model state.
func NewUnavailable() *Model {
	return &Model{}
}

func validate(art *artifact) error {
	if art.Version != artifactVersion {
		return fmt.Errorf("unsupported artifact version %d", art.Version)
	}
	if art.Kind != kindTreeEnsemble {
		return fmt.Errorf("unsupported artifact kind %q", art.Kind)
	}
	if art.InputDim != 13 && art.InputDim != 41 {
		return fmt.Errorf("unsupported input dimension %d", art.InputDim)
	}
	if len(art.Trees) == 0 {
		return errors.New("artifact has no trees")
	}
	for ti, t := range art.Trees {
		if len(t.Nodes) == 0 {
			return fmt.Errorf("tree %d has no nodes", ti)
		}
		for ni, n := range t.Nodes {
			if n.Left < 0 {
				continue
			}
			// Children must point strictly forward so every evaluation
			// path terminates; a back or self reference is a cycle.
			if n.Left <= ni || n.Left >= len(t.Nodes) || n.Right <= ni || n.Right >= len(t.Nodes) {
				return fmt.Errorf("tree %d node %d has out-of-range or non-forward children", ti, ni)
			}
			if n.Feature < 0 || n.Feature >= art.InputDim {
				return fmt.Errorf("tree %d node %d references feature %d outside input dimension", ti, ni, n.Feature)
			}
		}
	}
	return nil
}

// Available reports whether an artifact loaded successfully.
func (m *Model) Available() bool {
	return m.available
}

// InputDim returns the artifact's declared feature width, 0 when
// unavailable.
func (m *Model) InputDim() int {
	if !m.available {
		return 0
	}
	return m.art.InputDim
}

// Predict evaluates the ensemble on a feature vector and returns kcal
// per 100 grams. The vector length must match InputDim exactly.
func (m *Model) Predict(features []float64) (float64, error) {
	if !m.available {
		return 0, ErrNotLoaded
	}
	if len(features) != m.art.InputDim {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(features), m.art.InputDim)
	}

	sum := m.art.Bias
	for _, t := range m.art.Trees {
		sum += evalTree(t, features)
	}
	return sum, nil
}

func evalTree(t tree, features []float64) float64 {
	idx := 0
	for {
		n := t.Nodes[idx]
		if n.Left < 0 {
			return n.Value
		}
		if features[n.Feature] <= n.Threshold {
			idx = n.Left
		} else {
			idx = n.Right
		}
	}
}

var _ outbound.CalorieModel = (*Model)(nil)
