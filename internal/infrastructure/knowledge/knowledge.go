// Package knowledge implements the food knowledge base: a curated
// in-memory table plus an expanded table loaded from a local SQLite
// store. Both tables are immutable after construction and safe for
// concurrent reads.
package knowledge

import (
	"encoding/json"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/alchemorsel/kalorye/internal/domain/food"
	"github.com/alchemorsel/kalorye/internal/infrastructure/config"
	"github.com/alchemorsel/kalorye/internal/infrastructure/persistence/sqlite"
	"github.com/alchemorsel/kalorye/internal/ports/outbound"
	apperrors "github.com/alchemorsel/kalorye/pkg/errors"
)

// Base holds both food tables keyed by normalized name.
type Base struct {
	curated  map[string]food.Entry
	expanded map[string]food.Entry
	// ordered entries for listing and search, expanded first
	entries        []food.Entry
	expandedLoaded bool
	logger         *zap.Logger
}

// NewBase builds the knowledge base. A missing or unreadable expanded
// store degrades to curated-only with a warning; it is never fatal.
func NewBase(cfg config.DataConfig, logger *zap.Logger) *Base {
	b := &Base{
		curated:  make(map[string]food.Entry),
		expanded: make(map[string]food.Entry),
		logger:   logger.Named("knowledge"),
	}

	for _, e := range curatedEntries {
		b.curated[food.NormalizeName(e.Name)] = e
	}
	b.mergeCuratedOverrides(cfg.CuratedOverridesPath)
	b.loadExpanded(cfg.FoodStorePath)

	for _, e := range b.expanded {
		b.entries = append(b.entries, e)
	}
	for key, e := range b.curated {
		if _, shadowed := b.expanded[key]; !shadowed {
			b.entries = append(b.entries, e)
		}
	}

	b.logger.Info("knowledge base initialized",
		zap.Int("curated_entries", len(b.curated)),
		zap.Int("expanded_entries", len(b.expanded)),
		zap.Bool("expanded_table", b.expandedLoaded))

	return b
}

// mergeCuratedOverrides layers an optional JSON file over the built-in
// curated table. A malformed file is skipped with a warning.
func (b *Base) mergeCuratedOverrides(path string) {
	if path == "" {
		return
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		b.logger.Warn("curated overrides not readable, using built-ins only",
			zap.String("path", path),
			zap.Error(apperrors.NewDataSourceError("curated overrides", err)))
		return
	}
	var overrides []food.Entry
	if err := json.Unmarshal(raw, &overrides); err != nil {
		b.logger.Warn("curated overrides malformed, ignoring",
			zap.String("path", path), zap.Error(err))
		return
	}
	for _, e := range overrides {
		if e.Name == "" || e.Nutrients.Calories <= 0 {
			continue
		}
		e.Category = food.ParseCategory(e.Category.String())
		if e.ServingSizeG <= 0 {
			e.ServingSizeG = 100
		}
		b.curated[food.NormalizeName(e.Name)] = e
	}
	b.logger.Info("curated overrides merged",
		zap.String("path", path), zap.Int("overrides", len(overrides)))
}

func (b *Base) loadExpanded(path string) {
	if path == "" {
		return
	}
	db, err := sqlite.Open(path)
	if err != nil {
		b.logger.Warn("expanded food store unavailable, degrading to curated table",
			zap.String("path", path),
			zap.Error(apperrors.NewDataSourceError("expanded food store", err)))
		return
	}
	entries, err := sqlite.LoadFoodRecords(db)
	if err != nil {
		b.logger.Warn("expanded food store unreadable, degrading to curated table",
			zap.String("path", path),
			zap.Error(apperrors.NewDataSourceError("expanded food store", err)))
		return
	}
	for _, e := range entries {
		b.expanded[food.NormalizeName(e.Name)] = e
	}
	b.expandedLoaded = true
}

// NewBaseFromEntries builds a knowledge base directly from entry
// slices. Tests and the engine factory use this to inject fixtures.
func NewBaseFromEntries(curated, expanded []food.Entry, logger *zap.Logger) *Base {
	b := &Base{
		curated:        make(map[string]food.Entry),
		expanded:       make(map[string]food.Entry),
		expandedLoaded: len(expanded) > 0,
		logger:         logger.Named("knowledge"),
	}
	for _, e := range curated {
		b.curated[food.NormalizeName(e.Name)] = e
	}
	for _, e := range expanded {
		b.expanded[food.NormalizeName(e.Name)] = e
	}
	for _, e := range b.expanded {
		b.entries = append(b.entries, e)
	}
	for key, e := range b.curated {
		if _, shadowed := b.expanded[key]; !shadowed {
			b.entries = append(b.entries, e)
		}
	}
	return b
}

// FindByName resolves a name against both tables, expanded first.
func (b *Base) FindByName(name string) (food.Entry, bool) {
	key := food.NormalizeName(name)
	if e, ok := b.expanded[key]; ok {
		return e, true
	}
	if e, ok := b.curated[key]; ok {
		return e, true
	}
	return food.Entry{}, false
}

// FindCurated resolves a name against the curated table only.
func (b *Base) FindCurated(name string) (food.Entry, bool) {
	e, ok := b.curated[food.NormalizeName(name)]
	return e, ok
}

// Search returns entries whose English name, Filipino name, or meal
// category contains the query as a substring, case-insensitively.
func (b *Base) Search(query string) []food.Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var matches []food.Entry
	for _, e := range b.entries {
		if strings.Contains(strings.ToLower(e.Name), q) ||
			strings.Contains(strings.ToLower(e.NameFilipino), q) ||
			strings.Contains(strings.ToLower(e.MealCategory), q) {
			matches = append(matches, e)
		}
	}
	return matches
}

// All lists every known entry.
func (b *Base) All() []food.Entry {
	out := make([]food.Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Capabilities reports what loaded at construction.
func (b *Base) Capabilities() outbound.FoodCapabilities {
	return outbound.FoodCapabilities{
		ExpandedTable:   b.expandedLoaded,
		CuratedEntries:  len(b.curated),
		ExpandedEntries: len(b.expanded),
	}
}

var _ outbound.FoodRepository = (*Base)(nil)
