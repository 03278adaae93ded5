package container

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/alchemorsel/kalorye/internal/domain/prediction"
	"github.com/alchemorsel/kalorye/internal/ports/inbound"
)

// The module must come up with every optional data source missing and
// still answer predictions from the curated table.
func TestModuleDegradesToCuratedOnly(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("KALORYE_DATA_FOOD_STORE_PATH", filepath.Join(dir, "absent.db"))
	t.Setenv("KALORYE_MODEL_ARTIFACT_PATH", filepath.Join(dir, "absent.json"))
	t.Setenv("KALORYE_STATS_LOG_ENABLED", "false")

	var eng inbound.NutritionEngine
	app := fx.New(Module, fx.NopLogger, fx.Populate(&eng))
	require.NoError(t, app.Err())

	startCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, app.Start(startCtx))
	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer stopCancel()
		require.NoError(t, app.Stop(stopCtx))
	}()

	res, err := eng.PredictCalories(inbound.PredictCaloriesRequest{Name: "chicken adobo"})
	require.NoError(t, err)
	assert.Equal(t, prediction.MethodDatabaseLookup, res.Method)
}
