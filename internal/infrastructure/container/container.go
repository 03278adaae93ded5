// Package container provides dependency injection using Uber FX
// This implements the Dependency Inversion Principle from SOLID
package container

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/alchemorsel/kalorye/internal/application/engine"
	"github.com/alchemorsel/kalorye/internal/application/mealplan"
	"github.com/alchemorsel/kalorye/internal/application/nutrition"
	"github.com/alchemorsel/kalorye/internal/application/predictor"
	"github.com/alchemorsel/kalorye/internal/infrastructure/config"
	"github.com/alchemorsel/kalorye/internal/infrastructure/knowledge"
	"github.com/alchemorsel/kalorye/internal/infrastructure/model"
	"github.com/alchemorsel/kalorye/internal/infrastructure/monitoring"
	"github.com/alchemorsel/kalorye/internal/infrastructure/predictionlog"
	"github.com/alchemorsel/kalorye/internal/ports/inbound"
	"github.com/alchemorsel/kalorye/internal/ports/outbound"
	apperrors "github.com/alchemorsel/kalorye/pkg/errors"
	"github.com/alchemorsel/kalorye/pkg/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	DataModule,
	ServiceModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// MetricsModule provides the Prometheus registry and the prediction
// collector. The collector is nil when metrics are disabled; the stats
// tracker treats that as a no-op.
var MetricsModule = fx.Provide(
	func() *prometheus.Registry {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
		return reg
	},
	func(cfg *config.Config, reg *prometheus.Registry) *monitoring.PredictionMetrics {
		if !cfg.Metrics.Enabled {
			return nil
		}
		return monitoring.NewPredictionMetrics(reg)
	},
)

// DataModule provides the knowledge base, the model artifact, and the
// prediction log sink. Every failure here degrades instead of aborting:
// the engine must come up even with no expanded table, no model, and no
// writable log.
var DataModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) outbound.FoodRepository {
		return knowledge.NewBase(cfg.Data, log)
	},
	func(cfg *config.Config, log *zap.Logger) outbound.CalorieModel {
		m, err := model.Load(cfg.Model.ArtifactPath, log)
		if err != nil {
			log.Warn("model artifact unavailable, engine runs in rule-based mode",
				zap.String("path", cfg.Model.ArtifactPath),
				zap.Error(apperrors.NewModelUnavailableError(err)))
			return model.NewUnavailable()
		}
		return m
	},
	func(cfg *config.Config, log *zap.Logger) outbound.PredictionSink {
		if !cfg.Stats.LogEnabled {
			return predictionlog.NopSink{}
		}
		sink, err := predictionlog.NewJSONLSink(cfg.Stats.PredictionLogPath)
		if err != nil {
			log.Warn("prediction log unavailable, records will be dropped",
				zap.String("path", cfg.Stats.PredictionLogPath),
				zap.Error(apperrors.NewDataSourceError("prediction log", err)))
			return predictionlog.NopSink{}
		}
		return sink
	},
)

// ServiceModule provides the application services
var ServiceModule = fx.Provide(
	func(sink outbound.PredictionSink, metrics *monitoring.PredictionMetrics, log *zap.Logger) *predictor.Tracker {
		return predictor.NewTracker(sink, metrics, log)
	},
	func(foods outbound.FoodRepository, m outbound.CalorieModel, tracker *predictor.Tracker, log *zap.Logger) *predictor.Predictor {
		return predictor.New(foods, m, tracker, log)
	},
	func(foods outbound.FoodRepository, pred *predictor.Predictor, log *zap.Logger) *nutrition.Aggregator {
		return nutrition.NewAggregator(foods, pred, log)
	},
	func(log *zap.Logger) *mealplan.Generator {
		return mealplan.NewGenerator(log)
	},
	func(
		foods outbound.FoodRepository,
		pred *predictor.Predictor,
		aggregator *nutrition.Aggregator,
		planner *mealplan.Generator,
		log *zap.Logger,
	) inbound.NutritionEngine {
		return engine.New(foods, pred, aggregator, planner, log)
	},
)

// LifecycleModule wires shutdown hooks
var LifecycleModule = fx.Invoke(
	func(lc fx.Lifecycle, sink outbound.PredictionSink, log *zap.Logger) {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				if err := sink.Close(); err != nil {
					log.Warn("failed to close prediction log", zap.Error(err))
				}
				_ = log.Sync()
				return nil
			},
		})
	},
)
