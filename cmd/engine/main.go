// Command engine runs the kalorye prediction engine from the command
// line: one-shot predictions, meal plans, and food-log analysis against
// the same entry points the web layer consumes.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/alchemorsel/kalorye/internal/infrastructure/config"
	"github.com/alchemorsel/kalorye/internal/infrastructure/container"
	"github.com/alchemorsel/kalorye/internal/infrastructure/monitoring"
	"github.com/alchemorsel/kalorye/internal/ports/inbound"
	"github.com/alchemorsel/kalorye/internal/ports/outbound"
)

const startTimeout = 15 * time.Second

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var (
		eng      inbound.NutritionEngine
		cfg      *config.Config
		log      *zap.Logger
		registry *prometheus.Registry
		foods    outbound.FoodRepository
		calModel outbound.CalorieModel
	)

	app := fx.New(
		container.Module,
		fx.NopLogger,
		fx.Populate(&eng, &cfg, &log, &registry, &foods, &calModel),
	)

	startCtx, cancel := context.WithTimeout(context.Background(), startTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		fmt.Fprintln(os.Stderr, "failed to start engine:", err)
		os.Exit(1)
	}

	code := run(os.Args[1], os.Args[2:], eng, cfg, log, registry, foods, calModel)

	stopCtx, cancelStop := context.WithTimeout(context.Background(), startTimeout)
	defer cancelStop()
	_ = app.Stop(stopCtx)
	os.Exit(code)
}

func run(
	command string,
	args []string,
	eng inbound.NutritionEngine,
	cfg *config.Config,
	log *zap.Logger,
	registry *prometheus.Registry,
	foods outbound.FoodRepository,
	calModel outbound.CalorieModel,
) int {
	switch command {
	case "predict":
		return cmdPredict(args, eng)
	case "nutrition":
		return cmdNutrition(args, eng)
	case "plan":
		return cmdPlan(args, eng)
	case "analyze":
		return cmdAnalyze(args, eng)
	case "stats":
		return output(eng.UsageStats())
	case "reset-stats":
		eng.ResetStats()
		fmt.Println("usage stats reset")
		return 0
	case "status":
		return cmdStatus(foods, calModel)
	case "serve-metrics":
		if !cfg.Metrics.Enabled {
			fmt.Fprintln(os.Stderr, "metrics are disabled; set KALORYE_METRICS_ENABLED=true")
			return 1
		}
		if err := monitoring.Serve(cfg.Metrics.ListenAddr, registry, log); err != nil {
			fmt.Fprintln(os.Stderr, "metrics listener failed:", err)
			return 1
		}
		return 0
	default:
		usage()
		return 2
	}
}

func cmdPredict(args []string, eng inbound.NutritionEngine) int {
	fs := flag.NewFlagSet("predict", flag.ExitOnError)
	serving := fs.Float64("serving", 100, "serving size in grams")
	category := fs.String("category", "", "food category")
	prep := fs.String("prep", "", "preparation method")
	ingredients := fs.String("ingredients", "", "comma-separated ingredient hints")
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: engine predict <food name> [flags]")
		return 2
	}

	res, err := eng.PredictCalories(inbound.PredictCaloriesRequest{
		Name:         strings.Join(fs.Args(), " "),
		Category:     *category,
		ServingSizeG: *serving,
		PrepMethod:   *prep,
		Ingredients:  splitList(*ingredients),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return output(res)
}

func cmdNutrition(args []string, eng inbound.NutritionEngine) int {
	fs := flag.NewFlagSet("nutrition", flag.ExitOnError)
	serving := fs.Float64("serving", 100, "serving size in grams")
	sex, age, weight, height, activity := profileFlags(fs)
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: engine nutrition <food name> [flags]")
		return 2
	}

	report, err := eng.PredictNutrition(inbound.PredictNutritionRequest{
		Name:          strings.Join(fs.Args(), " "),
		ServingSizeG:  *serving,
		Sex:           *sex,
		Age:           *age,
		WeightKg:      *weight,
		HeightCm:      *height,
		ActivityLevel: *activity,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return output(report)
}

func cmdPlan(args []string, eng inbound.NutritionEngine) int {
	fs := flag.NewFlagSet("plan", flag.ExitOnError)
	sex, age, weight, height, activity := profileFlags(fs)
	goal := fs.String("goal", "maintain", "goal: maintain, weight_loss, muscle_gain")
	preferences := fs.String("preferences", "", "comma-separated dietary preferences")
	medical := fs.String("medical", "", "comma-separated medical history")
	_ = fs.Parse(args)

	rec, err := eng.RecommendMeals(inbound.RecommendMealsRequest{
		Sex:            *sex,
		Age:            *age,
		WeightKg:       *weight,
		HeightCm:       *height,
		ActivityLevel:  *activity,
		Goal:           *goal,
		Preferences:    splitList(*preferences),
		MedicalHistory: splitList(*medical),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return output(rec)
}

func cmdAnalyze(args []string, eng inbound.NutritionEngine) int {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	file := fs.String("file", "", "JSON file with the day's food log")
	sex, age, weight, height, activity := profileFlags(fs)
	goal := fs.String("goal", "maintain", "goal: maintain, weight_loss, muscle_gain")
	_ = fs.Parse(args)

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: engine analyze -file log.json [flags]")
		return 2
	}
	raw, err := os.ReadFile(*file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to read food log:", err)
		return 1
	}
	var entries []inbound.FoodLogEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		fmt.Fprintln(os.Stderr, "failed to parse food log:", err)
		return 1
	}

	report, err := eng.AnalyzeFoodLog(inbound.AnalyzeFoodLogRequest{
		Entries:       entries,
		Sex:           *sex,
		Age:           *age,
		WeightKg:      *weight,
		HeightCm:      *height,
		ActivityLevel: *activity,
		Goal:          *goal,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return output(report)
}

func cmdStatus(foods outbound.FoodRepository, calModel outbound.CalorieModel) int {
	caps := foods.Capabilities()
	return output(map[string]interface{}{
		"expanded_table":   caps.ExpandedTable,
		"curated_entries":  caps.CuratedEntries,
		"expanded_entries": caps.ExpandedEntries,
		"model_available":  calModel.Available(),
		"model_input_dim":  calModel.InputDim(),
	})
}

func profileFlags(fs *flag.FlagSet) (sex *string, age *int, weight, height *float64, activity *string) {
	sex = fs.String("sex", "male", "sex: male or female")
	age = fs.Int("age", 30, "age in years")
	weight = fs.Float64("weight", 65, "weight in kg")
	height = fs.Float64("height", 165, "height in cm")
	activity = fs.String("activity", "moderate", "activity level")
	return
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func output(v interface{}) int {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to encode output:", err)
		return 1
	}
	fmt.Println(string(data))
	return 0
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: engine <command> [flags]

commands:
  predict <food name>     predict calories for a food
  nutrition <food name>   full nutrient estimate vs daily needs
  plan                    generate a daily meal plan
  analyze -file log.json  analyze a day's food log
  stats                   print usage statistics
  reset-stats             zero usage statistics
  status                  report loaded capabilities
  serve-metrics           expose Prometheus metrics`)
}
