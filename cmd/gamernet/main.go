package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gamernet/pkg/config"
	"gamernet/pkg/logging"
	"gamernet/pkg/pipeline"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	data := flag.String("data", "", "Path to the interaction dataset CSV")
	minDegree := flag.Int("min-degree", 0, "Drop authors with fewer interactions")
	side := flag.String("side", "", "Projection side: subreddit or author")
	model := flag.String("model", "", "Baseline model: bipartite or gnm")
	replicates := flag.Int("replicates", 0, "Number of baseline graphs to generate")
	seed := flag.Uint64("seed", 0, "Random seed for baseline generation")
	svg := flag.String("svg", "", "Write an SVG drawing of the projection to this path")
	colorBy := flag.String("color-by", "", "Node color attribute for the drawing: group or platform")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	// Flags set on the command line override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data":
			cfg.Dataset = *data
		case "min-degree":
			cfg.MinDegree = *minDegree
		case "side":
			cfg.Side = *side
		case "model":
			cfg.Baseline.Model = *model
		case "replicates":
			cfg.Baseline.Replicates = *replicates
		case "seed":
			cfg.Baseline.Seed = *seed
		case "svg":
			cfg.Draw.Output = *svg
		case "color-by":
			cfg.Draw.ColorBy = *colorBy
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	logger := logging.NewJSONLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))

	result, err := pipeline.Run(cfg, logger)
	if err != nil {
		logger.Error("run failed", logging.Err(err))
		os.Exit(1)
	}

	fmt.Println(result.Summary)
}
