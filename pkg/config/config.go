package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Baseline model names
const (
	ModelBipartite = "bipartite"
	ModelGnm       = "gnm"
)

// Projection sides
const (
	SideSubreddit = "subreddit"
	SideAuthor    = "author"
)

// Drawing layouts and color attributes
const (
	LayoutForce    = "force"
	LayoutCircular = "circular"

	ColorByGroup    = "group"
	ColorByPlatform = "platform"
)

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// BaselineConfig controls random baseline generation.
type BaselineConfig struct {
	// Model selects the random-graph model: "bipartite" generates a random
	// bipartite graph matched to the real network's two-mode sizes and
	// projects it; "gnm" generates an Erdős–Rényi G(n,m) graph matched to
	// the projected graph.
	Model      string `yaml:"model" validate:"required,oneof=bipartite gnm"`
	Replicates int    `yaml:"replicates" validate:"min=1,max=100000"`
	Seed       uint64 `yaml:"seed"`
}

// DrawConfig controls the optional SVG drawing of the projection. An empty
// Output path disables it.
type DrawConfig struct {
	Output  string `yaml:"output"`
	Layout  string `yaml:"layout" validate:"omitempty,oneof=force circular"`
	ColorBy string `yaml:"color_by" validate:"omitempty,oneof=group platform"`
	Width   int    `yaml:"width" validate:"min=0"`
	Height  int    `yaml:"height" validate:"min=0"`
}

// Config holds the full run configuration.
type Config struct {
	// Dataset is the path to the interaction CSV.
	Dataset string `yaml:"dataset" validate:"required"`
	// MinDegree drops authors with fewer interactions than this before
	// the graph is built. Zero keeps everyone.
	MinDegree int `yaml:"min_degree" validate:"min=0"`
	// Side chooses which entity class becomes the projected nodes.
	Side     string         `yaml:"side" validate:"required,oneof=subreddit author"`
	Baseline BaselineConfig `yaml:"baseline"`
	Draw     DrawConfig     `yaml:"draw"`
	LogLevel string         `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// Default returns the standard run configuration: subreddit
// projection, min-degree 3, twenty bipartite baselines.
func Default() *Config {
	return &Config{
		MinDegree: 3,
		Side:      SideSubreddit,
		Baseline: BaselineConfig{
			Model:      ModelBipartite,
			Replicates: 20,
			Seed:       1984,
		},
		Draw: DrawConfig{
			Layout:  LayoutForce,
			ColorBy: ColorByGroup,
		},
		LogLevel: "info",
	}
}

// Load reads a YAML config file, layered over defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks struct tags and cross-field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}

	cv := NewConfigValidator("Config")
	cv.Required("Dataset", c.Dataset)
	cv.MinInt("Baseline.Replicates", c.Baseline.Replicates, 1)
	cv.MaxInt("Baseline.Replicates", c.Baseline.Replicates, 100000)
	return cv.Err()
}

// formatValidationError turns validator's error soup into something a user
// can act on.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			return fmt.Errorf("config: %s is required", fe.Namespace())
		case "oneof":
			return fmt.Errorf("config: %s must be one of [%s], got %q", fe.Namespace(), fe.Param(), fe.Value())
		case "min":
			return fmt.Errorf("config: %s must be at least %s", fe.Namespace(), fe.Param())
		case "max":
			return fmt.Errorf("config: %s must be at most %s", fe.Namespace(), fe.Param())
		default:
			return fmt.Errorf("config: %s failed %s validation", fe.Namespace(), fe.Tag())
		}
	}
	return err
}
