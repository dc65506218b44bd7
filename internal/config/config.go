package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds everything the pipeline reads from the environment.
type Config struct {
	// OpenAI settings
	OpenAIAPIKey string
	Model        string

	// Collection settings
	DaysBack        int
	FeedsConfigPath string
	OutputDir       string
	ScrapeFullText  bool

	// Pricing (USD per million tokens) and currency conversion
	InputPricePerM  float64
	OutputPricePerM float64
	USDCZKRate      float64

	// Per-call token averages used only by the pre-run cost estimator.
	Estimates Estimates

	Debug bool
}

// Estimates are average token counts per model call, by call category.
type Estimates struct {
	ClassifyIn  int
	ClassifyOut int
	ArticleIn   int
	ArticleOut  int
	PostsIn     int
	PostsOut    int
}

// Load reads configuration from the environment, applying defaults.
// It does not validate; call Validate before starting a run.
func Load() *Config {
	return &Config{
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		Model:           getEnvOrDefault("MODEL_NAME", "gpt-4o-mini"),
		DaysBack:        getEnvIntOrDefault("DAYS_BACK", 30),
		FeedsConfigPath: getEnvOrDefault("FEEDS_CONFIG_PATH", "configs/feeds.yaml"),
		OutputDir:       getEnvOrDefault("OUTPUT_DIR", "."),
		ScrapeFullText:  os.Getenv("SCRAPE_FULL_TEXT") == "true",
		InputPricePerM:  getEnvFloatOrDefault("INPUT_PRICE_PER_M", 0.15),
		OutputPricePerM: getEnvFloatOrDefault("OUTPUT_PRICE_PER_M", 0.60),
		USDCZKRate:      getEnvFloatOrDefault("USD_CZK_RATE", 23.5),
		Estimates: Estimates{
			ClassifyIn:  getEnvIntOrDefault("EST_CLASSIFY_IN", 300),
			ClassifyOut: getEnvIntOrDefault("EST_CLASSIFY_OUT", 1),
			ArticleIn:   getEnvIntOrDefault("EST_ARTICLE_IN", 350),
			ArticleOut:  getEnvIntOrDefault("EST_ARTICLE_OUT", 700),
			PostsIn:     getEnvIntOrDefault("EST_POSTS_IN", 300),
			PostsOut:    getEnvIntOrDefault("EST_POSTS_OUT", 220),
		},
		Debug: os.Getenv("DEBUG") == "true",
	}
}

// Validate reports the single fatal misconfiguration: a missing API key.
func (c *Config) Validate() error {
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
