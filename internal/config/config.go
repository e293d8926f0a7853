package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/yumejin/matrixify-export/internal/sjcsv"
)

// Config holds every run setting. Values come from the environment,
// optionally loaded from a local env file first.
type Config struct {
	InputDir  string
	OutputDir string

	ProductFile  string
	StockFile    string
	CategoryFile string

	MainImageBaseURL string
	SubImageBaseURL  string

	ProbeTimeout time.Duration
	PoolWidth    int
}

const (
	// EnvFileName is looked up in the working directory.
	EnvFileName = "matrixify.env"

	defaultInputDir  = "products"
	defaultOutputDir = "output"

	defaultProductFile  = "Product20251211.csv"
	defaultStockFile    = "ProductStock20251211.csv"
	defaultCategoryFile = "ProductCategory20251211.csv"

	// Staging host until the production image host goes live.
	defaultMainImageBaseURL = "https://www.example.com/images/products/"
	defaultSubImageBaseURL  = "https://www.example.com/images/products/sub/"

	defaultProbeTimeout = 5 * time.Second
	defaultPoolWidth    = 16
)

// Load reads configuration from the environment. A missing env file is
// not an error.
func Load() Config {
	_ = godotenv.Load(EnvFileName)

	return Config{
		InputDir:         envOr("MATRIXIFY_INPUT_DIR", defaultInputDir),
		OutputDir:        envOr("MATRIXIFY_OUTPUT_DIR", defaultOutputDir),
		ProductFile:      envOr("MATRIXIFY_PRODUCT_FILE", defaultProductFile),
		StockFile:        envOr("MATRIXIFY_STOCK_FILE", defaultStockFile),
		CategoryFile:     envOr("MATRIXIFY_CATEGORY_FILE", defaultCategoryFile),
		MainImageBaseURL: envOr("MATRIXIFY_IMAGE_BASE_URL", defaultMainImageBaseURL),
		SubImageBaseURL:  envOr("MATRIXIFY_SUB_IMAGE_BASE_URL", defaultSubImageBaseURL),
		ProbeTimeout:     envDuration("MATRIXIFY_PROBE_TIMEOUT", defaultProbeTimeout),
		PoolWidth:        envInt("MATRIXIFY_POOL_WIDTH", defaultPoolWidth),
	}
}

// ProductPath returns the full path to the product input file.
func (c Config) ProductPath() string { return filepath.Join(c.InputDir, c.ProductFile) }

// StockPath returns the full path to the stock input file.
func (c Config) StockPath() string { return filepath.Join(c.InputDir, c.StockFile) }

// CategoryPath returns the full path to the category input file.
func (c Config) CategoryPath() string { return filepath.Join(c.InputDir, c.CategoryFile) }

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if n := sjcsv.ParseInt(v); n > 0 {
		return n
	}
	log.Warn().Str("key", key).Str("value", v).Msg("ignoring non-positive setting")
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Warn().Str("key", key).Str("value", v).Msg("ignoring invalid duration setting")
		return fallback
	}
	return d
}
