package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/nemeziz1010/pdfoutline/internal/outline"
)

type Config struct {
	// Batch directories
	InputDir  string
	OutputDir string

	// Worker pool
	WorkerCount int

	// HTTP mode
	Port           string
	APIKey         string
	MaxUploadBytes int64

	// Stats window
	StatsWindow time.Duration

	// Detection thresholds
	BodySizeDefault    float64
	TitleSizeTolerance float64
	MaxTitleWords      int
	SignificanceRatio  float64
	H1Ratio            float64
	H2Ratio            float64
	MaxHeadingWords    int
	ContentTop         float64
	ContentBottom      float64
}

func Load() Config {
	cfg := Config{
		InputDir:  envOr("INPUT_DIR", "/app/input"),
		OutputDir: envOr("OUTPUT_DIR", "/app/output"),

		WorkerCount: envInt("WORKER_COUNT", 4),

		Port:           envOr("PORT", "8080"),
		APIKey:         os.Getenv("API_KEY"),
		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		StatsWindow: envDuration("STATS_WINDOW", 1*time.Hour),

		BodySizeDefault:    envFloat("BODY_SIZE_DEFAULT", 12.0),
		TitleSizeTolerance: envFloat("TITLE_SIZE_TOLERANCE", 0.1),
		MaxTitleWords:      envInt("MAX_TITLE_WORDS", 20),
		SignificanceRatio:  envFloat("SIGNIFICANCE_RATIO", 1.15),
		H1Ratio:            envFloat("H1_RATIO", 1.6),
		H2Ratio:            envFloat("H2_RATIO", 1.3),
		MaxHeadingWords:    envInt("MAX_HEADING_WORDS", 12),
		ContentTop:         envFloat("CONTENT_TOP", 50),
		ContentBottom:      envFloat("CONTENT_BOTTOM", 750),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = 1 * time.Hour
	}
	if cfg.BodySizeDefault <= 0 {
		cfg.BodySizeDefault = 12.0
	}
	if cfg.TitleSizeTolerance <= 0 {
		cfg.TitleSizeTolerance = 0.1
	}
	if cfg.MaxTitleWords <= 0 {
		cfg.MaxTitleWords = 20
	}
	if cfg.SignificanceRatio <= 0 {
		cfg.SignificanceRatio = 1.15
	}
	if cfg.H1Ratio <= 0 {
		cfg.H1Ratio = 1.6
	}
	if cfg.H2Ratio <= 0 {
		cfg.H2Ratio = 1.3
	}
	if cfg.MaxHeadingWords <= 0 {
		cfg.MaxHeadingWords = 12
	}
	if cfg.ContentTop <= 0 {
		cfg.ContentTop = 50
	}
	if cfg.ContentBottom <= 0 {
		cfg.ContentBottom = 750
	}

	return cfg
}

func (c Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("INPUT_DIR is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("OUTPUT_DIR is required")
	}
	if c.H2Ratio >= c.H1Ratio {
		return fmt.Errorf("H2_RATIO (%v) must be below H1_RATIO (%v)", c.H2Ratio, c.H1Ratio)
	}
	if c.ContentTop >= c.ContentBottom {
		return fmt.Errorf("CONTENT_TOP (%v) must be above CONTENT_BOTTOM (%v)", c.ContentTop, c.ContentBottom)
	}
	return nil
}

// Detection maps the tunable thresholds onto the detector's config.
func (c Config) Detection() outline.Config {
	return outline.Config{
		DefaultBodySize:    c.BodySizeDefault,
		TitleSizeTolerance: c.TitleSizeTolerance,
		MaxTitleWords:      c.MaxTitleWords,
		SignificanceRatio:  c.SignificanceRatio,
		H1Ratio:            c.H1Ratio,
		H2Ratio:            c.H2Ratio,
		MaxHeadingWords:    c.MaxHeadingWords,
		ContentTop:         c.ContentTop,
		ContentBottom:      c.ContentBottom,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
