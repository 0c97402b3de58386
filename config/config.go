package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port             string
	StoreDriver      string // json|sqlite|memory
	DBPath           string
	SQLitePath       string
	DiseasesPath     string
	KBStrict         bool
	GeminiAPIKey     string
	GeminiModel      string
	GeminiBaseURL    string
	InferenceTimeout time.Duration
	BodyLimit        string
	ScanRateLimit    float64
	LogLevel         string
	LogFormat        string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "component", "config", "error", err)
	}

	get := func(k, def string) string {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:             get("PORT", "3001"),
		StoreDriver:      strings.ToLower(get("STORE_DRIVER", "json")),
		DBPath:           get("DB_PATH", "data/db.json"),
		SQLitePath:       get("SQLITE_PATH", "data/agrow.db"),
		DiseasesPath:     get("DISEASES_PATH", "data/diseases.json"),
		KBStrict:         get("KB_STRICT", "false") == "true",
		GeminiAPIKey:     get("GEMINI_API_KEY", ""),
		GeminiModel:      get("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiBaseURL:    get("GEMINI_BASE_URL", ""),
		InferenceTimeout: duration(get("INFERENCE_TIMEOUT", ""), 30*time.Second),
		BodyLimit:        get("BODY_LIMIT", "10M"),
		ScanRateLimit:    float(get("SCAN_RATE_LIMIT", ""), 2),
		LogLevel:         strings.ToLower(get("LOG_LEVEL", "info")),
		LogFormat:        strings.ToLower(get("LOG_FORMAT", "text")),
	}
	return cfg
}

// LogValue keeps the API key out of logs.
func (c AppConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("port", c.Port),
		slog.String("store", c.StoreDriver),
		slog.String("db_path", c.DBPath),
		slog.String("sqlite_path", c.SQLitePath),
		slog.String("diseases_path", c.DiseasesPath),
		slog.Bool("kb_strict", c.KBStrict),
		slog.Bool("gemini_key_present", c.GeminiAPIKey != ""),
		slog.String("gemini_model", c.GeminiModel),
		slog.Duration("inference_timeout", c.InferenceTimeout),
		slog.String("body_limit", c.BodyLimit),
		slog.Float64("scan_rate_limit", c.ScanRateLimit),
	)
}

func duration(v string, def time.Duration) time.Duration {
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration, using default", "component", "config", "value", v, "default", def)
		return def
	}
	return d
}

func float(v string, def float64) float64 {
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		slog.Warn("invalid number, using default", "component", "config", "value", v, "default", def)
		return def
	}
	return f
}
