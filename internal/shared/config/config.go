package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	ObjectStoreType string
	LocalStoreDir   string
	AWSRegion       string
	S3Bucket        string
	S3Prefix        string
	SSEKMSKeyID     string
	DatabaseURL     string
	Env             string

	MaxUploadBytes   int64
	ExtractTimeout   time.Duration
	AnalyzeTimeout   time.Duration
	UploadRatePerSec float64
	UploadRateBurst  int

	AdzunaBaseURL  string
	AdzunaAppID    string
	AdzunaAppKey   string
	AdzunaCountry  string
	ReedBaseURL    string
	ReedAPIKey     string
	JSearchBaseURL string
	JSearchAPIKey  string
	JobsCacheTTL   time.Duration

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	UIRedirectURL      string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		ObjectStoreType: normalizeStoreType(getEnv("OBJECT_STORE", "local")),
		LocalStoreDir:   getEnv("LOCAL_STORE_DIR", "./data"),
		AWSRegion:       getEnv("AWS_REGION", ""),
		S3Bucket:        getEnv("S3_BUCKET", ""),
		S3Prefix:        getEnv("S3_PREFIX", ""),
		SSEKMSKeyID:     getEnv("SSE_KMS_KEY_ID", ""),
		DatabaseURL:     dbURL,
		Env:             env,

		MaxUploadBytes:   getEnvInt64("MAX_UPLOAD_BYTES", 5<<20),
		ExtractTimeout:   getEnvSeconds("EXTRACT_TIMEOUT_SECONDS", 30*time.Second),
		AnalyzeTimeout:   getEnvSeconds("ANALYZE_TIMEOUT_SECONDS", 15*time.Second),
		UploadRatePerSec: getEnvFloat("UPLOAD_RATE_PER_SEC", 0.5),
		UploadRateBurst:  int(getEnvInt64("UPLOAD_RATE_BURST", 5)),

		AdzunaBaseURL:  getEnv("ADZUNA_BASE_URL", "https://api.adzuna.com/v1/api/jobs"),
		AdzunaAppID:    getEnv("ADZUNA_APP_ID", ""),
		AdzunaAppKey:   getEnv("ADZUNA_APP_KEY", ""),
		AdzunaCountry:  getEnv("ADZUNA_COUNTRY", "gb"),
		ReedBaseURL:    getEnv("REED_BASE_URL", "https://www.reed.co.uk/api/1.0"),
		ReedAPIKey:     getEnv("REED_API_KEY", ""),
		JSearchBaseURL: getEnv("JSEARCH_BASE_URL", "https://jsearch.p.rapidapi.com"),
		JSearchAPIKey:  getEnv("JSEARCH_API_KEY", ""),
		JobsCacheTTL:   getEnvSeconds("JOBS_CACHE_TTL_SECONDS", 5*time.Minute),

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", ""),
		UIRedirectURL:      getEnv("UI_REDIRECT_URL", ""),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || parsed <= 0 {
		log.Printf("invalid %s=%q, using default", key, raw)
		return def
	}
	return parsed
}

func getEnvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil || parsed <= 0 {
		log.Printf("invalid %s=%q, using default", key, raw)
		return def
	}
	return parsed
}

func getEnvSeconds(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		log.Printf("invalid %s=%q, using default", key, raw)
		return def
	}
	return time.Duration(parsed) * time.Second
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}
