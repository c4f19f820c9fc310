package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultLeadAPIURL is the local-development address of the lead intake API
	DefaultLeadAPIURL = "http://localhost:8000"

	// StrategyNetwork posts leads to the lead intake API
	StrategyNetwork = "network"
	// StrategyLocal only shows a local success modal
	StrategyLocal = "local"
)

type Config struct {
	ServerPort  string
	Environment string
	// Lead intake API
	LeadAPIURL     string
	LeadAPITimeout time.Duration
	// Submission strategies per form
	ParentStrategy       string
	GeneralChildStrategy string
	RobloxChildStrategy  string
	RobloxBasePath       string
	// Submission outcome log
	DBPath                 string
	SubmissionLogEnabled   bool
	SubmissionLogRetention time.Duration
	// Logging
	LogLevel  string
	LogFormat string
	// Other
	AllowedOrigins      []string
	PublicFormRateLimit int
	// Cloudflare Turnstile
	TurnstileSiteKey   string
	TurnstileSecretKey string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:             getEnv("SERVER_PORT", "8080"),
		Environment:            getEnv("ENVIRONMENT", "development"),
		LeadAPIURL:             strings.TrimRight(getEnv("LEAD_API_URL", DefaultLeadAPIURL), "/"),
		LeadAPITimeout:         getEnvDuration("LEAD_API_TIMEOUT", 15*time.Second),
		ParentStrategy:         getEnvStrategy("PARENT_STRATEGY", StrategyNetwork),
		GeneralChildStrategy:   getEnvStrategy("GENERAL_CHILD_STRATEGY", StrategyNetwork),
		RobloxChildStrategy:    getEnvStrategy("ROBLOX_CHILD_STRATEGY", StrategyLocal),
		RobloxBasePath:         normalizeBasePath(getEnv("ROBLOX_BASE_PATH", "/roblox")),
		DBPath:                 getEnv("DB_PATH", "db/landing.db"),
		SubmissionLogEnabled:   getEnvBool("SUBMISSION_LOG_ENABLED", true),
		SubmissionLogRetention: getEnvDuration("SUBMISSION_LOG_RETENTION", 30*24*time.Hour),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		LogFormat:              getEnv("LOG_FORMAT", "console"),
		AllowedOrigins:         strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		PublicFormRateLimit:    getEnvInt("PUBLIC_FORM_RATE_LIMIT", 10),
		TurnstileSiteKey:       getEnv("TURNSTILE_SITE_KEY", ""),
		TurnstileSecretKey:     getEnv("TURNSTILE_SECRET_KEY", ""),
	}
}

// IsProduction reports whether the server runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Printf("[WARNING] Invalid value for %s: %q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("[WARNING] Invalid duration for %s: %q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

// getEnvStrategy reads a submission strategy, falling back on unknown values
func getEnvStrategy(key, defaultValue string) string {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch value {
	case StrategyNetwork, StrategyLocal:
		return value
	case "":
		return defaultValue
	default:
		log.Printf("[WARNING] Unknown submission strategy for %s: %q, using %s", key, value, defaultValue)
		return defaultValue
	}
}

// normalizeBasePath makes sure a path prefix starts with a slash and has no trailing slash
func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || p == "/" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return strings.TrimRight(p, "/")
}
