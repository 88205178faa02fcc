package config

import (
	"os"
	"strconv"
	"strings"
)

// LLM providers.
const (
	ProviderTemplate = "template"
	ProviderOpenAI   = "openai"
	ProviderAzure    = "azure"
)

// Config holds application configuration.
type Config struct {
	Port               string
	Env                string
	DatabaseURL        string
	CORSAllowOrigin    []string
	LogLevel           string
	LogFormat          string
	LLMProvider        string
	LLMModel           string
	OpenAIAPIKey       string
	AzureAPIBase       string
	AzureAPIKey        string
	AzureDeployment    string
	AzureAPIVersion    string
	ChatRateLimitRPS   float64
	ChatRateLimitBurst int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		dbURL = os.Getenv("POSTGRES_URL")
	}

	cfg := Config{
		Port:               getEnv("PORT", "8080"),
		Env:                normalizeEnv(getEnv("ENV", "dev")),
		DatabaseURL:        dbURL,
		CORSAllowOrigin:    splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "*")),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "json"),
		LLMModel:           getEnv("LLM_MODEL", "gpt-4o-mini"),
		OpenAIAPIKey:       getEnv("OPENAI_API_KEY", ""),
		AzureAPIBase:       getEnv("AZURE_OPENAI_API_BASE", ""),
		AzureAPIKey:        getEnv("AZURE_OPENAI_KEY", ""),
		AzureDeployment:    getEnv("AZURE_OPENAI_DEPLOYMENT", ""),
		AzureAPIVersion:    getEnv("AZURE_OPENAI_API_VERSION", "2023-05-15"),
		ChatRateLimitRPS:   getEnvFloat("CHAT_RATE_LIMIT_RPS", 1),
		ChatRateLimitBurst: getEnvInt("CHAT_RATE_LIMIT_BURST", 5),
	}
	cfg.LLMProvider = normalizeProvider(os.Getenv("LLM_PROVIDER"), cfg)
	return cfg
}

// IsDevLike reports whether in-memory fallbacks are acceptable.
func (c Config) IsDevLike() bool {
	return c.Env == "dev" || c.Env == "local"
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func getEnvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
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
	default:
		return "dev"
	}
}

// normalizeProvider picks the explicit provider when set, otherwise infers it
// from which credentials are present.
func normalizeProvider(raw string, cfg Config) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case ProviderOpenAI:
		return ProviderOpenAI
	case ProviderAzure:
		return ProviderAzure
	case ProviderTemplate, "none", "placeholder":
		return ProviderTemplate
	}
	if cfg.AzureAPIKey != "" && cfg.AzureAPIBase != "" && cfg.AzureDeployment != "" {
		return ProviderAzure
	}
	if cfg.OpenAIAPIKey != "" {
		return ProviderOpenAI
	}
	return ProviderTemplate
}
