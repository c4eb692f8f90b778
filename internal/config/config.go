package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Log        LogConfig
	CORS       CORSConfig
	Completion CompletionConfig
	Preprocess PreprocessConfig
	Budget     BudgetConfig
	Session    SessionConfig
	Cost       CostConfig
	Extract    ExtractConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CompletionProviderConfig holds settings for a single LLM completion provider.
type CompletionProviderConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// CompletionConfig holds LLM completion settings with an optional secondary
// provider used as a rate-limit fallback.
type CompletionConfig struct {
	Primary   CompletionProviderConfig `mapstructure:"primary"`
	Secondary CompletionProviderConfig `mapstructure:"secondary"`
}

// SecondaryConfig returns the secondary provider config, or nil if not configured.
func (c *CompletionConfig) SecondaryConfig() *CompletionProviderConfig {
	if c.Secondary.Provider != "" {
		return &c.Secondary
	}
	return nil
}

// PreprocessConfig holds case text normalizer thresholds.
type PreprocessConfig struct {
	MinLineChars      int `mapstructure:"min_line_chars"`
	UppercaseMinChars int `mapstructure:"uppercase_min_chars"`
}

// BudgetConfig holds the character budgets that trigger case condensation.
// Analysis tolerates a larger context than the interactive modes.
type BudgetConfig struct {
	AnalysisTrigger int `mapstructure:"analysis_trigger"`
	SessionTrigger  int `mapstructure:"session_trigger"`
}

// SessionConfig holds in-memory session lifecycle settings.
type SessionConfig struct {
	TTL           time.Duration `mapstructure:"ttl"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

// CostConfig holds token cost accounting settings.
type CostConfig struct {
	PerThousandTokensUSD float64 `mapstructure:"per_thousand_tokens_usd"`
}

// ExtractConfig holds PDF text extraction settings.
type ExtractConfig struct {
	Pdftotext     string `mapstructure:"pdftotext"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
}

// Load reads configuration from environment variables with the MOCKTRIAL_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("MOCKTRIAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	// Completion defaults
	v.SetDefault("completion.primary.provider", "openai")
	v.SetDefault("completion.primary.api_key", "")
	v.SetDefault("completion.primary.default_model", "gpt-3.5-turbo")
	v.SetDefault("completion.primary.timeout_secs", 120)
	v.SetDefault("completion.secondary.provider", "")
	v.SetDefault("completion.secondary.api_key", "")
	v.SetDefault("completion.secondary.default_model", "")
	v.SetDefault("completion.secondary.timeout_secs", 120)

	// Preprocess defaults
	v.SetDefault("preprocess.min_line_chars", 15)
	v.SetDefault("preprocess.uppercase_min_chars", 5)

	// Budget defaults
	v.SetDefault("budget.analysis_trigger", 16000)
	v.SetDefault("budget.session_trigger", 12000)

	// Session defaults
	v.SetDefault("session.ttl", "2h")
	v.SetDefault("session.sweep_interval", "10m")

	// Cost defaults
	v.SetDefault("cost.per_thousand_tokens_usd", 0.00175)

	// Extract defaults
	v.SetDefault("extract.pdftotext", "pdftotext")
	v.SetDefault("extract.max_file_size_mb", 25)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                        "MOCKTRIAL_SERVER_PORT",
		"server.read_timeout":                "MOCKTRIAL_SERVER_READ_TIMEOUT",
		"server.write_timeout":               "MOCKTRIAL_SERVER_WRITE_TIMEOUT",
		"server.environment":                 "MOCKTRIAL_SERVER_ENVIRONMENT",
		"log.level":                          "MOCKTRIAL_LOG_LEVEL",
		"log.format":                         "MOCKTRIAL_LOG_FORMAT",
		"cors.allowed_origins":               "MOCKTRIAL_CORS_ALLOWED_ORIGINS",
		"completion.primary.provider":        "MOCKTRIAL_COMPLETION_PRIMARY_PROVIDER",
		"completion.primary.api_key":         "MOCKTRIAL_COMPLETION_PRIMARY_API_KEY",
		"completion.primary.default_model":   "MOCKTRIAL_COMPLETION_PRIMARY_DEFAULT_MODEL",
		"completion.primary.timeout_secs":    "MOCKTRIAL_COMPLETION_PRIMARY_TIMEOUT_SECS",
		"completion.secondary.provider":      "MOCKTRIAL_COMPLETION_SECONDARY_PROVIDER",
		"completion.secondary.api_key":       "MOCKTRIAL_COMPLETION_SECONDARY_API_KEY",
		"completion.secondary.default_model": "MOCKTRIAL_COMPLETION_SECONDARY_DEFAULT_MODEL",
		"completion.secondary.timeout_secs":  "MOCKTRIAL_COMPLETION_SECONDARY_TIMEOUT_SECS",
		"preprocess.min_line_chars":          "MOCKTRIAL_PREPROCESS_MIN_LINE_CHARS",
		"preprocess.uppercase_min_chars":     "MOCKTRIAL_PREPROCESS_UPPERCASE_MIN_CHARS",
		"budget.analysis_trigger":            "MOCKTRIAL_BUDGET_ANALYSIS_TRIGGER",
		"budget.session_trigger":             "MOCKTRIAL_BUDGET_SESSION_TRIGGER",
		"session.ttl":                        "MOCKTRIAL_SESSION_TTL",
		"session.sweep_interval":             "MOCKTRIAL_SESSION_SWEEP_INTERVAL",
		"cost.per_thousand_tokens_usd":       "MOCKTRIAL_COST_PER_THOUSAND_TOKENS_USD",
		"extract.pdftotext":                  "MOCKTRIAL_EXTRACT_PDFTOTEXT",
		"extract.max_file_size_mb":           "MOCKTRIAL_EXTRACT_MAX_FILE_SIZE_MB",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if MOCKTRIAL_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("MOCKTRIAL_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Completion = CompletionConfig{
		Primary: CompletionProviderConfig{
			Provider:     v.GetString("completion.primary.provider"),
			APIKey:       v.GetString("completion.primary.api_key"),
			DefaultModel: v.GetString("completion.primary.default_model"),
			TimeoutSecs:  v.GetInt("completion.primary.timeout_secs"),
		},
		Secondary: CompletionProviderConfig{
			Provider:     v.GetString("completion.secondary.provider"),
			APIKey:       v.GetString("completion.secondary.api_key"),
			DefaultModel: v.GetString("completion.secondary.default_model"),
			TimeoutSecs:  v.GetInt("completion.secondary.timeout_secs"),
		},
	}

	cfg.Preprocess = PreprocessConfig{
		MinLineChars:      v.GetInt("preprocess.min_line_chars"),
		UppercaseMinChars: v.GetInt("preprocess.uppercase_min_chars"),
	}

	cfg.Budget = BudgetConfig{
		AnalysisTrigger: v.GetInt("budget.analysis_trigger"),
		SessionTrigger:  v.GetInt("budget.session_trigger"),
	}

	cfg.Session = SessionConfig{
		TTL:           v.GetDuration("session.ttl"),
		SweepInterval: v.GetDuration("session.sweep_interval"),
	}

	cfg.Cost = CostConfig{
		PerThousandTokensUSD: v.GetFloat64("cost.per_thousand_tokens_usd"),
	}

	cfg.Extract = ExtractConfig{
		Pdftotext:     v.GetString("extract.pdftotext"),
		MaxFileSizeMB: v.GetInt64("extract.max_file_size_mb"),
	}

	return cfg, nil
}
