// internal/common/config/config.go
package config

import "time"

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig               `mapstructure:"app"`
	Camunda CamundaConfig           `mapstructure:"camunda"`
	Redis   RedisConfig             `mapstructure:"redis"`
	AI      AIConfig                `mapstructure:"ai"`
	Scoring ScoringConfig           `mapstructure:"scoring"`
	Workers map[string]WorkerConfig `mapstructure:"workers"`
	Logging LoggingConfig           `mapstructure:"logging"`
	Metrics MetricsConfig           `mapstructure:"metrics"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type CamundaConfig struct {
	BrokerAddress  string `mapstructure:"broker_address"`
	MaxJobsActive  int    `mapstructure:"max_jobs_active"`
	Timeout        int    `mapstructure:"timeout"`         // milliseconds
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// CacheTTL bounds how long an unpaid lead's analysis stays retrievable.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// AIConfig holds the LLM client settings. An empty APIKey is a normal,
// expected state: analysis then runs the deterministic path only.
type AIConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	Model       string        `mapstructure:"model"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Temperature float64       `mapstructure:"temperature"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig bounds concurrent/recent AI calls per rolling window.
type RateLimitConfig struct {
	MaxRequests int           `mapstructure:"max_requests"`
	Window      time.Duration `mapstructure:"window"`
	MaxWait     time.Duration `mapstructure:"max_wait"`
	// FailFastCeiling rejects immediately when the computed wait would
	// exceed it, instead of stacking delays on upstream timeouts.
	FailFastCeiling time.Duration `mapstructure:"fail_fast_ceiling"`
	MaxTracked      int           `mapstructure:"max_tracked"`
	SweepInterval   time.Duration `mapstructure:"sweep_interval"`
}

// ScoringConfig carries the tuned scoring knobs. Weight overrides are merged
// over the built-in table; unknown keys are ignored.
type ScoringConfig struct {
	CatalogPath     string             `mapstructure:"catalog_path"` // empty = embedded default catalog
	WeightOverrides map[string]float64 `mapstructure:"weight_overrides"`
}

// WorkerConfig holds the core settings applicable to every worker.
type WorkerConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxJobsActive int  `mapstructure:"max_jobs_active"`
	Timeout       int  `mapstructure:"timeout"` // milliseconds
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}
