// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads the layered configuration: .env file, base config.yaml,
// environment-specific config.<env>.yaml overlay, then environment variable
// overrides (AI_API_KEY, REDIS_ADDRESS, ...).
func Load() (*Config, error) {
	loadEnvFile()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	viper.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = viper.MergeInConfig() // overlay is optional

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if cfg.App.Environment == "" {
		cfg.App.Environment = env
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadEnvFile tries .env from the locations the binary is typically run
// from; secrets like AI_API_KEY usually live there in development.
func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}
	for _, p := range possiblePaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			return
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "bizfit-workers"
	}
	if cfg.Camunda.BrokerAddress == "" {
		cfg.Camunda.BrokerAddress = "localhost:26500"
	}
	if cfg.Camunda.MaxJobsActive == 0 {
		cfg.Camunda.MaxJobsActive = 10
	}
	if cfg.Camunda.Timeout == 0 {
		cfg.Camunda.Timeout = 30000
	}
	if cfg.Camunda.RequestTimeout == 0 {
		cfg.Camunda.RequestTimeout = 10000
	}
	if cfg.Redis.Address == "" {
		cfg.Redis.Address = "localhost:6379"
	}
	if cfg.Redis.CacheTTL == 0 {
		cfg.Redis.CacheTTL = 24 * time.Hour
	}

	if cfg.AI.APIKey == "" {
		// Secrets come from the environment, never from yaml.
		cfg.AI.APIKey = os.Getenv("AI_API_KEY")
	}
	if cfg.AI.BaseURL == "" {
		cfg.AI.BaseURL = "https://api.openai.com"
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = "gpt-4o-mini"
	}
	if cfg.AI.Timeout == 0 {
		cfg.AI.Timeout = 25 * time.Second
	}
	if cfg.AI.Temperature == 0 {
		cfg.AI.Temperature = 0.4
	}
	if cfg.AI.MaxTokens == 0 {
		cfg.AI.MaxTokens = 3000
	}

	rl := &cfg.AI.RateLimit
	if rl.MaxRequests == 0 {
		rl.MaxRequests = 5
	}
	if rl.Window == 0 {
		rl.Window = time.Minute
	}
	if rl.MaxWait == 0 {
		rl.MaxWait = 10 * time.Second
	}
	if rl.FailFastCeiling == 0 {
		rl.FailFastCeiling = 30 * time.Second
	}
	if rl.MaxTracked == 0 {
		rl.MaxTracked = 1000
	}
	if rl.SweepInterval == 0 {
		rl.SweepInterval = time.Minute
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Metrics.Address == "" {
		cfg.Metrics.Address = ":9090"
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Camunda.BrokerAddress == "" {
		return fmt.Errorf("camunda broker address is required")
	}
	if cfg.AI.Timeout <= 0 {
		return fmt.Errorf("ai timeout must be positive")
	}
	rl := cfg.AI.RateLimit
	if rl.MaxRequests <= 0 || rl.Window <= 0 {
		return fmt.Errorf("rate limit quota and window must be positive")
	}
	if rl.MaxWait > rl.FailFastCeiling {
		return fmt.Errorf("rate limit max_wait cannot exceed fail_fast_ceiling")
	}
	for k, v := range cfg.Scoring.WeightOverrides {
		if v <= 0 {
			return fmt.Errorf("scoring weight override %q must be positive", k)
		}
	}
	return nil
}
