// internal/workers/analysis/analyze-business-fit/config.go
package analyzebusinessfit

import "time"

type Config struct {
	Timeout  time.Duration
	CacheTTL time.Duration
}

func DefaultConfig() *Config {
	return &Config{
		Timeout:  30 * time.Second,
		CacheTTL: 24 * time.Hour,
	}
}
