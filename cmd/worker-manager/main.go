// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"bizfit-workers/internal/ai"
	"bizfit-workers/internal/analysis"
	"bizfit-workers/internal/common/config"
	"bizfit-workers/internal/common/database"
	"bizfit-workers/internal/common/logger"
	"bizfit-workers/internal/common/observability"
	"bizfit-workers/internal/personality"
	"bizfit-workers/internal/scoring"
	"bizfit-workers/pkg/catalog"

	abf "bizfit-workers/internal/workers/analysis/analyze-business-fit"
	pp "bizfit-workers/internal/workers/analysis/personality-profile"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Zeebe Client with retry ---
	var zeebeClient zbc.Client
	err = retryWithBackoff(func() error {
		var err error
		zeebeClient, err = zbc.NewClient(&zbc.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
		})
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")

	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	// --- Init Redis (optional, analysis cache only) ---
	var redisClient *database.RedisClient
	if cfg.Redis.Address != "" {
		err = retryWithBackoff(func() error {
			var err error
			redisClient, err = database.NewRedis(cfg.Redis)
			if err != nil {
				return err
			}
			return redisClient.Ping(ctx)
		}, 5, 2*time.Second, zapLog, "Redis initialization")

		if err != nil {
			zapLog.Warn("redis unavailable, analysis caching disabled", zap.Error(err))
			redisClient = nil
		} else {
			zapLog.Info("Redis connected successfully")
		}
	} else {
		zapLog.Info("No redis address configured, analysis caching disabled")
	}

	// --- Load catalog ---
	cat := catalog.Default()
	if cfg.Scoring.CatalogPath != "" {
		cat, err = catalog.Load(cfg.Scoring.CatalogPath)
		if err != nil {
			zapLog.Fatal("catalog load failed", zap.Error(err))
		}
	}
	zapLog.Info("Business model catalog loaded",
		zap.String("version", cat.Version),
		zap.Int("profiles", len(cat.Profiles)),
	)

	// --- Build the analysis pipeline ---
	weights := scoring.DefaultWeights().Merge(cfg.Scoring.WeightOverrides)
	scorer := scoring.NewScorer(weights)
	summarizer := personality.NewSummarizer(personality.DefaultCoefficients())

	var chatClient ai.ChatClient
	var limiter analysis.Limiter
	if cfg.AI.APIKey != "" {
		chatClient = ai.NewClient(cfg.AI, log)
		rateLimiter := ai.NewRateLimiter(cfg.AI.RateLimit, log)
		defer rateLimiter.Stop()
		limiter = rateLimiter
		zapLog.Info("AI path enabled", zap.String("model", cfg.AI.Model))
	} else {
		zapLog.Info("No AI credential configured, running algorithmic path only")
	}

	svc := analysis.NewService(cat, scorer, summarizer, chatClient, limiter, cfg.AI.Timeout, log)

	// --- Register workers ---
	abfCfg := workerConfig(cfg, abf.TaskType)
	abfHandler := abf.NewHandler(&abf.Config{
		Timeout:  time.Duration(abfCfg.Timeout) * time.Millisecond,
		CacheTTL: cfg.Redis.CacheTTL,
	}, svc, redisRaw(redisClient), log)
	startWorker(zeebeClient, abf.TaskType, abfCfg, abfHandler.Handle, zapLog)

	ppCfg := workerConfig(cfg, pp.TaskType)
	ppHandler := pp.NewHandler(summarizer, log)
	startWorker(zeebeClient, pp.TaskType, ppCfg, ppHandler.Handle, zapLog)

	// --- Health/Metrics server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening", zap.String("address", cfg.Metrics.Address))
		if err := http.ListenAndServe(cfg.Metrics.Address, nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")

	if err := zeebeClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			zapLog.Error("Error closing Redis client", zap.Error(err))
		}
	}

	zapLog.Info("Worker manager stopped gracefully")
}

// workerConfig returns the per-worker settings, falling back to the shared
// Camunda defaults for anything the workers map doesn't name.
func workerConfig(cfg *config.Config, taskType string) config.WorkerConfig {
	if wcfg, ok := cfg.Workers[taskType]; ok {
		if wcfg.MaxJobsActive <= 0 {
			wcfg.MaxJobsActive = cfg.Camunda.MaxJobsActive
		}
		if wcfg.Timeout <= 0 {
			wcfg.Timeout = cfg.Camunda.Timeout
		}
		return wcfg
	}
	return config.WorkerConfig{
		Enabled:       true,
		MaxJobsActive: cfg.Camunda.MaxJobsActive,
		Timeout:       cfg.Camunda.Timeout,
	}
}

func redisRaw(c *database.RedisClient) *redis.Client {
	if c == nil {
		return nil
	}
	return c.GetClient()
}

func startWorker(client zbc.Client, taskType string, wcfg config.WorkerConfig, handlerFunc func(worker.JobClient, entities.Job), log *zap.Logger) {
	if !wcfg.Enabled {
		log.Info("worker disabled", zap.String("taskType", taskType))
		return
	}

	client.NewJobWorker().
		JobType(taskType).
		Handler(handlerFunc).
		MaxJobsActive(wcfg.MaxJobsActive).
		Timeout(time.Duration(wcfg.Timeout) * time.Millisecond).
		Open()

	log.Info("worker started",
		zap.String("taskType", taskType),
		zap.Int("maxJobsActive", wcfg.MaxJobsActive),
		zap.Int("timeout_ms", wcfg.Timeout),
	)
}
