// internal/workers/analysis/analyze-business-fit/handler.go
package analyzebusinessfit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bizfit-workers/internal/common/logger"
	"bizfit-workers/internal/common/metrics"
	"bizfit-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/redis/go-redis/v9"
)

const (
	TaskType = "analyze-business-fit"

	cacheKeyPrefix = "analysis:fit:"
)

// Analyzer is the orchestrator dependency. Satisfied by *analysis.Service.
type Analyzer interface {
	AnalyzeBusinessFit(ctx context.Context, answers *models.QuizAnswers) *models.ComprehensiveFitAnalysis
}

// Handler runs a full business-fit analysis for one quiz submission. Results
// are cached per session so a page reload doesn't rerun the AI path.
type Handler struct {
	config   *Config
	analyzer Analyzer
	redis    *redis.Client
	logger   logger.Logger
}

func NewHandler(config *Config, analyzer Analyzer, redisClient *redis.Client, log logger.Logger) *Handler {
	return &Handler{
		config:   config,
		analyzer: analyzer,
		redis:    redisClient,
		logger:   log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	startTime := time.Now()
	metrics.WorkerJobsActive.WithLabelValues(TaskType).Inc()
	defer metrics.WorkerJobsActive.WithLabelValues(TaskType).Dec()

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":             job.Key,
		"processInstanceKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, "PARSE_ERROR").Inc()
		h.failJob(client, job, "PARSE_ERROR", fmt.Sprintf("parse input: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output := h.execute(ctx, &input)

	h.completeJob(client, job, output)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
}

// execute has no failure channel past input parsing: the orchestrator always
// produces a result and the cache is best-effort on both sides.
func (h *Handler) execute(ctx context.Context, input *Input) *Output {
	if cached := h.cachedAnalysis(ctx, input.SessionID); cached != nil {
		return &Output{FitAnalysis: cached, FromCache: true}
	}

	result := h.analyzer.AnalyzeBusinessFit(ctx, input.QuizAnswers)

	h.storeAnalysis(ctx, input.SessionID, result)

	h.logger.Info("analysis completed", map[string]interface{}{
		"sessionId":  input.SessionID,
		"analysisId": result.AnalysisID,
		"source":     result.Source,
		"topModel":   topModelID(result),
	})

	return &Output{FitAnalysis: result}
}

func (h *Handler) cachedAnalysis(ctx context.Context, sessionID string) *models.ComprehensiveFitAnalysis {
	if h.redis == nil || sessionID == "" {
		return nil
	}
	val, err := h.redis.Get(ctx, cacheKeyPrefix+sessionID).Result()
	if err != nil {
		return nil
	}
	var cached models.ComprehensiveFitAnalysis
	if err := json.Unmarshal([]byte(val), &cached); err != nil {
		h.logger.Warn("discarding unreadable cached analysis", map[string]interface{}{
			"sessionId": sessionID,
			"error":     err.Error(),
		})
		return nil
	}
	return &cached
}

func (h *Handler) storeAnalysis(ctx context.Context, sessionID string, result *models.ComprehensiveFitAnalysis) {
	if h.redis == nil || sessionID == "" {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := h.redis.Set(ctx, cacheKeyPrefix+sessionID, data, h.config.CacheTTL).Err(); err != nil {
		h.logger.Warn("failed to cache analysis", map[string]interface{}{
			"sessionId": sessionID,
			"error":     err.Error(),
		})
	}
}

func topModelID(result *models.ComprehensiveFitAnalysis) string {
	if len(result.TopMatches) == 0 {
		return ""
	}
	return result.TopMatches[0].ModelID
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string) {
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
	})

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}

// Execute exposes the job body for tests and direct invocation.
func (h *Handler) Execute(ctx context.Context, input *Input) *Output {
	return h.execute(ctx, input)
}
