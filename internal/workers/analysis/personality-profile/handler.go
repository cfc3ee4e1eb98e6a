// internal/workers/analysis/personality-profile/handler.go
package personalityprofile

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bizfit-workers/internal/common/logger"
	"bizfit-workers/internal/common/metrics"
	"bizfit-workers/internal/personality"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "personality-profile"
)

// Handler produces the standalone personality summary used by funnel steps
// that want the profile before the full fit analysis has run. The summary is
// pure computation, so unlike the fit-analysis worker there is no per-job
// deadline to manage; the job timeout configured at registration covers it.
type Handler struct {
	summarizer *personality.Summarizer
	logger     logger.Logger
}

func NewHandler(summarizer *personality.Summarizer, log logger.Logger) *Handler {
	return &Handler{
		summarizer: summarizer,
		logger:     log.WithFields(map[string]interface{}{"taskType": TaskType}),
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

	output := h.execute(&input)

	h.completeJob(client, job, output)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
}

func (h *Handler) execute(input *Input) *Output {
	profile := h.summarizer.Summarize(input.QuizAnswers)
	return &Output{
		PersonalityProfile: profile,
		Recommendations:    personality.Recommendations(profile.TraitScores),
	}
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
func (h *Handler) Execute(input *Input) *Output {
	return h.execute(input)
}
