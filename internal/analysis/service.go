// internal/analysis/service.go
package analysis

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"bizfit-workers/internal/ai"
	stderrors "bizfit-workers/internal/common/errors"
	"bizfit-workers/internal/common/logger"
	"bizfit-workers/internal/common/metrics"
	"bizfit-workers/internal/models"
	"bizfit-workers/internal/personality"
	"bizfit-workers/internal/scoring"
	"bizfit-workers/pkg/catalog"
)

// Limiter gates entry to the AI path. Satisfied by *ai.RateLimiter.
type Limiter interface {
	Acquire(ctx context.Context) error
}

// Service is the analysis orchestrator. Its one public operation has no
// failure channel: any AI-path problem degrades to the deterministic
// scorer + summarizer, so callers always get a complete, ranked analysis.
// Stateless apart from the injected limiter; safe for concurrent use.
type Service struct {
	catalog    *catalog.Catalog
	scorer     *scoring.Scorer
	summarizer *personality.Summarizer
	client     ai.ChatClient
	limiter    Limiter
	aiTimeout  time.Duration
	logger     logger.Logger
}

// NewService wires the orchestrator. client and limiter may be nil: that is
// the normal no-credential deployment and routes every request to the
// deterministic path.
func NewService(
	cat *catalog.Catalog,
	scorer *scoring.Scorer,
	summarizer *personality.Summarizer,
	client ai.ChatClient,
	limiter Limiter,
	aiTimeout time.Duration,
	log logger.Logger,
) *Service {
	if aiTimeout <= 0 {
		aiTimeout = 25 * time.Second
	}
	return &Service{
		catalog:    cat,
		scorer:     scorer,
		summarizer: summarizer,
		client:     client,
		limiter:    limiter,
		aiTimeout:  aiTimeout,
		logger:     log.WithFields(map[string]interface{}{"component": "analysis-service"}),
	}
}

// AnalyzeBusinessFit produces the full report for one quiz submission. It
// never returns an error: the AI path is best-effort and every failure is
// classified, counted, and replaced by the deterministic result.
func (s *Service) AnalyzeBusinessFit(ctx context.Context, answers *models.QuizAnswers) *models.ComprehensiveFitAnalysis {
	traits := scoring.Normalize(answers)

	if result, err := s.tryAIPath(ctx, answers, traits); err == nil {
		metrics.AnalysesCompleted.WithLabelValues(models.SourceAI).Inc()
		return result
	} else {
		reason := string(stderrors.CodeOf(err))
		metrics.AnalysisFallbacks.WithLabelValues(reason).Inc()
		if stderrors.CodeOf(err) == stderrors.ErrCodeAICredentialMissing {
			s.logger.Debug("no AI credential, using algorithmic path", nil)
		} else {
			s.logger.Warn("AI path failed, falling back", map[string]interface{}{
				"reason": reason,
				"error":  err.Error(),
			})
		}
	}

	result := s.algorithmicAnalysis(answers, traits)
	metrics.AnalysesCompleted.WithLabelValues(models.SourceAlgorithmic).Inc()
	return result
}

// tryAIPath runs the LLM branch: credential check, limiter slot, prompt,
// JSON-mode call under a hard deadline, schema validation, assembly. The
// deadline is enforced by context, so an abandoned call cannot write into
// the fallback result that replaces it.
func (s *Service) tryAIPath(ctx context.Context, answers *models.QuizAnswers, traits scoring.NormalizedTraits) (*models.ComprehensiveFitAnalysis, error) {
	if s.client == nil || !s.client.Configured() {
		return nil, stderrors.New(stderrors.ErrCodeAICredentialMissing, "AI client not configured")
	}
	if s.limiter != nil {
		if err := s.limiter.Acquire(ctx); err != nil {
			return nil, err
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, s.aiTimeout)
	defer cancel()

	content, err := s.client.CompleteJSON(callCtx, systemPrompt, buildUserPrompt(answers, traits, s.catalog))
	if err != nil {
		return nil, err
	}

	payload, err := parseAIResponse(content)
	if err != nil {
		return nil, err
	}

	matches := s.assembleAIMatches(payload.Matches)
	if len(matches) == 0 {
		return nil, stderrors.New(stderrors.ErrCodeAIResponseInvalid, "no match referenced a known catalog model")
	}

	profile := models.PersonalityProfile{
		TraitScores:      payload.Personality.TraitScores,
		Strengths:        payload.Personality.Strengths,
		DevelopmentAreas: payload.Personality.DevelopmentAreas,
		WorkStyle:        payload.Personality.WorkStyle,
		RiskProfile:      payload.Personality.RiskProfile,
	}

	return s.assemble(matches, profile, payload.Recommendations, models.SourceAI), nil
}

// assembleAIMatches converts the model's match entries, dropping any that
// reference an id missing from the catalog. A stale id means mismatched
// catalog data, not a request failure, so it is filtered rather than raised.
func (s *Service) assembleAIMatches(aiMatches []aiMatch) []models.MatchResult {
	matches := make([]models.MatchResult, 0, len(aiMatches))
	for _, m := range aiMatches {
		profile := s.catalog.ByID(m.ModelID)
		if profile == nil {
			s.logger.Warn("dropping match with unknown model id", map[string]interface{}{
				"modelId": m.ModelID,
			})
			continue
		}
		matches = append(matches, models.MatchResult{
			ModelID:    profile.ID,
			ModelName:  profile.Name,
			FitScore:   clampInt(int(math.Round(m.FitScore)), 0, 100),
			Reasoning:  m.Reasoning,
			Strengths:  emptyIfNil(m.Strengths),
			Challenges: emptyIfNil(m.Challenges),
			Confidence: clampFloat(m.Confidence, 0, 1),
		})
	}
	return matches
}

// algorithmicAnalysis is the deterministic path: pure computation, no I/O,
// no failure mode.
func (s *Service) algorithmicAnalysis(answers *models.QuizAnswers, traits scoring.NormalizedTraits) *models.ComprehensiveFitAnalysis {
	matches := make([]models.MatchResult, 0, len(s.catalog.Profiles))
	for i := range s.catalog.Profiles {
		profile := &s.catalog.Profiles[i]
		r := s.scorer.Score(traits, profile)
		matches = append(matches, models.MatchResult{
			ModelID:    profile.ID,
			ModelName:  profile.Name,
			FitScore:   r.FitScore,
			Reasoning:  scoring.Reasoning(profile, r),
			Strengths:  scoring.Strengths(r),
			Challenges: scoring.Challenges(r),
			Confidence: scoring.Confidence(r),
		})
	}

	profile := s.summarizer.Summarize(answers)
	recs := personality.Recommendations(profile.TraitScores)

	return s.assemble(matches, profile, recs, models.SourceAlgorithmic)
}

// assemble is the single result-assembly step shared by both paths: stable
// descending sort (catalog order preserved on ties), category assignment,
// identity and timestamp.
func (s *Service) assemble(matches []models.MatchResult, profile models.PersonalityProfile, recommendations []string, source string) *models.ComprehensiveFitAnalysis {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].FitScore > matches[j].FitScore
	})
	scoring.ClassifyAll(matches)

	return &models.ComprehensiveFitAnalysis{
		AnalysisID:      uuid.NewString(),
		TopMatches:      matches,
		Personality:     profile,
		Recommendations: emptyIfNil(recommendations),
		Source:          source,
		GeneratedAt:     time.Now().UTC(),
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
