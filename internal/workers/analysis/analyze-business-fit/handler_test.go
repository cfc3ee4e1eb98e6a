// internal/workers/analysis/analyze-business-fit/handler_test.go
package analyzebusinessfit

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"bizfit-workers/internal/common/logger"
	"bizfit-workers/internal/models"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

type stubAnalyzer struct {
	result *models.ComprehensiveFitAnalysis
	calls  int
}

func (s *stubAnalyzer) AnalyzeBusinessFit(ctx context.Context, answers *models.QuizAnswers) *models.ComprehensiveFitAnalysis {
	s.calls++
	return s.result
}

func createTestAnalysis() *models.ComprehensiveFitAnalysis {
	return &models.ComprehensiveFitAnalysis{
		AnalysisID: "test-analysis-1",
		TopMatches: []models.MatchResult{
			{
				ModelID:     "freelancing",
				ModelName:   "Freelancing",
				FitScore:    88,
				FitCategory: models.CategoryBestFit,
				Reasoning:   "Strong solo profile.",
				Strengths:   []string{"independence"},
				Challenges:  []string{"sales comfort"},
				Confidence:  0.9,
			},
		},
		Personality: models.PersonalityProfile{
			TraitScores:      map[string]int{"riskTolerance": 40},
			Strengths:        []string{},
			DevelopmentAreas: []string{},
			WorkStyle:        "flexible",
			RiskProfile:      "cautious",
		},
		Recommendations: []string{"Start with one anchor client."},
		Source:          models.SourceAlgorithmic,
		GeneratedAt:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func createTestHandler(t *testing.T, analyzer Analyzer, redisClient *redis.Client) *Handler {
	return NewHandler(DefaultConfig(), analyzer, redisClient, logger.NewTestLogger(t))
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_CacheMiss(t *testing.T) {
	redisClient, redisMock := redismock.NewClientMock()
	analyzer := &stubAnalyzer{result: createTestAnalysis()}

	cacheKey := "analysis:fit:session-1"
	redisMock.ExpectGet(cacheKey).RedisNil()

	cachedData, _ := json.Marshal(analyzer.result)
	redisMock.ExpectSet(cacheKey, cachedData, DefaultConfig().CacheTTL).SetVal("OK")

	handler := createTestHandler(t, analyzer, redisClient)
	output := handler.Execute(context.Background(), &Input{
		SessionID:   "session-1",
		QuizAnswers: &models.QuizAnswers{RiskComfort: 2},
	})

	require.NotNil(t, output)
	assert.False(t, output.FromCache)
	assert.Equal(t, "test-analysis-1", output.FitAnalysis.AnalysisID)
	assert.Equal(t, 1, analyzer.calls)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestHandler_Execute_CacheHit(t *testing.T) {
	redisClient, redisMock := redismock.NewClientMock()
	analyzer := &stubAnalyzer{result: createTestAnalysis()}

	cached := createTestAnalysis()
	cached.AnalysisID = "cached-analysis"
	cachedData, _ := json.Marshal(cached)
	redisMock.ExpectGet("analysis:fit:session-2").SetVal(string(cachedData))

	handler := createTestHandler(t, analyzer, redisClient)
	output := handler.Execute(context.Background(), &Input{SessionID: "session-2"})

	require.NotNil(t, output)
	assert.True(t, output.FromCache)
	assert.Equal(t, "cached-analysis", output.FitAnalysis.AnalysisID)
	assert.Equal(t, 0, analyzer.calls, "cache hit must not rerun the analysis")
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestHandler_Execute_CorruptCacheEntryIsIgnored(t *testing.T) {
	redisClient, redisMock := redismock.NewClientMock()
	analyzer := &stubAnalyzer{result: createTestAnalysis()}

	cacheKey := "analysis:fit:session-3"
	redisMock.ExpectGet(cacheKey).SetVal("{broken json")

	cachedData, _ := json.Marshal(analyzer.result)
	redisMock.ExpectSet(cacheKey, cachedData, DefaultConfig().CacheTTL).SetVal("OK")

	handler := createTestHandler(t, analyzer, redisClient)
	output := handler.Execute(context.Background(), &Input{SessionID: "session-3"})

	require.NotNil(t, output)
	assert.False(t, output.FromCache)
	assert.Equal(t, 1, analyzer.calls)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestHandler_Execute_RedisDownIsBestEffort(t *testing.T) {
	redisClient, redisMock := redismock.NewClientMock()
	analyzer := &stubAnalyzer{result: createTestAnalysis()}

	cacheKey := "analysis:fit:session-4"
	redisMock.ExpectGet(cacheKey).SetErr(assert.AnError)

	cachedData, _ := json.Marshal(analyzer.result)
	redisMock.ExpectSet(cacheKey, cachedData, DefaultConfig().CacheTTL).SetErr(assert.AnError)

	handler := createTestHandler(t, analyzer, redisClient)
	output := handler.Execute(context.Background(), &Input{SessionID: "session-4"})

	require.NotNil(t, output)
	assert.False(t, output.FromCache)
	assert.Equal(t, 1, analyzer.calls)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestHandler_Execute_NoRedisConfigured(t *testing.T) {
	analyzer := &stubAnalyzer{result: createTestAnalysis()}
	handler := createTestHandler(t, analyzer, nil)

	output := handler.Execute(context.Background(), &Input{SessionID: "session-5"})

	require.NotNil(t, output)
	assert.False(t, output.FromCache)
	assert.Equal(t, 1, analyzer.calls)
}

func TestHandler_Execute_MissingSessionSkipsCache(t *testing.T) {
	redisClient, redisMock := redismock.NewClientMock()
	analyzer := &stubAnalyzer{result: createTestAnalysis()}

	handler := createTestHandler(t, analyzer, redisClient)
	output := handler.Execute(context.Background(), &Input{
		QuizAnswers: &models.QuizAnswers{},
	})

	require.NotNil(t, output)
	assert.Equal(t, 1, analyzer.calls)
	// No Get or Set was expected; anonymous submissions bypass the cache.
	assert.NoError(t, redisMock.ExpectationsWereMet())
}
