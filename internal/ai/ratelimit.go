// internal/ai/ratelimit.go
package ai

import (
	"context"
	"sync"
	"time"

	"bizfit-workers/internal/common/config"
	stderrors "bizfit-workers/internal/common/errors"
	"bizfit-workers/internal/common/logger"
	"bizfit-workers/internal/common/metrics"
)

// RateLimiter bounds AI calls to a quota per rolling window. It tracks
// recent request timestamps, prunes expired ones on every check, and when
// the quota is exhausted either waits (capped) for the oldest entry to exit
// the window or fails fast when the required wait exceeds the sanity
// ceiling. The timestamp buffer is hard-capped and swept on an independent
// timer so sustained overload cannot grow it without bound.
type RateLimiter struct {
	mu      sync.Mutex
	entries []time.Time

	maxRequests int
	window      time.Duration
	maxWait     time.Duration
	ceiling     time.Duration
	maxTracked  int

	sweepTicker *time.Ticker
	done        chan struct{}
	stopOnce    sync.Once
	logger      logger.Logger
}

func NewRateLimiter(cfg config.RateLimitConfig, log logger.Logger) *RateLimiter {
	rl := &RateLimiter{
		entries:     make([]time.Time, 0, cfg.MaxRequests),
		maxRequests: cfg.MaxRequests,
		window:      cfg.Window,
		maxWait:     cfg.MaxWait,
		ceiling:     cfg.FailFastCeiling,
		maxTracked:  cfg.MaxTracked,
		sweepTicker: time.NewTicker(cfg.SweepInterval),
		done:        make(chan struct{}),
		logger:      log.WithFields(map[string]interface{}{"component": "ai-rate-limiter"}),
	}
	go rl.sweepLoop()
	return rl
}

// Acquire reserves a slot or returns a classified AI_RATE_LIMITED error. It
// waits at most maxWait for a slot to free up and rejects immediately when
// the required wait exceeds the fail-fast ceiling, so exhaustion here never
// compounds upstream timeouts.
func (rl *RateLimiter) Acquire(ctx context.Context) error {
	// One capped wait, then a final re-check. Unbounded retry loops would
	// reintroduce the indefinite blocking this limiter exists to prevent.
	for attempt := 0; ; attempt++ {
		wait, ok := rl.tryAcquire(time.Now())
		if ok {
			return nil
		}
		if wait > rl.ceiling {
			metrics.RateLimiterRejections.Inc()
			rl.logger.Warn("rejecting AI call, wait exceeds ceiling", map[string]interface{}{
				"requiredWait": wait.String(),
				"ceiling":      rl.ceiling.String(),
			})
			return stderrors.New(stderrors.ErrCodeAIRateLimited, "rate limit window full")
		}
		if attempt >= 1 {
			metrics.RateLimiterRejections.Inc()
			return stderrors.New(stderrors.ErrCodeAIRateLimited, "no slot after bounded wait")
		}
		if wait > rl.maxWait {
			wait = rl.maxWait
		}
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return stderrors.Wrap(stderrors.ErrCodeAIRateLimited, ctx.Err())
		}
	}
}

// tryAcquire prunes, then either records a slot (true) or reports how long
// until the oldest entry leaves the window (false).
func (rl *RateLimiter) tryAcquire(now time.Time) (time.Duration, bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.pruneLocked(now)

	if len(rl.entries) < rl.maxRequests {
		rl.entries = append(rl.entries, now)
		return 0, true
	}
	return rl.entries[0].Add(rl.window).Sub(now), false
}

// pruneLocked drops expired entries and enforces the hard buffer cap.
func (rl *RateLimiter) pruneLocked(now time.Time) {
	cutoff := now.Add(-rl.window)
	keep := 0
	for keep < len(rl.entries) && !rl.entries[keep].After(cutoff) {
		keep++
	}
	if keep > 0 {
		rl.entries = append(rl.entries[:0], rl.entries[keep:]...)
	}
	if len(rl.entries) > rl.maxTracked {
		excess := len(rl.entries) - rl.maxTracked
		rl.entries = append(rl.entries[:0], rl.entries[excess:]...)
	}
}

// Tracked reports the current number of stored timestamps.
func (rl *RateLimiter) Tracked() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.entries)
}

func (rl *RateLimiter) sweepLoop() {
	for {
		select {
		case <-rl.sweepTicker.C:
			rl.mu.Lock()
			rl.pruneLocked(time.Now())
			rl.mu.Unlock()
		case <-rl.done:
			return
		}
	}
}

// Stop terminates the background sweeper.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() {
		rl.sweepTicker.Stop()
		close(rl.done)
	})
}
