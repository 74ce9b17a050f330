// ABOUTME: Backoff computation for retried provider calls
// ABOUTME: Shared by the embedding and generation paths for consistent retry behavior
package util

import (
	"math/rand/v2"
	"time"
)

// Backoff returns the delay before the given retry attempt: the base
// delay doubled per attempt, capped at 30 seconds, with up to 25%
// random jitter either way. Attempt 0 is the initial call and gets no
// delay.
func Backoff(base time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	if attempt > 30 {
		attempt = 30
	}
	delay := base * time.Duration(1<<uint(attempt))
	if delay > 30*time.Second {
		delay = 30 * time.Second
	}
	jitter := time.Duration(rand.Int64N(int64(delay)/2)) - delay/4
	return delay + jitter
}
