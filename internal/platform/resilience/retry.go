package resilience

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
)

var (
	// ErrRateLimited marks an attempt rejected by the provider with 429.
	ErrRateLimited = crerr.New("rate limited by provider")
	// ErrTransient marks transport failures worth another attempt.
	ErrTransient = crerr.New("transient provider failure")
	// ErrRetriesExhausted is returned when every attempt was rate limited.
	ErrRetriesExhausted = crerr.New("retries exhausted")
)

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// ContextSleep is the production SleepFunc.
func ContextSleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Backoff returns the wait before the attempt following attempt (0-based).
type Backoff func(attempt int) time.Duration

// LinearBackoff waits step*(attempt+1).
func LinearBackoff(step time.Duration) Backoff {
	return func(attempt int) time.Duration {
		return step * time.Duration(attempt+1)
	}
}

type RetryPolicy struct {
	MaxAttempts      int
	RateLimitBackoff Backoff
	TransientBackoff Backoff
	Sleep            SleepFunc
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:      3,
		RateLimitBackoff: LinearBackoff(15 * time.Second),
		TransientBackoff: LinearBackoff(5 * time.Second),
		Sleep:            ContextSleep,
	}
}

// SingleAttempt returns p limited to one attempt.
func (p RetryPolicy) SingleAttempt() RetryPolicy {
	p.MaxAttempts = 1
	return p
}

func NormalizeRetryPolicy(policy RetryPolicy) RetryPolicy {
	defaults := DefaultRetryPolicy()
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = defaults.MaxAttempts
	}
	if policy.RateLimitBackoff == nil {
		policy.RateLimitBackoff = defaults.RateLimitBackoff
	}
	if policy.TransientBackoff == nil {
		policy.TransientBackoff = defaults.TransientBackoff
	}
	if policy.Sleep == nil {
		policy.Sleep = defaults.Sleep
	}
	return policy
}

// Do runs op until it succeeds, fails with an unmarked error, or the attempt
// budget is spent. Errors marked ErrRateLimited or ErrTransient are retried
// after the matching backoff. A final transient error is returned as is; a
// final rate-limit error becomes ErrRetriesExhausted.
func (p RetryPolicy) Do(ctx context.Context, op func(ctx context.Context, attempt int) error) error {
	p = NormalizeRetryPolicy(p)

	var lastErr error
	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		err := op(ctx, attempt)
		if err == nil {
			return nil
		}
		lastErr = err

		var wait time.Duration
		switch {
		case crerr.Is(err, ErrRateLimited):
			wait = p.RateLimitBackoff(attempt)
		case crerr.Is(err, ErrTransient):
			wait = p.TransientBackoff(attempt)
		default:
			return err
		}

		// Nothing follows the last attempt, so its backoff is not slept.
		if attempt == p.MaxAttempts-1 {
			break
		}
		if sleepErr := p.Sleep(ctx, wait); sleepErr != nil {
			return crerr.Wrap(sleepErr, "wait before retry")
		}
	}

	if crerr.Is(lastErr, ErrRateLimited) {
		return crerr.Mark(crerr.Wrapf(lastErr, "after %d attempts", p.MaxAttempts), ErrRetriesExhausted)
	}
	return lastErr
}
