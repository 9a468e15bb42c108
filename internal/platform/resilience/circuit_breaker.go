package resilience

import (
	crerr "github.com/cockroachdb/errors"
	"github.com/sony/gobreaker"
)

var ErrCircuitOpen = crerr.New("circuit breaker is open")

// CircuitBreaker guards a dependency and trips after consecutive failures.
// Only errors accepted by the failure predicate count against it.
type CircuitBreaker struct {
	breaker *gobreaker.CircuitBreaker
}

func NewCircuitBreaker(name string, cfg CircuitBreakerConfig, isFailure func(error) bool, onStateChange func(from, to string)) *CircuitBreaker {
	cfg = NormalizeCircuitBreakerConfig(cfg)
	if isFailure == nil {
		isFailure = func(err error) bool { return err != nil }
	}

	threshold := uint32(cfg.FailureThreshold)
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: uint32(cfg.HalfOpenMaxReq),
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			return !isFailure(err)
		},
	}
	if onStateChange != nil {
		settings.OnStateChange = func(_ string, from, to gobreaker.State) {
			onStateChange(from.String(), to.String())
		}
	}

	return &CircuitBreaker{
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// Execute runs fn through the breaker. Rejections are returned as ErrCircuitOpen.
func (b *CircuitBreaker) Execute(fn func() error) error {
	_, err := b.breaker.Execute(func() (interface{}, error) {
		return nil, fn()
	})
	if crerr.Is(err, gobreaker.ErrOpenState) || crerr.Is(err, gobreaker.ErrTooManyRequests) {
		return crerr.Mark(crerr.Wrap(err, "dependency guarded"), ErrCircuitOpen)
	}
	return err
}

func (b *CircuitBreaker) State() string {
	return b.breaker.State().String()
}
