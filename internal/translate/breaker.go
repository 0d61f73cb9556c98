// internal/translate/breaker.go
//
// Circuit breaker wrapper for translation providers. Repeated upstream
// failures open the breaker so a dead provider fails fast instead of tying
// up request handlers for the full timeout.

package translate

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
)

// Breaker wraps any Translator with a gobreaker circuit breaker.
type Breaker struct {
	inner Translator
	cb    *gobreaker.CircuitBreaker
}

// NewBreaker wraps t. The breaker trips after 5 consecutive failures and
// probes again after 30 seconds.
func NewBreaker(t Translator) *Breaker {
	return &Breaker{
		inner: t,
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "translator",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}
}

// Translate runs the wrapped provider through the breaker.
// When the breaker is open this returns gobreaker.ErrOpenState immediately.
func (b *Breaker) Translate(ctx context.Context, text, from, to string) (string, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.inner.Translate(ctx, text, from, to)
	})
	if err != nil {
		return "", err
	}
	return out.(string), nil
}
