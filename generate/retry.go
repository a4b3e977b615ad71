package generate

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Backoff configures Retry.
type Backoff struct {
	MaxRetries int
	Initial    time.Duration
	Max        time.Duration
	Factor     float64
}

// DefaultBackoff retries five times starting at one second, doubling up to
// a minute.
var DefaultBackoff = Backoff{MaxRetries: 5, Initial: time.Second, Max: time.Minute, Factor: 2}

// Retry calls fn until it succeeds, returns an error that is not retryable,
// or MaxRetries retries have failed. The last error is returned.
func Retry[T any](ctx context.Context, b Backoff, log zerolog.Logger, fn func(context.Context) (T, error)) (T, error) {
	delay := b.Initial
	for attempt := 0; ; attempt++ {
		v, err := fn(ctx)
		if err == nil || !retryable(err) || attempt >= b.MaxRetries {
			return v, err
		}
		if delay > b.Max {
			delay = b.Max
		}
		log.Warn().Err(err).Int("retry", attempt+1).Int("max", b.MaxRetries).Dur("delay", delay).Msg("retrying")
		t := time.NewTimer(delay)
		select {
		case <-t.C:
		case <-ctx.Done():
			t.Stop()
			return v, err
		}
		delay = time.Duration(float64(delay) * b.Factor)
	}
}
