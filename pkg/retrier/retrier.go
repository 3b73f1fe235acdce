package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// MaxRetries caps the number of retries after the first attempt. Zero means
	// only MaxElapsedTime limits the loop.
	MaxRetries uint64

	// ShouldRetry decides whether an error is worth another attempt. Nil retries everything.
	ShouldRetry ShouldRetryFunc
}

// Connectivity is the policy used when waiting for an external dependency
// (database, cache, broker) to come up at startup.
func Connectivity() Config {
	return Config{
		InitialInterval: 2 * time.Second,
		MaxInterval:     30 * time.Second,
		MaxElapsedTime:  2 * time.Minute,
		Randomization:   0.5,
		Multiplier:      2,
	}
}
