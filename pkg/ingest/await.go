package ingest

import (
	"context"
	"errors"
	"time"
)

// ErrAwaitTimeout is returned when a condition is still unmet after every attempt
var ErrAwaitTimeout = errors.New("condition not met")

// Condition reports whether the awaited state has been reached. An error stops the wait.
type Condition func(ctx context.Context) (bool, error)

// Await checks cond up to attempts times, waiting interval between checks.
// It returns ErrAwaitTimeout once the attempts are used up and ctx.Err() if ctx is done first.
func Await(ctx context.Context, attempts int, interval time.Duration, cond Condition) error {
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; ; attempt++ {
		ok, err := cond(ctx)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}

		if attempt >= attempts {
			return ErrAwaitTimeout
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}
