package uow

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// Aborts that Within replays. Room row locks make concurrent bookings wait, not fail.
var retryableCodes = map[string]struct{}{
	"40001": {}, // serialization_failure
	"40P01": {}, // deadlock_detected
}

type retryPolicy struct {
	maxRetries int
	base       time.Duration
}

var defaultRetry = retryPolicy{maxRetries: 3, base: 50 * time.Millisecond}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	_, ok := retryableCodes[pgErr.Code]
	return ok
}

// backoff doubles per attempt with up to 20% jitter.
func (p retryPolicy) backoff(attempt int) time.Duration {
	d := p.base << attempt
	if j := int64(d / 5); j > 0 {
		d += time.Duration(rand.Int64N(j))
	}
	return d
}

func (p retryPolicy) wait(ctx context.Context, attempt int) error {
	t := time.NewTimer(p.backoff(attempt))
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
