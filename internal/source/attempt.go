package source

import (
	"context"
	"errors"

	backoff "github.com/cenkalti/backoff/v4"
)

// FirstSuccess calls op with 0..variants-1 until one call succeeds. Every
// variant is tried at most once, with no delay in between. An error wrapping
// ErrConfiguration stops the sequence immediately. The error of the last
// attempt is returned.
func FirstSuccess(ctx context.Context, variants int, op func(ctx context.Context, variant int) error) error {
	if variants < 1 {
		return nil
	}
	variant := 0
	operation := func() error {
		err := op(ctx, variant)
		variant++
		if err != nil && errors.Is(err, ErrConfiguration) {
			return backoff.Permanent(err)
		}
		return err
	}
	bo := backoff.WithContext(backoff.WithMaxRetries(&backoff.ZeroBackOff{}, uint64(variants-1)), ctx)
	return backoff.Retry(operation, bo)
}
