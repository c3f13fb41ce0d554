package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

const (
	maxStorageAttempts = 3
	storageRetryDelay  = 50 * time.Millisecond
)

// withRetries runs op up to maxStorageAttempts times with a short delay
// between attempts. Validation and conflict errors are returned as-is and
// never retried; when retries are exhausted the last error is surfaced
// wrapped in ErrUnavailable.
func withRetries(ctx context.Context, name string, op func() error) error {
	var err error
	for attempt := 1; attempt <= maxStorageAttempts; attempt++ {
		err = op()
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrInvalidArgument) || errors.Is(err, ErrNotFound) || errors.Is(err, ErrMatchImmutable) {
			return err
		}
		log.Printf("⚠️ %s failed (attempt %d/%d): %v", name, attempt, maxStorageAttempts, err)
		if attempt == maxStorageAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%s: %w", name, ctx.Err())
		case <-time.After(storageRetryDelay):
		}
	}
	return fmt.Errorf("%s: %w: %v", name, ErrUnavailable, err)
}
