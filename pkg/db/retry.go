package db

import (
	"context"
	"time"

	"github.com/Knoblauchpilze/backend-toolkit/pkg/errors"
	"github.com/Knoblauchpilze/backend-toolkit/pkg/logger"
)

type RetryPolicy struct {
	Attempts int
	Delay    time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Attempts: 5,
		Delay:    5 * time.Second,
	}
}

// ConnectWithRetry pings the store until it answers or the policy is
// exhausted. It is meant for process startup only: request handlers should
// surface a failed lease right away.
func ConnectWithRetry(
	ctx context.Context, conn Connection, policy RetryPolicy, log logger.Logger,
) error {
	attempts := max(policy.Attempts, 1)

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = conn.Ping(ctx)
		if err == nil {
			log.Infof("Connected to the database (attempt %d/%d)", attempt, attempts)
			return nil
		}

		if attempt == attempts {
			break
		}

		log.Warnf(
			"Failed to connect to the database (attempt %d/%d), retrying in %v: %v",
			attempt,
			attempts,
			policy.Delay,
			err,
		)

		timer := time.NewTimer(policy.Delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return errors.WrapCode(ctx.Err(), NotConnected)
		case <-timer.C:
		}
	}

	log.Errorf("Giving up connecting to the database after %d attempt(s): %v", attempts, err)
	return err
}
