package fapshi

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Poll schedule for AwaitFinalStatus. Package vars so tests can tighten them.
var (
	awaitInitialInterval = 2 * time.Second
	awaitMaxInterval     = 30 * time.Second
)

// AwaitFinalStatus polls GetPaymentStatus on an exponential schedule until
// the transaction reaches a terminal status (SUCCESSFUL, FAILED or EXPIRED)
// and returns it. The call blocks; bound it with a context deadline sized to
// the payment flow, e.g. a few minutes for a direct payment the payer must
// confirm on their handset.
//
// Errors from a poll are returned immediately, nothing is retried.
func (c *Client) AwaitFinalStatus(ctx context.Context, transID string) (*Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = awaitInitialInterval
	exp.Multiplier = 2
	exp.MaxInterval = awaitMaxInterval
	exp.MaxElapsedTime = 0 // the context bounds the wait
	exp.Reset()

	for {
		tx, err := c.GetPaymentStatus(ctx, transID)
		if err != nil {
			return nil, err
		}
		if tx.Status.Final() {
			return tx, nil
		}
		wait := exp.NextBackOff()
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}
