package errors

import (
	"context"
)

// CheckContext returns an error if the context is canceled or timed out.
// The improvement stream calls this between iterations so an unreachable
// optimum can still be abandoned by the caller.
func CheckContext(ctx context.Context, operation string) error {
	if err := ctx.Err(); err != nil {
		return Wrap(err, Canceled, operation+" canceled")
	}
	return nil
}
