package scrapingbee

import (
	"context"
	"fmt"

	"scrapingbee-cli/lib/batch"
)

// StatusError is the error for an API response with a status of 400 or
// above.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// Call performs one endpoint request for a single batch input.
type Call func(ctx context.Context, input string) (Response, error)

// BatchWorker adapts call into a batch worker. Transport failures become
// (nil, 0, err), statuses >= 400 keep their body so it can be saved next to
// the error.
func BatchWorker(call Call) batch.WorkerFunc {
	return func(ctx context.Context, input string) ([]byte, int, error) {
		res, err := call(ctx, input)
		if err != nil {
			return nil, 0, err
		}
		if res.StatusCode >= 400 {
			return res.Body, res.StatusCode, &StatusError{StatusCode: res.StatusCode}
		}
		return res.Body, res.StatusCode, nil
	}
}
