package batch

import (
	"errors"
	"fmt"
)

var ErrEmptyInput = errors.New("input has no non-empty lines")

// PlanLimitError is returned when the requested concurrency is higher than
// what the account's plan allows.
type PlanLimitError struct {
	Requested int
	Limit     int
}

func (e *PlanLimitError) Error() string {
	return fmt.Sprintf(
		"concurrency %d exceeds your plan limit of %d (check with: scrapingbee usage)",
		e.Requested, e.Limit,
	)
}

// CreditsError is returned when a batch has more inputs than the account has
// credits left.
type CreditsError struct {
	Requested int
	Available int
}

func (e *CreditsError) Error() string {
	return fmt.Sprintf(
		"not enough credits: %d requested, %d available (check with: scrapingbee usage)",
		e.Requested, e.Available,
	)
}

type UsageStatusError struct {
	StatusCode int
}

func (e *UsageStatusError) Error() string {
	return fmt.Sprintf("usage API returned HTTP %d", e.StatusCode)
}
