package batch

import "errors"

// Validate decides whether a batch of numInputs items may run with the
// requested concurrency. All failed checks are reported together.
func Validate(requested, numInputs int, usage Usage) error {
	var errs []error
	if requested > 0 && requested > usage.MaxConcurrency {
		errs = append(errs, &PlanLimitError{
			Requested: requested,
			Limit:     usage.MaxConcurrency,
		})
	}
	if usage.Credits > 0 && numInputs > usage.Credits {
		errs = append(errs, &CreditsError{
			Requested: numInputs,
			Available: usage.Credits,
		})
	}
	return errors.Join(errs...)
}

// ResolveConcurrency returns the requested concurrency if it was set,
// otherwise the plan's limit.
func ResolveConcurrency(requested int, usage Usage) int {
	if requested > 0 {
		return requested
	}
	return usage.MaxConcurrency
}
