package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
)

const (
	DefaultMaxConcurrency = 5
	maxConcurrencyCeiling = 10000
)

// Usage is the part of the account usage document that sizes a batch run.
type Usage struct {
	MaxConcurrency int
	// Credits of 0 disables the credit check.
	Credits int
	// CreditsKnown is false when the usage document had no recognizable
	// credit field and Credits is only the default.
	CreditsKnown bool
}

func DefaultUsage() Usage {
	return Usage{MaxConcurrency: DefaultMaxConcurrency}
}

// UsageFunc calls the remote usage endpoint.
type UsageFunc func(ctx context.Context) (body []byte, statusCode int, err error)

// FetchUsage calls the usage endpoint and parses its response. Only transport
// failures and non-200 statuses are errors, an unreadable body falls back to
// DefaultUsage.
func FetchUsage(ctx context.Context, fetch UsageFunc) (Usage, error) {
	body, status, err := fetch(ctx)
	if err != nil {
		return Usage{}, fmt.Errorf("fetch usage: %w", err)
	}
	if status != 200 {
		return Usage{}, &UsageStatusError{StatusCode: status}
	}
	return ParseUsage(body), nil
}

type usageField struct {
	name   string
	accept func(v float64) bool
}

func positiveConcurrency(v float64) bool {
	return v > 0 && v <= maxConcurrencyCeiling
}

func nonNegative(v float64) bool {
	return v >= 0
}

// aliases in priority order, the first accepted value wins
var concurrencyFields = []usageField{
	{name: "max_concurrency", accept: positiveConcurrency},
	{name: "max_concurrent_requests", accept: positiveConcurrency},
	{name: "concurrent_request_limit", accept: positiveConcurrency},
	{name: "concurrency", accept: positiveConcurrency},
	{name: "concurrent_requests", accept: positiveConcurrency},
}

var creditFields = []usageField{
	{name: "credits", accept: nonNegative},
	{name: "available_credits", accept: nonNegative},
	{name: "credit_balance", accept: nonNegative},
	{name: "balance", accept: nonNegative},
	{name: "credits_remaining", accept: nonNegative},
	{name: "remaining_credits", accept: nonNegative},
}

func lookup(doc map[string]any, fields []usageField) (int, bool) {
	for _, f := range fields {
		v, ok := doc[f.name].(float64)
		if !ok || !f.accept(v) {
			continue
		}
		return clampInt(v), true
	}
	return 0, false
}

// clampInt truncates v towards zero, saturating at the int range.
func clampInt(v float64) int {
	switch {
	case v >= math.MaxInt:
		return math.MaxInt
	case v <= math.MinInt:
		return math.MinInt
	}
	return int(v)
}

// ParseUsage extracts the concurrency limit and remaining credits from a
// usage document.
func ParseUsage(body []byte) Usage {
	out := DefaultUsage()

	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil || doc == nil {
		return out
	}

	if n, ok := lookup(doc, concurrencyFields); ok {
		out.MaxConcurrency = n
	}

	if n, ok := lookup(doc, creditFields); ok {
		out.Credits = n
		out.CreditsKnown = true
		return out
	}

	maxCredit, okMax := doc["max_api_credit"].(float64)
	usedCredit, okUsed := doc["used_api_credit"].(float64)
	if okMax && okUsed {
		available := math.Trunc(maxCredit) - math.Trunc(usedCredit)
		if available >= 0 {
			out.Credits = clampInt(available)
			out.CreditsKnown = true
		}
	}
	return out
}
