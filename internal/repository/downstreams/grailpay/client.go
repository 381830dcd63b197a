package grailpay

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/eurofurence/reg-grailpay-cli/internal/logging"
	"github.com/eurofurence/reg-grailpay-cli/internal/repository/downstreams"
	"github.com/eurofurence/reg-grailpay-cli/internal/repository/downstreams/endpoints"
)

var ErrMalformedResponse = errors.New("vendor response could not be parsed")

type client struct {
	caller   downstreams.Caller
	resolver *endpoints.Resolver
}

// accepted tells whether the response counts as success, and logs why not otherwise.
func accepted(ctx context.Context, operation string, response *downstreams.Response) bool {
	if response.Outcome == downstreams.Success {
		return true
	}
	logging.LoggerFromContext(ctx).Warn("%s was not accepted: %d %s", operation, response.Status, response.Outcome)
	return false
}

// FormatCents renders an amount in cents as dollars with two decimals.
func FormatCents(cents int64) string {
	return "$" + decimal.New(cents, -2).StringFixed(2)
}
