package downstreams

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	aurestclientapi "github.com/StephanHCB/go-autumn-restclient/api"

	"github.com/eurofurence/reg-grailpay-cli/internal/logging"
)

// custom implementation so payload and response body end up in our own debug log

type RequestLoggingImpl struct {
	Wrapped aurestclientapi.Client
}

func NewRequestLoggingWrapper(wrapped aurestclientapi.Client) aurestclientapi.Client {
	return &RequestLoggingImpl{
		Wrapped: wrapped,
	}
}

func (c *RequestLoggingImpl) Perform(ctx context.Context, method string, requestUrl string, requestBody interface{}, response *aurestclientapi.ParsedResponse) error {
	logger := logging.LoggerFromContext(ctx)

	logger.Info("calling %s %s", method, requestUrl)
	if requestBody != nil {
		logger.Debug("request body: %s", formatRequestBody(requestBody))
	}

	before := time.Now()
	err := c.Wrapped.Perform(ctx, method, requestUrl, requestBody, response)
	millis := time.Since(before).Milliseconds()

	if err != nil {
		logger.Warn("downstream %s %s -> %d FAILED (%d ms): %s", method, requestUrl, response.Status, millis, err.Error())
		return err
	}

	logger.Info("downstream %s %s -> %d %s (%d ms)", method, requestUrl, response.Status, OutcomeOf(response.Status, nil), millis)
	if raw, ok := response.Body.(**[]byte); ok && raw != nil && *raw != nil {
		logger.Debug("response body: %s", FormatBody(**raw))
	}
	return nil
}

func formatRequestBody(body interface{}) string {
	marshalled, err := json.Marshal(body)
	if err != nil {
		return "<unprintable>"
	}
	return FormatBody(marshalled)
}

// FormatBody pretty prints a json body and falls back to the raw text when it does not parse.
func FormatBody(body []byte) string {
	if len(body) == 0 {
		return "<empty>"
	}

	var indented bytes.Buffer
	if err := json.Indent(&indented, body, "", "    "); err != nil {
		return string(body)
	}
	return indented.String()
}
