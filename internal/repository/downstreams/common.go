package downstreams

import (
	"context"
	"net/http"
	"time"

	aurestbreaker "github.com/StephanHCB/go-autumn-restclient-circuitbreaker/implementation/breaker"
	aurestclientapi "github.com/StephanHCB/go-autumn-restclient/api"
	auresthttpclient "github.com/StephanHCB/go-autumn-restclient/implementation/httpclient"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-http-utils/headers"

	"github.com/eurofurence/reg-grailpay-cli/internal/logging"
)

const contentTypeApplicationJson = "application/json"

func BearerTokenRequestManipulator(apiKey string) aurestclientapi.RequestManipulatorCallback {
	return func(ctx context.Context, r *http.Request) {
		r.Header.Set(headers.Authorization, "Bearer "+apiKey)
		r.Header.Set(headers.Accept, contentTypeApplicationJson)
		if r.Body != nil && r.Header.Get(headers.ContentType) == "" {
			r.Header.Set(headers.ContentType, contentTypeApplicationJson)
		}
		r.Header.Set(middleware.RequestIDHeader, logging.RequestIdFromContext(ctx))
	}
}

func ClientWith(requestManipulator aurestclientapi.RequestManipulatorCallback, circuitBreakerName string, requestTimeout time.Duration) (aurestclientapi.Client, error) {
	httpClient, err := auresthttpclient.New(0, nil, requestManipulator)
	if err != nil {
		return nil, err
	}

	requestLoggingClient := NewRequestLoggingWrapper(httpClient)

	circuitBreakerClient := aurestbreaker.New(requestLoggingClient,
		circuitBreakerName,
		10,
		2*time.Minute,
		30*time.Second,
		requestTimeout,
	)

	return circuitBreakerClient, nil
}
