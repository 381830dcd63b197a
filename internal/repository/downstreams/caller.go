package downstreams

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	aurestclientapi "github.com/StephanHCB/go-autumn-restclient/api"
)

// Outcome is the classification of a vendor call, derived once from the status code.
type Outcome int

const (
	Success Outcome = iota
	ClientError
	ServerError
	TransportFailure
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case ClientError:
		return "client error"
	case ServerError:
		return "server error"
	case TransportFailure:
		return "transport failure"
	}
	return "unknown"
}

// OutcomeOf classifies a call. Anything that is neither 2xx nor 4xx counts as a server error,
// including redirects, which the vendor api never sends on purpose.
func OutcomeOf(status int, err error) Outcome {
	switch {
	case err != nil || status == 0:
		return TransportFailure
	case status >= 200 && status < 300:
		return Success
	case status >= 400 && status < 500:
		return ClientError
	default:
		return ServerError
	}
}

type Response struct {
	Status  int
	Outcome Outcome
	Header  http.Header
	Body    []byte
}

// Decode parses the response body as json into v.
func (r *Response) Decode(v interface{}) error {
	if len(r.Body) == 0 {
		return fmt.Errorf("empty response body with status %d", r.Status)
	}
	return json.Unmarshal(r.Body, v)
}

// CallInfo describes the last call made with a context obtained from ContextWithCallInfo.
type CallInfo struct {
	Method  string
	Url     string
	Status  int
	Outcome Outcome
}

type callInfoKey struct{}

// ContextWithCallInfo returns a context that makes the caller fill in the returned CallInfo.
func ContextWithCallInfo(ctx context.Context) (context.Context, *CallInfo) {
	info := &CallInfo{}
	return context.WithValue(ctx, callInfoKey{}, info), info
}

// Caller performs authenticated json calls against the vendor api.
//
// A transport failure is returned as error together with a Response whose Outcome is
// TransportFailure. Any response that was received, whatever its status, is not an error.
type Caller interface {
	Get(ctx context.Context, url string, body interface{}) (*Response, error)
	Post(ctx context.Context, url string, body interface{}) (*Response, error)
	Put(ctx context.Context, url string, body interface{}) (*Response, error)
	Delete(ctx context.Context, url string, body interface{}) (*Response, error)
}

type callerImpl struct {
	client aurestclientapi.Client
}

func NewCaller(apiKey string, requestTimeout time.Duration) (Caller, error) {
	client, err := ClientWith(BearerTokenRequestManipulator(apiKey), "grailpay-breaker", requestTimeout)
	if err != nil {
		return nil, err
	}

	return NewCallerWithClient(client), nil
}

func NewCallerWithClient(client aurestclientapi.Client) Caller {
	return &callerImpl{
		client: client,
	}
}

func (c *callerImpl) Get(ctx context.Context, url string, body interface{}) (*Response, error) {
	return c.perform(ctx, http.MethodGet, url, body)
}

func (c *callerImpl) Post(ctx context.Context, url string, body interface{}) (*Response, error) {
	return c.perform(ctx, http.MethodPost, url, body)
}

func (c *callerImpl) Put(ctx context.Context, url string, body interface{}) (*Response, error) {
	return c.perform(ctx, http.MethodPut, url, body)
}

func (c *callerImpl) Delete(ctx context.Context, url string, body interface{}) (*Response, error) {
	return c.perform(ctx, http.MethodDelete, url, body)
}

func (c *callerImpl) perform(ctx context.Context, method string, url string, body interface{}) (*Response, error) {
	var raw *[]byte
	response := aurestclientapi.ParsedResponse{
		// only a **[]byte makes the rest client hand over the body without parsing it
		Body: &raw,
	}

	err := c.client.Perform(ctx, method, url, body, &response)
	if isBreakerStatusError(err, response.Status) {
		// the breaker reports server errors so it can count them, but an answer did arrive
		err = nil
	}

	res := &Response{
		Status:  response.Status,
		Outcome: OutcomeOf(response.Status, err),
		Header:  response.Header,
	}
	if raw != nil {
		res.Body = *raw
	}
	if info, ok := ctx.Value(callInfoKey{}).(*CallInfo); ok {
		*info = CallInfo{
			Method:  method,
			Url:     url,
			Status:  res.Status,
			Outcome: res.Outcome,
		}
	}

	if err != nil {
		return res, fmt.Errorf("%s %s failed: %w", method, url, err)
	}
	return res, nil
}

func isBreakerStatusError(err error, status int) bool {
	return err != nil && status >= 500 && err.Error() == fmt.Sprintf("got http status %d", status)
}
