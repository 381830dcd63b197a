package downstreams

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	aurestclientapi "github.com/StephanHCB/go-autumn-restclient/api"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/eurofurence/reg-grailpay-cli/internal/logging"
)

type recordedRequest struct {
	method        string
	path          string
	authorization string
	accept        string
	contentType   string
	requestId     string
	body          string
}

func setupVendor(t *testing.T, status int, responseBody string) (string, *recordedRequest) {
	recorded := &recordedRequest{}

	router := chi.NewRouter()
	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		*recorded = recordedRequest{
			method:        r.Method,
			path:          r.URL.Path,
			authorization: r.Header.Get("Authorization"),
			accept:        r.Header.Get("Accept"),
			contentType:   r.Header.Get("Content-Type"),
			requestId:     r.Header.Get("X-Request-Id"),
			body:          string(b),
		}

		w.WriteHeader(status)
		_, _ = w.Write([]byte(responseBody))
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv.URL, recorded
}

func testCaller(t *testing.T) Caller {
	c, err := NewCaller("vendor-key", 5*time.Second)
	require.NoError(t, err)
	return c
}

func TestOutcomeOf(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		err      error
		expected Outcome
	}{
		{name: "200 is success", status: http.StatusOK, expected: Success},
		{name: "201 is success", status: http.StatusCreated, expected: Success},
		{name: "204 is success", status: http.StatusNoContent, expected: Success},
		{name: "302 is a server error", status: http.StatusFound, expected: ServerError},
		{name: "400 is a client error", status: http.StatusBadRequest, expected: ClientError},
		{name: "404 is a client error", status: http.StatusNotFound, expected: ClientError},
		{name: "500 is a server error", status: http.StatusInternalServerError, expected: ServerError},
		{name: "503 is a server error", status: http.StatusServiceUnavailable, expected: ServerError},
		{name: "an error is a transport failure", status: http.StatusOK, err: errors.New("boom"), expected: TransportFailure},
		{name: "no status is a transport failure", status: 0, expected: TransportFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, OutcomeOf(tt.status, tt.err))
		})
	}
}

func TestOutcomeString(t *testing.T) {
	require.Equal(t, "success", Success.String())
	require.Equal(t, "client error", ClientError.String())
	require.Equal(t, "server error", ServerError.String())
	require.Equal(t, "transport failure", TransportFailure.String())
	require.Equal(t, "unknown", Outcome(17).String())
}

func TestCallerPostSendsHeadersAndBody(t *testing.T) {
	url, recorded := setupVendor(t, http.StatusCreated, `{"data":{"uuid":"X"}}`)

	ctx := logging.CreateContextWithLoggerForRequestId(context.Background(), "abcd1234")
	res, err := testCaller(t).Post(ctx, url+"/api/v1/transaction", map[string]interface{}{"amount": 1000})
	require.NoError(t, err)

	require.Equal(t, http.StatusCreated, res.Status)
	require.Equal(t, Success, res.Outcome)
	require.JSONEq(t, `{"data":{"uuid":"X"}}`, string(res.Body))

	require.Equal(t, http.MethodPost, recorded.method)
	require.Equal(t, "/api/v1/transaction", recorded.path)
	require.Equal(t, "Bearer vendor-key", recorded.authorization)
	require.Equal(t, "application/json", recorded.accept)
	require.Contains(t, recorded.contentType, "application/json")
	require.Equal(t, "abcd1234", recorded.requestId)
	require.JSONEq(t, `{"amount":1000}`, recorded.body)
}

func TestCallerGetWithoutBody(t *testing.T) {
	url, recorded := setupVendor(t, http.StatusOK, `{"data":[]}`)

	res, err := testCaller(t).Get(context.Background(), url+"/api/v1/webhook", nil)
	require.NoError(t, err)

	require.Equal(t, Success, res.Outcome)
	require.Equal(t, http.MethodGet, recorded.method)
	require.Equal(t, "", recorded.body)
	require.Equal(t, "Bearer vendor-key", recorded.authorization)
}

func TestCallerClassifiesErrorStatuses(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected Outcome
	}{
		{name: "not found", status: http.StatusNotFound, body: `{"message":"not found"}`, expected: ClientError},
		{name: "unprocessable", status: http.StatusUnprocessableEntity, body: `{"errors":{}}`, expected: ClientError},
		{name: "internal error", status: http.StatusInternalServerError, body: `{"message":"oops"}`, expected: ServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, _ := setupVendor(t, tt.status, tt.body)

			res, err := testCaller(t).Delete(context.Background(), url+"/api/v1/transaction/abc", nil)
			require.NoError(t, err)
			require.Equal(t, tt.status, res.Status)
			require.Equal(t, tt.expected, res.Outcome)
			require.Equal(t, tt.body, string(res.Body))
		})
	}
}

func TestCallerPut(t *testing.T) {
	url, recorded := setupVendor(t, http.StatusOK, `{}`)

	res, err := testCaller(t).Put(context.Background(), url+"/api/v1/webhook", map[string]string{"a": "b"})
	require.NoError(t, err)
	require.Equal(t, Success, res.Outcome)
	require.Equal(t, http.MethodPut, recorded.method)
}

func TestCallerTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	res, err := testCaller(t).Get(context.Background(), url+"/api/v1/webhook", nil)
	require.Error(t, err)
	require.NotNil(t, res)
	require.Equal(t, TransportFailure, res.Outcome)
}

func TestResponseDecode(t *testing.T) {
	res := &Response{Status: http.StatusOK, Body: []byte(`{"data":{"uuid":"X"}}`)}

	var parsed struct {
		Data struct {
			Uuid string `json:"uuid"`
		} `json:"data"`
	}
	require.NoError(t, res.Decode(&parsed))
	require.Equal(t, "X", parsed.Data.Uuid)

	empty := &Response{Status: http.StatusNoContent}
	require.Error(t, empty.Decode(&parsed))
}

func TestFormatBody(t *testing.T) {
	require.Equal(t, "<empty>", FormatBody(nil))
	require.Equal(t, "not json at all", FormatBody([]byte("not json at all")))

	formatted := FormatBody([]byte(`{"a":1}`))
	require.Equal(t, "{\n    \"a\": 1\n}", formatted)

	var roundTrip map[string]int
	require.NoError(t, json.Unmarshal([]byte(formatted), &roundTrip))
}

func TestCallerFillsCallInfo(t *testing.T) {
	url, _ := setupVendor(t, http.StatusNotFound, `{}`)

	ctx, info := ContextWithCallInfo(context.Background())
	_, err := testCaller(t).Get(ctx, url+"/api/v1/transaction/abc", nil)
	require.NoError(t, err)

	require.Equal(t, http.MethodGet, info.Method)
	require.Equal(t, url+"/api/v1/transaction/abc", info.Url)
	require.Equal(t, http.StatusNotFound, info.Status)
	require.Equal(t, ClientError, info.Outcome)
}

func TestCallerKeepsBodyThatIsNotJson(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected Outcome
	}{
		{name: "json object", status: http.StatusCreated, body: `{"data":{"uuid":"X"}}`, expected: Success},
		{name: "json array", status: http.StatusOK, body: `[1,2,3]`, expected: Success},
		{name: "plain text", status: http.StatusOK, body: `accepted`, expected: Success},
		{name: "html error page", status: http.StatusBadGateway, body: `<html>bad gateway</html>`, expected: ServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, _ := setupVendor(t, tt.status, tt.body)

			res, err := testCaller(t).Get(context.Background(), url+"/api/v1/transaction/abc", nil)
			require.NoError(t, err)
			require.Equal(t, tt.expected, res.Outcome)
			require.Equal(t, tt.body, string(res.Body))
		})
	}
}

func TestCallerEmptyBody(t *testing.T) {
	url, _ := setupVendor(t, http.StatusNoContent, "")

	res, err := testCaller(t).Delete(context.Background(), url+"/api/v1/transaction/abc", nil)
	require.NoError(t, err)
	require.Equal(t, Success, res.Outcome)
	require.Empty(t, res.Body)
}

func TestIsBreakerStatusError(t *testing.T) {
	require.True(t, isBreakerStatusError(errors.New("got http status 503"), http.StatusServiceUnavailable))
	require.False(t, isBreakerStatusError(nil, http.StatusServiceUnavailable))
	require.False(t, isBreakerStatusError(errors.New("got http status 503"), http.StatusOK))
	require.False(t, isBreakerStatusError(errors.New("unexpected EOF"), http.StatusInternalServerError))
}

type fixedBodyClient struct {
	status int
	body   []byte
}

func (c *fixedBodyClient) Perform(_ context.Context, _ string, _ string, _ interface{}, response *aurestclientapi.ParsedResponse) error {
	response.Status = c.status
	if target, ok := response.Body.(**[]byte); ok {
		*target = &c.body
	}
	return nil
}

func TestRequestLoggingWrapperPassesBodyThrough(t *testing.T) {
	wrapper := NewRequestLoggingWrapper(&fixedBodyClient{status: http.StatusOK, body: []byte(`{"a":1}`)})

	var raw *[]byte
	response := aurestclientapi.ParsedResponse{Body: &raw}
	require.NoError(t, wrapper.Perform(context.Background(), http.MethodGet, "http://localhost/x", nil, &response))

	require.NotNil(t, raw)
	require.Equal(t, `{"a":1}`, string(*raw))
	require.Equal(t, http.StatusOK, response.Status)
}
