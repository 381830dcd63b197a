package endpoints

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eurofurence/reg-grailpay-cli/internal/config"
)

func TestBaseUrlFor(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		expected    string
	}{
		{
			name:        "Should select production host for production",
			environment: "production",
			expected:    ProductionBaseUrl,
		},
		{
			name:        "Should select sandbox host for sandbox",
			environment: "sandbox",
			expected:    SandboxBaseUrl,
		},
		{
			name:        "Should fall back to sandbox for anything else",
			environment: "Production",
			expected:    SandboxBaseUrl,
		},
		{
			name:        "Should fall back to sandbox when empty",
			environment: "",
			expected:    SandboxBaseUrl,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, BaseUrlFor(tt.environment))
		})
	}
}

func TestFromConfig(t *testing.T) {
	conf := config.Default()
	conf.Environment = config.EnvironmentProduction
	require.Equal(t, "https://api.grailpay.com/3p/api/v2/businesses", FromConfig(conf).URL(BusinessCreate, nil))

	conf.Api.BaseUrl = "http://localhost:9999"
	require.Equal(t, "http://localhost:9999/api/v2/businesses", FromConfig(conf).URL(BusinessCreate, nil))
}

func TestURL(t *testing.T) {
	r := New(SandboxBaseUrl + "/")

	tests := []struct {
		name     string
		template string
		params   map[string]string
		expected string
	}{
		{
			name:     "Should append plain paths to the base url",
			template: TransactionCreate,
			expected: "https://api-sandbox.grailpay.com/3p/api/v1/transaction",
		},
		{
			name:     "Should substitute the transaction uuid",
			template: TransactionFetch,
			params:   map[string]string{ParamTransactionUuid: "0a1b2c3d"},
			expected: "https://api-sandbox.grailpay.com/3p/api/v1/transaction/0a1b2c3d",
		},
		{
			name:     "Should keep the path after the placeholder",
			template: TransactionRefund,
			params:   map[string]string{ParamTransactionUuid: "0a1b2c3d"},
			expected: "https://api-sandbox.grailpay.com/3p/api/v1/transactions/0a1b2c3d/refund",
		},
		{
			name:     "Should leave the template alone without params",
			template: TransactionFetchRefunds,
			expected: "https://api-sandbox.grailpay.com/3p/api/v1/transactions/{transaction_uuid}/refunds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, r.URL(tt.template, tt.params))
		})
	}
}

func TestExpandReplacesExactlyOneOccurrence(t *testing.T) {
	res := Expand("/a/{transaction_uuid}/b/{transaction_uuid}", map[string]string{ParamTransactionUuid: "x"})
	require.Equal(t, "/a/x/b/{transaction_uuid}", res)
}

func TestExpandEscapesValues(t *testing.T) {
	res := Expand(TransactionFetch, map[string]string{ParamTransactionUuid: "a/b"})
	require.Equal(t, "/api/v1/transaction/a%2Fb", res)
}
