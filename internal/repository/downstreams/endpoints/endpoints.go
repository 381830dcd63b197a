package endpoints

import (
	"net/url"
	"strings"

	"github.com/eurofurence/reg-grailpay-cli/internal/config"
)

const (
	SandboxBaseUrl    = "https://api-sandbox.grailpay.com/3p"
	ProductionBaseUrl = "https://api.grailpay.com/3p"
)

// path templates, relative to the base url
const (
	WebhookRegister         = "/api/v1/webhook"
	WebhookDeregister       = "/api/v1/webhook"
	WebhookFetch            = "/api/v1/webhook"
	BusinessCreate          = "/api/v2/businesses"
	TransactionCreate       = "/api/v1/transaction"
	TransactionFetch        = "/api/v1/transaction/{transaction_uuid}"
	TransactionList         = "/api/v2/transactions"
	TransactionCancel       = "/api/v1/transaction/{transaction_uuid}"
	TransactionRefund       = "/api/v1/transactions/{transaction_uuid}/refund"
	TransactionFetchRefunds = "/api/v1/transactions/{transaction_uuid}/refunds"
)

// ParamTransactionUuid is the placeholder name used in the transaction path templates.
const ParamTransactionUuid = "transaction_uuid"

type Resolver struct {
	baseUrl string
}

// BaseUrlFor selects the vendor host for an environment. Anything but production is the sandbox.
func BaseUrlFor(environment string) string {
	if environment == config.EnvironmentProduction {
		return ProductionBaseUrl
	}
	return SandboxBaseUrl
}

func New(baseUrl string) *Resolver {
	return &Resolver{
		baseUrl: strings.TrimSuffix(baseUrl, "/"),
	}
}

// FromConfig honours api.base_url and otherwise picks the host by environment.
func FromConfig(conf *config.Application) *Resolver {
	if conf.Api.BaseUrl != "" {
		return New(conf.Api.BaseUrl)
	}
	return New(BaseUrlFor(conf.Environment))
}

func (r *Resolver) BaseUrl() string {
	return r.baseUrl
}

// URL builds the full url for a path template. Each {name} placeholder that has a value in params
// is replaced once, the rest of the path is left alone.
func (r *Resolver) URL(template string, params map[string]string) string {
	return r.baseUrl + Expand(template, params)
}

func Expand(template string, params map[string]string) string {
	path := template
	for name, value := range params {
		path = strings.Replace(path, "{"+name+"}", url.PathEscape(value), 1)
	}
	return path
}
