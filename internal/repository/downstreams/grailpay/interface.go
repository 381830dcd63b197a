package grailpay

//go:generate mockgen -source=interface.go -destination=mocks/mock_grailpay.go -package=mocks

import (
	"context"

	"github.com/eurofurence/reg-grailpay-cli/internal/entities"
)

// Every operation returns its empty sentinel ("", false, nil) with a nil error when the vendor
// answered with anything but a 2xx status. The error is only set when no answer was received.

type BusinessApi interface {
	// Create onboards a freshly generated test business and returns its uuid.
	Create(ctx context.Context) (string, error)
}

type TransactionApi interface {
	Create(ctx context.Context, payerUuid string, payeeUuid string, amountInCents int64) (string, error)
	CreateMid(ctx context.Context, payerUuid string, payeeMid string, amountInCents int64) (string, error)
	Fetch(ctx context.Context, transactionUuid string) (map[string]interface{}, error)
	List(ctx context.Context) ([]map[string]interface{}, error)
	Cancel(ctx context.Context, transactionUuid string) (bool, error)
	Refund(ctx context.Context, transactionUuid string, amountInCents int64) (string, error)
	FetchRefunds(ctx context.Context, transactionUuid string) ([]map[string]interface{}, error)
}

type WebhookApi interface {
	Register(ctx context.Context, webhookUrl string) (bool, error)
	Deregister(ctx context.Context, webhookUrl string) (bool, error)
	Fetch(ctx context.Context) ([]entities.WebhookSubscription, error)
}

type uuidDataDto struct {
	Data struct {
		Uuid string `json:"uuid"`
	} `json:"data"`
}

type objectDataDto struct {
	Data map[string]interface{} `json:"data"`
}

type listDataDto struct {
	Data []map[string]interface{} `json:"data"`
}

type subscriptionsDataDto struct {
	Data []entities.WebhookSubscription `json:"data"`
}
