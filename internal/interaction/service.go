package interaction

import (
	"context"
	"errors"

	"github.com/eurofurence/reg-grailpay-cli/internal/entities"
	"github.com/eurofurence/reg-grailpay-cli/internal/logging"
	"github.com/eurofurence/reg-grailpay-cli/internal/repository/database"
	"github.com/eurofurence/reg-grailpay-cli/internal/repository/downstreams/grailpay"
)

var _ Interactor = (*serviceInteractor)(nil)

var (
	ErrWebhookUrlMissing = errors.New("webhook.url is not configured")
	ErrMalformedEvent    = errors.New("webhook notification is not a json object with an event_name")
)

// Interactor runs one vendor operation per call and journals its outcome.
//
// Results follow the resource clients: the empty value with a nil error means the vendor
// refused, an error means no answer was received.
type Interactor interface {
	RegisterWebhook(ctx context.Context) (bool, error)
	DeregisterWebhook(ctx context.Context) (bool, error)
	FetchWebhooks(ctx context.Context) ([]entities.WebhookSubscription, error)

	CreateBusiness(ctx context.Context) (string, error)

	CreateTransaction(ctx context.Context, payerUuid string, payeeUuid string, amountInCents int64) (string, error)
	CreateTransactionMid(ctx context.Context, payerUuid string, payeeMid string, amountInCents int64) (string, error)
	FetchTransaction(ctx context.Context, transactionUuid string) (map[string]interface{}, error)
	ListTransactions(ctx context.Context) ([]map[string]interface{}, error)
	CancelTransaction(ctx context.Context, transactionUuid string) (bool, error)
	RefundTransaction(ctx context.Context, transactionUuid string, amountInCents int64) (string, error)
	FetchRefunds(ctx context.Context, transactionUuid string) ([]map[string]interface{}, error)

	History(ctx context.Context, query entities.JournalQuery) ([]entities.CallRecord, error)
	ReceiveWebhookEvent(ctx context.Context, payload []byte) (*entities.WebhookEvent, error)
	RecentWebhookEvents(ctx context.Context, limit int) ([]entities.WebhookEvent, error)
}

type serviceInteractor struct {
	logger            logging.Logger
	store             database.Repository
	businessClient    grailpay.BusinessApi
	transactionClient grailpay.TransactionApi
	webhookClient     grailpay.WebhookApi
	webhookUrl        string
}

func NewServiceInteractor(r database.Repository,
	businessClient grailpay.BusinessApi,
	transactionClient grailpay.TransactionApi,
	webhookClient grailpay.WebhookApi,
	webhookUrl string,
	logger logging.Logger,
) (Interactor, error) {
	if r == nil {
		return nil, errors.New("repository must not be nil")
	}

	if businessClient == nil {
		return nil, errors.New("no business client provided")
	}

	if transactionClient == nil {
		return nil, errors.New("no transaction client provided")
	}

	if webhookClient == nil {
		return nil, errors.New("no webhook client provided")
	}

	return &serviceInteractor{
		logger:            logger,
		store:             r,
		businessClient:    businessClient,
		transactionClient: transactionClient,
		webhookClient:     webhookClient,
		webhookUrl:        webhookUrl,
	}, nil
}
