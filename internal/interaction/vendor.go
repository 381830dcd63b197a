package interaction

import (
	"context"

	"github.com/eurofurence/reg-grailpay-cli/internal/entities"
	"github.com/eurofurence/reg-grailpay-cli/internal/logging"
	"github.com/eurofurence/reg-grailpay-cli/internal/repository/downstreams"
)

// operation names as they appear in the journal, identical to the command verbs
const (
	OpWebhookRegister      = "webhook:register"
	OpWebhookDeregister    = "webhook:deregister"
	OpWebhookFetch         = "webhook:fetch"
	OpBusinessCreate       = "business:create"
	OpTransactionCreate    = "transaction:create"
	OpTransactionCreateMid = "transaction:create_mid"
	OpTransactionFetch     = "transaction:fetch"
	OpTransactionList      = "transaction:list"
	OpTransactionCancel    = "transaction:cancel"
	OpTransactionRefund    = "transaction:refund"
	OpTransactionRefunds   = "transaction:refunds"
)

func (s *serviceInteractor) RegisterWebhook(ctx context.Context) (bool, error) {
	if s.webhookUrl == "" {
		return false, ErrWebhookUrlMissing
	}

	callCtx, info := downstreams.ContextWithCallInfo(ctx)
	ok, err := s.webhookClient.Register(callCtx, s.webhookUrl)
	s.journal(ctx, OpWebhookRegister, info, s.webhookUrl, err)
	return ok, err
}

func (s *serviceInteractor) DeregisterWebhook(ctx context.Context) (bool, error) {
	if s.webhookUrl == "" {
		return false, ErrWebhookUrlMissing
	}

	callCtx, info := downstreams.ContextWithCallInfo(ctx)
	ok, err := s.webhookClient.Deregister(callCtx, s.webhookUrl)
	s.journal(ctx, OpWebhookDeregister, info, s.webhookUrl, err)
	return ok, err
}

func (s *serviceInteractor) FetchWebhooks(ctx context.Context) ([]entities.WebhookSubscription, error) {
	callCtx, info := downstreams.ContextWithCallInfo(ctx)
	subscriptions, err := s.webhookClient.Fetch(callCtx)
	s.journal(ctx, OpWebhookFetch, info, "", err)
	return subscriptions, err
}

func (s *serviceInteractor) CreateBusiness(ctx context.Context) (string, error) {
	callCtx, info := downstreams.ContextWithCallInfo(ctx)
	businessUuid, err := s.businessClient.Create(callCtx)
	s.journal(ctx, OpBusinessCreate, info, businessUuid, err)
	return businessUuid, err
}

func (s *serviceInteractor) CreateTransaction(ctx context.Context, payerUuid string, payeeUuid string, amountInCents int64) (string, error) {
	callCtx, info := downstreams.ContextWithCallInfo(ctx)
	transactionUuid, err := s.transactionClient.Create(callCtx, payerUuid, payeeUuid, amountInCents)
	s.journal(ctx, OpTransactionCreate, info, transactionUuid, err)
	return transactionUuid, err
}

func (s *serviceInteractor) CreateTransactionMid(ctx context.Context, payerUuid string, payeeMid string, amountInCents int64) (string, error) {
	callCtx, info := downstreams.ContextWithCallInfo(ctx)
	transactionUuid, err := s.transactionClient.CreateMid(callCtx, payerUuid, payeeMid, amountInCents)
	s.journal(ctx, OpTransactionCreateMid, info, transactionUuid, err)
	return transactionUuid, err
}

func (s *serviceInteractor) FetchTransaction(ctx context.Context, transactionUuid string) (map[string]interface{}, error) {
	callCtx, info := downstreams.ContextWithCallInfo(ctx)
	transaction, err := s.transactionClient.Fetch(callCtx, transactionUuid)
	s.journal(ctx, OpTransactionFetch, info, transactionUuid, err)
	return transaction, err
}

func (s *serviceInteractor) ListTransactions(ctx context.Context) ([]map[string]interface{}, error) {
	callCtx, info := downstreams.ContextWithCallInfo(ctx)
	transactions, err := s.transactionClient.List(callCtx)
	s.journal(ctx, OpTransactionList, info, "", err)
	return transactions, err
}

func (s *serviceInteractor) CancelTransaction(ctx context.Context, transactionUuid string) (bool, error) {
	callCtx, info := downstreams.ContextWithCallInfo(ctx)
	ok, err := s.transactionClient.Cancel(callCtx, transactionUuid)
	s.journal(ctx, OpTransactionCancel, info, transactionUuid, err)
	return ok, err
}

func (s *serviceInteractor) RefundTransaction(ctx context.Context, transactionUuid string, amountInCents int64) (string, error) {
	callCtx, info := downstreams.ContextWithCallInfo(ctx)
	refundUuid, err := s.transactionClient.Refund(callCtx, transactionUuid, amountInCents)
	// the refund has its own uuid, but it is looked up by transaction
	s.journal(ctx, OpTransactionRefund, info, transactionUuid, err)
	return refundUuid, err
}

func (s *serviceInteractor) FetchRefunds(ctx context.Context, transactionUuid string) ([]map[string]interface{}, error) {
	callCtx, info := downstreams.ContextWithCallInfo(ctx)
	refunds, err := s.transactionClient.FetchRefunds(callCtx, transactionUuid)
	s.journal(ctx, OpTransactionRefunds, info, transactionUuid, err)
	return refunds, err
}

// journal records the outcome of a call. Failing to write the journal never fails the command.
func (s *serviceInteractor) journal(ctx context.Context, operation string, info *downstreams.CallInfo, resourceUuid string, callErr error) {
	record := entities.CallRecord{
		RequestId:    logging.RequestIdFromContext(ctx),
		Operation:    operation,
		Method:       info.Method,
		Url:          info.Url,
		Status:       info.Status,
		ResourceUuid: resourceUuid,
	}
	if info.Method != "" {
		record.Outcome = info.Outcome.String()
	} else if callErr != nil {
		record.Outcome = downstreams.TransportFailure.String()
	}
	if callErr != nil {
		// an answer may have arrived but been unusable, the outcome then still reflects its status
		record.Detail = callErr.Error()
	}

	if err := s.store.CreateCallRecord(ctx, record); err != nil {
		logging.LoggerFromContext(ctx).Warn("could not journal %s: %s", operation, err.Error())
	}
}
