package grailpay

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/eurofurence/reg-grailpay-cli/internal/entities"
	"github.com/eurofurence/reg-grailpay-cli/internal/logging"
	"github.com/eurofurence/reg-grailpay-cli/internal/repository/downstreams"
	"github.com/eurofurence/reg-grailpay-cli/internal/repository/downstreams/endpoints"
)

type TransactionImpl struct {
	client
}

func NewTransactionApi(caller downstreams.Caller, resolver *endpoints.Resolver) TransactionApi {
	return &TransactionImpl{
		client: client{caller: caller, resolver: resolver},
	}
}

func transactionParams(transactionUuid string) map[string]string {
	return map[string]string{endpoints.ParamTransactionUuid: transactionUuid}
}

func (t *TransactionImpl) Create(ctx context.Context, payerUuid string, payeeUuid string, amountInCents int64) (string, error) {
	body := entities.Transaction{
		PayerUuid: payerUuid,
		PayeeUuid: payeeUuid,
		Amount:    amountInCents,
	}
	logging.LoggerFromContext(ctx).Info("creating transaction of %s from %s to %s", FormatCents(amountInCents), payerUuid, payeeUuid)
	return t.create(ctx, body)
}

func (t *TransactionImpl) CreateMid(ctx context.Context, payerUuid string, payeeMid string, amountInCents int64) (string, error) {
	body := entities.TransactionMid{
		PayerUuid:    payerUuid,
		ProcessorMid: payeeMid,
		Amount:       amountInCents,
	}
	logging.LoggerFromContext(ctx).Info("creating transaction of %s from %s to mid %s", FormatCents(amountInCents), payerUuid, payeeMid)
	return t.create(ctx, body)
}

func (t *TransactionImpl) create(ctx context.Context, body interface{}) (string, error) {
	response, err := t.caller.Post(ctx, t.resolver.URL(endpoints.TransactionCreate, nil), body)
	if err != nil {
		return "", err
	}
	if !accepted(ctx, "transaction create", response) {
		return "", nil
	}

	dto := uuidDataDto{}
	if err := response.Decode(&dto); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	logging.LoggerFromContext(ctx).Info("Created transaction: %s", dto.Data.Uuid)
	return dto.Data.Uuid, nil
}

func (t *TransactionImpl) Fetch(ctx context.Context, transactionUuid string) (map[string]interface{}, error) {
	response, err := t.caller.Get(ctx, t.resolver.URL(endpoints.TransactionFetch, transactionParams(transactionUuid)), nil)
	if err != nil {
		return nil, err
	}
	if !accepted(ctx, "transaction fetch", response) {
		return nil, nil
	}

	dto := objectDataDto{}
	if err := response.Decode(&dto); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return dto.Data, nil
}

func (t *TransactionImpl) List(ctx context.Context) ([]map[string]interface{}, error) {
	url := t.resolver.URL(endpoints.TransactionList, nil) + "?pageSize=" + strconv.Itoa(entities.TransactionListPageSize)
	response, err := t.caller.Get(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	if !accepted(ctx, "transaction list", response) {
		return nil, nil
	}

	dto := listDataDto{}
	if err := response.Decode(&dto); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	logging.LoggerFromContext(ctx).Info("Listed %d transactions", len(dto.Data))
	return dto.Data, nil
}

func (t *TransactionImpl) Cancel(ctx context.Context, transactionUuid string) (bool, error) {
	response, err := t.caller.Delete(ctx, t.resolver.URL(endpoints.TransactionCancel, transactionParams(transactionUuid)), nil)
	if err != nil {
		return false, err
	}
	if !accepted(ctx, "transaction cancel", response) {
		return false, nil
	}

	logging.LoggerFromContext(ctx).Info("Canceled transaction: %s", transactionUuid)
	return true, nil
}

func (t *TransactionImpl) Refund(ctx context.Context, transactionUuid string, amountInCents int64) (string, error) {
	body := entities.TransactionRefund{
		ClientReferenceId: uuid.NewString(),
		Amount:            amountInCents,
	}
	logging.LoggerFromContext(ctx).Info("refunding %s of transaction %s", FormatCents(amountInCents), transactionUuid)

	response, err := t.caller.Post(ctx, t.resolver.URL(endpoints.TransactionRefund, transactionParams(transactionUuid)), body)
	if err != nil {
		return "", err
	}
	if !accepted(ctx, "transaction refund", response) {
		return "", nil
	}

	dto := uuidDataDto{}
	if err := response.Decode(&dto); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	logging.LoggerFromContext(ctx).Info("Created refund: %s", dto.Data.Uuid)
	return dto.Data.Uuid, nil
}

func (t *TransactionImpl) FetchRefunds(ctx context.Context, transactionUuid string) ([]map[string]interface{}, error) {
	response, err := t.caller.Get(ctx, t.resolver.URL(endpoints.TransactionFetchRefunds, transactionParams(transactionUuid)), nil)
	if err != nil {
		return nil, err
	}
	if !accepted(ctx, "transaction refunds", response) {
		return nil, nil
	}

	dto := listDataDto{}
	if err := response.Decode(&dto); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return dto.Data, nil
}
