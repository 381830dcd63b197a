package interaction

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/eurofurence/reg-grailpay-cli/internal/entities"
	"github.com/eurofurence/reg-grailpay-cli/internal/logging"
	"github.com/eurofurence/reg-grailpay-cli/internal/repository/database"
	"github.com/eurofurence/reg-grailpay-cli/internal/repository/database/inmemory"
	"github.com/eurofurence/reg-grailpay-cli/internal/repository/downstreams"
	"github.com/eurofurence/reg-grailpay-cli/internal/repository/downstreams/endpoints"
	"github.com/eurofurence/reg-grailpay-cli/internal/repository/downstreams/grailpay"
	"github.com/eurofurence/reg-grailpay-cli/internal/repository/downstreams/grailpay/mocks"
)

const testWebhookUrl = "https://example.com/hook"

type fixture struct {
	cut         Interactor
	repo        database.Repository
	business    *mocks.MockBusinessApi
	transaction *mocks.MockTransactionApi
	webhook     *mocks.MockWebhookApi
}

func setup(t *testing.T, webhookUrl string) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:        inmemory.NewInMemoryProvider(),
		business:    mocks.NewMockBusinessApi(ctrl),
		transaction: mocks.NewMockTransactionApi(ctrl),
		webhook:     mocks.NewMockWebhookApi(ctrl),
	}

	cut, err := NewServiceInteractor(f.repo, f.business, f.transaction, f.webhook, webhookUrl, logging.NewNoopLogger())
	require.NoError(t, err)
	f.cut = cut

	return f
}

func testContext() context.Context {
	return logging.CreateContextWithLoggerForRequestId(context.Background(), "abcd1234")
}

func TestNewServiceInteractor(t *testing.T) {
	ctrl := gomock.NewController(t)

	type args struct {
		repo        database.Repository
		business    grailpay.BusinessApi
		transaction grailpay.TransactionApi
		webhook     grailpay.WebhookApi
	}

	tests := []struct {
		name        string
		args        args
		expectedErr string
	}{
		{
			name:        "should return error when repository is missing",
			expectedErr: "repository must not be nil",
		},
		{
			name: "should return error when business client is missing",
			args: args{
				repo: inmemory.NewInMemoryProvider(),
			},
			expectedErr: "no business client provided",
		},
		{
			name: "should return error when transaction client is missing",
			args: args{
				repo:     inmemory.NewInMemoryProvider(),
				business: mocks.NewMockBusinessApi(ctrl),
			},
			expectedErr: "no transaction client provided",
		},
		{
			name: "should return error when webhook client is missing",
			args: args{
				repo:        inmemory.NewInMemoryProvider(),
				business:    mocks.NewMockBusinessApi(ctrl),
				transaction: mocks.NewMockTransactionApi(ctrl),
			},
			expectedErr: "no webhook client provided",
		},
		{
			name: "should succeed when all values are set",
			args: args{
				repo:        inmemory.NewInMemoryProvider(),
				business:    mocks.NewMockBusinessApi(ctrl),
				transaction: mocks.NewMockTransactionApi(ctrl),
				webhook:     mocks.NewMockWebhookApi(ctrl),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, err := NewServiceInteractor(tt.args.repo, tt.args.business, tt.args.transaction, tt.args.webhook, testWebhookUrl, logging.NewNoopLogger())
			if tt.expectedErr != "" {
				require.EqualError(t, err, tt.expectedErr)
				require.Nil(t, i)
			} else {
				require.NoError(t, err)
				require.NotNil(t, i)
			}
		})
	}
}

func history(t *testing.T, f fixture) []entities.CallRecord {
	records, err := f.cut.History(context.Background(), entities.JournalQuery{})
	require.NoError(t, err)
	return records
}

func TestCreateTransactionIsJournaled(t *testing.T) {
	f := setup(t, testWebhookUrl)
	f.transaction.EXPECT().Create(gomock.Any(), "payer", "payee", int64(1250)).Return("tx-1", nil)

	actual, err := f.cut.CreateTransaction(testContext(), "payer", "payee", 1250)
	require.NoError(t, err)
	require.Equal(t, "tx-1", actual)

	records := history(t, f)
	require.Len(t, records, 1)
	require.Equal(t, OpTransactionCreate, records[0].Operation)
	require.Equal(t, "tx-1", records[0].ResourceUuid)
	require.Equal(t, "abcd1234", records[0].RequestId)
}

func TestRejectedCallIsJournaledWithoutResource(t *testing.T) {
	f := setup(t, testWebhookUrl)
	f.business.EXPECT().Create(gomock.Any()).Return("", nil)

	actual, err := f.cut.CreateBusiness(testContext())
	require.NoError(t, err)
	require.Equal(t, "", actual)

	records := history(t, f)
	require.Len(t, records, 1)
	require.Equal(t, OpBusinessCreate, records[0].Operation)
	require.Equal(t, "", records[0].ResourceUuid)
}

func TestTransportFailureIsJournaledAndReturned(t *testing.T) {
	f := setup(t, testWebhookUrl)
	f.transaction.EXPECT().Cancel(gomock.Any(), "tx-1").Return(false, errors.New("connection refused"))

	ok, err := f.cut.CancelTransaction(testContext(), "tx-1")
	require.EqualError(t, err, "connection refused")
	require.False(t, ok)

	records := history(t, f)
	require.Len(t, records, 1)
	require.Equal(t, "transport failure", records[0].Outcome)
	require.Equal(t, "connection refused", records[0].Detail)
}

func TestTransactionOperationsDelegate(t *testing.T) {
	f := setup(t, testWebhookUrl)
	ctx := testContext()

	f.transaction.EXPECT().CreateMid(gomock.Any(), "payer", "MID-1", int64(10)).Return("tx-mid", nil)
	f.transaction.EXPECT().Fetch(gomock.Any(), "tx-mid").Return(map[string]interface{}{"uuid": "tx-mid"}, nil)
	f.transaction.EXPECT().List(gomock.Any()).Return([]map[string]interface{}{{"uuid": "tx-mid"}}, nil)
	f.transaction.EXPECT().Refund(gomock.Any(), "tx-mid", int64(5)).Return("refund-1", nil)
	f.transaction.EXPECT().FetchRefunds(gomock.Any(), "tx-mid").Return([]map[string]interface{}{{"uuid": "refund-1"}}, nil)

	created, err := f.cut.CreateTransactionMid(ctx, "payer", "MID-1", 10)
	require.NoError(t, err)
	require.Equal(t, "tx-mid", created)

	fetched, err := f.cut.FetchTransaction(ctx, "tx-mid")
	require.NoError(t, err)
	require.Equal(t, "tx-mid", fetched["uuid"])

	listed, err := f.cut.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	refund, err := f.cut.RefundTransaction(ctx, "tx-mid", 5)
	require.NoError(t, err)
	require.Equal(t, "refund-1", refund)

	refunds, err := f.cut.FetchRefunds(ctx, "tx-mid")
	require.NoError(t, err)
	require.Len(t, refunds, 1)

	records := history(t, f)
	require.Len(t, records, 5)
	require.Equal(t, OpTransactionRefunds, records[0].Operation)
	require.Equal(t, OpTransactionCreateMid, records[4].Operation)

	refundsOnly, err := f.cut.History(ctx, entities.JournalQuery{Operation: OpTransactionRefund})
	require.NoError(t, err)
	require.Len(t, refundsOnly, 1)
	require.Equal(t, "tx-mid", refundsOnly[0].ResourceUuid)
}

func TestWebhookOperationsUseConfiguredUrl(t *testing.T) {
	f := setup(t, testWebhookUrl)
	ctx := testContext()

	f.webhook.EXPECT().Register(gomock.Any(), testWebhookUrl).Return(true, nil)
	f.webhook.EXPECT().Deregister(gomock.Any(), testWebhookUrl).Return(true, nil)
	f.webhook.EXPECT().Fetch(gomock.Any()).Return([]entities.WebhookSubscription{
		{EventName: "TransactionStarted", WebhookUrl: testWebhookUrl},
	}, nil)

	ok, err := f.cut.RegisterWebhook(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = f.cut.DeregisterWebhook(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	subscriptions, err := f.cut.FetchWebhooks(ctx)
	require.NoError(t, err)
	require.Len(t, subscriptions, 1)

	require.Len(t, history(t, f), 3)
}

func TestWebhookRegisterWithoutUrl(t *testing.T) {
	f := setup(t, "")

	_, err := f.cut.RegisterWebhook(testContext())
	require.ErrorIs(t, err, ErrWebhookUrlMissing)

	_, err = f.cut.DeregisterWebhook(testContext())
	require.ErrorIs(t, err, ErrWebhookUrlMissing)

	require.Empty(t, history(t, f))
}

type failingJournal struct {
	database.Repository
}

func (failingJournal) CreateCallRecord(ctx context.Context, cr entities.CallRecord) error {
	return errors.New("disk full")
}

func TestJournalFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	transaction := mocks.NewMockTransactionApi(ctrl)
	transaction.EXPECT().Create(gomock.Any(), "payer", "payee", int64(1)).Return("tx-1", nil)

	cut, err := NewServiceInteractor(failingJournal{inmemory.NewInMemoryProvider()},
		mocks.NewMockBusinessApi(ctrl), transaction, mocks.NewMockWebhookApi(ctrl), testWebhookUrl, logging.NewNoopLogger())
	require.NoError(t, err)

	actual, err := cut.CreateTransaction(testContext(), "payer", "payee", 1)
	require.NoError(t, err)
	require.Equal(t, "tx-1", actual)
}

func TestUnusableAnswerIsJournaledWithItsStatus(t *testing.T) {
	vendor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":"no uuid here"}`))
	}))
	t.Cleanup(vendor.Close)

	caller, err := downstreams.NewCaller("vendor-key", 5*time.Second)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	repo := inmemory.NewInMemoryProvider()
	cut, err := NewServiceInteractor(repo, mocks.NewMockBusinessApi(ctrl),
		grailpay.NewTransactionApi(caller, endpoints.New(vendor.URL)),
		mocks.NewMockWebhookApi(ctrl), testWebhookUrl, logging.NewNoopLogger())
	require.NoError(t, err)

	_, err = cut.CreateTransaction(testContext(), "payer", "payee", 1250)
	require.ErrorIs(t, err, grailpay.ErrMalformedResponse)

	records, err := repo.ListCallRecords(context.Background(), entities.JournalQuery{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, http.StatusCreated, records[0].Status)
	require.Equal(t, "success", records[0].Outcome)
	require.Contains(t, records[0].Detail, "could not be parsed")
}
