package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/eurofurence/reg-grailpay-cli/internal/config"
	"github.com/eurofurence/reg-grailpay-cli/internal/entities"
	"github.com/eurofurence/reg-grailpay-cli/internal/server"
)

const (
	paramPayerUuid       = "{payer_uuid}"
	paramPayeeUuid       = "{payee_uuid}"
	paramPayeeMid        = "{payee_mid}"
	paramAmountInCents   = "{amount_in_cents}"
	paramTransactionUuid = "{transaction_uuid}"
)

const inmemoryJournalNote = "the in-memory journal only holds the calls of the current process, set database.use to mysql to keep history between commands"

type arguments struct {
	strings []string
	amount  int64
	cmd     *cobra.Command
}

type action struct {
	verb   string
	params []string
	short  string
	long   string
	// needsVendor refuses to run without a vendor api key
	needsVendor bool
	flags       func(cmd *cobra.Command)
	run         func(ctx context.Context, s *session, args arguments, out io.Writer) error
}

// parse checks the amount parameter, the only one that is not passed through as is.
func (a action) parse(args []string) (arguments, error) {
	parsed := arguments{strings: args}
	for i, p := range a.params {
		if p != paramAmountInCents {
			continue
		}
		amount, err := strconv.ParseInt(args[i], 10, 64)
		if err != nil || amount < 1 {
			return parsed, &usageError{message: fmt.Sprintf("Usage: %s %s\n%s must be a positive whole number of cents", programName, a.usage(), paramAmountInCents)}
		}
		parsed.amount = amount
	}
	return parsed, nil
}

func actions() []action {
	return []action{
		{
			verb:        "webhook:register",
			short:       "Register the configured webhook url for all events",
			needsVendor: true,
			run: func(ctx context.Context, s *session, _ arguments, out io.Writer) error {
				ok, err := s.interactor.RegisterWebhook(ctx)
				if err != nil {
					return err
				}
				return printf(out, "Webhook registered: %t\n", ok)
			},
		},
		{
			verb:        "webhook:deregister",
			short:       "Deregister the configured webhook url",
			needsVendor: true,
			run: func(ctx context.Context, s *session, _ arguments, out io.Writer) error {
				ok, err := s.interactor.DeregisterWebhook(ctx)
				if err != nil {
					return err
				}
				return printf(out, "Webhook deregistered: %t\n", ok)
			},
		},
		{
			verb:        "webhook:fetch",
			short:       "List the registered webhooks",
			needsVendor: true,
			run: func(ctx context.Context, s *session, _ arguments, out io.Writer) error {
				subscriptions, err := s.interactor.FetchWebhooks(ctx)
				if err != nil {
					return err
				}
				return printSubscriptions(out, subscriptions)
			},
		},
		{
			verb:  "webhook:listen",
			short: "Receive webhook notifications until interrupted",
			run: func(ctx context.Context, s *session, _ arguments, out io.Writer) error {
				ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
				defer stop()

				listen := s.conf.Webhook.Listen
				srv := server.NewServer(ctx, &listen, server.CreateRouter(s.interactor, &listen))
				return server.Serve(ctx, srv)
			},
		},
		{
			verb:        "business:create",
			short:       "Onboard a generated test business",
			needsVendor: true,
			run: func(ctx context.Context, s *session, _ arguments, out io.Writer) error {
				businessUuid, err := s.interactor.CreateBusiness(ctx)
				if err != nil {
					return err
				}
				return printResult(out, "Business", businessUuid)
			},
		},
		{
			verb:        "transaction:create",
			params:      []string{paramPayerUuid, paramPayeeUuid, paramAmountInCents},
			short:       "Create a transaction between two businesses",
			needsVendor: true,
			run: func(ctx context.Context, s *session, args arguments, out io.Writer) error {
				transactionUuid, err := s.interactor.CreateTransaction(ctx, args.strings[0], args.strings[1], args.amount)
				if err != nil {
					return err
				}
				return printResult(out, "Transaction", transactionUuid)
			},
		},
		{
			verb:        "transaction:create_mid",
			params:      []string{paramPayerUuid, paramPayeeMid, paramAmountInCents},
			short:       "Create a transaction to a payee addressed by merchant id",
			needsVendor: true,
			run: func(ctx context.Context, s *session, args arguments, out io.Writer) error {
				transactionUuid, err := s.interactor.CreateTransactionMid(ctx, args.strings[0], args.strings[1], args.amount)
				if err != nil {
					return err
				}
				return printResult(out, "Transaction", transactionUuid)
			},
		},
		{
			verb:        "transaction:cancel",
			params:      []string{paramTransactionUuid},
			short:       "Cancel a transaction",
			needsVendor: true,
			run: func(ctx context.Context, s *session, args arguments, out io.Writer) error {
				ok, err := s.interactor.CancelTransaction(ctx, args.strings[0])
				if err != nil {
					return err
				}
				return printf(out, "Transaction canceled: %t\n", ok)
			},
		},
		{
			verb:        "transaction:fetch",
			params:      []string{paramTransactionUuid},
			short:       "Show a transaction",
			needsVendor: true,
			run: func(ctx context.Context, s *session, args arguments, out io.Writer) error {
				transaction, err := s.interactor.FetchTransaction(ctx, args.strings[0])
				if err != nil {
					return err
				}
				if transaction == nil {
					return printf(out, "Transaction not found\n")
				}
				return printJson(out, transaction)
			},
		},
		{
			verb:        "transaction:list",
			short:       "List the first page of transactions",
			needsVendor: true,
			run: func(ctx context.Context, s *session, _ arguments, out io.Writer) error {
				transactions, err := s.interactor.ListTransactions(ctx)
				if err != nil {
					return err
				}
				if transactions == nil {
					return printf(out, "Transactions could not be listed\n")
				}
				return printJson(out, transactions)
			},
		},
		{
			verb:        "transaction:refund",
			params:      []string{paramTransactionUuid, paramAmountInCents},
			short:       "Refund part or all of a transaction",
			needsVendor: true,
			run: func(ctx context.Context, s *session, args arguments, out io.Writer) error {
				refundUuid, err := s.interactor.RefundTransaction(ctx, args.strings[0], args.amount)
				if err != nil {
					return err
				}
				return printResult(out, "Refund", refundUuid)
			},
		},
		{
			verb:        "transaction:refunds",
			params:      []string{paramTransactionUuid},
			short:       "List the refunds of a transaction",
			needsVendor: true,
			run: func(ctx context.Context, s *session, args arguments, out io.Writer) error {
				refunds, err := s.interactor.FetchRefunds(ctx, args.strings[0])
				if err != nil {
					return err
				}
				if refunds == nil {
					return printf(out, "Refunds could not be fetched\n")
				}
				return printJson(out, refunds)
			},
		},
		{
			verb:  "history:list",
			short: "Show the journal of past vendor calls",
			long:  "Show the journal of past vendor calls.\n\n" + inmemoryJournalNote,
			flags: func(cmd *cobra.Command) {
				cmd.Flags().IntP("limit", "n", 20, "maximum number of entries")
				cmd.Flags().StringP("operation", "o", "", "only show this action, e.g. transaction:create")
			},
			run: func(ctx context.Context, s *session, args arguments, out io.Writer) error {
				limit, err := args.cmd.Flags().GetInt("limit")
				if err != nil {
					return err
				}
				operation, err := args.cmd.Flags().GetString("operation")
				if err != nil {
					return err
				}

				if s.conf.Database.Use != config.Mysql {
					_, _ = fmt.Fprintln(args.cmd.ErrOrStderr(), "Note:", inmemoryJournalNote)
				}

				records, err := s.interactor.History(ctx, entities.JournalQuery{Limit: limit, Operation: operation})
				if err != nil {
					return err
				}
				return printHistory(out, records)
			},
		},
	}
}
