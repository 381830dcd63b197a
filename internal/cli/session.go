package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eurofurence/reg-grailpay-cli/internal/config"
	"github.com/eurofurence/reg-grailpay-cli/internal/interaction"
	"github.com/eurofurence/reg-grailpay-cli/internal/logging"
	"github.com/eurofurence/reg-grailpay-cli/internal/repository/database"
	"github.com/eurofurence/reg-grailpay-cli/internal/repository/database/inmemory"
	"github.com/eurofurence/reg-grailpay-cli/internal/repository/database/mysql"
	"github.com/eurofurence/reg-grailpay-cli/internal/repository/downstreams"
	"github.com/eurofurence/reg-grailpay-cli/internal/repository/downstreams/endpoints"
	"github.com/eurofurence/reg-grailpay-cli/internal/repository/downstreams/grailpay"
)

var (
	ErrInvalidConfiguration = errors.New("configuration is invalid, see log for details")
	ErrVendorKeyMissing     = errors.New("authentication.vendor_api_key is not configured, refusing to call the vendor api")
)

// session is everything one command needs, wired from the configuration.
type session struct {
	conf       *config.Application
	requestId  string
	interactor interaction.Interactor
}

func newSession(configFile string, needsVendor bool) (*session, error) {
	result, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	conf := result.Config

	logging.Setup(conf.LogLevel)
	logger := logging.NoCtx()

	switch result.Completeness {
	case config.Defaulted:
		logger.Warn("configuration file %s not found, using defaults", configFile)
	case config.Partial:
		logger.Warn("configuration file %s does not set %s, using defaults", configFile, strings.Join(result.Missing, ", "))
	}

	if err := config.Validate(conf, logger.Error); err != nil {
		return nil, ErrInvalidConfiguration
	}

	if needsVendor && conf.Authentication.VendorApiKey == "" {
		return nil, ErrVendorKeyMissing
	}

	repo, err := newRepository(conf.Database)
	if err != nil {
		return nil, fmt.Errorf("could not open journal: %w", err)
	}
	if err := repo.Migrate(); err != nil {
		return nil, fmt.Errorf("could not migrate journal: %w", err)
	}

	caller, err := downstreams.NewCaller(conf.Authentication.VendorApiKey, time.Duration(conf.Api.TimeoutSeconds)*time.Second)
	if err != nil {
		return nil, err
	}
	resolver := endpoints.FromConfig(conf)
	logger.Debug("using vendor api at %s", resolver.BaseUrl())

	i, err := interaction.NewServiceInteractor(repo,
		grailpay.NewBusinessApi(caller, resolver, conf),
		grailpay.NewTransactionApi(caller, resolver),
		grailpay.NewWebhookApi(caller, resolver),
		conf.Webhook.Url,
		logger,
	)
	if err != nil {
		return nil, err
	}

	return &session{
		conf:       conf,
		requestId:  logging.NewRequestId(),
		interactor: i,
	}, nil
}

func newRepository(conf config.DatabaseConfig) (database.Repository, error) {
	if conf.Use == config.Mysql {
		return mysql.NewMySQLConnector(conf, logging.NoCtx())
	}
	return inmemory.NewInMemoryProvider(), nil
}

// context carries the request id of this command, it is also sent to the vendor.
func (s *session) context(parent context.Context) context.Context {
	return logging.CreateContextWithLoggerForRequestId(parent, s.requestId)
}

func (s *session) close() {
	logging.NoCtx().Debug("command %s finished", s.requestId)
}
