package grailpay

import (
	"context"
	"fmt"

	"github.com/eurofurence/reg-grailpay-cli/internal/config"
	"github.com/eurofurence/reg-grailpay-cli/internal/fixture"
	"github.com/eurofurence/reg-grailpay-cli/internal/logging"
	"github.com/eurofurence/reg-grailpay-cli/internal/repository/downstreams"
	"github.com/eurofurence/reg-grailpay-cli/internal/repository/downstreams/endpoints"
)

type BusinessImpl struct {
	client
	conf *config.Application
}

func NewBusinessApi(caller downstreams.Caller, resolver *endpoints.Resolver, conf *config.Application) BusinessApi {
	return &BusinessImpl{
		client: client{caller: caller, resolver: resolver},
		conf:   conf,
	}
}

func (b *BusinessImpl) Create(ctx context.Context) (string, error) {
	business := fixture.NewBusinessBuilder(b.conf).Random().Build()

	response, err := b.caller.Post(ctx, b.resolver.URL(endpoints.BusinessCreate, nil), business)
	if err != nil {
		return "", err
	}
	if !accepted(ctx, "business create", response) {
		return "", nil
	}

	dto := uuidDataDto{}
	if err := response.Decode(&dto); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	logging.LoggerFromContext(ctx).Info("Created business: %s (client reference %s)", dto.Data.Uuid, business.ClientReferenceId)
	return dto.Data.Uuid, nil
}
