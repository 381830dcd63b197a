package grailpay

import (
	"context"
	"fmt"

	"github.com/eurofurence/reg-grailpay-cli/internal/entities"
	"github.com/eurofurence/reg-grailpay-cli/internal/logging"
	"github.com/eurofurence/reg-grailpay-cli/internal/repository/downstreams"
	"github.com/eurofurence/reg-grailpay-cli/internal/repository/downstreams/endpoints"
)

type WebhookImpl struct {
	client
}

func NewWebhookApi(caller downstreams.Caller, resolver *endpoints.Resolver) WebhookApi {
	return &WebhookImpl{
		client: client{caller: caller, resolver: resolver},
	}
}

func subscription(webhookUrl string) entities.Webhook {
	return entities.Webhook{
		WebhookUrl: []string{webhookUrl},
		EventNames: entities.SubscribedEvents,
	}
}

func (w *WebhookImpl) Register(ctx context.Context, webhookUrl string) (bool, error) {
	response, err := w.caller.Post(ctx, w.resolver.URL(endpoints.WebhookRegister, nil), subscription(webhookUrl))
	if err != nil {
		return false, err
	}
	if !accepted(ctx, "webhook register", response) {
		return false, nil
	}

	logging.LoggerFromContext(ctx).Info("Registered webhook %s for %d events", webhookUrl, len(entities.SubscribedEvents))
	return true, nil
}

func (w *WebhookImpl) Deregister(ctx context.Context, webhookUrl string) (bool, error) {
	response, err := w.caller.Delete(ctx, w.resolver.URL(endpoints.WebhookDeregister, nil), subscription(webhookUrl))
	if err != nil {
		return false, err
	}
	if !accepted(ctx, "webhook deregister", response) {
		return false, nil
	}

	logging.LoggerFromContext(ctx).Info("Deregistered webhook %s", webhookUrl)
	return true, nil
}

func (w *WebhookImpl) Fetch(ctx context.Context) ([]entities.WebhookSubscription, error) {
	response, err := w.caller.Get(ctx, w.resolver.URL(endpoints.WebhookFetch, nil), nil)
	if err != nil {
		return nil, err
	}
	if !accepted(ctx, "webhook fetch", response) {
		return nil, nil
	}

	dto := subscriptionsDataDto{}
	if err := response.Decode(&dto); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	logger := logging.LoggerFromContext(ctx)
	for _, s := range dto.Data {
		logger.Info("Event: %s Url: %s", s.EventName, s.WebhookUrl)
	}
	return dto.Data, nil
}
