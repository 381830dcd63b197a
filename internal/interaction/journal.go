package interaction

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/eurofurence/reg-grailpay-cli/internal/entities"
	"github.com/eurofurence/reg-grailpay-cli/internal/logging"
)

func (s *serviceInteractor) History(ctx context.Context, query entities.JournalQuery) ([]entities.CallRecord, error) {
	return s.store.ListCallRecords(ctx, query)
}

// ReceiveWebhookEvent stores a notification posted by the vendor. Unknown event names are kept,
// the vendor may add events we have not subscribed to yet.
func (s *serviceInteractor) ReceiveWebhookEvent(ctx context.Context, payload []byte) (*entities.WebhookEvent, error) {
	logger := logging.LoggerFromContext(ctx)

	notification := entities.WebhookNotification{}
	if err := json.Unmarshal(payload, &notification); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if notification.EventName == "" {
		return nil, ErrMalformedEvent
	}
	if !entities.IsSubscribedEvent(notification.EventName) {
		logger.Warn("received unsubscribed event %s", notification.EventName)
	}

	ev := entities.WebhookEvent{
		RequestId:    logging.RequestIdFromContext(ctx),
		EventName:    notification.EventName,
		ResourceUuid: notification.ResourceUuid(),
		Payload:      string(payload),
	}
	if err := s.store.CreateWebhookEvent(ctx, &ev); err != nil {
		return nil, err
	}

	logger.Info("Event: %s Resource: %s", ev.EventName, ev.ResourceUuid)
	return &ev, nil
}

func (s *serviceInteractor) RecentWebhookEvents(ctx context.Context, limit int) ([]entities.WebhookEvent, error) {
	return s.store.ListWebhookEvents(ctx, entities.JournalQuery{Limit: limit})
}
