package inmemory

import (
	"context"
	"errors"
	"time"

	"github.com/eurofurence/reg-grailpay-cli/internal/entities"
)

func (m *inmemoryProvider) CreateWebhookEvent(ctx context.Context, ev *entities.WebhookEvent) error {
	if ev.ID != 0 {
		return errors.New("create needs a new webhook event")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ev.ID = m.nextId()
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now()
	}

	m.webhookEvents = append(m.webhookEvents, *ev)
	return nil
}

func (m *inmemoryProvider) ListWebhookEvents(ctx context.Context, query entities.JournalQuery) ([]entities.WebhookEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]entities.WebhookEvent, 0)
	newestFirst(len(m.webhookEvents), query.Limit, func(i int) bool {
		result = append(result, m.webhookEvents[i])
		return true
	})
	return result, nil
}
