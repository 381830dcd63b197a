package mysql

import (
	"context"

	"github.com/eurofurence/reg-grailpay-cli/internal/entities"
)

func (m *mysqlConnector) CreateWebhookEvent(ctx context.Context, ev *entities.WebhookEvent) error {
	tCtx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return m.db.WithContext(tCtx).Create(ev).Error
}

func (m *mysqlConnector) ListWebhookEvents(ctx context.Context, query entities.JournalQuery) ([]entities.WebhookEvent, error) {
	var events []entities.WebhookEvent

	tCtx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	db := m.db.WithContext(tCtx).Order("id desc")
	if query.Limit > 0 {
		db = db.Limit(query.Limit)
	}

	res := db.Find(&events)
	if res.Error != nil {
		return nil, res.Error
	}

	return events, nil
}
