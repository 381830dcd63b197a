package database

import (
	"context"

	"github.com/eurofurence/reg-grailpay-cli/internal/entities"
)

// Repository is the local call journal. Entries are never updated or deleted.
type Repository interface {
	Migrate() error
	CallRecordCRUD
	WebhookEventCRUD
}

type CallRecordCRUD interface {
	CreateCallRecord(ctx context.Context, cr entities.CallRecord) error
	// ListCallRecords returns matching records, newest first.
	ListCallRecords(ctx context.Context, query entities.JournalQuery) ([]entities.CallRecord, error)
}

type WebhookEventCRUD interface {
	// CreateWebhookEvent assigns ID and CreatedAt on ev.
	CreateWebhookEvent(ctx context.Context, ev *entities.WebhookEvent) error
	// ListWebhookEvents returns received events, newest first. Only JournalQuery.Limit applies.
	ListWebhookEvents(ctx context.Context, query entities.JournalQuery) ([]entities.WebhookEvent, error)
}
