package inmemory

import (
	"sync"

	"github.com/eurofurence/reg-grailpay-cli/internal/entities"
	"github.com/eurofurence/reg-grailpay-cli/internal/repository/database"
)

var _ database.Repository = (*inmemoryProvider)(nil)

// the webhook receiver writes from concurrent requests, so all access goes through mu
type inmemoryProvider struct {
	mu            sync.RWMutex
	callRecords   []entities.CallRecord
	webhookEvents []entities.WebhookEvent
	idSequence    uint
}

func NewInMemoryProvider() database.Repository {
	return &inmemoryProvider{
		callRecords:   make([]entities.CallRecord, 0),
		webhookEvents: make([]entities.WebhookEvent, 0),
	}
}

func (m *inmemoryProvider) Migrate() error {
	// Nothing to do here
	return nil
}

func (m *inmemoryProvider) nextId() uint {
	m.idSequence++
	return m.idSequence
}

// newestFirst walks n stored entries from the back and stops at limit, 0 meaning no limit.
func newestFirst(n int, limit int, take func(i int) bool) {
	count := 0
	for i := n - 1; i >= 0; i-- {
		if limit > 0 && count >= limit {
			return
		}
		if take(i) {
			count++
		}
	}
}
