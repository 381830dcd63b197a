package inmemory

import (
	"context"
	"errors"
	"time"

	"github.com/eurofurence/reg-grailpay-cli/internal/entities"
)

func (m *inmemoryProvider) CreateCallRecord(ctx context.Context, cr entities.CallRecord) error {
	if cr.ID != 0 {
		return errors.New("create needs a new call record")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cr.ID = m.nextId()
	// set a creation date if none was provided beforehand
	if cr.CreatedAt.IsZero() {
		cr.CreatedAt = time.Now()
	}

	m.callRecords = append(m.callRecords, cr)
	return nil
}

func (m *inmemoryProvider) ListCallRecords(ctx context.Context, query entities.JournalQuery) ([]entities.CallRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]entities.CallRecord, 0)
	newestFirst(len(m.callRecords), query.Limit, func(i int) bool {
		cr := m.callRecords[i]
		if query.Operation != "" && cr.Operation != query.Operation {
			return false
		}
		result = append(result, cr)
		return true
	})
	return result, nil
}
