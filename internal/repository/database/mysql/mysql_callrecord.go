package mysql

import (
	"context"

	"github.com/eurofurence/reg-grailpay-cli/internal/entities"
)

func (m *mysqlConnector) CreateCallRecord(ctx context.Context, cr entities.CallRecord) error {
	tCtx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return m.db.WithContext(tCtx).Create(&cr).Error
}

func (m *mysqlConnector) ListCallRecords(ctx context.Context, query entities.JournalQuery) ([]entities.CallRecord, error) {
	var records []entities.CallRecord

	tCtx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	db := m.db.WithContext(tCtx).
		Where(&entities.CallRecord{Operation: query.Operation}).
		Order("id desc")
	if query.Limit > 0 {
		db = db.Limit(query.Limit)
	}

	res := db.Find(&records)
	if res.Error != nil {
		return nil, res.Error
	}

	return records, nil
}
