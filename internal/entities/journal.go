package entities

import (
	"gorm.io/gorm"
)

// CallRecord holds the outcome of one call against the vendor api.
//
// This table is append only
type CallRecord struct {
	gorm.Model
	RequestId    string `gorm:"type:varchar(8) CHARACTER SET utf8mb4 COLLATE utf8mb4_general_ci"`
	Operation    string `gorm:"index;type:varchar(40) CHARACTER SET utf8mb4 COLLATE utf8mb4_general_ci;NOT NULL"`
	Method       string `gorm:"type:varchar(10) CHARACTER SET utf8mb4 COLLATE utf8mb4_general_ci"`
	Url          string `gorm:"type:text CHARACTER SET utf8mb4 COLLATE utf8mb4_general_ci"`
	Status       int
	Outcome      string `gorm:"type:varchar(20) CHARACTER SET utf8mb4 COLLATE utf8mb4_general_ci"`
	ResourceUuid string `gorm:"index;type:varchar(80) CHARACTER SET utf8mb4 COLLATE utf8mb4_general_ci"`
	Detail       string `gorm:"type:text CHARACTER SET utf8mb4 COLLATE utf8mb4_general_ci"`
}

// WebhookEvent is a callback received by the local webhook receiver.
//
// This table is append only
type WebhookEvent struct {
	gorm.Model
	RequestId    string `gorm:"type:varchar(8) CHARACTER SET utf8mb4 COLLATE utf8mb4_general_ci"`
	EventName    string `gorm:"index;type:varchar(80) CHARACTER SET utf8mb4 COLLATE utf8mb4_general_ci;NOT NULL"`
	ResourceUuid string `gorm:"index;type:varchar(80) CHARACTER SET utf8mb4 COLLATE utf8mb4_general_ci"`
	Payload      string `gorm:"type:text CHARACTER SET utf8mb4 COLLATE utf8mb4_general_ci"`
}

type JournalQuery struct {
	// filter by operation, e.g. transaction:create
	Operation string
	// maximum number of entries, newest first. 0 means no limit
	Limit int
}
