package webhooks

import (
	"encoding/json"
	"time"

	"github.com/eurofurence/reg-grailpay-cli/internal/entities"
)

type ReceiveRequest struct {
	Payload []byte
}

type ReceivedDto struct {
	Status string `json:"status"`
}

type ListRequest struct {
	Limit int
}

type EventDto struct {
	ID           uint            `json:"id"`
	RequestId    string          `json:"request_id"`
	EventName    string          `json:"event_name"`
	ResourceUuid string          `json:"resource_uuid,omitempty"`
	ReceivedAt   string          `json:"received_at"`
	Payload      json.RawMessage `json:"payload"`
}

type EventListDto struct {
	Events []EventDto `json:"events"`
}

func eventToDto(ev entities.WebhookEvent) EventDto {
	return EventDto{
		ID:           ev.ID,
		RequestId:    ev.RequestId,
		EventName:    ev.EventName,
		ResourceUuid: ev.ResourceUuid,
		ReceivedAt:   ev.CreatedAt.Format(time.RFC3339),
		Payload:      json.RawMessage(ev.Payload),
	}
}
