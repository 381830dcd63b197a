package entities

// Webhook is the body for registering and deregistering callback urls.
type Webhook struct {
	WebhookUrl []string `json:"webhook_url"`
	EventNames []string `json:"event_names"`
}

// WebhookSubscription is one entry of the webhook fetch response.
type WebhookSubscription struct {
	EventName  string `json:"event_name"`
	WebhookUrl string `json:"webhook_url"`
}

// SubscribedEvents is the full list of events every registration subscribes to.
var SubscribedEvents = []string{
	"TransactionStarted",
	"TransactionCaptureStarted",
	"TransactionCompleted",
	"TransactionFailed",
	"TransactionCanceled",
	"PayoutOnHold",
	"PayoutCompleted",
	"ClawbackStarted",
	"ClawbackFailed",
	"ClawbackCompleted",
	"BankLinkedSuccessfully",
	"BankLinkFailed",
	"BusinessCreated",
	"BusinessUpdated",
	"RefundPending",
	"RefundCaptureStarted",
	"RefundCaptureCompleted",
	"RefundCaptureFailed",
	"RefundPayoutPending",
	"RefundPayoutCompleted",
	"RefundPayoutFailed",
}

// IsSubscribedEvent tells whether an incoming event name is one we register for.
func IsSubscribedEvent(name string) bool {
	for _, e := range SubscribedEvents {
		if e == name {
			return true
		}
	}
	return false
}

// WebhookNotification is the body the vendor posts to a registered webhook url.
type WebhookNotification struct {
	EventName string                 `json:"event_name"`
	Data      map[string]interface{} `json:"data"`
}

// ResourceUuid is the uuid of the business, transaction or refund the notification is about, if any.
func (n WebhookNotification) ResourceUuid() string {
	if id, ok := n.Data["uuid"].(string); ok {
		return id
	}
	return ""
}
