package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/eurofurence/reg-grailpay-cli/internal/entities"
)

func printf(out io.Writer, format string, v ...interface{}) error {
	_, err := fmt.Fprintf(out, format, v...)
	return err
}

// printResult prints the identifier of what was created, or that the vendor refused.
func printResult(out io.Writer, what string, id string) error {
	if id == "" {
		return printf(out, "%s was not created\n", what)
	}
	return printf(out, "%s: %s\n", what, id)
}

func printJson(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(v)
}

func printSubscriptions(out io.Writer, subscriptions []entities.WebhookSubscription) error {
	if subscriptions == nil {
		return printf(out, "Webhooks could not be fetched\n")
	}
	for _, s := range subscriptions {
		if err := printf(out, "Event: %s Url: %s\n", s.EventName, s.WebhookUrl); err != nil {
			return err
		}
	}
	return nil
}

func printHistory(out io.Writer, records []entities.CallRecord) error {
	if len(records) == 0 {
		return printf(out, "No calls recorded\n")
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "TIME\tREQUEST\tACTION\tSTATUS\tOUTCOME\tRESOURCE")
	for _, r := range records {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
			r.CreatedAt.Format(time.RFC3339), r.RequestId, r.Operation, r.Status, r.Outcome, r.ResourceUuid)
	}
	return w.Flush()
}
