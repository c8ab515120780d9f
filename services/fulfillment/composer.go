package fulfillment

import (
	"fmt"
	"strings"

	"dinebot/models"
)

// ComposeSuggestion assembles the notification text: a header naming the
// request, a numbered list of suggestions, and a closing line.
func ComposeSuggestion(msg models.QueueMessage, picks []*models.Restaurant) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello! Here are my %s restaurant suggestions in %s for %s people, at %s: ",
		msg.Cuisine, msg.Location, msg.People, msg.Time)

	for i, r := range picks {
		fmt.Fprintf(&b, "\n%d. %s, located at %s. ", i+1, r.Name, r.Address)
	}

	b.WriteString("Enjoy your meal!!")
	return b.String()
}
