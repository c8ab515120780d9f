package fulfillment

import (
	"encoding/json"

	"dinebot/models"

	"github.com/hibiken/asynq"
)

// TypeSuggestRestaurants is the task type of a confirmed reservation waiting
// for restaurant suggestions.
const TypeSuggestRestaurants = "reservation:suggest"

// QueueName is the asynq queue confirmed reservations are emitted to.
const QueueName = "fulfillment"

// NewSuggestionTask wraps a queue message as an asynq task.
func NewSuggestionTask(msg models.QueueMessage) (*asynq.Task, error) {
	b, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSuggestRestaurants, b), nil
}
