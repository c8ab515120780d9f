package notification

import "context"

// Sender dispatches a text message to a phone number.
type Sender interface {
	Send(ctx context.Context, phone, message string) error
}
