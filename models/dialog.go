// File: models/dialog.go
package models

// Invocation sources for a dialog turn.
const (
	SourceDialogCodeHook      = "DialogCodeHook"
	SourceFulfillmentCodeHook = "FulfillmentCodeHook"
)

// Confirmation statuses reported by the NLU engine.
const (
	ConfirmationNone      = "None"
	ConfirmationDenied    = "Denied"
	ConfirmationConfirmed = "Confirmed"
)

// Dialog action types.
const (
	ActionElicitSlot    = "ElicitSlot"
	ActionConfirmIntent = "ConfirmIntent"
	ActionDelegate      = "Delegate"
	ActionClose         = "Close"
)

// Fulfillment states reported in a Close action.
const (
	FulfillmentFulfilled = "Fulfilled"
	FulfillmentFailed    = "Failed"
)

// Intent names this bot handles.
const (
	IntentGreetings         = "Greetings"
	IntentDiningSuggestions = "DiningSuggestions"
	IntentThankYou          = "ThankYou"
)

// Message is a plain-text message shown to the user.
type Message struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// PlainText builds a plain-text message.
func PlainText(content string) *Message {
	return &Message{ContentType: "PlainText", Content: content}
}

// CurrentIntent describes the classified intent of the user's latest turn.
type CurrentIntent struct {
	Name               string           `json:"name"`
	Slots              ReservationSlots `json:"slots"`
	ConfirmationStatus string           `json:"confirmationStatus"`
}

// IntentRequest is the inbound dialog event produced by the NLU engine.
type IntentRequest struct {
	UserID            string            `json:"userId"`
	InvocationSource  string            `json:"invocationSource"`
	CurrentIntent     CurrentIntent     `json:"currentIntent"`
	SessionAttributes map[string]string `json:"sessionAttributes"`
}

// DialogAction is the tagged action the controller hands back to the dialog
// engine. Which fields are set depends on Type.
type DialogAction struct {
	Type             string            `json:"type"`
	IntentName       string            `json:"intentName,omitempty"`
	Slots            *ReservationSlots `json:"slots,omitempty"`
	SlotToElicit     string            `json:"slotToElicit,omitempty"`
	FulfillmentState string            `json:"fulfillmentState,omitempty"`
	Message          *Message          `json:"message,omitempty"`
}

// IntentResponse is the sole output contract of a dialog turn.
type IntentResponse struct {
	SessionAttributes map[string]string `json:"sessionAttributes"`
	DialogAction      DialogAction      `json:"dialogAction"`
}
