// File: models/reservation.go
package models

// Slot names as they arrive from the NLU engine.
const (
	SlotLocation   = "Location"
	SlotCuisine    = "Cuisine"
	SlotDiningTime = "DiningTime"
	SlotNumPeople  = "NumPeople"
	SlotPhoneNum   = "PhoneNum"
)

// Session attribute keys threaded through the dialog.
const (
	AttrCurrentReservation       = "currentReservation"
	AttrLastConfirmedReservation = "lastConfirmedReservation"
	AttrConfirmationContext      = "confirmationContext"
)

// ContextAutoPopulate marks that slots were pre-filled by the system rather
// than the user, which changes how a denial is handled.
const ContextAutoPopulate = "AutoPopulate"

// ReservationSlots holds the five dialog slots of a dining request. An empty
// string means the slot has not been filled yet; validity is a separate
// question answered by the slot validator.
type ReservationSlots struct {
	Location   string `json:"Location,omitempty"`
	Cuisine    string `json:"Cuisine,omitempty"`
	DiningTime string `json:"DiningTime,omitempty"`
	NumPeople  string `json:"NumPeople,omitempty"`
	PhoneNum   string `json:"PhoneNum,omitempty"`
}

// Complete reports whether every slot has been filled.
func (s ReservationSlots) Complete() bool {
	return s.Location != "" && s.Cuisine != "" && s.DiningTime != "" &&
		s.NumPeople != "" && s.PhoneNum != ""
}

// Empty reports whether no slot has been filled.
func (s ReservationSlots) Empty() bool {
	return s == ReservationSlots{}
}

// Clear resets the named slot so it can be re-elicited.
func (s *ReservationSlots) Clear(name string) {
	switch name {
	case SlotLocation:
		s.Location = ""
	case SlotCuisine:
		s.Cuisine = ""
	case SlotDiningTime:
		s.DiningTime = ""
	case SlotNumPeople:
		s.NumPeople = ""
	case SlotPhoneNum:
		s.PhoneNum = ""
	}
}

// Reservation is the serialized form stored in session attributes.
type Reservation struct {
	SuggestionType   string `json:"SuggestionType"`
	ReservationSlots        // inline: same JSON casing as the slot map
}

// NewDiningReservation wraps the current slots as a dining reservation.
func NewDiningReservation(slots ReservationSlots) Reservation {
	return Reservation{SuggestionType: "Dining", ReservationSlots: slots}
}

// QueueMessage is the wire form of a completed reservation handed to the
// fulfillment queue. Phone is in international (+1XXXXXXXXXX) form.
type QueueMessage struct {
	Location string `json:"location"`
	Time     string `json:"time"`
	Cuisine  string `json:"cuisine"`
	People   string `json:"people"`
	Phone    string `json:"phone"`
}

// ValidationResult reports the first slot violation found, if any.
type ValidationResult struct {
	IsValid      bool
	ViolatedSlot string
	Message      string
}
