package dialog

import (
	"context"
	"encoding/json"
	"fmt"

	"dinebot/models"

	"go.uber.org/zap"
)

// diningSuggestions performs dialog management and fulfillment for suggesting
// a place to dine in. The turn is a state machine over the pair
// (invocation source, confirmation status); everything it remembers between
// turns is threaded through the session attributes by the dialog engine.
func (s *DefaultDialogService) diningSuggestions(ctx context.Context, req *models.IntentRequest) *models.IntentResponse {
	slots := req.CurrentIntent.Slots
	intentName := req.CurrentIntent.Name

	attrs := req.SessionAttributes
	if attrs == nil {
		attrs = map[string]string{}
	}
	confirmationContext := attrs[models.AttrConfirmationContext]

	// Track the current reservation across turns.
	reservation := models.NewDiningReservation(slots)
	serialized, err := json.Marshal(reservation)
	if err != nil {
		s.Logger.Error("failed to serialize reservation", zap.Error(err))
		return closeDialog(attrs, models.FulfillmentFailed,
			"Sorry, something went wrong on my end. Please try again in a little while.")
	}
	attrs[models.AttrCurrentReservation] = string(serialized)

	if req.InvocationSource == models.SourceDialogCodeHook {
		// Validate any slots which have been specified. If any are invalid,
		// re-elicit their value.
		if vr := ValidateReservation(slots); !vr.IsValid {
			slots.Clear(vr.ViolatedSlot)
			return elicitSlot(attrs, intentName, slots, vr.ViolatedSlot, vr.Message)
		}

		switch req.CurrentIntent.ConfirmationStatus {
		case models.ConfirmationDenied:
			// The messaging differs depending on whether the user is denying
			// a reservation they initiated or an auto-populated suggestion.
			delete(attrs, models.AttrConfirmationContext)
			delete(attrs, models.AttrCurrentReservation)
			if confirmationContext == models.ContextAutoPopulate {
				return elicitSlot(attrs, intentName, models.ReservationSlots{},
					models.SlotLocation, "Which city are you going to dine in?")
			}
			return delegate(attrs, slots)

		case models.ConfirmationNone:
			// A brand-new request from a returning user: suggest the details
			// of their last confirmed reservation and ask to reuse them.
			if confirmationContext == "" && slots.Empty() {
				if last, ok := lastConfirmed(attrs); ok {
					slots.Location = last.Location
					slots.DiningTime = last.DiningTime
					slots.PhoneNum = last.PhoneNum
					attrs[models.AttrConfirmationContext] = models.ContextAutoPopulate
					if b, err := json.Marshal(models.NewDiningReservation(slots)); err == nil {
						attrs[models.AttrCurrentReservation] = string(b)
					}
					return confirmIntent(attrs, intentName, slots, fmt.Sprintf(
						"Shall I use the same details as last time, dining in %s at %s, and text you at %s?",
						slots.Location, slots.DiningTime, slots.PhoneNum,
					))
				}
			}
			if slots.Complete() {
				return confirmIntent(attrs, intentName, slots, fmt.Sprintf(
					"So you want to dine at a %s restaurant in %s for %s people at %s, and get the details at %s, right?",
					slots.Cuisine, slots.Location, slots.NumPeople, slots.DiningTime, slots.PhoneNum,
				))
			}
			return delegate(attrs, slots)

		case models.ConfirmationConfirmed:
			// Remove confirmationContext so it does not confuse future turns.
			delete(attrs, models.AttrConfirmationContext)
			if confirmationContext == models.ContextAutoPopulate {
				if slots.NumPeople == "" {
					return elicitSlot(attrs, intentName, slots,
						models.SlotNumPeople, "How many people are you in total?")
				}
				if slots.Cuisine == "" {
					return elicitSlot(attrs, intentName, slots,
						models.SlotCuisine, "What cuisine you want to try?")
				}
			}
			return delegate(attrs, slots)
		}

		return delegate(attrs, slots)
	}

	// Fulfillment turn: every slot has been validated and confirmed. Hand the
	// reservation to the queue exactly once; a redelivered fulfillment turn
	// for the same reservation closes again without a second emission.
	if attrs[models.AttrLastConfirmedReservation] == string(serialized) {
		delete(attrs, models.AttrCurrentReservation)
		return closeDialog(attrs, models.FulfillmentFulfilled, confirmationText(slots))
	}

	if err := s.Emitter.Emit(ctx, reservation); err != nil {
		s.Logger.Error("failed to emit reservation to fulfillment queue",
			zap.String("userId", req.UserID), zap.Error(err))
		return closeDialog(attrs, models.FulfillmentFailed,
			"Sorry, I could not process your reservation right now. Please try again in a little while.")
	}

	delete(attrs, models.AttrCurrentReservation)
	attrs[models.AttrLastConfirmedReservation] = string(serialized)
	s.Logger.Debug("reservation emitted", zap.String("reservation", string(serialized)))

	return closeDialog(attrs, models.FulfillmentFulfilled, confirmationText(slots))
}

func confirmationText(slots models.ReservationSlots) string {
	return fmt.Sprintf(
		"Thanks, I will search for a place in %s that serves %s food for %s people at %s and send you the details at %s",
		slots.Location, slots.Cuisine, slots.NumPeople, slots.DiningTime, slots.PhoneNum,
	)
}

// lastConfirmed decodes the last confirmed reservation from session
// attributes, treating a missing or unreadable attribute as absent.
func lastConfirmed(attrs map[string]string) (models.Reservation, bool) {
	raw, ok := attrs[models.AttrLastConfirmedReservation]
	if !ok || raw == "" {
		return models.Reservation{}, false
	}
	var res models.Reservation
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return models.Reservation{}, false
	}
	return res, true
}
