package dialog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"dinebot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEmitter struct {
	emitted []models.Reservation
	err     error
}

func (f *fakeEmitter) Emit(_ context.Context, res models.Reservation) error {
	if f.err != nil {
		return f.err
	}
	f.emitted = append(f.emitted, res)
	return nil
}

func newService(em *fakeEmitter) *DefaultDialogService {
	return &DefaultDialogService{Emitter: em, Logger: zap.NewNop()}
}

func diningRequest(source, status string, slots models.ReservationSlots, attrs map[string]string) *models.IntentRequest {
	return &models.IntentRequest{
		UserID:           "user1",
		InvocationSource: source,
		CurrentIntent: models.CurrentIntent{
			Name:               models.IntentDiningSuggestions,
			Slots:              slots,
			ConfirmationStatus: status,
		},
		SessionAttributes: attrs,
	}
}

func TestDispatchGreetings(t *testing.T) {
	svc := newService(&fakeEmitter{})
	resp, err := svc.Dispatch(context.Background(), &models.IntentRequest{
		CurrentIntent: models.CurrentIntent{Name: models.IntentGreetings},
	})
	require.NoError(t, err)
	assert.Equal(t, models.ActionClose, resp.DialogAction.Type)
	assert.Equal(t, models.FulfillmentFulfilled, resp.DialogAction.FulfillmentState)
	assert.Equal(t, "Hi there, how can I help you?", resp.DialogAction.Message.Content)
}

func TestDispatchThankYou(t *testing.T) {
	svc := newService(&fakeEmitter{})
	resp, err := svc.Dispatch(context.Background(), &models.IntentRequest{
		CurrentIntent: models.CurrentIntent{Name: models.IntentThankYou},
	})
	require.NoError(t, err)
	assert.Equal(t, models.ActionClose, resp.DialogAction.Type)
}

func TestDispatchUnknownIntent(t *testing.T) {
	svc := newService(&fakeEmitter{})
	_, err := svc.Dispatch(context.Background(), &models.IntentRequest{
		CurrentIntent: models.CurrentIntent{Name: "BookFlight"},
	})
	assert.Error(t, err)
}

func TestInvalidSlotIsClearedAndReElicited(t *testing.T) {
	svc := newService(&fakeEmitter{})
	slots := validSlots()
	slots.Cuisine = "french"

	resp, err := svc.Dispatch(context.Background(),
		diningRequest(models.SourceDialogCodeHook, models.ConfirmationNone, slots, nil))
	require.NoError(t, err)

	assert.Equal(t, models.ActionElicitSlot, resp.DialogAction.Type)
	assert.Equal(t, models.SlotCuisine, resp.DialogAction.SlotToElicit)
	assert.Empty(t, resp.DialogAction.Slots.Cuisine)
	assert.Equal(t, "New York", resp.DialogAction.Slots.Location)
}

func TestDenialAfterAutoPopulateRestartsFromLocation(t *testing.T) {
	svc := newService(&fakeEmitter{})
	attrs := map[string]string{
		models.AttrConfirmationContext: models.ContextAutoPopulate,
		models.AttrCurrentReservation:  "{}",
	}

	resp, err := svc.Dispatch(context.Background(),
		diningRequest(models.SourceDialogCodeHook, models.ConfirmationDenied, validSlots(), attrs))
	require.NoError(t, err)

	assert.Equal(t, models.ActionElicitSlot, resp.DialogAction.Type)
	assert.Equal(t, models.SlotLocation, resp.DialogAction.SlotToElicit)
	assert.True(t, resp.DialogAction.Slots.Empty())
	assert.Equal(t, "Which city are you going to dine in?", resp.DialogAction.Message.Content)
	assert.NotContains(t, resp.SessionAttributes, models.AttrConfirmationContext)
	assert.NotContains(t, resp.SessionAttributes, models.AttrCurrentReservation)
}

func TestDenialWithoutContextDelegates(t *testing.T) {
	svc := newService(&fakeEmitter{})
	slots := validSlots()

	resp, err := svc.Dispatch(context.Background(),
		diningRequest(models.SourceDialogCodeHook, models.ConfirmationDenied, slots, nil))
	require.NoError(t, err)

	assert.Equal(t, models.ActionDelegate, resp.DialogAction.Type)
	assert.Equal(t, slots, *resp.DialogAction.Slots)
}

func TestUnconfirmedIncompleteDelegates(t *testing.T) {
	svc := newService(&fakeEmitter{})
	slots := models.ReservationSlots{Location: "New York"}

	resp, err := svc.Dispatch(context.Background(),
		diningRequest(models.SourceDialogCodeHook, models.ConfirmationNone, slots, nil))
	require.NoError(t, err)

	assert.Equal(t, models.ActionDelegate, resp.DialogAction.Type)
}

func TestUnconfirmedCompleteAsksForConfirmation(t *testing.T) {
	svc := newService(&fakeEmitter{})

	resp, err := svc.Dispatch(context.Background(),
		diningRequest(models.SourceDialogCodeHook, models.ConfirmationNone, validSlots(), nil))
	require.NoError(t, err)

	assert.Equal(t, models.ActionConfirmIntent, resp.DialogAction.Type)
	assert.Contains(t, resp.DialogAction.Message.Content, "Italian")
}

func TestReturningUserGetsAutoPopulatedSuggestion(t *testing.T) {
	svc := newService(&fakeEmitter{})
	last, err := json.Marshal(models.NewDiningReservation(validSlots()))
	require.NoError(t, err)
	attrs := map[string]string{models.AttrLastConfirmedReservation: string(last)}

	resp, err := svc.Dispatch(context.Background(),
		diningRequest(models.SourceDialogCodeHook, models.ConfirmationNone, models.ReservationSlots{}, attrs))
	require.NoError(t, err)

	assert.Equal(t, models.ActionConfirmIntent, resp.DialogAction.Type)
	assert.Equal(t, "New York", resp.DialogAction.Slots.Location)
	assert.Equal(t, "19:00", resp.DialogAction.Slots.DiningTime)
	assert.Equal(t, "5551234567", resp.DialogAction.Slots.PhoneNum)
	// Party size and cuisine are asked fresh each time.
	assert.Empty(t, resp.DialogAction.Slots.NumPeople)
	assert.Empty(t, resp.DialogAction.Slots.Cuisine)
	assert.Equal(t, models.ContextAutoPopulate, resp.SessionAttributes[models.AttrConfirmationContext])
}

func TestConfirmedAutoPopulateElicitsMissingSlots(t *testing.T) {
	svc := newService(&fakeEmitter{})

	slots := validSlots()
	slots.NumPeople = ""
	slots.Cuisine = ""
	attrs := map[string]string{models.AttrConfirmationContext: models.ContextAutoPopulate}

	resp, err := svc.Dispatch(context.Background(),
		diningRequest(models.SourceDialogCodeHook, models.ConfirmationConfirmed, slots, attrs))
	require.NoError(t, err)
	assert.Equal(t, models.ActionElicitSlot, resp.DialogAction.Type)
	assert.Equal(t, models.SlotNumPeople, resp.DialogAction.SlotToElicit)
	assert.NotContains(t, resp.SessionAttributes, models.AttrConfirmationContext)

	slots.NumPeople = "4"
	attrs = map[string]string{models.AttrConfirmationContext: models.ContextAutoPopulate}
	resp, err = svc.Dispatch(context.Background(),
		diningRequest(models.SourceDialogCodeHook, models.ConfirmationConfirmed, slots, attrs))
	require.NoError(t, err)
	assert.Equal(t, models.ActionElicitSlot, resp.DialogAction.Type)
	assert.Equal(t, models.SlotCuisine, resp.DialogAction.SlotToElicit)
}

func TestConfirmedWithoutContextDelegates(t *testing.T) {
	svc := newService(&fakeEmitter{})

	resp, err := svc.Dispatch(context.Background(),
		diningRequest(models.SourceDialogCodeHook, models.ConfirmationConfirmed, validSlots(), nil))
	require.NoError(t, err)
	assert.Equal(t, models.ActionDelegate, resp.DialogAction.Type)
}

func TestFulfillmentEmitsExactlyOnce(t *testing.T) {
	em := &fakeEmitter{}
	svc := newService(em)
	slots := validSlots()

	resp, err := svc.Dispatch(context.Background(),
		diningRequest(models.SourceFulfillmentCodeHook, models.ConfirmationConfirmed, slots, nil))
	require.NoError(t, err)

	assert.Equal(t, models.ActionClose, resp.DialogAction.Type)
	assert.Equal(t, models.FulfillmentFulfilled, resp.DialogAction.FulfillmentState)
	assert.Contains(t, resp.DialogAction.Message.Content, "New York")
	assert.Contains(t, resp.DialogAction.Message.Content, "5551234567")
	require.Len(t, em.emitted, 1)
	assert.Equal(t, "Italian", em.emitted[0].Cuisine)

	// The confirmed reservation moved from current to last confirmed.
	assert.NotContains(t, resp.SessionAttributes, models.AttrCurrentReservation)
	assert.NotEmpty(t, resp.SessionAttributes[models.AttrLastConfirmedReservation])

	// A retried fulfillment turn for the same reservation closes again
	// without a second emission.
	resp2, err := svc.Dispatch(context.Background(),
		diningRequest(models.SourceFulfillmentCodeHook, models.ConfirmationConfirmed, slots, resp.SessionAttributes))
	require.NoError(t, err)
	assert.Equal(t, models.ActionClose, resp2.DialogAction.Type)
	assert.Equal(t, models.FulfillmentFulfilled, resp2.DialogAction.FulfillmentState)
	assert.Len(t, em.emitted, 1)
}

func TestFulfillmentEmissionFailureClosesFailed(t *testing.T) {
	em := &fakeEmitter{err: errors.New("queue unavailable")}
	svc := newService(em)

	resp, err := svc.Dispatch(context.Background(),
		diningRequest(models.SourceFulfillmentCodeHook, models.ConfirmationConfirmed, validSlots(), nil))
	require.NoError(t, err)

	assert.Equal(t, models.ActionClose, resp.DialogAction.Type)
	assert.Equal(t, models.FulfillmentFailed, resp.DialogAction.FulfillmentState)
	assert.NotContains(t, resp.SessionAttributes, models.AttrLastConfirmedReservation)
}
