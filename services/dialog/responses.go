package dialog

import "dinebot/models"

// Builders for the four dialog actions the controller can hand back to the
// dialog engine.

func elicitSlot(attrs map[string]string, intentName string, slots models.ReservationSlots, slotToElicit, message string) *models.IntentResponse {
	return &models.IntentResponse{
		SessionAttributes: attrs,
		DialogAction: models.DialogAction{
			Type:         models.ActionElicitSlot,
			IntentName:   intentName,
			Slots:        &slots,
			SlotToElicit: slotToElicit,
			Message:      models.PlainText(message),
		},
	}
}

func confirmIntent(attrs map[string]string, intentName string, slots models.ReservationSlots, message string) *models.IntentResponse {
	return &models.IntentResponse{
		SessionAttributes: attrs,
		DialogAction: models.DialogAction{
			Type:       models.ActionConfirmIntent,
			IntentName: intentName,
			Slots:      &slots,
			Message:    models.PlainText(message),
		},
	}
}

func delegate(attrs map[string]string, slots models.ReservationSlots) *models.IntentResponse {
	return &models.IntentResponse{
		SessionAttributes: attrs,
		DialogAction: models.DialogAction{
			Type:  models.ActionDelegate,
			Slots: &slots,
		},
	}
}

func closeDialog(attrs map[string]string, fulfillmentState, message string) *models.IntentResponse {
	return &models.IntentResponse{
		SessionAttributes: attrs,
		DialogAction: models.DialogAction{
			Type:             models.ActionClose,
			FulfillmentState: fulfillmentState,
			Message:          models.PlainText(message),
		},
	}
}
