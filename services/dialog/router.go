package dialog

import (
	"context"
	"fmt"

	"dinebot/models"

	"go.uber.org/zap"
)

// Dispatch routes an inbound intent event to its handler.
func (s *DefaultDialogService) Dispatch(ctx context.Context, req *models.IntentRequest) (*models.IntentResponse, error) {
	s.Logger.Debug("dispatching intent",
		zap.String("userId", req.UserID),
		zap.String("intentName", req.CurrentIntent.Name),
	)

	switch req.CurrentIntent.Name {
	case models.IntentGreetings:
		return closeDialog(map[string]string{}, models.FulfillmentFulfilled, "Hi there, how can I help you?"), nil
	case models.IntentThankYou:
		return closeDialog(map[string]string{}, models.FulfillmentFulfilled, "Welcome !! Have a nice day ahead."), nil
	case models.IntentDiningSuggestions:
		return s.diningSuggestions(ctx, req), nil
	}

	return nil, fmt.Errorf("intent with name %s not supported", req.CurrentIntent.Name)
}
