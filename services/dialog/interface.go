package dialog

import (
	"context"

	"dinebot/models"

	"go.uber.org/zap"
)

// Emitter hands a completed reservation to the fulfillment queue.
type Emitter interface {
	Emit(ctx context.Context, res models.Reservation) error
}

// Service drives one conversational turn: it routes the inbound intent to the
// right handler and returns the dialog action for the engine to execute.
type Service interface {
	Dispatch(ctx context.Context, req *models.IntentRequest) (*models.IntentResponse, error)
}

// DefaultDialogService implements Service.
type DefaultDialogService struct {
	Emitter Emitter
	Logger  *zap.Logger
}
