package fulfillment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dinebot/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// taskEnqueuer is the slice of asynq.Client the emitter uses.
type taskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueEmitter serializes confirmed reservations and enqueues them on the
// fulfillment queue. Enqueue failures propagate to the caller: the dialog
// turn is not fulfilled if the reservation never reached the queue.
type QueueEmitter struct {
	client   taskEnqueuer
	maxRetry int
	timeout  time.Duration
	logger   *zap.Logger
}

// NewQueueEmitter returns an emitter backed by the given asynq client.
func NewQueueEmitter(client *asynq.Client, maxRetry int, timeout time.Duration, logger *zap.Logger) *QueueEmitter {
	return &QueueEmitter{client: client, maxRetry: maxRetry, timeout: timeout, logger: logger}
}

// Emit normalizes the phone number, serializes the reservation into its wire
// form, and enqueues it for the fulfillment worker.
func (e *QueueEmitter) Emit(ctx context.Context, res models.Reservation) error {
	msg := models.QueueMessage{
		Location: res.Location,
		Time:     res.DiningTime,
		Cuisine:  res.Cuisine,
		People:   res.NumPeople,
		Phone:    NormalizePhone(res.PhoneNum),
	}

	task, err := NewSuggestionTask(msg)
	if err != nil {
		return fmt.Errorf("failed to serialize queue message: %w", err)
	}

	info, err := e.client.EnqueueContext(ctx, task,
		asynq.Queue(QueueName),
		asynq.MaxRetry(e.maxRetry),
		asynq.Timeout(e.timeout),
	)
	if err != nil {
		return fmt.Errorf("failed to enqueue reservation: %w", err)
	}

	e.logger.Debug("reservation enqueued",
		zap.String("taskId", info.ID),
		zap.String("cuisine", msg.Cuisine),
		zap.String("phone", msg.Phone),
	)
	return nil
}

// NormalizePhone converts a 10-digit domestic number to international form.
// Numbers that already carry a "+" prefix are passed through unchanged.
func NormalizePhone(phone string) string {
	if strings.HasPrefix(phone, "+") {
		return phone
	}
	return "+1" + phone
}
