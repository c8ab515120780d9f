package fulfillment

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"dinebot/models"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{ID: "task-1"}, nil
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+11234567890", NormalizePhone("1234567890"))
	assert.Equal(t, "+11234567890", NormalizePhone("+11234567890"))
	assert.Equal(t, "+441234567890", NormalizePhone("+441234567890"))
}

func TestEmitSerializesWireForm(t *testing.T) {
	fake := &fakeEnqueuer{}
	em := &QueueEmitter{client: fake, maxRetry: 3, timeout: time.Minute, logger: zap.NewNop()}

	res := models.NewDiningReservation(models.ReservationSlots{
		Location:   "New York",
		Cuisine:    "Italian",
		DiningTime: "19:00",
		NumPeople:  "4",
		PhoneNum:   "5551234567",
	})
	require.NoError(t, em.Emit(context.Background(), res))
	require.Len(t, fake.tasks, 1)

	task := fake.tasks[0]
	assert.Equal(t, TypeSuggestRestaurants, task.Type())

	var msg models.QueueMessage
	require.NoError(t, json.Unmarshal(task.Payload(), &msg))
	assert.Equal(t, models.QueueMessage{
		Location: "New York",
		Time:     "19:00",
		Cuisine:  "Italian",
		People:   "4",
		Phone:    "+15551234567",
	}, msg)
}

func TestEmitPropagatesEnqueueFailure(t *testing.T) {
	fake := &fakeEnqueuer{err: errors.New("redis down")}
	em := &QueueEmitter{client: fake, maxRetry: 3, timeout: time.Minute, logger: zap.NewNop()}

	err := em.Emit(context.Background(), models.NewDiningReservation(models.ReservationSlots{
		PhoneNum: "5551234567",
	}))
	assert.Error(t, err)
}
