package fulfillment

import (
	"time"

	"dinebot/config"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// StartWorker runs the fulfillment consumer in the background. Multiple
// instances may run concurrently; they compete for queue messages without
// coordination.
func StartWorker(w *Worker) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: config.AppConfig.WorkerConcurrency,
			Queues: map[string]int{
				QueueName: 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSuggestRestaurants, w.HandleSuggestionTask)

	go func() {
		w.Logger.Info("starting fulfillment worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				w.Logger.Error("fulfillment worker failed to start",
					zap.Int("attempt", attempts), zap.Error(err))

				if attempts == maxAttempts {
					w.Logger.Fatal("fulfillment worker: max retry attempts reached")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}
