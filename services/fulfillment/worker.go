package fulfillment

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"dinebot/models"
	"dinebot/services/notification"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const (
	// maxCandidates is how many search hits are sampled before resolving.
	maxCandidates = 10
	// maxSuggestions is how many resolved restaurants end up in the message.
	maxSuggestions = 5
)

// SearchIndex queries the restaurant search index for a cuisine term.
type SearchIndex interface {
	SearchByCuisine(ctx context.Context, cuisine string) ([]string, error)
}

// Directory resolves restaurant IDs to directory records.
type Directory interface {
	GetByID(ctx context.Context, id string) (*models.Restaurant, error)
}

// Worker drains the fulfillment queue: per message it queries the search
// index, resolves a sample of candidates, composes the suggestion text, and
// dispatches it to the user's phone. The task is acknowledged only when the
// handler returns nil, so a crash or downstream failure before dispatch
// leads to redelivery rather than a silently dropped reservation.
type Worker struct {
	Index       SearchIndex
	Directory   Directory
	Notifier    notification.Sender
	CallTimeout time.Duration
	Logger      *zap.Logger

	// Rand drives candidate sampling; injected so tests can pin the order.
	Rand *rand.Rand
	mu   sync.Mutex
}

// HandleSuggestionTask processes one queue message.
func (w *Worker) HandleSuggestionTask(ctx context.Context, task *asynq.Task) error {
	var msg models.QueueMessage
	if err := json.Unmarshal(task.Payload(), &msg); err != nil {
		w.Logger.Error("dropping malformed queue message", zap.Error(err))
		return fmt.Errorf("unmarshal queue message: %v: %w", err, asynq.SkipRetry)
	}
	if msg.Cuisine == "" || msg.Phone == "" {
		w.Logger.Error("dropping queue message without cuisine or phone",
			zap.String("cuisine", msg.Cuisine), zap.String("phone", msg.Phone))
		return fmt.Errorf("queue message missing cuisine or phone: %w", asynq.SkipRetry)
	}

	ids, err := w.searchCuisine(ctx, msg.Cuisine)
	if err != nil {
		return err
	}

	picks := w.resolveCandidates(ctx, w.sample(ids, maxCandidates))
	text := ComposeSuggestion(msg, picks)

	nctx, cancel := context.WithTimeout(ctx, w.CallTimeout)
	defer cancel()
	if err := w.Notifier.Send(nctx, msg.Phone, text); err != nil {
		return fmt.Errorf("failed to dispatch suggestions to %s: %w", msg.Phone, err)
	}

	w.Logger.Info("suggestions dispatched",
		zap.String("cuisine", msg.Cuisine),
		zap.String("phone", msg.Phone),
		zap.Int("count", len(picks)),
	)
	return nil
}

// searchCuisine queries the index. A query failure or empty hit list is
// returned as an error so the message is redelivered instead of being acked
// without ever notifying the user.
func (w *Worker) searchCuisine(ctx context.Context, cuisine string) ([]string, error) {
	sctx, cancel := context.WithTimeout(ctx, w.CallTimeout)
	defer cancel()

	ids, err := w.Index.SearchByCuisine(sctx, cuisine)
	if err != nil {
		return nil, fmt.Errorf("cuisine search for %q failed: %w", cuisine, err)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no search hits for cuisine %q", cuisine)
	}
	return ids, nil
}

// resolveCandidates looks up candidate IDs until enough records resolved or
// candidates ran out. A failed lookup skips to the next candidate.
func (w *Worker) resolveCandidates(ctx context.Context, ids []string) []*models.Restaurant {
	picks := make([]*models.Restaurant, 0, maxSuggestions)
	for _, id := range ids {
		if len(picks) == maxSuggestions {
			break
		}
		lctx, cancel := context.WithTimeout(ctx, w.CallTimeout)
		rec, err := w.Directory.GetByID(lctx, id)
		cancel()
		if err != nil {
			w.Logger.Warn("skipping unresolvable restaurant",
				zap.String("id", id), zap.Error(err))
			continue
		}
		picks = append(picks, rec)
	}
	return picks
}

// sample picks up to n IDs uniformly at random without replacement, so the
// same top search hits are not surfaced every time.
func (w *Worker) sample(ids []string, n int) []string {
	w.mu.Lock()
	perm := w.Rand.Perm(len(ids))
	w.mu.Unlock()

	if n > len(ids) {
		n = len(ids)
	}
	out := make([]string, 0, n)
	for _, i := range perm[:n] {
		out = append(out, ids[i])
	}
	return out
}
