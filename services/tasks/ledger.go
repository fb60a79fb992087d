package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Present111/Hotel-Booking/models"

	"github.com/hibiken/asynq"
)

const (
	TypeLedgerApply = "ledger:apply"
	LedgerQueue     = "ledger"
)

func NewLedgerTask(payload models.LedgerPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeLedgerApply, b)
	opts := []asynq.Option{
		asynq.Queue(LedgerQueue),
		asynq.TaskID(LedgerTaskID(payload)),
		asynq.Timeout(30 * time.Second),
	}
	return task, opts, nil
}

// LedgerTaskID identifies one side of one booking delta, so the same failure
// is never queued twice.
func LedgerTaskID(p models.LedgerPayload) string {
	op := "create"
	if p.Count < 0 {
		op = "delete"
	}
	return fmt.Sprintf("ledger:%s:%s:%s:%s", op, p.Target, p.ID, p.BookingID)
}

// ParseLedgerPayload decodes and checks a queued ledger task.
func ParseLedgerPayload(task *asynq.Task) (models.LedgerPayload, error) {
	var p models.LedgerPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("invalid ledger payload: %w", err)
	}
	if p.ID == "" || (p.Target != models.LedgerTargetHotel && p.Target != models.LedgerTargetUser) {
		return p, fmt.Errorf("invalid ledger payload: target %q id %q", p.Target, p.ID)
	}
	return p, nil
}

// Enqueuer is the part of *asynq.Client the queue uses.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AsynqCounterQueue hands failed counter updates to the ledger worker.
type AsynqCounterQueue struct {
	Client   Enqueuer
	MaxRetry int
}

func NewAsynqCounterQueue(client Enqueuer, maxRetry int) *AsynqCounterQueue {
	return &AsynqCounterQueue{Client: client, MaxRetry: maxRetry}
}

func (q *AsynqCounterQueue) EnqueueLedgerRetry(ctx context.Context, payload models.LedgerPayload) error {
	task, opts, err := NewLedgerTask(payload)
	if err != nil {
		return err
	}
	if q.MaxRetry > 0 {
		opts = append(opts, asynq.MaxRetry(q.MaxRetry))
	}

	if _, err := q.Client.EnqueueContext(ctx, task, opts...); err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return fmt.Errorf("enqueue %s: %w", TypeLedgerApply, err)
	}
	return nil
}
