package cron

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Present111/Hotel-Booking/config"
	"github.com/Present111/Hotel-Booking/database/repository"
	"github.com/Present111/Hotel-Booking/models"
	"github.com/Present111/Hotel-Booking/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// LedgerApplier applies one queued side of a booking delta.
type LedgerApplier interface {
	ApplyTarget(ctx context.Context, p models.LedgerPayload) error
}

// InitLedgerWorker starts the ledger retry worker. The returned server must
// be shut down by the caller.
func InitLedgerWorker(ledger LedgerApplier, logger *zap.Logger) (*asynq.Server, error) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				tasks.LedgerQueue: 1,
			},
			Logger:          logger.Named("asynq").Sugar(),
			ShutdownTimeout: 10 * time.Second,
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeLedgerApply, handleLedgerTask(ledger, logger))

	if err := srv.Start(mux); err != nil {
		return nil, fmt.Errorf("start ledger worker: %w", err)
	}
	logger.Info("Ledger worker started", zap.String("queue", tasks.LedgerQueue))
	return srv, nil
}

func handleLedgerTask(ledger LedgerApplier, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseLedgerPayload(task)
		if err != nil {
			logger.Error("Dropping ledger task", zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		retried, _ := asynq.GetRetryCount(ctx)
		err = ledger.ApplyTarget(ctx, p)
		switch {
		case err == nil:
			logger.Info("Deferred counter update applied",
				zap.String("target", string(p.Target)), zap.String("id", p.ID),
				zap.String("bookingId", p.BookingID), zap.Int("retried", retried))
			return nil
		case errors.Is(err, repository.ErrNotFound):
			logger.Warn("Counter owner missing, deferred delta dropped",
				zap.String("target", string(p.Target)), zap.String("id", p.ID), zap.String("bookingId", p.BookingID))
			return nil
		default:
			logger.Warn("Deferred counter update failed",
				zap.String("target", string(p.Target)), zap.String("id", p.ID),
				zap.Int("retried", retried), zap.Error(err))
			return err
		}
	}
}
