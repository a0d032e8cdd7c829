package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/pawction/internal/config"
)

//go:generate mockgen -source=scheduler.go -destination=mock_scheduler.go -package=scheduler

type AuctionSweeper interface {
	CloseExpiredAuctions(ctx context.Context) (int, error)
}

type SettlementSweeper interface {
	ExpireOverdueSettlements(ctx context.Context) (int, error)
}

const (
	jobCloseExpired      = "close_expired"
	jobExpireSettlements = "expire_settlements"
)

// Scheduler fires the auction and settlement sweeps on cron schedules.
// A sweep that is still running when its next tick comes is skipped.
type Scheduler struct {
	cron         *cron.Cron
	workerPool   WorkerPoolI
	auctions     AuctionSweeper
	settlements  SettlementSweeper
	closeSpec    string
	settleSpec   string
	workers      int
	stopDeadline time.Duration
}

func New(cfg *config.Config, auctions AuctionSweeper, settlements SettlementSweeper) *Scheduler {
	logger := cronLogger{}
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		workerPool:   NewWorkerPool(cfg.SchedulerWorkers),
		auctions:     auctions,
		settlements:  settlements,
		closeSpec:    cfg.CloseExpiredSchedule,
		settleSpec:   cfg.SettlementSchedule,
		workers:      cfg.SchedulerWorkers,
		stopDeadline: 10 * time.Second,
	}
}

// Start registers both sweeps, runs them once to catch up on anything that
// expired while the service was down, and keeps them running until ctx is
// canceled.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.closeSpec, s.job(ctx, jobCloseExpired, s.auctions.CloseExpiredAuctions)); err != nil {
		return fmt.Errorf("invalid close expired schedule %q: %w", s.closeSpec, err)
	}
	if _, err := s.cron.AddFunc(s.settleSpec, s.job(ctx, jobExpireSettlements, s.settlements.ExpireOverdueSettlements)); err != nil {
		return fmt.Errorf("invalid settlement schedule %q: %w", s.settleSpec, err)
	}

	if err := s.SweepNow(ctx); err != nil {
		zap.L().Error("Start-up sweep failed", zap.Error(err))
	}

	s.cron.Start()
	zap.L().Info("Scheduler started",
		zap.String("close_expired", s.closeSpec),
		zap.String("expire_settlements", s.settleSpec))
	return nil
}

// Run starts the scheduler and blocks until ctx is canceled and running
// sweeps are drained.
func (s *Scheduler) Run(ctx context.Context) error {
	if err := s.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	s.Stop()
	return nil
}

// SweepNow runs both sweeps concurrently and waits for them. A failing sweep
// does not cancel the other one.
func (s *Scheduler) SweepNow(ctx context.Context) error {
	var g errgroup.Group
	if s.workers > 0 {
		g.SetLimit(s.workers)
	}
	g.Go(func() error {
		if _, err := s.auctions.CloseExpiredAuctions(ctx); err != nil {
			return fmt.Errorf("%s sweep: %w", jobCloseExpired, err)
		}
		return nil
	})
	g.Go(func() error {
		if _, err := s.settlements.ExpireOverdueSettlements(ctx); err != nil {
			return fmt.Errorf("%s sweep: %w", jobExpireSettlements, err)
		}
		return nil
	})
	return g.Wait()
}

func (s *Scheduler) Stop() {
	stopped := s.cron.Stop()
	select {
	case <-stopped.Done():
	case <-time.After(s.stopDeadline):
		zap.L().Error("Scheduler stop timed out, abandoning running sweeps")
	}
	s.workerPool.Close()
	zap.L().Info("Scheduler stopped")
}

// job submits one sweep to the worker pool and waits for it so that
// SkipIfStillRunning sees the sweep as running.
func (s *Scheduler) job(ctx context.Context, name string, sweep func(ctx context.Context) (int, error)) func() {
	return func() {
		done := make(chan struct{})
		err := s.workerPool.AddTask(ctx, func() error {
			defer close(done)
			n, err := sweep(ctx)
			if err != nil {
				return fmt.Errorf("%s sweep: %w", name, err)
			}
			if n > 0 {
				zap.L().Info("Sweep finished", zap.String("job", name), zap.Int("items", n))
			}
			return nil
		})
		if err != nil {
			zap.L().Debug("Sweep not submitted", zap.String("job", name), zap.Error(err))
			return
		}
		select {
		case <-done:
		case <-ctx.Done():
		}
	}
}

type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	zap.L().Sugar().Debugw(msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	zap.L().Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}
