package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hotel-frontdesk/internal/usecase/commands"
)

// Sweeper polls the jobs table: due room releases first, then the outbox.
type Sweeper struct {
	jobs     commands.JobCommands
	interval time.Duration
	logger   *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSweeper(jobs commands.JobCommands, interval time.Duration, logger *slog.Logger) *Sweeper {
	if interval <= 0 {
		interval = time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Sweeper{jobs: jobs, interval: interval, logger: logger}
}

func (s *Sweeper) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.RunOnce(ctx)
			}
		}
	}()
}

// Stop waits for the pass in flight to finish.
func (s *Sweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.wg.Wait()
}

func (s *Sweeper) RunOnce(ctx context.Context) {
	released, err := s.jobs.ReleaseDueRooms(ctx)
	if err != nil && ctx.Err() == nil {
		s.logger.Error("room release sweep failed", "error", err.Error())
	}
	if released > 0 {
		s.logger.Info("rooms released after cleaning", "count", released)
	}

	sent, err := s.jobs.RelayDueEvents(ctx)
	if err != nil && ctx.Err() == nil {
		s.logger.Error("event relay failed", "error", err.Error())
	}
	if sent > 0 {
		s.logger.Debug("events relayed", "count", sent)
	}
}
