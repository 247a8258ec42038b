// Package worker runs background maintenance next to the HTTP server.
package worker

import (
	"context"
	"log/slog"
	"time"

	"preloved-market/internal/pkg/clock"
	"preloved-market/internal/pkg/config"
	"preloved-market/internal/pkg/metrics"
	"preloved-market/internal/usecase/shared"

	"go.uber.org/fx"
)

// Sweeper physically releases lapsed cart holds and PENDING hanger rentals. Reads already
// treat them as released; the sweep only keeps the tables small and unique slots free.
type Sweeper struct {
	store      shared.Store
	clock      clock.Clock
	pendingTTL time.Duration
	interval   time.Duration
	logger     *slog.Logger

	stop chan struct{}
	done chan struct{}
}

type SweepResult struct {
	CartHolds     int
	HangerRentals int
}

func NewSweeper(store shared.Store, clk clock.Clock, cfg config.Config, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		store:      store,
		clock:      clk,
		pendingTTL: cfg.Engine.HangerPendingTTL,
		interval:   cfg.Sweeper.Interval,
		logger:     logger.With(slog.String("component", "sweeper")),
	}
}

// RunOnce performs a single sweep. Both passes run even if the first fails.
func (s *Sweeper) RunOnce(ctx context.Context) (SweepResult, error) {
	now := s.clock.Now()
	var (
		res      SweepResult
		firstErr error
	)

	n, err := s.store.Carts().DeleteExpired(ctx, now)
	if err != nil {
		s.logger.ErrorContext(ctx, "cart hold sweep failed", slog.String("error", err.Error()))
		firstErr = err
	} else {
		res.CartHolds = n
		metrics.SweeperReleased.WithLabelValues("cart_hold").Add(float64(n))
	}

	n, err = s.store.Rentals().ExpirePending(ctx, now.Add(-s.pendingTTL), now)
	if err != nil {
		s.logger.ErrorContext(ctx, "hanger rental sweep failed", slog.String("error", err.Error()))
		if firstErr == nil {
			firstErr = err
		}
	} else {
		res.HangerRentals = n
		metrics.SweeperReleased.WithLabelValues("hanger_rental").Add(float64(n))
	}

	if res.CartHolds > 0 || res.HangerRentals > 0 {
		s.logger.InfoContext(ctx, "released lapsed records",
			slog.Int("cart_holds", res.CartHolds),
			slog.Int("hanger_rentals", res.HangerRentals))
	}
	return res, firstErr
}

func (s *Sweeper) Start() {
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.loop()
}

func (s *Sweeper) Stop(ctx context.Context) error {
	if s.stop == nil {
		return nil
	}
	close(s.stop)
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Sweeper) loop() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	s.logger.Info("sweeper started", slog.Duration("interval", s.interval))

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), s.interval)
			_, _ = s.RunOnce(ctx)
			cancel()
		case <-s.stop:
			s.logger.Info("sweeper stopped")
			return
		}
	}
}

// RegisterSweeper ties the sweeper to the application lifecycle when enabled.
func RegisterSweeper(lc fx.Lifecycle, s *Sweeper, cfg config.Config) {
	if !cfg.Sweeper.Enabled {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			s.Start()
			return nil
		},
		OnStop: s.Stop,
	})
}

var Module = fx.Module("worker",
	fx.Provide(NewSweeper),
	fx.Invoke(RegisterSweeper),
)
