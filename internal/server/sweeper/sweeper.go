// Package sweeper periodically deletes expired reset tokens, idle sessions
// and stale verification tokens.
package sweeper

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophaccounts/internal/dbx"
	"github.com/dmitrijs2005/gophaccounts/internal/logging"
	"github.com/dmitrijs2005/gophaccounts/internal/server/repositories/repomanager"
	"go.uber.org/multierr"
)

const (
	ResetTokenRetention  = time.Hour
	SessionRetention     = 7 * 24 * time.Hour
	VerifyTokenRetention = 30 * 24 * time.Hour
)

// Result counts the rows removed by one sweep.
type Result struct {
	ResetTokens  int64
	Sessions     int64
	VerifyTokens int64
}

type Sweeper struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
	interval    time.Duration
	log         logging.Logger
	now         func() time.Time
}

// New builds a sweeper over its own handle db. The deletes are independent
// and run outside a transaction.
func New(db dbx.DBTX, m repomanager.RepositoryManager, interval time.Duration, log logging.Logger) *Sweeper {
	return &Sweeper{
		db:          db,
		repomanager: m,
		interval:    interval,
		log:         log,
		now:         time.Now,
	}
}

func (s *Sweeper) WithClock(now func() time.Time) *Sweeper {
	s.now = now
	return s
}

// Sweep runs all three deletions once. A failing deletion does not stop the
// others; their errors are combined.
func (s *Sweeper) Sweep(ctx context.Context) (Result, error) {
	var (
		res  Result
		errs error
		err  error
	)
	now := s.now()

	res.ResetTokens, err = s.repomanager.ResetTokens(s.db).DeleteCreatedBefore(ctx, now.Add(-ResetTokenRetention))
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("reset tokens: %w", err))
	}

	res.Sessions, err = s.repomanager.Sessions(s.db).DeleteUpdatedBefore(ctx, now.Add(-SessionRetention))
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("sessions: %w", err))
	}

	res.VerifyTokens, err = s.repomanager.VerifyTokens(s.db).DeleteCreatedBefore(ctx, now.Add(-VerifyTokenRetention))
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("verify tokens: %w", err))
	}

	return res, errs
}

// Run sweeps right away and then on every tick until ctx is done. Failures
// are logged and retried on the next tick.
func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info(ctx, "sweeper started", "interval", s.interval)
	for {
		s.runOnce(ctx)

		select {
		case <-ctx.Done():
			s.log.Info(context.WithoutCancel(ctx), "sweeper stopped")
			return nil
		case <-ticker.C:
		}
	}
}

func (s *Sweeper) runOnce(ctx context.Context) {
	start := time.Now()
	res, err := s.Sweep(ctx)
	if err != nil {
		for _, e := range multierr.Errors(err) {
			s.log.Warn(ctx, "sweep failed", "error", e)
		}
	}
	s.log.Info(ctx, "sweep finished",
		"reset_tokens", res.ResetTokens,
		"sessions", res.Sessions,
		"verify_tokens", res.VerifyTokens,
		"took", time.Since(start))
}
