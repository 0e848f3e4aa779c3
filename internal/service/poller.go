package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// Poller periodically runs mail extraction in the background. It can run
// once immediately on Start and then runs on every interval tick until Stop.
type Poller struct {
	interval   time.Duration
	runOnStart bool
	svc        *ExtractionService
	logger     *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPoller creates a Poller that drives svc.RunMailExtraction. When
// runOnStart is set the first run happens immediately instead of after the
// first tick.
func NewPoller(interval time.Duration, runOnStart bool, svc *ExtractionService, logger *slog.Logger) *Poller {
	return &Poller{
		interval:   interval,
		runOnStart: runOnStart,
		svc:        svc,
		logger:     logger.With("component", "mail_poller"),
	}
}

// Start launches the polling loop. Calling Start on a running poller is a
// no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.logger.Info("mail poller started", "interval", p.interval.String())

		if p.runOnStart {
			p.runOnce(ctx)
		}

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				p.logger.Info("mail poller stopped")
				return
			case <-ticker.C:
				p.runOnce(ctx)
			}
		}
	}()
}

// Stop cancels the polling loop and waits for the in-flight run to finish.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	p.wg.Wait()
}

func (p *Poller) runOnce(ctx context.Context) {
	tasks, err := p.svc.RunMailExtraction(ctx)
	switch {
	case errors.Is(err, ErrNoMailSource):
		p.logger.Debug("mail extraction skipped, no source configured")
	case errors.Is(err, context.Canceled):
	case err != nil:
		p.logger.ErrorContext(ctx, "mail extraction run failed", "error", err)
	default:
		p.logger.InfoContext(ctx, "mail extraction run complete", "tasks", len(tasks))
	}
}
