// Package poller drives the periodic fetch, classify, reconcile, notify
// cycle in one long-lived background goroutine. That goroutine is the sole
// invoker of the reconciliation engine, so overlapping reconciliations
// against the same snapshot cannot happen.
package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"prwatch/internal/config"
	"prwatch/internal/core"
	"prwatch/internal/engine"
	"prwatch/internal/github"
	"prwatch/internal/notify"
)

const identityTimeout = 30 * time.Second

// Poller owns the poll loop and the current pull request list.
type Poller struct {
	loadConfig func() (*config.Config, error)
	source     core.PRSource
	fetcher    *github.Fetcher
	reconciler *engine.Reconciler
	markers    *engine.Markers
	dispatcher *notify.Dispatcher
	logger     *slog.Logger

	mu   sync.RWMutex
	prs  []core.PullRequest
	user string

	refresh chan struct{}
	stop    chan struct{}
	wg      sync.WaitGroup
}

// New creates a poller. loadConfig is called at the start of every cycle so
// config edits take effect without a restart.
func New(
	loadConfig func() (*config.Config, error),
	source core.PRSource,
	fetcher *github.Fetcher,
	reconciler *engine.Reconciler,
	markers *engine.Markers,
	dispatcher *notify.Dispatcher,
	logger *slog.Logger,
) *Poller {
	return &Poller{
		loadConfig: loadConfig,
		source:     source,
		fetcher:    fetcher,
		reconciler: reconciler,
		markers:    markers,
		dispatcher: dispatcher,
		logger:     logger,
		refresh:    make(chan struct{}, 1),
		stop:       make(chan struct{}),
	}
}

// Start launches the poll loop.
func (p *Poller) Start(ctx context.Context) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.run(ctx)
	}()
}

// Stop ends the poll loop and waits for an in-flight cycle to finish.
func (p *Poller) Stop() {
	close(p.stop)
	p.wg.Wait()
}

// RefreshNow requests an out-of-band poll. Markers clear eagerly, before the
// fetch completes (optimistic UI, matching a user's "I have caught up"
// intent). Requests are coalesced: at most one extra poll can queue behind an
// in-flight one.
func (p *Poller) RefreshNow() {
	p.markers.MarkAllSeen()
	select {
	case p.refresh <- struct{}{}:
	default:
	}
}

// PullRequests returns a copy of the most recent cycle's list.
func (p *Poller) PullRequests() []core.PullRequest {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]core.PullRequest, len(p.prs))
	copy(out, p.prs)
	return out
}

func (p *Poller) run(ctx context.Context) {
	for {
		interval := p.runCycle(ctx)
		select {
		case <-ctx.Done():
			return
		case <-p.stop:
			return
		case <-p.refresh:
		case <-time.After(interval):
		}
	}
}

// runCycle performs one reconciliation cycle and returns the interval until
// the next one. Any panic is contained here: one bad cycle must never take
// the background task down.
func (p *Poller) runCycle(ctx context.Context) (interval time.Duration) {
	interval = config.DefaultPollInterval
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("poll cycle panicked", "panic", r)
		}
	}()

	cfg, err := p.loadConfig()
	if err != nil {
		p.logger.Error("config reload failed", "error", err)
		return interval
	}
	interval = cfg.PollInterval()

	user, err := p.username(ctx)
	if err != nil {
		p.logger.Error("identity lookup failed", "error", err)
		p.setPRs(nil)
		return interval
	}

	prs := p.fetcher.FetchAll(ctx, cfg.Repos, user)
	events := p.reconciler.Reconcile(prs)
	p.dispatcher.Dispatch(events)
	p.setPRs(prs)

	p.logger.Debug("poll cycle complete", "open_prs", len(prs), "events", len(events))
	return interval
}

func (p *Poller) username(ctx context.Context) (string, error) {
	p.mu.RLock()
	user := p.user
	p.mu.RUnlock()
	if user != "" {
		return user, nil
	}

	lctx, cancel := context.WithTimeout(ctx, identityTimeout)
	defer cancel()
	user, err := p.source.CurrentUser(lctx)
	if err != nil {
		return "", err
	}

	p.mu.Lock()
	p.user = user
	p.mu.Unlock()
	p.logger.Info("authenticated", "user", user)
	return user, nil
}

func (p *Poller) setPRs(prs []core.PullRequest) {
	p.mu.Lock()
	p.prs = prs
	p.mu.Unlock()
}
