// Package pipeline recalculates the statistics whenever the point store
// changes and keeps the newest result.
package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/arloliu/rechenmodul/calculation"
	"github.com/arloliu/rechenmodul/internal/options"
	"github.com/arloliu/rechenmodul/store"
)

// DefaultWorkers is the number of concurrent calculations used by default.
const DefaultWorkers = 2

// Source publishes store snapshots. *store.Store implements it.
type Source interface {
	Subscribe(ctx context.Context) <-chan store.Snapshot
}

// Update is the calculation result for one store version. Result is nil when
// the snapshot was empty.
type Update struct {
	Version uint64
	Result  *calculation.Result
	Elapsed time.Duration
}

// Pipeline turns snapshots into results. Results are published in version
// order: a result for an older version never replaces a newer one, even when
// calculations finish out of order.
type Pipeline struct {
	source  Source
	logger  *zap.Logger
	workers int

	mu      sync.RWMutex
	latest  Update
	ready   bool
	changed chan struct{}
}

// Option configures a Pipeline.
type Option = options.Option[*Pipeline]

// WithWorkers sets the number of concurrent calculations.
func WithWorkers(n int) Option {
	return options.New(func(p *Pipeline) error {
		if n < 1 {
			return fmt.Errorf("pipeline workers must be positive, got %d", n)
		}
		p.workers = n

		return nil
	})
}

// New creates a pipeline reading from source. A nil logger disables logging.
func New(source Source, logger *zap.Logger, opts ...Option) (*Pipeline, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &Pipeline{
		source:  source,
		logger:  logger.Named("pipeline"),
		workers: DefaultWorkers,
		changed: make(chan struct{}),
	}
	if err := options.Apply(p, opts...); err != nil {
		return nil, err
	}

	return p, nil
}

// Run consumes snapshots until ctx is done and the source closes its channel.
func (p *Pipeline) Run(ctx context.Context) error {
	snapshots := p.source.Subscribe(ctx)
	p.logger.Info("pipeline started", zap.Int("workers", p.workers))

	var wg sync.WaitGroup
	for range p.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for snap := range snapshots {
				p.process(snap)
			}
		}()
	}
	wg.Wait()

	p.logger.Info("pipeline stopped")

	return nil
}

func (p *Pipeline) process(snap store.Snapshot) {
	start := time.Now()
	result, _ := calculation.Calculate(snap.Sample)
	update := Update{Version: snap.Version, Result: result, Elapsed: time.Since(start)}

	if !p.publish(update) {
		p.logger.Debug("discarded stale result", zap.Uint64("version", snap.Version))
		return
	}

	p.logger.Debug("recalculated",
		zap.Uint64("version", snap.Version),
		zap.Int("points", len(snap.Sample)),
		zap.Duration("elapsed", update.Elapsed))
}

// publish stores u unless a result for the same or a newer version is
// already present, and wakes up waiters.
func (p *Pipeline) publish(u Update) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready && u.Version <= p.latest.Version {
		return false
	}

	p.latest = u
	p.ready = true
	close(p.changed)
	p.changed = make(chan struct{})

	return true
}

// Latest returns the newest result. ok is false until the first result is
// available.
func (p *Pipeline) Latest() (Update, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.latest, p.ready
}

// Wait blocks until a result for version or a newer one is available.
func (p *Pipeline) Wait(ctx context.Context, version uint64) (Update, error) {
	for {
		p.mu.RLock()
		latest, ready, changed := p.latest, p.ready, p.changed
		p.mu.RUnlock()

		if ready && latest.Version >= version {
			return latest, nil
		}

		select {
		case <-changed:
		case <-ctx.Done():
			return Update{}, ctx.Err()
		}
	}
}
