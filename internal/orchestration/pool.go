package orchestration

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	apperrors "github.com/agbru/pilegame/internal/errors"
	"github.com/agbru/pilegame/internal/game"
	"github.com/agbru/pilegame/internal/logging"
	"github.com/agbru/pilegame/internal/parallel"
	"github.com/agbru/pilegame/internal/partition"
)

// ErrPoolClosed is returned by RunBatch after Shutdown.
var ErrPoolClosed = errors.New("orchestration: pool is shut down")

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithGameOptions passes options to every game.Play call.
func WithGameOptions(opts ...game.Option) PoolOption {
	return func(p *Pool) { p.gameOpts = append(p.gameOpts, opts...) }
}

// WithLogger sets the pool logger.
func WithLogger(l logging.Logger) PoolOption {
	return func(p *Pool) { p.logger = l }
}

// Pool is a fixed set of long-lived worker goroutines that play every
// position of a batch. Workers are started once by NewPool and reused for
// every RunBatch call until Shutdown.
//
// Each batch goes through a three-step handshake guarded by mu and cond:
// RunBatch raises "started", waits until every worker has acknowledged it,
// clears it, then waits until every worker has reported "finished". Workers
// claim positions through a cursor guarded by claimMu and fold results into
// the Aggregator, which has its own lock; the two locks are never held
// together.
type Pool struct {
	workers  int
	gameOpts []game.Option
	logger   logging.Logger

	// batchMu serializes RunBatch and Shutdown.
	batchMu sync.Mutex

	mu       sync.Mutex
	cond     *sync.Cond
	batchID  uint64
	started  bool
	running  bool
	arrived  int
	finished int

	claimMu   sync.Mutex
	positions []partition.StartPos
	next      int
	claims    atomic.Uint64

	agg    Aggregator
	errs   *parallel.ErrorCollector
	failed atomic.Bool

	shutdownOnce sync.Once
	exited       sync.WaitGroup
}

// NewPool starts workers goroutines. A count below one starts a single worker.
// Callers must call Shutdown when done.
func NewPool(workers int, opts ...PoolOption) *Pool {
	if workers < 1 {
		workers = 1
	}
	p := &Pool{
		workers: workers,
		running: true,
		logger:  logging.Nop(),
		errs:    &parallel.ErrorCollector{},
	}
	for _, opt := range opts {
		opt(p)
	}
	p.cond = sync.NewCond(&p.mu)

	p.exited.Add(workers)
	for id := 0; id < workers; id++ {
		go p.worker(id)
	}
	p.logger.Debug("worker pool started", logging.Int("workers", workers))
	return p
}

// Workers returns the pool size.
func (p *Pool) Workers() int { return p.workers }

// Claims returns the number of positions claimed by workers since the pool
// was created.
func (p *Pool) Claims() uint64 { return p.claims.Load() }

// RunBatch plays every position and returns the aggregated maxima.
//
// The batch always runs to completion once started: ctx is only consulted
// before the batch is published. If any game fails, workers stop claiming
// new positions and the first error is returned alongside the partial
// aggregate.
func (p *Pool) RunBatch(ctx context.Context, positions []partition.StartPos) (Aggregate, error) {
	p.batchMu.Lock()
	defer p.batchMu.Unlock()

	if err := ctx.Err(); err != nil {
		return Aggregate{}, err
	}
	p.mu.Lock()
	running := p.running
	p.mu.Unlock()
	if !running {
		return Aggregate{}, ErrPoolClosed
	}

	p.agg.Reset(len(positions))
	errs := &parallel.ErrorCollector{}
	p.failed.Store(false)

	p.claimMu.Lock()
	p.positions = positions
	p.next = 0
	p.claimMu.Unlock()

	p.mu.Lock()
	p.errs = errs
	p.batchID++
	p.started = true
	p.cond.Broadcast()
	for p.arrived < p.workers {
		p.cond.Wait()
	}
	// Every worker has seen this batch; clearing the signal keeps them from
	// re-entering once they run out of positions.
	p.started = false
	for p.finished < p.workers {
		p.cond.Wait()
	}
	p.arrived, p.finished = 0, 0
	p.mu.Unlock()

	p.claimMu.Lock()
	p.positions = nil
	p.claimMu.Unlock()

	return p.agg.Snapshot(), errs.Err()
}

// Shutdown stops every worker and waits for them to exit. It waits for an
// in-flight batch to finish first and is safe to call more than once.
func (p *Pool) Shutdown() {
	p.shutdownOnce.Do(func() {
		p.batchMu.Lock()
		p.mu.Lock()
		p.running = false
		p.started = true
		p.cond.Broadcast()
		p.mu.Unlock()
		p.batchMu.Unlock()

		p.exited.Wait()
		p.logger.Debug("worker pool stopped", logging.Uint64("claims", p.Claims()))
	})
}

func (p *Pool) worker(id int) {
	defer p.exited.Done()

	var seen uint64
	for {
		p.mu.Lock()
		for p.running && (!p.started || p.batchID == seen) {
			p.cond.Wait()
		}
		if !p.running {
			p.mu.Unlock()
			return
		}
		seen = p.batchID
		errs := p.errs
		p.arrived++
		p.cond.Broadcast()
		p.mu.Unlock()

		p.drain(errs)

		p.mu.Lock()
		p.finished++
		p.cond.Broadcast()
		p.mu.Unlock()
	}
}

// drain plays positions until the batch is exhausted or a game fails.
func (p *Pool) drain(errs *parallel.ErrorCollector) {
	for {
		pos, ok := p.claim()
		if !ok {
			return
		}
		res, err := game.Play(pos, p.gameOpts...)
		if err != nil {
			p.failed.Store(true)
			errs.SetError(apperrors.WrapError(err, "playing %s", pos.Position))
			return
		}
		p.agg.Observe(pos.Position, res)
	}
}

// claim hands out the next unplayed position.
func (p *Pool) claim() (partition.StartPos, bool) {
	if p.failed.Load() {
		return partition.StartPos{}, false
	}
	p.claimMu.Lock()
	defer p.claimMu.Unlock()
	if p.next >= len(p.positions) {
		return partition.StartPos{}, false
	}
	pos := p.positions[p.next]
	p.next++
	p.claims.Add(1)
	return pos, true
}
