package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/pilegame/internal/orchestration"
)

// programRef is a shared reference to the tea.Program.
// bubbletea copies the model on every Update, so the reporter needs a
// pointer that survives copies to send messages from the explorer goroutine.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the bubbletea program. It is a no-op until
// SetProgram has been called.
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// pauseGate holds the explorer between batches while the dashboard is
// paused. A batch already handed to the pool always completes.
type pauseGate struct {
	mu     sync.Mutex
	paused bool
	resume chan struct{}
}

func newPauseGate() *pauseGate {
	return &pauseGate{}
}

// Pause makes subsequent Wait calls block until Resume.
func (g *pauseGate) Pause() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.paused {
		g.paused = true
		g.resume = make(chan struct{})
	}
}

// Resume releases every waiter.
func (g *pauseGate) Resume() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.paused {
		g.paused = false
		close(g.resume)
	}
}

// Paused reports whether the gate is closed.
func (g *pauseGate) Paused() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.paused
}

// Wait blocks while the gate is paused or until ctx is done.
func (g *pauseGate) Wait(ctx context.Context) {
	g.mu.Lock()
	if !g.paused {
		g.mu.Unlock()
		return
	}
	ch := g.resume
	g.mu.Unlock()
	select {
	case <-ch:
	case <-ctx.Done():
	}
}

// TUIReporter implements orchestration.BatchReporter by forwarding batch
// notifications to the dashboard. Every message is stamped with the run
// generation so the model can drop notifications from a restarted run.
// BatchCompleted also holds the explorer while the dashboard is paused.
type TUIReporter struct {
	ctx        context.Context
	ref        *programRef
	gate       *pauseGate
	generation uint64
}

var _ orchestration.BatchReporter = (*TUIReporter)(nil)

// BatchStarted sends a BatchStartedMsg.
func (t *TUIReporter) BatchStarted(coins, partitions int) {
	t.ref.Send(BatchStartedMsg{Coins: coins, Partitions: partitions, Generation: t.generation})
}

// BatchCompleted sends a BatchCompletedMsg.
func (t *TUIReporter) BatchCompleted(result orchestration.CoinResult) {
	t.ref.Send(BatchCompletedMsg{Result: result, Generation: t.generation})
	if t.gate != nil {
		t.gate.Wait(t.ctx)
	}
}
