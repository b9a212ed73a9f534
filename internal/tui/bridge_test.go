package tui

import (
	"context"
	"testing"
	"time"

	"github.com/agbru/pilegame/internal/orchestration"
)

func TestProgramRef_SendWithoutProgram(t *testing.T) {
	t.Parallel()
	ref := &programRef{}
	ref.Send(TickMsg(time.Now())) // must not panic
}

func TestTUIReporter_NoProgram(t *testing.T) {
	t.Parallel()
	r := &TUIReporter{ctx: context.Background(), ref: &programRef{}, gate: newPauseGate()}
	r.BatchStarted(3, 3)
	r.BatchCompleted(orchestration.CoinResult{Coins: 3, Partitions: 3})
}

func TestPauseGate_BlocksUntilResume(t *testing.T) {
	t.Parallel()
	g := newPauseGate()
	g.Pause()
	if !g.Paused() {
		t.Fatal("gate should be paused")
	}

	released := make(chan struct{})
	go func() {
		g.Wait(context.Background())
		close(released)
	}()

	select {
	case <-released:
		t.Fatal("Wait returned while paused")
	case <-time.After(50 * time.Millisecond):
	}

	g.Resume()
	select {
	case <-released:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait did not return after Resume")
	}
	if g.Paused() {
		t.Error("gate should be open after Resume")
	}
}

func TestPauseGate_ContextReleases(t *testing.T) {
	t.Parallel()
	g := newPauseGate()
	g.Pause()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		g.Wait(ctx)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait ignored a cancelled context")
	}
}

func TestPauseGate_Idempotent(t *testing.T) {
	t.Parallel()
	g := newPauseGate()
	g.Resume()
	g.Pause()
	g.Pause()
	g.Resume()
	g.Resume()
	g.Wait(context.Background())
}
