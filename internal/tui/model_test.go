package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/pilegame/internal/config"
	apperrors "github.com/agbru/pilegame/internal/errors"
	"github.com/agbru/pilegame/internal/orchestration"
	"github.com/agbru/pilegame/internal/partition"
)

func newTestModel(t *testing.T, maxCoins int) Model {
	t.Helper()
	pool := orchestration.NewPool(2)
	t.Cleanup(pool.Shutdown)
	m := NewModel(context.Background(), pool, config.AppConfig{MaxCoins: maxCoins, Workers: 2}, "v1.0.0")
	t.Cleanup(m.cancel)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func fourCoins() orchestration.CoinResult {
	return orchestration.CoinResult{
		Coins:      4,
		Partitions: 5,
		Aggregate: orchestration.Aggregate{
			Total: 5, Observed: 5,
			HighestScore: 5, HighestScoreCount: 1, HighestScorePosition: partition.Partition{1, 1, 1, 1},
			HighestLoop: 3, HighestLoopCount: 5, HighestLoopPosition: partition.Partition{4},
		},
		Duration: time.Millisecond,
	}
}

func TestModel_BatchMessages(t *testing.T) {
	m := newTestModel(t, 4)

	m, _ = update(t, m, BatchStartedMsg{Coins: 4, Partitions: 5})
	if m.metrics.current != 4 {
		t.Errorf("current = %d, want 4", m.metrics.current)
	}
	m, _ = update(t, m, BatchCompletedMsg{Result: fourCoins()})
	if got := len(m.results.Results()); got != 1 {
		t.Fatalf("results = %d, want 1", got)
	}
	if m.metrics.current != 0 {
		t.Errorf("current = %d after completion, want 0", m.metrics.current)
	}
	if m.metrics.progress.Done != 5 || m.metrics.progress.Total != 11 {
		t.Errorf("progress = %d/%d, want 5/11", m.metrics.progress.Done, m.metrics.progress.Total)
	}
}

func TestModel_DropsStaleGeneration(t *testing.T) {
	m := newTestModel(t, 4)
	m.generation = 2

	m, _ = update(t, m, BatchCompletedMsg{Result: fourCoins(), Generation: 1})
	m, _ = update(t, m, ExploreDoneMsg{ExitCode: apperrors.ExitErrorGeneric, Generation: 1})
	if len(m.results.Results()) != 0 || m.done {
		t.Error("stale messages must be ignored")
	}
}

func TestModel_ExploreDone(t *testing.T) {
	m := newTestModel(t, 4)
	m, _ = update(t, m, ExploreDoneMsg{ExitCode: apperrors.ExitSuccess})
	if !m.done || m.exitCode != apperrors.ExitSuccess {
		t.Errorf("done=%v exitCode=%d", m.done, m.exitCode)
	}
	if m.footer.Status() != "DONE" {
		t.Errorf("status = %q, want DONE", m.footer.Status())
	}

	// Ticks stop once done.
	if _, cmd := update(t, m, TickMsg(time.Now())); cmd != nil {
		t.Error("tick after done should not reschedule")
	}
}

func TestModel_ContextCancelledQuits(t *testing.T) {
	m := newTestModel(t, 4)
	m, cmd := update(t, m, ContextCancelledMsg{Err: context.DeadlineExceeded})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.exitCode != apperrors.ExitErrorTimeout {
		t.Errorf("exitCode = %d, want %d", m.exitCode, apperrors.ExitErrorTimeout)
	}
}

func TestModel_PauseToggles(t *testing.T) {
	m := newTestModel(t, 4)
	p := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}

	m, _ = update(t, m, p)
	if !m.gate.Paused() || m.footer.Status() != "PAUSED" {
		t.Fatal("first p should pause")
	}
	m, _ = update(t, m, p)
	if m.gate.Paused() {
		t.Error("second p should resume")
	}
}

func TestModel_RestartClearsState(t *testing.T) {
	m := newTestModel(t, 4)
	m, _ = update(t, m, BatchCompletedMsg{Result: fourCoins()})
	m, _ = update(t, m, ExploreDoneMsg{})
	old := m.ctx

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	t.Cleanup(m.cancel)
	if cmd == nil {
		t.Fatal("restart should return commands")
	}
	if m.generation != 1 || m.done || len(m.results.Results()) != 0 {
		t.Errorf("generation=%d done=%v results=%d", m.generation, m.done, len(m.results.Results()))
	}
	if old.Err() == nil {
		t.Error("restart should cancel the previous run")
	}
}

func TestModel_ExploreCmd(t *testing.T) {
	m := newTestModel(t, 4)
	msg := m.exploreCmd()()
	done, ok := msg.(ExploreDoneMsg)
	if !ok {
		t.Fatalf("got %T, want ExploreDoneMsg", msg)
	}
	if done.Err != nil || done.ExitCode != apperrors.ExitSuccess {
		t.Errorf("err=%v exitCode=%d", done.Err, done.ExitCode)
	}
}

func TestModel_View(t *testing.T) {
	m := newTestModel(t, 4)
	if m.View() != "Initializing..." {
		t.Error("view before the first resize should be a placeholder")
	}
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 140, Height: 30})
	m, _ = update(t, m, BatchCompletedMsg{Result: fourCoins()})
	v := m.View()
	for _, want := range []string{"Pile Game Explorer", "v1.0.0", "[1,1,1,1]", "RUNNING"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModel_QuitCancels(t *testing.T) {
	m := newTestModel(t, 4)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if m.ctx.Err() == nil {
		t.Error("quit should cancel the run context")
	}
}
