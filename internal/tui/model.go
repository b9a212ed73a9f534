package tui

import (
	"context"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/pilegame/internal/config"
	apperrors "github.com/agbru/pilegame/internal/errors"
	"github.com/agbru/pilegame/internal/game"
	"github.com/agbru/pilegame/internal/logging"
	"github.com/agbru/pilegame/internal/orchestration"
	"github.com/agbru/pilegame/internal/sysmon"
)

// Layout constants for the dashboard.
const (
	headerHeight         = 1
	footerHeight         = 1
	minBodyHeight        = 8
	ResultsPanelWidthPct = 65
	tickInterval         = 500 * time.Millisecond
)

// ExecutionState holds the run-related fields of a dashboard session.
type ExecutionState struct {
	ctx        context.Context
	cancel     context.CancelFunc
	generation uint64
	done       bool
	exitCode   int
	err        error
}

// LayoutManager holds terminal dimensions.
type LayoutManager struct {
	width  int
	height int
}

func (l LayoutManager) bodyHeight() int {
	return max(l.height-headerHeight-footerHeight, minBodyHeight)
}

func (l LayoutManager) resultsWidth() int {
	return l.width * ResultsPanelWidthPct / 100
}

func (l LayoutManager) metricsWidth() int {
	return l.width - l.resultsWidth()
}

// Model is the root bubbletea model of the dashboard.
type Model struct {
	header  HeaderModel
	results ResultsModel
	metrics MetricsModel
	footer  FooterModel
	keymap  KeyMap

	ExecutionState
	LayoutManager

	parentCtx context.Context
	config    config.AppConfig
	pool      *orchestration.Pool
	sampler   *sysmon.Sampler
	tracker   *orchestration.ProgressTracker
	gate      *pauseGate
	ref       *programRef
}

// NewModel creates a dashboard exploring up to cfg.MaxCoins on pool.
func NewModel(parentCtx context.Context, pool *orchestration.Pool, cfg config.AppConfig, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)
	keymap := DefaultKeyMap()
	return Model{
		header:  NewHeaderModel(version, cfg.MaxCoins, pool.Workers()),
		results: NewResultsModel(),
		metrics: NewMetricsModel(),
		footer:  NewFooterModel(keymap.ShortHelp()),
		keymap:  keymap,
		ExecutionState: ExecutionState{
			ctx:      ctx,
			cancel:   cancel,
			exitCode: apperrors.ExitSuccess,
		},
		parentCtx: parentCtx,
		config:    cfg,
		pool:      pool,
		sampler:   sysmon.NewSampler(),
		tracker:   orchestration.NewProgressTracker(cfg.MaxCoins),
		gate:      newPauseGate(),
		ref:       &programRef{},
	}
}

// Init starts the exploration, the sampling ticker and the context watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		m.exploreCmd(),
		watchContextCmd(m.ctx, m.generation),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case BatchStartedMsg:
		if msg.Generation == m.generation {
			m.metrics.StartBatch(msg.Coins, msg.Partitions)
		}
		return m, nil

	case BatchCompletedMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.results.Add(msg.Result)
		if m.tracker != nil {
			m.metrics.UpdateProgress(m.tracker.Update(msg.Result))
		}
		return m, nil

	case ExploreDoneMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.done = true
		m.err = msg.Err
		m.exitCode = msg.ExitCode
		m.header.SetDone()
		m.footer.SetDone(true)
		m.footer.SetError(msg.ExitCode != apperrors.ExitSuccess)
		return m, nil

	case ContextCancelledMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		if !m.done {
			m.done = true
			m.err = msg.Err
			m.exitCode = apperrors.ExitCodeFor(msg.Err)
			m.header.SetDone()
			m.footer.SetDone(true)
		}
		return m, tea.Quit

	case TickMsg:
		if m.done {
			return m, nil
		}
		if m.gate.Paused() {
			return m, tickCmd()
		}
		return m, tea.Batch(sampleMemStatsCmd(), sampleSysStatsCmd(m.sampler), tickCmd())

	case MemStatsMsg:
		m.metrics.UpdateMemStats(msg)
		return m, nil

	case SysStatsMsg:
		m.metrics.UpdateSysStats(msg)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.gate.Resume()
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Pause):
		if m.done {
			return m, nil
		}
		if m.gate.Paused() {
			m.gate.Resume()
		} else {
			m.gate.Pause()
		}
		m.footer.SetPaused(m.gate.Paused())
		return m, nil

	case key.Matches(msg, m.keymap.Reset):
		return m.restart()

	case key.Matches(msg, m.keymap.Up), key.Matches(msg, m.keymap.Down),
		key.Matches(msg, m.keymap.PageUp), key.Matches(msg, m.keymap.PageDown):
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}

	return m, nil
}

// restart cancels the current run and explores again from one coin. The
// old run stops at its next batch boundary; its messages are dropped by
// generation.
func (m Model) restart() (tea.Model, tea.Cmd) {
	if m.cancel != nil {
		m.cancel()
	}
	m.gate.Resume()

	m.generation++
	m.ctx, m.cancel = context.WithCancel(m.parentCtx)

	m.header.Reset()
	m.results.Reset()
	m.metrics = NewMetricsModel()
	m.metrics.SetWidth(m.metricsWidth())
	m.tracker = orchestration.NewProgressTracker(m.config.MaxCoins)
	m.footer.SetDone(false)
	m.footer.SetError(false)
	m.footer.SetPaused(false)
	m.done = false
	m.err = nil
	m.exitCode = apperrors.ExitSuccess

	return m, tea.Batch(
		tickCmd(),
		m.exploreCmd(),
		watchContextCmd(m.ctx, m.generation),
	)
}

// View renders the whole dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	body := m.bodyHeight() - 2
	results := panelStyle.
		Width(max(m.resultsWidth()-2, 0)).
		Height(body).
		Render(m.results.View())
	side := panelStyle.
		Width(max(m.metricsWidth()-2, 0)).
		Height(body).
		Render(m.sideView())

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		lipgloss.JoinHorizontal(lipgloss.Top, results, side),
		m.footer.View(),
	)
}

func (m Model) sideView() string {
	v := m.metrics.View()
	if m.err != nil {
		v += "\n" + statusErrorStyle.Render(m.err.Error())
	}
	return v
}

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.results.SetSize(m.resultsWidth(), m.bodyHeight())
	m.metrics.SetWidth(m.metricsWidth())
}

// exploreCmd runs the exploration of the current generation in a command
// goroutine and reports its outcome as an ExploreDoneMsg.
func (m Model) exploreCmd() tea.Cmd {
	ctx, gen, pool, maxCoins := m.ctx, m.generation, m.pool, m.config.MaxCoins
	reporter := &TUIReporter{ctx: ctx, ref: m.ref, gate: m.gate, generation: gen}
	return func() tea.Msg {
		start := time.Now()
		explorer := orchestration.NewExplorer(pool, reporter, logging.Nop())
		_, err := explorer.Run(ctx, maxCoins)
		return ExploreDoneMsg{
			Err:        err,
			Duration:   time.Since(start),
			ExitCode:   apperrors.ExitCodeFor(err),
			Generation: gen,
		}
	}
}

// Run is the entry point of the dashboard mode. It owns the worker pool
// for the session and returns the exit code of the last run.
func Run(ctx context.Context, cfg config.AppConfig, version string) int {
	initTUIStyles()

	pool := orchestration.NewPool(cfg.Workers,
		orchestration.WithGameOptions(game.WithMaxMoves(cfg.MaxMoves)))
	defer pool.Shutdown()

	model := NewModel(ctx, pool, cfg, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	model.gate.Resume()
	if m, ok := finalModel.(Model); ok {
		m.cancel()
		if m.done {
			return m.exitCode
		}
		return apperrors.ExitErrorCanceled
	}
	if err != nil {
		return apperrors.ExitCodeFor(err)
	}
	return apperrors.ExitSuccess
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleMemStatsCmd reads runtime memory stats.
func sampleMemStatsCmd() tea.Cmd {
	return func() tea.Msg {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		return MemStatsMsg{
			Alloc:        ms.Alloc,
			HeapSys:      ms.HeapSys,
			NumGC:        ms.NumGC,
			NumGoroutine: runtime.NumGoroutine(),
		}
	}
}

// sampleSysStatsCmd reads host and process CPU usage.
func sampleSysStatsCmd(s *sysmon.Sampler) tea.Cmd {
	return func() tea.Msg {
		return SysStatsMsg(s.Sample())
	}
}

// watchContextCmd waits for the run context to end.
func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err(), Generation: gen}
	}
}
