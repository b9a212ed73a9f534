package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/pilegame/internal/format"
)

// HeaderModel renders the top bar: title, version, target, elapsed time.
type HeaderModel struct {
	startTime time.Time
	endTime   time.Time
	version   string
	maxCoins  int
	workers   int
	width     int
	now       func() time.Time
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version string, maxCoins, workers int) HeaderModel {
	h := HeaderModel{
		version:  version,
		maxCoins: maxCoins,
		workers:  workers,
		now:      time.Now,
	}
	h.startTime = h.now()
	return h
}

// SetDone freezes the elapsed timer.
func (h *HeaderModel) SetDone() {
	h.endTime = h.now()
}

// Reset restarts the elapsed timer.
func (h *HeaderModel) Reset() {
	h.startTime = h.now()
	h.endTime = time.Time{}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// Elapsed returns the time since the run started, frozen once done.
func (h HeaderModel) Elapsed() time.Duration {
	if !h.endTime.IsZero() {
		return h.endTime.Sub(h.startTime)
	}
	return h.now().Sub(h.startTime)
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "Pile Game Explorer"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	pipe := dimStyle.Render(" | ")
	left := titleStyle.Render(titleText) + pipe +
		accentStyle.Render(fmt.Sprintf("N ≤ %d", h.maxCoins)) + pipe +
		accentStyle.Render(fmt.Sprintf("%d workers", h.workers)) + pipe +
		accentStyle.Render("Elapsed: "+format.FormatExecutionDuration(h.Elapsed()))

	gap := max(h.width-2-lipgloss.Width(left), 0)
	return headerStyle.Width(h.width).Render(left + strings.Repeat(" ", gap))
}
