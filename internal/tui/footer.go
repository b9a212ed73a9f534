package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// FooterModel renders key hints and the run status.
type FooterModel struct {
	bindings []key.Binding
	paused   bool
	done     bool
	err      bool
	width    int
}

// NewFooterModel creates a footer showing the given bindings.
func NewFooterModel(bindings []key.Binding) FooterModel {
	return FooterModel{bindings: bindings}
}

func (f *FooterModel) SetPaused(p bool) { f.paused = p }

func (f *FooterModel) SetDone(d bool) { f.done = d }

func (f *FooterModel) SetError(e bool) { f.err = e }

func (f *FooterModel) SetWidth(w int) { f.width = w }

// Status returns the plain status label.
func (f FooterModel) Status() string {
	switch {
	case f.err:
		return "FAILED"
	case f.done:
		return "DONE"
	case f.paused:
		return "PAUSED"
	default:
		return "RUNNING"
	}
}

// View renders the footer.
func (f FooterModel) View() string {
	var b strings.Builder
	for i, kb := range f.bindings {
		if i > 0 {
			b.WriteString(footerDescStyle.Render("  "))
		}
		h := kb.Help()
		b.WriteString(footerKeyStyle.Render(h.Key))
		b.WriteString(" ")
		b.WriteString(footerDescStyle.Render(h.Desc))
	}

	style := statusRunningStyle
	switch {
	case f.err:
		style = statusErrorStyle
	case f.done:
		style = statusDoneStyle
	case f.paused:
		style = statusPausedStyle
	}
	row := " " + style.Render(f.Status()) + "  " + b.String()
	if f.width > 0 {
		return lipgloss.NewStyle().MaxWidth(f.width).Render(row)
	}
	return row
}
