// Package ui holds the color themes shared by the console report and the
// dashboard. Console output uses ANSI escape codes through the Color*
// accessors; the dashboard uses the lipgloss palette from GetCurrentTUITheme.
package ui
