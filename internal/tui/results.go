package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/pilegame/internal/format"
	"github.com/agbru/pilegame/internal/orchestration"
)

// ResultsModel lists one row per explored coin count.
type ResultsModel struct {
	table   table.Model
	results []orchestration.CoinResult
	scores  *History
	loops   *History
	width   int
}

// NewResultsModel creates an empty results panel.
func NewResultsModel() ResultsModel {
	t := table.New(
		table.WithColumns(resultColumns(0)),
		table.WithFocused(true),
		table.WithHeight(5),
	)
	t.SetStyles(tableStyles)
	return ResultsModel{
		table:  t,
		scores: NewHistory(historySize),
		loops:  NewHistory(historySize),
	}
}

// resultColumns sizes the example columns to the available width.
func resultColumns(width int) []table.Column {
	fixed := []table.Column{
		{Title: "Coins", Width: 5},
		{Title: "Partitions", Width: 10},
		{Title: "Score", Width: 5},
		{Title: "Shared", Width: 9},
		{Title: "Loop", Width: 5},
		{Title: "Shared", Width: 9},
		{Title: "Time", Width: 8},
	}
	used := 0
	for _, c := range fixed {
		used += c.Width + 2
	}
	example := max(width-used-4, 12)
	return append(fixed, table.Column{Title: "Score example", Width: example})
}

// Add appends the row of a completed coin count and scrolls to it.
func (r *ResultsModel) Add(res orchestration.CoinResult) {
	r.results = append(r.results, res)
	r.scores.Push(float64(res.Aggregate.HighestScore))
	r.loops.Push(float64(res.Aggregate.HighestLoop))
	r.table.SetRows(append(r.table.Rows(), resultRow(res)))
	r.table.GotoBottom()
}

// Results returns the completed coin counts in order.
func (r ResultsModel) Results() []orchestration.CoinResult { return r.results }

// Reset clears every row.
func (r *ResultsModel) Reset() {
	r.results = nil
	r.scores.Reset()
	r.loops.Reset()
	r.table.SetRows(nil)
}

// SetSize resizes the table to w x h cells.
func (r *ResultsModel) SetSize(w, h int) {
	r.width = w
	r.table.SetColumns(resultColumns(w))
	r.table.SetWidth(max(w-2, 0))
	r.table.SetHeight(max(h-4, 1))
}

// Update forwards navigation keys to the table.
func (r ResultsModel) Update(msg tea.Msg) (ResultsModel, tea.Cmd) {
	var cmd tea.Cmd
	r.table, cmd = r.table.Update(msg)
	return r, cmd
}

// View renders the table followed by the score and loop sparklines.
func (r ResultsModel) View() string {
	width := max(r.width-12, 8)
	return r.table.View() + "\n" +
		scoreStyle.Render("score ") + Sparkline(r.scores.Values(), 0, width) + "\n" +
		loopStyle.Render("loop  ") + Sparkline(r.loops.Values(), 0, width)
}

func resultRow(res orchestration.CoinResult) table.Row {
	agg := res.Aggregate
	return table.Row{
		fmt.Sprintf("%d", res.Coins),
		format.FormatCount(res.Partitions),
		fmt.Sprintf("%d", agg.HighestScore),
		format.FormatShare(agg.HighestScoreCount, agg.Total),
		fmt.Sprintf("%d", agg.HighestLoop),
		format.FormatShare(agg.HighestLoopCount, agg.Total),
		format.FormatExecutionDuration(res.Duration),
		agg.HighestScorePosition.String(),
	}
}
