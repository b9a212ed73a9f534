package tui

import (
	"fmt"
	"strings"

	"github.com/agbru/pilegame/internal/format"
	"github.com/agbru/pilegame/internal/orchestration"
)

// historySize is the number of resource samples kept for the sparklines.
const historySize = 120

// MetricsModel shows exploration progress and resource usage.
type MetricsModel struct {
	progress orchestration.Progress
	current  int // coin count being played, 0 when idle
	pending  int // partitions of the current coin count

	alloc        uint64
	heapSys      uint64
	numGC        uint32
	numGoroutine int

	hostCPU float64
	hostMem float64
	procCPU *History
	width   int
}

// NewMetricsModel creates an empty metrics panel.
func NewMetricsModel() MetricsModel {
	return MetricsModel{procCPU: NewHistory(historySize)}
}

// SetWidth updates the panel width.
func (m *MetricsModel) SetWidth(w int) { m.width = w }

// StartBatch records the coin count now being played.
func (m *MetricsModel) StartBatch(coins, partitions int) {
	m.current = coins
	m.pending = partitions
}

// UpdateProgress records the progress after a completed batch.
func (m *MetricsModel) UpdateProgress(p orchestration.Progress) {
	m.progress = p
	if m.current == p.Coins {
		m.current, m.pending = 0, 0
	}
}

// UpdateMemStats stores runtime memory statistics.
func (m *MetricsModel) UpdateMemStats(msg MemStatsMsg) {
	m.alloc = msg.Alloc
	m.heapSys = msg.HeapSys
	m.numGC = msg.NumGC
	m.numGoroutine = msg.NumGoroutine
}

// UpdateSysStats stores host usage and appends process CPU to the history.
func (m *MetricsModel) UpdateSysStats(msg SysStatsMsg) {
	m.hostCPU = msg.CPUPercent
	m.hostMem = msg.MemPercent
	m.procCPU.Push(msg.ProcPercent)
}

// View renders the panel body, one metric per line.
func (m MetricsModel) View() string {
	inner := max(m.width-4, 10)
	var b strings.Builder

	barWidth := max(inner-8, 4)
	filled := int(m.progress.Fraction * float64(barWidth))
	bar := barFilledStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", barWidth-filled))
	fmt.Fprintf(&b, "%s %5.1f%%\n", bar, m.progress.Fraction*100)

	b.WriteString(metricRow("Partitions",
		format.FormatCount(m.progress.Done)+" / "+format.FormatCount(m.progress.Total)))
	if m.current > 0 {
		b.WriteString(metricRow("Playing", fmt.Sprintf("%d coins (%s)", m.current, format.FormatCount(m.pending))))
	} else {
		b.WriteString(metricRow("Playing", "-"))
	}
	b.WriteString(metricRow("ETA", format.FormatETA(m.progress.ETA)))
	b.WriteString(metricRow("Heap", format.FormatBytes(m.alloc)+" / "+format.FormatBytes(m.heapSys)))
	b.WriteString(metricRow("GC", fmt.Sprintf("%d", m.numGC)))
	b.WriteString(metricRow("Goroutines", fmt.Sprintf("%d", m.numGoroutine)))
	b.WriteString(metricRow("Host", fmt.Sprintf("CPU %4.1f%%  Mem %4.1f%%", m.hostCPU, m.hostMem)))
	b.WriteString(metricRow("Process", fmt.Sprintf("CPU %4.1f%%", m.procCPU.Last())))
	b.WriteString(accentStyle.Render(Sparkline(m.procCPU.Values(), 100, inner)))
	return b.String()
}

func metricRow(label, value string) string {
	return metricLabelStyle.Render(fmt.Sprintf("%-11s", label)) + metricValueStyle.Render(value) + "\n"
}
