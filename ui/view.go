package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"glance/model"
)

// Layout: three stacked boxes inside a 1-cell margin. The gauges are
// one content row each, the process list takes the rest of the screen.
const (
	surfaceMargin   = 1
	gaugeRows       = 3 // content row plus top/bottom border
	minListRows     = 5
	gaugeLabelWidth = 8
)

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	contentWidth := m.width - 2*surfaceMargin - 2

	cpuPct := model.ClampPercent(m.snapshot.CPUPercent)
	cpuRow := cpuLabelStyle.Render(gaugeLabel("CPU")) +
		m.cpuGauge.ViewAs(float64(cpuPct)/100.0)
	memRow := memLabelStyle.Render(gaugeLabel("Memory")) +
		m.memGauge.ViewAs(float64(m.memPct)/100.0)

	box := boxStyle.Width(contentWidth)

	return surfaceStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		box.Render(cpuRow),
		box.Render(memRow),
		box.Render(m.renderProcessList()),
	))
}

func (m Model) renderProcessList() string {
	listRows := m.height - 2*surfaceMargin - 2*gaugeRows
	if listRows < minListRows {
		listRows = minListRows
	}
	contentRows := listRows - 2 // borders

	var b strings.Builder
	b.WriteString(listTitleStyle.Render("Top Processes"))
	for i, r := range m.ranked {
		if i >= contentRows-1 {
			break
		}
		b.WriteString("\n")
		b.WriteString(formatRow(r))
	}
	return b.String()
}

func gaugeLabel(name string) string {
	return fmt.Sprintf("%-*s", gaugeLabelWidth, name)
}
