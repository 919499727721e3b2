package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"glance/model"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
		// every other key is ignored
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		gw := msg.Width - 2*surfaceMargin - 2 - gaugeLabelWidth
		if gw < 1 {
			gw = 1
		}
		m.cpuGauge.Width = gw
		m.memGauge.Width = gw
		return m, nil

	case tickMsg:
		return m.tick()
	}
	return m, nil
}

// tick runs one refresh cycle: sample, derive the frame state, then
// schedule the next frame for whatever is left of the interval.
func (m Model) tick() (tea.Model, tea.Cmd) {
	start := time.Now()

	snap, err := m.source.Refresh()
	if err != nil {
		m.err = err
		return m, tea.Quit
	}

	m.snapshot = snap
	m.ranked = model.RankByCPU(snap.Processes, model.MaxRows)
	m.memPct = model.MemPercent(snap.MemUsed, snap.MemTotal)
	m.lastTick = start

	return m, tickCmd(tickBudget(m.interval, time.Since(start)))
}

// tickBudget is the wait before the next frame: the interval minus
// time already spent, never negative. A refresh that overruns the
// interval triggers the next frame immediately rather than drifting.
func tickBudget(interval, elapsed time.Duration) time.Duration {
	if elapsed >= interval {
		return 0
	}
	return interval - elapsed
}
