package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"glance/model"
)

// Model holds TUI state
type Model struct {
	source   MetricSource
	interval time.Duration
	lastTick time.Time

	snapshot model.Snapshot
	ranked   []model.ProcRec
	memPct   int

	cpuGauge progress.Model
	memGauge progress.Model

	width  int
	height int

	err error
}

func NewModel(source MetricSource, interval time.Duration) Model {
	return Model{
		source:   source,
		interval: interval,
		cpuGauge: progress.New(progress.WithSolidFill(cpuFillColor)),
		memGauge: progress.New(progress.WithSolidFill(memFillColor)),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(0),
		tea.EnterAltScreen,
	)
}

// Err reports the failure that terminated the loop, if any.
func (m Model) Err() error { return m.err }

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
