package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"glance/monitor"
	"glance/ui"
)

const tickInterval = 800 * time.Millisecond

func main() {
	sampler := monitor.NewSampler()

	// Prime the CPU delta baselines before the first frame.
	if _, err := sampler.Refresh(); err != nil {
		fail(err)
	}

	p := tea.NewProgram(ui.NewModel(sampler, tickInterval), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		fail(err)
	}
	if m, ok := final.(ui.Model); ok && m.Err() != nil {
		fail(m.Err())
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "glance:", err)
	os.Exit(1)
}
