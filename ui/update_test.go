package ui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glance/model"
)

type fakeSource struct {
	snap  model.Snapshot
	err   error
	calls int
}

func (f *fakeSource) Refresh() (model.Snapshot, error) {
	f.calls++
	return f.snap, f.err
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestQuitKeyTerminates(t *testing.T) {
	m := NewModel(&fakeSource{}, 800*time.Millisecond)

	_, cmd := m.Update(keyMsg('q'))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCtrlCTerminates(t *testing.T) {
	m := NewModel(&fakeSource{}, 800*time.Millisecond)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestOtherKeysIgnored(t *testing.T) {
	m := NewModel(&fakeSource{}, 800*time.Millisecond)

	for _, msg := range []tea.Msg{
		keyMsg('x'),
		keyMsg('c'),
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyEnter},
	} {
		got, cmd := m.Update(msg)
		assert.Nil(t, cmd, "key %v must not produce a command", msg)
		assert.NoError(t, got.(Model).Err())
	}
}

func TestTickRefreshesAndReschedules(t *testing.T) {
	procs := make([]model.ProcRec, 15)
	for i := range procs {
		procs[i] = model.ProcRec{Pid: int32(i + 1), CPU: float64(i)}
	}
	src := &fakeSource{snap: model.Snapshot{
		CPUPercent: 33.0,
		MemTotal:   8000,
		MemUsed:    4000,
		Processes:  procs,
	}}
	m := NewModel(src, 800*time.Millisecond)

	got, cmd := m.Update(tickMsg(time.Now()))
	gm := got.(Model)

	assert.Equal(t, 1, src.calls)
	assert.Equal(t, 50, gm.memPct)
	assert.Len(t, gm.ranked, model.MaxRows)
	assert.Equal(t, 14.0, gm.ranked[0].CPU)
	assert.False(t, gm.lastTick.IsZero())
	require.NotNil(t, cmd, "next tick must be scheduled")
	assert.NoError(t, gm.Err())
}

func TestTickSamplerFailureQuits(t *testing.T) {
	boom := errors.New("proc table gone")
	m := NewModel(&fakeSource{err: boom}, 800*time.Millisecond)

	got, cmd := m.Update(tickMsg(time.Now()))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.ErrorIs(t, got.(Model).Err(), boom)
}

func TestTickBudgetNeverNegative(t *testing.T) {
	interval := 800 * time.Millisecond

	tests := []struct {
		name    string
		elapsed time.Duration
		want    time.Duration
	}{
		{"plenty left", 100 * time.Millisecond, 700 * time.Millisecond},
		{"exactly spent", interval, 0},
		{"overrun clamps to zero", 2 * time.Second, 0},
		{"nothing spent", 0, interval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tickBudget(interval, tt.elapsed)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, time.Duration(0))
		})
	}
}

func TestWindowSizeResizesGauges(t *testing.T) {
	m := NewModel(&fakeSource{}, 800*time.Millisecond)

	got, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	gm := got.(Model)

	assert.Equal(t, 100, gm.width)
	assert.Equal(t, 40, gm.height)
	assert.Equal(t, 100-2*surfaceMargin-2-gaugeLabelWidth, gm.cpuGauge.Width)
	assert.Equal(t, gm.cpuGauge.Width, gm.memGauge.Width)

	// A pathologically narrow terminal still leaves a drawable bar.
	got, _ = gm.Update(tea.WindowSizeMsg{Width: 5, Height: 10})
	assert.Equal(t, 1, got.(Model).cpuGauge.Width)
}
