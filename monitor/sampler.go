package monitor

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"

	"glance/model"
)

// Sampler reads host metrics through gopsutil. It keeps a handle per
// live pid so that process.Percent(0) measures CPU use between two
// successive Refresh calls instead of returning garbage on first read.
type Sampler struct {
	procs map[int32]*process.Process
}

func NewSampler() *Sampler {
	return &Sampler{procs: make(map[int32]*process.Process)}
}

// Refresh re-samples everything and returns a fresh snapshot. The
// caller should invoke it once at startup to prime the CPU deltas;
// that first snapshot reports 0% for every process.
func (s *Sampler) Refresh() (model.Snapshot, error) {
	cpuPct, err := cpu.Percent(0, false)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("sampling cpu: %w", err)
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("sampling memory: %w", err)
	}

	procs, err := process.Processes()
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("listing processes: %w", err)
	}

	alive := make(map[int32]bool, len(procs))
	for _, p := range procs {
		alive[p.Pid] = true
		if _, ok := s.procs[p.Pid]; !ok {
			s.procs[p.Pid] = p
		}
	}
	for pid := range s.procs {
		if !alive[pid] {
			delete(s.procs, pid)
		}
	}

	records := make([]model.ProcRec, 0, len(s.procs))
	for _, p := range s.procs {
		pct, err := p.Percent(0)
		if err != nil {
			// died between enumeration and sampling
			continue
		}

		name, err := p.Name()
		if err != nil {
			name = "unknown"
		}

		var rss uint64
		if mi, err := p.MemoryInfo(); err == nil {
			rss = mi.RSS
		}

		records = append(records, model.ProcRec{
			Pid:  p.Pid,
			Name: name,
			CPU:  pct,
			RSS:  rss,
		})
	}

	snap := model.Snapshot{
		MemTotal:  vm.Total,
		MemUsed:   vm.Used,
		Processes: records,
	}
	if len(cpuPct) > 0 {
		snap.CPUPercent = cpuPct[0]
	}
	return snap, nil
}
