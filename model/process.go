package model

// MaxRows is how many processes the dashboard lists per tick.
const MaxRows = 10

// ProcRec is one observed process at snapshot time.
type ProcRec struct {
	Pid  int32
	Name string
	CPU  float64 // percent; can exceed 100 on multi-core saturation
	RSS  uint64  // resident memory, bytes
}

// Snapshot is the full set of metrics captured by one refresh.
// It is rebuilt from scratch every tick; nothing carries over.
type Snapshot struct {
	CPUPercent float64
	MemTotal   uint64
	MemUsed    uint64
	Processes  []ProcRec
}
