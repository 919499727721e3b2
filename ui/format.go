package ui

import (
	"fmt"

	"glance/model"
)

const nameWidth = 20

// formatRow renders one process entry in the fixed column layout:
// PID left-justified in 6, name left-justified in 20, CPU percent
// right-justified to one decimal, resident memory in whole MB.
func formatRow(r model.ProcRec) string {
	return fmt.Sprintf("PID: %-6d | %-20s | CPU: %5.1f%% | MEM: %5d MB",
		r.Pid,
		truncName(r.Name, nameWidth),
		r.CPU,
		r.RSS/(1024*1024),
	)
}

// truncName keeps rows aligned when a process name is wider than its
// column.
func truncName(s string, w int) string {
	runes := []rune(s)
	if len(runes) <= w {
		return s
	}
	return string(runes[:w])
}
