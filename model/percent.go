package model

import "math"

// MemPercent computes used memory as an integer percentage of total,
// rounded down. A zero total yields 0 rather than a division error.
func MemPercent(used, total uint64) int {
	if total == 0 {
		return 0
	}
	return int(float64(used) / float64(total) * 100.0)
}

// ClampPercent pins a raw percentage into [0, 100] for gauge display.
// NaN maps to 0.
func ClampPercent(v float64) int {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 100:
		return 100
	}
	return int(v)
}
