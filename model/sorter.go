package model

import (
	"math"
	"sort"
)

// RankByCPU returns the top n records by CPU percent, descending.
// The input slice is left untouched.
//
// The comparator is a total order even for NaN readings: NaN sorts
// after every real value, and equal-CPU entries fall back to RSS
// descending, then PID ascending, so a malformed sample can never
// wedge the sort.
func RankByCPU(records []ProcRec, n int) []ProcRec {
	ranked := make([]ProcRec, len(records))
	copy(ranked, records)

	sort.Slice(ranked, func(i, j int) bool {
		a, b := &ranked[i], &ranked[j]

		aNaN, bNaN := math.IsNaN(a.CPU), math.IsNaN(b.CPU)
		if aNaN != bNaN {
			return bNaN
		}
		if !aNaN && a.CPU != b.CPU {
			return a.CPU > b.CPU
		}
		if a.RSS != b.RSS {
			return a.RSS > b.RSS
		}
		return a.Pid < b.Pid
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
