package ui

import (
	"time"

	"glance/model"
)

// Messages

type tickMsg time.Time

// MetricSource is the sampling collaborator the dashboard drives.
// monitor.Sampler is the production implementation.
type MetricSource interface {
	Refresh() (model.Snapshot, error)
}
