package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SnapshotJobRuns counts completed scheduler batches by outcome
	SnapshotJobRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snapshot_job_runs_total",
			Help: "Total number of periodic snapshot batches by outcome",
		},
		[]string{"outcome"},
	)

	// SnapshotJobDuration tracks how long a full snapshot batch takes
	SnapshotJobDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "snapshot_job_duration_seconds",
			Help: "Duration of periodic snapshot batches in seconds",
			Buckets: []float64{
				0.01,
				0.05,
				0.1,
				0.5,
				1,
				5,
				15,
				60,
			},
		},
	)

	// SnapshotsWritten counts snapshot rows written, manual and scheduled
	SnapshotsWritten = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snapshots_written_total",
			Help: "Total number of reporting snapshot rows written",
		},
		[]string{"trigger"},
	)

	// ScanEventsRecorded counts accepted scan events
	ScanEventsRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "scan_events_recorded_total",
			Help: "Total number of scan events recorded",
		},
	)
)
