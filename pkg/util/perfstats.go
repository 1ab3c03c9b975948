package util

import (
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats provides a snapshot of time and memory allocation at a given point,
// such that the cost of a phase (e.g. loading or running a machine) can be
// reported afterwards.
type PerfStats struct {
	// Starting time
	startTime time.Time
	// Starting total memory allocation
	startMem uint64
	// Starting number of gc events
	startGc uint32
}

// NewPerfStats creates a new snapshot of the current amount of memory allocated.
func NewPerfStats() *PerfStats {
	var m runtime.MemStats

	startTime := time.Now()

	runtime.ReadMemStats(&m)

	return &PerfStats{startTime, m.TotalAlloc, m.NumGC}
}

// Elapsed returns the time since this snapshot was taken.
func (p *PerfStats) Elapsed() time.Duration {
	return time.Since(p.startTime)
}

// Log logs the difference between the state now and as it was when the PerfStats object was created.
func (p *PerfStats) Log(prefix string) {
	var m runtime.MemStats

	runtime.ReadMemStats(&m)
	alloc := (m.TotalAlloc - p.startMem) / 1024
	gcs := m.NumGC - p.startGc

	log.WithFields(log.Fields{
		"alloc_kb": alloc,
		"gc":       gcs,
	}).Debugf("%s took %0.3fs", prefix, p.Elapsed().Seconds())
}
