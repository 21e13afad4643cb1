package monitor

import (
	"fmt"
	"sync/atomic"
)

// WorkloadStats counts the operations a table performs on its index.
type WorkloadStats struct {
	ReadCount  uint64
	WriteCount uint64
	HitCount   uint64
	MissCount  uint64
}

func NewWorkloadStats() *WorkloadStats {
	return &WorkloadStats{}
}

func (ws *WorkloadStats) RecordRead() {
	atomic.AddUint64(&ws.ReadCount, 1)
}

func (ws *WorkloadStats) RecordWrite() {
	atomic.AddUint64(&ws.WriteCount, 1)
}

func (ws *WorkloadStats) RecordHit() {
	atomic.AddUint64(&ws.HitCount, 1)
}

func (ws *WorkloadStats) RecordMiss() {
	atomic.AddUint64(&ws.MissCount, 1)
}

func (ws *WorkloadStats) GetReadWriteRatio() float64 {
	reads := atomic.LoadUint64(&ws.ReadCount)
	writes := atomic.LoadUint64(&ws.WriteCount)

	if writes == 0 {
		if reads > 0 {
			return 100.0
		}
		return 0.0
	}
	return float64(reads) / float64(writes)
}

// HitRate is the share of point reads that found their key.
func (ws *WorkloadStats) HitRate() float64 {
	hits := atomic.LoadUint64(&ws.HitCount)
	misses := atomic.LoadUint64(&ws.MissCount)
	if hits+misses == 0 {
		return 0.0
	}
	return float64(hits) / float64(hits+misses)
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Reads  uint64
	Writes uint64
	Hits   uint64
	Misses uint64
}

func (ws *WorkloadStats) Snapshot() Snapshot {
	return Snapshot{
		Reads:  atomic.LoadUint64(&ws.ReadCount),
		Writes: atomic.LoadUint64(&ws.WriteCount),
		Hits:   atomic.LoadUint64(&ws.HitCount),
		Misses: atomic.LoadUint64(&ws.MissCount),
	}
}

func (s Snapshot) String() string {
	return fmt.Sprintf("reads=%d writes=%d hits=%d misses=%d", s.Reads, s.Writes, s.Hits, s.Misses)
}
