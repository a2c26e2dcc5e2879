// Package stats implements the Stats collaborator: a scalar/vector counter
// sink the controller core increments by name, plus an optional SQLite
// persistence layer for post-run analysis. The naming and flush-on-exit
// idiom follow the teacher's tracing.SQLiteTraceWriter/CSVTraceWriter.
package stats

import (
	"log"
	"sync"
)

// Sink is the in-memory Stats collaborator: scalar counters, per-index
// vector counters (one vector per rank), and raw value samples (e.g.
// per-transaction latencies) that a persistence layer can aggregate later.
type Sink struct {
	mu      sync.Mutex
	scalars map[string]uint64
	vectors map[string][]uint64
	samples map[string][]uint64
	epoch   int

	persist Persister
}

// Persister receives a snapshot of a Sink at epoch boundaries and at the
// end of a run. SQLitePersister is the concrete implementation; a nil
// Persister, which is what cmd/dramctl passes, makes persistence a no-op.
type Persister interface {
	WriteEpoch(epoch int, scalars map[string]uint64, vectors map[string][]uint64)
	WriteFinal(scalars map[string]uint64, vectors map[string][]uint64)
}

// New builds a Sink. persist may be nil to disable persistence.
func New(persist Persister) *Sink {
	return &Sink{
		scalars: make(map[string]uint64),
		vectors: make(map[string][]uint64),
		samples: make(map[string][]uint64),
		persist: persist,
	}
}

// Increment adds one to the named scalar counter.
func (s *Sink) Increment(name string) {
	s.mu.Lock()
	s.scalars[name]++
	s.mu.Unlock()
}

// IncrementVec adds one to the named counter's entry at index.
func (s *Sink) IncrementVec(name string, index int) {
	s.mu.Lock()
	s.growVec(name, index)
	s.vectors[name][index]++
	s.mu.Unlock()
}

func (s *Sink) growVec(name string, index int) {
	v := s.vectors[name]
	for len(v) <= index {
		v = append(v, 0)
	}
	s.vectors[name] = v
}

// AddValue records a raw sample under name, e.g. a per-transaction latency.
func (s *Sink) AddValue(name string, v uint64) {
	s.mu.Lock()
	s.samples[name] = append(s.samples[name], v)
	s.scalars[name+"_sum"] += v
	s.scalars[name+"_count"]++
	s.mu.Unlock()
}

// Scalar returns the current value of a scalar counter, for tests and the
// debug server.
func (s *Sink) Scalar(name string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.scalars[name]
}

// Snapshot returns a shallow copy of every scalar and vector counter.
func (s *Sink) Snapshot() (map[string]uint64, map[string][]uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	scalars := make(map[string]uint64, len(s.scalars))
	for k, v := range s.scalars {
		scalars[k] = v
	}

	vectors := make(map[string][]uint64, len(s.vectors))
	for k, v := range s.vectors {
		cp := make([]uint64, len(v))
		copy(cp, v)
		vectors[k] = cp
	}

	return scalars, vectors
}

// Energy-per-cycle constants for the simplified background-power model
// RankBackgroundEnergy draws on; self-refresh draws a small fraction of the
// active background rate.
const (
	activeBackgroundEnergyPerCycle = 1.0
	srefBackgroundEnergyPerCycle   = 0.1
)

// RankBackgroundEnergy returns rank r's accumulated background energy,
// derived from the active/self-refresh cycle vectors accountRankPower
// already maintains. This mirrors the original's
// simple_stats_.RankBackgroundEnergy(r), which its PrintEpochStats and
// PrintFinalStats forward to thermal_calc_.UpdateBackgroundEnergy.
func (s *Sink) RankBackgroundEnergy(r int) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var active, sref uint64
	if v := s.vectors["rank_active_cycles"]; r < len(v) {
		active = v[r]
	}

	if v := s.vectors["sref_cycles"]; r < len(v) {
		sref = v[r]
	}

	return float64(active)*activeBackgroundEnergyPerCycle + float64(sref)*srefBackgroundEnergyPerCycle
}

// PrintEpochStats flushes the current counters to the persistence layer (if
// any) and bumps the epoch counter, mirroring the teacher's
// `simple_stats_.PrintEpochStats()` / epoch_num increment pair.
func (s *Sink) PrintEpochStats() {
	s.Increment("epoch_num")
	s.epoch++

	scalars, vectors := s.Snapshot()
	if s.persist != nil {
		s.persist.WriteEpoch(s.epoch, scalars, vectors)
	}

	log.Printf("dramctl: epoch %d stats: %d scalars, %d vectors",
		s.epoch, len(scalars), len(vectors))
}

// PrintFinalStats flushes the final counters to the persistence layer.
func (s *Sink) PrintFinalStats() {
	scalars, vectors := s.Snapshot()
	if s.persist != nil {
		s.persist.WriteFinal(scalars, vectors)
	}

	log.Printf("dramctl: final stats: %d scalars, %d vectors", len(scalars), len(vectors))
}
