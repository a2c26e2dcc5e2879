package dramsys

// IdealSystem is a fixed-latency, infinite-bandwidth stand-in for a
// timing-accurate Controller, grounded on dram_system.h's IdealDRAMSystem:
// every transaction is accepted unconditionally and completes exactly
// latency cycles after it was added, with no bank, timing, or queue-depth
// modeling at all. Useful as an upper-bound baseline run alongside the real
// controller.
type IdealSystem struct {
	latency uint64
	clk     uint64

	pending []idealEntry
}

type idealEntry struct {
	addr    uint64
	isWrite bool
	doneAt  uint64
}

// NewIdealSystem builds an IdealSystem that completes every transaction
// latency cycles after admission.
func NewIdealSystem(latency uint64) *IdealSystem {
	return &IdealSystem{latency: latency}
}

// WillAcceptTransaction always succeeds: an ideal system has no backpressure.
func (s *IdealSystem) WillAcceptTransaction(_ uint64, _, _ bool) bool { return true }

// AddTransaction admits addr unconditionally, due latency cycles from now.
func (s *IdealSystem) AddTransaction(addr uint64, isWrite, _ bool, _ []uint64) bool {
	s.pending = append(s.pending, idealEntry{addr: addr, isWrite: isWrite, doneAt: s.clk + s.latency})
	return true
}

// ClockTick advances the ideal clock by one cycle.
func (s *IdealSystem) ClockTick() { s.clk++ }

// ReturnDoneTransactions drains one transaction whose fixed latency has
// elapsed, scanning in admission order like the real controller's
// return path.
func (s *IdealSystem) ReturnDoneTransactions() (addr uint64, isWrite bool, ok bool) {
	for i, e := range s.pending {
		if e.doneAt <= s.clk {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return e.addr, e.isWrite, true
		}
	}

	return 0, false, false
}

// QueueUsage reports the number of transactions still in flight.
func (s *IdealSystem) QueueUsage() int { return len(s.pending) }

// PrintEpochStats is a no-op: an ideal system tracks no counters.
func (s *IdealSystem) PrintEpochStats() {}

// PrintFinalStats is a no-op: an ideal system tracks no counters.
func (s *IdealSystem) PrintFinalStats() {}
