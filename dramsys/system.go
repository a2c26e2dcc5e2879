// Package dramsys provides the thin multi-channel front end that sits above
// one or more controller.Controller instances, grounded on the original
// implementation's BaseDRAMSystem/JedecDRAMSystem family (dram_system.h):
// route each transaction to its channel by address bits, then fan
// WillAcceptTransaction/AddTransaction/ClockTick/ReturnDoneTransactions out
// to the right one.
package dramsys

import "github.com/sarchlab/dramctl/internal/fail"

// Channel is the subset of controller.Controller the system dispatches to.
// It is defined locally, the same structural-typing convention the
// controller package uses for its own collaborators, so dramsys never
// imports the controller package's concrete type.
type Channel interface {
	WillAcceptTransaction(addr uint64, isWrite, isMRS bool) bool
	AddTransaction(addr uint64, isWrite, isMRS bool, payload []uint64) bool
	ClockTick()
	ReturnDoneTransactions(clk uint64) (addr uint64, isWrite bool, ok bool)
	QueueUsage() int
	PrintEpochStats()
	PrintFinalStats()
}

// System routes transactions to one of several channels by a configurable
// run of address bits, mirroring BaseDRAMSystem::GetChannel.
type System struct {
	channels     []Channel
	channelShift int
	channelBits  int
	clk          uint64

	nextReturn int // round-robin cursor for ReturnDoneTransactions
}

// New builds a System over channels, decoding the channel index from
// address bits [channelShift, channelShift+channelBits).
func New(channels []Channel, channelShift, channelBits int) *System {
	if len(channels) == 0 {
		panic("dramsys: at least one channel required")
	}

	return &System{channels: channels, channelShift: channelShift, channelBits: channelBits}
}

func (s *System) channelOf(addr uint64) int {
	if s.channelBits <= 0 {
		return 0
	}

	mask := uint64(1)<<uint(s.channelBits) - 1
	idx := (addr >> uint(s.channelShift)) & mask

	if int(idx) >= len(s.channels) {
		fail.Abort("dramsys.channelOf", "address decodes to an out-of-range channel", addr)
	}

	return int(idx)
}

// WillAcceptTransaction forwards to the channel addr belongs to.
func (s *System) WillAcceptTransaction(addr uint64, isWrite, isMRS bool) bool {
	return s.channels[s.channelOf(addr)].WillAcceptTransaction(addr, isWrite, isMRS)
}

// AddTransaction forwards to the channel addr belongs to.
func (s *System) AddTransaction(addr uint64, isWrite, isMRS bool, payload []uint64) bool {
	return s.channels[s.channelOf(addr)].AddTransaction(addr, isWrite, isMRS, payload)
}

// ClockTick advances every channel by one cycle.
func (s *System) ClockTick() {
	for _, c := range s.channels {
		c.ClockTick()
	}

	s.clk++
}

// ReturnDoneTransactions drains one completion from the first channel that
// has one ready, round-robin starting after the last channel serviced, so
// no channel is starved when several complete on the same cycle.
func (s *System) ReturnDoneTransactions() (addr uint64, isWrite bool, ok bool) {
	n := len(s.channels)
	for i := 0; i < n; i++ {
		idx := (s.nextReturn + i) % n

		addr, isWrite, ok = s.channels[idx].ReturnDoneTransactions(s.clk)
		if ok {
			s.nextReturn = (idx + 1) % n
			return addr, isWrite, true
		}
	}

	return 0, false, false
}

// QueueUsage sums queue occupancy across every channel.
func (s *System) QueueUsage() int {
	total := 0
	for _, c := range s.channels {
		total += c.QueueUsage()
	}

	return total
}

// PrintEpochStats forwards to every channel.
func (s *System) PrintEpochStats() {
	for _, c := range s.channels {
		c.PrintEpochStats()
	}
}

// PrintFinalStats forwards to every channel.
func (s *System) PrintFinalStats() {
	for _, c := range s.channels {
		c.PrintFinalStats()
	}
}
