// Package refresh implements the Refresh collaborator: the periodic
// REFRESH obligation every DRAM rank incurs every tREFI cycles. It is
// deliberately simple — a countdown per rank that raises the
// ChannelState's refresh-waiting flag — because the spec treats its
// internal correctness as out of the controller core's test surface.
package refresh

import "github.com/sarchlab/dramctl/internal/signal"

// ChannelFlag is the subset of org.Channel the counter needs: the ability
// to raise the refresh-waiting flag the issue engine polls.
type ChannelFlag interface {
	SetRefreshWaiting(v bool)
	IsRankSelfRefreshing(r int) bool
}

// Counter tracks, per rank, the cycle of the next due refresh.
type Counter struct {
	channel  ChannelFlag
	interval uint64
	nextDue  []uint64
	waiting  bool
}

// New builds a Counter that asks for a refresh every interval cycles per
// rank.
func New(channel ChannelFlag, ranks int, interval uint64) *Counter {
	nextDue := make([]uint64, ranks)
	for r := range nextDue {
		nextDue[r] = interval
	}

	return &Counter{channel: channel, interval: interval, nextDue: nextDue}
}

// Tick advances the refresh countdown by one cycle. If any non-self-refreshing
// rank's refresh is due, it raises the channel's refresh-waiting flag so the
// issue engine services it with priority over normal commands.
func (c *Counter) Tick(clk uint64) {
	for r, due := range c.nextDue {
		if c.channel.IsRankSelfRefreshing(r) {
			continue
		}

		if clk >= due {
			c.waiting = true
			c.channel.SetRefreshWaiting(true)
			c.nextDue[r] = due + c.interval
		}
	}
}

// Serviced clears the counter's own outstanding flag. The controller does not
// call it: an issued REFRESH clears the channel's flag in
// org.Channel.UpdateTimingAndStates instead.
func (c *Counter) Serviced(signal.Command) {
	c.waiting = false
}

// Waiting reports the counter's own outstanding flag: set whenever a rank's
// refresh comes due, and cleared only by Serviced.
func (c *Counter) Waiting() bool { return c.waiting }
