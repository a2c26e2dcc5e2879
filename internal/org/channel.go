package org

import (
	"github.com/sarchlab/dramctl/config"
	"github.com/sarchlab/dramctl/internal/signal"
)

// Channel is the ChannelState collaborator named throughout the spec: it
// owns every bank on the channel plus the per-rank refresh/self-refresh
// bookkeeping the issue engine reads every cycle.
type Channel struct {
	banks [][][]*Bank // [rank][bankgroup][bank]

	// RankIdleCycles holds each rank's consecutive-idle-cycle count. The
	// controller reads and writes it through IdleCycles and SetIdleCycles.
	RankIdleCycles []uint64

	selfRefreshing []bool
	rankRefreshRdy []uint64
	rankSrefRdy    []uint64
	refreshWaiting bool

	t timing
}

// New builds a Channel sized from cfg.
func New(cfg *config.Config) *Channel {
	c := &Channel{
		RankIdleCycles: make([]uint64, cfg.Ranks),
		selfRefreshing: make([]bool, cfg.Ranks),
		rankRefreshRdy: make([]uint64, cfg.Ranks),
		rankSrefRdy:    make([]uint64, cfg.Ranks),
		t: timing{
			ActToRW:   uint64(cfg.TRCD),
			ActToPre:  uint64(cfg.TRAS),
			ActToAct:  uint64(cfg.TRC),
			ReadDelay: cfg.ReadDelay,
			WriteDelay: cfg.WriteDelay,
			PreToAct:  uint64(cfg.TRP),
		},
	}

	c.banks = make([][][]*Bank, cfg.Ranks)
	for r := range c.banks {
		c.banks[r] = make([][]*Bank, cfg.BankGroups)
		for g := range c.banks[r] {
			c.banks[r][g] = make([]*Bank, cfg.BanksPerGroup)
			for k := range c.banks[r][g] {
				c.banks[r][g][k] = &Bank{}
			}
		}
	}

	return c
}

func (c *Channel) bank(addr signal.Address) *Bank {
	return c.banks[addr.Rank][addr.BankGroup][addr.Bank]
}

// IsRefreshWaiting reports whether the Refresh collaborator has flagged a
// refresh obligation that the issue engine still needs to service.
func (c *Channel) IsRefreshWaiting() bool { return c.refreshWaiting }

// SetRefreshWaiting is called by the Refresh collaborator to raise or clear
// the flag IsRefreshWaiting reports.
func (c *Channel) SetRefreshWaiting(v bool) { c.refreshWaiting = v }

// IsRankSelfRefreshing reports whether rank r is currently in self-refresh.
func (c *Channel) IsRankSelfRefreshing(r int) bool { return c.selfRefreshing[r] }

// IdleCycles returns rank r's current consecutive-idle-cycle count.
func (c *Channel) IdleCycles(r int) uint64 { return c.RankIdleCycles[r] }

// SetIdleCycles overwrites rank r's consecutive-idle-cycle count, used by
// the controller's per-rank power accounting and self-refresh threshold
// check.
func (c *Channel) SetIdleCycles(r int, v uint64) { c.RankIdleCycles[r] = v }

// IsAllBankIdleInRank reports whether every bank in rank r currently has no
// row open, the condition the issue engine's power accounting uses to grow
// RankIdleCycles.
func (c *Channel) IsAllBankIdleInRank(r int) bool {
	for _, group := range c.banks[r] {
		for _, b := range group {
			if b.openRow != nil {
				return false
			}
		}
	}

	return true
}

// RowHitCount reports whether the bank at (r, bg, bank) is currently
// serving a row-buffer hit. The spec treats this as a counter the caller
// only compares against zero; a bool-backed int keeps that contract without
// pretending to track a real running total.
func (c *Channel) RowHitCount(r, bg, bank int) int {
	if c.banks[r][bg][bank].RowHit() {
		return 1
	}

	return 0
}

// GetReadyCommand dispatches to the target bank for bank-addressed
// commands, or resolves rank-level REFRESH/SREF_ENTER/SREF_EXIT readiness
// directly.
func (c *Channel) GetReadyCommand(cmd signal.Command, clk uint64) signal.Command {
	switch cmd.Kind {
	case signal.CommandRefresh, signal.CommandRefreshBank:
		if clk >= c.rankRefreshRdy[cmd.Addr.Rank] {
			return cmd
		}

		return signal.InvalidCommand
	case signal.CommandSrefEnter, signal.CommandSrefExit:
		if clk >= c.rankSrefRdy[cmd.Addr.Rank] {
			return cmd
		}

		return signal.InvalidCommand
	case signal.CommandMRS:
		return cmd
	default:
		return c.bank(cmd.Addr).GetReadyCommand(cmd, clk)
	}
}

// UpdateTimingAndStates is the sole mutator of device timing state, called
// once per issued command, after stats have already observed the
// pre-update state (§4.6 of the spec).
func (c *Channel) UpdateTimingAndStates(cmd signal.Command, clk uint64) {
	switch cmd.Kind {
	case signal.CommandRefresh, signal.CommandRefreshBank:
		c.rankRefreshRdy[cmd.Addr.Rank] = clk + uint64(c.t.ActToAct)
		c.refreshWaiting = false
	case signal.CommandSrefEnter:
		c.selfRefreshing[cmd.Addr.Rank] = true
		c.rankSrefRdy[cmd.Addr.Rank] = clk + c.t.PreToAct
	case signal.CommandSrefExit:
		c.selfRefreshing[cmd.Addr.Rank] = false
		c.rankSrefRdy[cmd.Addr.Rank] = clk + c.t.PreToAct
	case signal.CommandMRS:
		// No bank/rank timing state to update; MRS is a side channel.
	default:
		b := c.bank(cmd.Addr)
		b.StartCommand(cmd)
		b.UpdateTiming(cmd, clk, c.t)
	}
}
