// Package org implements the ChannelState/BankState collaborator the spec
// declares out of scope for the controller core: per-bank row state and the
// timing table that gates when each command kind may next be issued. The
// controller core only ever calls the small contract in §6 of the spec
// (IsRefreshWaiting, IsRankSelfRefreshing, IsAllBankIdleInRank,
// GetReadyCommand, UpdateTimingAndStates, RowHitCount, IdleCycles,
// SetIdleCycles); how
// that contract is satisfied is this package's business, not the
// controller's.
package org

import "github.com/sarchlab/dramctl/internal/signal"

const numKinds = int(signal.CommandMRS) + 1

// Bank tracks one DRAM bank's open row and the earliest cycle at which each
// command kind may next target it, mirroring the distance-based timing
// propagation in the teacher's mem/dram/internal/org package (Bank.
// UpdateTiming(cmdKind, cycleNeeded)) collapsed to a single per-bank ready
// vector rather than a same-bank/other-bank-in-group/same-rank/other-rank
// distance matrix — that full JEDEC timing matrix is itself an out-of-scope
// collaborator concern the spec never asks the core to exercise, so a
// simpler fixed-latency model is enough to give the core something to
// correctly sequence ACTIVATE/READ/WRITE/PRECHARGE against.
type Bank struct {
	openRow        *int
	readyAt        [numKinds]uint64
	accessesOnOpen int
}

// RowHit reports whether the bank's currently open row has already served
// at least one access (the standard row-hit definition: a second-or-later
// access to a row opened by a prior ACTIVATE).
func (b *Bank) RowHit() bool {
	return b.accessesOnOpen > 0
}

// GetReadyCommand returns the command that should actually be issued this
// cycle to make progress toward cmd: cmd itself if the bank's row is
// already open to the right row and the bank's timing allows it, an
// intervening PRECHARGE or ACTIVATE if the row must be changed first, or
// signal.InvalidCommand if nothing is ready yet.
func (b *Bank) GetReadyCommand(cmd signal.Command, clk uint64) signal.Command {
	switch {
	case cmd.Kind.IsRead() || cmd.Kind.IsWrite():
		return b.getReadyRW(cmd, clk)
	case cmd.Kind == signal.CommandActivate, cmd.Kind == signal.CommandPrecharge:
		return b.readyOrInvalid(cmd, clk)
	default:
		return signal.InvalidCommand
	}
}

func (b *Bank) getReadyRW(cmd signal.Command, clk uint64) signal.Command {
	if b.openRow == nil || *b.openRow != cmd.Addr.Row {
		if b.openRow != nil {
			pre := signal.Command{Kind: signal.CommandPrecharge, Addr: cmd.Addr, HexAddr: cmd.HexAddr}
			return b.readyOrInvalid(pre, clk)
		}

		act := signal.Command{Kind: signal.CommandActivate, Addr: cmd.Addr, HexAddr: cmd.HexAddr}

		return b.readyOrInvalid(act, clk)
	}

	return b.readyOrInvalid(cmd, clk)
}

func (b *Bank) readyOrInvalid(cmd signal.Command, clk uint64) signal.Command {
	if clk >= b.readyAt[cmd.Kind] {
		return cmd
	}

	return signal.InvalidCommand
}

// StartCommand updates the bank's row-open bookkeeping for an issued
// command, so RowHit reports the state after it. A caller that wants the
// pre-command row-hit view (the controller's stats) reads RowHit before
// the command reaches Channel.UpdateTimingAndStates.
func (b *Bank) StartCommand(cmd signal.Command) {
	switch cmd.Kind {
	case signal.CommandActivate:
		row := cmd.Addr.Row
		b.openRow = &row
		b.accessesOnOpen = 0
	case signal.CommandPrecharge, signal.CommandReadPrecharge, signal.CommandWritePrecharge:
		b.openRow = nil
		b.accessesOnOpen = 0
	case signal.CommandRead, signal.CommandWrite:
		b.accessesOnOpen++
	}
}

// timing is the fixed-latency schedule the bank's UpdateTiming draws from;
// it is supplied by Channel, which owns the Config-derived cycle counts.
type timing struct {
	ActToRW    uint64
	ActToPre   uint64
	ActToAct   uint64
	ReadDelay  uint64
	WriteDelay uint64
	PreToAct   uint64
}

// UpdateTiming advances the bank's per-kind readiness vector in response to
// the command that was just issued.
func (b *Bank) UpdateTiming(cmd signal.Command, clk uint64, t timing) {
	switch cmd.Kind {
	case signal.CommandActivate:
		b.advance(signal.CommandRead, clk+t.ActToRW)
		b.advance(signal.CommandWrite, clk+t.ActToRW)
		b.advance(signal.CommandReadPrecharge, clk+t.ActToRW)
		b.advance(signal.CommandWritePrecharge, clk+t.ActToRW)
		b.advance(signal.CommandPrecharge, clk+t.ActToPre)
		b.advance(signal.CommandActivate, clk+t.ActToAct)
	case signal.CommandRead, signal.CommandReadPrecharge:
		ready := clk + t.ReadDelay
		b.advance(signal.CommandWrite, ready)
		b.advance(signal.CommandWritePrecharge, ready)
		b.advance(signal.CommandRead, clk+1)
		b.advance(signal.CommandPrecharge, ready)
		b.advance(signal.CommandActivate, ready+t.PreToAct)
	case signal.CommandWrite, signal.CommandWritePrecharge:
		ready := clk + t.WriteDelay
		b.advance(signal.CommandRead, ready)
		b.advance(signal.CommandReadPrecharge, ready)
		b.advance(signal.CommandWrite, clk+1)
		b.advance(signal.CommandPrecharge, ready)
		b.advance(signal.CommandActivate, ready+t.PreToAct)
	case signal.CommandPrecharge:
		b.advance(signal.CommandActivate, clk+t.PreToAct)
	}
}

func (b *Bank) advance(kind signal.CommandKind, cycle uint64) {
	if cycle > b.readyAt[kind] {
		b.readyAt[kind] = cycle
	}
}
