package controller

import "github.com/sarchlab/dramctl/internal/signal"

// ChannelState is the subset of internal/org.Channel the controller core
// depends on. It is declared here, not imported as a concrete type, so
// tests can supply a go.uber.org/mock double — the teacher's
// mem/dram/internal/cmdq.ChannelState interface follows the same shape.
type ChannelState interface {
	IsRefreshWaiting() bool
	IsRankSelfRefreshing(r int) bool
	IsAllBankIdleInRank(r int) bool
	GetReadyCommand(cmd signal.Command, clk uint64) signal.Command
	UpdateTimingAndStates(cmd signal.Command, clk uint64)
	RowHitCount(r, bg, bank int) int
	IdleCycles(r int) uint64
	SetIdleCycles(r int, v uint64)
}

// CmdQueue is the command-admission and issue-readiness collaborator.
type CmdQueue interface {
	WillAccept(rank, bankGroup, bank int) bool
	WillAcceptMRS() bool
	AddCommand(cmd signal.Command)
	GetCommandToIssue(clk uint64) signal.Command
	FinishRefresh(clk uint64, ranks int) signal.Command
	QueueEmpty() bool
	RankQueueEmpty(r int) bool
	QueueUsage() int
	Tick()
}

// Refresh advances the per-rank refresh countdown.
type Refresh interface {
	Tick(clk uint64)
}

// Stats is the scalar/vector counter sink.
type Stats interface {
	Increment(name string)
	IncrementVec(name string, index int)
	AddValue(name string, v uint64)
	RankBackgroundEnergy(r int) float64
	PrintEpochStats()
	PrintFinalStats()
}

// LRDIMMBridge is the optional on-DIMM buffer latency/payload adapter.
type LRDIMMBridge interface {
	Tick()
	RecordDDRCmd(cmd signal.Command, payload []uint64)
	EnqueueWriteData(rank int, addr uint64, payload []uint64)
	GetReadResponse() (signal.Command, []uint64, bool)
}

// ThermalCalculator is the optional per-command power/energy sink.
type ThermalCalculator interface {
	UpdateCMDPower(channel int, cmd signal.Command, clk uint64)
	UpdateBackgroundEnergy(channel, rank int, energyJ float64)
}

// Tracer receives one record per issued command.
type Tracer interface {
	WriteCommand(clk uint64, cmd signal.Command)
}
