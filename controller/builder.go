package controller

import (
	"github.com/sarchlab/dramctl/config"
	"github.com/sarchlab/dramctl/internal/signal"
	"github.com/sarchlab/dramctl/internal/telemetry"
	"github.com/sarchlab/dramctl/internal/thermal"
)

// Builder assembles a Controller fluently, mirroring the teacher's
// mem/dram.Builder.
type Builder struct {
	name      string
	channelID int
	cfg       config.Config

	channel  ChannelState
	cmdQueue CmdQueue
	refresh  Refresh
	stats    Stats
	lrdimm   LRDIMMBridge
	thermal  ThermalCalculator
	trace    Tracer
}

// MakeBuilder returns a Builder with a no-op thermal calculator and an
// otherwise empty configuration; every collaborator except thermal, trace
// and the LRDIMM bridge is required before Build, and the bridge is
// required when cfg.IsLRDIMM is set.
func MakeBuilder() Builder {
	return Builder{thermal: thermal.NoOp{}}
}

// WithName sets the controller's Named identity, used to disambiguate
// multiple channels in one process's trace/debug output.
func (b Builder) WithName(name string) Builder { b.name = name; return b }

// WithChannelID sets the channel index passed to the thermal calculator.
func (b Builder) WithChannelID(id int) Builder { b.channelID = id; return b }

// WithConfig supplies the frozen Config.
func (b Builder) WithConfig(cfg config.Config) Builder { b.cfg = cfg; return b }

// WithChannelState supplies the ChannelState collaborator.
func (b Builder) WithChannelState(ch ChannelState) Builder { b.channel = ch; return b }

// WithCmdQueue supplies the CmdQueue collaborator.
func (b Builder) WithCmdQueue(q CmdQueue) Builder { b.cmdQueue = q; return b }

// WithRefresh supplies the Refresh collaborator.
func (b Builder) WithRefresh(r Refresh) Builder { b.refresh = r; return b }

// WithStats supplies the Stats collaborator.
func (b Builder) WithStats(s Stats) Builder { b.stats = s; return b }

// WithLRDIMMBridge supplies the optional LRDIMM bridge; required iff
// cfg.IsLRDIMM.
func (b Builder) WithLRDIMMBridge(l LRDIMMBridge) Builder { b.lrdimm = l; return b }

// WithThermalCalculator overrides the default no-op thermal calculator.
func (b Builder) WithThermalCalculator(t ThermalCalculator) Builder { b.thermal = t; return b }

// WithTrace attaches a command-trace writer.
func (b Builder) WithTrace(t Tracer) Builder { b.trace = t; return b }

// Build freezes the Builder into a Controller. It panics if a required
// collaborator is missing, matching the teacher's MustXXX construction
// idiom for programmer errors rather than runtime conditions.
func (b Builder) Build() *Controller {
	if b.channel == nil || b.cmdQueue == nil || b.refresh == nil || b.stats == nil {
		panic("controller: missing required collaborator")
	}

	if b.cfg.IsLRDIMM && b.lrdimm == nil {
		panic("controller: IsLRDIMM set but no LRDIMMBridge supplied")
	}

	return &Controller{
		NamedBase: telemetry.MakeNamedBase(b.name),
		channelID: b.channelID,
		cfg:       b.cfg,
		channel:   b.channel,
		cmdQueue:  b.cmdQueue,
		refresh:   b.refresh,
		stats:     b.stats,
		lrdimm:    b.lrdimm,
		thermal:   b.thermal,
		trace:     b.trace,

		pendingRdQ: make(map[uint64][]*signal.Transaction),
		pendingWrQ: make(map[uint64]*signal.Transaction),
	}
}
