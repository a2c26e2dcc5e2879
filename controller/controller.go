// Package controller implements the per-channel memory controller core: the
// transaction-to-command scheduling pipeline, read/write buffer discipline,
// row-buffer policy, and issue engine that drives a DRAM channel one cycle
// at a time. Everything it depends on — bank timing, command admission,
// refresh, stats, the optional LRDIMM bridge and thermal model — is a
// collaborator declared in interfaces.go and owned for the controller's
// lifetime.
package controller

import (
	"github.com/sarchlab/dramctl/config"
	"github.com/sarchlab/dramctl/internal/fail"
	"github.com/sarchlab/dramctl/internal/signal"
	"github.com/sarchlab/dramctl/internal/telemetry"
)

// Controller drives one DRAM channel.
type Controller struct {
	telemetry.NamedBase
	telemetry.HookableBase

	channelID int
	cfg       config.Config

	channel  ChannelState
	cmdQueue CmdQueue
	refresh  Refresh
	stats    Stats
	lrdimm   LRDIMMBridge
	thermal  ThermalCalculator
	trace    Tracer

	clk uint64

	unifiedQueue []*signal.Transaction
	readQueue    []*signal.Transaction
	writeBuffer  []*signal.Transaction
	mrsBuffer    []*signal.Transaction

	pendingRdQ  map[uint64][]*signal.Transaction
	pendingWrQ  map[uint64]*signal.Transaction
	returnQueue []*signal.Transaction
	respData    [][]uint64

	writeDraining int
}

// WillAcceptTransaction reports whether the class-appropriate buffer has
// free capacity for a transaction to addr.
func (c *Controller) WillAcceptTransaction(addr uint64, isWrite, isMRS bool) bool {
	switch {
	case isMRS:
		return len(c.mrsBuffer) < c.cfg.MRSBufferSize
	case c.cfg.UnifiedQueue:
		return len(c.unifiedQueue) < c.cfg.TransQueueSize
	case isWrite:
		return len(c.writeBuffer) < c.cfg.TransQueueSize
	default:
		return len(c.readQueue) < c.cfg.TransQueueSize
	}
}

// AddTransaction admits a transaction. The caller must have checked
// WillAcceptTransaction this cycle; admission is unconditional here, per the
// spec's admission contract.
func (c *Controller) AddTransaction(addr uint64, isWrite, isMRS bool, payload []uint64) bool {
	tx := &signal.Transaction{
		Addr:       addr,
		IsWrite:    isWrite,
		IsMRS:      isMRS,
		Payload:    payload,
		AddedCycle: c.clk,
	}

	switch {
	case isMRS:
		c.mrsBuffer = append(c.mrsBuffer, tx)
		c.completeNextCycle(tx)
	case isWrite:
		c.addWrite(tx)
	default:
		c.addRead(tx)
	}

	return true
}

func (c *Controller) completeNextCycle(tx *signal.Transaction) {
	tx.CompleteCycle = c.clk + 1
	c.returnQueue = append(c.returnQueue, tx)
}

// addWrite implements write merging: a second write to an address already
// pending overwrites that pending entry's payload instead of enqueueing a
// new command-bound transaction, but it still gets its own completion
// record (§4.2, boundary scenario 1).
func (c *Controller) addWrite(tx *signal.Transaction) {
	if pending, ok := c.pendingWrQ[tx.Addr]; ok {
		pending.UpdatePayload(tx.Payload)
		c.completeNextCycle(tx)

		return
	}

	pending := &signal.Transaction{
		Addr:       tx.Addr,
		IsWrite:    true,
		Payload:    append([]uint64{}, tx.Payload...),
		AddedCycle: tx.AddedCycle,
	}
	c.pendingWrQ[tx.Addr] = pending

	if c.cfg.UnifiedQueue {
		c.unifiedQueue = append(c.unifiedQueue, pending)
	} else {
		c.writeBuffer = append(c.writeBuffer, pending)
	}

	c.completeNextCycle(tx)
}

// addRead implements read-after-write forwarding and read coalescing
// (§4.2).
func (c *Controller) addRead(tx *signal.Transaction) {
	if pending, ok := c.pendingWrQ[tx.Addr]; ok {
		tx.Payload = append([]uint64{}, pending.Payload...)
		c.completeNextCycle(tx)

		return
	}

	first := len(c.pendingRdQ[tx.Addr]) == 0
	c.pendingRdQ[tx.Addr] = append(c.pendingRdQ[tx.Addr], tx)

	if !first {
		return
	}

	if c.cfg.UnifiedQueue {
		c.unifiedQueue = append(c.unifiedQueue, tx)
	} else {
		c.readQueue = append(c.readQueue, tx)
	}
}

// transToCommand decodes tx's address and selects the command kind the
// configured row-buffer policy calls for (§4.3).
func (c *Controller) transToCommand(tx *signal.Transaction) signal.Command {
	loc := c.cfg.AddressMapping(tx.Addr)
	addr := signal.Address{Rank: loc.Rank, BankGroup: loc.BankGroup, Bank: loc.Bank, Row: loc.Row, Column: loc.Column}

	switch {
	case tx.IsMRS:
		return signal.Command{Kind: signal.CommandMRS, Addr: addr, HexAddr: tx.Addr}
	case tx.IsWrite:
		if c.cfg.RowBufPolicy == config.ClosePage {
			return signal.Command{Kind: signal.CommandWritePrecharge, Addr: addr, HexAddr: tx.Addr}
		}

		return signal.Command{Kind: signal.CommandWrite, Addr: addr, HexAddr: tx.Addr}
	default:
		if c.cfg.RowBufPolicy == config.ClosePage {
			return signal.Command{Kind: signal.CommandReadPrecharge, Addr: addr, HexAddr: tx.Addr}
		}

		return signal.Command{Kind: signal.CommandRead, Addr: addr, HexAddr: tx.Addr}
	}
}

// ScheduleTransaction promotes at most one transaction from the controller's
// buffers into the command queue this cycle (§4.4): the oldest MRS
// transaction while any is buffered, otherwise at most one read or write.
func (c *Controller) ScheduleTransaction() {
	if !c.cfg.UnifiedQueue {
		c.updateWriteDrain()
	}

	switch {
	case len(c.mrsBuffer) > 0:
		c.scheduleMRS()
	case c.cfg.UnifiedQueue:
		c.scheduleFrom(&c.unifiedQueue)
	case c.writeDraining > 0:
		c.scheduleFrom(&c.writeBuffer)
	default:
		c.scheduleFrom(&c.readQueue)
	}
}

func (c *Controller) updateWriteDrain() {
	if c.writeDraining != 0 {
		return
	}

	if len(c.writeBuffer) >= c.cfg.TransQueueSize ||
		(len(c.writeBuffer) > 8 && c.cmdQueue.QueueEmpty()) {
		c.writeDraining = len(c.writeBuffer)
	}
}

func (c *Controller) scheduleMRS() {
	tx := c.mrsBuffer[0]
	cmd := c.transToCommand(tx)

	if !c.cmdQueue.WillAcceptMRS() {
		return
	}

	c.cmdQueue.AddCommand(cmd)
	c.mrsBuffer = c.mrsBuffer[1:]
}

func (c *Controller) scheduleFrom(queue *[]*signal.Transaction) {
	q := *queue

	for i, tx := range q {
		cmd := c.transToCommand(tx)

		if !c.cmdQueue.WillAccept(cmd.Rank(), cmd.BankGroup(), cmd.Bank()) {
			continue
		}

		if tx.IsWrite && len(c.pendingRdQ[tx.Addr]) > 0 {
			c.writeDraining = 0
			return
		}

		if tx.IsWrite && c.writeDraining > 0 {
			c.writeDraining--
		}

		c.cmdQueue.AddCommand(cmd)
		*queue = append(q[:i:i], q[i+1:]...)

		return
	}
}

// ClockTick advances the controller by one simulated cycle, following the
// exact ordered sequence of §4.5.
func (c *Controller) ClockTick() {
	c.refresh.Tick(c.clk)

	if c.cfg.IsLRDIMM {
		c.lrdimm.Tick()
		c.drainLRDIMMResponses()
	}

	first, issued := c.selectAndIssue()

	if issued && c.cfg.EnableHBMDualCmd {
		c.maybeIssueSecond(first)
	}

	c.accountRankPower()

	if c.cfg.EnableSelfRefresh && !issued {
		c.transitionSelfRefresh()
	}

	c.ScheduleTransaction()

	c.clk++
	c.cmdQueue.Tick()
	c.stats.Increment("num_cycles")
}

func (c *Controller) drainLRDIMMResponses() {
	for {
		cmd, payload, ok := c.lrdimm.GetReadResponse()
		if !ok {
			return
		}

		c.attachLRDIMMPayload(cmd, payload)
	}
}

func (c *Controller) attachLRDIMMPayload(cmd signal.Command, payload []uint64) {
	for _, tx := range c.returnQueue {
		if tx.Addr == cmd.HexAddr && tx.IsRead() {
			tx.UpdatePayload(payload)
			return
		}
	}

	fail.Abort("controller.ClockTick", "lrdimm read response with no matching return entry", cmd.HexAddr)
}

func (c *Controller) selectAndIssue() (signal.Command, bool) {
	if c.channel.IsRefreshWaiting() {
		if cmd := c.cmdQueue.FinishRefresh(c.clk, c.cfg.Ranks); cmd.IsValid() {
			c.issueCommand(cmd)
			return cmd, true
		}
	}

	if cmd := c.cmdQueue.GetCommandToIssue(c.clk); cmd.IsValid() {
		c.issueCommand(cmd)
		return cmd, true
	}

	return signal.Command{}, false
}

func (c *Controller) maybeIssueSecond(first signal.Command) {
	second := c.cmdQueue.GetCommandToIssue(c.clk)
	if !second.IsValid() || !first.Kind.IsReadWrite() || !second.Kind.IsReadWrite() {
		return
	}

	if first.Kind.IsWrite() == second.Kind.IsWrite() {
		return
	}

	c.issueCommand(second)
}

func (c *Controller) accountRankPower() {
	for r := 0; r < c.cfg.Ranks; r++ {
		switch {
		case c.channel.IsRankSelfRefreshing(r):
			c.stats.IncrementVec("sref_cycles", r)
		case c.channel.IsAllBankIdleInRank(r):
			c.stats.Increment("all_bank_idle_cycles")
			c.channel.SetIdleCycles(r, c.channel.IdleCycles(r)+1)
		default:
			c.stats.IncrementVec("rank_active_cycles", r)
			c.channel.SetIdleCycles(r, 0)
		}
	}
}

func (c *Controller) transitionSelfRefresh() {
	for r := 0; r < c.cfg.Ranks; r++ {
		if c.channel.IsRankSelfRefreshing(r) {
			if c.cmdQueue.RankQueueEmpty(r) {
				continue
			}

			cmd := c.channel.GetReadyCommand(signal.Command{Kind: signal.CommandSrefExit, Addr: signal.Address{Rank: r}}, c.clk)
			if cmd.IsValid() {
				c.issueCommand(cmd)
				return
			}

			continue
		}

		if !c.cmdQueue.RankQueueEmpty(r) || c.channel.IdleCycles(r) < c.cfg.SrefThreshold {
			continue
		}

		cmd := c.channel.GetReadyCommand(signal.Command{Kind: signal.CommandSrefEnter, Addr: signal.Address{Rank: r}}, c.clk)
		if cmd.IsValid() {
			c.issueCommand(cmd)
			return
		}
	}
}

// issueCommand applies the side effects of issuing cmd this cycle (§4.6):
// pending-queue bookkeeping, stats (observed before the state update), and
// the device timing/state mutation itself.
func (c *Controller) issueCommand(cmd signal.Command) {
	switch {
	case cmd.Kind.IsRead():
		c.completeReads(cmd)
	case cmd.Kind.IsWrite():
		c.completeWrite(cmd)
	}

	if c.cfg.IsLRDIMM {
		c.lrdimm.RecordDDRCmd(cmd, nil)
	}

	c.updateCommandStats(cmd)
	c.channel.UpdateTimingAndStates(cmd, c.clk)

	if c.thermal != nil {
		c.thermal.UpdateCMDPower(c.channelID, cmd, c.clk)
	}

	if c.trace != nil {
		c.trace.WriteCommand(c.clk, cmd)
	}

	c.InvokeHook(telemetry.HookCtx{Domain: c, Pos: telemetry.HookPosIssue, Item: cmd})
}

func (c *Controller) completeReads(cmd signal.Command) {
	pending, ok := c.pendingRdQ[cmd.HexAddr]
	if !ok || len(pending) == 0 {
		fail.Abort("controller.issueCommand", "read issued with no pending entry", cmd.HexAddr)
	}

	delay := c.cfg.ReadDelay
	if c.cfg.IsLRDIMM {
		delay += c.cfg.TPDMRd + c.cfg.TRPre
	}

	for _, tx := range pending {
		tx.CompleteCycle = c.clk + delay
		c.returnQueue = append(c.returnQueue, tx)
	}

	delete(c.pendingRdQ, cmd.HexAddr)
}

func (c *Controller) completeWrite(cmd signal.Command) {
	pending, ok := c.pendingWrQ[cmd.HexAddr]
	if !ok {
		fail.Abort("controller.issueCommand", "write issued with no pending entry", cmd.HexAddr)
	}

	if c.cfg.IsLRDIMM {
		c.lrdimm.EnqueueWriteData(cmd.Rank(), cmd.HexAddr, pending.Payload)
	}

	c.stats.AddValue("write_latency", c.clk-pending.AddedCycle+c.cfg.WriteDelay)
	delete(c.pendingWrQ, cmd.HexAddr)
}

func (c *Controller) updateCommandStats(cmd signal.Command) {
	switch cmd.Kind {
	case signal.CommandRead, signal.CommandReadPrecharge, signal.CommandWrite, signal.CommandWritePrecharge:
		if c.channel.RowHitCount(cmd.Rank(), cmd.BankGroup(), cmd.Bank()) > 0 {
			c.stats.Increment("row_hits")
		} else {
			c.stats.Increment("row_misses")
		}

		if cmd.Kind.IsRead() {
			c.stats.Increment("num_reads_issued")
		} else {
			c.stats.Increment("num_writes_issued")
		}
	case signal.CommandActivate:
		c.stats.Increment("num_activates")
	case signal.CommandPrecharge:
		c.stats.Increment("num_precharges")
	case signal.CommandRefresh, signal.CommandRefreshBank:
		c.stats.Increment("num_refreshes")
	case signal.CommandSrefEnter:
		c.stats.Increment("num_sref_enter")
	case signal.CommandSrefExit:
		c.stats.Increment("num_sref_exit")
	case signal.CommandMRS:
		c.stats.Increment("num_mrs_issued")
	default:
		fail.Abort("controller.updateCommandStats", "unrecognized command kind", cmd.HexAddr)
	}
}

// ReturnDoneTransactions scans the return queue in insertion order and
// drains the first entry whose completion cycle has arrived (§4.7). The
// returned ok is false if nothing is ready yet.
func (c *Controller) ReturnDoneTransactions(clk uint64) (addr uint64, isWrite bool, ok bool) {
	for i, tx := range c.returnQueue {
		if tx.CompleteCycle > clk {
			continue
		}

		c.returnQueue = append(c.returnQueue[:i:i], c.returnQueue[i+1:]...)

		switch {
		case tx.IsMRS:
			c.stats.Increment("num_mrs_done")
		case tx.IsWrite:
			c.stats.Increment("num_writes_done")
		default:
			c.stats.Increment("num_reads_done")
			c.stats.AddValue("read_latency", clk-tx.AddedCycle)

			if c.cfg.IsLRDIMM {
				c.respData = append(c.respData, tx.Payload)
			}
		}

		c.InvokeHook(telemetry.HookCtx{Domain: c, Pos: telemetry.HookPosComplete, Item: tx})

		return tx.Addr, tx.IsWrite, true
	}

	return 0, false, false
}

// GetRespData pops one LRDIMM read payload queued by ReturnDoneTransactions.
func (c *Controller) GetRespData() []uint64 {
	if len(c.respData) == 0 {
		fail.Abort("controller.GetRespData", "resp_data empty", 0)
	}

	payload := c.respData[0]
	c.respData = c.respData[1:]

	return payload
}

// QueueUsage forwards to the command queue's own usage count.
func (c *Controller) QueueUsage() int { return c.cmdQueue.QueueUsage() }

// Clock returns the controller's current cycle count, for driving loops
// that need to pass "now" to ReturnDoneTransactions without keeping their
// own shadow counter.
func (c *Controller) Clock() uint64 { return c.clk }

// PrintEpochStats flushes the stats collaborator's epoch snapshot.
func (c *Controller) PrintEpochStats() {
	c.reportBackgroundEnergy()
	c.stats.PrintEpochStats()
}

// PrintFinalStats flushes the stats collaborator's final snapshot.
func (c *Controller) PrintFinalStats() {
	c.reportBackgroundEnergy()
	c.stats.PrintFinalStats()
}

// reportBackgroundEnergy forwards each rank's accumulated background energy
// to the thermal collaborator, mirroring the original's PrintEpochStats/
// PrintFinalStats loop over ranks calling
// thermal_calc_.UpdateBackgroundEnergy(channel_id_, r, simple_stats_.RankBackgroundEnergy(r)).
func (c *Controller) reportBackgroundEnergy() {
	if c.thermal == nil {
		return
	}

	for r := 0; r < c.cfg.Ranks; r++ {
		c.thermal.UpdateBackgroundEnergy(c.channelID, r, c.stats.RankBackgroundEnergy(r))
	}
}
