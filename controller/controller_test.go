package controller_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/dramctl/config"
	"github.com/sarchlab/dramctl/controller"
	"github.com/sarchlab/dramctl/internal/cmdq"
	"github.com/sarchlab/dramctl/internal/org"
	"github.com/sarchlab/dramctl/internal/refresh"
	"github.com/sarchlab/dramctl/internal/stats"
)

// buildController wires the real collaborator packages (not mocks) behind a
// Controller, the way an integration test of the scheduling pipeline needs:
// the behavior under test here is the interplay between the controller's
// own buffers and a real bank-timing model, not any one collaborator in
// isolation.
func buildController(cfg config.Config) (*controller.Controller, *stats.Sink) {
	channel := org.New(&cfg)
	queue := cmdq.New(channel, cfg.Ranks, cfg.CmdQueueSize, cfg.MRSBufferSize)
	ref := refresh.New(channel, cfg.Ranks, uint64(cfg.TREFI))
	sink := stats.New(nil)

	ctrl := controller.MakeBuilder().
		WithConfig(cfg).
		WithChannelState(channel).
		WithCmdQueue(queue).
		WithRefresh(ref).
		WithStats(sink).
		Build()

	return ctrl, sink
}

var _ = Describe("Controller", func() {
	It("rejects admission once a buffer is at capacity", func() {
		cfg := config.MakeBuilder().WithTransQueueSize(2).Build()
		ctrl, _ := buildController(cfg)

		Expect(ctrl.WillAcceptTransaction(0x10, false, false)).To(BeTrue())
		Expect(ctrl.AddTransaction(0x10, false, false, nil)).To(BeTrue())

		Expect(ctrl.WillAcceptTransaction(0x20, false, false)).To(BeTrue())
		Expect(ctrl.AddTransaction(0x20, false, false, nil)).To(BeTrue())

		Expect(ctrl.WillAcceptTransaction(0x30, false, false)).To(BeFalse())
	})

	It("merges a second write to a pending address and still acknowledges both", func() {
		cfg := config.MakeBuilder().Build()
		ctrl, _ := buildController(cfg)

		Expect(ctrl.AddTransaction(0x100, true, false, []uint64{1})).To(BeTrue())
		ctrl.ClockTick() // clk 0 -> 1

		Expect(ctrl.AddTransaction(0x100, true, false, []uint64{2})).To(BeTrue())
		ctrl.ClockTick() // clk 1 -> 2

		Expect(ctrl.AddTransaction(0x100, false, false, nil)).To(BeTrue())
		ctrl.ClockTick() // clk 2 -> 3

		addr, isWrite, ok := ctrl.ReturnDoneTransactions(1)
		Expect(ok).To(BeTrue())
		Expect(addr).To(Equal(uint64(0x100)))
		Expect(isWrite).To(BeTrue())

		addr, isWrite, ok = ctrl.ReturnDoneTransactions(2)
		Expect(ok).To(BeTrue())
		Expect(addr).To(Equal(uint64(0x100)))
		Expect(isWrite).To(BeTrue())

		// The read was admitted while the write was still pending, so it is
		// forwarded rather than traversing DRAM, and completes at its own
		// added_cycle+1 just like the writes did.
		addr, isWrite, ok = ctrl.ReturnDoneTransactions(3)
		Expect(ok).To(BeTrue())
		Expect(addr).To(Equal(uint64(0x100)))
		Expect(isWrite).To(BeFalse())
	})

	It("coalesces repeated reads to the same address onto one DRAM command", func() {
		cfg := config.MakeBuilder().Build()
		ctrl, _ := buildController(cfg)

		clk := uint64(0)

		for i := 0; i < 3; i++ {
			Expect(ctrl.AddTransaction(0x200, false, false, nil)).To(BeTrue())
			ctrl.ClockTick()
			clk++
		}

		var completionCycles []uint64

		for len(completionCycles) < 3 && clk < 500 {
			addr, isWrite, ok := ctrl.ReturnDoneTransactions(clk)
			if !ok {
				ctrl.ClockTick()
				clk++

				continue
			}

			Expect(addr).To(Equal(uint64(0x200)))
			Expect(isWrite).To(BeFalse())
			completionCycles = append(completionCycles, clk)
		}

		Expect(completionCycles).To(HaveLen(3))
		Expect(completionCycles[0]).To(Equal(completionCycles[1]))
		Expect(completionCycles[1]).To(Equal(completionCycles[2]))
	})

	It("enters self-refresh once a rank has been idle past the threshold", func() {
		cfg := config.MakeBuilder().WithSelfRefresh(true, 1000).Build()
		ctrl, sink := buildController(cfg)

		for i := 0; i < 1100; i++ {
			ctrl.ClockTick()
		}

		Expect(sink.Scalar("num_sref_enter")).To(BeNumerically(">=", uint64(1)))
	})

	It("aborts a write-drain when a write contends an address with a pending read", func() {
		cfg := config.MakeBuilder().WithTransQueueSize(32).Build()
		ctrl, _ := buildController(cfg)

		// The read arrives first, so it lands in pending_rd_q without a
		// pending write to forward from. The same-address write admitted
		// afterward has nothing to merge onto either, so it is queued
		// normally — leaving both pending maps holding addr 0x1000 at once.
		Expect(ctrl.AddTransaction(0x1000, false, false, nil)).To(BeTrue())
		Expect(ctrl.AddTransaction(0x1000, true, false, []uint64{1})).To(BeTrue())

		// Push the write buffer past the lower drain threshold (len > 8
		// with an empty command queue) with distinct addresses.
		for i := 0; i < 9; i++ {
			addr := uint64(0x2000 + i*0x40)
			Expect(ctrl.AddTransaction(addr, true, false, []uint64{uint64(i)})).To(BeTrue())
		}

		ctrl.ClockTick()

		// The drain's first candidate is the 0x1000 write, which must be
		// skipped (and the drain aborted) rather than admitted to the
		// command queue ahead of the pending read to the same address.
		Expect(ctrl.QueueUsage()).To(Equal(0))
	})

	It("drains every buffered write once the upper drain threshold is hit", func() {
		cfg := config.MakeBuilder().WithTransQueueSize(4).Build()
		ctrl, _ := buildController(cfg)

		for i := 0; i < 4; i++ {
			addr := uint64(0x3000 + i*0x40)
			Expect(ctrl.AddTransaction(addr, true, false, []uint64{uint64(i)})).To(BeTrue())
		}

		// Filling write_buffer to capacity forces write_draining to snapshot
		// at capacity on the very next schedule_transaction call.
		ctrl.ClockTick()

		drained := false

		for i := 0; i < 500 && !drained; i++ {
			ctrl.ClockTick()
			drained = ctrl.QueueUsage() == 0
		}

		Expect(drained).To(BeTrue())
	})
})
