// Package lrdimm implements the optional LRDIMMBridge collaborator: a thin
// adapter that models the extra latency a load-reduced DIMM's on-board
// buffer inserts between the DRAM devices and the host, staging write data
// on the way in and delivering read data on the way out a few cycles after
// the controller's own timing model says the command completed.
package lrdimm

import "github.com/sarchlab/dramctl/internal/signal"

type pendingWrite struct {
	rank    int
	addr    uint64
	payload []uint64
}

type pendingRead struct {
	readyAt uint64
	cmd     signal.Command
	payload []uint64
}

// Bridge buffers write payloads until the device accepts them and delays
// read payloads by the buffer's own staging latency before handing them
// back to the controller.
type Bridge struct {
	latency uint64
	clk     uint64

	writes []pendingWrite
	reads  []pendingRead
}

// New builds a Bridge with the given extra staging latency in cycles.
func New(latency uint64) *Bridge {
	return &Bridge{latency: latency}
}

// Tick advances the bridge's internal clock.
func (b *Bridge) Tick() {
	b.clk++
}

// RecordDDRCmd observes every issued DRAM command. A completed READ starts
// the buffer's own staging delay before the data is available to the host;
// the payload itself is opaque to this bridge (the spec has no backing
// memory-content model), so it is carried through unchanged from whatever
// the device attached to the command at issue time.
func (b *Bridge) RecordDDRCmd(cmd signal.Command, payload []uint64) {
	if !cmd.Kind.IsRead() {
		return
	}

	b.reads = append(b.reads, pendingRead{
		readyAt: b.clk + b.latency,
		cmd:     cmd,
		payload: payload,
	})
}

// EnqueueWriteData stores a write payload keyed by rank and address,
// mirroring the spec's `enqueue_write_data(rank, addr, payload)`.
func (b *Bridge) EnqueueWriteData(rank int, addr uint64, payload []uint64) {
	b.writes = append(b.writes, pendingWrite{rank: rank, addr: addr, payload: payload})
}

// GetReadResponse delivers one completed read payload if its staging delay
// has elapsed, matching `get_read_response() -> (cmd, payload)`.
func (b *Bridge) GetReadResponse() (signal.Command, []uint64, bool) {
	for i, r := range b.reads {
		if b.clk < r.readyAt {
			continue
		}

		b.reads = append(b.reads[:i], b.reads[i+1:]...)

		return r.cmd, r.payload, true
	}

	return signal.Command{}, nil, false
}
