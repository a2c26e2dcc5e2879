// Package addrmap decodes a flat physical address into the (rank,
// bankgroup, bank, row, column) tuple the rest of the controller operates
// on. This is the collaborator the spec calls out as "address decode from
// flat hex to (channel, rank, bankgroup, bank, row, column)" — out of scope
// for the controller core, but still a concrete, swappable component here.
package addrmap

import "github.com/sarchlab/dramctl/internal/signal"

// Mapper decodes a flat address into a DRAM location.
type Mapper interface {
	Map(addr uint64) signal.Address
}

// BitFieldMapper is the conventional DRAMSim3-style mapper: each field of
// the address occupies a contiguous, configurable run of bits, ordered from
// the least-significant column bits up through the most-significant row
// bits. This is the standard "row:rank:bankgroup:bank:column" layout most
// JEDEC-protocol address-mapping schemes use.
type BitFieldMapper struct {
	ColumnBits    int
	BankBits      int
	BankGroupBits int
	RankBits      int
	RowBits       int
}

// Map decodes addr into its DRAM location using the configured bit widths.
func (m BitFieldMapper) Map(addr uint64) signal.Address {
	shift := 0

	column := extractBits(addr, shift, m.ColumnBits)
	shift += m.ColumnBits

	bank := extractBits(addr, shift, m.BankBits)
	shift += m.BankBits

	bankGroup := extractBits(addr, shift, m.BankGroupBits)
	shift += m.BankGroupBits

	rank := extractBits(addr, shift, m.RankBits)
	shift += m.RankBits

	row := extractBits(addr, shift, m.RowBits)

	return signal.Address{
		Rank:      int(rank),
		BankGroup: int(bankGroup),
		Bank:      int(bank),
		Row:       int(row),
		Column:    int(column),
	}
}

func extractBits(addr uint64, shift, width int) uint64 {
	if width <= 0 {
		return 0
	}

	mask := uint64(1)<<uint(width) - 1

	return (addr >> uint(shift)) & mask
}
