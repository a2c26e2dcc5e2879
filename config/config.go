// Package config builds the Config collaborator the controller core reads
// from. It follows the teacher's chainable-builder idiom (see
// mem/dram/builder.go's Builder.WithTCL/WithNumBank/...): every field has a
// JEDEC-ish default, and the policy knobs, queue sizes and address mapper can
// be overridden fluently before Build freezes the Config. MRSBufferSize and
// the timing parameters (TCL through TXS) have no With method; they keep
// their defaults unless the built Config is changed directly.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sarchlab/dramctl/internal/addrmap"
)

// RowBufPolicy selects how the controller treats an open row after a R/W.
type RowBufPolicy int

// The two row-buffer policies the spec names.
const (
	OpenPage RowBufPolicy = iota
	ClosePage
)

// Config holds every knob the controller core and its collaborators read.
// Field names track the spec's collaborator contract in §6 verbatim so the
// mapping between spec and code needs no translation table.
type Config struct {
	UnifiedQueue      bool
	RowBufPolicy      RowBufPolicy
	TransQueueSize    int
	CmdQueueSize      int
	MRSBufferSize     int
	Ranks             int
	BankGroups        int
	BanksPerGroup     int
	EnableHBMDualCmd  bool
	EnableSelfRefresh bool
	SrefThreshold     uint64
	ReadDelay         uint64
	WriteDelay        uint64
	IsLRDIMM          bool
	TPDMRd            uint64
	TRPre             uint64
	OutputPrefix      string

	// DRAM timing parameters, named after the JEDEC timing parameters the
	// teacher's builder.go exposes as WithTCL/WithTRCD/etc.
	TCL    int
	TCWL   int
	TRCD   int
	TRP    int
	TRAS   int
	TRC    int
	TRFC   int
	TREFI  int
	TCKESR int
	TXS    int

	AddrMapper addrmap.Mapper
}

// AddressMapping decodes a flat address using the configured Mapper,
// matching the spec's `config.address_mapping(addr) -> Address` contract.
func (c *Config) AddressMapping(addr uint64) (a struct {
	Rank, BankGroup, Bank, Row, Column int
}) {
	loc := c.AddrMapper.Map(addr)

	return struct{ Rank, BankGroup, Bank, Row, Column int }{
		loc.Rank, loc.BankGroup, loc.Bank, loc.Row, loc.Column,
	}
}

// Builder assembles a Config fluently.
type Builder struct {
	cfg Config
}

// MakeBuilder returns a Builder pre-loaded with DDR4-ish defaults, mirroring
// mem/dram/builder.go's MakeBuilder.
func MakeBuilder() Builder {
	return Builder{cfg: Config{
		UnifiedQueue:      false,
		RowBufPolicy:      OpenPage,
		TransQueueSize:    32,
		CmdQueueSize:      8,
		MRSBufferSize:     8,
		Ranks:             1,
		BankGroups:        4,
		BanksPerGroup:     4,
		EnableHBMDualCmd:  false,
		EnableSelfRefresh: false,
		SrefThreshold:     1000,
		ReadDelay:         29,
		WriteDelay:        29,
		IsLRDIMM:          false,
		TPDMRd:            2,
		TRPre:             1,
		OutputPrefix:      "dramctl_",
		TCL:               11,
		TCWL:              8,
		TRCD:              11,
		TRP:               11,
		TRAS:              28,
		TRC:               39,
		TRFC:              208,
		TREFI:             6240,
		TCKESR:            5,
		TXS:               216,
		AddrMapper: addrmap.BitFieldMapper{
			ColumnBits:    10,
			BankBits:      2,
			BankGroupBits: 2,
			RankBits:      1,
			RowBits:       16,
		},
	}}
}

// WithUnifiedQueue selects a single read/write transaction queue instead of
// the split read_queue/write_buffer pair.
func (b Builder) WithUnifiedQueue(v bool) Builder { b.cfg.UnifiedQueue = v; return b }

// WithRowBufPolicy selects OpenPage or ClosePage.
func (b Builder) WithRowBufPolicy(p RowBufPolicy) Builder { b.cfg.RowBufPolicy = p; return b }

// WithTransQueueSize sets the capacity of the read queue, the write buffer
// and the unified queue. The MRS buffer's capacity is MRSBufferSize.
func (b Builder) WithTransQueueSize(n int) Builder { b.cfg.TransQueueSize = n; return b }

// WithCmdQueueSize sets the per-rank command queue depth.
func (b Builder) WithCmdQueueSize(n int) Builder { b.cfg.CmdQueueSize = n; return b }

// WithRanks sets the number of ranks on the channel.
func (b Builder) WithRanks(n int) Builder { b.cfg.Ranks = n; return b }

// WithBankGroups sets the number of bank groups per rank.
func (b Builder) WithBankGroups(n int) Builder { b.cfg.BankGroups = n; return b }

// WithBanksPerGroup sets the number of banks per bank group.
func (b Builder) WithBanksPerGroup(n int) Builder { b.cfg.BanksPerGroup = n; return b }

// WithHBMDualCmd enables the optional second-command-per-cycle issue path.
func (b Builder) WithHBMDualCmd(v bool) Builder { b.cfg.EnableHBMDualCmd = v; return b }

// WithSelfRefresh enables automatic self-refresh entry/exit.
func (b Builder) WithSelfRefresh(v bool, threshold uint64) Builder {
	b.cfg.EnableSelfRefresh = v
	b.cfg.SrefThreshold = threshold

	return b
}

// WithReadWriteDelay sets the fixed-point read/write data-return latency.
func (b Builder) WithReadWriteDelay(read, write uint64) Builder {
	b.cfg.ReadDelay = read
	b.cfg.WriteDelay = write

	return b
}

// WithLRDIMM enables the on-DIMM buffer bridge and its extra latency terms.
func (b Builder) WithLRDIMM(v bool, tPDMRd, tRPre uint64) Builder {
	b.cfg.IsLRDIMM = v
	b.cfg.TPDMRd = tPDMRd
	b.cfg.TRPre = tRPre

	return b
}

// WithOutputPrefix sets the prefix used for stats/trace output files.
func (b Builder) WithOutputPrefix(prefix string) Builder { b.cfg.OutputPrefix = prefix; return b }

// WithAddrMapper overrides the default bit-field address mapper.
func (b Builder) WithAddrMapper(m addrmap.Mapper) Builder { b.cfg.AddrMapper = m; return b }

// Build freezes the Config.
func (b Builder) Build() Config { return b.cfg }

// LoadEnvOverrides reads a .env file (if present) with godotenv and applies
// DRAMCTL_-prefixed overrides on top of cfg, so a deployment can tweak a
// handful of knobs — most usefully the self-refresh threshold when sweeping
// power-management experiments — without recompiling.
func LoadEnvOverrides(cfg Config, envFile string) Config {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}

	if v, ok := os.LookupEnv("DRAMCTL_SREF_THRESHOLD"); ok {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.SrefThreshold = n
		}
	}

	if v, ok := os.LookupEnv("DRAMCTL_ENABLE_SELF_REFRESH"); ok {
		cfg.EnableSelfRefresh = v == "1" || v == "true"
	}

	if v, ok := os.LookupEnv("DRAMCTL_TRANS_QUEUE_SIZE"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TransQueueSize = n
		}
	}

	return cfg
}
