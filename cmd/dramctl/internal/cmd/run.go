package cmd

import (
	"log"
	"os"

	"github.com/shirou/gopsutil/process"
	"github.com/spf13/cobra"

	"github.com/sarchlab/dramctl/cmd/dramctl/internal/tracefile"
	"github.com/sarchlab/dramctl/config"
	"github.com/sarchlab/dramctl/controller"
	"github.com/sarchlab/dramctl/dramsys"
	"github.com/sarchlab/dramctl/internal/cmdq"
	"github.com/sarchlab/dramctl/internal/org"
	"github.com/sarchlab/dramctl/internal/refresh"
	"github.com/sarchlab/dramctl/internal/stats"
)

var (
	runTracePath string
	runIdeal     bool
	runIdealLat  uint64
	runEnvFile   string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Drive a channel from a trace file to completion.",
	Run: func(_ *cobra.Command, _ []string) {
		runSimulation()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runTracePath, "trace", "", "path to the transaction trace file (required)")
	runCmd.Flags().BoolVar(&runIdeal, "ideal", false, "use a fixed-latency ideal system instead of the timing-accurate controller")
	runCmd.Flags().Uint64Var(&runIdealLat, "ideal-latency", 100, "fixed completion latency in cycles, only used with --ideal")
	runCmd.Flags().StringVar(&runEnvFile, "env", "", "optional .env file of DRAMCTL_* overrides")

	_ = runCmd.MarkFlagRequired("trace")
}

func runSimulation() {
	f, err := os.Open(runTracePath)
	if err != nil {
		log.Fatalf("dramctl: %v", err)
	}
	defer f.Close()

	entries, err := tracefile.Read(f)
	if err != nil {
		log.Fatalf("dramctl: %v", err)
	}

	logHostResources("before run")

	system := buildSystem()
	driveTrace(system, entries)

	system.PrintFinalStats()
	logHostResources("after run")
}

// system is the subset of dramsys.System the driver loop needs, satisfied
// by both dramsys.System and dramsys.IdealSystem.
type system interface {
	WillAcceptTransaction(addr uint64, isWrite, isMRS bool) bool
	AddTransaction(addr uint64, isWrite, isMRS bool, payload []uint64) bool
	ClockTick()
	ReturnDoneTransactions() (addr uint64, isWrite bool, ok bool)
	QueueUsage() int
	PrintFinalStats()
}

func buildSystem() system {
	if runIdeal {
		return dramsys.NewIdealSystem(runIdealLat)
	}

	cfg := config.LoadEnvOverrides(config.MakeBuilder().Build(), runEnvFile)
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

	return dramsys.New([]dramsys.Channel{ctrl}, 0, 0)
}

func driveTrace(sys system, entries []tracefile.Entry) {
	var (
		next      int
		completed int
		clk       uint64
	)

	for next < len(entries) || completed < len(entries) {
		for next < len(entries) && entries[next].Clock <= clk {
			e := entries[next]
			if sys.WillAcceptTransaction(e.Addr, e.IsWrite, e.IsMRS) {
				var payload []uint64
				if e.IsWrite {
					payload = []uint64{e.Addr}
				}

				sys.AddTransaction(e.Addr, e.IsWrite, e.IsMRS, payload)
				next++
			} else {
				break
			}
		}

		if _, _, ok := sys.ReturnDoneTransactions(); ok {
			completed++
		}

		sys.ClockTick()
		clk++
	}

	log.Printf("dramctl: completed %d transactions in %d cycles", completed, clk)
}

func logHostResources(when string) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return
	}

	cpuPercent, cpuErr := proc.CPUPercent()
	memInfo, memErr := proc.MemoryInfo()

	if cpuErr == nil && memErr == nil {
		log.Printf("dramctl: host resources %s: cpu=%.1f%% rss=%dB", when, cpuPercent, memInfo.RSS)
	}
}
