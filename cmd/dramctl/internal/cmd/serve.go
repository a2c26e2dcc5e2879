package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/sarchlab/dramctl/cmd/dramctl/internal/tracefile"
	"github.com/sarchlab/dramctl/config"
	"github.com/sarchlab/dramctl/controller"
	"github.com/sarchlab/dramctl/internal/cmdq"
	"github.com/sarchlab/dramctl/internal/debugserver"
	"github.com/sarchlab/dramctl/internal/org"
	"github.com/sarchlab/dramctl/internal/refresh"
	"github.com/sarchlab/dramctl/internal/stats"
	"github.com/sarchlab/dramctl/internal/telemetry"
)

var (
	servePort  int
	serveOpen  bool
	serveTrace string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a trace against the controller while exposing a live debug server.",
	Run: func(_ *cobra.Command, _ []string) {
		serveSimulation()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&runTracePath, "trace", "", "path to the transaction trace file (required)")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "debug server port")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "open the debug server in a browser once it starts")
	serveCmd.Flags().StringVar(&serveTrace, "command-trace", "", "optional path to write the issued-command trace to")

	_ = serveCmd.MarkFlagRequired("trace")
}

func serveSimulation() {
	f, err := os.Open(runTracePath)
	if err != nil {
		log.Fatalf("dramctl: %v", err)
	}
	defer f.Close()

	entries, err := tracefile.Read(f)
	if err != nil {
		log.Fatalf("dramctl: %v", err)
	}

	cfg := config.MakeBuilder().Build()
	channel := org.New(&cfg)
	queue := cmdq.New(channel, cfg.Ranks, cfg.CmdQueueSize, cfg.MRSBufferSize)
	ref := refresh.New(channel, cfg.Ranks, uint64(cfg.TREFI))
	sink := stats.New(nil)

	builder := controller.MakeBuilder().
		WithConfig(cfg).
		WithChannelState(channel).
		WithCmdQueue(queue).
		WithRefresh(ref).
		WithStats(sink)

	var tracePath string

	if serveTrace != "" {
		tracer := telemetry.NewCommandTraceWriter(serveTrace)
		tracer.Init()
		builder = builder.WithTrace(tracer)
		tracePath = serveTrace
	}

	ctrl := builder.Build()

	srv := debugserver.New(sink).WithPortNumber(servePort).WithTracePath(tracePath)

	go func() {
		if err := srv.ListenAndServe(); err != nil {
			log.Fatalf("dramctl: debug server: %v", err)
		}
	}()

	if serveOpen {
		_ = browser.OpenURL(fmt.Sprintf("http://localhost:%d/stats", servePort))
	}

	driveTrace(singleChannelSystem{ctrl}, entries)
	ctrl.PrintFinalStats()
}

// singleChannelSystem adapts a bare *controller.Controller to the driver
// loop's system interface without routing through dramsys.System, since
// serve drives exactly one channel and wants direct access to it for the
// debug server.
type singleChannelSystem struct {
	*controller.Controller
}

func (s singleChannelSystem) ReturnDoneTransactions() (addr uint64, isWrite bool, ok bool) {
	return s.Controller.ReturnDoneTransactions(s.clk())
}

func (s singleChannelSystem) clk() uint64 {
	return s.Controller.Clock()
}
