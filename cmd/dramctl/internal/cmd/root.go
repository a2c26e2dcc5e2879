// Package cmd provides the dramctl command-line interface: run a channel
// against a transaction trace to completion, or serve one live behind the
// debug server. Grounded on the teacher's akitav5/cmd root-command pattern.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

var rootCmd = &cobra.Command{
	Use:   "dramctl",
	Short: "dramctl drives a DRAM controller simulation from a transaction trace.",
	Long: "dramctl drives a DRAM controller simulation from a transaction trace,\n" +
		"either to completion or live behind a debug server.",
}

// Execute runs the dramctl command tree, then exits through atexit so the
// flush handlers registered by the trace writer and the SQLite persister run.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
