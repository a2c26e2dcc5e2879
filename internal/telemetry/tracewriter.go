package telemetry

import (
	"fmt"
	"os"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/dramctl/internal/signal"
)

// CommandTraceWriter renders one line per issued command: the clock cycle
// left-justified in an 18-wide field, a space, then the command's printable
// representation. The buffering and flush-on-exit idiom follows the
// teacher's CSVTraceWriter.
type CommandTraceWriter struct {
	path string
	file *os.File

	lines      []string
	bufferSize int
}

// NewCommandTraceWriter builds a writer that will create path on Init. An
// empty path gets a generated run-unique name.
func NewCommandTraceWriter(path string) *CommandTraceWriter {
	return &CommandTraceWriter{path: path, bufferSize: 1000}
}

// Init creates the trace file, overwriting anything already there.
func (w *CommandTraceWriter) Init() {
	if w.path == "" {
		w.path = "dramctl_trace_" + xid.New().String() + ".trace"
	}

	file, err := os.Create(w.path)
	if err != nil {
		panic(err)
	}

	w.file = file

	atexit.Register(func() {
		w.Flush()

		if err := w.file.Close(); err != nil {
			panic(err)
		}
	})
}

// WriteCommand records one issued command against the cycle it was issued
// on.
func (w *CommandTraceWriter) WriteCommand(clk uint64, cmd signal.Command) {
	line := fmt.Sprintf("%-18d %s %#x", clk, cmd.Kind.String(), cmd.HexAddr)
	w.lines = append(w.lines, line)

	if len(w.lines) >= w.bufferSize {
		w.Flush()
	}
}

// Flush writes every buffered line to disk.
func (w *CommandTraceWriter) Flush() {
	for _, line := range w.lines {
		fmt.Fprintln(w.file, line)
	}

	w.lines = nil
}
