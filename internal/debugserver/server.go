// Package debugserver exposes a running controller's live stats, command
// trace, and the standard pprof profiling tree over HTTP, grounded on the
// teacher's monitoring.Monitor.
package debugserver

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on http.DefaultServeMux
	"os"

	"github.com/gorilla/mux"
	"github.com/shirou/gopsutil/process"
)

// StatsSource is the read-only view of a stats.Sink the /stats endpoint
// needs.
type StatsSource interface {
	Snapshot() (map[string]uint64, map[string][]uint64)
}

// Server serves diagnostics for one controller run.
type Server struct {
	portNumber int
	stats      StatsSource
	tracePath  string
}

// New builds a Server over the given stats source.
func New(stats StatsSource) *Server {
	return &Server{stats: stats}
}

// WithPortNumber sets the TCP port to listen on. A value under 1000 is
// rejected in favor of an OS-assigned port, matching the teacher's guard
// against binding privileged ports by accident.
func (s *Server) WithPortNumber(port int) *Server {
	if port < 1000 {
		fmt.Fprintf(os.Stderr,
			"dramctl: refusing to bind privileged port %d, using a random port instead\n", port)
		port = 0
	}

	s.portNumber = port

	return s
}

// WithTracePath makes the /trace endpoint serve the given file.
func (s *Server) WithTracePath(path string) *Server {
	s.tracePath = path
	return s
}

// ListenAndServe blocks serving the debug routes until the listener fails.
func (s *Server) ListenAndServe() error {
	r := mux.NewRouter()
	r.HandleFunc("/stats", s.handleStats)
	r.HandleFunc("/trace", s.handleTrace)
	r.HandleFunc("/resources", s.handleResources)
	r.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	http.Handle("/", r)

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", s.portNumber))
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "dramctl: debug server listening on %s\n", listener.Addr())

	return http.Serve(listener, nil)
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	scalars, vectors := s.stats.Snapshot()
	writeJSON(w, map[string]any{"scalars": scalars, "vectors": vectors})
}

func (s *Server) handleTrace(w http.ResponseWriter, r *http.Request) {
	if s.tracePath == "" {
		http.Error(w, "no trace file configured", http.StatusNotFound)
		return
	}

	http.ServeFile(w, r, s.tracePath)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (s *Server) handleResources(w http.ResponseWriter, _ *http.Request) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	cpuPercent, err := proc.CPUPercent()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	memInfo, err := proc.MemoryInfo()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, resourceRsp{CPUPercent: cpuPercent, MemorySize: memInfo.RSS})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
