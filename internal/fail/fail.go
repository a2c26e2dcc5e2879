// Package fail provides the controller's single abort path. Every condition
// in the spec's error taxonomy is a correctness bug in the caller, not a
// runtime variability the controller can recover from, so the only response
// is to panic with enough context to find the offending call site — the
// same "diagnostic containing the offending address" the teacher's
// AbruptExit(file, line) idiom produces.
package fail

import "fmt"

// Violation is the panic value raised for every fatal condition the spec
// names: a missing pending-queue entry, an unrecognized command kind, or an
// LRDIMM response with no matching return-queue entry.
type Violation struct {
	Where string
	What  string
	Addr  uint64
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s (addr=0x%x)", v.Where, v.What, v.Addr)
}

// Abort raises a Violation. where is normally a "pkg.Func" style call site.
func Abort(where, what string, addr uint64) {
	panic(&Violation{Where: where, What: what, Addr: addr})
}
