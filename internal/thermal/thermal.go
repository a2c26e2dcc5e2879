// Package thermal implements the optional ThermalCalculator collaborator.
// The spec's design notes call for conditional compilation to be modeled as
// a runtime-configured optional collaborator rather than a build tag, so a
// nil Calculator is simply never invoked instead of the controller carrying
// a THERMAL build constraint.
package thermal

import "github.com/sarchlab/dramctl/internal/signal"

// Calculator receives per-command power events and per-epoch background
// energy so a caller can model device temperature. The controller core
// only ever calls UpdateCMDPower and UpdateBackgroundEnergy; anything more
// sophisticated (an actual thermal model) is entirely this package's
// business and is out of the controller's test surface.
type Calculator interface {
	UpdateCMDPower(channel int, cmd signal.Command, clk uint64)
	UpdateBackgroundEnergy(channel, rank int, energyJ float64)
}

// NoOp is the default Calculator: thermal modeling is disabled.
type NoOp struct{}

// UpdateCMDPower does nothing.
func (NoOp) UpdateCMDPower(int, signal.Command, uint64) {}

// UpdateBackgroundEnergy does nothing.
func (NoOp) UpdateBackgroundEnergy(int, int, float64) {}
