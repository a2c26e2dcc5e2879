// Package telemetry carries the controller's observability concerns: the
// Hook/Hookable observer pattern used to let a caller watch command issue
// events, and the command-trace writer that renders them to disk. The
// pattern is the teacher's sim/hooking + sim/naming pair, folded into one
// package since the controller never needs them as independently
// swappable concerns.
package telemetry

// HookPos names a site in the controller's cycle where hooks may fire.
type HookPos struct {
	Name string
}

// Hook positions the controller core invokes.
var (
	HookPosIssue    = &HookPos{Name: "Issue"}
	HookPosComplete = &HookPos{Name: "Complete"}
)

// HookCtx carries the information about the site a hook fired at.
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   interface{}
	Detail interface{}
}

// Hookable is an object that accepts Hooks.
type Hookable interface {
	AcceptHook(hook Hook)
	NumHooks() int
	Hooks() []Hook
}

// Hook is a short piece of program a Hookable object invokes.
type Hook interface {
	Func(ctx HookCtx)
}

// HookableBase is embedded by types that want a default Hookable
// implementation.
type HookableBase struct {
	hookList []Hook
}

// NumHooks returns the number of hooks registered.
func (h *HookableBase) NumHooks() int {
	return len(h.hookList)
}

// Hooks returns all the hooks registered.
func (h *HookableBase) Hooks() []Hook {
	return h.hookList
}

// AcceptHook registers a hook.
func (h *HookableBase) AcceptHook(hook Hook) {
	for _, existing := range h.hookList {
		if existing == hook {
			panic("duplicated hook")
		}
	}

	h.hookList = append(h.hookList, hook)
}

// InvokeHook triggers every registered hook.
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.hookList {
		hook.Func(ctx)
	}
}

// Named describes an object that has a name, used to disambiguate multiple
// controllers/channels sharing one trace or debug server.
type Named interface {
	Name() string
}

// NamedBase is a base implementation of Named.
type NamedBase struct {
	name string
}

// Name returns the object's name.
func (b *NamedBase) Name() string { return b.name }

// MakeNamedBase builds a NamedBase with the given name.
func MakeNamedBase(name string) NamedBase {
	return NamedBase{name: name}
}
