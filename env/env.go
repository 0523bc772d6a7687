// Package env implements the name-to-value environment: an ordered set
// of bindings plus an optional parent, used by the evaluator to resolve
// symbols and by lambdas to capture their defining scope.
package env

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"lispy.dev/lispy/value"
)

// Environment is a single binding frame. Parent is a non-owning back
// link followed only by Get and Def; it is rebound by the call protocol for
// the duration of a single lambda application (see eval.Call).
type Environment struct {
	id     string
	parent *Environment
	vars   map[string]*value.Value
}

// New creates an environment with the given parent (nil for a root or
// standalone environment).
func New(parent *Environment) *Environment {
	return &Environment{
		id:     uuid.NewString(),
		parent: parent,
		vars:   make(map[string]*value.Value, 8),
	}
}

// ID returns a short diagnostic identity for this frame, distinct per
// Environment instance, used by String (and so by the "env" builtin)
// to tell nested frames apart without printing their full contents.
func (e *Environment) ID() string { return e.id[:8] }

// String renders a short diagnostic form: this frame's identity and the
// names bound directly in it, used by the "env" builtin and by logging.
func (e *Environment) String() string {
	return fmt.Sprintf("<env:%s %s>", e.ID(), strings.Join(e.Bindings(), " "))
}

// Parent returns the (non-owning) parent environment, or nil at the
// root.
func (e *Environment) Parent() *Environment { return e.parent }

// SetParent rebinds the parent link. Used by the call protocol to chain
// a lambda's captured environment to the caller for one application.
func (e *Environment) SetParent(parent *Environment) { e.parent = parent }

// Get searches the current frame, then recurses into Parent. It returns
// a fresh copy on success (the caller owns it) or an Error value if the
// symbol is unbound anywhere in the chain.
func (e *Environment) Get(sym string) *value.Value {
	for frame := e; frame != nil; frame = frame.parent {
		if v, ok := frame.vars[sym]; ok {
			return value.Copy(v)
		}
	}
	return value.NewError("Unbound symbol '%s'", sym)
}

// Put binds sym to a copy of val in the current frame only, replacing
// any existing binding.
func (e *Environment) Put(sym string, val *value.Value) {
	e.vars[sym] = value.Copy(val)
}

// Def walks to the root frame (following Parent until nil) and Puts
// there, making the binding globally visible.
func (e *Environment) Def(sym string, val *value.Value) {
	root := e
	for root.parent != nil {
		root = root.parent
	}
	root.Put(sym, val)
}

// Copy performs a deep copy of this frame's bindings; Parent is shared,
// not copied, per the environment model.
func (e *Environment) Copy() *Environment {
	cp := &Environment{
		id:     uuid.NewString(),
		parent: e.parent,
		vars:   make(map[string]*value.Value, len(e.vars)),
	}
	for k, v := range e.vars {
		cp.vars[k] = value.Copy(v)
	}
	return cp
}

// Bindings returns the names bound directly in this frame, sorted; used
// by String and, through it, the "env" builtin.
func (e *Environment) Bindings() []string {
	names := make([]string, 0, len(e.vars))
	for k := range e.vars {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
