// Package eval reduces S-expressions to values: Eval implements the
// self-evaluation and symbol-lookup rules of spec §4.3, and Call
// implements the function-call protocol of spec §4.4, including
// variadic binding and partial application.
package eval

import (
	"lispy.dev/lispy/env"
	"lispy.dev/lispy/value"
)

// Frame adapts an *env.Environment (pure storage) into a
// value.Evaluator (storage plus the ability to recursively reduce
// expressions), so that builtins can call back into Eval/Call without
// the value package needing to know about evaluation at all.
type Frame struct {
	*env.Environment
}

// NewFrame wraps an environment as an Evaluator.
func NewFrame(e *env.Environment) *Frame { return &Frame{Environment: e} }

// NewRootFrame creates a fresh, parentless frame, meant to become the
// global environment once builtins are registered into it.
func NewRootFrame() *Frame { return NewFrame(env.New(nil)) }

// Eval reduces v in this frame's environment.
func (f *Frame) Eval(v *value.Value) *value.Value { return Eval(f, v) }

// Fresh creates a new, parentless environment (used to capture a
// lambda's defining scope at the point of creation).
func (f *Frame) Fresh() value.Evaluator { return NewFrame(env.New(nil)) }

// Copy deep-copies the bindings of this frame.
func (f *Frame) Copy() value.Evaluator { return NewFrame(f.Environment.Copy()) }

// SetParent rebinds this frame's (non-owning) parent link.
func (f *Frame) SetParent(parent value.Evaluator) {
	f.Environment.SetParent(asEnvironment(parent))
}

// asEnvironment unwraps a value.Evaluator known to be a *Frame. Every
// Evaluator constructed by this module is a *Frame; Call relies on
// that invariant to rebind a lambda's captured environment.
func asEnvironment(e value.Evaluator) *env.Environment {
	if e == nil {
		return nil
	}
	frame, ok := e.(*Frame)
	if !ok {
		panic("eval: foreign value.Evaluator implementation")
	}
	return frame.Environment
}
