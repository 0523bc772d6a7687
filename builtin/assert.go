// Package builtin implements the primitive operations of spec §4.6:
// list/head/tail/join/eval, arithmetic and comparison, if, the lambda
// constructor, def/=, load, print and error. Register installs the
// whole table into a root environment.
package builtin

import "lispy.dev/lispy/value"

// assert is the single canonical argument-validation helper every
// built-in routes through, always shaped (name, args, ...). The
// original source's load/print/error built-ins invoked their
// assertion macro with a transposed argument order relative to every
// other built-in; that asymmetry is treated here as a latent defect,
// not a convention to preserve, so every built-in in this package,
// load and error included, validates through this one helper (print
// accepts any arguments and validates nothing).
func assert(name string, args *value.Value, ok bool, format string, a ...any) *value.Value {
	if ok {
		return nil
	}
	return value.NewError(format, append([]any{name}, a...)...)
}

// assertArity requires args to have exactly n children.
func assertArity(name string, args *value.Value, n int) *value.Value {
	return assert(name, args, len(args.Cells) == n,
		"Function '%s' passed incorrect num of args. Got %d, expected %d.", len(args.Cells), n)
}

// assertMinArity requires args to have at least n children.
func assertMinArity(name string, args *value.Value, n int) *value.Value {
	return assert(name, args, len(args.Cells) >= n,
		"Function '%s' passed incorrect num of args. Got %d, expected at least %d.", len(args.Cells), n)
}

// assertType requires the i-th child of args to have kind k.
func assertType(name string, args *value.Value, i int, k value.Kind) *value.Value {
	got := args.Cells[i]
	return assert(name, args, got.Kind == k,
		"Function '%s' passed incorrect type. Got %s, expected %s.", value.TypeName(got), k)
}

// assertNotEmpty requires the i-th child of args (a QExpr) to have at
// least one cell.
func assertNotEmpty(name string, args *value.Value, i int) *value.Value {
	return assert(name, args, len(args.Cells[i].Cells) != 0,
		"Function '%s' passed {} for argument %d", i)
}
