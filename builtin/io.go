package builtin

import (
	"fmt"
	"io"

	"lispy.dev/lispy/value"
)

// NewPrint builds the `print` builtin writing to out: each (already
// evaluated) argument separated by a single space, followed by a
// newline, returning the empty SExpr.
func NewPrint(out io.Writer) value.Builtin {
	return func(env value.Evaluator, args *value.Value) *value.Value {
		for i, c := range args.Cells {
			if i > 0 {
				fmt.Fprint(out, " ")
			}
			fmt.Fprint(out, c.String())
		}
		fmt.Fprintln(out)
		return value.NewSExpr()
	}
}

// Error builds and returns an Error Value from a single String
// argument.
func Error(env value.Evaluator, args *value.Value) *value.Value {
	if err := assertArity("error", args, 1); err != nil {
		return err
	}
	if err := assertType("error", args, 0, value.String); err != nil {
		return err
	}
	return value.NewError("%s", args.Cells[0].Str)
}
