package builtin

import (
	"fmt"
	"io"
	"os"

	"lispy.dev/lispy/parsetree"
	"lispy.dev/lispy/reader"
	"lispy.dev/lispy/value"
)

// NewLoad builds the `load` builtin writing evaluated Errors to out,
// matching the original's behavior of printing a load-time Error
// rather than aborting: a parse failure for the whole file produces
// one Error; thereafter every top-level form is evaluated and printed
// if (and only if) it is itself an Error, and loading always continues
// to the next form.
func NewLoad(out io.Writer) value.Builtin {
	return func(env value.Evaluator, args *value.Value) *value.Value {
		if err := assertArity("load", args, 1); err != nil {
			return err
		}
		if err := assertType("load", args, 0, value.String); err != nil {
			return err
		}
		path := args.Cells[0].Str

		f, openErr := os.Open(path)
		if openErr != nil {
			return value.NewError("Could not load Library %s", openErr)
		}
		defer f.Close()

		root, parseErr := parsetree.Parse(path, f)
		if parseErr != nil {
			return value.NewError("Could not load Library %s", parseErr)
		}

		program := reader.Read(root)
		for _, form := range program.Cells {
			result := env.Eval(form)
			if result.Kind == value.Error {
				fmt.Fprintln(out, result.String())
			}
		}
		return value.NewSExpr()
	}
}
