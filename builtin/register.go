package builtin

import (
	"io"

	"lispy.dev/lispy/value"
)

// table is the static name→Builtin mapping for every operation except
// print, load and error, which Register installs separately (print and
// load close over out).
var table = map[string]value.Builtin{
	"list": List,
	"head": Head,
	"tail": Tail,
	"join": Join,
	"eval": Eval,

	"+": Add,
	"-": Sub,
	"*": Mul,
	"/": Div,

	"<":  Lt,
	">":  Gt,
	"<=": Le,
	">=": Ge,
	"==": Eq,
	"!=": Ne,

	"if":  If,
	"\\":  Lambda,
	"def": Def,
	"=":   Put,
	"env": Env,
}

// Register installs the complete built-in table of spec §4.6 into
// env, a root (parentless) Environment, writing print and load output
// to out.
func Register(env value.Evaluator, out io.Writer) {
	for name, fn := range table {
		env.Def(name, value.NewBuiltin(name, fn))
	}
	env.Def("print", value.NewBuiltin("print", NewPrint(out)))
	env.Def("error", value.NewBuiltin("error", Error))
	env.Def("load", value.NewBuiltin("load", NewLoad(out)))
}
