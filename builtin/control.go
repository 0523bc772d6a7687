package builtin

import (
	"fmt"

	"lispy.dev/lispy/value"
)

// If evaluates branch #1 (as an SExpr) when the Number condition is
// non-zero, else branch #2.
func If(env value.Evaluator, args *value.Value) *value.Value {
	if err := assertArity("if", args, 3); err != nil {
		return err
	}
	if err := assertType("if", args, 0, value.Number); err != nil {
		return err
	}
	if err := assertType("if", args, 1, value.QExpr); err != nil {
		return err
	}
	if err := assertType("if", args, 2, value.QExpr); err != nil {
		return err
	}

	cond := value.Pop(args, 0)
	conseq := value.Pop(args, 0)
	alt := value.Pop(args, 0)

	if value.IsTruthy(cond) {
		return env.Eval(value.Retag(conseq, value.SExpr))
	}
	return env.Eval(value.Retag(alt, value.SExpr))
}

// Lambda constructs a user-defined Function: formals must be a QExpr
// of Symbols (with at most one "&" rest marker, checked lazily by the
// call protocol rather than here, matching the original which defers
// that check to application time), body is any QExpr. Its captured
// environment is fresh and parentless.
func Lambda(env value.Evaluator, args *value.Value) *value.Value {
	if err := assertArity("\\", args, 2); err != nil {
		return err
	}
	if err := assertType("\\", args, 0, value.QExpr); err != nil {
		return err
	}
	if err := assertType("\\", args, 1, value.QExpr); err != nil {
		return err
	}
	for _, c := range args.Cells[0].Cells {
		if err := assert("\\", args, c.Kind == value.Symbol,
			"Function '%s' passed incorrect type. Got %s, expected %s.", value.TypeName(c), value.Symbol); err != nil {
			return err
		}
	}

	formals := value.Pop(args, 0)
	body := value.Pop(args, 0)
	return value.NewLambda(formals, body, env.Fresh())
}

// Env reports the calling frame's diagnostic identity and the names
// bound directly in it (not its ancestors), for interactive
// introspection, e.g. typing "env" at the REPL.
func Env(env value.Evaluator, args *value.Value) *value.Value {
	if err := assertArity("env", args, 0); err != nil {
		return err
	}
	if s, ok := env.(fmt.Stringer); ok {
		return value.NewString(s.String())
	}
	return value.NewString("<env>")
}

// Def binds each symbol, value pair into the root (global) frame.
func Def(env value.Evaluator, args *value.Value) *value.Value {
	return bind("def", env.Def, args)
}

// Put binds each symbol, value pair into the current frame only.
func Put(env value.Evaluator, args *value.Value) *value.Value {
	return bind("=", env.Put, args)
}

// bind implements the shared shape of def and =: a QExpr of n Symbols
// followed by n values, bound pairwise via store.
func bind(name string, store func(sym string, v *value.Value), args *value.Value) *value.Value {
	if err := assertMinArity(name, args, 1); err != nil {
		return err
	}
	if err := assertType(name, args, 0, value.QExpr); err != nil {
		return err
	}

	symbols := args.Cells[0]
	for _, c := range symbols.Cells {
		if err := assert(name, args, c.Kind == value.Symbol,
			"Function '%s' passed incorrect type. Got %s, expected %s.", value.TypeName(c), value.Symbol); err != nil {
			return err
		}
	}
	if err := assert(name, args, len(symbols.Cells) == len(args.Cells)-1,
		"Function '%s' passed incorrect num of args. Got %d, expected %d.",
		len(args.Cells)-1, len(symbols.Cells)); err != nil {
		return err
	}

	for i, c := range symbols.Cells {
		store(c.Str, args.Cells[i+1])
	}
	return value.NewSExpr()
}
