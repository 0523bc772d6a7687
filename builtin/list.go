package builtin

import "lispy.dev/lispy/value"

// List retags an SExpr of arguments as a QExpr, per spec §4.6: any
// arity, no input constraint.
func List(env value.Evaluator, args *value.Value) *value.Value {
	return value.Retag(args, value.QExpr)
}

// Head drops every child but the first of a non-empty QExpr.
func Head(env value.Evaluator, args *value.Value) *value.Value {
	if err := assertArity("head", args, 1); err != nil {
		return err
	}
	if err := assertType("head", args, 0, value.QExpr); err != nil {
		return err
	}
	if err := assertNotEmpty("head", args, 0); err != nil {
		return err
	}
	q := value.Take(args, 0)
	for len(q.Cells) > 1 {
		value.Pop(q, 1)
	}
	return q
}

// Tail drops the first child of a non-empty QExpr, returning the rest.
func Tail(env value.Evaluator, args *value.Value) *value.Value {
	if err := assertArity("tail", args, 1); err != nil {
		return err
	}
	if err := assertType("tail", args, 0, value.QExpr); err != nil {
		return err
	}
	if err := assertNotEmpty("tail", args, 0); err != nil {
		return err
	}
	q := value.Take(args, 0)
	value.Pop(q, 0)
	return q
}

// Join concatenates one or more QExprs left to right.
func Join(env value.Evaluator, args *value.Value) *value.Value {
	if err := assertMinArity("join", args, 1); err != nil {
		return err
	}
	for i := range args.Cells {
		if err := assertType("join", args, i, value.QExpr); err != nil {
			return err
		}
	}
	result := value.Pop(args, 0)
	for len(args.Cells) > 0 {
		result = value.Join(result, value.Pop(args, 0))
	}
	return result
}

// Eval retags a single QExpr argument as an SExpr and reduces it in
// the calling environment — the same Eval entry point, and so the same
// code path, that the call protocol uses to run a lambda's body.
func Eval(env value.Evaluator, args *value.Value) *value.Value {
	if err := assertArity("eval", args, 1); err != nil {
		return err
	}
	if err := assertType("eval", args, 0, value.QExpr); err != nil {
		return err
	}
	body := value.Take(args, 0)
	return env.Eval(value.Retag(body, value.SExpr))
}
