package eval

import "lispy.dev/lispy/value"

// Eval reduces v to a value within frame, per spec §4.3:
//
//   - a Symbol resolves through the environment;
//   - an SExpr is reduced by evalSExpr;
//   - everything else (Number, String, QExpr, Function, Error) is
//     self-evaluating.
func Eval(frame *Frame, v *value.Value) *value.Value {
	switch v.Kind {
	case value.Symbol:
		return frame.Environment.Get(v.Str)
	case value.SExpr:
		return evalSExpr(frame, v)
	default:
		return v
	}
}

// evalSExpr implements spec §4.3 eval_sexpr: evaluate every child left
// to right, propagate the first Error, unwrap singletons, and dispatch
// through the call protocol when there is a head and a tail.
func evalSExpr(frame *Frame, v *value.Value) *value.Value {
	for i, child := range v.Cells {
		v.Cells[i] = Eval(frame, child)
	}

	for i, child := range v.Cells {
		if child.Kind == value.Error {
			return value.Take(v, i)
		}
	}

	if len(v.Cells) == 0 {
		return v
	}
	if len(v.Cells) == 1 {
		return value.Take(v, 0)
	}

	head := value.Pop(v, 0)
	if head.Kind != value.Function {
		return value.NewError(
			"S-Expression starts with incorrect type. Got %s, expected %s.",
			value.TypeName(head), value.Function)
	}
	return Call(frame, head, v)
}

// RunBody evaluates a lambda body: the body is a QExpr, retagged to an
// SExpr and run through Eval, in the (now reparented) captured
// environment. Lambda application calls it; the `eval` builtin does the
// same retag and reaches this package's Eval through
// value.Evaluator.Eval rather than calling RunBody.
func RunBody(frame *Frame, body *value.Value) *value.Value {
	return Eval(frame, value.Retag(body, value.SExpr))
}
