package eval

import "lispy.dev/lispy/value"

// Call implements the function-call protocol of spec §4.4. fn has
// already been evaluated to a Function value and popped off args's
// head; args holds the (already evaluated) remaining cells to bind or
// pass through.
func Call(frame *Frame, fn, args *value.Value) *value.Value {
	if fn.IsBuiltin() {
		return fn.Fun.Builtin(frame, args)
	}
	return callLambda(frame, fn, args)
}

// callLambda binds args to fn's formals in lockstep, per spec §4.4:
//
//   - the whole Lambda (formals, body, and its captured environment) is
//     deep-copied first, so a partial application never mutates the
//     Value it was derived from;
//   - formals are consumed one at a time; a bare "&" formal binds all
//     remaining args (or {} if none remain) as a single QExpr to the one
//     formal that must follow it, which leaves no formals, so the call
//     is then finalized;
//   - too many args for too few (non-&) formals is an arity Error;
//   - once every formal is consumed, finalize runs the body; otherwise
//     the partially-bound copy is returned as a still-callable Function.
func callLambda(frame *Frame, fn, args *value.Value) *value.Value {
	work := value.Copy(fn)
	lambda := work.Fun.Lambda
	given := len(args.Cells)
	expected := len(lambda.Formals.Cells)

	for len(args.Cells) > 0 {
		if len(lambda.Formals.Cells) == 0 {
			return value.NewError(
				"Function passed too many args. Got %d, expected %d.", given, expected)
		}

		formal := value.Pop(lambda.Formals, 0)

		if formal.Str == "&" {
			if len(lambda.Formals.Cells) != 1 {
				return value.NewError(
					"Function format invalid. Symbol '&' not followed by single symbol.")
			}
			rest := value.Pop(lambda.Formals, 0)
			bound := value.NewQExpr()
			value.Join(bound, args)
			lambda.Env.Put(rest.Str, bound)
			break
		}

		sym := value.Pop(args, 0)
		lambda.Env.Put(formal.Str, sym)
	}

	if len(lambda.Formals.Cells) > 0 && lambda.Formals.Cells[0].Str == "&" {
		if len(lambda.Formals.Cells) != 2 {
			return value.NewError(
				"Function format invalid. Symbol '&' not followed by single symbol.")
		}
		value.Pop(lambda.Formals, 0)
		rest := value.Pop(lambda.Formals, 0)
		lambda.Env.Put(rest.Str, value.NewQExpr())
	}

	if len(lambda.Formals.Cells) == 0 {
		return finalize(frame, work)
	}
	return work
}

// finalize runs a fully-bound lambda's body: its captured environment
// is chained to the calling frame for the duration of this one
// evaluation, then the body (a QExpr) is retagged to an SExpr and run.
func finalize(frame *Frame, fn *value.Value) *value.Value {
	lambda := fn.Fun.Lambda
	lambda.Env.SetParent(frame)
	bodyFrame := NewFrame(asEnvironment(lambda.Env))
	return RunBody(bodyFrame, lambda.Body)
}
