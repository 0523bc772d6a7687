package builtin

import "lispy.dev/lispy/value"

// arithFold left-folds op over args, which must all be Numbers. A
// single argument is treated as unary: "+" is identity, "-" negates,
// "*" and "/" return the operand unchanged (matching the original's
// fold-from-first-element convention).
func arithFold(name string, args *value.Value, op func(a, b int64) (int64, *value.Value)) *value.Value {
	if err := assertMinArity(name, args, 1); err != nil {
		return err
	}
	for i := range args.Cells {
		if err := assertType(name, args, i, value.Number); err != nil {
			return err
		}
	}

	acc := value.Pop(args, 0)
	if len(args.Cells) == 0 && name == "-" {
		acc.Num = -acc.Num
		return acc
	}
	for len(args.Cells) > 0 {
		next := value.Pop(args, 0)
		result, err := op(acc.Num, next.Num)
		if err != nil {
			return err
		}
		acc.Num = result
	}
	return acc
}

// Add implements `+`.
func Add(env value.Evaluator, args *value.Value) *value.Value {
	return arithFold("+", args, func(a, b int64) (int64, *value.Value) { return a + b, nil })
}

// Sub implements `-`, including unary negation.
func Sub(env value.Evaluator, args *value.Value) *value.Value {
	return arithFold("-", args, func(a, b int64) (int64, *value.Value) { return a - b, nil })
}

// Mul implements `*`.
func Mul(env value.Evaluator, args *value.Value) *value.Value {
	return arithFold("*", args, func(a, b int64) (int64, *value.Value) { return a * b, nil })
}

// Div implements `/`, producing an Error on division by zero.
func Div(env value.Evaluator, args *value.Value) *value.Value {
	return arithFold("/", args, func(a, b int64) (int64, *value.Value) {
		if b == 0 {
			return 0, value.NewError("Division by Zero!")
		}
		return a / b, nil
	})
}

// ordering implements `<` `>` `<=` `>=`: exactly two Number arguments,
// result is 1 or 0.
func ordering(name string, args *value.Value, cmp func(a, b int64) bool) *value.Value {
	if err := assertArity(name, args, 2); err != nil {
		return err
	}
	if err := assertType(name, args, 0, value.Number); err != nil {
		return err
	}
	if err := assertType(name, args, 1, value.Number); err != nil {
		return err
	}
	a, b := args.Cells[0].Num, args.Cells[1].Num
	if cmp(a, b) {
		return value.NewNumber(1)
	}
	return value.NewNumber(0)
}

// Lt implements `<`.
func Lt(env value.Evaluator, args *value.Value) *value.Value {
	return ordering("<", args, func(a, b int64) bool { return a < b })
}

// Gt implements `>`.
func Gt(env value.Evaluator, args *value.Value) *value.Value {
	return ordering(">", args, func(a, b int64) bool { return a > b })
}

// Le implements `<=`.
func Le(env value.Evaluator, args *value.Value) *value.Value {
	return ordering("<=", args, func(a, b int64) bool { return a <= b })
}

// Ge implements `>=`.
func Ge(env value.Evaluator, args *value.Value) *value.Value {
	return ordering(">=", args, func(a, b int64) bool { return a >= b })
}

// Eq implements `==`: structural equality, any types.
func Eq(env value.Evaluator, args *value.Value) *value.Value {
	if err := assertArity("==", args, 2); err != nil {
		return err
	}
	if value.Equal(args.Cells[0], args.Cells[1]) {
		return value.NewNumber(1)
	}
	return value.NewNumber(0)
}

// Ne implements `!=`.
func Ne(env value.Evaluator, args *value.Value) *value.Value {
	if err := assertArity("!=", args, 2); err != nil {
		return err
	}
	if !value.Equal(args.Cells[0], args.Cells[1]) {
		return value.NewNumber(1)
	}
	return value.NewNumber(0)
}
