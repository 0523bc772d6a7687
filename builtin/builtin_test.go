package builtin_test

import (
	"bytes"
	"strings"
	"testing"

	"lispy.dev/lispy/builtin"
	"lispy.dev/lispy/env"
	"lispy.dev/lispy/eval"
	"lispy.dev/lispy/value"
)

func newFrame(t *testing.T) (*eval.Frame, *bytes.Buffer) {
	t.Helper()
	frame := eval.NewFrame(env.New(nil))
	var out bytes.Buffer
	builtin.Register(frame, &out)
	return frame, &out
}

func qexpr(cells ...*value.Value) *value.Value {
	v := value.NewQExpr()
	for _, c := range cells {
		value.Add(v, c)
	}
	return v
}

func sexpr(cells ...*value.Value) *value.Value {
	v := value.NewSExpr()
	for _, c := range cells {
		value.Add(v, c)
	}
	return v
}

func TestListRetagsSExprToQExpr(t *testing.T) {
	t.Parallel()
	frame, _ := newFrame(t)

	args := sexpr(value.NewNumber(1), value.NewNumber(2))
	result := builtin.List(frame, args)
	if result.Kind != value.QExpr || len(result.Cells) != 2 {
		t.Fatalf("List = %v, want 2-child QExpr", result)
	}
}

func TestHeadAndTail(t *testing.T) {
	t.Parallel()
	frame, _ := newFrame(t)

	head := builtin.Head(frame, sexpr(qexpr(value.NewNumber(1), value.NewNumber(2), value.NewNumber(3))))
	if len(head.Cells) != 1 || head.Cells[0].Num != 1 {
		t.Fatalf("Head = %v, want {1}", head)
	}

	tail := builtin.Tail(frame, sexpr(qexpr(value.NewNumber(1), value.NewNumber(2), value.NewNumber(3))))
	if len(tail.Cells) != 2 || tail.Cells[0].Num != 2 {
		t.Fatalf("Tail = %v, want {2 3}", tail)
	}
}

func TestHeadOfEmptyIsError(t *testing.T) {
	t.Parallel()
	frame, _ := newFrame(t)

	got := builtin.Head(frame, sexpr(qexpr()))
	if got.Kind != value.Error {
		t.Fatalf("Head({}) = %v, want Error", got)
	}
}

func TestJoinConcatenates(t *testing.T) {
	t.Parallel()
	frame, _ := newFrame(t)

	got := builtin.Join(frame, sexpr(
		qexpr(value.NewNumber(1)),
		qexpr(value.NewNumber(2), value.NewNumber(3)),
	))
	if len(got.Cells) != 3 {
		t.Fatalf("Join = %v, want 3 cells", got)
	}
}

func TestArithmetic(t *testing.T) {
	t.Parallel()
	frame, _ := newFrame(t)

	tests := []struct {
		name string
		args []*value.Value
		want int64
	}{
		{"+", []*value.Value{value.NewNumber(2), value.NewNumber(3)}, 5},
		{"-", []*value.Value{value.NewNumber(5)}, -5},
		{"-", []*value.Value{value.NewNumber(5), value.NewNumber(3)}, 2},
		{"*", []*value.Value{value.NewNumber(4)}, 4},
		{"*", []*value.Value{value.NewNumber(4), value.NewNumber(3)}, 12},
	}
	for _, tc := range tests {
		var got *value.Value
		switch tc.name {
		case "+":
			got = builtin.Add(frame, sexpr(tc.args...))
		case "-":
			got = builtin.Sub(frame, sexpr(tc.args...))
		case "*":
			got = builtin.Mul(frame, sexpr(tc.args...))
		}
		if got.Kind != value.Number || got.Num != tc.want {
			t.Fatalf("%s(%v) = %v, want %d", tc.name, tc.args, got, tc.want)
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	t.Parallel()
	frame, _ := newFrame(t)

	got := builtin.Div(frame, sexpr(value.NewNumber(5), value.NewNumber(0)))
	if got.Kind != value.Error || got.Str != "Division by Zero!" {
		t.Fatalf("Div/0 = %v, want Error 'Division by Zero!'", got)
	}
}

func TestComparisonAndEquality(t *testing.T) {
	t.Parallel()
	frame, _ := newFrame(t)

	if got := builtin.Lt(frame, sexpr(value.NewNumber(1), value.NewNumber(2))); got.Num != 1 {
		t.Fatalf("1 < 2 = %v, want 1", got)
	}
	if got := builtin.Eq(frame, sexpr(value.NewNumber(3), value.NewNumber(3))); got.Num != 1 {
		t.Fatalf("3 == 3 = %v, want 1", got)
	}
	if got := builtin.Ne(frame, sexpr(value.NewNumber(3), value.NewNumber(4))); got.Num != 1 {
		t.Fatalf("3 != 4 = %v, want 1", got)
	}
}

func TestDefIsGloballyVisible(t *testing.T) {
	t.Parallel()
	frame, _ := newFrame(t)

	builtin.Def(frame, sexpr(qexpr(value.NewSymbol("x")), value.NewNumber(10)))
	child := eval.NewFrame(env.New(frame.Environment))
	got := child.Get("x")
	if got.Num != 10 {
		t.Fatalf("x from nested scope = %v, want 10 (def reaches root)", got)
	}
}

func TestPutIsLocalOnly(t *testing.T) {
	t.Parallel()
	frame, _ := newFrame(t)

	builtin.Def(frame, sexpr(qexpr(value.NewSymbol("x")), value.NewNumber(1)))
	child := eval.NewFrame(env.New(frame.Environment))
	builtin.Put(child, sexpr(qexpr(value.NewSymbol("x")), value.NewNumber(99)))

	if got := child.Get("x"); got.Num != 99 {
		t.Fatalf("child x = %v, want 99", got)
	}
	if got := frame.Get("x"); got.Num != 1 {
		t.Fatalf("root x = %v, want unaffected 1", got)
	}
}

func TestEnvReportsOwnBindings(t *testing.T) {
	t.Parallel()
	frame, _ := newFrame(t)

	builtin.Def(frame, sexpr(qexpr(value.NewSymbol("x")), value.NewNumber(1)))

	got := builtin.Env(frame, sexpr())
	if got.Kind != value.String {
		t.Fatalf("env result kind = %v, want String", got.Kind)
	}
	if !strings.Contains(got.Str, "x") {
		t.Fatalf("env result = %q, want it to mention bound name %q", got.Str, "x")
	}
}

func TestEnvRejectsArguments(t *testing.T) {
	t.Parallel()
	frame, _ := newFrame(t)

	got := builtin.Env(frame, sexpr(value.NewNumber(1)))
	if got.Kind != value.Error {
		t.Fatalf("env with an argument = %v, want an Error", got)
	}
}

func TestIfEvaluatesCorrectBranch(t *testing.T) {
	t.Parallel()
	frame, _ := newFrame(t)

	got := builtin.If(frame, sexpr(
		value.NewNumber(0),
		qexpr(value.NewNumber(1)),
		qexpr(value.NewNumber(2)),
	))
	if got.Kind != value.Number || got.Num != 2 {
		t.Fatalf("if false = %v, want 2", got)
	}
}

func TestLambdaConstructsCallableFunction(t *testing.T) {
	t.Parallel()
	frame, _ := newFrame(t)

	got := builtin.Lambda(frame, sexpr(
		qexpr(value.NewSymbol("x")),
		qexpr(value.NewSymbol("x")),
	))
	if !got.IsLambda() {
		t.Fatalf("Lambda = %v, want a Lambda Function", got)
	}
}

func TestErrorBuiltinWrapsMessage(t *testing.T) {
	t.Parallel()
	frame, _ := newFrame(t)

	got := builtin.Error(frame, sexpr(value.NewString("boom")))
	if got.Kind != value.Error || got.Str != "boom" {
		t.Fatalf("error = %v, want Error 'boom'", got)
	}
}

func TestPrintWritesSpaceSeparatedLine(t *testing.T) {
	t.Parallel()
	frame, out := newFrame(t)

	printFn := builtin.NewPrint(out)
	result := printFn(frame, sexpr(value.NewNumber(1), value.NewNumber(2)))
	if result.Kind != value.SExpr || len(result.Cells) != 0 {
		t.Fatalf("print result = %v, want empty SExpr", result)
	}
	if got, want := out.String(), "1 2\n"; got != want {
		t.Fatalf("printed = %q, want %q", got, want)
	}
}

func TestRegisterWiresWholeTable(t *testing.T) {
	t.Parallel()
	frame, _ := newFrame(t)

	for _, name := range []string{
		"list", "head", "tail", "join", "eval",
		"+", "-", "*", "/", "<", ">", "<=", ">=", "==", "!=",
		"if", "\\", "def", "=", "env", "load", "print", "error",
	} {
		got := frame.Get(name)
		if got.Kind != value.Function {
			t.Fatalf("Get(%q) = %v, want a registered Function", name, got)
		}
	}
}
