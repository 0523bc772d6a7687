// Package value implements the tagged-union runtime value of the
// interpreter: numbers, errors, symbols, strings, S-expressions,
// Q-expressions and functions (builtin or user-defined lambdas).
package value

import (
	"fmt"
	"strings"
)

// Kind discriminates the variant of a Value. Exactly one of the payload
// fields below is meaningful for a given Kind.
type Kind int

const (
	// Number holds a 64-bit signed integer in Num.
	Number Kind = iota
	// Error holds a diagnostic message in Str.
	Error
	// Symbol holds an identifier in Str.
	Symbol
	// String holds a text literal in Str.
	String
	// SExpr holds an ordered, evaluable sequence of Values in Cells.
	SExpr
	// QExpr holds an ordered, quoted (inert) sequence of Values in Cells.
	QExpr
	// Function holds a callable in Fun.
	Function
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "Number"
	case Error:
		return "Error"
	case Symbol:
		return "Symbol"
	case String:
		return "String"
	case SExpr:
		return "S-Expression"
	case QExpr:
		return "Q-Expression"
	case Function:
		return "Function"
	default:
		return "Unknown"
	}
}

// Builtin is a native operation. It consumes the argument SExpr (an
// ownership transfer in the reference semantics of spec) and returns a
// freshly constructed Value. env is the caller's environment, needed by
// builtins such as eval, if, load that re-enter the evaluator and def,
// = that bind names.
type Builtin func(env Evaluator, args *Value) *Value

// Evaluator is the minimal surface the builtin and eval packages share,
// broken out here as an interface to avoid an import cycle: value knows
// nothing about the environment's storage or the evaluator's control
// flow, only this contract. The eval package's *eval.Frame is the only
// implementation.
type Evaluator interface {
	// Eval reduces v in this environment.
	Eval(v *Value) *Value
	// Get performs a lexically-scoped lookup, returning an Error value
	// if unbound.
	Get(sym string) *Value
	// Put binds sym in the current frame only.
	Put(sym string, v *Value)
	// Def binds sym in the root frame.
	Def(sym string, v *Value)
	// Fresh creates a new, parentless environment (used to capture a
	// lambda's defining scope).
	Fresh() Evaluator
	// Copy deep-copies the bindings of this environment; the parent
	// link is shared, not copied.
	Copy() Evaluator
	// SetParent rebinds this environment's (non-owning) parent link,
	// used for the duration of a single call.
	SetParent(parent Evaluator)
}

// Lambda is a user-defined function: formals (a QExpr of Symbols, with at
// most one "&" rest marker), a body (a QExpr), and a captured
// environment whose parent link is rebound to the caller's environment
// only for the duration of one application.
type Lambda struct {
	Formals *Value
	Body    *Value
	Env     Evaluator
}

// Fun is the payload of a Function-kind Value: exactly one of Builtin or
// Lambda is set.
type Fun struct {
	Name    string
	Builtin Builtin
	Lambda  *Lambda
}

// Value is the tagged union described in the value model: Number,
// Error, Symbol, String are scalar; SExpr and QExpr are ordered
// containers; Function wraps either a Builtin or a Lambda.
type Value struct {
	Kind  Kind
	Num   int64
	Str   string
	Cells []*Value
	Fun   *Fun
}

// NewNumber constructs a Number value.
func NewNumber(n int64) *Value { return &Value{Kind: Number, Num: n} }

// NewError constructs an Error value with a formatted message.
func NewError(format string, args ...any) *Value {
	return &Value{Kind: Error, Str: fmt.Sprintf(format, args...)}
}

// NewSymbol constructs a Symbol value.
func NewSymbol(s string) *Value { return &Value{Kind: Symbol, Str: s} }

// NewString constructs a String value.
func NewString(s string) *Value { return &Value{Kind: String, Str: s} }

// NewSExpr constructs an empty S-expression.
func NewSExpr() *Value { return &Value{Kind: SExpr} }

// NewQExpr constructs an empty Q-expression.
func NewQExpr() *Value { return &Value{Kind: QExpr} }

// NewBuiltin constructs a Function value wrapping a native operation.
func NewBuiltin(name string, fn Builtin) *Value {
	return &Value{Kind: Function, Fun: &Fun{Name: name, Builtin: fn}}
}

// NewLambda constructs a Function value wrapping a user-defined lambda.
// formals and body are taken by reference (ownership transfer); env is
// the freshly created environment captured at the point of creation,
// with no parent.
func NewLambda(formals, body *Value, env Evaluator) *Value {
	return &Value{Kind: Function, Fun: &Fun{
		Name:   "",
		Lambda: &Lambda{Formals: formals, Body: body, Env: env},
	}}
}

// IsBuiltin reports whether v is a Function wrapping a Builtin.
func (v *Value) IsBuiltin() bool {
	return v != nil && v.Kind == Function && v.Fun != nil && v.Fun.Builtin != nil
}

// IsLambda reports whether v is a Function wrapping a Lambda.
func (v *Value) IsLambda() bool {
	return v != nil && v.Kind == Function && v.Fun != nil && v.Fun.Lambda != nil
}

// Add appends x to the end of container's children and returns the
// (mutated) container. container must be an SExpr or QExpr.
func Add(container, x *Value) *Value {
	container.Cells = append(container.Cells, x)
	return container
}

// Pop detaches and returns the i-th child of container, shifting the
// remainder left. The container survives with one fewer child.
func Pop(container *Value, i int) *Value {
	x := container.Cells[i]
	container.Cells = append(container.Cells[:i:i], container.Cells[i+1:]...)
	return x
}

// Take pops the i-th child and discards the container.
func Take(container *Value, i int) *Value {
	return Pop(container, i)
}

// Join moves all children of y onto the tail of x and returns x. x keeps
// its own kind; y may be either container kind (the call protocol joins
// an SExpr of arguments into a QExpr).
func Join(x, y *Value) *Value {
	x.Cells = append(x.Cells, y.Cells...)
	return x
}

// Copy performs a deep copy of v so it may be stored or moved across
// frames independently of its origin.
func Copy(v *Value) *Value {
	if v == nil {
		return nil
	}
	cp := &Value{Kind: v.Kind, Num: v.Num, Str: v.Str}
	switch v.Kind {
	case SExpr, QExpr:
		cp.Cells = make([]*Value, len(v.Cells))
		for i, c := range v.Cells {
			cp.Cells[i] = Copy(c)
		}
	case Function:
		if v.Fun != nil {
			cp.Fun = &Fun{Name: v.Fun.Name, Builtin: v.Fun.Builtin}
			if v.Fun.Lambda != nil {
				var envCopy Evaluator
				if v.Fun.Lambda.Env != nil {
					envCopy = v.Fun.Lambda.Env.Copy()
				}
				cp.Fun.Lambda = &Lambda{
					Formals: Copy(v.Fun.Lambda.Formals),
					Body:    Copy(v.Fun.Lambda.Body),
					Env:     envCopy,
				}
			}
		}
	}
	return cp
}

// Equal reports whether x and y are structurally equal, per the rules
// in the value model: Builtins are equal iff identity-equal (by name,
// since Go cannot compare func values), Lambdas are equal iff both
// formals and body are structurally equal.
func Equal(x, y *Value) bool {
	if x == nil || y == nil {
		return x == y
	}
	if x.Kind != y.Kind {
		return false
	}
	switch x.Kind {
	case Number:
		return x.Num == y.Num
	case Error, Symbol, String:
		return x.Str == y.Str
	case SExpr, QExpr:
		if len(x.Cells) != len(y.Cells) {
			return false
		}
		for i := range x.Cells {
			if !Equal(x.Cells[i], y.Cells[i]) {
				return false
			}
		}
		return true
	case Function:
		if x.Fun == nil || y.Fun == nil {
			return x.Fun == y.Fun
		}
		if x.IsBuiltin() || y.IsBuiltin() {
			return x.IsBuiltin() && y.IsBuiltin() && x.Fun.Name == y.Fun.Name
		}
		return Equal(x.Fun.Lambda.Formals, y.Fun.Lambda.Formals) &&
			Equal(x.Fun.Lambda.Body, y.Fun.Lambda.Body)
	default:
		return false
	}
}

// IsTruthy applies the truth convention: 0 is false, any other Number
// is true.
func IsTruthy(v *Value) bool { return v.Kind == Number && v.Num != 0 }

// TypeName reports the variant name of v, used in error messages.
func TypeName(v *Value) string { return v.Kind.String() }

// Retag changes v's Kind between SExpr and QExpr in place and returns
// it; used by the `list` and `eval` builtins.
func Retag(v *Value, k Kind) *Value {
	v.Kind = k
	return v
}

// String renders v using the canonical printer rules (kept here so
// value does not depend on printer; printer.Sprint wraps it and is what
// the REPL calls, while load and --watch print Errors through String
// directly).
func (v *Value) String() string {
	var sb strings.Builder
	writeValue(&sb, v)
	return sb.String()
}

func writeValue(sb *strings.Builder, v *Value) {
	if v == nil {
		sb.WriteString("()")
		return
	}
	switch v.Kind {
	case Number:
		fmt.Fprintf(sb, "%d", v.Num)
	case Error:
		sb.WriteString("Error: ")
		sb.WriteString(v.Str)
	case Symbol:
		sb.WriteString(v.Str)
	case String:
		fmt.Fprintf(sb, "%q", v.Str)
	case SExpr:
		writeCells(sb, v, '(', ')')
	case QExpr:
		writeCells(sb, v, '{', '}')
	case Function:
		if v.IsLambda() {
			sb.WriteString("(\\ ")
			writeValue(sb, v.Fun.Lambda.Formals)
			sb.WriteByte(' ')
			writeValue(sb, v.Fun.Lambda.Body)
			sb.WriteByte(')')
		} else {
			sb.WriteString("<builtin>")
		}
	}
}

func writeCells(sb *strings.Builder, v *Value, open, close byte) {
	sb.WriteByte(open)
	for i, c := range v.Cells {
		if i > 0 {
			sb.WriteByte(' ')
		}
		writeValue(sb, c)
	}
	sb.WriteByte(close)
}
