// Package printer renders Values as text, per spec §4.7. It is the
// canonical entry point for display: value.Value.String() implements
// the rendering rules and Sprint wraps it, so there is one text form per
// value. The REPL prints through Println; the load builtin and --watch
// mode print Errors through value.Value.String directly.
package printer

import (
	"fmt"
	"io"

	"lispy.dev/lispy/value"
)

// Sprint renders v using the canonical rules: Number decimal, Error
// "Error: <msg>", Symbol verbatim, String re-escaped and quoted, SExpr
// "(...)", QExpr "{...}", Function "<builtin>" or "(\ formals body)".
func Sprint(v *value.Value) string { return v.String() }

// Println writes v's rendering to w followed by a newline, matching
// the original's lval_println used by both the REPL's top-level loop
// and load's per-form error reporting.
func Println(w io.Writer, v *value.Value) {
	fmt.Fprintln(w, Sprint(v))
}
