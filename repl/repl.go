// Package repl is the interactive line-reading loop and the
// --watch file-reload mode: peripheral collaborators per spec §1 that
// drive parsetree+reader+eval+printer. Grounded on a liner-based REPL
// loop (prompt, history file, Ctrl-D/EOF to exit) and an fsnotify
// watcher that re-loads a script on change.
package repl

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"lispy.dev/lispy/eval"
	"lispy.dev/lispy/parsetree"
	"lispy.dev/lispy/printer"
	"lispy.dev/lispy/reader"
)

// Prompt is the interactive prompt text, per spec §6.
const Prompt = "lispy> "

const historyFileName = ".lispy_history"

// Start runs the interactive REPL: read a line, parse, read, eval,
// print — repeating until "exit", "quit", or EOF. Every top-level
// result is printed, including the empty SExpr, matching the
// original's unconditional lval_println after each parse.
func Start(frame *eval.Frame, out io.Writer, logger *slog.Logger) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyPath := filepath.Join(os.TempDir(), historyFileName)
	if f, err := os.Open(historyPath); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyPath); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		input, err := line.Prompt(Prompt)
		if err != nil {
			if err == liner.ErrPromptAborted {
				fmt.Fprintln(out, "^C")
				continue
			}
			if err == io.EOF {
				return nil
			}
			return err
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}
		if trimmed == "exit" || trimmed == "quit" {
			return nil
		}
		line.AppendHistory(input)

		EvalLine(frame, out, logger, "<repl>", trimmed)
	}
}

// EvalLine parses one chunk of source (named for diagnostics) and
// reduces it as a single value: every top-level form on the line
// becomes one cell of the root SExpr, so e.g. "(\ {x y} {+ x y}) 3 4"
// evaluates as one call (head plus two arguments) rather than three
// independent results, matching the original REPL's one-shot
// lval_eval over the whole parsed line. `load`, by contrast, evaluates
// each top-level form in a file separately — see builtin.NewLoad.
func EvalLine(frame *eval.Frame, out io.Writer, logger *slog.Logger, name, source string) {
	root, err := parsetree.Parse(name, strings.NewReader(source))
	if err != nil {
		if logger != nil {
			logger.Debug("parse failed", "source", name, "error", err)
		}
		fmt.Fprintln(out, "Error:", err)
		return
	}

	result := frame.Eval(reader.Read(root))
	printer.Println(out, result)
}
