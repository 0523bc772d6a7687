// Command lispy is the interactive Lisp-like interpreter of spec §6:
// with no arguments it starts a REPL; with one or more file arguments
// it loads each in turn and exits.
package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"lispy.dev/lispy/builtin"
	"lispy.dev/lispy/eval"
	"lispy.dev/lispy/repl"
	"lispy.dev/lispy/value"
)

// cli is the top-level command-line interface.
type cli struct {
	Verbose bool     `short:"v" help:"Enable debug logging to stderr."`
	Watch   bool     `help:"Re-load each file argument whenever it changes on disk."`
	Files   []string `arg:"" optional:"" type:"existingfile" help:"Source files to load; omit for the interactive REPL."`
}

func main() {
	var cmd cli
	kong.Parse(&cmd,
		kong.Name("lispy"),
		kong.Description("A small Lisp-like interpreter."),
		kong.UsageOnError(),
	)
	os.Exit(run(&cmd))
}

func run(cmd *cli) int {
	level := slog.LevelWarn
	if cmd.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	root := eval.NewRootFrame()
	builtin.Register(root, os.Stdout)

	if len(cmd.Files) == 0 {
		if err := repl.Start(root, os.Stdout, logger); err != nil {
			logger.Error("repl exited with error", "error", err)
			return 1
		}
		return 0
	}

	if cmd.Watch {
		stop := make(chan struct{})
		if err := repl.Watch(root, os.Stdout, logger, cmd.Files, stop); err != nil {
			logger.Error("watch failed", "error", err)
			return 1
		}
		return 0
	}

	status := 0
	for _, path := range cmd.Files {
		call := value.NewSExpr()
		value.Add(call, value.NewSymbol("load"))
		value.Add(call, value.NewString(path))
		result := root.Eval(call)
		if result.Kind == value.Error {
			logger.Error("load failed", "file", path, "message", result.Str)
			status = 1
		}
	}
	return status
}
