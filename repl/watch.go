package repl

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fsnotify/fsnotify"

	"lispy.dev/lispy/eval"
	"lispy.dev/lispy/value"
)

// Watch loads every path once, then re-loads whichever one changes on
// disk (through the `load` builtin, which evaluates the file into the
// same global environment: earlier bindings persist unless the file
// redefines them), until stop is closed.
func Watch(frame *eval.Frame, out io.Writer, logger *slog.Logger, paths []string, stop <-chan struct{}) error {
	for _, path := range paths {
		loadFile(frame, out, path)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, path := range paths {
		if err := watcher.Add(path); err != nil {
			return err
		}
	}

	for {
		select {
		case <-stop:
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if logger != nil {
				logger.Debug("reloading after change", "path", event.Name, "op", event.Op.String())
			}
			loadFile(frame, out, event.Name)
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if logger != nil {
				logger.Warn("watch error", "error", werr)
			}
		}
	}
}

func loadFile(frame *eval.Frame, out io.Writer, path string) {
	call := value.NewSExpr()
	value.Add(call, value.NewSymbol("load"))
	value.Add(call, value.NewString(path))
	result := frame.Eval(call)
	if result.Kind == value.Error {
		fmt.Fprintln(out, result.String())
	}
}
