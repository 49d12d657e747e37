package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/okravets/rolodex/internal/command"
	"github.com/okravets/rolodex/internal/config"
	"github.com/okravets/rolodex/internal/state"
	"github.com/okravets/rolodex/internal/tui"
)

// ReplCmd starts an interactive session: a Bubble Tea TUI on a terminal,
// or a plain scanner loop otherwise.
type ReplCmd struct {
	NoTUI bool `help:"Force the plain line loop even if stdout is a TTY." default:"false"`
}

// Run loads the book, runs the session, and saves the book on exit.
// The save happens even when the session ends abnormally, so no
// accepted mutation is lost.
func (r *ReplCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("repl: %w", err)
	}

	store := state.NewFileStore(cfg.Storage.Path)
	bk, err := store.Load()
	if err != nil {
		return fmt.Errorf("repl: %w", err)
	}

	it := command.NewInterpreter(bk, command.WithWindow(cfg.Birthdays.WindowDays))

	var sessionErr error
	if r.NoTUI || cfg.UI.NoTUI || !isTTY(os.Stdout) {
		sessionErr = runPlain(os.Stdin, os.Stdout, cfg, it)
	} else {
		prog := tea.NewProgram(tui.NewModel(it, tui.WithPrompt(cfg.UI.Prompt)))
		_, sessionErr = prog.Run()
	}

	if err := store.Save(bk); err != nil {
		return fmt.Errorf("repl: %w", err)
	}
	return sessionErr
}

// runPlain drives the interpreter with a line scanner: prompt, read,
// execute, print, until an exit command or EOF.
func runPlain(in io.Reader, out io.Writer, cfg *config.Config, it *command.Interpreter) error {
	_, _ = fmt.Fprintln(out, "Welcome to the assistant bot!")

	scanner := bufio.NewScanner(in)
	for {
		_, _ = fmt.Fprint(out, cfg.UI.Prompt)
		if !scanner.Scan() {
			// EOF ends the session the same way an exit command does.
			_, _ = fmt.Fprintln(out)
			_, _ = fmt.Fprintln(out, "Good bye!")
			break
		}

		res := it.Execute(scanner.Text())
		if res.Output != "" {
			_, _ = fmt.Fprintln(out, res.Output)
		}
		if res.Quit {
			break
		}
	}
	return scanner.Err()
}

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
