package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/okravets/rolodex/internal/book"
	"github.com/okravets/rolodex/internal/command"
	"github.com/okravets/rolodex/internal/config"
)

// runSession feeds input lines through runPlain and returns the output.
func runSession(t *testing.T, input string) string {
	t.Helper()
	cfg := config.DefaultConfig()
	it := command.NewInterpreter(book.New())
	var out bytes.Buffer

	if err := runPlain(strings.NewReader(input), &out, &cfg, it); err != nil {
		t.Fatalf("runPlain() error = %v", err)
	}
	return out.String()
}

func TestRunPlain_FullSession(t *testing.T) {
	got := runSession(t, "add John 1234567890\nphone John\nexit\n")

	for _, want := range []string{
		"Welcome to the assistant bot!",
		"Contact added.",
		"Contact name: John, phones: 1234567890",
		"Good bye!",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRunPlain_PromptsEachLine(t *testing.T) {
	got := runSession(t, "hello\nexit\n")

	// One prompt per read: hello, then exit.
	if n := strings.Count(got, "Enter a command: "); n != 2 {
		t.Errorf("prompt count = %d, want 2:\n%s", n, got)
	}
}

func TestRunPlain_EOFEndsLikeExit(t *testing.T) {
	got := runSession(t, "hello\n")

	if !strings.Contains(got, "How can I help you?") {
		t.Errorf("output missing hello response:\n%s", got)
	}
	if !strings.Contains(got, "Good bye!") {
		t.Errorf("EOF should print the farewell:\n%s", got)
	}
}

func TestRunPlain_BlankLinesPrintNothing(t *testing.T) {
	got := runSession(t, "\n\nexit\n")

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	for _, l := range lines {
		if strings.TrimSpace(strings.TrimPrefix(l, "Enter a command: ")) == "" {
			continue
		}
		if l != "Welcome to the assistant bot!" && !strings.Contains(l, "Good bye!") && !strings.HasPrefix(l, "Enter a command: ") {
			t.Errorf("unexpected output line %q", l)
		}
	}
}

func TestRunPlain_InvalidCommandKeepsSessionAlive(t *testing.T) {
	got := runSession(t, "frobnicate\nhello\nexit\n")

	if !strings.Contains(got, "Invalid command.") {
		t.Errorf("output missing invalid-command feedback:\n%s", got)
	}
	if !strings.Contains(got, "How can I help you?") {
		t.Errorf("session should continue after an invalid command:\n%s", got)
	}
}

func TestRunPlain_CustomPrompt(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UI.Prompt = ">> "
	it := command.NewInterpreter(book.New())
	var out bytes.Buffer

	if err := runPlain(strings.NewReader("exit\n"), &out, &cfg, it); err != nil {
		t.Fatalf("runPlain() error = %v", err)
	}
	if !strings.Contains(out.String(), ">> ") {
		t.Errorf("output missing configured prompt:\n%s", out.String())
	}
}

func TestIsTTY_NonFileWriter(t *testing.T) {
	var buf bytes.Buffer
	if isTTY(&buf) {
		t.Error("non-*os.File writer should not be a TTY")
	}
}
