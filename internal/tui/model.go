// Package tui implements the Bubble Tea model for interactive sessions.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okravets/rolodex/internal/command"
)

// maxScrollback caps how many command/output pairs the view keeps.
const maxScrollback = 50

// Executor runs one input line against the book. Satisfied by
// *command.Interpreter; an interface so tests can substitute a fake.
type Executor interface {
	Execute(line string) command.Result
}

// entry is one executed command and its output.
type entry struct {
	line   string
	output string
}

// Model is the Bubble Tea model for an interactive session.
type Model struct {
	exec    Executor
	input   textinput.Model
	entries []entry
	prompt  string
	done    bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithPrompt overrides the default input prompt.
func WithPrompt(prompt string) ModelOption {
	return func(m *Model) { m.prompt = prompt }
}

// NewModel creates a session model that executes lines via exec.
func NewModel(exec Executor, opts ...ModelOption) Model {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 256

	m := Model{
		exec:   exec,
		input:  ti,
		prompt: "Enter a command: ",
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.input.Prompt = promptStyle.Render(m.prompt)
	return m
}

// Init starts the input cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key input. Enter submits the current line to the
// executor; ctrl+c ends the session like an explicit exit command.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m.submit()
		case "ctrl+c":
			m = m.record("exit", m.exec.Execute("exit"))
			m.done = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		// Width is unused: entries wrap naturally in the terminal.
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit executes the current input line and clears the field.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.SetValue("")

	res := m.exec.Execute(line)
	m = m.record(line, res)

	if res.Quit {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// record appends the command and its output to the scrollback.
func (m Model) record(line string, res command.Result) Model {
	if strings.TrimSpace(line) == "" && res.Output == "" {
		return m
	}
	m.entries = append(m.entries, entry{line: line, output: res.Output})
	if len(m.entries) > maxScrollback {
		m.entries = m.entries[len(m.entries)-maxScrollback:]
	}
	return m
}

// View renders the banner, scrollback, and input field.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(bannerStyle.Render("Welcome to the assistant bot!"))
	b.WriteString("\n")

	for _, e := range m.entries {
		b.WriteString(echoStyle.Render(m.prompt + e.line))
		b.WriteString("\n")
		if e.output != "" {
			out := e.output
			if m.done && e.output == "Good bye!" {
				out = farewellStyle.Render(out)
			}
			b.WriteString(out)
			b.WriteString("\n")
		}
	}

	if !m.done {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	return b.String()
}
