// Package command implements the line-based command interpreter that
// translates user input into book and record operations.
package command

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/okravets/rolodex/internal/book"
	"github.com/okravets/rolodex/internal/contact"
)

// Result is the outcome of executing one input line.
type Result struct {
	Output string // Text to show the user; may be empty for blank input.
	Quit   bool   // True when the session should end and the book be saved.
}

// Interpreter executes commands against a book. It is not safe for
// concurrent use; one session owns one interpreter.
type Interpreter struct {
	book       *book.Book
	windowDays int
	now        func() time.Time
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithWindow sets the birthday reminder window in days.
func WithWindow(days int) Option {
	return func(it *Interpreter) { it.windowDays = days }
}

// WithClock sets the time source for the birthdays command. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(it *Interpreter) { it.now = now }
}

// NewInterpreter creates an Interpreter bound to bk with a 7-day
// reminder window by default.
func NewInterpreter(bk *book.Book, opts ...Option) *Interpreter {
	it := &Interpreter{
		book:       bk,
		windowDays: 7,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// handler executes a single named command.
type handler struct {
	usage string
	run   func(it *Interpreter, args []string) Result
}

// handlers maps command names to their implementations. close/exit and
// blank input are handled in Execute directly. Populated in init to break
// the initialization cycle with the help handler.
var handlers map[string]handler

func init() {
	handlers = map[string]handler{
		"hello":         {usage: "hello", run: (*Interpreter).hello},
		"add":           {usage: "add <name> <phone>", run: (*Interpreter).addContact},
		"change":        {usage: "change <name> <old phone> <new phone>", run: (*Interpreter).changeContact},
		"phone":         {usage: "phone <name>", run: (*Interpreter).showPhone},
		"all":           {usage: "all", run: (*Interpreter).showAll},
		"delete":        {usage: "delete <name>", run: (*Interpreter).deleteContact},
		"add-birthday":  {usage: "add-birthday <name> <DD.MM.YYYY>", run: (*Interpreter).addBirthday},
		"show-birthday": {usage: "show-birthday <name>", run: (*Interpreter).showBirthday},
		"birthdays":     {usage: "birthdays", run: (*Interpreter).showBirthdays},
		"help":          {usage: "help", run: (*Interpreter).help},
	}
}

// Execute tokenizes one input line and dispatches it. The command name
// is case-insensitive; arguments are passed through verbatim.
func (it *Interpreter) Execute(line string) Result {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Result{}
	}
	return it.Run(fields[0], fields[1:])
}

// Run dispatches an already-tokenized command. CLI subcommands call this
// directly so arguments containing spaces are not re-split.
func (it *Interpreter) Run(name string, args []string) Result {
	cmd := strings.ToLower(name)

	if cmd == "close" || cmd == "exit" {
		return Result{Output: "Good bye!", Quit: true}
	}

	h, ok := handlers[cmd]
	if !ok {
		return Result{Output: "Invalid command."}
	}
	return h.run(it, args)
}

func (it *Interpreter) hello([]string) Result {
	return Result{Output: "How can I help you?"}
}

// addContact creates a record on first sight of a name, or appends a
// phone to an existing record. The duplicate-phone check lives here,
// not in Record.AddPhone.
func (it *Interpreter) addContact(args []string) Result {
	if len(args) < 2 {
		return Result{Output: "Give me name and phone please."}
	}
	name, phone := args[0], args[1]

	rec, found := it.book.Find(name)
	message := "Contact updated."
	if !found {
		r, err := contact.NewRecord(name)
		if err != nil {
			return Result{Output: feedback(err)}
		}
		rec = r
		it.book.Add(rec)
		message = "Contact added."
	} else if _, has := rec.FindPhone(phone); has {
		return Result{Output: fmt.Sprintf("%s already has this phone number.", name)}
	}

	if err := rec.AddPhone(phone); err != nil {
		return Result{Output: feedback(err)}
	}
	return Result{Output: message}
}

func (it *Interpreter) changeContact(args []string) Result {
	if len(args) < 3 {
		return Result{Output: "Give me name, old phone number, and new phone number please."}
	}
	name, oldPhone, newPhone := args[0], args[1], args[2]

	rec, found := it.book.Find(name)
	if !found {
		return Result{Output: fmt.Sprintf("There are no contacts with the name %s. Type 'add' to add a new contact.", name)}
	}

	if err := rec.EditPhone(oldPhone, newPhone); err != nil {
		if errors.Is(err, contact.ErrPhoneNotFound) {
			return Result{Output: fmt.Sprintf("The contact %s does not have the phone number %s.", name, oldPhone)}
		}
		return Result{Output: feedback(err)}
	}
	return Result{Output: "Contact updated."}
}

func (it *Interpreter) showPhone(args []string) Result {
	if len(args) < 1 {
		return Result{Output: "Please enter the name."}
	}
	name := args[0]

	rec, found := it.book.Find(name)
	if !found {
		return Result{Output: fmt.Sprintf("There are no %s in your contacts", name)}
	}
	return Result{Output: rec.String()}
}

func (it *Interpreter) showAll([]string) Result {
	if it.book.Len() == 0 {
		return Result{Output: "No contacts found."}
	}
	return Result{Output: it.book.String()}
}

func (it *Interpreter) deleteContact(args []string) Result {
	if len(args) < 1 {
		return Result{Output: "Please enter the name."}
	}
	if len(args) > 1 {
		return Result{Output: "Give me only name."}
	}
	name := args[0]

	if _, found := it.book.Find(name); !found {
		return Result{Output: fmt.Sprintf("There are no %s in your contacts", name)}
	}
	it.book.Delete(name)
	return Result{Output: fmt.Sprintf("%s successfully deleted", name)}
}

func (it *Interpreter) addBirthday(args []string) Result {
	if len(args) < 2 {
		return Result{Output: "Give me name and birthday please."}
	}
	name, birthday := args[0], args[1]

	rec, found := it.book.Find(name)
	if !found {
		return Result{Output: fmt.Sprintf("There are no %s in your contacts.", name)}
	}
	if err := rec.AddBirthday(birthday); err != nil {
		return Result{Output: feedback(err)}
	}
	return Result{Output: "Birthday added."}
}

func (it *Interpreter) showBirthday(args []string) Result {
	if len(args) < 1 {
		return Result{Output: "Please provide a name."}
	}
	name := args[0]

	rec, found := it.book.Find(name)
	if !found {
		return Result{Output: fmt.Sprintf("There are no contacts with the name %s.", name)}
	}
	bd, ok := rec.Birthday()
	if !ok {
		return Result{Output: fmt.Sprintf("No birthday set for %s.", name)}
	}
	return Result{Output: fmt.Sprintf("Birthday for %s is %s.", name, bd)}
}

func (it *Interpreter) showBirthdays([]string) Result {
	upcoming := it.book.UpcomingBirthdays(it.now(), it.windowDays)
	if len(upcoming) == 0 {
		return Result{Output: fmt.Sprintf("No upcoming birthdays within the next %d days.", it.windowDays)}
	}

	lines := make([]string, 0, len(upcoming)+1)
	lines = append(lines, "Upcoming birthdays:")
	for _, rem := range upcoming {
		lines = append(lines, fmt.Sprintf("%s: %s", rem.Name, rem.CongratulationDate))
	}
	return Result{Output: strings.Join(lines, "\n")}
}

// help lists the available commands in sorted order.
func (it *Interpreter) help([]string) Result {
	usages := make([]string, 0, len(handlers)+1)
	for _, h := range handlers {
		usages = append(usages, "  "+h.usage)
	}
	usages = append(usages, "  close | exit")
	sort.Strings(usages)
	return Result{Output: "Commands:\n" + strings.Join(usages, "\n")}
}

// feedback renders a validation error as a user-facing message.
func feedback(err error) string {
	switch {
	case errors.Is(err, contact.ErrNameRequired):
		return "Name is a mandatory field."
	case errors.Is(err, contact.ErrInvalidPhone):
		return "Phone number must be 10 digits."
	case errors.Is(err, contact.ErrInvalidBirthday):
		return "Invalid date format. Use DD.MM.YYYY."
	default:
		return err.Error()
	}
}
