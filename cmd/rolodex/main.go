package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	rolodex "github.com/okravets/rolodex"
	"github.com/okravets/rolodex/internal/command"
	"github.com/okravets/rolodex/internal/config"
	"github.com/okravets/rolodex/internal/state"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for rolodex.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`

	Repl         ReplCmd         `cmd:"" default:"1" help:"Start an interactive session."`
	Add          AddCmd          `cmd:"" help:"Add a contact, or a phone to an existing contact."`
	Change       ChangeCmd       `cmd:"" help:"Replace one of a contact's phone numbers."`
	Delete       DeleteCmd       `cmd:"" help:"Delete a contact."`
	Phone        PhoneCmd        `cmd:"" help:"Show a contact's phone numbers."`
	All          AllCmd          `cmd:"" help:"List every contact."`
	AddBirthday  AddBirthdayCmd  `cmd:"" help:"Set a contact's birthday (DD.MM.YYYY)."`
	ShowBirthday ShowBirthdayCmd `cmd:"" help:"Show a contact's birthday."`
	Birthdays    BirthdaysCmd    `cmd:"" help:"Show birthdays in the upcoming window."`
	Init         InitCmd         `cmd:"" help:"Write a starter config to .rolodex/config.yaml."`
}

// loadConfig loads layered config from user and local paths with env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/rolodex/config.yaml"),
		filepath.Join(".rolodex", "config.yaml"),
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// session loads the book, runs one interpreter command, saves the book,
// and prints the result. User-level feedback (validation messages,
// "not found" answers) is ordinary output, not an error exit.
func session(name string, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := state.NewFileStore(cfg.Storage.Path)
	bk, err := store.Load()
	if err != nil {
		return err
	}

	it := command.NewInterpreter(bk, command.WithWindow(cfg.Birthdays.WindowDays))
	res := it.Run(name, args)

	if err := store.Save(bk); err != nil {
		return err
	}
	if res.Output != "" {
		fmt.Println(res.Output)
	}
	return nil
}

// AddCmd adds a contact or appends a phone to an existing one.
type AddCmd struct {
	Name  string `arg:"" help:"Contact name."`
	Phone string `arg:"" help:"10-digit phone number."`
}

func (c *AddCmd) Run() error {
	return session("add", []string{c.Name, c.Phone})
}

// ChangeCmd replaces one phone number with another.
type ChangeCmd struct {
	Name     string `arg:"" help:"Contact name."`
	OldPhone string `arg:"" help:"Phone number to replace."`
	NewPhone string `arg:"" help:"Replacement phone number."`
}

func (c *ChangeCmd) Run() error {
	return session("change", []string{c.Name, c.OldPhone, c.NewPhone})
}

// DeleteCmd removes a contact.
type DeleteCmd struct {
	Name string `arg:"" help:"Contact name."`
}

func (c *DeleteCmd) Run() error {
	return session("delete", []string{c.Name})
}

// PhoneCmd shows a contact's phone numbers.
type PhoneCmd struct {
	Name string `arg:"" help:"Contact name."`
}

func (c *PhoneCmd) Run() error {
	return session("phone", []string{c.Name})
}

// AllCmd lists every contact.
type AllCmd struct{}

func (c *AllCmd) Run() error {
	return session("all", nil)
}

// AddBirthdayCmd sets a contact's birthday.
type AddBirthdayCmd struct {
	Name     string `arg:"" help:"Contact name."`
	Birthday string `arg:"" help:"Birthday as DD.MM.YYYY."`
}

func (c *AddBirthdayCmd) Run() error {
	return session("add-birthday", []string{c.Name, c.Birthday})
}

// ShowBirthdayCmd shows a contact's birthday.
type ShowBirthdayCmd struct {
	Name string `arg:"" help:"Contact name."`
}

func (c *ShowBirthdayCmd) Run() error {
	return session("show-birthday", []string{c.Name})
}

// BirthdaysCmd shows upcoming birthdays.
type BirthdaysCmd struct {
	Days int `help:"Window in days (overrides config)." default:"-1"`
}

func (c *BirthdaysCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := state.NewFileStore(cfg.Storage.Path)
	bk, err := store.Load()
	if err != nil {
		return err
	}

	window := cfg.Birthdays.WindowDays
	if c.Days >= 0 {
		window = c.Days
	}

	it := command.NewInterpreter(bk, command.WithWindow(window))
	res := it.Run("birthdays", nil)
	fmt.Println(res.Output)
	return nil
}

// InitCmd writes the embedded starter config to .rolodex/config.yaml.
type InitCmd struct{}

func (c *InitCmd) Run() error {
	path := filepath.Join(".rolodex", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("init: %s already exists", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("init: creating directory: %w", err)
	}
	if err := os.WriteFile(path, rolodex.ConfigTemplate(), 0o644); err != nil {
		return fmt.Errorf("init: writing %s: %w", path, err)
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Vars{"version": version + " " + commit + " " + date})
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
