// Package contact defines the validated field types and the Record type
// that make up a single address book entry.
package contact

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidFormat is the base error for every field validation failure.
// Specific failures below wrap it so callers can match either the exact
// condition or the whole family with errors.Is.
var ErrInvalidFormat = errors.New("contact: invalid format")

// Sentinel errors for caller-checkable validation failures.
var (
	ErrNameRequired    = fmt.Errorf("%w: name is a mandatory field", ErrInvalidFormat)
	ErrInvalidPhone    = fmt.Errorf("%w: phone number must be 10 digits", ErrInvalidFormat)
	ErrInvalidBirthday = fmt.Errorf("%w: birthday must use DD.MM.YYYY", ErrInvalidFormat)
)

// birthdayLayout is the wire and display format for birthdays.
// time.Parse treats the zero-padded fields as fixed width, so the parse
// is strict and the round-trip through String is lossless.
const birthdayLayout = "02.01.2006"

// Name is a contact's display name. Always non-empty in memory — use
// ParseName to construct.
type Name string

// ParseName validates a raw name. The only rule is that it cannot be empty.
func ParseName(raw string) (Name, error) {
	if raw == "" {
		return "", ErrNameRequired
	}
	return Name(raw), nil
}

func (n Name) String() string { return string(n) }

// Phone is a phone number of exactly ten ASCII digits.
// Always valid in memory — use ParsePhone to construct.
type Phone string

// ParsePhone validates a raw phone number: exactly 10 characters, all
// decimal digits.
func ParsePhone(raw string) (Phone, error) {
	if len(raw) != 10 {
		return "", fmt.Errorf("%w, got %d characters", ErrInvalidPhone, len(raw))
	}
	for _, c := range raw {
		if c < '0' || c > '9' {
			return "", fmt.Errorf("%w, got %q", ErrInvalidPhone, raw)
		}
	}
	return Phone(raw), nil
}

func (p Phone) String() string { return string(p) }

// Birthday is a calendar date parsed from DD.MM.YYYY.
type Birthday struct {
	date time.Time
}

// ParseBirthday parses a raw date string strictly against DD.MM.YYYY.
// Non-numeric input, out-of-range day/month, or a wrong separator all fail.
func ParseBirthday(raw string) (Birthday, error) {
	d, err := time.Parse(birthdayLayout, raw)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w, got %q", ErrInvalidBirthday, raw)
	}
	return Birthday{date: d}, nil
}

// String renders the date back through the parse layout.
func (b Birthday) String() string {
	return b.date.Format(birthdayLayout)
}

// IsZero reports whether the birthday is unset.
func (b Birthday) IsZero() bool { return b.date.IsZero() }

// Next returns the next occurrence of the birthday on or after today,
// as a midnight UTC date. If this year's occurrence already passed it
// rolls over to next year. A Feb 29 birthday in a non-leap target year
// normalizes to Mar 1 via time.Date.
func (b Birthday) Next(today time.Time) time.Time {
	start := midnightUTC(today)

	occ := time.Date(start.Year(), b.date.Month(), b.date.Day(), 0, 0, 0, 0, time.UTC)
	if occ.Before(start) {
		occ = time.Date(start.Year()+1, b.date.Month(), b.date.Day(), 0, 0, 0, 0, time.UTC)
	}
	return occ
}

// midnightUTC truncates t to its calendar date at midnight UTC, so day
// arithmetic is immune to wall-clock time and DST offsets.
func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
