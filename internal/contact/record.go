package contact

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPhoneNotFound indicates an edit targeted a phone the record does not hold.
var ErrPhoneNotFound = errors.New("contact: phone not found")

// Record is one contact's mutable state: a fixed name, an ordered list of
// phone numbers, and at most one birthday.
type Record struct {
	name     Name
	phones   []Phone
	birthday Birthday
}

// NewRecord creates a Record with the mandatory name. The name is fixed
// for the record's lifetime; there is no rename operation.
func NewRecord(rawName string) (*Record, error) {
	name, err := ParseName(rawName)
	if err != nil {
		return nil, err
	}
	return &Record{name: name}, nil
}

// Name returns the record's name.
func (r *Record) Name() Name { return r.name }

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// Birthday returns the record's birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	return r.birthday, !r.birthday.IsZero()
}

// AddPhone validates raw and appends it to the phone list.
// Duplicates are not rejected here; the command layer checks for them
// before calling.
func (r *Record) AddPhone(raw string) error {
	p, err := ParsePhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes every phone equal to raw. Removing a phone the
// record does not hold is a no-op, not an error.
func (r *Record) RemovePhone(raw string) {
	kept := r.phones[:0]
	for _, p := range r.phones {
		if p.String() != raw {
			kept = append(kept, p)
		}
	}
	r.phones = kept
}

// EditPhone replaces the first phone equal to oldRaw with a validated
// newRaw. Returns ErrPhoneNotFound (and leaves the list unchanged) when
// no phone matches.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	p, err := ParsePhone(newRaw)
	if err != nil {
		return err
	}
	for i := range r.phones {
		if r.phones[i].String() == oldRaw {
			r.phones[i] = p
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrPhoneNotFound, oldRaw)
}

// FindPhone returns the first phone equal to raw and whether one was found.
func (r *Record) FindPhone(raw string) (Phone, bool) {
	for _, p := range r.phones {
		if p.String() == raw {
			return p, true
		}
	}
	return "", false
}

// AddBirthday parses raw and sets the birthday, overwriting any existing one.
func (r *Record) AddBirthday(raw string) error {
	b, err := ParseBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = b
	return nil
}

// String renders the record as a single display line.
func (r *Record) String() string {
	strs := make([]string, len(r.phones))
	for i, p := range r.phones {
		strs[i] = p.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s", r.name, strings.Join(strs, ", "))
}
