// Package book implements the address book: a name-keyed collection of
// contact records with the upcoming-birthdays query.
package book

import (
	"strings"
	"time"

	"github.com/okravets/rolodex/internal/contact"
)

// reminderLayout is the display format for congratulation dates.
const reminderLayout = "2006-01-02"

// Book maps contact names to records. Iteration follows insertion order.
// It exclusively owns its records; callers mutate them through Find.
type Book struct {
	records map[string]*contact.Record
	order   []string
}

// New creates an empty Book.
func New() *Book {
	return &Book{records: make(map[string]*contact.Record)}
}

// Add inserts r under its name, overwriting any existing record.
// An overwrite keeps the name's original position in iteration order.
func (b *Book) Add(r *contact.Record) {
	key := r.Name().String()
	if _, ok := b.records[key]; !ok {
		b.order = append(b.order, key)
	}
	b.records[key] = r
}

// Delete removes the record for name. Deleting an absent name is a no-op.
func (b *Book) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	for i, key := range b.order {
		if key == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Find returns the record for name and whether it exists.
func (b *Book) Find(name string) (*contact.Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Len returns the number of records.
func (b *Book) Len() int { return len(b.records) }

// Records returns the records in insertion order.
func (b *Book) Records() []*contact.Record {
	out := make([]*contact.Record, 0, len(b.order))
	for _, key := range b.order {
		out = append(out, b.records[key])
	}
	return out
}

// String renders every record on its own line, in insertion order.
func (b *Book) String() string {
	lines := make([]string, 0, len(b.order))
	for _, r := range b.Records() {
		lines = append(lines, r.String())
	}
	return strings.Join(lines, "\n")
}

// Reminder is one upcoming-birthday result.
type Reminder struct {
	Name               string `json:"name"`
	CongratulationDate string `json:"congratulation_date"`
}

// UpcomingBirthdays returns a reminder for every record whose next
// birthday occurrence falls within windowDays of today, inclusive on
// both ends. A birthday that already passed this year counts for next
// year. Results follow the book's insertion order; dates are rendered
// as YYYY-MM-DD.
func (b *Book) UpcomingBirthdays(today time.Time, windowDays int) []Reminder {
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	var upcoming []Reminder
	for _, r := range b.Records() {
		bd, ok := r.Birthday()
		if !ok {
			continue
		}
		occ := bd.Next(today)
		days := int(occ.Sub(start) / (24 * time.Hour))
		if days >= 0 && days <= windowDays {
			upcoming = append(upcoming, Reminder{
				Name:               r.Name().String(),
				CongratulationDate: occ.Format(reminderLayout),
			})
		}
	}
	return upcoming
}
