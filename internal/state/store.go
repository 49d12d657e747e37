// Package state persists address book snapshots to the filesystem.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/okravets/rolodex/internal/book"
	"github.com/okravets/rolodex/internal/contact"
)

// FileStore persists a whole book as a single JSON snapshot file.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore that reads and writes the snapshot at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// snapshot is the on-disk form of a book. Contacts keep the book's
// insertion order so a load/save cycle is order-preserving.
type snapshot struct {
	Contacts []contactSnapshot `json:"contacts"`
}

// contactSnapshot is the on-disk form of a single record. Birthday uses
// the same DD.MM.YYYY format the user typed.
type contactSnapshot struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones,omitempty"`
	Birthday string   `json:"birthday,omitempty"`
}

// Save writes the whole book to the snapshot file, creating parent
// directories as needed.
func (s *FileStore) Save(b *book.Book) error {
	snap := snapshot{Contacts: make([]contactSnapshot, 0, b.Len())}
	for _, r := range b.Records() {
		cs := contactSnapshot{Name: r.Name().String()}
		for _, p := range r.Phones() {
			cs.Phones = append(cs.Phones, p.String())
		}
		if bd, ok := r.Birthday(); ok {
			cs.Birthday = bd.String()
		}
		snap.Contacts = append(snap.Contacts, cs)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("state: creating directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("state: marshaling: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("state: writing %s: %w", s.path, err)
	}
	return nil
}

// Load reads the snapshot and rebuilds the book. A missing snapshot file
// is not an error: it returns a fresh empty book. Every field goes back
// through its parser, so a hand-edited snapshot with invalid data fails
// loudly instead of smuggling bad values into memory.
func (s *FileStore) Load() (*book.Book, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return book.New(), nil
		}
		return nil, fmt.Errorf("state: reading %s: %w", s.path, err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("state: parsing %s: %w", s.path, err)
	}

	b := book.New()
	for _, cs := range snap.Contacts {
		r, err := contact.NewRecord(cs.Name)
		if err != nil {
			return nil, fmt.Errorf("state: %s: contact %q: %w", s.path, cs.Name, err)
		}
		for _, p := range cs.Phones {
			if err := r.AddPhone(p); err != nil {
				return nil, fmt.Errorf("state: %s: contact %q: %w", s.path, cs.Name, err)
			}
		}
		if cs.Birthday != "" {
			if err := r.AddBirthday(cs.Birthday); err != nil {
				return nil, fmt.Errorf("state: %s: contact %q: %w", s.path, cs.Name, err)
			}
		}
		b.Add(r)
	}
	return b, nil
}
