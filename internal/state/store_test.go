package state

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okravets/rolodex/internal/book"
	"github.com/okravets/rolodex/internal/contact"
)

// buildBook assembles a two-contact book for round-trip tests.
func buildBook(t *testing.T) *book.Book {
	t.Helper()
	b := book.New()

	ann, err := contact.NewRecord("Ann")
	if err != nil {
		t.Fatal(err)
	}
	if err := ann.AddPhone("1111111111"); err != nil {
		t.Fatal(err)
	}
	if err := ann.AddPhone("2222222222"); err != nil {
		t.Fatal(err)
	}
	if err := ann.AddBirthday("12.06.1990"); err != nil {
		t.Fatal(err)
	}
	b.Add(ann)

	bob, err := contact.NewRecord("Bob")
	if err != nil {
		t.Fatal(err)
	}
	b.Add(bob)

	return b
}

func TestFileStore_SaveAndLoad(t *testing.T) {
	// Given a populated book
	path := filepath.Join(t.TempDir(), "book.json")
	store := NewFileStore(path)
	b := buildBook(t)

	// When Save then Load run
	if err := store.Save(b); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Then the book round-trips: records, order, phones, birthday
	if loaded.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", loaded.Len())
	}

	recs := loaded.Records()
	if recs[0].Name().String() != "Ann" || recs[1].Name().String() != "Bob" {
		t.Errorf("order = [%s %s], want [Ann Bob]", recs[0].Name(), recs[1].Name())
	}

	ann, ok := loaded.Find("Ann")
	if !ok {
		t.Fatal("Find(Ann) ok = false")
	}
	phones := ann.Phones()
	if len(phones) != 2 || phones[0].String() != "1111111111" || phones[1].String() != "2222222222" {
		t.Errorf("Ann phones = %v, want [1111111111 2222222222]", phones)
	}
	bd, ok := ann.Birthday()
	if !ok || bd.String() != "12.06.1990" {
		t.Errorf("Ann birthday = %s, %v; want 12.06.1990, true", bd, ok)
	}

	bob, _ := loaded.Find("Bob")
	if _, ok := bob.Birthday(); ok {
		t.Error("Bob should have no birthday after round-trip")
	}
}

func TestFileStore_LoadMissingFileReturnsEmptyBook(t *testing.T) {
	// Given no snapshot on disk
	store := NewFileStore(filepath.Join(t.TempDir(), "nope", "book.json"))

	// When Load runs
	b, err := store.Load()

	// Then it returns a fresh empty book, not an error
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
}

func TestFileStore_SaveCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "book.json")
	store := NewFileStore(path)

	if err := store.Save(book.New()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("snapshot not written: %v", err)
	}
}

func TestFileStore_LoadCorruptJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := NewFileStore(path).Load()
	if err == nil {
		t.Fatal("Load(corrupt) error = nil, want parse error")
	}
}

func TestFileStore_LoadRevalidatesFields(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{
			name: "bad phone",
			body: `{"contacts":[{"name":"Ann","phones":["123"]}]}`,
			want: contact.ErrInvalidPhone,
		},
		{
			name: "bad birthday",
			body: `{"contacts":[{"name":"Ann","birthday":"1990-06-12"}]}`,
			want: contact.ErrInvalidBirthday,
		},
		{
			name: "empty name",
			body: `{"contacts":[{"name":""}]}`,
			want: contact.ErrNameRequired,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given a snapshot with an invalid field
			path := filepath.Join(t.TempDir(), "book.json")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}

			// When Load runs
			_, err := NewFileStore(path).Load()

			// Then the field error surfaces instead of loading bad data
			if !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFileStore_SaveEmptyBook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.json")
	store := NewFileStore(path)

	if err := store.Save(book.New()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Len() != 0 {
		t.Errorf("Len() = %d, want 0", loaded.Len())
	}
}
