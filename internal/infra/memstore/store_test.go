package memstore

import (
	"testing"

	"github.com/oleksandr-romashko/libretto/internal/domain"
)

func TestAddThenList(t *testing.T) {
	s := New()

	book := domain.NewBook("Dune", "Frank Herbert", "1965")
	if err := s.Add(book); err != nil {
		t.Fatal(err)
	}

	got, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != book {
		t.Fatalf("List() = %v, want exactly [%v]", got, book)
	}
}

func TestListKeepsInsertionOrder(t *testing.T) {
	s := New()
	books := []domain.Book{
		domain.NewBook("Dune", "Frank Herbert", "1965"),
		domain.NewBook("Hyperion", "Dan Simmons", "1989"),
		domain.NewBook("Solaris", "Stanislaw Lem", "1961"),
	}
	for _, b := range books {
		if err := s.Add(b); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(books) {
		t.Fatalf("len = %d, want %d", len(got), len(books))
	}
	for i := range books {
		if got[i] != books[i] {
			t.Errorf("got[%d] = %v, want %v", i, got[i], books[i])
		}
	}
}

func TestAddSkipsExactDuplicate(t *testing.T) {
	s := New()
	book := domain.NewBook("Dune", "Frank Herbert", "1965")

	_ = s.Add(book)
	_ = s.Add(book)

	got, _ := s.List()
	if len(got) != 1 {
		t.Fatalf("expected duplicate add to be skipped, got %d books", len(got))
	}
}

func TestAddAllowsSharedTitle(t *testing.T) {
	s := New()
	_ = s.Add(domain.NewBook("Dune", "Frank Herbert", "1965"))
	_ = s.Add(domain.NewBook("Dune", "Brian Herbert", "1999"))

	got, _ := s.List()
	if len(got) != 2 {
		t.Fatalf("expected two books sharing a title, got %d", len(got))
	}
}

func TestRemoveByTitleRemovesAllMatches(t *testing.T) {
	s := New()
	_ = s.Add(domain.NewBook("Dune", "Frank Herbert", "1965"))
	_ = s.Add(domain.NewBook("Hyperion", "Dan Simmons", "1989"))
	_ = s.Add(domain.NewBook("Dune", "Brian Herbert", "1999"))

	if err := s.RemoveByTitle("Dune"); err != nil {
		t.Fatal(err)
	}

	got, _ := s.List()
	if len(got) != 1 || got[0].Title != "Hyperion" {
		t.Fatalf("List() after remove = %v, want only Hyperion", got)
	}
}

func TestRemoveAbsentTitleIsNoOp(t *testing.T) {
	s := New()
	_ = s.Add(domain.NewBook("Dune", "Frank Herbert", "1965"))

	if err := s.RemoveByTitle("Neuromancer"); err != nil {
		t.Fatal(err)
	}

	got, _ := s.List()
	if len(got) != 1 {
		t.Fatalf("expected collection unchanged, got %d books", len(got))
	}
}

func TestListReturnsCopy(t *testing.T) {
	s := New()
	_ = s.Add(domain.NewBook("Dune", "Frank Herbert", "1965"))

	got, _ := s.List()
	got[0].Title = "mutated"

	again, _ := s.List()
	if again[0].Title != "Dune" {
		t.Fatal("List must return a copy, not the backing slice")
	}
}

func TestEmptyListIsEmptyNotNil(t *testing.T) {
	s := New()
	got, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("List() on empty store = %v, want empty non-nil slice", got)
	}
}
