package domain

import "fmt"

// Book is an immutable record describing one shelved title.
// Year stays a string on purpose: the source of a book entry is free text,
// and nothing downstream computes with it.
type Book struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   string `json:"year"`
}

func NewBook(title, author, year string) Book {
	return Book{Title: title, Author: author, Year: year}
}

// String renders the canonical one-line form used everywhere a book is shown.
func (b Book) String() string {
	return fmt.Sprintf("Title: %s, Author: %s, Year: %s", b.Title, b.Author, b.Year)
}
