package ports

// Library is the contract the shell and TUI depend on. They never see a
// concrete store: any implementation backed by any BookStorage must behave
// identically from here.
type Library interface {
	AddBook(title, author, year string) error
	RemoveBook(title string) error
	ShowBooks() error
}
