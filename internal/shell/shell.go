// Package shell implements the interactive command loop over a Library.
//
// The loop is single-threaded and blocks on its input reader. It depends
// only on the ports.Library contract, so any storage behind it behaves the
// same from here.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/oleksandr-romashko/libretto/internal/domain"
	"github.com/oleksandr-romashko/libretto/internal/ports"
)

const (
	promptCommand     = "Enter command (add, remove, show, exit): "
	promptTitle       = "Enter book title: "
	promptAuthor      = "Enter book author: "
	promptYear        = "Enter book year: "
	promptRemoveTitle = "Enter book title to remove: "
	msgInvalidCommand = "Invalid command. Please try again."
)

type Manager struct {
	library ports.Library
	in      *bufio.Scanner
	out     io.Writer
	log     *slog.Logger
	now     func() time.Time

	startedAt time.Time
	endedAt   time.Time
	entries   []domain.SessionEntry
}

type Option func(*Manager)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func NewManager(library ports.Library, in io.Reader, out io.Writer, log *slog.Logger, opts ...Option) *Manager {
	m := &Manager{
		library: library,
		in:      bufio.NewScanner(in),
		out:     out,
		log:     log,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run reads commands until "exit" or end of input. It ends the loop, never
// the process; the caller decides what happens next. Ending on EOF is
// indistinguishable from typing "exit".
func (m *Manager) Run(ctx context.Context) error {
	m.startedAt = m.now()
	defer func() { m.endedAt = m.now() }()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, ok := m.prompt(promptCommand)
		if !ok {
			m.record(domain.CommandExit, "", "")
			return nil
		}

		command := strings.ToLower(strings.TrimSpace(line))
		switch command {
		case "add":
			title, ok := m.prompt(promptTitle)
			if !ok {
				m.record(domain.CommandExit, "", "")
				return nil
			}
			author, ok := m.prompt(promptAuthor)
			if !ok {
				m.record(domain.CommandExit, "", "")
				return nil
			}
			year, ok := m.prompt(promptYear)
			if !ok {
				m.record(domain.CommandExit, "", "")
				return nil
			}

			title = strings.TrimSpace(title)
			if err := m.library.AddBook(title, strings.TrimSpace(author), strings.TrimSpace(year)); err != nil {
				m.reportError("add", err)
				continue
			}
			m.record(domain.CommandAdd, command, title)
			m.log.Debug("shell.add", "title", title)

		case "remove":
			title, ok := m.prompt(promptRemoveTitle)
			if !ok {
				m.record(domain.CommandExit, "", "")
				return nil
			}

			title = strings.TrimSpace(title)
			if err := m.library.RemoveBook(title); err != nil {
				m.reportError("remove", err)
				continue
			}
			m.record(domain.CommandRemove, command, title)
			m.log.Debug("shell.remove", "title", title)

		case "show":
			if err := m.library.ShowBooks(); err != nil {
				m.reportError("show", err)
				continue
			}
			m.record(domain.CommandShow, command, "")

		case "exit":
			m.record(domain.CommandExit, command, "")
			return nil

		default:
			fmt.Fprintln(m.out, msgInvalidCommand)
			m.record(domain.CommandUnknown, command, "")
		}
	}
}

// Transcript reports what the loop did. Valid after Run returns.
func (m *Manager) Transcript(booksAtExit int) domain.SessionTranscript {
	entries := make([]domain.SessionEntry, len(m.entries))
	copy(entries, m.entries)

	return domain.SessionTranscript{
		StartedAt:   m.startedAt,
		EndedAt:     m.endedAt,
		Entries:     entries,
		BooksAtExit: booksAtExit,
	}
}

func (m *Manager) prompt(text string) (string, bool) {
	fmt.Fprint(m.out, text)
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

func (m *Manager) record(cmd domain.SessionCommand, input, title string) {
	m.entries = append(m.entries, domain.SessionEntry{
		Command: cmd,
		Input:   input,
		Title:   title,
		At:      m.now(),
	})
}

func (m *Manager) reportError(op string, err error) {
	fmt.Fprintf(m.out, "error: %v\n", err)
	m.log.Error("shell."+op, "err", err)
}
