// Package tui is the full-screen shelf browser. It is an alternate
// front-end over the same storage port the shell uses.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/oleksandr-romashko/libretto/internal/domain"
)

type mode int

const (
	modeBrowse mode = iota
	modeAddTitle
	modeAddAuthor
	modeAddYear
)

type bookItem struct {
	book domain.Book
}

func (i bookItem) Title() string { return i.book.Title }
func (i bookItem) Description() string {
	return fmt.Sprintf("%s, %s", i.book.Author, i.book.Year)
}
func (i bookItem) FilterValue() string { return i.book.Title }

type model struct {
	theme Theme
	deps  Deps

	mode  mode
	shelf list.Model
	input textinput.Model

	draftTitle  string
	draftAuthor string

	status string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Shelf"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	in := textinput.New()
	in.CharLimit = 120

	m := model{
		theme: DefaultTheme(),
		deps:  deps,
		mode:  modeBrowse,
		shelf: l,
		input: in,
	}
	m.reload()
	return m
}

func (m *model) reload() {
	books, err := m.deps.Store.List()
	if err != nil {
		m.status = fmt.Sprintf("load failed: %v", err)
		m.deps.Logger.Error("tui.reload", "err", err)
		return
	}

	items := make([]list.Item, 0, len(books))
	for _, b := range books {
		items = append(items, bookItem{book: b})
	}
	m.shelf.SetItems(items)
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.shelf.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeBrowse {
			return m.updateBrowse(msg)
		}
		return m.updateAdd(msg)
	}

	if m.mode == modeBrowse {
		var cmd tea.Cmd
		m.shelf, cmd = m.shelf.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "a":
		m.mode = modeAddTitle
		m.status = ""
		m.input.Placeholder = "Title"
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case "d":
		it, ok := m.shelf.SelectedItem().(bookItem)
		if !ok {
			return m, nil
		}
		if err := m.deps.Store.RemoveByTitle(it.book.Title); err != nil {
			m.status = fmt.Sprintf("remove failed: %v", err)
			m.deps.Logger.Error("tui.remove", "err", err)
			return m, nil
		}
		m.deps.Logger.Info("tui.removed", "title", it.book.Title)
		m.status = fmt.Sprintf("removed %q", it.book.Title)
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.shelf, cmd = m.shelf.Update(msg)
	return m, cmd
}

func (m model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.mode = modeBrowse
		m.draftTitle = ""
		m.draftAuthor = ""
		m.input.Blur()
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.input.Value())
		m.input.SetValue("")

		switch m.mode {
		case modeAddTitle:
			m.draftTitle = value
			m.mode = modeAddAuthor
			m.input.Placeholder = "Author"
			return m, nil

		case modeAddAuthor:
			m.draftAuthor = value
			m.mode = modeAddYear
			m.input.Placeholder = "Year"
			return m, nil

		case modeAddYear:
			book := domain.NewBook(m.draftTitle, m.draftAuthor, value)
			if err := m.deps.Store.Add(book); err != nil {
				m.status = fmt.Sprintf("add failed: %v", err)
				m.deps.Logger.Error("tui.add", "err", err)
			} else {
				m.deps.Logger.Info("tui.added", "title", book.Title)
				m.status = fmt.Sprintf("added %q", book.Title)
			}
			m.mode = modeBrowse
			m.draftTitle = ""
			m.draftAuthor = ""
			m.input.Blur()
			m.reload()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Libretto") + "\n" +
		m.theme.Subtitle.Render("in-memory shelf for this session") + "\n"

	status := ""
	if m.status != "" {
		status = m.theme.Status.Render(m.status) + "\n"
	}

	switch m.mode {
	case modeBrowse:
		help := m.theme.Help.Render("↑/↓ navigate • a add • d delete • / filter • q quit")
		return wrap.Render(header + "\n" + status + m.theme.Card.Render(m.shelf.View()) + "\n" + help)

	default:
		prompts := map[mode]string{
			modeAddTitle:  "Enter book title",
			modeAddAuthor: "Enter book author",
			modeAddYear:   "Enter book year",
		}
		card := m.theme.Card.Render(
			fmt.Sprintf("%s\n\n%s\n\n%s",
				m.theme.Title.Render(prompts[m.mode]),
				m.input.View(),
				m.theme.Help.Render("enter next • esc cancel"),
			),
		)
		return wrap.Render(header + "\n" + status + card)
	}
}
