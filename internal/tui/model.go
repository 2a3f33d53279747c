// Package tui renders the todo list as a Bubble Tea program.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/todo"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Options tune the screen's fixed text.
type Options struct {
	Title       string
	Placeholder string
	CharLimit   int
}

type focus int

const (
	focusInput focus = iota
	focusList
)

// Model is the Bubble Tea model. All state lives in the store and theme;
// the model only tracks focus, cursor and the inline editor.
type Model struct {
	store *todo.Store
	theme *ui.ThemeState
	opts  Options

	keys   keyMap
	help   help.Model
	input  textinput.Model // add field, mirrored into the store's pending text
	editor textinput.Model // inline edit

	focus   focus
	cursor  int // index into rows()
	editing bool
	editID  model.ID

	width, height int
	quitting      bool
}

func New(store *todo.Store, theme *ui.ThemeState, opts Options) Model {
	m := Model{
		store: store,
		theme: theme,
		opts:  opts,
		keys:  defaultKeyMap(),
		help:  help.New(),
	}
	m.keys.Theme.SetEnabled(theme.Toggleable())
	m.keys.ThemeInput.SetEnabled(theme.Toggleable())

	m.input = textinput.New()
	m.input.Prompt = "> "
	m.input.Placeholder = opts.Placeholder
	m.input.CharLimit = opts.CharLimit
	m.input.SetValue(store.Pending())
	m.input.Focus()

	m.editor = textinput.New()
	m.editor.Prompt = ""
	m.editor.CharLimit = opts.CharLimit
	return m
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

// rows is the on-screen order: incomplete todos, then completed ones.
func (m Model) rows() []model.Todo {
	inc, done := m.store.Partition()
	return append(inc, done...)
}

func (m Model) selected() (model.Todo, bool) {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return model.Todo{}, false
	}
	return rows[m.cursor], true
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.ThemeInput) {
			m.theme.Toggle()
			return m, nil
		}
		switch {
		case m.editing:
			return m.updateEdit(msg)
		case m.focus == focusInput:
			return m.updateInput(msg)
		default:
			return m.updateList(msg)
		}
	}

	if m.focus == focusInput && !m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	if m.editing {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.store.SetPending(m.input.Value())
		if _, ok := m.store.Submit(); ok {
			m.input.SetValue(m.store.Pending())
		}
		return m, nil
	case key.Matches(msg, m.keys.FocusList), key.Matches(msg, m.keys.Blur):
		if m.store.Len() == 0 {
			return m, nil
		}
		m.focus = focusList
		m.input.Blur()
		m.clampCursor()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.store.SetPending(m.input.Value())
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		if t, ok := m.selected(); ok {
			m.store.Toggle(t.ID)
			m.follow(t.ID)
		}

	case key.Matches(msg, m.keys.Edit):
		if t, ok := m.selected(); ok {
			m.editing = true
			m.editID = t.ID
			m.editor.SetValue(t.Text)
			m.editor.CursorEnd()
			return m, m.editor.Focus()
		}

	case key.Matches(msg, m.keys.Delete):
		if t, ok := m.selected(); ok {
			m.store.Delete(t.ID)
			m.clampCursor()
			if m.store.Len() == 0 {
				return m, m.focusInput()
			}
		}

	case key.Matches(msg, m.keys.FocusInput):
		return m, m.focusInput()

	case key.Matches(msg, m.keys.Theme):
		m.theme.Toggle()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// updateEdit applies every keystroke to the store as it happens.
func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Done) {
		m.editing = false
		m.editor.Blur()
		return m, nil
	}
	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if v := m.editor.Value(); v != before {
		m.store.Edit(m.editID, v)
	}
	if _, ok := m.store.Get(m.editID); !ok {
		m.editing = false
		m.editor.Blur()
	}
	return m, cmd
}

func (m *Model) focusInput() tea.Cmd {
	m.focus = focusInput
	m.help.ShowAll = false
	return m.input.Focus()
}

// follow keeps the cursor on id after it moved between sections.
func (m *Model) follow(id model.ID) {
	for i, t := range m.rows() {
		if t.ID == id {
			m.cursor = i
			return
		}
	}
}

func (m *Model) clampCursor() {
	n := m.store.Len()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
