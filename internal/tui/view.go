package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/todo"
	"github.com/Makepad-fr/tada/internal/ui"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	p := m.theme.Palette()
	inc, done := m.store.Partition()

	var lines []string
	lines = append(lines, p.Title.Render(m.opts.Title))
	if m.theme.Toggleable() {
		lines = append(lines, p.Icon.Render(p.IconGlyph+" ")+p.Muted.Render(p.Mode.String()))
	}
	lines = append(lines, "", m.inputRow(p), "")

	lines = append(lines, m.section(p, "Incomplete", inc, 0)...)
	lines = append(lines, "")
	lines = append(lines, m.section(p, "Completed", done, len(inc))...)
	lines = append(lines, "")

	nd, np := todo.Stats(m.store.Todos())
	lines = append(lines, ui.Counts(p, nd, np))
	lines = append(lines, ui.ProgressBar(p, nd, nd+np, 24))
	lines = append(lines, "", m.helpView())

	card := p.Card.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
	if m.width == 0 || m.height == 0 {
		return card
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(p.App.GetBackground()))
}

func (m Model) inputRow(p ui.Palette) string {
	field := p.Input.Render(m.input.View())
	button := p.Button.Render("Add")
	if m.focus == focusInput && !m.editing {
		field = p.Cursor.Render("› ") + field
	} else {
		field = p.Row.Render("  ") + field
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, field, p.Row.Render(" "), button)
}

// section renders one partition; offset is its first row's index in rows().
func (m Model) section(p ui.Palette, heading string, todos []model.Todo, offset int) []string {
	out := []string{p.Heading.Render(heading)}
	if len(todos) == 0 {
		return append(out, p.Muted.Render("(none)"))
	}
	rows := make([]string, 0, len(todos))
	for i, t := range todos {
		rows = append(rows, m.row(p, t, offset+i))
	}
	return append(out, lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) row(p ui.Palette, t model.Todo, index int) string {
	prefix := p.Row.Render("  ")
	if m.focus == focusList && index == m.cursor {
		prefix = p.Cursor.Render("> ")
	}

	box := p.Muted.Render(p.BoxUnchecked)
	text := p.Row.Render(t.Text)
	if t.Completed {
		box = p.Success.Render(p.BoxChecked)
		text = p.Done.Render(t.Text)
	}
	switch {
	case m.editing && t.ID == m.editID:
		text = m.editor.View()
	case strings.TrimSpace(t.Text) == "":
		text = p.Muted.Render("(empty)")
	}
	return prefix + box + p.Row.Render(" ") + text + p.Delete.Render("  "+p.DeleteGlyph)
}

func (m Model) helpView() string {
	switch {
	case m.editing:
		return m.help.View(editHelp(m.keys))
	case m.focus == focusInput:
		return m.help.View(inputHelp(m.keys))
	default:
		return m.help.View(listHelp(m.keys))
	}
}
