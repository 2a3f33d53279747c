package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit     key.Binding
	FocusList  key.Binding
	FocusInput key.Binding
	Blur       key.Binding

	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Edit   key.Binding
	Done   key.Binding
	Delete key.Binding

	Theme      key.Binding
	ThemeInput key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		FocusList:  key.NewBinding(key.WithKeys("tab", "shift+tab", "down"), key.WithHelp("tab", "list")),
		FocusInput: key.NewBinding(key.WithKeys("tab", "shift+tab", "a"), key.WithHelp("a/tab", "new todo")),
		Blur:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "list")),

		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "complete")),
		Edit:   key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Done:   key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "done editing")),
		Delete: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),

		Theme:      key.NewBinding(key.WithKeys("t", "ctrl+t"), key.WithHelp("t", "theme")),
		ThemeInput: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// inputHelp is shown while the add field has focus.
type inputHelp keyMap

func (k inputHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.FocusList, k.ThemeInput, k.ForceQuit}
}

func (k inputHelp) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// listHelp is shown while an item is selected.
type listHelp keyMap

func (k listHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Edit, k.Delete, k.FocusInput, k.Help, k.Quit}
}

func (k listHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Toggle, k.Edit, k.Delete},
		{k.FocusInput, k.Theme},
		{k.Help, k.Quit},
	}
}

// editHelp is shown during inline edit.
type editHelp keyMap

func (k editHelp) ShortHelp() []key.Binding  { return []key.Binding{k.Done} }
func (k editHelp) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
