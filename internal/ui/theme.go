package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Mode is the two-valued theme flag.
type Mode int

const (
	Dark Mode = iota
	Light
)

func (m Mode) String() string {
	if m == Light {
		return "light"
	}
	return "dark"
}

// ParseMode accepts "dark" or "light", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark", "":
		return Dark, nil
	case "light":
		return Light, nil
	}
	return Dark, fmt.Errorf("unknown theme %q (want dark or light)", s)
}

// ThemeState holds the current mode. It never touches todo data.
// When not toggleable the mode is fixed for the session.
type ThemeState struct {
	mode       Mode
	toggleable bool
}

func NewThemeState(mode Mode, toggleable bool) *ThemeState {
	return &ThemeState{mode: mode, toggleable: toggleable}
}

// Toggle flips the mode and reports whether it did.
func (t *ThemeState) Toggle() bool {
	if !t.toggleable {
		return false
	}
	if t.mode == Dark {
		t.mode = Light
	} else {
		t.mode = Dark
	}
	return true
}

func (t *ThemeState) Mode() Mode       { return t.mode }
func (t *ThemeState) Toggleable() bool { return t.toggleable }
func (t *ThemeState) Palette() Palette { return PaletteFor(t.mode) }

// Palette bundles the styles the view needs for one mode.
type Palette struct {
	Mode Mode

	App     lipgloss.Style // whole screen
	Card    lipgloss.Style // bordered box around everything
	Title   lipgloss.Style
	Heading lipgloss.Style
	Input   lipgloss.Style
	Button  lipgloss.Style
	Row     lipgloss.Style
	Done    lipgloss.Style
	Cursor  lipgloss.Style
	Success lipgloss.Style
	Muted   lipgloss.Style
	Delete  lipgloss.Style
	Icon    lipgloss.Style

	BoxChecked, BoxUnchecked string
	IconGlyph                string
	DeleteGlyph              string
}

// Tailwind gray/indigo scale.
const (
	gray100   = lipgloss.Color("#f3f4f6")
	gray200   = lipgloss.Color("#e5e7eb")
	gray300   = lipgloss.Color("#d1d5db")
	gray500   = lipgloss.Color("#6b7280")
	gray700   = lipgloss.Color("#374151")
	gray800   = lipgloss.Color("#1f2937")
	gray900   = lipgloss.Color("#111827")
	white     = lipgloss.Color("#ffffff")
	black     = lipgloss.Color("#000000")
	indigo500 = lipgloss.Color("#6366f1")
	purple500 = lipgloss.Color("#a855f7")
	yellow500 = lipgloss.Color("#eab308")
	green500  = lipgloss.Color("#22c55e")
)

func PaletteFor(m Mode) Palette {
	p := Palette{
		Mode:         m,
		Title:        lipgloss.NewStyle().Bold(true),
		Heading:      lipgloss.NewStyle().Bold(true).Foreground(purple500),
		Button:       lipgloss.NewStyle().Padding(0, 2).Foreground(white).Background(indigo500),
		Cursor:       lipgloss.NewStyle().Bold(true).Foreground(indigo500),
		Success:      lipgloss.NewStyle().Foreground(green500),
		Done:         lipgloss.NewStyle().Faint(true).Strikethrough(true),
		BoxChecked:   "☑",
		BoxUnchecked: "☐",
		DeleteGlyph:  "✕",
	}
	var card lipgloss.Color
	switch m {
	case Light:
		card = white
		p.App = lipgloss.NewStyle().Foreground(black).Background(gray100)
		p.Card = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(gray300).Padding(1, 2)
		p.Input = lipgloss.NewStyle().Foreground(gray800).Background(gray200).Padding(0, 1)
		p.Row = lipgloss.NewStyle().Foreground(gray800)
		p.Muted = lipgloss.NewStyle().Foreground(gray500)
		p.Delete = lipgloss.NewStyle().Foreground(gray900)
		p.Icon = lipgloss.NewStyle().Foreground(gray800)
		p.IconGlyph = "☾"
	default:
		card = gray800
		p.App = lipgloss.NewStyle().Foreground(white).Background(gray900)
		p.Card = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(gray700).Padding(1, 2)
		p.Input = lipgloss.NewStyle().Foreground(white).Background(gray700).Padding(0, 1)
		p.Row = lipgloss.NewStyle().Foreground(white)
		p.Muted = lipgloss.NewStyle().Foreground(gray500)
		p.Delete = lipgloss.NewStyle().Foreground(gray500)
		p.Icon = lipgloss.NewStyle().Foreground(yellow500)
		p.IconGlyph = "☀"
	}

	// Inner styles end with a reset, so each one repaints the card color.
	p.Card = p.Card.Background(card).BorderBackground(card)
	for _, st := range []*lipgloss.Style{
		&p.Title, &p.Heading, &p.Row, &p.Done, &p.Cursor,
		&p.Success, &p.Muted, &p.Delete, &p.Icon,
	} {
		*st = st.Background(card)
	}
	return p
}
