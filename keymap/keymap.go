package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type Mapping struct {
	PrevTonic   key.Binding
	NextTonic   key.Binding
	PrevMode    key.Binding
	NextMode    key.Binding
	ToggleKind  key.Binding
	Degree      key.Binding
	Counterpart key.Binding
	PlayScale   key.Binding
	PlayChord   key.Binding
	Help        key.Binding
	Quit        key.Binding
}

var DefaultMapping = Mapping{
	PrevTonic: key.NewBinding(
		key.WithKeys(tea.KeyLeft.String(), "h"),
		key.WithHelp("←/h", "prev tonic"),
	),
	NextTonic: key.NewBinding(
		key.WithKeys(tea.KeyRight.String(), "l"),
		key.WithHelp("→/l", "next tonic"),
	),
	PrevMode: key.NewBinding(
		key.WithKeys(tea.KeyUp.String(), "k"),
		key.WithHelp("↑/k", "prev mode"),
	),
	NextMode: key.NewBinding(
		key.WithKeys(tea.KeyDown.String(), "j"),
		key.WithHelp("↓/j", "next mode"),
	),
	ToggleKind: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "triads/sevenths"),
	),
	Degree: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7"),
		key.WithHelp("1-7", "select chord"),
	),
	Counterpart: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "relative mode"),
	),
	PlayScale: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "play scale"),
	),
	PlayChord: key.NewBinding(
		key.WithKeys(tea.KeyEnter.String(), " "),
		key.WithHelp("enter", "play chord"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", tea.KeyCtrlC.String()),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (m Mapping) ShortHelp() []key.Binding {
	return []key.Binding{m.NextTonic, m.NextMode, m.ToggleKind, m.PlayChord, m.Help, m.Quit}
}

// FullHelp implements help.KeyMap.
func (m Mapping) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.PrevTonic, m.NextTonic, m.PrevMode, m.NextMode},
		{m.ToggleKind, m.Degree, m.Counterpart},
		{m.PlayScale, m.PlayChord, m.Help, m.Quit},
	}
}
