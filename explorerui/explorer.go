package explorerui

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/faiface/beep"
	"github.com/rapidmidiex/rmxmodes/chord"
	"github.com/rapidmidiex/rmxmodes/keymap"
	"github.com/rapidmidiex/rmxmodes/midi"
	"github.com/rapidmidiex/rmxmodes/mode"
	"github.com/rapidmidiex/rmxmodes/pitch"
	"github.com/rapidmidiex/rmxmodes/relative"
	"github.com/rapidmidiex/rmxmodes/rmxerr"
	"github.com/rapidmidiex/rmxmodes/scale"
	"github.com/rapidmidiex/rmxmodes/styles"
	"github.com/rapidmidiex/rmxmodes/vpiano"
	"golang.org/x/term"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	docStyle = styles.DocStyle

	keyBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "-",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "╰",
		BottomRight: "╯",
	}

	pianoKeyStyle = lipgloss.NewStyle().
			Align(lipgloss.Center).
			Border(keyBorder, true).
			BorderForeground(subtle).
			Width(5)
	scaleKeyStyle = pianoKeyStyle.Copy().BorderForeground(special)
	chordKeyStyle = pianoKeyStyle.Copy().BorderForeground(highlight).Bold(true)
)

type (
	// Output plays audio. *midi.Speaker is the real one.
	Output interface {
		Play(s beep.Streamer) error
	}

	Options struct {
		// Starting mode name. Defaults to the first mode of the catalog.
		Mode  string
		Tonic pitch.Note
		Kind  chord.Kind
		// Playback keys do nothing unless both Voice and Output are set.
		Voice  midi.Voice
		Output Output
		BPM    float64
		Octave int
	}

	// PlayedMsg is sent when a scale or chord finished playing.
	PlayedMsg struct {
		What string
	}

	Model struct {
		cat     *mode.Catalog
		modeIdx int
		tonic   pitch.Note
		kind    chord.Kind
		// Selected chord, 0-6.
		degree int

		voice  midi.Voice
		out    Output
		beat   time.Duration
		octave int

		chordTable table.Model
		help       help.Model
		status     string
		err        error

		log *log.Logger
	}
)

func New(cat *mode.Catalog, o Options) (Model, error) {
	idx := 0
	if o.Mode != "" {
		if _, err := cat.Lookup(o.Mode); err != nil {
			return Model{}, err
		}
		idx = cat.Index(o.Mode)
	}
	if o.BPM <= 0 {
		o.BPM = 120
	}
	if o.Octave == 0 {
		o.Octave = midi.DefaultOctave
	}

	m := Model{
		cat:     cat,
		modeIdx: idx,
		tonic:   o.Tonic,
		kind:    o.Kind,
		voice:   o.Voice,
		out:     o.Output,
		beat:    time.Duration(float64(time.Minute) / o.BPM),
		octave:  o.Octave,
		help:    help.New(),
		log:     log.Default(),
	}
	m.chordTable = m.makeChordTable()
	return m, nil
}

func (m Model) Mode() *mode.Mode {
	return m.cat.At(m.modeIdx)
}

func (m Model) Tonic() pitch.Note {
	return m.tonic
}

func (m Model) Kind() chord.Kind {
	return m.kind
}

func (m Model) Degree() int {
	return m.degree
}

func (m Model) Chords() []chord.Chord {
	return chord.Diatonic(m.Mode(), m.tonic, m.kind)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km := keymap.DefaultMapping

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case PlayedMsg:
		m.status = "Played " + msg.What
		m.err = nil

	case rmxerr.ErrMsg:
		m.err = msg.Err

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, km.Quit):
			return m, tea.Quit

		case key.Matches(msg, km.PrevTonic):
			m.tonic = pitch.CommonTonic(m.tonic.Class.Add(-1))
		case key.Matches(msg, km.NextTonic):
			m.tonic = pitch.CommonTonic(m.tonic.Class.Add(1))
		case key.Matches(msg, km.PrevMode):
			m.modeIdx = pitch.Mod(m.modeIdx-1, m.cat.Len())
		case key.Matches(msg, km.NextMode):
			m.modeIdx = pitch.Mod(m.modeIdx+1, m.cat.Len())

		case key.Matches(msg, km.ToggleKind):
			if m.kind == chord.Triad {
				m.kind = chord.Seventh
			} else {
				m.kind = chord.Triad
			}
		case key.Matches(msg, km.Degree):
			m.degree = int(msg.String()[0] - '1')

		case key.Matches(msg, km.Counterpart):
			r, ok := relative.Counterpart(m.cat, m.Mode(), m.tonic.Class)
			if !ok {
				m.status = fmt.Sprintf("%s has no relative mode", m.Mode().Name)
				return m, nil
			}
			m.modeIdx = m.cat.Index(r.Mode.Name)
			m.tonic = r.Tonic

		case key.Matches(msg, km.PlayScale):
			return m, m.playScale()
		case key.Matches(msg, km.PlayChord):
			return m, m.playChord()

		case key.Matches(msg, km.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		m.status = ""
		m.chordTable = m.makeChordTable()
	}

	return m, nil
}

func (m Model) View() string {
	physicalWidth, _, _ := term.GetSize(int(os.Stdout.Fd()))
	doc := strings.Builder{}
	md := m.Mode()
	spelled := scale.Build(md, m.tonic)

	// Header
	{
		title := styles.TitleStyle.Render(m.tonic.Name() + " " + md.Name)
		info := styles.SubtleText.Render(md.Category + "  " + md.FormulaString())
		doc.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, title, " ", info) + "\n\n")

		about := md.Description
		if md.Characteristic != "" {
			about += "\nCharacteristic: " + md.Characteristic
		}
		if md.Derivation != nil && len(md.CharacteristicDegrees) > 0 {
			about += " (vs " + md.Derivation.Name + ")"
		}
		doc.WriteString(styles.MessageText.Width(styles.Width).Render(about) + "\n")
	}

	// Keyboard
	{
		keys := vpiano.MakeOctaveNotes(vpiano.C4, spelled)
		var set scale.PitchSet
		if chords := m.Chords(); m.degree < len(chords) {
			set = scale.SetOf(chords[m.degree].Notes)
		}
		doc.WriteString(renderKeyboard(keys.Highlight(set)) + "\n")
	}

	// Scale
	doc.WriteString(m.renderScale(spelled) + "\n\n")

	// Chords
	doc.WriteString(styles.BaseStyle.Render(m.chordTable.View()) + "\n")

	// Relative modes
	doc.WriteString(m.renderRelatives() + "\n\n")

	// Status
	if m.err != nil {
		doc.WriteString(styles.RenderError(rmxerr.Describe(m.err)) + "\n")
	} else if m.status != "" {
		doc.WriteString(styles.StatusStyle.Render(m.status) + "\n")
	}

	// Help menu
	doc.WriteString(styles.HelpMenu.Render(m.help.View(keymap.DefaultMapping)))

	if physicalWidth > 0 {
		docStyle = styles.DocStyle.MaxWidth(physicalWidth)
	}
	return docStyle.Render(doc.String())
}

func renderKeyboard(keys vpiano.Notes) string {
	rendered := make([]string, 0, len(keys))
	for _, k := range keys {
		style := pianoKeyStyle
		label := k.Name
		switch {
		case k.Highlighted:
			style = chordKeyStyle
		case k.InScale:
			style = scaleKeyStyle
		case k.IsAccidental:
			label = "·"
		}
		degree := " "
		if k.InScale {
			degree = fmt.Sprint(k.Degree)
		}
		rendered = append(rendered, style.Render(label+"\n"+degree))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderScale(spelled []*pitch.Note) string {
	md := m.Mode()
	parts := make([]string, len(spelled))
	for i, n := range spelled {
		switch {
		case n == nil:
			parts[i] = styles.UnresolvedStyle.Render("?")
		case md.IsCharacteristic(i + 1):
			parts[i] = styles.CharacteristicStyle.Render(n.Name())
		default:
			parts[i] = styles.TextStyle.Render(n.Name())
		}
	}
	line := "Scale: " + strings.Join(parts, " ")
	if !scale.Resolved(spelled) {
		line += styles.SubtleText.Render("  (some degrees cannot be spelled from " + m.tonic.Name() + ")")
	}
	return line
}

func (m Model) renderRelatives() string {
	r, ok := relative.Counterpart(m.cat, m.Mode(), m.tonic.Class)
	if !ok {
		return styles.SubtleText.Render("No relative mode")
	}
	line := "Relative: " + styles.BoldStyle.Render(r.Tonic.Name()+" "+r.Mode.Name)

	sibs := relative.Siblings(m.cat, m.Mode(), m.tonic.Class)
	names := make([]string, 0, len(sibs))
	for _, s := range sibs {
		names = append(names, s.Tonic.Name()+" "+s.Mode.Name)
	}
	return line + "\n" + styles.SubtleText.Render("Same notes: "+strings.Join(names, ", "))
}

func (m Model) makeChordTable() table.Model {
	columns := []table.Column{
		{Title: "", Width: 1},
		{Title: "#", Width: 2},
		{Title: "Chord", Width: 9},
		{Title: "Numeral", Width: 8},
		{Title: "Quality", Width: 18},
		{Title: "Notes", Width: 14},
	}

	rows := make([]table.Row, 0, mode.Degrees)
	for i, c := range m.Chords() {
		marker := ""
		if i == m.degree {
			marker = "▶"
		}
		names := make([]string, len(c.Notes))
		for j, n := range c.Notes {
			names[j] = n.Name()
		}
		row := table.Row{marker, fmt.Sprint(i + 1), c.Name, c.Roman, c.Quality.String(), strings.Join(names, " ")}
		rows = append(rows, row)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(mode.Degrees+2),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	// The selected chord is marked in its own column.
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

// Commands
func (m Model) playScale() tea.Cmd {
	if m.voice == nil || m.out == nil {
		return nil
	}
	md := m.Mode()
	notes := append(scale.BuildAbsolute(md, m.tonic), scale.Octave(m.tonic))
	keys := midi.ScaleKeys(notes, m.octave)
	what := m.tonic.Name() + " " + md.Name
	voice, out, beat, logger := m.voice, m.out, m.beat, m.log

	return func() tea.Msg {
		streamers := make([]beep.Streamer, 0, len(keys))
		for _, k := range keys {
			s, err := voice.Streamer([]int{k}, beat)
			if err != nil {
				return rmxerr.ErrMsg{Err: err}
			}
			streamers = append(streamers, s)
		}
		logger.Printf("play scale %s %v", what, keys)
		if err := out.Play(beep.Seq(streamers...)); err != nil {
			return rmxerr.ErrMsg{Err: err}
		}
		return PlayedMsg{What: what}
	}
}

func (m Model) playChord() tea.Cmd {
	if m.voice == nil || m.out == nil {
		return nil
	}
	c := m.Chords()[m.degree]
	keys := midi.ChordKeys(c, m.octave)
	if len(keys) == 0 {
		return nil
	}
	voice, out, d, logger := m.voice, m.out, 2*m.beat, m.log

	return func() tea.Msg {
		s, err := voice.Streamer(keys, d)
		if err != nil {
			return rmxerr.ErrMsg{Err: err}
		}
		logger.Printf("play chord %s %v", c.Name, keys)
		if err := out.Play(s); err != nil {
			return rmxerr.ErrMsg{Err: err}
		}
		return PlayedMsg{What: c.Name}
	}
}
