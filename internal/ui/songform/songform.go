// Package songform provides the popup used to add a song by hand.
package songform

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/playlist"
	"github.com/llehouerou/carousel/internal/ui"
	"github.com/llehouerou/carousel/internal/ui/popup"
	"github.com/llehouerou/carousel/internal/ui/render"
	"github.com/llehouerou/carousel/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

const (
	fieldTitle = iota
	fieldArtist
	fieldSeconds
	fieldCount
)

var labels = [fieldCount]string{"Title", "Artist", "Seconds"}

const (
	labelWidth  = 8
	inputMargin = 14 // border, padding and label gap
)

var (
	errNoTitle = errors.New("title is required")
	errSeconds = errors.New("seconds must be a whole number")
)

// Model is a three-field form: title, artist and duration in seconds.
type Model struct {
	ui.Base
	inputs [fieldCount]textinput.Model
	focus  int
	err    error
}

// New creates an empty form with the title field focused.
func New() Model {
	var m Model
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 256
		m.inputs[i] = ti
	}
	m.inputs[fieldTitle].Placeholder = "Song title"
	m.inputs[fieldArtist].Placeholder = "Artist"
	m.inputs[fieldSeconds].Placeholder = "180"
	m.inputs[fieldSeconds].CharLimit = 10
	return m
}

// SetSize implements popup.Popup.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	for i := range m.inputs {
		m.inputs[i].Width = max(min(width-inputMargin-labelWidth, 40), 10)
	}
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.inputs[m.focus].Focus(), textinput.Blink)
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, func() tea.Msg { return ActionMsg(Result{Canceled: true}) }
		case "tab", "down":
			return m, m.setFocus((m.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		case "enter":
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

// submit validates the fields. On error the form stays open with the
// offending field focused.
func (m *Model) submit() tea.Cmd {
	song, field, err := m.song()
	m.err = err
	if err != nil {
		return m.setFocus(field)
	}
	return func() tea.Msg { return ActionMsg(Result{Song: song}) }
}

func (m *Model) song() (playlist.Song, int, error) {
	title := strings.TrimSpace(m.inputs[fieldTitle].Value())
	if title == "" {
		return playlist.Song{}, fieldTitle, errNoTitle
	}
	artist := strings.TrimSpace(m.inputs[fieldArtist].Value())

	secs := 0
	if v := strings.TrimSpace(m.inputs[fieldSeconds].Value()); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return playlist.Song{}, fieldSeconds, errSeconds
		}
		secs = n
	}
	return playlist.NewSong(title, artist, secs), 0, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	s := styles.T().S()
	var b strings.Builder
	b.WriteString(s.Title.Render("Add song"))
	b.WriteString("\n\n")
	for i, in := range m.inputs {
		label := render.Pad(labels[i], labelWidth)
		if i == m.focus {
			b.WriteString(s.Key.Render(label))
		} else {
			b.WriteString(s.Muted.Render(label))
		}
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(s.Error.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(s.Subtle.Render("Tab: next field, Enter: add, Esc: cancel"))
	return b.String()
}
