// internal/app/view.go
package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/carousel/internal/keymap"
	"github.com/llehouerou/carousel/internal/ui/render"
	"github.com/llehouerou/carousel/internal/ui/styles"
)

// footerHints are the actions advertised in the status line.
var footerHints = []struct {
	action keymap.Action
	label  string
}{
	{keymap.ActionNextSong, "next"},
	{keymap.ActionPrevSong, "prev"},
	{keymap.ActionAdd, "add"},
	{keymap.ActionSearch, "find"},
	{keymap.ActionHelp, "help"},
}

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	view := strings.Join([]string{
		m.renderTitle(),
		m.Playlist.View(),
		m.History.View(),
		m.renderStatus(),
	}, "\n")

	view = m.Popups.RenderOverlay(view)
	return enforceHeight(view, m.Height)
}

func (m Model) renderTitle() string {
	t := styles.T()
	return " " + styles.ApplyBoldGradient("carousel", t.Primary, t.Secondary)
}

func (m Model) renderStatus() string {
	s := styles.T().S()

	hints := make([]string, 0, len(footerHints))
	hintsWidth := 0
	for _, h := range footerHints {
		keys := m.Keys.Hint(h.action)
		hints = append(hints, s.Key.Render(keys)+" "+s.Subtle.Render(h.label))
		hintsWidth += lipgloss.Width(keys) + 1 + lipgloss.Width(h.label)
	}
	hintsWidth += 2 * (len(hints) - 1)
	right := strings.Join(hints, "  ")

	leftWidth := max(m.Width-hintsWidth-2, 0)
	text := render.TruncateAndPad(" "+m.Status.Text, leftWidth)
	style := s.Base
	if m.Status.IsError {
		style = s.Error
	}
	return style.Render(text) + " " + right + " "
}

// enforceHeight ensures the view has exactly the specified number of lines.
func enforceHeight(view string, targetHeight int) string {
	lines := strings.Split(view, "\n")
	for len(lines) < targetHeight {
		lines = append(lines, "")
	}
	return strings.Join(lines[:targetHeight], "\n")
}
