package playlistpanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/carousel/internal/icons"
	"github.com/llehouerou/carousel/internal/playlist"
	"github.com/llehouerou/carousel/internal/ui"
	"github.com/llehouerou/carousel/internal/ui/render"
	"github.com/llehouerou/carousel/internal/ui/styles"
)

const durationWidth = 7 // " -MM:SS"

// View renders the playlist panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	innerWidth := m.Width() - ui.BorderHeight
	content := m.renderHeader(innerWidth) + "\n" +
		render.Separator(innerWidth) + "\n" +
		m.renderSongs(innerWidth, m.listHeight())

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(content)
}

// renderHeader shows the cursor position and the total running time.
func (m Model) renderHeader(innerWidth int) string {
	s := styles.T().S()
	left := icons.FormatPlaylist(fmt.Sprintf("Playlist (%d/%d)", m.playlist.CursorIndex()+1, m.playlist.Len()))
	right := icons.FormatDuration(playlist.FormatDuration(m.playlist.TotalDuration()))

	leftWidth := max(innerWidth-lipgloss.Width(right)-1, 0)
	return s.Header.Render(render.TruncateAndPad(left, leftWidth)) + " " + s.Muted.Render(right)
}

func (m Model) renderSongs(innerWidth, listHeight int) string {
	lines := make([]string, 0, listHeight)
	if m.playlist.IsEmpty() {
		empty := render.TruncateAndPad("Playlist is empty.", innerWidth)
		lines = append(lines, styles.T().S().Muted.Render(empty))
	}

	current, _ := m.playlist.Cursor()
	start, end := m.cursor.VisibleRange(m.playlist.Len(), listHeight)
	row := 0
	for h, song := range m.playlist.All() {
		if row >= end {
			break
		}
		if row >= start {
			lines = append(lines, m.renderSong(h, song, h == current, innerWidth))
		}
		row++
	}

	for len(lines) < listHeight {
		lines = append(lines, render.EmptyLine(innerWidth))
	}
	return strings.Join(lines[:listHeight], "\n")
}

// renderSong renders one row: marker, title, artist and duration.
func (m Model) renderSong(h playlist.Handle, song playlist.Song, isCurrent bool, width int) string {
	prefix := "  "
	if isCurrent {
		prefix = render.Pad(icons.Current(), 2)
	}

	contentWidth := max(width-2-durationWidth, 0)
	titleWidth := contentWidth / 2
	artistWidth := contentWidth - titleWidth

	line := prefix +
		render.TruncateAndPad(song.Title, titleWidth) +
		render.TruncateAndPad(song.Artist, artistWidth) +
		fmt.Sprintf("%*s", durationWidth, playlist.FormatDuration(song.Duration))

	return m.songStyle(h == m.highlighted, isCurrent).Render(line)
}

func (m Model) songStyle(isHighlighted, isCurrent bool) lipgloss.Style {
	s := styles.T().S()
	isCursor := isHighlighted && m.IsFocused()

	switch {
	case isCursor && isCurrent:
		return s.Cursor.Inherit(s.Current)
	case isCursor:
		return s.Cursor.Inherit(s.Base)
	case isCurrent:
		return s.Current
	default:
		return s.Base
	}
}
