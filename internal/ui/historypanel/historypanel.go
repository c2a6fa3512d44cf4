// Package historypanel renders the recently played songs.
package historypanel

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/carousel/internal/icons"
	"github.com/llehouerou/carousel/internal/playlist"
	"github.com/llehouerou/carousel/internal/ui"
	"github.com/llehouerou/carousel/internal/ui/render"
	"github.com/llehouerou/carousel/internal/ui/styles"
)

// Model shows history entries oldest first with how long ago each played.
type Model struct {
	ui.Base
	history *playlist.History
	now     func() time.Time
}

// New creates a panel over h.
func New(h *playlist.History) Model {
	return Model{history: h, now: time.Now}
}

// View renders the history panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	s := styles.T().S()
	innerWidth := m.Width() - ui.BorderHeight
	listHeight := m.ListHeight(ui.PanelOverhead)

	header := icons.FormatHistory(fmt.Sprintf("Recently Played (%d/%d)", m.history.Len(), m.history.Cap()))
	lines := []string{
		s.Header.Render(render.TruncateAndPad(header, innerWidth)),
		render.Separator(innerWidth),
	}

	if m.history.Len() == 0 {
		lines = append(lines, s.Muted.Render(render.TruncateAndPad("No recently played songs.", innerWidth)))
	}
	now := m.now()
	for e := range m.history.All() {
		lines = append(lines, m.renderEntry(e, now, innerWidth))
	}

	total := listHeight + ui.HeaderHeight
	for len(lines) < total {
		lines = append(lines, render.EmptyLine(innerWidth))
	}

	return styles.PanelStyle(false).
		Width(innerWidth).
		Render(strings.Join(lines[:total], "\n"))
}

func (m Model) renderEntry(e playlist.Entry, now time.Time, width int) string {
	s := styles.T().S()
	ago := humanize.RelTime(e.PlayedAt, now, "ago", "from now")

	label := e.Song.Title
	if e.Song.Artist != "" {
		label += " - " + e.Song.Artist
	}
	labelWidth := max(width-lipgloss.Width(ago)-1, 0)
	return s.Base.Render(render.TruncateAndPad(label, labelWidth)) + " " + s.Muted.Render(ago)
}
