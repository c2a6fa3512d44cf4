// Package playlistpanel renders the playlist and its highlight.
//
// The highlight is separate from the playlist cursor: moving it with j/k
// never plays anything, and enter asks the app to move the cursor there.
package playlistpanel

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/keymap"
	"github.com/llehouerou/carousel/internal/playlist"
	"github.com/llehouerou/carousel/internal/ui"
	"github.com/llehouerou/carousel/internal/ui/cursor"
)

var keys = keymap.NewResolver(keymap.ByContext("playlist"))

// Model represents the playlist panel state.
type Model struct {
	ui.Base
	playlist    *playlist.Playlist
	cursor      cursor.Cursor
	highlighted playlist.Handle
}

// New creates a panel over p with the highlight on the first song.
func New(p *playlist.Playlist) Model {
	m := Model{
		playlist: p,
		cursor:   cursor.New(ui.ScrollMargin),
	}
	m.Sync()
	return m
}

// SetSize sets the panel dimensions and keeps the highlight in view.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.cursor.EnsureVisible(m.playlist.Len(), m.listHeight())
}

// Highlighted returns the highlighted song's handle.
func (m Model) Highlighted() (playlist.Handle, bool) {
	return m.highlighted, !m.highlighted.IsZero()
}

// Highlight moves the highlight to h. Returns false if h is stale.
func (m *Model) Highlight(h playlist.Handle) bool {
	idx := m.playlist.Index(h)
	if idx < 0 {
		return false
	}
	m.highlighted = h
	m.cursor.Jump(idx, m.playlist.Len(), m.listHeight())
	return true
}

// FollowCursor moves the highlight to the playlist cursor.
func (m *Model) FollowCursor() {
	if h, ok := m.playlist.Cursor(); ok {
		m.Highlight(h)
		return
	}
	m.Sync()
}

// Sync re-reads the playlist after it changed. The highlight stays on
// the same song if it still exists, otherwise on the same row.
func (m *Model) Sync() {
	if m.Highlight(m.highlighted) {
		return
	}
	m.cursor.ClampToBounds(m.playlist.Len())
	m.selectRow(m.cursor.Pos())
}

// Update handles highlight navigation while the panel is focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.IsFocused() {
		return m, nil
	}

	n, height := m.playlist.Len(), m.listHeight()
	switch keys.Resolve(keyMsg.String()) { //nolint:exhaustive // only handling highlight actions
	case keymap.ActionMoveDown:
		m.cursor.Move(1, n, height)
	case keymap.ActionMoveUp:
		m.cursor.Move(-1, n, height)
	case keymap.ActionJumpStart:
		m.cursor.JumpStart()
	case keymap.ActionJumpEnd:
		m.cursor.JumpEnd(n, height)
	case keymap.ActionSelect:
		if h, ok := m.Highlighted(); ok {
			return m, func() tea.Msg { return ActionMsg(JumpTo{Handle: h}) }
		}
		return m, nil
	default:
		return m, nil
	}

	m.selectRow(m.cursor.Pos())
	return m, nil
}

// selectRow points the highlight at the song in row i.
func (m *Model) selectRow(i int) {
	m.highlighted = playlist.Handle{}
	row := 0
	for h := range m.playlist.All() {
		if row == i {
			m.highlighted = h
			return
		}
		row++
	}
}

func (m Model) listHeight() int {
	return m.ListHeight(ui.PanelOverhead)
}
