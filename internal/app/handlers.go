// internal/app/handlers.go
package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/app/handler"
	"github.com/llehouerou/carousel/internal/keymap"
	"github.com/llehouerou/carousel/internal/playlist"
)

// deleteRowContext is passed through the confirm popup for D.
type deleteRowContext struct {
	Handle playlist.Handle
	Title  string
}

// clearHistoryContext is passed through the confirm popup for c.
type clearHistoryContext struct{}

// handleQuitKeys handles q and ctrl+c.
func (m *Model) handleQuitKeys(key string) handler.Result {
	if m.Keys.Resolve(key) != keymap.ActionQuit {
		return handler.NotHandled
	}
	return handler.Handled(tea.Sequence(dismissCmd(m.NowPlaying), tea.Quit))
}

// handleGlobalKeys opens the help, search and import popups.
func (m *Model) handleGlobalKeys(key string) handler.Result {
	switch m.Keys.Resolve(key) { //nolint:exhaustive // only handling global actions
	case keymap.ActionHelp:
		m.Popups.ShowHelp()
		return handler.HandledNoCmd
	case keymap.ActionSearch:
		return handler.Handled(m.Popups.ShowTextInput(InputSearch, "Find song", "Title or artist"))
	case keymap.ActionImport:
		return handler.Handled(m.Popups.ShowTextInput(InputImport, "Import", "File or folder path"))
	}
	return handler.NotHandled
}

// handlePlaybackKeys moves the playlist cursor.
func (m *Model) handlePlaybackKeys(key string) handler.Result {
	switch m.Keys.Resolve(key) { //nolint:exhaustive // only handling playback actions
	case keymap.ActionNextSong:
		return handler.Handled(m.PlayNext())
	case keymap.ActionPrevSong:
		m.PlayPrev()
		return handler.HandledNoCmd
	case keymap.ActionRewind:
		m.Rewind()
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

// handleEditKeys changes the playlist or history.
func (m *Model) handleEditKeys(key string) handler.Result {
	switch m.Keys.Resolve(key) { //nolint:exhaustive // only handling edit actions
	case keymap.ActionAdd:
		return handler.Handled(m.Popups.ShowSongForm())
	case keymap.ActionDeleteByTitle:
		return handler.Handled(m.Popups.ShowTextInput(InputDelete, "Delete song", "Exact title"))
	case keymap.ActionDeleteRow:
		m.confirmDeleteRow()
		return handler.HandledNoCmd
	case keymap.ActionSortTitle:
		m.SortBy(playlist.ByTitle)
		return handler.HandledNoCmd
	case keymap.ActionSortDuration:
		m.SortBy(playlist.ByDuration)
		return handler.HandledNoCmd
	case keymap.ActionClearHistory:
		if m.Session.History.Len() > 0 {
			m.Popups.ShowConfirm("Clear history?", "Forget all recently played songs", clearHistoryContext{})
		}
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

func (m *Model) confirmDeleteRow() {
	h, ok := m.Playlist.Highlighted()
	if !ok {
		return
	}
	song, ok := m.Session.Playlist.Song(h)
	if !ok {
		return
	}
	m.Popups.ShowConfirm("Delete song?",
		fmt.Sprintf("Remove %s - %s", song.Title, song.Artist),
		deleteRowContext{Handle: h, Title: song.Title})
}
