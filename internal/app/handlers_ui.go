// internal/app/handlers_ui.go
package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/config"
	"github.com/llehouerou/carousel/internal/errmsg"
	"github.com/llehouerou/carousel/internal/playlist"
	"github.com/llehouerou/carousel/internal/ui/action"
	"github.com/llehouerou/carousel/internal/ui/confirm"
	"github.com/llehouerou/carousel/internal/ui/helpbindings"
	"github.com/llehouerou/carousel/internal/ui/playlistpanel"
	"github.com/llehouerou/carousel/internal/ui/songform"
	"github.com/llehouerou/carousel/internal/ui/textinput"
)

// handleUIAction routes action messages to component-specific handlers.
func (m Model) handleUIAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch msg.Source {
	case "playlistpanel":
		return m.handlePlaylistPanelAction(msg.Action)
	case "textinput":
		return m.handleTextInputAction(msg.Action)
	case "songform":
		return m.handleSongFormAction(msg.Action)
	case "confirm":
		return m.handleConfirmAction(msg.Action)
	case "helpbindings":
		if _, ok := msg.Action.(helpbindings.Close); ok {
			m.Popups.HideHelp()
		}
	}
	return m, nil
}

func (m Model) handlePlaylistPanelAction(a action.Action) (tea.Model, tea.Cmd) {
	if jump, ok := a.(playlistpanel.JumpTo); ok {
		m.JumpTo(jump.Handle)
	}
	return m, nil
}

func (m Model) handleTextInputAction(a action.Action) (tea.Model, tea.Cmd) {
	result, ok := a.(textinput.Result)
	if !ok {
		return m, nil
	}
	mode, _ := result.Context.(InputMode)
	m.Popups.HideTextInput()
	if result.Canceled || result.Text == "" {
		return m, nil
	}

	switch mode {
	case InputSearch:
		m.find(result.Text)
	case InputDelete:
		m.deleteByTitle(result.Text)
	case InputImport:
		path := config.ExpandPath(result.Text)
		m.setStatus("Importing %s...", path)
		return m, importCmd(playlist.SortNone, path)
	case InputNone:
	}
	return m, nil
}

func (m *Model) find(key string) {
	h, song, err := m.Session.Find(key)
	if err != nil {
		if !m.notFound(err, "Song NOT found.") {
			m.setError(errmsg.OpSongSearch, key, err)
		}
		return
	}
	m.Playlist.Highlight(h)
	m.setStatus("Song Found: %s - %s (%d sec)", song.Title, song.Artist, song.Seconds())
}

func (m *Model) deleteByTitle(title string) {
	if err := m.Session.Delete(title); err != nil {
		if !m.notFound(err, "Song not found!") {
			m.setError(errmsg.OpSongDelete, title, err)
		}
		return
	}
	m.Playlist.Sync()
	m.setStatus("Song deleted!")
}

func (m Model) handleSongFormAction(a action.Action) (tea.Model, tea.Cmd) {
	result, ok := a.(songform.Result)
	if !ok {
		return m, nil
	}
	m.Popups.HideSongForm()
	if result.Canceled {
		return m, nil
	}

	m.Session.Add(result.Song)
	m.Playlist.Sync()
	m.setStatus("Added %s", describe(result.Song))
	return m, nil
}

func (m Model) handleConfirmAction(a action.Action) (tea.Model, tea.Cmd) {
	result, ok := a.(confirm.Result)
	if !ok || !result.Confirmed {
		return m, nil
	}

	switch ctx := result.Context.(type) {
	case deleteRowContext:
		if !m.Session.Playlist.Delete(ctx.Handle) {
			m.setError(errmsg.OpSongDelete, ctx.Title, playlist.ErrNotFound)
			return m, nil
		}
		m.Playlist.Sync()
		m.setStatus("Song deleted!")
	case clearHistoryContext:
		m.Session.History.Clear()
		m.setStatus("History cleared.")
	}
	return m, nil
}

// handleImported adds songs collected by importCmd in path order.
// The status line reports the first failure, if any.
func (m Model) handleImported(msg ImportedMsg) (tea.Model, tea.Cmd) {
	var failed *Import
	added := 0
	for i := range msg.Imports {
		imp := &msg.Imports[i]
		if imp.Err != nil {
			if failed == nil {
				failed = imp
			}
			continue
		}
		m.Session.Add(imp.Songs...)
		added += len(imp.Songs)
	}

	if added > 0 {
		if msg.Sort != playlist.SortNone {
			m.Session.Playlist.SortBy(msg.Sort)
			m.Playlist.FollowCursor()
		} else {
			m.Playlist.Sync()
		}
	}

	switch {
	case failed != nil && errors.Is(failed.Err, playlist.ErrNoMusic):
		m.Status = Status{Text: fmt.Sprintf("No music files in %s", failed.Path), IsError: true}
	case failed != nil:
		m.setError(errmsg.OpImportPath, failed.Path, failed.Err)
	case len(msg.Imports) == 1:
		m.setStatus("Imported %d songs from %s", added, msg.Imports[0].Path)
	default:
		m.setStatus("Imported %d songs from %d sources", added, len(msg.Imports))
	}
	return m, nil
}
