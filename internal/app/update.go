// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/app/handler"
	"github.com/llehouerou/carousel/internal/errmsg"
	"github.com/llehouerou/carousel/internal/ui"
	"github.com/llehouerou/carousel/internal/ui/action"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case action.Msg:
		return m.handleUIAction(msg)

	case ImportedMsg:
		return m.handleImported(msg)

	case NotifyErrMsg:
		m.setError(errmsg.OpNotify, "", msg.Err)
		return m, nil
	}

	// Cursor blink and similar messages belong to the open popup.
	return m, m.Popups.Update(msg)
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.Popups.HandleKey(msg); handled {
		return m, cmd
	}

	if handled, cmd := handler.Chain(msg.String(),
		m.handleQuitKeys,
		m.handleGlobalKeys,
		m.handlePlaybackKeys,
		m.handleEditKeys,
	); handled {
		return m, cmd
	}

	var cmd tea.Cmd
	m.Playlist, cmd = m.Playlist.Update(msg)
	return m, cmd
}

// resize lays out the title, the two panels and the status line.
func (m *Model) resize(width, height int) {
	m.Width = width
	m.Height = height

	playlistHeight := max(height-ui.TitleHeight-ui.StatusHeight-ui.HistoryPanelHeight, ui.PanelOverhead+1)
	m.Playlist.SetSize(width, playlistHeight)
	m.History.SetSize(width, ui.HistoryPanelHeight)
	m.Popups.SetSize(width, height)
}
