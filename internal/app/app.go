// internal/app/app.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/config"
	"github.com/llehouerou/carousel/internal/keymap"
	"github.com/llehouerou/carousel/internal/notify"
	"github.com/llehouerou/carousel/internal/playlist"
	"github.com/llehouerou/carousel/internal/ui/historypanel"
	"github.com/llehouerou/carousel/internal/ui/playlistpanel"
)

// Model is the root application model containing all state.
type Model struct {
	Session    *playlist.Session
	Keys       *keymap.Resolver
	Playlist   playlistpanel.Model
	History    historypanel.Model
	Popups     PopupManager
	NowPlaying *notify.NowPlaying
	Status     Status
	Sources    []string
	Sort       playlist.Criterion
	Width      int
	Height     int
}

// New creates the application model. Config sources are imported by Init.
func New(cfg *config.Config, session *playlist.Session, notifier notify.Notifier) Model {
	if !cfg.Notifications || notifier == nil {
		notifier = notify.Disabled()
	}

	pl := playlistpanel.New(session.Playlist)
	pl.SetFocused(true)

	return Model{
		Session:    session,
		Keys:       keymap.NewResolver(keymap.Bindings),
		Playlist:   pl,
		History:    historypanel.New(session.History),
		Popups:     NewPopupManager(),
		NowPlaying: notify.NewNowPlaying(notifier),
		Sources:    cfg.Sources,
		Sort:       cfg.SortCriterion(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return importCmd(m.Sort, m.Sources...)
}
