// internal/app/commands.go
package app

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/errmsg"
	"github.com/llehouerou/carousel/internal/notify"
	"github.com/llehouerou/carousel/internal/playlist"
)

// importCmd reads tags off the UI goroutine. Paths are walked one after
// another so the results keep their order.
func importCmd(sort playlist.Criterion, paths ...string) tea.Cmd {
	if len(paths) == 0 {
		return nil
	}
	return func() tea.Msg {
		msg := ImportedMsg{Imports: make([]Import, 0, len(paths)), Sort: sort}
		for _, path := range paths {
			songs, err := playlist.CollectFromPath(context.Background(), path)
			if err == nil && len(songs) == 0 {
				err = fmt.Errorf("%w in %s", playlist.ErrNoMusic, path)
			}
			msg.Imports = append(msg.Imports, Import{Path: path, Songs: songs, Err: err})
		}
		return msg
	}
}

// announceCmd sends the "now playing" notification.
func announceCmd(np *notify.NowPlaying, song playlist.Song) tea.Cmd {
	return func() tea.Msg {
		if err := np.Announce(song); err != nil {
			return NotifyErrMsg{Err: err}
		}
		return nil
	}
}

// dismissCmd closes the last "now playing" notification.
func dismissCmd(np *notify.NowPlaying) tea.Cmd {
	return func() tea.Msg {
		if err := np.Dismiss(); err != nil {
			return NotifyErrMsg{Err: err}
		}
		return nil
	}
}

func (m *Model) setStatus(format string, args ...any) {
	m.Status = Status{Text: fmt.Sprintf(format, args...)}
}

func (m *Model) setError(op errmsg.Op, context string, err error) {
	m.Status = Status{Text: errmsg.FormatWith(op, context, err), IsError: true}
}

// notFound reports a missing song without the "Failed to" prefix,
// since it is an expected outcome rather than a failure.
func (m *Model) notFound(err error, text string) bool {
	if !errors.Is(err, playlist.ErrNotFound) {
		return false
	}
	m.Status = Status{Text: text, IsError: true}
	return true
}
