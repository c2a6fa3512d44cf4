// internal/app/playback.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/icons"
	"github.com/llehouerou/carousel/internal/playlist"
)

const msgEmpty = "Playlist is empty."

// PlayNext records the current song in the history and advances.
func (m *Model) PlayNext() tea.Cmd {
	song, ok := m.Session.PlayNext()
	if !ok {
		m.setStatus(msgEmpty)
		return nil
	}
	m.Playlist.FollowCursor()
	m.setStatus("Now playing: %s", describe(song))
	return announceCmd(m.NowPlaying, song)
}

// PlayPrev steps back without recording history.
func (m *Model) PlayPrev() {
	song, ok := m.Session.PlayPrev()
	if !ok {
		m.setStatus(msgEmpty)
		return
	}
	m.Playlist.FollowCursor()
	m.setStatus("Current: %s", describe(song))
}

// Rewind moves the cursor back to the first song.
func (m *Model) Rewind() {
	m.Session.Playlist.Rewind()
	song, ok := m.Session.Playlist.Current()
	if !ok {
		m.setStatus(msgEmpty)
		return
	}
	m.Playlist.FollowCursor()
	m.setStatus("Rewound to %s", describe(song))
}

// JumpTo moves the cursor to h.
func (m *Model) JumpTo(h playlist.Handle) {
	if !m.Session.Playlist.Seek(h) {
		m.Playlist.Sync()
		return
	}
	song, _ := m.Session.Playlist.Current()
	m.Playlist.FollowCursor()
	m.setStatus("Current: %s", describe(song))
}

// SortBy reorders the playlist; the cursor returns to the new head.
func (m *Model) SortBy(c playlist.Criterion) {
	m.Session.Playlist.SortBy(c)
	m.Playlist.FollowCursor()
	m.setStatus("Sorting complete!")
}

// describe formats a song the way the status line shows it.
func describe(s playlist.Song) string {
	text := icons.FormatSong(s.Title)
	if s.Artist != "" {
		text += " - " + icons.FormatArtist(s.Artist)
	}
	return text + " (" + playlist.FormatDuration(s.Duration) + ")"
}
