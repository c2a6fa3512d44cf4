package playlist

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoMusic is returned when an imported path holds no music files.
var ErrNoMusic = errors.New("no music files found")

// Session pairs a playlist with its recently played history.
// The two do not reference each other; Session is the only place
// where playing a song feeds the history.
type Session struct {
	Playlist *Playlist
	History  *History
}

// NewSession creates a session with an empty playlist and history.
func NewSession(opts ...HistoryOption) *Session {
	return &Session{
		Playlist: New(),
		History:  NewHistory(opts...),
	}
}

// PlayNext records the current song in the history, then advances
// the cursor. Returns the new current song, or false if the playlist is empty.
func (s *Session) PlayNext() (Song, bool) {
	current, ok := s.Playlist.Current()
	if !ok {
		return Song{}, false
	}
	s.History.Enqueue(current)
	s.Playlist.Next()
	return s.Playlist.Current()
}

// PlayPrev moves the cursor back without touching the history.
func (s *Session) PlayPrev() (Song, bool) {
	s.Playlist.Prev()
	return s.Playlist.Current()
}

// Replace clears the playlist and adds songs in order. History is kept.
func (s *Session) Replace(songs ...Song) {
	s.Playlist.Clear()
	s.Add(songs...)
}

// Add appends songs to the playlist.
func (s *Session) Add(songs ...Song) {
	for _, song := range songs {
		s.Playlist.AddSong(song)
	}
}

// Delete removes the first song titled exactly title.
func (s *Session) Delete(title string) error {
	if !s.Playlist.Remove(title) {
		return ErrNotFound
	}
	return nil
}

// Find returns the first song whose title or artist equals key, ignoring case.
func (s *Session) Find(key string) (Handle, Song, error) {
	h, ok := s.Playlist.Search(key)
	if !ok {
		return Handle{}, Song{}, ErrNotFound
	}
	song, _ := s.Playlist.Song(h)
	return h, song, nil
}

// Import appends every song found under path and returns how many were added.
func (s *Session) Import(ctx context.Context, path string) (int, error) {
	songs, err := CollectFromPath(ctx, path)
	if err != nil {
		return 0, err
	}
	if len(songs) == 0 {
		return 0, fmt.Errorf("%w in %s", ErrNoMusic, path)
	}
	s.Add(songs...)
	return len(songs), nil
}
