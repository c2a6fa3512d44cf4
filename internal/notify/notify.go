// Package notify provides desktop notifications via D-Bus.
package notify

import (
	"sync"

	"github.com/llehouerou/carousel/internal/playlist"
)

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// nowPlayingTimeout is how long a "now playing" notification stays visible, in ms.
const nowPlayingTimeout = 4000

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// Disabled returns a notifier that drops every notification.
func Disabled() Notifier {
	return &stubNotifier{}
}

// NowPlaying announces the current song, replacing its previous
// notification so only one stays on screen.
type NowPlaying struct {
	mu       sync.Mutex
	notifier Notifier
	lastID   uint32
}

// NewNowPlaying wraps a notifier.
func NewNowPlaying(n Notifier) *NowPlaying {
	return &NowPlaying{notifier: n}
}

// Announce sends "Now playing" for s.
func (p *NowPlaying) Announce(s playlist.Song) error {
	body := s.Title
	if s.Artist != "" {
		body += " - " + s.Artist
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	id, err := p.notifier.Notify(Notification{
		Title:      "Now playing",
		Body:       body,
		Icon:       "audio-x-generic",
		Timeout:    nowPlayingTimeout,
		ReplacesID: p.lastID,
		Urgency:    UrgencyLow,
	})
	if err != nil {
		return err
	}
	p.lastID = id
	return nil
}

// Dismiss closes the last announcement, if any.
func (p *NowPlaying) Dismiss() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.lastID == 0 {
		return nil
	}
	id := p.lastID
	p.lastID = 0
	return p.notifier.Close(id)
}
