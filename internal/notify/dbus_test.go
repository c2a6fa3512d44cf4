//go:build linux

package notify

import (
	"os"
	"testing"

	"github.com/llehouerou/carousel/internal/playlist"
)

func requireSessionBus(t *testing.T) {
	t.Helper()
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no D-Bus session available")
	}
}

func TestHints(t *testing.T) {
	h := hints(Notification{Urgency: UrgencyCritical})

	if got := h["urgency"].Value(); got != byte(UrgencyCritical) {
		t.Errorf("urgency hint = %v, want %d", got, UrgencyCritical)
	}
	if got := h["desktop-entry"].Value(); got != "carousel" {
		t.Errorf("desktop-entry hint = %v, want carousel", got)
	}
}

func TestNewDBusNotifier(t *testing.T) {
	requireSessionBus(t)

	notifier, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if notifier == nil {
		t.Fatal("New() returned nil notifier")
	}
}

func TestNowPlayingOverDBus(t *testing.T) {
	requireSessionBus(t)

	notifier, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	np := NewNowPlaying(notifier)
	if err := np.Announce(playlist.NewSong("Song A", "Artist1", 180)); err != nil {
		t.Fatalf("Announce() error: %v", err)
	}
	first := np.lastID

	if err := np.Announce(playlist.NewSong("Song B", "Artist2", 200)); err != nil {
		t.Fatalf("second Announce() error: %v", err)
	}
	if first != 0 && np.lastID != first {
		t.Errorf("replacing notification got id=%d, want id=%d", np.lastID, first)
	}

	if err := np.Dismiss(); err != nil {
		t.Errorf("Dismiss() error: %v", err)
	}
}
