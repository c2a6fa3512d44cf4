package historypanel

import (
	"strings"
	"testing"
	"time"

	"github.com/llehouerou/carousel/internal/playlist"
	"github.com/llehouerou/carousel/internal/ui"
	"github.com/llehouerou/carousel/internal/ui/testutil"
)

var epoch = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestPanel(h *playlist.History) Model {
	m := New(h)
	m.now = func() time.Time { return epoch }
	m.SetSize(60, ui.HistoryPanelHeight)
	return m
}

func TestView_Empty(t *testing.T) {
	out := testutil.StripANSI(newTestPanel(playlist.NewHistory()).View())

	if !strings.Contains(out, "Recently Played (0/4)") {
		t.Errorf("header missing count:\n%s", out)
	}
	if !strings.Contains(out, "No recently played songs.") {
		t.Errorf("missing empty message:\n%s", out)
	}
}

func TestView_EntriesOldestFirst(t *testing.T) {
	h := playlist.NewHistory()
	h.Record(playlist.NewSong("First", "A", 10), epoch.Add(-10*time.Minute))
	h.Record(playlist.NewSong("Second", "", 10), epoch.Add(-30*time.Second))

	out := testutil.StripANSI(newTestPanel(h).View())

	first := strings.Index(out, "First - A")
	second := strings.Index(out, "Second")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("entries not oldest first:\n%s", out)
	}
	if strings.Contains(out, "Second - ") {
		t.Error("empty artist should not leave a dangling separator")
	}
	if !strings.Contains(testutil.FindLine(out, "First"), "10 minutes ago") {
		t.Errorf("First row = %q, want 10 minutes ago", testutil.FindLine(out, "First"))
	}
	if !strings.Contains(testutil.FindLine(out, "Second"), "30 seconds ago") {
		t.Errorf("Second row = %q, want 30 seconds ago", testutil.FindLine(out, "Second"))
	}
}

func TestView_FullHistoryFits(t *testing.T) {
	h := playlist.NewHistory()
	for _, title := range []string{"A", "B", "C", "D", "E"} {
		h.Record(playlist.NewSong(title, "", 1), epoch)
	}

	out := testutil.StripANSI(newTestPanel(h).View())
	lines := strings.Split(out, "\n")
	if len(lines) != ui.HistoryPanelHeight {
		t.Errorf("View() has %d lines, want %d", len(lines), ui.HistoryPanelHeight)
	}
	if strings.Contains(out, "│A ") {
		t.Error("evicted entry A still shown")
	}
	for _, title := range []string{"B", "C", "D", "E"} {
		if testutil.FindLine(out, "│"+title+" ") == "" {
			t.Errorf("entry %q missing:\n%s", title, out)
		}
	}
}
