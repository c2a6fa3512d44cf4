package playlist

import (
	"iter"
	"time"
)

// HistoryCapacity is the number of recently played songs kept.
const HistoryCapacity = 4

// Entry is a recently played song. It holds a copy of the song,
// so it stays readable after the song leaves the playlist.
type Entry struct {
	Song     Song
	PlayedAt time.Time
}

// History is a fixed-capacity ring of recently played songs.
// When full, recording a song evicts the oldest entry.
type History struct {
	entries [HistoryCapacity]Entry
	front   int // index of the oldest entry
	count   int
	now     func() time.Time
}

// HistoryOption configures a History.
type HistoryOption func(*History)

// WithClock sets the time source used by Enqueue.
func WithClock(now func() time.Time) HistoryOption {
	return func(h *History) {
		h.now = now
	}
}

// NewHistory creates an empty history.
func NewHistory(opts ...HistoryOption) *History {
	h := &History{now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Enqueue records s as played now.
func (h *History) Enqueue(s Song) {
	h.Record(s, h.now())
}

// Record records s as played at the given time.
func (h *History) Record(s Song, at time.Time) {
	if h.count == HistoryCapacity {
		h.front = (h.front + 1) % HistoryCapacity
		h.count--
	}
	rear := (h.front + h.count) % HistoryCapacity
	h.entries[rear] = Entry{Song: s, PlayedAt: at}
	h.count++
}

// Len returns the number of entries held.
func (h *History) Len() int {
	return h.count
}

// Cap returns the maximum number of entries.
func (h *History) Cap() int {
	return HistoryCapacity
}

// All iterates over entries from oldest to newest.
func (h *History) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for i := range h.count {
			if !yield(h.entries[(h.front+i)%HistoryCapacity]) {
				return
			}
		}
	}
}

// Entries returns a copy of the entries from oldest to newest.
func (h *History) Entries() []Entry {
	result := make([]Entry, 0, h.count)
	for e := range h.All() {
		result = append(result, e)
	}
	return result
}

// Latest returns the most recently recorded entry.
func (h *History) Latest() (Entry, bool) {
	if h.count == 0 {
		return Entry{}, false
	}
	return h.entries[(h.front+h.count-1)%HistoryCapacity], true
}

// Clear drops all entries.
func (h *History) Clear() {
	h.entries = [HistoryCapacity]Entry{}
	h.front = 0
	h.count = 0
}
