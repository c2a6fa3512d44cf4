// Package playlist implements the circular song list, its cursor and the
// recently played history.
package playlist

import (
	"errors"
	"iter"
	"strings"
	"time"
)

// ErrNotFound is returned when no song matches a title or search key.
var ErrNotFound = errors.New("song not found")

// Song represents a single entry in the playlist.
type Song struct {
	Title    string
	Artist   string
	Duration time.Duration
}

// NewSong creates a song from a duration in whole seconds.
// Negative durations are kept as-is.
func NewSong(title, artist string, seconds int) Song {
	return Song{
		Title:    title,
		Artist:   artist,
		Duration: time.Duration(seconds) * time.Second,
	}
}

// Seconds returns the duration in whole seconds.
func (s Song) Seconds() int {
	return int(s.Duration / time.Second)
}

// Handle is a non-owning reference to a playlist entry.
// The zero Handle never refers to an entry.
type Handle struct {
	slot int
	gen  uint32
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

const none = -1

type node struct {
	song Song
	next int
	prev int
	gen  uint32 // bumped on every allocation; 0 never names a live entry
	live bool
}

// Playlist is a circular doubly linked list of songs with a cursor.
// Entries live in a slot arena so that handles survive sorting.
// A Playlist is not safe for concurrent use.
type Playlist struct {
	nodes  []node
	free   []int
	head   int
	cursor int
	size   int
}

// New creates an empty playlist.
func New() *Playlist {
	return &Playlist{
		head:   none,
		cursor: none,
	}
}

// Len returns the number of songs.
func (p *Playlist) Len() int {
	return p.size
}

// IsEmpty returns true if the playlist has no songs.
func (p *Playlist) IsEmpty() bool {
	return p.size == 0
}

// Add appends a song after the tail. On an empty playlist the new song
// becomes both head and cursor.
func (p *Playlist) Add(title, artist string, seconds int) Handle {
	return p.AddSong(NewSong(title, artist, seconds))
}

// AddSong appends an already built song after the tail.
func (p *Playlist) AddSong(s Song) Handle {
	slot := p.alloc(s)

	if p.head == none {
		p.nodes[slot].next = slot
		p.nodes[slot].prev = slot
		p.head = slot
		p.cursor = slot
	} else {
		tail := p.nodes[p.head].prev
		p.nodes[tail].next = slot
		p.nodes[slot].prev = tail
		p.nodes[slot].next = p.head
		p.nodes[p.head].prev = slot
	}

	p.size++
	return p.handle(slot)
}

// Remove deletes the first song whose title equals title exactly,
// scanning forward from head once around the ring.
// Returns false if no song matches; the playlist is unchanged in that case.
func (p *Playlist) Remove(title string) bool {
	slot := p.find(func(s *Song) bool {
		return s.Title == title
	})
	if slot == none {
		return false
	}
	p.unlink(slot)
	return true
}

// Delete removes the entry referenced by h.
// Returns false if h is stale.
func (p *Playlist) Delete(h Handle) bool {
	if !p.valid(h) {
		return false
	}
	p.unlink(h.slot)
	return true
}

// Next advances the cursor one step. No-op on an empty playlist.
func (p *Playlist) Next() {
	if p.cursor != none {
		p.cursor = p.nodes[p.cursor].next
	}
}

// Prev moves the cursor back one step. No-op on an empty playlist.
func (p *Playlist) Prev() {
	if p.cursor != none {
		p.cursor = p.nodes[p.cursor].prev
	}
}

// Rewind moves the cursor to the head.
func (p *Playlist) Rewind() {
	p.cursor = p.head
}

// Seek moves the cursor to h. Returns false if h is stale.
func (p *Playlist) Seek(h Handle) bool {
	if !p.valid(h) {
		return false
	}
	p.cursor = h.slot
	return true
}

// Search returns the first song whose title or artist equals key,
// ignoring case. The title is checked before the artist.
func (p *Playlist) Search(key string) (Handle, bool) {
	key = strings.ToLower(key)
	slot := p.find(func(s *Song) bool {
		return strings.ToLower(s.Title) == key || strings.ToLower(s.Artist) == key
	})
	if slot == none {
		return Handle{}, false
	}
	return p.handle(slot), true
}

// Cursor returns the handle of the current song.
func (p *Playlist) Cursor() (Handle, bool) {
	if p.cursor == none {
		return Handle{}, false
	}
	return p.handle(p.cursor), true
}

// Current returns a copy of the current song.
func (p *Playlist) Current() (Song, bool) {
	if p.cursor == none {
		return Song{}, false
	}
	return p.nodes[p.cursor].song, true
}

// Head returns the handle of the first song.
func (p *Playlist) Head() (Handle, bool) {
	if p.head == none {
		return Handle{}, false
	}
	return p.handle(p.head), true
}

// Song returns a copy of the song referenced by h.
func (p *Playlist) Song(h Handle) (Song, bool) {
	if !p.valid(h) {
		return Song{}, false
	}
	return p.nodes[h.slot].song, true
}

// NextOf returns the successor of h in circular order.
func (p *Playlist) NextOf(h Handle) (Handle, bool) {
	if !p.valid(h) {
		return Handle{}, false
	}
	return p.handle(p.nodes[h.slot].next), true
}

// PrevOf returns the predecessor of h in circular order.
func (p *Playlist) PrevOf(h Handle) (Handle, bool) {
	if !p.valid(h) {
		return Handle{}, false
	}
	return p.handle(p.nodes[h.slot].prev), true
}

// Index returns the position of h counted from head, or -1 if h is stale.
func (p *Playlist) Index(h Handle) int {
	if !p.valid(h) {
		return -1
	}
	i := 0
	for slot := range p.slots() {
		if slot == h.slot {
			return i
		}
		i++
	}
	return -1
}

// CursorIndex returns the position of the cursor counted from head,
// or -1 if the playlist is empty.
func (p *Playlist) CursorIndex() int {
	h, ok := p.Cursor()
	if !ok {
		return -1
	}
	return p.Index(h)
}

// All iterates over handles and songs from head in forward order.
func (p *Playlist) All() iter.Seq2[Handle, Song] {
	return func(yield func(Handle, Song) bool) {
		for slot := range p.slots() {
			if !yield(p.handle(slot), p.nodes[slot].song) {
				return
			}
		}
	}
}

// Songs returns a copy of all songs from head in forward order.
func (p *Playlist) Songs() []Song {
	result := make([]Song, 0, p.size)
	for _, s := range p.All() {
		result = append(result, s)
	}
	return result
}

// TotalDuration returns the sum of all song durations.
func (p *Playlist) TotalDuration() time.Duration {
	var total time.Duration
	for _, s := range p.All() {
		total += s.Duration
	}
	return total
}

// Clear removes all songs. Outstanding handles become stale.
func (p *Playlist) Clear() {
	for slot := range p.nodes {
		if p.nodes[slot].live {
			p.release(slot)
		}
	}
	p.head = none
	p.cursor = none
	p.size = 0
}

// slots yields live slot indices from head, visiting each exactly once.
func (p *Playlist) slots() iter.Seq[int] {
	return func(yield func(int) bool) {
		if p.head == none {
			return
		}
		slot := p.head
		for range p.size {
			if !yield(slot) {
				return
			}
			slot = p.nodes[slot].next
		}
	}
}

// find returns the first slot from head whose song matches, or none.
func (p *Playlist) find(match func(*Song) bool) int {
	for slot := range p.slots() {
		if match(&p.nodes[slot].song) {
			return slot
		}
	}
	return none
}

func (p *Playlist) unlink(slot int) {
	n := &p.nodes[slot]

	if p.size == 1 {
		p.head = none
		p.cursor = none
	} else {
		p.nodes[n.prev].next = n.next
		p.nodes[n.next].prev = n.prev
		if p.head == slot {
			p.head = n.next
		}
		if p.cursor == slot {
			p.cursor = n.next
		}
	}

	p.release(slot)
	p.size--
}

func (p *Playlist) alloc(s Song) int {
	var slot int
	if n := len(p.free); n > 0 {
		slot = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		p.nodes = append(p.nodes, node{})
		slot = len(p.nodes) - 1
	}

	n := &p.nodes[slot]
	n.song = s
	n.gen++
	n.live = true
	return slot
}

func (p *Playlist) release(slot int) {
	n := &p.nodes[slot]
	n.song = Song{}
	n.next = none
	n.prev = none
	n.live = false
	p.free = append(p.free, slot)
}

func (p *Playlist) handle(slot int) Handle {
	return Handle{slot: slot, gen: p.nodes[slot].gen}
}

func (p *Playlist) valid(h Handle) bool {
	if h.gen == 0 || h.slot < 0 || h.slot >= len(p.nodes) {
		return false
	}
	n := &p.nodes[h.slot]
	return n.live && n.gen == h.gen
}
