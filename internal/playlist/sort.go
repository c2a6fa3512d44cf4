package playlist

import (
	"cmp"
	"slices"
	"strings"
)

// Criterion selects the ordering used by SortBy.
type Criterion int

const (
	SortNone Criterion = iota
	ByTitle
	ByDuration
)

// String returns the config/command name of the criterion.
func (c Criterion) String() string {
	switch c {
	case ByTitle:
		return "title"
	case ByDuration:
		return "duration"
	case SortNone:
		return "none"
	default:
		return "none"
	}
}

// ParseCriterion maps "title"/"1" and "duration"/"2" to a criterion.
// Anything else yields SortNone.
func ParseCriterion(s string) Criterion {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "title", "1":
		return ByTitle
	case "duration", "2":
		return ByDuration
	default:
		return SortNone
	}
}

// SortBy reorders the ring by c and resets the cursor to the new head.
// Entries are relinked, not moved, so outstanding handles stay valid.
// An unrecognized criterion leaves the playlist untouched.
func (p *Playlist) SortBy(c Criterion) {
	var compare func(a, b int) int
	switch c {
	case ByTitle:
		compare = func(a, b int) int {
			return strings.Compare(p.nodes[a].song.Title, p.nodes[b].song.Title)
		}
	case ByDuration:
		compare = func(a, b int) int {
			return cmp.Compare(p.nodes[a].song.Duration, p.nodes[b].song.Duration)
		}
	case SortNone:
		return
	default:
		return
	}

	order := slices.Collect(p.slots())
	slices.SortFunc(order, compare)
	p.relink(order)
}

// relink rebuilds the ring in the given slot order.
func (p *Playlist) relink(order []int) {
	if len(order) == 0 {
		p.head = none
		p.cursor = none
		return
	}

	n := len(order)
	for i, slot := range order {
		p.nodes[slot].next = order[(i+1)%n]
		p.nodes[slot].prev = order[(i-1+n)%n]
	}
	p.head = order[0]
	p.cursor = p.head
}
