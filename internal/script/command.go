// Package script runs line-oriented playlist commands against a session.
package script

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/llehouerou/carousel/internal/playlist"
)

// Kind identifies a command.
type Kind int

const (
	KindInvalid Kind = iota
	KindAdd
	KindDelete
	KindNext
	KindPrev
	KindRewind
	KindSearch
	KindSort
	KindShow
	KindRecent
	KindImport
	KindExit
)

var kindNames = map[string]Kind{
	"add":    KindAdd,
	"delete": KindDelete,
	"next":   KindNext,
	"prev":   KindPrev,
	"rewind": KindRewind,
	"search": KindSearch,
	"sort":   KindSort,
	"show":   KindShow,
	"recent": KindRecent,
	"import": KindImport,
	"exit":   KindExit,
}

// ErrSyntax is wrapped by every parse error.
var ErrSyntax = errors.New("syntax error")

// Command is one parsed input line.
type Command struct {
	Kind      Kind
	Name      string
	Song      playlist.Song      // add
	Arg       string             // delete, search, import
	Criterion playlist.Criterion // sort
}

// Parse parses a single non-blank line. An unknown command name is not
// an error: it yields KindInvalid so the caller can report it and go on.
func Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)
	name, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	cmd := Command{Name: name, Kind: kindNames[strings.ToLower(name)]}

	switch cmd.Kind {
	case KindAdd:
		song, err := parseSong(rest)
		if err != nil {
			return Command{}, err
		}
		cmd.Song = song
	case KindDelete, KindSearch:
		cmd.Arg = rest
	case KindImport:
		if rest == "" {
			return Command{}, fmt.Errorf("%w: import needs a path", ErrSyntax)
		}
		cmd.Arg = rest
	case KindSort:
		if rest == "" {
			return Command{}, fmt.Errorf("%w: sort needs a criterion", ErrSyntax)
		}
		// Unknown criteria are kept as SortNone and sorting is a no-op.
		cmd.Criterion = playlist.ParseCriterion(rest)
	case KindInvalid, KindNext, KindPrev, KindRewind, KindShow, KindRecent, KindExit:
	}

	return cmd, nil
}

// parseSong parses "title | artist | seconds".
func parseSong(s string) (playlist.Song, error) {
	fields := strings.Split(s, "|")
	if len(fields) != 3 {
		return playlist.Song{}, fmt.Errorf("%w: add wants \"title | artist | seconds\", got %q", ErrSyntax, s)
	}

	seconds, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return playlist.Song{}, fmt.Errorf("%w: duration %q is not a number", ErrSyntax, strings.TrimSpace(fields[2]))
	}

	return playlist.NewSong(strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1]), seconds), nil
}
