package script

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/llehouerou/carousel/internal/errmsg"
	"github.com/llehouerou/carousel/internal/playlist"
)

// maxLineSize bounds a single command line.
const maxLineSize = 1 << 20

// Runner applies commands to a session and writes their output.
type Runner struct {
	session *playlist.Session
	out     io.Writer
	onPlay  func(playlist.Song)
}

// Option configures a Runner.
type Option func(*Runner)

// OnPlay registers a callback invoked with the new current song after "next".
func OnPlay(fn func(playlist.Song)) Option {
	return func(r *Runner) {
		r.onPlay = fn
	}
}

// NewRunner creates a runner writing to out.
func NewRunner(s *playlist.Session, out io.Writer, opts ...Option) *Runner {
	r := &Runner{session: s, out: out}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes commands from in until EOF or "exit".
// Blank lines and lines starting with # are skipped.
func (r *Runner) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cmd, err := Parse(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if cmd.Kind == KindExit {
			return nil
		}
		if err := r.Exec(ctx, cmd); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}

// Exec executes a single command.
func (r *Runner) Exec(ctx context.Context, cmd Command) error {
	s := r.session
	switch cmd.Kind {
	case KindAdd:
		s.Playlist.AddSong(cmd.Song)
	case KindDelete:
		if err := s.Delete(cmd.Arg); err != nil {
			return r.println("Song not found!")
		}
		return r.println("Song deleted!")
	case KindNext:
		if song, ok := s.PlayNext(); ok && r.onPlay != nil {
			r.onPlay(song)
		}
	case KindPrev:
		s.PlayPrev()
	case KindRewind:
		s.Playlist.Rewind()
	case KindSearch:
		return r.search(cmd.Arg)
	case KindSort:
		s.Playlist.SortBy(cmd.Criterion)
		return r.println("Sorting complete!")
	case KindShow:
		return r.show()
	case KindRecent:
		return r.recent()
	case KindImport:
		n, err := s.Import(ctx, cmd.Arg)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			return r.println(errmsg.FormatWith(errmsg.OpImportPath, cmd.Arg, err))
		}
		return r.printf("Imported %d songs\n", n)
	case KindExit:
	case KindInvalid:
		return r.println("Invalid Option!")
	}
	return nil
}

func (r *Runner) search(key string) error {
	_, song, err := r.session.Find(key)
	if err != nil {
		return r.println("\nSong NOT found.")
	}
	return r.printf("\nSong Found:\n%s\n", describe(song))
}

func (r *Runner) show() error {
	p := r.session.Playlist
	if p.IsEmpty() {
		return r.println("\nPlaylist is empty.")
	}

	var b strings.Builder
	b.WriteString("\n--- Playlist (Circular Doubly Linked List) ---\n")
	cursor, _ := p.Cursor()
	for h, song := range p.All() {
		b.WriteString(describe(song))
		if h == cursor {
			b.WriteString("   <-- CURRENT")
		}
		b.WriteByte('\n')
	}
	return r.printf("%s", b.String())
}

func (r *Runner) recent() error {
	var b strings.Builder
	b.WriteString("\n--- Recently Played (Queue) ---\n")
	if r.session.History.Len() == 0 {
		b.WriteString("No recently played songs.\n")
	}
	for e := range r.session.History.All() {
		b.WriteString(e.Song.Title + " - " + e.Song.Artist + "\n")
	}
	return r.printf("%s", b.String())
}

func describe(s playlist.Song) string {
	return fmt.Sprintf("%s - %s (%d sec)", s.Title, s.Artist, s.Seconds())
}

func (r *Runner) println(s string) error {
	_, err := fmt.Fprintln(r.out, s)
	return err
}

func (r *Runner) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(r.out, format, args...)
	return err
}
