package playlist

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/llehouerou/carousel/internal/tags"
)

// FromPath creates a song from a music file by reading its metadata.
// Falls back to the file name when tags cannot be read, and to a zero
// duration when the audio stream cannot be inspected.
func FromPath(path string) Song {
	song := Song{Title: filepath.Base(path)}

	if t, err := tags.Read(path); err == nil {
		song.Title = t.Title
		song.Artist = t.Artist
	}
	if info, err := tags.ReadAudioInfo(path); err == nil {
		song.Duration = info.Duration.Truncate(time.Second)
	}

	return song
}

// CollectFromPath collects songs for a path.
// For directories: recursively collects all music files, ordered by path.
// For files: just that file, if it is a music file.
func CollectFromPath(ctx context.Context, path string) ([]Song, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !tags.IsMusicFile(path) {
			return nil, nil
		}
		return []Song{FromPath(path)}, nil
	}

	var paths []string
	err = filepath.WalkDir(path, func(p string, d os.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			// Skip directories/files with errors, continue walking
			return nil //nolint:nilerr // intentionally skipping errors
		}
		if d.IsDir() || !tags.IsMusicFile(p) {
			return nil
		}
		paths = append(paths, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)

	songs := make([]Song, 0, len(paths))
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		songs = append(songs, FromPath(p))
	}
	return songs, nil
}

// FormatDuration formats a duration as MM:SS.
// Negative durations are shown with a leading minus sign.
func FormatDuration(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return sign + padInt(m) + ":" + padInt(s)
}

func padInt(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
