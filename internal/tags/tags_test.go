package tags

import "testing"

func TestIsMusicFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"song.mp3", true},
		{"song.MP3", true},
		{"song.flac", true},
		{"song.opus", true},
		{"song.ogg", true},
		{"song.OGA", true},
		{"song.m4a", true},
		{"song.mp4", true},
		{"song.wav", false},
		{"song.txt", false},
		{"song", false},
		{"/path/to/music.flac", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsMusicFile(tt.path); got != tt.want {
				t.Errorf("IsMusicFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestTaglibTags_Get(t *testing.T) {
	tags := taglibTags{
		"TITLE":  {"First", "Second"},
		"ARTIST": {},
		"ALBUM":  {"Album"},
	}

	if got := tags.get("TITLE"); got != "First" {
		t.Errorf("get(TITLE) = %q, want %q", got, "First")
	}
	if got := tags.get("ARTIST", "ALBUM"); got != "Album" {
		t.Errorf("get(ARTIST, ALBUM) = %q, want %q", got, "Album")
	}
	if got := tags.get("MISSING"); got != "" {
		t.Errorf("get(MISSING) = %q, want empty", got)
	}
}
