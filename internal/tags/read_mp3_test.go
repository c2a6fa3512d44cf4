package tags

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"
)

// createMinimalMP3 creates a minimal valid MP3 file for testing.
// Returns MP3 frame header + padding (417 bytes total for 128kbps frame).
func createMinimalMP3(t *testing.T, path string) {
	t.Helper()
	// MP3 frame header (MPEG1 Layer3, 128kbps, 44100Hz, stereo) + padding
	mp3Frame := make([]byte, 417)
	mp3Frame[0] = 0xff
	mp3Frame[1] = 0xfb
	mp3Frame[2] = 0x90
	mp3Frame[3] = 0x00

	if err := os.WriteFile(path, mp3Frame, 0o600); err != nil {
		t.Fatalf("failed to create test MP3: %v", err)
	}
}

// tagMP3 writes ID3v2 frames to an existing MP3 file.
func tagMP3(t *testing.T, path string, frames map[string]string) {
	t.Helper()
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("failed to open MP3 for tagging: %v", err)
	}
	defer tag.Close()

	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	for id, text := range frames {
		tag.AddTextFrame(id, id3v2.EncodingUTF8, text)
	}
	if err := tag.Save(); err != nil {
		t.Fatalf("failed to save ID3 tags: %v", err)
	}
}

func TestReadMP3WithID3v2Fallback(t *testing.T) {
	mp3Path := filepath.Join(t.TempDir(), "test.mp3")
	createMinimalMP3(t, mp3Path)
	tagMP3(t, mp3Path, map[string]string{
		"TIT2": "Test Title",
		"TPE1": "Test Artist",
		"TALB": "Test Album",
	})

	result, err := readMP3WithID3v2Fallback(mp3Path)
	if err != nil {
		t.Fatalf("readMP3WithID3v2Fallback() error: %v", err)
	}

	assertEqual(t, "Title", result.Title, "Test Title")
	assertEqual(t, "Artist", result.Artist, "Test Artist")
}

func TestReadMP3WithID3v2Fallback_NoArtist(t *testing.T) {
	mp3Path := filepath.Join(t.TempDir(), "test.mp3")
	createMinimalMP3(t, mp3Path)
	tagMP3(t, mp3Path, map[string]string{"TIT2": "Instrumental"})

	result, err := readMP3WithID3v2Fallback(mp3Path)
	if err != nil {
		t.Fatalf("readMP3WithID3v2Fallback() error: %v", err)
	}

	assertEqual(t, "Title", result.Title, "Instrumental")
	assertEqual(t, "Artist", result.Artist, "")
}

func TestReadMP3WithID3v2Fallback_TitleFallsBackToFilename(t *testing.T) {
	mp3Path := filepath.Join(t.TempDir(), "untitled_track.mp3")
	createMinimalMP3(t, mp3Path)
	tagMP3(t, mp3Path, map[string]string{"TPE1": "Test Artist"})

	result, err := readMP3WithID3v2Fallback(mp3Path)
	if err != nil {
		t.Fatalf("readMP3WithID3v2Fallback() error: %v", err)
	}

	assertEqual(t, "Title", result.Title, "untitled_track.mp3")
}
