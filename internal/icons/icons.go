package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Song     string
	Artist   string
	Playlist string
	History  string
	Current  string
	Duration string
}

var (
	nerdIcons = Icons{
		Song:     " ", // nf-fa-music
		Artist:   " ", // nf-fa-user
		Playlist: "󰲸 ",      // nf-md-playlist_music
		History:  "󰋚 ",      // nf-md-history
		Current:  "",  // nf-fa-play
		Duration: " ", // nf-fa-clock_o
	}

	unicodeIcons = Icons{
		Song:     "🎵 ",
		Artist:   "👤 ",
		Playlist: "📋 ",
		History:  "🕘 ",
		Current:  "▶",
		Duration: "⏱ ",
	}

	noneIcons = Icons{
		Current: ">",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// FormatSong formats a song title with the appropriate icon.
func FormatSong(title string) string {
	return current.Song + title
}

// FormatArtist formats an artist name with the appropriate icon.
func FormatArtist(name string) string {
	return current.Artist + name
}

// FormatPlaylist formats a panel title for the playlist.
func FormatPlaylist(name string) string {
	return current.Playlist + name
}

// FormatHistory formats a panel title for the recently played list.
func FormatHistory(name string) string {
	return current.History + name
}

// FormatDuration prefixes a formatted duration.
func FormatDuration(d string) string {
	return current.Duration + d
}

// Current returns the marker drawn next to the song under the cursor.
func Current() string {
	return current.Current
}
