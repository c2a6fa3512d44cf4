package keymap

// Binding describes a single key binding for resolution and documentation.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "playlist", "edit"
}

// Bindings contains all key bindings.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionSearch, []string{"/"}, "Search title or artist", "global"},
	{ActionImport, []string{"i"}, "Import file or folder", "global"},

	// Playback
	{ActionNextSong, []string{"n", "right"}, "Play next (records history)", "playback"},
	{ActionPrevSong, []string{"p", "left"}, "Previous song", "playback"},
	{ActionRewind, []string{"r", "home"}, "Rewind to first song", "playback"},

	// Playlist panel
	{ActionMoveDown, []string{"j", "down"}, "Move down", "playlist"},
	{ActionMoveUp, []string{"k", "up"}, "Move up", "playlist"},
	{ActionJumpStart, []string{"g"}, "First item", "playlist"},
	{ActionJumpEnd, []string{"G"}, "Last item", "playlist"},
	{ActionSelect, []string{"enter"}, "Play highlighted song", "playlist"},

	// Editing
	{ActionAdd, []string{"a"}, "Add song", "edit"},
	{ActionDeleteByTitle, []string{"d"}, "Delete by title", "edit"},
	{ActionDeleteRow, []string{"D", "delete"}, "Delete highlighted song", "edit"},
	{ActionSortTitle, []string{"t"}, "Sort by title", "edit"},
	{ActionSortDuration, []string{"u"}, "Sort by duration", "edit"},
	{ActionClearHistory, []string{"c"}, "Clear recently played", "edit"},
}

// Contexts lists binding contexts in help display order.
var Contexts = []string{"global", "playback", "playlist", "edit"}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
