// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit   Action = "quit"
	ActionHelp   Action = "help"
	ActionSearch Action = "search"
	ActionImport Action = "import"

	// Playback actions (move the playlist cursor)
	ActionNextSong Action = "next_song"
	ActionPrevSong Action = "prev_song"
	ActionRewind   Action = "rewind"

	// Highlight navigation
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionSelect    Action = "select" // enter - jump the cursor to the highlighted song

	// Playlist editing
	ActionAdd           Action = "add"           // a
	ActionDeleteByTitle Action = "delete_title"  // d
	ActionDeleteRow     Action = "delete_row"    // D
	ActionSortTitle     Action = "sort_title"    // t
	ActionSortDuration  Action = "sort_duration" // u
	ActionClearHistory  Action = "clear_history" // c
)
