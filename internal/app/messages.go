// internal/app/messages.go
package app

import "github.com/llehouerou/carousel/internal/playlist"

// Import is the outcome of collecting songs from one path.
type Import struct {
	Path  string
	Songs []playlist.Song
	Err   error
}

// ImportedMsg carries songs collected in the background, in the order
// the paths were given. The playlist is only touched once the message
// reaches Update.
type ImportedMsg struct {
	Imports []Import
	Sort    playlist.Criterion // applied once, after every import is added
}

// NotifyErrMsg reports a failed desktop notification.
type NotifyErrMsg struct {
	Err error
}

// Status is the one-line message under the panels.
type Status struct {
	Text    string
	IsError bool
}
