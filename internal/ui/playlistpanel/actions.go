package playlistpanel

import (
	"github.com/llehouerou/carousel/internal/playlist"
	"github.com/llehouerou/carousel/internal/ui/action"
)

// JumpTo requests moving the playlist cursor to a song.
type JumpTo struct {
	Handle playlist.Handle
}

// ActionType implements action.Action.
func (a JumpTo) ActionType() string { return "playlistpanel.jump_to" }

// ActionMsg creates an action.Msg for a playlistpanel action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "playlistpanel", Action: a}
}
