package songform

import (
	"github.com/llehouerou/carousel/internal/playlist"
	"github.com/llehouerou/carousel/internal/ui/action"
)

// Result contains the submitted song, or Canceled when the form was dismissed.
type Result struct {
	Song     playlist.Song
	Canceled bool
}

// ActionType implements action.Action.
func (a Result) ActionType() string { return "songform.result" }

// ActionMsg creates an action.Msg for a songform action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "songform", Action: a}
}
