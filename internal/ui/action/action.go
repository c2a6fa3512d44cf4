// Package action carries results from popups and panels back to the app.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is a result produced by a component, such as a submitted song
// form or a row picked in the playlist panel.
type Action interface {
	ActionType() string
}

// Msg tags an Action with the package name of the component that sent it.
// The app switches on Source before type-switching on Action.
type Msg struct {
	Source string
	Action Action
}

var _ tea.Msg = Msg{}
