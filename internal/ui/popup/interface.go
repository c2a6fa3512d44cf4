package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal component drawn over the playlist and history panels.
// The app owns at most one at a time and routes keys to it first.
type Popup interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Popup, tea.Cmd)

	// View renders the content only; RenderBordered adds the frame.
	View() string

	// SetSize receives the inner size of the popup box.
	SetSize(width, height int)
}
