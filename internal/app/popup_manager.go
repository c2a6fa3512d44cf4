// internal/app/popup_manager.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/ui/confirm"
	"github.com/llehouerou/carousel/internal/ui/helpbindings"
	"github.com/llehouerou/carousel/internal/ui/popup"
	"github.com/llehouerou/carousel/internal/ui/songform"
	"github.com/llehouerou/carousel/internal/ui/textinput"
)

// PopupType identifies which popup is currently active.
type PopupType int

const (
	PopupNone PopupType = iota
	PopupHelp
	PopupConfirm
	PopupTextInput
	PopupSongForm
)

// InputMode says what the text input popup is collecting.
type InputMode int

const (
	InputNone InputMode = iota
	InputSearch
	InputDelete
	InputImport
)

// PopupManager manages all modal popups.
type PopupManager struct {
	help      helpbindings.Model
	showHelp  bool
	confirm   confirm.Model
	textInput textinput.Model
	inputMode InputMode
	songForm  *songform.Model

	// Dimensions for popup rendering
	width  int
	height int
}

// NewPopupManager creates a new PopupManager with initialized components.
func NewPopupManager() PopupManager {
	return PopupManager{
		help:      helpbindings.New(),
		confirm:   confirm.New(),
		textInput: textinput.New(),
	}
}

// SetSize updates the dimensions for popup rendering.
func (p *PopupManager) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.help.SetSize(p.helpSize())
	p.textInput.SetSize(width, height)
	if p.songForm != nil {
		p.songForm.SetSize(width, height)
	}
}

// ActivePopup returns which popup is currently active (if any).
func (p *PopupManager) ActivePopup() PopupType {
	switch {
	case p.showHelp:
		return PopupHelp
	case p.confirm.Active():
		return PopupConfirm
	case p.inputMode != InputNone:
		return PopupTextInput
	case p.songForm != nil:
		return PopupSongForm
	default:
		return PopupNone
	}
}

// --- Help Popup ---

// ShowHelp displays the key binding help.
func (p *PopupManager) ShowHelp() {
	p.help = helpbindings.New()
	p.help.SetSize(p.helpSize())
	p.showHelp = true
}

// helpSize is the content area inside a popup.SizeLarge box.
func (p *PopupManager) helpSize() (width, height int) {
	w := p.width * popup.SizeLarge.WidthPct / 100
	h := p.height * popup.SizeLarge.HeightPct / 100
	return max(w-6, 0), max(h-4, 0) // border and padding
}

// HideHelp hides the help popup.
func (p *PopupManager) HideHelp() {
	p.showHelp = false
}

// --- Confirm Popup ---

// ShowConfirm displays a confirmation dialog.
func (p *PopupManager) ShowConfirm(title, message string, context any) {
	p.confirm.Show(title, message, context, p.width, p.height)
}

// --- Text Input Popup ---

// ShowTextInput displays a text input popup and returns its focus command.
func (p *PopupManager) ShowTextInput(mode InputMode, title, placeholder string) tea.Cmd {
	p.inputMode = mode
	p.textInput = textinput.New()
	p.textInput.Start(title, placeholder, "", mode, p.width, p.height)
	return p.textInput.Init()
}

// HideTextInput hides the text input popup.
func (p *PopupManager) HideTextInput() {
	p.inputMode = InputNone
}

// InputMode returns the current input mode.
func (p *PopupManager) InputMode() InputMode {
	return p.inputMode
}

// --- Song Form Popup ---

// ShowSongForm displays the add-song form and returns its focus command.
func (p *PopupManager) ShowSongForm() tea.Cmd {
	form := songform.New()
	form.SetSize(p.width, p.height)
	p.songForm = &form
	return p.songForm.Init()
}

// HideSongForm hides the add-song form.
func (p *PopupManager) HideSongForm() {
	p.songForm = nil
}

// --- Message Handling ---

// HandleKey routes key events to the active popup.
// Returns (handled, cmd) where handled is true if a popup consumed the key.
func (p *PopupManager) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	active := p.activeModel()
	if active == nil {
		return false, nil
	}
	_, cmd := active.Update(msg)
	return true, cmd
}

// Update forwards non-key messages, such as cursor blinks, to the active popup.
func (p *PopupManager) Update(msg tea.Msg) tea.Cmd {
	active := p.activeModel()
	if active == nil {
		return nil
	}
	_, cmd := active.Update(msg)
	return cmd
}

func (p *PopupManager) activeModel() popup.Popup {
	switch p.ActivePopup() {
	case PopupHelp:
		return &p.help
	case PopupConfirm:
		return &p.confirm
	case PopupTextInput:
		return &p.textInput
	case PopupSongForm:
		return p.songForm
	case PopupNone:
		return nil
	}
	return nil
}

// --- Rendering ---

// RenderOverlay renders the active popup on top of the base view.
func (p *PopupManager) RenderOverlay(base string) string {
	active := p.activeModel()
	if active == nil {
		return base
	}

	size := popup.SizeAuto
	if p.ActivePopup() == PopupHelp {
		size = popup.SizeLarge
	}
	box := popup.RenderBordered(active.View(), p.width, p.height, size)
	return popup.Compose(base, box, p.width)
}
