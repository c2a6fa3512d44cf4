package handler

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestResults(t *testing.T) {
	cmd := func() tea.Msg { return "next" }

	tests := []struct {
		name        string
		result      Result
		wantHandled bool
		wantCmd     bool
	}{
		{"zero value", Result{}, false, false},
		{"not handled", NotHandled, false, false},
		{"handled without cmd", HandledNoCmd, true, false},
		{"handled nil cmd", Handled(nil), true, false},
		{"handled with cmd", Handled(cmd), true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result.Handled != tt.wantHandled {
				t.Errorf("Handled = %v, want %v", tt.result.Handled, tt.wantHandled)
			}
			if (tt.result.Cmd != nil) != tt.wantCmd {
				t.Errorf("Cmd set = %v, want %v", tt.result.Cmd != nil, tt.wantCmd)
			}
		})
	}
}

func TestChain_NoHandlers(t *testing.T) {
	handled, cmd := Chain("n")
	if handled {
		t.Error("Chain() handled = true, want false")
	}
	if cmd != nil {
		t.Error("Chain() cmd should be nil")
	}
}

func TestChain_PassesKey(t *testing.T) {
	var seen []string
	record := func(key string) Result {
		seen = append(seen, key)
		return NotHandled
	}

	Chain("ctrl+c", record, record)

	if len(seen) != 2 || seen[0] != "ctrl+c" || seen[1] != "ctrl+c" {
		t.Errorf("seen = %v, want [ctrl+c ctrl+c]", seen)
	}
}

func TestChain_StopsAtFirstHandler(t *testing.T) {
	quit := func() tea.Msg { return tea.QuitMsg{} }
	var order []string

	global := func(key string) Result {
		order = append(order, "global")
		return NotHandled
	}
	playback := func(key string) Result {
		order = append(order, "playback")
		if key == "n" {
			return Handled(quit)
		}
		return NotHandled
	}
	edit := func(key string) Result {
		order = append(order, "edit")
		return HandledNoCmd
	}

	handled, cmd := Chain("n", global, playback, edit)
	if !handled {
		t.Fatal("handled = false, want true")
	}
	if cmd == nil {
		t.Fatal("cmd should come from the playback handler")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("cmd() = %T, want tea.QuitMsg", cmd())
	}
	if len(order) != 2 || order[1] != "playback" {
		t.Errorf("order = %v, want [global playback]", order)
	}
}

func TestChain_NoneHandle(t *testing.T) {
	calls := 0
	pass := func(string) Result {
		calls++
		return NotHandled
	}

	handled, cmd := Chain("x", pass, pass, pass)
	if handled {
		t.Error("handled = true, want false")
	}
	if cmd != nil {
		t.Error("cmd should be nil")
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}
