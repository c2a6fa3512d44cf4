//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionNextSong, []string{"n", "right"}, "Next", "playback"},
		{ActionMoveUp, []string{"k", "up"}, "Move up", "playlist"},
	}

	r := NewResolver(bindings)

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"n", ActionNextSong},
		{"right", ActionNextSong},
		{"k", ActionMoveUp},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			result := r.Resolve(tt.key)
			if result != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, result, tt.expected)
			}
		})
	}
}

func TestResolver_KeysFor(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionRewind, []string{"r", "home"}, "Rewind", "playback"},
	}

	r := NewResolver(bindings)

	if got := r.KeysFor(ActionRewind); !slices.Equal(got, []string{"r", "home"}) {
		t.Errorf("KeysFor(ActionRewind) = %v, want [r home]", got)
	}
	if got := r.KeysFor(Action("unknown")); got != nil {
		t.Errorf("KeysFor(unknown) = %v, want nil", got)
	}
}

func TestResolver_Hint(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionPrevSong, []string{"p", "left"}, "Prev", "playback"},
	})

	if got := r.Hint(ActionPrevSong); got != "p/left" {
		t.Errorf("Hint(ActionPrevSong) = %q, want %q", got, "p/left")
	}
	if got := r.Hint(ActionQuit); got != "" {
		t.Errorf("Hint(ActionQuit) = %q, want empty", got)
	}
}

func TestResolver_DeduplicatesKeys(t *testing.T) {
	bindings := []Binding{
		{ActionDeleteRow, []string{"D", "delete"}, "Delete", "edit"},
		{ActionDeleteRow, []string{"D"}, "Delete", "playlist"},
	}

	r := NewResolver(bindings)

	if got := r.KeysFor(ActionDeleteRow); !slices.Equal(got, []string{"D", "delete"}) {
		t.Errorf("KeysFor(ActionDeleteRow) = %v, want [D delete]", got)
	}
}

func TestResolver_WithBindings(t *testing.T) {
	r := NewResolver(Bindings)

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"n", ActionNextSong},
		{"p", ActionPrevSong},
		{"home", ActionRewind},
		{"/", ActionSearch},
		{"t", ActionSortTitle},
		{"u", ActionSortDuration},
		{"d", ActionDeleteByTitle},
		{"D", ActionDeleteRow},
		{"a", ActionAdd},
		{"i", ActionImport},
		{"c", ActionClearHistory},
		{"enter", ActionSelect},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := r.Resolve(tt.key); got != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.expected)
			}
		})
	}
}

func TestDedupe(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"no duplicates", []string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"with duplicates", []string{"a", "b", "a", "c", "b"}, []string{"a", "b", "c"}},
		{"empty slice", []string{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dedupe(tt.input); !slices.Equal(got, tt.expected) {
				t.Errorf("dedupe(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestResolver_EmptyBindings(t *testing.T) {
	r := NewResolver([]Binding{})

	if action := r.Resolve("q"); action != "" {
		t.Errorf("Resolve on empty resolver should return empty, got %q", action)
	}
	if keys := r.KeysFor(ActionQuit); keys != nil {
		t.Errorf("KeysFor on empty resolver should return nil, got %v", keys)
	}
}
