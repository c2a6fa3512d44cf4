package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/ui/popup"
)

type mockPopup struct {
	content    string
	keyHistory []string
}

var _ popup.Popup = (*mockPopup)(nil)

func (m *mockPopup) Init() tea.Cmd {
	return func() tea.Msg { return "init" }
}

func (m *mockPopup) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		m.keyHistory = append(m.keyHistory, key.String())
		if key.Type == tea.KeyEnter {
			return m, func() tea.Msg { return "enter-pressed" }
		}
	}
	return m, nil
}

func (m *mockPopup) View() string    { return m.content }
func (m *mockPopup) SetSize(_, _ int) {}

func TestStripANSI(t *testing.T) {
	if got := StripANSI("\x1b[1;31mred\x1b[0m"); got != "red" {
		t.Errorf("StripANSI = %q, want %q", got, "red")
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("a\nb\n\n  \n")
	if len(got) != 2 {
		t.Errorf("SplitLines = %q, want 2 lines", got)
	}
}

func TestPopupHarness(t *testing.T) {
	m := &mockPopup{content: "line one\n\x1b[1mline two\x1b[0m"}
	h := NewPopupHarness(m)

	if msg := ExecuteCmd(h.LastCommand()); msg != "init" {
		t.Errorf("init command = %v, want init", msg)
	}

	h.Type("ab")
	h.SendTab()
	if msg := ExecuteCmd(h.SendEnter()); msg != "enter-pressed" {
		t.Errorf("enter command = %v, want enter-pressed", msg)
	}

	want := []string{"a", "b", "tab", "enter"}
	if len(m.keyHistory) != len(want) {
		t.Fatalf("keys = %v, want %v", m.keyHistory, want)
	}
	for i := range want {
		if m.keyHistory[i] != want[i] {
			t.Errorf("key %d = %q, want %q", i, m.keyHistory[i], want[i])
		}
	}

	if !h.ViewContains("line two") {
		t.Error("ViewContains(line two) = false")
	}
	if h.ViewContains("line three") {
		t.Error("ViewContains(line three) = true")
	}
}
