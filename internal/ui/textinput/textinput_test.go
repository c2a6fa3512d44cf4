package textinput

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/ui/action"
	"github.com/llehouerou/carousel/internal/ui/testutil"
)

const testContext = "test-ctx"

func newTestInput(title, initialText string, context any) *testutil.PopupHarness {
	m := New()
	m.Start(title, "", initialText, context, 80, 24)
	return testutil.NewPopupHarness(&m)
}

func getResult(t *testing.T, h *testutil.PopupHarness) Result {
	t.Helper()
	cmd := h.LastCommand()
	if cmd == nil {
		t.Fatal("expected command, got nil")
	}
	msg := testutil.ExecuteCmd(cmd)
	actionMsg, ok := msg.(action.Msg)
	if !ok {
		t.Fatalf("expected action.Msg, got %T", msg)
	}
	if actionMsg.Source != "textinput" {
		t.Errorf("Source = %q, want textinput", actionMsg.Source)
	}
	result, ok := actionMsg.Action.(Result)
	if !ok {
		t.Fatalf("expected Result, got %T", actionMsg.Action)
	}
	return result
}

func TestTextInput_TypeCharacters(t *testing.T) {
	h := newTestInput("Find song", "", nil)

	h.Type("Hey Jude")
	h.SendEnter()

	result := getResult(t, h)
	if result.Text != "Hey Jude" {
		t.Errorf("Text = %q, want %q", result.Text, "Hey Jude")
	}
	if result.Canceled {
		t.Error("expected Canceled=false")
	}
}

func TestTextInput_InitialText(t *testing.T) {
	h := newTestInput("Edit", "initial", nil)

	h.SendSpecialKey(tea.KeyBackspace)
	h.Type("L")
	h.SendEnter()

	if got := getResult(t, h).Text; got != "initiaL" {
		t.Errorf("Text = %q, want %q", got, "initiaL")
	}
}

func TestTextInput_TrimsSurroundingSpace(t *testing.T) {
	h := newTestInput("Delete song", "  Yesterday  ", nil)
	h.SendEnter()

	if got := getResult(t, h).Text; got != "Yesterday" {
		t.Errorf("Text = %q, want %q", got, "Yesterday")
	}
}

func TestTextInput_EscapeCancels(t *testing.T) {
	h := newTestInput("Name", "typed", testContext)
	h.SendEscape()

	result := getResult(t, h)
	if !result.Canceled {
		t.Error("expected Canceled=true")
	}
	if result.Context != testContext {
		t.Errorf("Context = %v, want %v", result.Context, testContext)
	}
}

func TestTextInput_ContextPassedThrough(t *testing.T) {
	h := newTestInput("Name", "x", testContext)
	h.SendEnter()

	if got := getResult(t, h).Context; got != testContext {
		t.Errorf("Context = %v, want %v", got, testContext)
	}
}

func TestTextInput_View(t *testing.T) {
	h := newTestInput("Import path", "~/Music", nil)

	if !h.ViewContains("Import path") {
		t.Error("view missing title")
	}
	if !h.ViewContains("~/Music") {
		t.Error("view missing value")
	}
	if !h.ViewContains("Esc: cancel") {
		t.Error("view missing hint")
	}
}

func TestTextInput_ViewEmptyWithoutSize(t *testing.T) {
	m := New()
	if got := m.View(); got != "" {
		t.Errorf("View() = %q, want empty", got)
	}
}
