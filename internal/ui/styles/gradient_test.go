package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestApplyBoldGradient_PreservesText(t *testing.T) {
	tests := []string{"", "c", "carousel", "héllo wörld"}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			got := ansi.Strip(ApplyBoldGradient(text, T().Primary, T().Secondary))
			if got != text {
				t.Errorf("stripped gradient = %q, want %q", got, text)
			}
		})
	}
}

func TestBlendColors_Endpoints(t *testing.T) {
	from := lipgloss.Color("#000000")
	to := lipgloss.Color("#ffffff")

	colors := blendColors(3, from, to)
	if len(colors) != 3 {
		t.Fatalf("len = %d, want 3", len(colors))
	}
	if got := colorToHex(colors[0]); got != "#000000" {
		t.Errorf("first = %s, want #000000", got)
	}
	if got := colorToHex(colors[2]); got != "#ffffff" {
		t.Errorf("last = %s, want #ffffff", got)
	}
}

func TestToColor_ANSIFallsBackToGray(t *testing.T) {
	got := colorToHex(toColor(lipgloss.Color("240")))
	if !strings.EqualFold(got, "#808080") {
		t.Errorf("toColor(240) = %s, want #808080", got)
	}
}
