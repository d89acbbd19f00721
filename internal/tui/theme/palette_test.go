package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNewPalette_Tints(t *testing.T) {
	base := &Theme{
		Bg:      "#101010",
		BgPanel: "#202020",
		BgInput: "#303030",
		Fg:      "#ffffff",
		FgMuted: "#aaaaaa",
		Accent:  "#ff0000",
		Result:  "#00ff00",
		Error:   "#ff0000",
	}
	base.applyDefaults()

	palette := NewPalette(base)

	if palette.IsLight {
		t.Fatal("dark background reported as light")
	}
	if palette.ResultBg != lipgloss.Color(tint(base.Result, base.BgPanel, false)) {
		t.Fatalf("ResultBg = %q, want %q", palette.ResultBg, tint(base.Result, base.BgPanel, false))
	}
	if palette.ErrorBg != lipgloss.Color(tint(base.Error, base.BgPanel, false)) {
		t.Fatalf("ErrorBg = %q, want %q", palette.ErrorBg, tint(base.Error, base.BgPanel, false))
	}
	if palette.Border != lipgloss.Color(base.Accent) {
		t.Fatalf("Border = %q, want accent fallback %q", palette.Border, base.Accent)
	}
}

func TestNewPalette_NilThemeFallsBackToMocha(t *testing.T) {
	palette := NewPalette(nil)
	mocha, err := Load("mocha")
	if err != nil {
		t.Fatalf("Load(mocha) failed: %v", err)
	}
	if palette.Bg != lipgloss.Color(mocha.Bg) {
		t.Fatalf("Bg = %q, want %q", palette.Bg, mocha.Bg)
	}
}

func TestChooseTextColor(t *testing.T) {
	if got := chooseTextColor("#ffffff", "#000000", "#ffffff"); got != "#000000" {
		t.Errorf("text on white = %q, want #000000", got)
	}
	if got := chooseTextColor("#000000", "#000000", "#ffffff"); got != "#ffffff" {
		t.Errorf("text on black = %q, want #ffffff", got)
	}
}

func TestBlendColors(t *testing.T) {
	tests := []struct {
		name  string
		a, b  string
		ratio float64
		want  string
	}{
		{name: "zero ratio", a: "#000000", b: "#ffffff", ratio: 0, want: "#000000"},
		{name: "full ratio", a: "#000000", b: "#ffffff", ratio: 1, want: "#ffffff"},
		{name: "half", a: "#000000", b: "#ffffff", ratio: 0.5, want: "#7f7f7f"},
		{name: "clamped", a: "#000000", b: "#ffffff", ratio: 2, want: "#ffffff"},
		{name: "invalid input", a: "red", b: "#ffffff", ratio: 0.5, want: "red"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := blendColors(tt.a, tt.b, tt.ratio); got != tt.want {
				t.Errorf("blendColors(%q, %q, %v) = %q, want %q", tt.a, tt.b, tt.ratio, got, tt.want)
			}
		})
	}
}

func TestIsLightTheme(t *testing.T) {
	if !isLightTheme("#eff1f5") {
		t.Error("latte background should be light")
	}
	if isLightTheme("#1e1e2e") {
		t.Error("mocha background should be dark")
	}
}
