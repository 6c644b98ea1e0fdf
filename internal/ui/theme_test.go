package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/folio/internal/interact"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	want := []string{"Nightfox", "Kanagawa", "Slate"}
	if len(names) != len(want) {
		t.Fatalf("ThemeNames() returned %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ThemeNames()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestNextTheme(t *testing.T) {
	tests := []struct {
		current string
		want    string
	}{
		{"Nightfox", "Kanagawa"},
		{"Kanagawa", "Slate"},
		{"Slate", "Nightfox"},
		{"Unknown", "Nightfox"},
	}
	for _, tt := range tests {
		t.Run(tt.current, func(t *testing.T) {
			if got := NextTheme(tt.current); got != tt.want {
				t.Fatalf("NextTheme(%q) = %q, want %q", tt.current, got, tt.want)
			}
		})
	}
}

func TestGetTheme_FallsBackToNightfox(t *testing.T) {
	if got := GetTheme("missing").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(missing).Name = %q, want Nightfox", got)
	}
}

func TestToneStyle(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		styles := th.Styles()
		tests := []struct {
			tone interact.Tone
			want string
		}{
			{interact.TonePrimary, th.Accent},
			{interact.ToneSecondary, th.Secondary},
			{interact.ToneDefault, th.Muted},
		}
		for _, tt := range tests {
			got := styles.ToneStyle(tt.tone).GetBackground()
			if got != lipgloss.Color(tt.want) {
				t.Fatalf("%s: ToneStyle(%v) background = %v, want %s", name, tt.tone, got, tt.want)
			}
		}
	}
}
