package ui

import (
	"testing"

	"github.com/five82/lander/internal/state"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	want := []string{"Nightfox", "Kanagawa", "Slate"}
	if len(names) != len(want) {
		t.Fatalf("ThemeNames() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ThemeNames() = %v, want %v", names, want)
		}
	}
}

func TestNextTheme(t *testing.T) {
	cases := map[string]string{
		"Nightfox": "Kanagawa",
		"Kanagawa": "Slate",
		"Slate":    "Nightfox",
		"Unknown":  "Nightfox",
	}
	for in, want := range cases {
		if got := NextTheme(in); got != want {
			t.Fatalf("NextTheme(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGetThemeFallsBack(t *testing.T) {
	if got := GetTheme("Slate").Name; got != "Slate" {
		t.Fatalf("GetTheme(Slate).Name = %q", got)
	}
	if got := GetTheme("missing").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(missing).Name = %q, want Nightfox", got)
	}
}

func TestThemesDefineEveryPhase(t *testing.T) {
	phases := []state.Phase{
		state.PhaseIdle,
		state.PhaseChecking,
		state.PhaseFree,
		state.PhaseBusy,
		state.PhaseLanding,
	}
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, p := range phases {
			if th.PhaseColors[p.String()] == "" {
				t.Fatalf("theme %s missing color for phase %s", name, p)
			}
		}
	}
}
