package pixela

import "testing"

func TestClosest(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		want       string
	}{
		{"soar", GraphColors, "sora"},
		{"SORA", GraphColors, "sora"},
		{"momji", GraphColors, "momiji"},
		{"kuro", GraphColors, "kuro"},
		{"integer", GraphTypes, "int"},
		{"blue", GraphColors, ""}, // nothing plausibly close
		{"", GraphColors, ""},
	}
	for _, tt := range tests {
		if got := Closest(tt.name, tt.candidates); got != tt.want {
			t.Errorf("Closest(%q): got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"sora", "", 4},
		{"", "sora", 4},
		{"sora", "sora", 0},
		{"soar", "sora", 2},
		{"momji", "momiji", 1},
	}
	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q): got %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
