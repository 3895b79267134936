package scansion

import "testing"

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"æstās", "aestās"},
		{"Cæsar", "Caesar"},
		{"pœna", "poena"},
		{"āla", "āla"},  // combining macron composes to ā
		{"ăla", "ala"},        // precomposed breve strips
		{"ĕrat", "erat"},     // combining breve strips too
		{"quō usque", "quō usque"}, // already clean
	}
	for _, tt := range tests {
		if got := NormalizeText(tt.in); got != tt.want {
			t.Errorf("NormalizeText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanWord(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Catilīna,", "catilīna"},
		{"nostrā?", "nostrā"},
		{"(quō)", "quō"},
		{"63", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := cleanWord(tt.in); got != tt.want {
			t.Errorf("cleanWord(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
