package model

import "testing"

func TestResolveToggle(t *testing.T) {
	tests := []struct {
		name     string
		inserted int
		deleted  int
		want     ToggleState
	}{
		{"insert wins", 1, 0, ToggleAdded},
		{"delete wins", 0, 1, ToggleRemoved},
		{"lost insert race", 0, 0, ToggleAdded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveToggle(tt.inserted, tt.deleted); got != tt.want {
				t.Errorf("ResolveToggle(%d, %d) = %q, want %q",
					tt.inserted, tt.deleted, got, tt.want)
			}
		})
	}
}

func TestResolveToggle_Alternates(t *testing.T) {
	// A serial sequence of toggles strictly alternates state.
	first := ResolveToggle(1, 0)
	second := ResolveToggle(0, 1)
	third := ResolveToggle(1, 0)
	if first != ToggleAdded || second != ToggleRemoved || third != ToggleAdded {
		t.Errorf("sequence = %q, %q, %q; want added, removed, added", first, second, third)
	}
}
