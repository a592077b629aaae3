package ansi

import "testing"

func TestStrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{Red + Bold + "error: " + Reset + "boom", "error: boom"},
		{Dim + Cyan + "x" + Reset + Green + "y" + Yellow + Reset, "xy"},
	}
	for _, tt := range tests {
		if got := Strip(tt.in); got != tt.want {
			t.Errorf("Strip(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
