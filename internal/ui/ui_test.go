package ui

import (
	"bytes"
	"testing"

	"github.com/papapumpkin/idgen/internal/ansi"
	"github.com/papapumpkin/idgen/internal/traceid"
)

func TestUsage(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	NewWriter(&buf, false).Usage("idgen <phase> <checkpoint>")

	if got, want := buf.String(), "Usage: idgen <phase> <checkpoint>\n"; got != want {
		t.Errorf("Usage wrote %q, want %q", got, want)
	}
}

func TestError(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	NewWriter(&buf, false).Error("state file is corrupt")

	if got := ansi.Strip(buf.String()); got != "error: state file is corrupt\n" {
		t.Errorf("Error wrote %q", got)
	}
}

func TestWarn(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	NewWriter(&buf, false).Warn("history not written")

	if got := ansi.Strip(buf.String()); got != "warning: history not written\n" {
		t.Errorf("Warn wrote %q", got)
	}
}

func TestVerboseGating(t *testing.T) {
	t.Parallel()

	id := traceid.ID{Counter: 4, Phase: "2", Checkpoint: "1"}

	tests := []struct {
		name    string
		verbose bool
		want    string
	}{
		{"quiet", false, ""},
		{"verbose", true, "loading state\n✓ issued T004_phase2_cp1 (next 5 → .trace/next-id.json)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			p := NewWriter(&buf, tt.verbose)
			p.Info("loading state")
			p.Issued(id, ".trace/next-id.json")

			if got := ansi.Strip(buf.String()); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}
