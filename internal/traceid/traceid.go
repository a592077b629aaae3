// Package traceid formats, parses, and issues task-trace IDs of the form
// T{counter:03d}_phase{phase}_cp{checkpoint}.
package traceid

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrMalformed is returned by Parse when the input is not a task-trace ID.
var ErrMalformed = errors.New("malformed task-trace ID")

// idPattern splits on the first "_phase" after the counter and the last
// "_cp", so phase and checkpoint values may themselves contain underscores.
var idPattern = regexp.MustCompile(`^T([0-9]{3,})_phase(.*)_cp(.*)$`)

// ID is a single issued task-trace identifier.
type ID struct {
	Counter    int    `json:"counter" toml:"counter"`
	Phase      string `json:"phase" toml:"phase"`
	Checkpoint string `json:"checkpoint" toml:"checkpoint"`
}

// Format renders a task-trace ID. The counter is zero-padded to three digits;
// wider values keep every digit. Phase and checkpoint are used verbatim.
func Format(counter int, phase, checkpoint string) string {
	return fmt.Sprintf("T%03d_phase%s_cp%s", counter, phase, checkpoint)
}

// String returns the formatted ID.
func (id ID) String() string {
	return Format(id.Counter, id.Phase, id.Checkpoint)
}

// Parse is the inverse of Format. When the phase contains "_cp" the split is
// ambiguous; Parse assigns everything up to the last "_cp" to the phase.
func Parse(s string) (ID, error) {
	m := idPattern.FindStringSubmatch(s)
	if m == nil {
		return ID{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return ID{}, fmt.Errorf("%w: counter %q: %v", ErrMalformed, m[1], err)
	}
	return ID{Counter: n, Phase: m[2], Checkpoint: m[3]}, nil
}
