// Package history keeps an append-only JSONL log of issued task-trace IDs.
// Every successful issue can be recorded as one line, making the counter's
// progression auditable after the fact.
package history

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/papapumpkin/idgen/internal/traceid"
)

// FileName is the log file name inside the state directory.
const FileName = "history.jsonl"

// Record is a single issued ID.
type Record struct {
	Timestamp  time.Time `json:"ts"`
	ID         string    `json:"id"`
	Counter    int       `json:"counter"`
	Phase      string    `json:"phase"`
	Checkpoint string    `json:"checkpoint"`
}

// NewRecord builds the log record for id issued at ts.
func NewRecord(id traceid.ID, ts time.Time) Record {
	return Record{
		Timestamp:  ts.UTC(),
		ID:         id.String(),
		Counter:    id.Counter,
		Phase:      id.Phase,
		Checkpoint: id.Checkpoint,
	}
}

// Emitter appends records to a JSONL file. It is safe for concurrent use.
// A nil *Emitter is a valid no-op emitter.
type Emitter struct {
	file *os.File
	enc  *json.Encoder
	mu   sync.Mutex
	now  func() time.Time
}

// NewEmitter opens the log at path for appending, creating the file and its
// parent directory if needed.
func NewEmitter(path string) (*Emitter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("history: create dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", path, err)
	}
	return &Emitter{
		file: f,
		enc:  json.NewEncoder(f),
		now:  time.Now,
	}, nil
}

// Append records id. Calling Append on a nil Emitter is a no-op.
func (e *Emitter) Append(id traceid.ID) error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.enc.Encode(NewRecord(id, e.now())); err != nil {
		return fmt.Errorf("history: encode record: %w", err)
	}
	return nil
}

// Close closes the underlying file. Calling Close on a nil Emitter is a
// no-op.
func (e *Emitter) Close() error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.file.Close(); err != nil {
		return fmt.Errorf("history: close: %w", err)
	}
	return nil
}

// ReadAll decodes every record in r. Blank lines are skipped; a malformed
// line is an error naming its line number.
func ReadAll(r io.Reader) ([]Record, error) {
	var recs []Record
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Bytes()
		if len(text) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(text, &rec); err != nil {
			return recs, fmt.Errorf("history: line %d: %w", line, err)
		}
		recs = append(recs, rec)
	}
	if err := scanner.Err(); err != nil {
		return recs, fmt.Errorf("history: read: %w", err)
	}
	return recs, nil
}

// ReadComplete decodes the newline-terminated records in r and returns the
// byte offset just past the last one. An unterminated trailing line is still
// being written, so it is left for Follow rather than decoded.
func ReadComplete(r io.Reader) ([]Record, int64, error) {
	var recs []Record
	br := bufio.NewReader(r)
	var offset int64
	for line := 1; ; line++ {
		text, err := br.ReadBytes('\n')
		if err == io.EOF {
			return recs, offset, nil
		}
		if err != nil {
			return recs, offset, fmt.Errorf("history: read: %w", err)
		}
		offset += int64(len(text))
		text = bytes.TrimSpace(text)
		if len(text) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(text, &rec); err != nil {
			return recs, offset, fmt.Errorf("history: line %d: %w", line, err)
		}
		recs = append(recs, rec)
	}
}
