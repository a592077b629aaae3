package history

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
)

// Follow delivers records from the current read offset of f onwards, like
// tail -f. Anything already complete at that offset is delivered first; see
// ReadComplete for finding where to start. It returns when ctx is done or the
// watcher fails. Lines that are not valid records are skipped.
func Follow(ctx context.Context, f *os.File, fn func(Record)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("history: create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(f.Name()); err != nil {
		return fmt.Errorf("history: watch %s: %w", f.Name(), err)
	}

	reader := bufio.NewReader(f)
	var partial []byte

	drain := func() {
		for {
			chunk, err := reader.ReadBytes('\n')
			partial = append(partial, chunk...)
			if err != nil {
				// Keep an unterminated tail for the next write event.
				return
			}
			var rec Record
			if json.Unmarshal(partial, &rec) == nil {
				fn(rec)
			}
			partial = partial[:0]
		}
	}

	drain()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) {
				drain()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("history: watcher: %w", err)
		}
	}
}
