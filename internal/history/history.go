// Package history is the append-only command history: an in-memory list
// backed by a plain text file, one command per line, never rewritten in
// place.
package history

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/jdb-go/jdb/internal/dbglog"
)

// History holds every non-empty, non-consecutive-duplicate command the
// user has entered, across this and prior sessions.
type History struct {
	path    string
	entries []string
}

// Open loads any existing non-blank lines from path (used as given, with no
// "~/" or XDG expansion) in order, and returns a History ready to append to.
func Open(path string) (*History, error) {
	h := &History{path: path}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return h, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		h.entries = append(h.entries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	dbglog.Debugf("history: loaded %d entries from %s", len(h.entries), path)
	return h, nil
}

// Add records cmd if it is non-empty and differs from the most recent
// entry, appending it to both the in-memory list and the on-disk file.
// Empty strings and consecutive duplicates are silently dropped.
func (h *History) Add(cmd string) error {
	if cmd == "" {
		return nil
	}
	if len(h.entries) > 0 && h.entries[len(h.entries)-1] == cmd {
		return nil
	}

	h.entries = append(h.entries, cmd)
	return h.appendToFile(cmd)
}

func (h *History) appendToFile(cmd string) error {
	if err := os.MkdirAll(filepath.Dir(h.path), 0o755); err != nil {
		return err
	}

	lock := flock.New(h.path + ".lock")
	if err := lock.Lock(); err != nil {
		return err
	}
	defer lock.Unlock()

	f, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(cmd + "\n")
	return err
}

// LastCommand returns the most recently accepted entry, if any.
func (h *History) LastCommand() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	return h.entries[len(h.entries)-1], true
}

// Entries returns a copy of every recorded command, oldest first.
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}
