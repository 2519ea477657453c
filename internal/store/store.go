// internal/store/store.go
//
// Persistence for finished session summaries.
//
// Each session is one Entry numbered from 1. The on-disk implementation
// (dir.go) writes game<N>/log.txt under a root directory; the in-memory
// implementation (memory.go) is used by tests and dry runs.

package store

import (
	"bufio"
	"context"
	"errors"
	"strings"

	"github.com/robalobadob/hangman/internal/record"
)

// ErrNotFound is returned by Get for an unknown session number.
var ErrNotFound = errors.New("not found")

// Store defines the persistence interface for session summaries.
type Store interface {
	// Save records a summary as a new session and returns its entry.
	Save(ctx context.Context, sm record.Summary) (Entry, error)

	// List returns all recorded sessions ordered by number.
	List(ctx context.Context) ([]Entry, error)

	// Get returns session n, or ErrNotFound.
	Get(ctx context.Context, n int) (Entry, error)
}

// Entry is one recorded session.
type Entry struct {
	Number int               `json:"number"`
	Path   string            `json:"path,omitempty"`
	Text   string            `json:"text,omitempty"`
	Fields map[string]string `json:"fields"`
}

// Result returns the "Final result" field.
func (e Entry) Result() string { return e.Fields["Final result"] }

// parseFields collects the "Key: value" header lines of a session text,
// stopping at the first blank line.
func parseFields(text string) map[string]string {
	out := make(map[string]string)
	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		k, v, ok := strings.Cut(line, ": ")
		if !ok {
			k, v, ok = strings.Cut(line, ":")
		}
		if ok {
			out[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}
	return out
}
