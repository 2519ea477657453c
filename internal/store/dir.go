// internal/store/dir.go
//
// Directory-backed Store: one game<N>/log.txt per session.
//
// Numbering:
//   - N is one more than the highest existing game<N> directory (1 when none),
//     so numbers only grow and gaps left by deleted sessions are kept.
//   - Names that are not "game" followed by digits, and plain files, are ignored.
//   - If game<N> appears between the scan and the mkdir, the next N is tried.

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/record"
)

const (
	dirPrefix = "game"
	logFile   = "log.txt"
)

type dirStore struct {
	root string
}

// NewDirStore returns a Store rooted at root. The directory is created on
// first Save.
func NewDirStore(root string) Store {
	return &dirStore{root: root}
}

// Save creates the next game<N> directory and writes the summary text.
func (d *dirStore) Save(ctx context.Context, sm record.Summary) (Entry, error) {
	if err := os.MkdirAll(d.root, 0o755); err != nil {
		return Entry{}, fmt.Errorf("mkdir %s: %w", d.root, err)
	}
	nums, err := d.numbers()
	if err != nil {
		return Entry{}, err
	}
	next := 1
	if len(nums) > 0 {
		next = nums[len(nums)-1] + 1
	}

	var dir string
	for {
		if err := ctx.Err(); err != nil {
			return Entry{}, err
		}
		dir = filepath.Join(d.root, dirName(next))
		err := os.Mkdir(dir, 0o755)
		if err == nil {
			break
		}
		if !errors.Is(err, fs.ErrExist) {
			return Entry{}, fmt.Errorf("mkdir %s: %w", dir, err)
		}
		next++
	}

	text := sm.Text()
	path := filepath.Join(dir, logFile)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return Entry{}, fmt.Errorf("write %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("number", next).Msg("session log written")
	return Entry{Number: next, Path: path, Text: text, Fields: parseFields(text)}, nil
}

// List reads every game<N>/log.txt in number order. Directories without a
// readable log are skipped.
func (d *dirStore) List(ctx context.Context) ([]Entry, error) {
	nums, err := d.numbers()
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(nums))
	for _, n := range nums {
		e, err := d.Get(ctx, n)
		if err != nil {
			log.Warn().Err(err).Int("number", n).Msg("skip unreadable session log")
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// Get reads game<n>/log.txt.
func (d *dirStore) Get(ctx context.Context, n int) (Entry, error) {
	if n < 1 {
		return Entry{}, ErrNotFound
	}
	path := filepath.Join(d.root, dirName(n), logFile)
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Entry{}, ErrNotFound
	}
	if err != nil {
		return Entry{}, fmt.Errorf("read %s: %w", path, err)
	}
	text := string(b)
	return Entry{Number: n, Path: path, Text: text, Fields: parseFields(text)}, nil
}

// numbers returns the sorted session numbers present under root.
// A missing root means no sessions yet.
func (d *dirStore) numbers() ([]int, error) {
	ents, err := os.ReadDir(d.root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", d.root, err)
	}
	var nums []int
	for _, e := range ents {
		if !e.IsDir() {
			continue
		}
		if n, ok := parseDirName(e.Name()); ok {
			nums = append(nums, n)
		}
	}
	sort.Ints(nums)
	return nums, nil
}

func dirName(n int) string { return dirPrefix + strconv.Itoa(n) }

// parseDirName accepts "game" followed by one or more ASCII digits.
func parseDirName(name string) (int, bool) {
	rest, ok := strings.CutPrefix(name, dirPrefix)
	if !ok || rest == "" {
		return 0, false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}
