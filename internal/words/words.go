// internal/words/words.go
//
// Word catalog for the game engine.
//
// Responsibilities:
//   - Hold the static category → word list mapping (compiled in via assets).
//   - Draw a (category, word) pair, for a chosen or a random category.
//   - Keep randomness injectable (Picker) so tests can fix the draw.
//
// Constraints:
//   • Category order is the order of categories.toml.
//   • Words are normalized to lowercase; non-alphabetic entries are dropped.
//   • A catalog with no categories (or a category with no words) is rejected.

package words

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unicode"

	"github.com/robalobadob/hangman/assets"
)

var (
	ErrEmptyCatalog    = errors.New("words: catalog is empty")
	ErrUnknownCategory = errors.New("words: unknown category")
)

// Picker returns a uniformly distributed index in [0, n).
// *math/rand.Rand satisfies it, which is what tests inject.
type Picker interface {
	Intn(n int) int
}

// Category is a named group of candidate words.
type Category struct {
	Name  string
	Words []string
}

// Catalog is an immutable, ordered set of categories.
type Catalog struct {
	categories []Category
	byName     map[string]int
}

// New builds a catalog from categories, normalizing words.
// Returns ErrEmptyCatalog if nothing usable remains.
func New(cats []Category) (*Catalog, error) {
	c := &Catalog{byName: make(map[string]int, len(cats))}
	for _, cat := range cats {
		name := strings.TrimSpace(cat.Name)
		list := normalize(cat.Words)
		if name == "" {
			continue
		}
		if len(list) == 0 {
			return nil, fmt.Errorf("%w: category %q has no words", ErrEmptyCatalog, name)
		}
		if _, dup := c.byName[name]; dup {
			return nil, fmt.Errorf("words: duplicate category %q", name)
		}
		c.byName[name] = len(c.categories)
		c.categories = append(c.categories, Category{Name: name, Words: list})
	}
	if len(c.categories) == 0 {
		return nil, ErrEmptyCatalog
	}
	return c, nil
}

// Default loads the catalog embedded in the binary.
func Default() (*Catalog, error) {
	files, err := assets.Categories()
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	cats := make([]Category, 0, len(files))
	for _, f := range files {
		cats = append(cats, Category{Name: f.Name, Words: f.Words})
	}
	return New(cats)
}

// Names returns category names in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.categories))
	for i, cat := range c.categories {
		out[i] = cat.Name
	}
	return out
}

// Words returns a copy of the word list for name.
func (c *Catalog) Words(name string) ([]string, error) {
	i, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return append([]string(nil), c.categories[i].Words...), nil
}

// Draw picks a word from category name. An empty name picks the category
// at random first. A nil picker falls back to crypto/rand.
func (c *Catalog) Draw(name string, p Picker) (category, word string, err error) {
	if p == nil {
		p = CryptoPicker{}
	}
	var cat Category
	if name == "" {
		cat = c.categories[p.Intn(len(c.categories))]
	} else {
		i, ok := c.byName[name]
		if !ok {
			return "", "", fmt.Errorf("%w: %q", ErrUnknownCategory, name)
		}
		cat = c.categories[i]
	}
	return cat.Name, cat.Words[p.Intn(len(cat.Words))], nil
}

// CryptoPicker draws indices from crypto/rand.
type CryptoPicker struct{}

// Intn returns a random index in [0, n). n must be positive.
func (CryptoPicker) Intn(n int) int {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(nBig.Int64())
}

// normalize lowercases and trims words, keeping only alphabetic ones.
func normalize(list []string) []string {
	var out []string
	for _, w := range list {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// isAlpha reports whether every rune of s is a letter.
func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
