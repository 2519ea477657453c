// Package daily derives the deterministic "word of the day" draw.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Picker is a deterministic index source seeded by HMAC(salt, YYYY-MM-DD).
// Successive Intn calls consume successive 8-byte blocks of the digest
// chain, so the category draw and the word draw are independent.
type Picker struct {
	key   []byte
	block []byte
	off   int
}

// NewPicker returns the picker for the UTC day of date.
func NewPicker(date time.Time, salt string) *Picker {
	p := &Picker{key: []byte(salt)}
	p.block = p.sum([]byte(DateKey(date)))
	return p
}

// Intn returns an index in [0, n). Returns 0 when n <= 0.
func (p *Picker) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	if p.off+8 > len(p.block) {
		p.block = p.sum(p.block)
		p.off = 0
	}
	v := binary.BigEndian.Uint64(p.block[p.off : p.off+8])
	p.off += 8
	return int(v % uint64(n))
}

func (p *Picker) sum(msg []byte) []byte {
	h := hmac.New(sha256.New, p.key)
	h.Write(msg)
	return h.Sum(nil)
}

// WordIndex returns the first daily index for a list of length n.
func WordIndex(date time.Time, salt string, n int) int {
	return NewPicker(date, salt).Intn(n)
}
