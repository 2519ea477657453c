package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	d := time.Date(2026, 10, 18, 5, 0, 0, 0, loc)
	assert.Equal(t, "2026-10-17", DateKey(d))
}

func TestPickerIsDeterministicPerDay(t *testing.T) {
	day := time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)
	later := time.Date(2026, 10, 18, 23, 59, 0, 0, time.UTC)

	a, b := NewPicker(day, "salt"), NewPicker(later, "salt")
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Intn(97), b.Intn(97))
	}
}

func TestPickerStaysInRange(t *testing.T) {
	p := NewPicker(time.Now(), "x")
	for i := 0; i < 50; i++ {
		v := p.Intn(7)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 7)
	}
	assert.Equal(t, 0, p.Intn(0))
}

func TestWordIndexDependsOnSalt(t *testing.T) {
	day := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seen := map[int]bool{}
	for _, salt := range []string{"a", "b", "c", "d", "e", "f"} {
		seen[WordIndex(day, salt, 1000)] = true
	}
	assert.Greater(t, len(seen), 1)
}
