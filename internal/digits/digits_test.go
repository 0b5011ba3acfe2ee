package digits_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/teleivo/assertive/assert"

	"github.com/lmika-forks/doctree/internal/digits"
)

func TestUint64(t *testing.T) {
	tests := map[string]uint64{
		"zero":               0,
		"one digit":          7,
		"two digits":         42,
		"boundary 99/100":    99,
		"boundary 100":       100,
		"boundary 9999/10000": 9_999,
		"boundary 10000":     10_000,
		"ten digits":         9_999_999_999,
		"eleven digits":      10_000_000_000,
		"max uint64":         math.MaxUint64,
		"max uint64 minus 1": math.MaxUint64 - 1,
	}

	for name, n := range tests {
		t.Run(name, func(t *testing.T) {
			want := len(strconv.FormatUint(n, 10))
			assert.Equals(t, digits.Uint64(n), want, "Uint64(%d)", n)
		})
	}
}

func TestInt64(t *testing.T) {
	tests := map[string]int64{
		"zero":           0,
		"positive":       12345,
		"negative":       -12345,
		"negative one":   -1,
		"min int64":      math.MinInt64,
		"min int64 + 1":  math.MinInt64 + 1,
		"max int64":      math.MaxInt64,
		"boundary -10":   -10,
		"boundary -9":    -9,
		"boundary -100":  -100,
		"boundary -99":   -99,
	}

	for name, n := range tests {
		t.Run(name, func(t *testing.T) {
			want := len(strconv.FormatInt(n, 10))
			assert.Equals(t, digits.Int64(n), want, "Int64(%d)", n)
		})
	}
}

func TestUint64AllDecades(t *testing.T) {
	for exp := 0; exp <= 19; exp++ {
		n := uint64(1)
		for range exp {
			n *= 10
		}
		want := len(strconv.FormatUint(n, 10))
		assert.Equals(t, digits.Uint64(n), want, "Uint64(10^%d)", exp)

		if n > 1 {
			assert.Equals(t, digits.Uint64(n-1), want-1, "Uint64(10^%d - 1)", exp)
		}
	}
}
