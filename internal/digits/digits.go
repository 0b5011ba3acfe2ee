// Package digits computes the decimal digit width of fixed-width integers
// without formatting them.
//
// The layout engine's width estimator needs to know how many bytes an
// integer will occupy once printed, but must not actually format it just to
// measure it — that would defeat the point of a pure, cheap estimate. Each
// function here is an O(1) binary search over the powers of ten, the same
// shape as a decimal itoa routine's internal digit-count table but without
// ever touching an output buffer.
package digits

// Int64 returns the number of bytes strconv.AppendInt(nil, v, 10) would
// produce, including a leading '-' for negative v.
func Int64(v int64) int {
	if v == 0 {
		return 1
	}

	neg := v < 0
	n := uint64(v)
	if neg {
		n = uint64(-(v + 1)) + 1 // avoid overflow on math.MinInt64
	}

	count := Uint64(n)
	if neg {
		count++
	}
	return count
}

// Uint64 returns the number of decimal digits in n. It reports 1 for n == 0.
func Uint64(n uint64) int {
	if n < 10_000_000_000 {
		if n < 100_000 {
			if n < 100 {
				if n < 10 {
					return 1
				}
				return 2
			}
			if n < 1_000 {
				return 3
			}
			if n < 10_000 {
				return 4
			}
			return 5
		}
		if n < 10_000_000 {
			if n < 1_000_000 {
				return 6
			}
			return 7
		}
		if n < 100_000_000 {
			return 8
		}
		if n < 1_000_000_000 {
			return 9
		}
		return 10
	}

	if n < 10_000_000_000_000_000 {
		if n < 100_000_000_000_000 {
			if n < 100_000_000_000 {
				return 11
			}
			if n < 1_000_000_000_000 {
				return 12
			}
			if n < 10_000_000_000_000 {
				return 13
			}
			return 14
		}
		if n < 1_000_000_000_000_000 {
			return 15
		}
		return 16
	}

	if n < 1_000_000_000_000_000_000 {
		if n < 100_000_000_000_000_000 {
			return 17
		}
		return 18
	}
	if n < 10_000_000_000_000_000_000 {
		return 19
	}
	return 20
}
