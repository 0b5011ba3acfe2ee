// Package justify implements the minimum-raggedness line-breaking algorithm
// used to choose break positions for a smart-joined list of items.
//
// It is a direct port of the dynamic-programming justifier described in
// MIT 6.006 lecture 20 (and used by LaTeX's paragraph filling): given the
// width of each item, a separator width, and a target line width, find the
// set of line breaks that minimizes the sum of each line's cubed slack.
package justify

import "github.com/lmika-forks/doctree/internal/assert"

// Break returns the ordered indices into lens at which a new line should
// start, so that item i belongs to the line starting at the previous
// returned index (or 0) and ending just before the next one.
//
// sepLen is the width added between two adjacent items on the same line.
// maxLine is the target width of a single line. An item wider than maxLine
// is never truncated; the length of a line holding it is clamped to
// maxLine for badness purposes, so that line may also hold neighboring
// items.
func Break(sepLen int, lens []int, maxLine int) []int {
	n := len(lens)
	if n == 0 {
		return nil
	}

	const maxBadness = int(^uint(0) >> 1) // math.MaxInt, avoids importing math for one constant

	// best[i].next is the index that starts the line after the one
	// beginning at i; best[i].badness is the total badness of breaking
	// optimally from i to n.
	type score struct {
		badness int
		next    int
	}
	best := make([]score, n+1)
	best[n] = score{badness: 0, next: n}

	for i := n - 1; i >= 0; i-- {
		best[i] = score{badness: maxBadness, next: n}

		lineLen := 0
		for j := i; j < n; j++ {
			lineLen += lens[j]
			if j > i {
				lineLen += sepLen
			}
			if lineLen > maxLine {
				lineLen = maxLine
			}

			slack := maxLine - lineLen
			badness := slack * slack * slack

			total := badness + best[j+1].badness
			if total < best[i].badness {
				best[i] = score{badness: total, next: j + 1}
			}

			if lineLen >= maxLine {
				break
			}
		}
	}

	var breaks []int
	for i := 0; i < n; {
		next := best[i].next
		if next < n {
			breaks = append(breaks, next)
		}
		assert.That(next > i, "justify: Break made no progress from index %d", i)
		i = next
	}
	assertPartition(breaks, n)
	return breaks
}

// assertPartition checks testable property 6: the returned break
// positions, plus n, partition [0, n) with no overlap and no gap.
func assertPartition(breaks []int, n int) {
	prev := 0
	for _, b := range breaks {
		assert.That(b > prev && b < n, "justify: break index %d out of range (0, %d) after %d", b, n, prev)
		prev = b
	}
}
