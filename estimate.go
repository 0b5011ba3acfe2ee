package doctree

import "github.com/lmika-forks/doctree/internal/digits"

// Estimate computes a document's width as [Group] and [SmartJoin] see it:
// a pure, recursive measure that never inspects layout state, only the
// document and printer configuration. It deliberately over-approximates
// [Hardline] and [Line] as the full max width, so a group containing one
// alongside any other non-empty content is treated as needing to break;
// [Softline] and [Mediumline] count as half the max width.
func Estimate(d Doc, p Printer) int {
	switch n := d.(type) {
	case nullDoc:
		return 0
	case textDoc:
		return len(n.s)
	case intDoc:
		if n.isU {
			return digits.Uint64(n.u)
		}
		return digits.Int64(n.v)
	case floatDoc:
		if n.bits == 32 {
			return 10
		}
		return 20
	case concatDoc:
		total := 0
		for _, item := range n.items {
			total += Estimate(item, p)
		}
		return total
	case groupDoc:
		return Estimate(n.child, p)
	case indentDoc:
		return Estimate(n.child, p) + p.Indent
	case dedentDoc:
		w := Estimate(n.child, p) - p.Indent
		if w < 0 {
			return 0
		}
		return w
	case joinDoc:
		return estimateJoin(n.sep, n.items, p)
	case smartJoinDoc:
		// Reports its unbroken width; the justifier (internal/justify),
		// not the estimator, decides where SmartJoin actually breaks.
		return estimateJoin(n.sep, n.items, p)
	case ifBreakDoc:
		a, b := Estimate(n.on, p), Estimate(n.off, p)
		if a > b {
			return a
		}
		return b
	case softlineDoc, mediumlineDoc:
		return p.MaxWidth / 2
	case hardlineDoc, lineDoc:
		return p.MaxWidth
	default:
		return 0
	}
}

func estimateJoin(sep Doc, items []Doc, p Printer) int {
	if len(items) == 0 {
		return 0
	}
	sepW := Estimate(sep, p)
	total := 0
	for _, item := range items {
		total += Estimate(item, p)
	}
	return total + sepW*(len(items)-1)
}
