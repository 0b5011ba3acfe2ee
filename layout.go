package doctree

import (
	"bytes"
	"io"
	"strconv"

	"github.com/lmika-forks/doctree/internal/justify"
)

// workItem is a single entry of the engine's explicit stack: a document
// node paired with the indent depth it should be rendered at. Keeping the
// loop body flat (no native recursion) is what lets the engine walk
// arbitrarily deep documents without overflowing the call stack.
type workItem struct {
	doc    Doc
	indent int
}

// state is the engine's mutable working set for a single render call; it
// is never shared across calls or goroutines.
type state struct {
	p              Printer
	buf            bytes.Buffer
	column         int
	lastBreakFired bool
	stack          []workItem
}

func (s *state) push(d Doc, indent int) {
	s.stack = append(s.stack, workItem{doc: d, indent: indent})
}

// pushReverse pushes items so that items[0] pops first.
func (s *state) pushReverse(items []Doc, indent int) {
	for i := len(items) - 1; i >= 0; i-- {
		s.push(items[i], indent)
	}
}

func (s *state) writeString(str string) {
	s.buf.WriteString(str)
	s.column += len(str)
	s.lastBreakFired = false
}

func (s *state) emitHardline(indent int) {
	s.buf.WriteByte('\n')
	ib := s.p.indentByte()
	for range indent {
		s.buf.WriteByte(ib)
	}
	s.column = indent
	s.lastBreakFired = true
}

func (s *state) emitLine() {
	s.buf.WriteByte('\n')
	s.column = 0
	s.lastBreakFired = true
}

func (s *state) step(item workItem) {
	switch n := item.doc.(type) {
	case nullDoc:
		// contributes nothing
	case textDoc:
		s.writeString(n.s)
	case intDoc:
		start := s.buf.Len()
		if n.isU {
			s.buf.Write(strconv.AppendUint(s.buf.AvailableBuffer(), n.u, 10))
		} else {
			s.buf.Write(strconv.AppendInt(s.buf.AvailableBuffer(), n.v, 10))
		}
		s.column += s.buf.Len() - start
		s.lastBreakFired = false
	case floatDoc:
		start := s.buf.Len()
		s.buf.Write(strconv.AppendFloat(s.buf.AvailableBuffer(), n.f, 'g', -1, n.bits))
		s.column += s.buf.Len() - start
		s.lastBreakFired = false
	case concatDoc:
		s.pushReverse(n.items, item.indent)
	case groupDoc:
		s.stepGroup(n, item.indent)
	case indentDoc:
		s.push(n.child, item.indent+s.p.Indent)
	case dedentDoc:
		ni := item.indent - s.p.Indent
		if ni < 0 {
			ni = 0
		}
		s.push(n.child, ni)
	case joinDoc:
		s.pushReverse(joinFlat(n.sep, n.items), item.indent)
	case smartJoinDoc:
		s.stepSmartJoin(n, item.indent)
	case ifBreakDoc:
		if s.lastBreakFired {
			s.push(n.on, item.indent)
		} else {
			s.push(n.off, item.indent)
		}
	case hardlineDoc:
		s.emitHardline(item.indent)
	case softlineDoc:
		if s.column > s.p.MaxWidth {
			s.emitHardline(item.indent)
		}
	case mediumlineDoc:
		if s.column > s.p.MaxWidth/2 {
			s.emitHardline(item.indent)
		}
	case lineDoc:
		s.emitLine()
	}
}

func (s *state) stepGroup(n groupDoc, indent int) {
	w := Estimate(n.child, s.p)
	if w <= s.p.MaxWidth {
		s.push(n.child, indent)
		return
	}
	trailingIndent := indent - s.p.Indent
	if trailingIndent < 0 {
		trailingIndent = 0
	}
	s.push(hardline, trailingIndent)
	s.push(n.child, indent)
	s.push(hardline, indent)
}

func joinFlat(sep Doc, items []Doc) []Doc {
	flat := make([]Doc, 0, 2*len(items)-1)
	for i, it := range items {
		if i > 0 {
			flat = append(flat, sep)
		}
		flat = append(flat, it)
	}
	return flat
}

func (s *state) stepSmartJoin(n smartJoinDoc, indent int) {
	sepW := Estimate(n.sep, s.p)
	lens := make([]int, len(n.items))
	maxItemLen := 0
	for i, it := range n.items {
		lens[i] = Estimate(it, s.p)
		if lens[i] > maxItemLen {
			maxItemLen = lens[i]
		}
	}
	m := sepW
	if maxItemLen > m {
		m = maxItemLen
	}
	sepLen := sepW + m

	maxLine := s.p.MaxWidth / 4
	if maxLine < 2 {
		maxLine = 2
	}

	breaks := justify.Break(sepLen, lens, maxLine)
	breakSet := make(map[int]struct{}, len(breaks))
	for _, b := range breaks {
		breakSet[b] = struct{}{}
	}

	flat := make([]Doc, 0, 3*len(n.items))
	flat = append(flat, n.items[0])
	for i := 1; i < len(n.items); i++ {
		flat = append(flat, n.sep)
		if _, ok := breakSet[i]; ok {
			flat = append(flat, hardline)
		}
		flat = append(flat, n.items[i])
	}
	s.pushReverse(flat, indent)
}

func render(d Doc, p Printer) string {
	s := &state{p: p}
	s.push(d, 0)
	for len(s.stack) > 0 {
		top := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		s.step(top)
	}
	return s.buf.String()
}

// Print renders doc to a string using p, or [DefaultPrinter] if p is nil.
func Print(doc Doc, p *Printer) string {
	pr := DefaultPrinter()
	if p != nil {
		pr = *p
	}
	return render(doc, pr)
}

// Fprint renders doc to w using p (or [DefaultPrinter] if nil), returning
// the number of bytes written. Its only possible error is the writer's
// own write error; the engine itself cannot fail on a well-formed
// document.
func Fprint(w io.Writer, doc Doc, p *Printer) (int, error) {
	return io.WriteString(w, Print(doc, p))
}
