// Package doctree implements a pretty-printer: a document algebra plus a
// stack-driven layout engine that renders a tree of layout nodes into text
// respecting a maximum line width, an indentation policy, and a break
// discipline.
//
// Build a document with the constructors in this file ([Text], [Group],
// [Indent], [SmartJoin], …), the container conversions in convert.go
// ([Slice], [Map], [Set], [Tuple]), or the reflection-based [derive]
// package for arbitrary Go values. Render it with [Print] or [Fprint].
package doctree

// Doc is a node in the document tree. The set of implementations is closed;
// doc is unexported so that no type outside this package can satisfy the
// interface, the same closed-variant-set pattern the teacher's internal
// layout package uses for its own tag interface.
type Doc interface {
	doc()
}

// Integer is the constraint satisfied by every Go integer kind, accepted by
// [Int] so callers never need to convert their own named integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Real is the constraint satisfied by every Go floating-point kind,
// accepted by [Float].
type Real interface {
	~float32 | ~float64
}

type nullDoc struct{}

func (nullDoc) doc() {}

// null is the single shared instance returned by [Null]; Doc values are
// immutable, so sharing it is safe.
var null Doc = nullDoc{}

// Null is the empty document. It contributes nothing when rendered.
func Null() Doc { return null }

type textDoc struct{ s string }

func (textDoc) doc() {}

// Text is a literal byte string, emitted as-is. The caller's string must
// outlive the [Print]/[Fprint] call that consumes it, exactly as a
// borrowed slice would in a language with explicit lifetimes; Go's
// garbage collector makes this automatic.
func Text(s string) Doc { return textDoc{s: s} }

type intDoc struct {
	v   int64
	u   uint64
	isU bool
}

func (intDoc) doc() {}

// Int renders v as a decimal integer at emit time. T may be any signed or
// unsigned Go integer kind; Go generics collapse what the original
// implementation needed one macro-generated variant per integer width for.
func Int[T Integer](v T) Doc {
	// A single comparison against 0 after conversion to a wide signed type
	// would misclassify uint64 values above math.MaxInt64, so branch on
	// T's signedness with a negative-value probe instead.
	if isSignedInteger(v) {
		return intDoc{v: int64(v)}
	}
	return intDoc{u: uint64(v), isU: true}
}

// isSignedInteger reports whether decrementing the zero value of T
// produces a negative number, i.e. whether T is a signed integer kind.
func isSignedInteger[T Integer](_ T) bool {
	var zero T
	return zero-1 < zero
}

type floatDoc struct {
	f    float64
	bits int
}

func (floatDoc) doc() {}

// Float renders v as the shortest round-trip decimal representation at
// emit time. T is either float32 or float64; the stored bit width controls
// which strconv.FormatFloat precision is used so a float32 does not grow
// spurious trailing digits.
func Float[T Real](v T) Doc {
	// Detect a 32-bit kind by its precision so named float32 types are
	// covered too: 1+2^-30 rounds to exactly 1 in float32 but not float64.
	probe := 1 + 1.0/(1<<30)
	bits := 64
	if T(probe) == 1 {
		bits = 32
	}
	return floatDoc{f: float64(v), bits: bits}
}

type concatDoc struct{ items []Doc }

func (concatDoc) doc() {}

// Concat emits its children in order. A zero-argument Concat is equivalent
// to [Null].
func Concat(items ...Doc) Doc {
	if len(items) == 0 {
		return Null()
	}
	return concatDoc{items: items}
}

type groupDoc struct{ child Doc }

func (groupDoc) doc() {}

// Group tries to emit its child on a single line. If the child's estimated
// width exceeds the printer's max width, Group forces a break before and
// after the child (the trailing break dedented to the surrounding level)
// and any interior [Softline]/[Mediumline] inside the child may fire.
func Group(child Doc) Doc { return groupDoc{child: child} }

type indentDoc struct{ child Doc }

func (indentDoc) doc() {}

// Indent emits its child with the indent depth increased by one level.
func Indent(child Doc) Doc { return indentDoc{child: child} }

type dedentDoc struct{ child Doc }

func (dedentDoc) doc() {}

// Dedent emits its child with the indent depth decreased by one level,
// saturating at zero.
func Dedent(child Doc) Doc { return dedentDoc{child: child} }

type joinDoc struct {
	sep   Doc
	items []Doc
}

func (joinDoc) doc() {}

// Join emits items in order with sep between each adjacent pair. An empty
// items slice emits nothing.
func Join(sep Doc, items []Doc) Doc {
	if len(items) == 0 {
		return Null()
	}
	return joinDoc{sep: sep, items: items}
}

type smartJoinDoc struct {
	sep   Doc
	items []Doc
}

func (smartJoinDoc) doc() {}

// SmartJoin behaves like [Join] but the layout engine chooses break
// positions for it using the minimum-raggedness justifier (see
// internal/justify), producing visually balanced line-wrapped output
// instead of one item per line or one giant line.
func SmartJoin(sep Doc, items []Doc) Doc {
	if len(items) == 0 {
		return Null()
	}
	return smartJoinDoc{sep: sep, items: items}
}

type ifBreakDoc struct{ on, off Doc }

func (ifBreakDoc) doc() {}

// IfBreak emits on if the most recently emitted node was a break that
// actually fired (a [Hardline], a [Line], or a [Softline]/[Mediumline] that
// emitted a newline); otherwise it emits off.
func IfBreak(on, off Doc) Doc { return ifBreakDoc{on: on, off: off} }

type hardlineDoc struct{}

func (hardlineDoc) doc() {}

var hardline Doc = hardlineDoc{}

// Hardline always emits a newline followed by the current indent depth's
// worth of indent bytes.
func Hardline() Doc { return hardline }

type softlineDoc struct{}

func (softlineDoc) doc() {}

var softline Doc = softlineDoc{}

// Softline emits a newline (as [Hardline]) only if the current column
// exceeds the printer's max width; otherwise it emits nothing.
func Softline() Doc { return softline }

type mediumlineDoc struct{}

func (mediumlineDoc) doc() {}

var mediumline Doc = mediumlineDoc{}

// Mediumline emits a newline (as [Hardline]) only if the current column
// exceeds half the printer's max width; otherwise it emits nothing.
func Mediumline() Doc { return mediumline }

type lineDoc struct{}

func (lineDoc) doc() {}

var line Doc = lineDoc{}

// Line always emits a newline with no following indent bytes.
func Line() Doc { return line }
