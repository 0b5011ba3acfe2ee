package doctree_test

import (
	"strings"
	"testing"

	"github.com/teleivo/assertive/assert"

	"github.com/lmika-forks/doctree"
)

func TestBool(t *testing.T) {
	assert.Equals(t, doctree.Print(doctree.Bool(true), nil), "true")
	assert.Equals(t, doctree.Print(doctree.Bool(false), nil), "false")
}

func TestUnit(t *testing.T) {
	assert.Equals(t, doctree.Print(doctree.Unit(), nil), "()")
}

func TestOptional(t *testing.T) {
	var nilPtr *int
	got := doctree.Print(doctree.Optional(nilPtr, doctree.Int[int]), nil)
	assert.Equals(t, got, "None")

	v := 7
	got = doctree.Print(doctree.Optional(&v, doctree.Int[int]), nil)
	assert.Equals(t, got, "7")
}

func TestSliceEmpty(t *testing.T) {
	got := doctree.Print(doctree.Slice([]int(nil), doctree.Int[int]), nil)
	assert.Equals(t, got, "[]")
}

func TestSliceFitsOneLine(t *testing.T) {
	got := doctree.Print(doctree.Slice([]int{1, 2, 3}, doctree.Int[int]), nil)
	assert.Equals(t, got, "[1, 2, 3]")
}

func TestSliceWrapsWhenWide(t *testing.T) {
	items := make([]int, 30)
	for i := range items {
		items[i] = i + 1
	}
	p := doctree.DefaultPrinter()
	p.MaxWidth = 32
	p.Indent = 4
	doc := doctree.Slice(items, doctree.Int[int])

	// 30 items estimate to 109 wide, well past MaxWidth 32, so the Group
	// wrapping the body forces its leading/trailing breaks: "[" alone on
	// the first line, "]" alone on the last (dedented to zero), and every
	// line in between indented one level.
	got := doctree.Print(doc, &p)
	lines := strings.Split(got, "\n")
	assert.Equals(t, lines[0], "[", "forced break should leave the opening bracket alone on the first line, got %q", got)
	assert.Equals(t, lines[len(lines)-1], "]", "the dedented closing bracket should be alone on the last line, got %q", got)
	assert.Equals(t, len(lines) > 2, true, "30 items at max width 32 must wrap onto multiple lines, got %q", got)

	for _, line := range lines[1 : len(lines)-1] {
		assert.Equals(t, strings.HasPrefix(line, "    "), true, "continuation line %q should be indented 4 spaces", line)
	}
}

func TestSetEmpty(t *testing.T) {
	got := doctree.Print(doctree.Set(map[int]struct{}(nil), doctree.Int[int]), nil)
	assert.Equals(t, got, "{}")
}

func TestSetSingleton(t *testing.T) {
	got := doctree.Print(doctree.Set(map[int]struct{}{5: {}}, doctree.Int[int]), nil)
	assert.Equals(t, got, "{5}")
}

func TestMapEmpty(t *testing.T) {
	got := doctree.Print(doctree.Map(map[string]int(nil), doctree.Text, doctree.Int[int]), nil)
	assert.Equals(t, got, "{}")
}

func TestMapSingleton(t *testing.T) {
	got := doctree.Print(doctree.Map(map[string]int{"a": 1}, doctree.Text, doctree.Int[int]), nil)
	assert.Equals(t, got, `{a: 1}`)
}

func TestMapMultiEntryOneLinePerPair(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}
	got := doctree.Print(doctree.Map(m, doctree.Text, doctree.Int[int]), nil)

	assert.Equals(t, strings.HasPrefix(got, "{"), true)
	assert.Equals(t, strings.HasSuffix(got, "}"), true)
	// The hardline separator pushes the Group over MaxWidth, so it also
	// forces a break after "{" and before "}": one break between the pairs
	// plus those two.
	assert.Equals(t, strings.Count(got, "\n"), 3, "two pairs must land on separate lines, got %q", got)
}

func TestTuple(t *testing.T) {
	got := doctree.Print(doctree.Tuple(doctree.Int(1), doctree.Text("two"), doctree.Bool(true)), nil)
	assert.Equals(t, got, "(1, two, true)")
}

func TestTuplePanicsBelowArityTwo(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected Tuple with fewer than 2 items to panic")
		}
	}()
	doctree.Tuple(doctree.Int(1))
}
