package doctree

import "sort"

// Bool renders v as the literal text "true" or "false".
func Bool(v bool) Doc {
	if v {
		return Text("true")
	}
	return Text("false")
}

// Unit renders the empty tuple as the literal text "()".
func Unit() Doc { return Text("()") }

// Optional renders *v via conv if v is non-nil, else the literal text
// "None".
func Optional[T any](v *T, conv func(T) Doc) Doc {
	if v == nil {
		return Text("None")
	}
	return conv(*v)
}

// wrapBracketed implements the shared sequence/set/map layout: a non-empty
// grouped body bracketed by open/close and wrapped in an Indent so any
// forced break lands one level in. The brackets sit outside the Group,
// which wraps only the inner SmartJoin (or, for [Map], Join).
func wrapBracketed(open, close string, body Doc) Doc {
	return Indent(Concat(Text(open), Group(body), Text(close)))
}

// Slice renders items as a sequence: "[]" when empty, otherwise its
// elements comma-joined under [SmartJoin], bracketed and indented.
func Slice[T any](items []T, conv func(T) Doc) Doc {
	if len(items) == 0 {
		return Text("[]")
	}
	docs := make([]Doc, len(items))
	for i, item := range items {
		docs[i] = conv(item)
	}
	return wrapBracketed("[", "]", SmartJoin(Text(", "), docs))
}

// Set renders items as an unordered collection: "{}" when empty,
// otherwise its elements comma-joined under [SmartJoin], braced and
// indented, mirroring [Slice] minus the ordering guarantee. Go has no
// built-in set type, so the idiomatic representation is a map to an empty
// struct.
//
// Go map iteration order is randomized, so elements are sorted by their
// own rendered text before joining; this keeps repeated calls on an equal
// set byte-identical without requiring T to be Ordered.
func Set[T comparable](items map[T]struct{}, conv func(T) Doc) Doc {
	if len(items) == 0 {
		return Text("{}")
	}
	docs := make([]Doc, 0, len(items))
	for item := range items {
		docs = append(docs, conv(item))
	}
	sortByRenderedText(docs)
	return wrapBracketed("{", "}", SmartJoin(Text(", "), docs))
}

// Map renders m as an unordered key-value collection: "{}" when empty,
// otherwise its "key: value" pairs joined by ", " plus a [Hardline] under
// [Join], braced and indented. Unlike [Slice]/[Set] the pair separator
// forces one pair per line rather than deferring to the justifier, exactly
// as the source it is ported from does for maps.
//
// Pairs are sorted by their own rendered "key: value" text for the same
// reason [Set] sorts its elements: Go map iteration order is randomized.
func Map[K comparable, V any](m map[K]V, keyConv func(K) Doc, valConv func(V) Doc) Doc {
	if len(m) == 0 {
		return Text("{}")
	}
	docs := make([]Doc, 0, len(m))
	for k, v := range m {
		docs = append(docs, Concat(keyConv(k), Text(": "), valConv(v)))
	}
	sortByRenderedText(docs)
	return wrapBracketed("{", "}", Join(Concat(Text(", "), Hardline()), docs))
}

// sortByRenderedText orders docs by their own rendered output so that
// containers backed by Go's randomized map iteration produce
// byte-identical text across repeated calls on an equal value.
func sortByRenderedText(docs []Doc) {
	sort.Slice(docs, func(i, j int) bool {
		return Print(docs[i], nil) < Print(docs[j], nil)
	})
}

// Tuple renders items parenthesized and comma-joined under [SmartJoin],
// grouped. The source this is ported from needs one macro expansion per
// arity (2 through 12); Go's variadic parameters remove that ceiling, so
// Tuple accepts any arity of 2 or more.
func Tuple(items ...Doc) Doc {
	if len(items) < 2 {
		panic("doctree: Tuple requires at least 2 items")
	}
	return Concat(Text("("), Group(SmartJoin(Text(", "), items)), Text(")"))
}
