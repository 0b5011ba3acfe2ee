// Package derive implements, at runtime via reflect, the derivation
// contract a compile-time code generator would otherwise satisfy: turning
// an arbitrary Go value into a [doctree.Doc] according to a small set of
// per-field and per-container options.
//
// Go has no attribute-macro equivalent to drive this at compile time, so
// the contract is realized the way encoding/json and encoding/xml realize
// their own struct-tag contracts: reflection plus a "doctree" struct tag.
package derive

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/lmika-forks/doctree"
)

// Options carries the container-level choices a type can request, either
// by passing them explicitly to [Struct]/[Union] or by implementing
// [Annotated].
type Options struct {
	// Verbose includes field names ("name: value") in struct and union
	// output, plus the type-name header for a struct and the variant name
	// for a union; otherwise only values are shown.
	Verbose bool
	// Rename overrides the type or variant name used in verbose output.
	Rename string
}

// Annotated is implemented by types that want to supply their own
// [Options] instead of the zero value. [ToDoc] consults it before falling
// back to Options{}.
type Annotated interface {
	PrettyOptions() Options
}

type fieldOptions struct {
	skip   bool
	indent bool
	rename string
	getter string
}

// parseFieldTag parses a `doctree:"..."` struct tag: a comma-separated
// list of "skip", "indent", "rename=name" and "getter=MethodName".
func parseFieldTag(tag string) (fieldOptions, error) {
	var fo fieldOptions
	if tag == "" {
		return fo, nil
	}
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		switch {
		case part == "skip":
			fo.skip = true
		case part == "indent":
			fo.indent = true
		case strings.HasPrefix(part, "rename="):
			v := strings.TrimPrefix(part, "rename=")
			if v == "" {
				return fo, fmt.Errorf("derive: rename option requires a value in tag %q", tag)
			}
			fo.rename = v
		case strings.HasPrefix(part, "getter="):
			v := strings.TrimPrefix(part, "getter=")
			if v == "" {
				return fo, fmt.Errorf("derive: getter option requires a value in tag %q", tag)
			}
			fo.getter = v
		default:
			return fo, fmt.Errorf("derive: unknown doctree tag option %q", part)
		}
	}
	return fo, nil
}

// Struct renders v, which must be a struct or a pointer to one, as a
// record: fields joined by ", " plus a [doctree.Hardline], grouped,
// wrapped in "{" … "}" with the closing brace dedented, wrapped in
// [doctree.Indent]. When opts.Verbose, each field is prefixed "name: "
// and the body is preceded by a grouped, indented "<TypeName> " header.
func Struct(v any, opts Options) (doctree.Doc, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return doctree.Text("None"), nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("derive: Struct requires a struct value, got %s", rv.Kind())
	}

	fields, err := structFields(rv, opts)
	if err != nil {
		return nil, err
	}

	name := opts.Rename
	if name == "" {
		name = rv.Type().Name()
	}

	body := recordBody(fields)
	if !opts.Verbose {
		return body, nil
	}
	header := doctree.Group(doctree.Indent(doctree.Text(name + " ")))
	return doctree.Concat(header, body), nil
}

func recordBody(fields []doctree.Doc) doctree.Doc {
	if len(fields) == 0 {
		return doctree.Indent(doctree.Concat(doctree.Text("{"), doctree.Dedent(doctree.Text("}"))))
	}
	joined := doctree.Join(doctree.Concat(doctree.Text(", "), doctree.Hardline()), fields)
	return doctree.Indent(doctree.Concat(doctree.Text("{"), doctree.Group(joined), doctree.Dedent(doctree.Text("}"))))
}

func structFields(rv reflect.Value, opts Options) ([]doctree.Doc, error) {
	t := rv.Type()
	var docs []doctree.Doc
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		fo, err := parseFieldTag(sf.Tag.Get("doctree"))
		if err != nil {
			return nil, err
		}
		if fo.skip {
			continue
		}

		fv := rv.Field(i)
		if fo.getter != "" {
			fv, err = applyGetter(fv, fo.getter)
			if err != nil {
				return nil, err
			}
		}

		fieldDoc, err := ToDocErr(fv.Interface())
		if err != nil {
			return nil, fmt.Errorf("derive: field %q: %w", sf.Name, err)
		}
		if fo.indent {
			fieldDoc = doctree.Indent(fieldDoc)
		}

		if opts.Verbose {
			name := fo.rename
			if name == "" {
				name = sf.Name
			}
			fieldDoc = doctree.Concat(doctree.Text(name+": "), fieldDoc)
		}
		docs = append(docs, fieldDoc)
	}
	return docs, nil
}

func applyGetter(fv reflect.Value, method string) (reflect.Value, error) {
	m := fv.MethodByName(method)
	if !m.IsValid() {
		m = fv.Addr().MethodByName(method)
	}
	if !m.IsValid() {
		return fv, fmt.Errorf("derive: getter method %q not found", method)
	}
	if m.Type().NumIn() != 0 || m.Type().NumOut() != 1 {
		return fv, fmt.Errorf("derive: getter method %q must take no arguments and return exactly one value", method)
	}
	out := m.Call(nil)
	return out[0], nil
}

// Union renders a tagged-union variant: variantName together with
// payload's fields, rendered the same way [Struct] renders a record's
// fields — payload's struct tags (`skip`, `indent`, `rename`, `getter`)
// are honored exactly as they are for a struct. payload must be a struct,
// a pointer to one, or nil for a unit variant. A variant with no fields
// (nil payload, or a payload struct with none after `skip`) renders as
// its bare name. In verbose mode the result is "VariantName(...)";
// otherwise only the field values are shown.
func Union(variantName string, payload any, opts Options) (doctree.Doc, error) {
	if payload == nil {
		return doctree.Text(variantName), nil
	}

	rv := reflect.ValueOf(payload)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return doctree.Text(variantName), nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("derive: Union payload must be a struct or nil, got %s", rv.Kind())
	}

	fields, err := structFields(rv, opts)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return doctree.Text(variantName), nil
	}

	body := doctree.Group(doctree.Join(doctree.Concat(doctree.Text(", "), doctree.Hardline()), fields))
	if !opts.Verbose {
		return body, nil
	}
	name := opts.Rename
	if name == "" {
		name = variantName
	}
	return doctree.Concat(doctree.Text(name), doctree.Text("("), body, doctree.Text(")")), nil
}

// ToDoc converts v to a [doctree.Doc]: primitives to their matching
// constructor, pointers to [doctree.Optional] semantics (nil -> "None"),
// slices/arrays/maps to the same layout [doctree.Slice]/[doctree.Map]
// produce, and structs to [Struct] using v's own [Options] if it
// implements [Annotated], else Options{}. Unsupported kinds (channel,
// function, unsafe pointer) render as a diagnostic placeholder rather
// than failing, since ToDoc's signature cannot report an error; callers
// that need the error should call [Struct]/[Union] directly.
func ToDoc(v any) doctree.Doc {
	d, err := ToDocErr(v)
	if err != nil {
		return doctree.Text(fmt.Sprintf("<%v>", err))
	}
	return d
}

// ToDocErr is [ToDoc] with its error surfaced, used internally by
// [Struct] so a malformed nested field reports which field failed
// instead of silently degrading to a placeholder.
func ToDocErr(v any) (doctree.Doc, error) {
	if v == nil {
		return doctree.Text("None"), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return doctree.Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return doctree.Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return doctree.Int(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return doctree.Float(rv.Float()), nil
	case reflect.String:
		return doctree.Text(rv.String()), nil
	case reflect.Pointer:
		if rv.IsNil() {
			return doctree.Text("None"), nil
		}
		return ToDocErr(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		return sliceToDoc(rv)
	case reflect.Map:
		return mapToDoc(rv)
	case reflect.Struct:
		opts := Options{}
		if ann, ok := v.(Annotated); ok {
			opts = ann.PrettyOptions()
		}
		return Struct(v, opts)
	case reflect.Interface:
		if rv.IsNil() {
			return doctree.Text("None"), nil
		}
		return ToDocErr(rv.Elem().Interface())
	default:
		return nil, fmt.Errorf("derive: unsupported kind %s", rv.Kind())
	}
}

func sliceToDoc(rv reflect.Value) (doctree.Doc, error) {
	n := rv.Len()
	if n == 0 {
		return doctree.Text("[]"), nil
	}
	items := make([]doctree.Doc, n)
	for i := 0; i < n; i++ {
		d, err := ToDocErr(rv.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("derive: element %d: %w", i, err)
		}
		items[i] = d
	}
	return bracketed("[", "]", doctree.SmartJoin(doctree.Text(", "), items)), nil
}

func mapToDoc(rv reflect.Value) (doctree.Doc, error) {
	if rv.Len() == 0 {
		return doctree.Text("{}"), nil
	}
	keys := rv.MapKeys()
	type pair struct {
		key string
		doc doctree.Doc
	}
	pairs := make([]pair, 0, len(keys))
	for _, k := range keys {
		kd, err := ToDocErr(k.Interface())
		if err != nil {
			return nil, fmt.Errorf("derive: map key: %w", err)
		}
		vd, err := ToDocErr(rv.MapIndex(k).Interface())
		if err != nil {
			return nil, fmt.Errorf("derive: map value: %w", err)
		}
		pairs = append(pairs, pair{key: doctree.Print(kd, nil), doc: doctree.Concat(kd, doctree.Text(": "), vd)})
	}
	// Map iteration order is random; sort by the key's rendered text so
	// repeated calls on an equal map produce byte-identical output.
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].key < pairs[j].key })
	docs := make([]doctree.Doc, len(pairs))
	for i, p := range pairs {
		docs[i] = p.doc
	}
	return bracketed("{", "}", doctree.Join(doctree.Concat(doctree.Text(", "), doctree.Hardline()), docs)), nil
}

func bracketed(open, close string, body doctree.Doc) doctree.Doc {
	return doctree.Indent(doctree.Concat(doctree.Text(open), doctree.Group(body), doctree.Text(close)))
}
