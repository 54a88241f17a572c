package tableasy

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrAttributeNotFound = errors.New("attribute not found")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrMissingPath       = errors.New("missing link path")
)

// Format selects the table layout.
type Format string

const (
	// Horizontal renders one row per record. It is the default.
	Horizontal Format = "horizontal"
	// Vertical transposes the table: one row per column, one cell per record.
	Vertical Format = "vertical"
)

var formats = []Format{Horizontal, Vertical}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported layouts.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a layout name. The empty string means [Horizontal].
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return Horizontal, nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Record is a single row source. Attribute reports false when the record
// has no attribute with that name.
type Record interface {
	Attribute(name string) (any, bool)
}

// Map is a Record backed by a plain map.
type Map map[string]any

// Attribute implements [Record].
func (m Map) Attribute(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

// KeyValue is a single HTML attribute.
type KeyValue struct {
	Key   string
	Value string
}

// Attrs is an ordered set of HTML attributes. Attributes render in the order
// they were first set.
type Attrs []KeyValue

// Get returns the value stored under key.
func (a Attrs) Get(key string) (string, bool) {
	for _, kv := range a {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// Set replaces the value stored under key in place, or appends it.
func (a *Attrs) Set(key, value string) {
	for i := range *a {
		if (*a)[i].Key == key {
			(*a)[i].Value = value
			return
		}
	}
	*a = append(*a, KeyValue{Key: key, Value: value})
}

// Delete removes key.
func (a *Attrs) Delete(key string) {
	out := (*a)[:0]
	for _, kv := range *a {
		if kv.Key != key {
			out = append(out, kv)
		}
	}
	*a = out
}

// Write renders records as an HTML table and writes it to w.
//
// typeName names the record type; it is converted to underscore form and
// used for row classes and ids ("Person" becomes "person"). Each formatter
// in cols produces one column. All rows are built, and opts.Customize run,
// before anything is written, so an error leaves w untouched.
func Write[T Record](w io.Writer, typeName string, records []T, opts Options, cols ...Formatter) error {
	rs := make([]Record, len(records))
	for i, r := range records {
		rs[i] = r
	}
	t, err := build(typeName, rs, opts, cols)
	if err != nil {
		return err
	}
	return writeHTML(w, t)
}

// Marshal renders records as an HTML table and returns the bytes.
func Marshal[T Record](typeName string, records []T, opts Options, cols ...Formatter) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, typeName, records, opts, cols...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// HTML renders records for direct use inside an html/template view. The
// markup is not escaped, so formatter output and customized values must
// already be safe.
func HTML[T Record](typeName string, records []T, opts Options, cols ...Formatter) (template.HTML, error) {
	data, err := Marshal(typeName, records, opts, cols...)
	if err != nil {
		return "", err
	}
	return template.HTML(data), nil
}
