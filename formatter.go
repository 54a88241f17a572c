package tableasy

import (
	"fmt"
	"html"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Formatter produces the value of one column for a record.
//
// Header returns the column label. An empty label means the column has no
// header text; when every column's label is empty the header row renders
// as an empty <tr></tr>.
type Formatter interface {
	Value(r Record) (string, error)
	Header() string
}

// Named is implemented by formatters that know the raw attribute name they
// read. Vertical tables use it for the first cell of each row; formatters
// without it fall back to their header.
type Named interface {
	Name() string
}

// Totaler is implemented by formatters that render the totals row
// differently from data rows. The record passed to Total holds the summed
// attributes.
type Totaler interface {
	Total(r Record) (string, error)
}

// PathFunc builds a URL path for a record.
type PathFunc func(r Record) (string, error)

// Attribute is the plain formatter: it renders the named attribute as is.
type Attribute string

// Attr returns the plain formatter for name.
func Attr(name string) Attribute { return Attribute(name) }

// Columns returns one plain formatter per attribute name.
func Columns(names ...string) []Formatter {
	out := make([]Formatter, len(names))
	for i, n := range names {
		out[i] = Attribute(n)
	}
	return out
}

// Value implements [Formatter].
func (a Attribute) Value(r Record) (string, error) {
	v, err := lookup(r, string(a))
	if err != nil {
		return "", err
	}
	return formatValue(v), nil
}

// Header implements [Formatter].
func (a Attribute) Header() string { return Humanize(string(a)) }

// Name implements [Named].
func (a Attribute) Name() string { return string(a) }

// ResourcePath returns a PathFunc producing base + "/" + the record's key
// attribute, path-escaped.
func ResourcePath(base, key string) PathFunc {
	return func(r Record) (string, error) {
		v, err := lookup(r, key)
		if err != nil {
			return "", err
		}
		return strings.TrimSuffix(base, "/") + "/" + url.PathEscape(formatValue(v)), nil
	}
}

type linked struct {
	attr Attribute
	path PathFunc
}

// Linked wraps the attribute's value in an anchor pointing at path(record).
// In the totals row the summed value is rendered without a link. A nil path
// fails with [ErrMissingPath].
func Linked(attr string, path PathFunc) Formatter {
	return linked{attr: Attribute(attr), path: path}
}

func (l linked) Value(r Record) (string, error) {
	if l.path == nil {
		return "", fmt.Errorf("%w: linked column %q", ErrMissingPath, string(l.attr))
	}
	text, err := l.attr.Value(r)
	if err != nil {
		return "", err
	}
	href, err := l.path(r)
	if err != nil {
		return "", err
	}
	return anchor(href, text), nil
}

func (l linked) Total(r Record) (string, error) { return l.attr.Value(r) }
func (l linked) Header() string                 { return l.attr.Header() }
func (l linked) Name() string                   { return l.attr.Name() }

type percent struct {
	num, den Attribute
}

// WithPercent renders the numerator followed by its share of the
// denominator, e.g. "1 (50.000%)". The percentage always has three decimals.
// A non-numeric operand or a zero denominator yields 0.000%.
func WithPercent(numerator, denominator string) Formatter {
	return percent{num: Attribute(numerator), den: Attribute(denominator)}
}

func (p percent) Value(r Record) (string, error) {
	n, err := lookup(r, string(p.num))
	if err != nil {
		return "", err
	}
	d, err := lookup(r, string(p.den))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s (%s%%)", formatValue(n), percentOf(n, d)), nil
}

func (p percent) Header() string { return p.num.Header() }
func (p percent) Name() string   { return p.num.Name() }

type tailLink struct {
	caption string
	path    PathFunc
	tail    string
}

// TailLink renders an anchor with a fixed caption pointing at
// path(record) + "/" + tail. An empty tail links to path(record) itself.
// The column has no header and stays empty in the totals row. A nil path
// fails with [ErrMissingPath].
func TailLink(caption string, path PathFunc, tail string) Formatter {
	return tailLink{caption: caption, path: path, tail: tail}
}

func (t tailLink) Value(r Record) (string, error) {
	if t.path == nil {
		return "", fmt.Errorf("%w: tail link %q", ErrMissingPath, t.caption)
	}
	href, err := t.path(r)
	if err != nil {
		return "", err
	}
	if t.tail != "" {
		href = strings.TrimSuffix(href, "/") + "/" + strings.TrimPrefix(t.tail, "/")
	}
	return anchor(href, t.caption), nil
}

func (t tailLink) Total(Record) (string, error) { return "", nil }
func (t tailLink) Header() string                { return "" }
func (t tailLink) Name() string                  { return t.caption }

type truncated struct {
	attr  Attribute
	width int
}

// Truncated renders the attribute cut down to width display columns, ending
// in "..." when cut. Wide runes count as two columns. A width of zero or
// less disables truncation.
func Truncated(attr string, width int) Formatter {
	return truncated{attr: Attribute(attr), width: width}
}

func (t truncated) Value(r Record) (string, error) {
	s, err := t.attr.Value(r)
	if err != nil {
		return "", err
	}
	return truncate(s, t.width), nil
}

func (t truncated) Header() string { return t.attr.Header() }
func (t truncated) Name() string   { return t.attr.Name() }

// Humanize turns an attribute name into a header label: underscores become
// spaces and the first letter is upper-cased.
func Humanize(name string) string {
	s := strings.ReplaceAll(name, "_", " ")
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func lookup(r Record, name string) (any, error) {
	v, ok := r.Attribute(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q on %T", ErrAttributeNotFound, name, r)
	}
	return v, nil
}

func anchor(href, text string) string {
	return `<a href="` + html.EscapeString(href) + `">` + text + `</a>`
}

// columnName is the first cell of a vertical row.
func columnName(f Formatter) string {
	if n, ok := f.(Named); ok {
		return n.Name()
	}
	return f.Header()
}
