package tableasy

import (
	"strings"

	"github.com/gobuffalo/flect"
)

const (
	totalPrefix = "tableasy_total"
	totalClass  = "total-row"
	totalLabel  = "Total: "
)

// Column is one cell of a row. All fields may be changed by
// [Options.Customize] before the row is rendered.
type Column struct {
	// Value is the cell content. It is written without escaping.
	Value string
	// Align renders as the align attribute when non-empty.
	Align string
	// HTML holds extra attributes rendered after align.
	HTML Attrs
	// Header renders the cell as <th> instead of <td>.
	Header bool
}

// Row is one <tr> of the table, bound to a record.
type Row struct {
	Columns []*Column
	// Record is the source record. For the totals row it is a synthetic
	// record whose numeric attributes are sums across all data rows. It is
	// nil for rows of a vertical table.
	Record Record
	// Title renders as the title attribute when non-empty.
	Title string
	// HTML holds extra row attributes. A "class" entry replaces the second
	// class token (odd, even or total-row); an "id" entry replaces the id.
	HTML Attrs

	prefix string
	class  string
	id     string
	total  bool
}

// TotalRow reports whether r is the aggregated totals row.
func (r *Row) TotalRow() bool { return r.total }

func (r *Row) attrs() Attrs {
	class := r.class
	if c, ok := r.HTML.Get("class"); ok {
		class = c
	}
	id := r.id
	if v, ok := r.HTML.Get("id"); ok {
		id = v
	}
	title := r.Title
	if title == "" {
		title, _ = r.HTML.Get("title")
	}
	out := Attrs{{Key: "class", Value: r.prefix + " " + class}, {Key: "id", Value: id}}
	if title != "" {
		out = append(out, KeyValue{Key: "title", Value: title})
	}
	for _, kv := range r.HTML {
		switch kv.Key {
		case "class", "id", "title":
			continue
		}
		out = append(out, kv)
	}
	return out
}

func (c *Column) attrs() Attrs {
	var out Attrs
	if c.Align != "" {
		out = append(out, KeyValue{Key: "align", Value: c.Align})
	}
	for _, kv := range c.HTML {
		if kv.Key == "align" && c.Align != "" {
			continue
		}
		out = append(out, kv)
	}
	return out
}

func newRow(prefix string, rec Record, cols []Formatter) (*Row, error) {
	row := &Row{Record: rec, prefix: prefix, Columns: make([]*Column, len(cols))}
	for i, f := range cols {
		v, err := f.Value(rec)
		if err != nil {
			return nil, err
		}
		row.Columns[i] = &Column{Value: v}
	}
	return row, nil
}

// parity is the class token of the data row at zero-based index i.
func parity(i int) string {
	if i%2 == 0 {
		return "odd"
	}
	return "even"
}

// domID is "row_<prefix>_<id>", or "row_<prefix>" when rec has no id.
func domID(prefix string, rec Record) string {
	if rec != nil {
		if v, ok := rec.Attribute("id"); ok {
			if s := formatValue(v); s != "" {
				return "row_" + prefix + "_" + s
			}
		}
	}
	return "row_" + prefix
}

// underscore converts a type name to its lower-case underscore form:
// "Person" becomes "person", "ProjectTask" becomes "project_task".
func underscore(s string) string {
	return flect.Underscore(strings.TrimSpace(s))
}
