package tableasy

import (
	"html"
	"io"
	"strings"
)

func writeHTML(w io.Writer, t *table) error {
	if _, err := io.WriteString(w, "<table"+attrString(t.html)+">"); err != nil {
		return err
	}
	if err := writeRow(w, nil, t.header); err != nil {
		return err
	}
	for _, row := range t.rows {
		if err := writeRow(w, row.attrs(), row.Columns); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</table>")
	return err
}

func writeRow(w io.Writer, attrs Attrs, cells []*Column) error {
	var sb strings.Builder
	sb.WriteString("<tr")
	sb.WriteString(attrString(attrs))
	sb.WriteString(">")
	for _, c := range cells {
		tag := "td"
		if c.Header {
			tag = "th"
		}
		sb.WriteString("<" + tag + attrString(c.attrs()) + ">")
		sb.WriteString(c.Value)
		sb.WriteString("</" + tag + ">")
	}
	sb.WriteString("</tr>")
	_, err := io.WriteString(w, sb.String())
	return err
}

// attrString renders attributes with a leading space, values escaped.
func attrString(attrs Attrs) string {
	var sb strings.Builder
	for _, kv := range attrs {
		sb.WriteString(" ")
		sb.WriteString(kv.Key)
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(kv.Value))
		sb.WriteString(`"`)
	}
	return sb.String()
}
