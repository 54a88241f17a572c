package tableasy

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Options controls how a table is built. The zero value renders a plain
// horizontal table without totals.
//
// Total, Format, Headers and HTML can be loaded from YAML with
// [LoadOptions]:
//
//	total: true
//	format: vertical
//	headers: Vertical Table
//	html:
//	  id: my_table
//	  class: report
type Options struct {
	// Total appends a row summing numeric columns. Ignored for vertical
	// tables and empty collections.
	Total bool `yaml:"total"`
	// Format selects the layout. Empty means Horizontal.
	Format Format `yaml:"format"`
	// Headers is the caption of a vertical table's single header cell.
	Headers string `yaml:"headers"`
	// HTML holds attributes of the <table> element.
	HTML Attrs `yaml:"html"`

	// Customize is called once per row, including the totals row, after
	// the row's columns are computed and before it is rendered.
	Customize func(*Row) `yaml:"-"`
	// Logger receives debug output. Nil disables logging.
	Logger *zerolog.Logger `yaml:"-"`
}

// LoadOptions decodes table options from a YAML document. Unknown keys are
// ignored and an empty document yields the zero Options.
func LoadOptions(r io.Reader) (Options, error) {
	var opts Options
	if err := yaml.NewDecoder(r).Decode(&opts); err != nil {
		if errors.Is(err, io.EOF) {
			return Options{}, nil
		}
		return Options{}, err
	}
	return opts, nil
}

func (o Options) customize(row *Row) {
	if o.Customize != nil {
		o.Customize(row)
	}
}

func (o Options) logger() zerolog.Logger {
	if o.Logger == nil {
		return zerolog.Nop()
	}
	return o.Logger.With().Str("component", "tableasy").Logger()
}

// UnmarshalYAML parses the format name with [ParseFormat].
func (f *Format) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// UnmarshalYAML decodes a mapping, keeping the document's key order.
func (a *Attrs) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("html attributes: expected a mapping, got %s", value.Tag)
	}
	out := make(Attrs, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		var v string
		if err := value.Content[i+1].Decode(&v); err != nil {
			return fmt.Errorf("html attribute %q: %w", value.Content[i].Value, err)
		}
		out.Set(value.Content[i].Value, v)
	}
	*a = out
	return nil
}

// MarshalYAML encodes the attributes as a mapping in their current order.
func (a Attrs) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, kv := range a {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: kv.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Value: kv.Value},
		)
	}
	return node, nil
}
