package tableasy

import (
	"strconv"

	"github.com/rs/zerolog"
)

// table is a fully built table, ready to serialize.
type table struct {
	html   Attrs
	header []*Column
	rows   []*Row
}

func build(typeName string, records []Record, opts Options, cols []Formatter) (*table, error) {
	format, err := ParseFormat(string(opts.Format))
	if err != nil {
		return nil, err
	}
	logger := opts.logger()
	prefix := underscore(typeName)

	t := &table{html: opts.HTML}
	if format == Vertical {
		err = buildVertical(t, prefix, records, opts, cols, logger)
	} else {
		err = buildHorizontal(t, prefix, records, opts, cols, logger)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("type", prefix).
		Stringer("format", format).
		Int("records", len(records)).
		Int("columns", len(cols)).
		Int("rows", len(t.rows)).
		Bool("total", opts.Total).
		Msg("table built")
	return t, nil
}

func buildHorizontal(t *table, prefix string, records []Record, opts Options, cols []Formatter, logger zerolog.Logger) error {
	t.header = headerCells(cols)

	for i, rec := range records {
		row, err := newRow(prefix, rec, cols)
		if err != nil {
			return err
		}
		row.class = parity(i)
		row.id = domID(prefix, rec)
		opts.customize(row)
		logger.Trace().Int("index", i).Str("id", row.id).Msg("row built")
		t.rows = append(t.rows, row)
	}

	if !opts.Total || len(records) == 0 {
		return nil
	}
	row, err := newTotalRow(records, cols)
	if err != nil {
		return err
	}
	opts.customize(row)
	logger.Trace().Str("id", row.id).Msg("totals row built")
	t.rows = append(t.rows, row)
	return nil
}

// buildVertical emits one row per column. Totals are not computed for
// vertical tables.
func buildVertical(t *table, prefix string, records []Record, opts Options, cols []Formatter, logger zerolog.Logger) error {
	t.header = []*Column{{
		Value:  opts.Headers,
		Header: true,
		HTML:   Attrs{{Key: "colspan", Value: strconv.Itoa(len(cols))}},
	}}
	if len(records) == 0 {
		return nil
	}

	for i, f := range cols {
		row := &Row{
			Columns: make([]*Column, 0, len(records)+1),
			prefix:  prefix,
			class:   parity(i),
			id:      domID(prefix, nil),
		}
		row.Columns = append(row.Columns, &Column{Value: columnName(f)})
		for _, rec := range records {
			v, err := f.Value(rec)
			if err != nil {
				return err
			}
			row.Columns = append(row.Columns, &Column{Value: v})
		}
		opts.customize(row)
		logger.Trace().Int("index", i).Str("column", columnName(f)).Msg("row built")
		t.rows = append(t.rows, row)
	}
	return nil
}

// headerCells returns one <th> per column, or none when no column has a
// label.
func headerCells(cols []Formatter) []*Column {
	labels := make([]string, len(cols))
	labeled := false
	for i, f := range cols {
		labels[i] = f.Header()
		if labels[i] != "" {
			labeled = true
		}
	}
	if !labeled {
		return nil
	}
	cells := make([]*Column, len(cols))
	for i, l := range labels {
		cells[i] = &Column{Value: l, Header: true}
	}
	return cells
}
