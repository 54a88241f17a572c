package tableasy

import (
	"errors"

	"github.com/shopspring/decimal"
)

// totals is the synthetic record behind the totals row. Each attribute is
// the sum of that attribute's numeric values across all records; attributes
// without any numeric value are absent.
type totals struct {
	records []Record
}

func (t totals) Attribute(name string) (any, bool) {
	var sum decimal.Decimal
	found := false
	for _, r := range t.records {
		v, ok := r.Attribute(name)
		if !ok {
			continue
		}
		d, ok := numeric(v)
		if !ok {
			continue
		}
		sum = sum.Add(d)
		found = true
	}
	if !found {
		return nil, false
	}
	return sum, true
}

// newTotalRow computes every column against the totals record. Columns over
// non-numeric attributes stay empty, as do link-only columns. The first cell
// is a "Total: " header.
func newTotalRow(records []Record, cols []Formatter) (*Row, error) {
	rec := totals{records: records}
	row := &Row{
		Record:  rec,
		Columns: make([]*Column, len(cols)),
		prefix:  totalPrefix,
		class:   totalClass,
		id:      domID(totalPrefix, rec),
		total:   true,
	}
	for i, f := range cols {
		v, err := totalValue(f, rec)
		if err != nil && !errors.Is(err, ErrAttributeNotFound) {
			return nil, err
		}
		row.Columns[i] = &Column{Value: v}
	}
	if len(row.Columns) > 0 {
		row.Columns[0].Value = totalLabel
		row.Columns[0].Header = true
	}
	return row, nil
}

func totalValue(f Formatter, rec Record) (string, error) {
	if t, ok := f.(Totaler); ok {
		return t.Total(rec)
	}
	return f.Value(rec)
}
