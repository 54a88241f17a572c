package tableasy

import (
	"io"
	"iter"
	"slices"
)

// WriteIter renders records from an iterator. The whole sequence is
// collected before rendering, since totals and row parity need every row.
func WriteIter[T Record](w io.Writer, typeName string, seq iter.Seq[T], opts Options, cols ...Formatter) error {
	return Write(w, typeName, slices.Collect(seq), opts, cols...)
}

// WriteChan renders records received from ch once it is closed.
func WriteChan[T Record](w io.Writer, typeName string, ch <-chan T, opts Options, cols ...Formatter) error {
	var records []T
	for r := range ch {
		records = append(records, r)
	}
	return Write(w, typeName, records, opts, cols...)
}
