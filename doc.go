// Package tableasy renders collections of records as HTML tables.
//
// The central entry points are [Write], [Marshal] and [HTML]. Each takes a
// record type name, the records, [Options] and one [Formatter] per column:
//
//	out, err := tableasy.Marshal("Person", people, tableasy.Options{Total: true},
//		tableasy.Attr("name"),
//		tableasy.Attr("id"),
//	)
//
// # Records
//
// A [Record] exposes named attributes through Attribute. [Map] is a ready
// made implementation; domain types implement the method directly. Looking
// up a missing attribute fails with [ErrAttributeNotFound].
//
// # Formatters
//
// A formatter computes one cell from a record and supplies the column
// header:
//
//   - [Attr] — the attribute value; header is [Humanize] of the name
//   - [Linked] — the value wrapped in an anchor
//   - [WithPercent] — "<numerator> (<percent>%)" with three decimals
//   - [TailLink] — an anchor with a fixed caption and no header
//   - [Truncated] — the value cut to a display width
//
// Links are built with a [PathFunc] such as [ResourcePath].
//
// # Rows
//
// Rows get the class "<type> odd" or "<type> even", alternating from the
// first row, and the id "row_<type>_<id>". [Options.Customize] receives
// every [Row] before it is rendered and may change values, alignment,
// title and attributes.
//
// # Totals
//
// With [Options.Total] a final row sums every numeric attribute across the
// records. It has the class "tableasy_total total-row" and its first cell
// is a "Total: " header. Formatters see a synthetic record holding the
// sums, so [WithPercent] reports the total ratio.
//
// # Vertical tables
//
// With [Vertical] format each column becomes a row: its attribute name
// followed by the value for every record, under a single header cell
// holding [Options.Headers].
//
// # Escaping
//
// Cell values are written as is; callers are responsible for escaping
// untrusted content. Attribute values are always escaped.
package tableasy
