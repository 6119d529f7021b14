// Package output provides formatters that write a frame.Table in various
// formats.
//
// # Supported Formats
//
//   - text: fixed-width columns, the same layout as Table.Render
//   - table: a bordered grid drawn with tablewriter
//   - csv: comma-separated values with a header row
//   - jsonl: one JSON object per row
//   - json: a single JSON array of row objects
//
// # Basic Usage
//
//	formatter, err := output.New("csv", os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := formatter.Format(table); err != nil {
//	    log.Fatal(err)
//	}
//
// # Column Selection
//
// Formatters write the table's declared columns in declared order, and a
// row lacking one of them fails with *frame.MissingColumnError. A table
// with no declared columns (built by hand without SetColumns) falls back
// to the sorted union of keys across all rows, with absent keys written
// as empty values.
package output
