// Package frame provides Table, an in-memory tabular container.
//
// A Table holds an ordered list of declared column names and an ordered
// sequence of rows. Each Row maps column names to typed cell.Values. Rows
// keep insertion order and are never reordered, updated or removed.
//
// # Basic Usage
//
// Loading a delimited file and printing it:
//
//	t := frame.New()
//	if err := t.ReadCSV("people.csv"); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(t.RowCount(), t.Columns())
//
//	if err := t.Render(os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
// Building a table by hand:
//
//	t := frame.New()
//	t.SetColumns([]string{"name", "age"})
//	t.AppendRow(frame.Row{"name": cell.Text("Bob"), "age": cell.Int(30)})
//
// # Ingestion
//
// ReadCSV, ReadCSVWith, ReadParquet and ReadFile replace the declared
// columns with the file header and append one Row per data line. The file
// is parsed completely before the table changes, so a failed read leaves
// the table as it was. Fields pair with columns by position; a short line
// yields a Row missing its trailing columns and a long line is a
// *reader.ParseError.
//
// # Rendering
//
// Render writes the declared columns left-justified in 15-cell fields, a
// dash separator 15 cells per column, and one line per row:
//
//	name           age
//	------------------------------
//	Bob            30
//
// Fields are padded, never truncated. A row that lacks a declared column
// stops rendering with *MissingColumnError; lines already written stay
// written.
//
// A Table is not safe for concurrent use.
package frame
