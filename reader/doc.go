// Package reader turns tabular files into typed rows.
//
// Two readers share the RowReader interface: CSVReader for delimited text
// (optionally gzip, zstd, lz4 or brotli compressed) and ParquetReader for
// flat Parquet files. Both expose the header column names in file order and
// then yield one []cell.Value per data row until io.EOF.
//
// # Basic Usage
//
// Reading a delimited file:
//
//	r, err := reader.NewCSVReader("people.csv", reader.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	fmt.Println(r.Header())
//	for {
//	    fields, err := r.Next()
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(fields)
//	}
//
// # Type Inference
//
// Delimited fields are typed per token. A token that parses as a base-10
// int64 becomes cell.Int, a decimal or scientific-notation number becomes
// cell.Double, and anything else (including the empty string) stays
// cell.Text. Surrounding whitespace is ignored when detecting numbers but
// kept in text values.
//
// Parquet columns are typed by their physical type: INT32 and INT64 become
// cell.Int, FLOAT becomes cell.Float, DOUBLE becomes cell.Double, and
// everything else is rendered to cell.Text. Null values become empty text.
//
// # Errors
//
// Failures opening or reading the file surface as *FileAccessError.
// Content that cannot be tokenized surfaces as *ParseError, carrying the
// line number when one is known:
//
//	var perr *reader.ParseError
//	if errors.As(err, &perr) {
//	    fmt.Printf("line %d: %v\n", perr.Line, perr.Err)
//	}
//
// # Resource Management
//
// Always call Close() when done reading to release file handles:
//
//	r, err := reader.NewParquetReader("data.parquet")
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
package reader
