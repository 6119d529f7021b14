package frame

import (
	"errors"
	"fmt"
	"io"

	"github.com/vegasq/dframe/reader"
)

// ReadCSV loads a comma-separated file with a header line.
//
// The header replaces the declared columns and each data line is appended
// as a Row. Returns *reader.FileAccessError if the file cannot be opened or
// read and *reader.ParseError if it cannot be tokenized. On error the table
// is left unchanged.
func (t *Table) ReadCSV(path string) error {
	return t.ReadCSVWith(path, reader.Options{})
}

// ReadCSVWith is ReadCSV with a custom delimiter, comment character or
// quoting mode.
func (t *Table) ReadCSVWith(path string, opts reader.Options) error {
	r, err := reader.NewCSVReader(path, opts)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	return t.ingest(path, r)
}

// ReadParquet loads a flat Parquet file with the same contract as ReadCSV.
func (t *Table) ReadParquet(path string) error {
	r, err := reader.NewParquetReader(path)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	return t.ingest(path, r)
}

// ReadFile loads path as Parquet when it ends in ".parquet" and as
// delimited text otherwise.
func (t *Table) ReadFile(path string, opts reader.Options) error {
	r, err := reader.Open(path, opts)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	return t.ingest(path, r)
}

// ingest drains r and commits the header and rows only once every row has
// been read.
func (t *Table) ingest(path string, r reader.RowReader) error {
	header := r.Header()

	var staged []Row
	for {
		fields, err := r.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		// The bundled readers reject long records themselves; this
		// guards other RowReader implementations.
		if len(fields) > len(header) {
			return &reader.ParseError{
				Path: path,
				Err:  fmt.Errorf("record %d has %d fields, header declares %d", len(staged)+1, len(fields), len(header)),
			}
		}

		row := make(Row, len(fields))
		for i, v := range fields {
			row[header[i]] = v
		}
		staged = append(staged, row)
	}

	t.columns = header
	t.rows = append(t.rows, staged...)
	return nil
}
