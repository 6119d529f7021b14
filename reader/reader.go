package reader

import (
	"path/filepath"
	"strings"

	"github.com/vegasq/dframe/cell"
)

// RowReader yields the header of a tabular file followed by its data rows.
//
// Next returns io.EOF once every row has been consumed. Values in a row are
// aligned positionally with Header.
type RowReader interface {
	Header() []string
	Next() ([]cell.Value, error)
	Close() error
}

// Open returns the RowReader matching the file extension: ParquetReader for
// ".parquet", CSVReader for everything else.
func Open(path string, opts Options) (RowReader, error) {
	if IsParquet(path) {
		return NewParquetReader(path)
	}
	return NewCSVReader(path, opts)
}

// IsParquet reports whether path names a Parquet file.
func IsParquet(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".parquet")
}
