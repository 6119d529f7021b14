// Command dframe loads a delimited or Parquet file into a table and prints
// it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vegasq/dframe/cell"
	"github.com/vegasq/dframe/frame"
	"github.com/vegasq/dframe/internal/logging"
	"github.com/vegasq/dframe/output"
	"github.com/vegasq/dframe/reader"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("dframe", flag.ContinueOnError)
	fs.SetOutput(stderr)

	formatFlag := fs.String("f", "text", "Output format: "+strings.Join(output.Names(), ", "))
	limitFlag := fs.Int("limit", 0, "Limit number of rows (0 = unlimited)")
	columnsFlag := fs.Bool("columns", false, "Show column names and kinds instead of data")
	delimFlag := fs.String("delim", ",", "Field delimiter for delimited input (\\t or tab for tab)")
	commentFlag := fs.String("comment", "", "Skip delimited lines starting with this character")
	logLevelFlag := fs.String("log-level", "warn", "Log level: debug, info, warn, error")
	logFormatFlag := fs.String("log-format", "text", "Log format: text, json")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: dframe [options] <file>\n\n")
		fmt.Fprintf(stderr, "Load a CSV (optionally .gz, .zst, .lz4 or .br compressed) or Parquet file and print it.\n\n")
		fmt.Fprintf(stderr, "IMPORTANT: All flags must come BEFORE file arguments.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  dframe people.csv\n")
		fmt.Fprintf(stderr, "  dframe -f table -limit 10 people.csv.gz\n")
		fmt.Fprintf(stderr, "  dframe -delim tab -f json people.tsv\n")
		fmt.Fprintf(stderr, "  dframe -columns data.parquet\n")
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	// Validate flag values
	if *limitFlag < 0 {
		fmt.Fprintf(stderr, "Error: -limit must be non-negative, got %d\n", *limitFlag)
		return 1
	}

	opts, err := readerOptions(*delimFlag, *commentFlag)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	formatter, err := output.New(*formatFlag, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if fs.NArg() != 1 {
		fmt.Fprintf(stderr, "Error: expected exactly one file argument\n\n")
		fs.Usage()
		return 1
	}
	filename := fs.Arg(0)

	logger := logging.Setup(stderr, *logLevelFlag, *logFormatFlag)

	start := time.Now()
	tbl := frame.New()
	if err := tbl.ReadFile(filename, opts); err != nil {
		reportReadError(stderr, filename, err)
		logger.Error("load failed", "path", filename, "error", err)
		return 1
	}
	logger.Debug("table loaded",
		"path", filename,
		"rows", tbl.RowCount(),
		"columns", len(tbl.Columns()),
		"elapsed", time.Since(start),
	)

	if *columnsFlag {
		// Print shape as an informational message to stderr
		fmt.Fprintf(stderr, "# %s: %d rows, %d columns\n", filename, tbl.RowCount(), len(tbl.Columns()))
		tbl, err = columnsTable(filename, tbl)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	} else if *limitFlag > 0 {
		tbl = tbl.Head(*limitFlag)
	}

	if err := formatter.Format(tbl); err != nil {
		fmt.Fprintf(stderr, "Error formatting output: %v\n", err)
		logger.Error("format failed", "path", filename, "format", *formatFlag, "error", err)
		return 1
	}
	return 0
}

// readerOptions builds delimited-input options from flag values.
func readerOptions(delim, comment string) (reader.Options, error) {
	var opts reader.Options

	switch delim {
	case `\t`, "tab":
		opts.Comma = '\t'
	default:
		if utf8.RuneCountInString(delim) != 1 {
			return opts, fmt.Errorf("-delim must be a single character, got %q", delim)
		}
		opts.Comma, _ = utf8.DecodeRuneInString(delim)
	}

	if comment != "" {
		if utf8.RuneCountInString(comment) != 1 {
			return opts, fmt.Errorf("-comment must be a single character, got %q", comment)
		}
		opts.Comment, _ = utf8.DecodeRuneInString(comment)
	}

	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

func reportReadError(stderr io.Writer, filename string, err error) {
	var accessErr *reader.FileAccessError
	var parseErr *reader.ParseError

	switch {
	case errors.Is(err, os.ErrNotExist):
		fmt.Fprintf(stderr, "Error: file '%s' not found\n", filename)
		fmt.Fprintf(stderr, "Please check the file path and try again.\n")
	case errors.As(err, &accessErr):
		fmt.Fprintf(stderr, "Error: cannot read file: %v\n", accessErr.Err)
	case errors.As(err, &parseErr):
		fmt.Fprintf(stderr, "Error: %v\n", parseErr)
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
}

// columnsTable describes each declared column as a row of its own so the
// chosen formatter can print it. Parquet kinds come from the file schema;
// delimited kinds come from the first row that carries the column.
func columnsTable(filename string, tbl *frame.Table) (*frame.Table, error) {
	kinds := make(map[string]string)

	if reader.IsParquet(filename) {
		infos, err := reader.ExtractSchemaInfo(filename)
		if err != nil {
			return nil, err
		}
		for _, info := range infos {
			kinds[info.Name] = info.Cell.String()
		}
	} else {
		for _, row := range tbl.Rows() {
			for col, v := range row {
				if _, seen := kinds[col]; !seen {
					kinds[col] = v.Kind().String()
				}
			}
		}
	}

	out := frame.New()
	out.SetColumns([]string{"column", "kind"})
	for _, col := range tbl.Columns() {
		kind, ok := kinds[col]
		if !ok {
			kind = "unknown"
		}
		out.AppendRow(frame.Row{"column": cell.Text(col), "kind": cell.Text(kind)})
	}
	return out, nil
}
