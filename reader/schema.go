package reader

import (
	"fmt"

	"github.com/segmentio/parquet-go"

	"github.com/vegasq/dframe/cell"
)

// SchemaInfo describes one column of a Parquet file.
type SchemaInfo struct {
	Name         string    `json:"name"`
	PhysicalType string    `json:"physical_type"`
	LogicalType  string    `json:"logical_type"`
	Cell         cell.Kind `json:"-"`
	Optional     bool      `json:"optional"`
}

// ExtractSchemaInfo returns column metadata for a flat Parquet file, in
// schema order, along with the cell kind each column is read as.
func ExtractSchemaInfo(path string) ([]SchemaInfo, error) {
	r, err := NewParquetReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	fields := r.pqFile.Schema().Fields()
	infos := make([]SchemaInfo, 0, len(fields))
	for _, field := range fields {
		infos = append(infos, SchemaInfo{
			Name:         field.Name(),
			PhysicalType: physicalTypeName(field.Type().Kind()),
			LogicalType:  logicalTypeName(field),
			Cell:         cellKindOf(field.Type().Kind()),
			Optional:     field.Optional(),
		})
	}
	return infos, nil
}

// cellKindOf mirrors convertValue.
func cellKindOf(kind parquet.Kind) cell.Kind {
	switch kind {
	case parquet.Int32, parquet.Int64:
		return cell.KindInt
	case parquet.Float:
		return cell.KindFloat
	case parquet.Double:
		return cell.KindDouble
	default:
		return cell.KindText
	}
}

func physicalTypeName(kind parquet.Kind) string {
	switch kind {
	case parquet.Boolean:
		return "BOOLEAN"
	case parquet.Int32:
		return "INT32"
	case parquet.Int64:
		return "INT64"
	case parquet.Int96:
		return "INT96"
	case parquet.Float:
		return "FLOAT"
	case parquet.Double:
		return "DOUBLE"
	case parquet.ByteArray:
		return "BYTE_ARRAY"
	case parquet.FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(kind))
	}
}

func logicalTypeName(field parquet.Field) string {
	logicalType := field.Type().LogicalType()
	if logicalType == nil {
		return ""
	}
	return logicalType.String()
}
