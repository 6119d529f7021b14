package output

import (
	"io"

	"github.com/segmentio/encoding/json"

	"github.com/vegasq/dframe/frame"
)

// JSONFormatter outputs rows as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes rows as JSON Lines (one JSON object per line)
func (j *JSONFormatter) Format(t *frame.Table) error {
	v := newView(t)
	encoder := json.NewEncoder(j.writer)
	for i := 0; i < t.RowCount(); i++ {
		obj, err := v.object(i)
		if err != nil {
			return err
		}
		if err := encoder.Encode(obj); err != nil {
			return err
		}
	}
	return nil
}

// JSONArrayFormatter outputs all rows as one JSON array
type JSONArrayFormatter struct {
	writer io.Writer
}

// NewJSONArrayFormatter creates a new JSON array formatter
func NewJSONArrayFormatter(w io.Writer) *JSONArrayFormatter {
	return &JSONArrayFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONArrayFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes rows as an indented JSON array
func (j *JSONArrayFormatter) Format(t *frame.Table) error {
	v := newView(t)
	objects := make([]map[string]interface{}, 0, t.RowCount())
	for i := 0; i < t.RowCount(); i++ {
		obj, err := v.object(i)
		if err != nil {
			return err
		}
		objects = append(objects, obj)
	}

	encoder := json.NewEncoder(j.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(objects)
}

// object builds row i as a JSON object; keys absent under the union
// fallback are omitted.
func (v view) object(i int) (map[string]interface{}, error) {
	values, present, err := v.record(i)
	if err != nil {
		return nil, err
	}
	obj := make(map[string]interface{}, len(values))
	for k, val := range values {
		if present[k] {
			obj[v.columns[k]] = val.Native()
		}
	}
	return obj, nil
}
