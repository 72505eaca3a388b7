package output

import (
	"encoding/json"
	"io"

	"github.com/jamesainslie/seek/pkg/seek/types"
)

// jsonEntry represents an entry in JSONL output.
type jsonEntry struct {
	Path  string          `json:"path"`
	Name  string          `json:"name"`
	Type  types.EntryType `json:"type"`
	Depth int             `json:"depth"`
}

// JSONLFormatter formats output as newline-delimited JSON (one object per line).
// Each entry is written as a compact JSON object on its own line, suitable
// for streaming into tools like jq.
type JSONLFormatter struct{}

// Format writes the entry as a single JSON line.
func (f *JSONLFormatter) Format(w io.Writer, e types.Entry) error {
	data, err := json.Marshal(jsonEntry{
		Path:  e.Path,
		Name:  e.Name,
		Type:  e.Type,
		Depth: e.Depth,
	})
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func init() {
	Register(FormatJSONL, func(Options) (Formatter, error) {
		return &JSONLFormatter{}, nil
	})
}

// Ensure JSONLFormatter implements Formatter.
var _ Formatter = (*JSONLFormatter)(nil)
