package output

import (
	"io"

	"github.com/jamesainslie/seek/pkg/seek/types"
	"gopkg.in/yaml.v3"
)

// yamlEntry represents an entry in YAML output.
type yamlEntry struct {
	Path  string          `yaml:"path"`
	Name  string          `yaml:"name"`
	Type  types.EntryType `yaml:"type"`
	Depth int             `yaml:"depth"`
}

// YAMLFormatter writes each entry as one item of a top-level YAML sequence,
// so the concatenated output of a run is a single valid YAML document.
type YAMLFormatter struct{}

// Format writes the entry as a sequence item.
func (f *YAMLFormatter) Format(w io.Writer, e types.Entry) error {
	data, err := yaml.Marshal([]yamlEntry{{
		Path:  e.Path,
		Name:  e.Name,
		Type:  e.Type,
		Depth: e.Depth,
	}})
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func init() {
	Register(FormatYAML, func(Options) (Formatter, error) {
		return &YAMLFormatter{}, nil
	})
}

// Ensure YAMLFormatter implements Formatter.
var _ Formatter = (*YAMLFormatter)(nil)
