package output

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/jamesainslie/seek/pkg/seek/types"
)

// ErrInvalidTemplate is returned when a template fails to parse.
var ErrInvalidTemplate = errors.New("invalid output template")

// DefaultTemplate renders the type token and the path.
const DefaultTemplate = `{{.Type.Token}} {{.Path}}`

// TemplateFormatter renders each entry with a Go text/template and
// terminates it with a newline. The template receives a types.Entry.
type TemplateFormatter struct {
	template *template.Template
}

// templateFuncs returns the custom template functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		// dir returns the parent of a path.
		// Usage: {{dir .Path}}
		"dir": filepath.Dir,

		// ext returns the file name extension.
		// Usage: {{ext .Name}}
		"ext": filepath.Ext,

		// quote returns a Go-quoted string, escaping control bytes.
		// Usage: {{quote .Path}}
		"quote": strconv.Quote,

		// indent returns n copies of s.
		// Usage: {{indent .Depth "  "}}{{.Name}}
		"indent": func(n int, s string) string {
			return strings.Repeat(s, n)
		},
	}
}

// NewTemplateFormatter parses src. An empty src uses DefaultTemplate.
func NewTemplateFormatter(src string) (*TemplateFormatter, error) {
	if src == "" {
		src = DefaultTemplate
	}
	tmpl, err := template.New("output").Funcs(templateFuncs()).Option("missingkey=error").Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTemplate, err)
	}
	return &TemplateFormatter{template: tmpl}, nil
}

// Format renders the entry followed by a newline.
func (f *TemplateFormatter) Format(w io.Writer, e types.Entry) error {
	if err := f.template.Execute(w, e); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func init() {
	Register(FormatTemplate, func(opts Options) (Formatter, error) {
		return NewTemplateFormatter(opts.Template)
	})
}

// Ensure TemplateFormatter implements Formatter.
var _ Formatter = (*TemplateFormatter)(nil)
