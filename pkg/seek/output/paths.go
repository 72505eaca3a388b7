package output

import (
	"io"

	"github.com/jamesainslie/seek/pkg/seek/types"
)

// PathsFormatter writes one path per line. With color enabled, paths are
// styled by entry type; otherwise the path is written byte-for-byte.
type PathsFormatter struct {
	color  bool
	styles *Styles
}

// NewPathsFormatter creates a paths formatter.
func NewPathsFormatter(opts Options) *PathsFormatter {
	return &PathsFormatter{color: opts.Color}
}

// Format writes the entry's path followed by a newline.
func (f *PathsFormatter) Format(w io.Writer, e types.Entry) error {
	path := e.Path
	if f.color {
		if f.styles == nil {
			styles := NewStyles(w, true)
			f.styles = &styles
		}
		path = f.styles.ForType(e.Type).Render(path)
	}
	_, err := io.WriteString(w, path+"\n")
	return err
}

func init() {
	Register(FormatPaths, func(opts Options) (Formatter, error) {
		return NewPathsFormatter(opts), nil
	})
}

// Ensure PathsFormatter implements Formatter.
var _ Formatter = (*PathsFormatter)(nil)

// NullFormatter writes paths terminated by a NUL byte, suitable for xargs -0.
// Paths containing newlines survive intact. Color is never applied.
type NullFormatter struct{}

// Format writes the entry's path followed by a NUL byte.
func (f *NullFormatter) Format(w io.Writer, e types.Entry) error {
	_, err := io.WriteString(w, e.Path+"\x00")
	return err
}

func init() {
	Register(FormatNull, func(Options) (Formatter, error) {
		return &NullFormatter{}, nil
	})
}

// Ensure NullFormatter implements Formatter.
var _ Formatter = (*NullFormatter)(nil)
