package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/jamesainslie/seek/pkg/seek/types"
	"github.com/muesli/termenv"
)

// Color constants using ANSI 256-color palette.
const (
	// ColorPrimary is used for directories (bright blue).
	ColorPrimary = lipgloss.Color("39")

	// ColorLink is used for symbolic links (cyan).
	ColorLink = lipgloss.Color("51")

	// ColorDanger is used for diagnostics (red).
	ColorDanger = lipgloss.Color("196")

	// ColorMuted is used for secondary text such as the program prefix (gray).
	ColorMuted = lipgloss.Color("245")
)

// Styles groups the lipgloss styles for one destination. With color disabled
// every style renders its input unchanged.
type Styles struct {
	Directory lipgloss.Style
	File      lipgloss.Style
	Symlink   lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	Value     lipgloss.Style
}

// NewStyles builds styles bound to a renderer for w. The color profile is
// forced rather than detected so that --color=always works through pipes.
func NewStyles(w io.Writer, color bool) Styles {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return Styles{
		Directory: r.NewStyle().Foreground(ColorPrimary).Bold(true),
		File:      r.NewStyle(),
		Symlink:   r.NewStyle().Foreground(ColorLink).Italic(true),
		Error:     r.NewStyle().Foreground(ColorDanger),
		Muted:     r.NewStyle().Foreground(ColorMuted),
		Value:     r.NewStyle().Bold(true),
	}
}

// ForType returns the style used to render an entry of type t.
func (s Styles) ForType(t types.EntryType) lipgloss.Style {
	switch t {
	case types.Directory:
		return s.Directory
	case types.Symlink:
		return s.Symlink
	default:
		return s.File
	}
}
