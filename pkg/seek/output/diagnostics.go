package output

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jamesainslie/seek/pkg/seek/types"
)

// Diagnostics writes one human-readable line per non-fatal problem:
//
//	seek: <path>: <cause>
type Diagnostics struct {
	w      io.Writer
	prog   string
	quiet  bool
	color  bool
	styles Styles
}

// DiagnosticsOptions configures a Diagnostics writer.
type DiagnosticsOptions struct {
	// Program is the prefix written before each line. Empty means "seek".
	Program string

	// Quiet suppresses all lines.
	Quiet bool

	// Color styles the prefix and message.
	Color bool
}

// NewDiagnostics creates a diagnostics writer on w.
func NewDiagnostics(w io.Writer, opts DiagnosticsOptions) *Diagnostics {
	prog := opts.Program
	if prog == "" {
		prog = "seek"
	}
	return &Diagnostics{
		w:      w,
		prog:   prog,
		quiet:  opts.Quiet,
		color:  opts.Color,
		styles: NewStyles(w, opts.Color),
	}
}

// Report writes a single diagnostic line. Write failures are ignored: there
// is nowhere left to report them.
func (d *Diagnostics) Report(err *types.WalkError) {
	if d.quiet || err == nil {
		return
	}
	msg := err.Error()
	if d.color {
		_, _ = fmt.Fprintf(d.w, "%s %s\n", d.styles.Muted.Render(d.prog+":"), d.styles.Error.Render(msg))
		return
	}
	_, _ = fmt.Fprintf(d.w, "%s: %s\n", d.prog, msg)
}

// Summary writes the run statistics as one line, e.g.
//
//	seek: 1,024 visited, 12 matched, 1 error, 0 skipped in 3ms
func (d *Diagnostics) Summary(stats types.RunStats) {
	line := fmt.Sprintf("%s visited, %s matched, %s, %s skipped in %s",
		humanize.Comma(stats.Visited),
		humanize.Comma(stats.Matched),
		plural(stats.Errors, "error", "errors"),
		humanize.Comma(stats.Skipped),
		stats.Elapsed.Round(time.Millisecond),
	)
	if d.color {
		_, _ = fmt.Fprintf(d.w, "%s %s\n", d.styles.Muted.Render(d.prog+":"), d.styles.Value.Render(line))
		return
	}
	_, _ = fmt.Fprintf(d.w, "%s: %s\n", d.prog, line)
}

func plural(n int64, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return humanize.Comma(n) + " " + many
}
