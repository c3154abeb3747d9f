package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Usage is printed when the positional arguments are missing
const Usage = "Usage: addtest <ClassName> <FirstTestName>"

// Formatter formats and displays output
type Formatter struct {
	out   io.Writer
	err   io.Writer
	quiet bool
}

// NewFormatter creates a new Formatter writing status to out and problems to errOut
func NewFormatter(out, errOut io.Writer, quiet bool) *Formatter {
	return &Formatter{
		out:   out,
		err:   errOut,
		quiet: quiet,
	}
}

// PrintUsage prints the one-line usage message
func (f *Formatter) PrintUsage() {
	fmt.Fprintln(f.err, Usage)
}

// PrintCreated reports a written file
func (f *Formatter) PrintCreated(path string) {
	if f.quiet {
		return
	}
	color.New(color.FgGreen).Fprintf(f.out, "✓ Created %s\n", path)
}

// PrintWarning reports a problem that does not stop generation
func (f *Formatter) PrintWarning(format string, args ...interface{}) {
	color.New(color.FgYellow).Fprintf(f.err, "! "+format+"\n", args...)
}

// PrintContent writes generated content verbatim
func (f *Formatter) PrintContent(content string) {
	fmt.Fprint(f.out, content)
}

// PrintError reports a fatal error
func PrintError(w io.Writer, err error) {
	color.New(color.FgRed).Fprintf(w, "Error: %v\n", err)
}
