package diag

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/tethal/natrix/pkg/source"
)

// Kind distinguishes fatal diagnostics from advisory ones. natrix's parser
// only ever raises KindError; KindWarning exists so a handler can reuse the
// same wire format for non-fatal notices.
type Kind int

const (
	KindError Kind = iota
	KindWarning
)

func (k Kind) String() string {
	if k == KindWarning {
		return "warning"
	}
	return "error"
}

// NoColor disables ANSI coloring in Show regardless of whether stderr is a
// terminal. Set by the -no-color CLI flag.
var NoColor bool

// Error is a diagnostic tied to a span of a Source. It implements both the
// error and Shower interfaces.
type Error struct {
	Src *source.Source
	Kind
	Ranging
	Message string
}

// NewError builds an Error spanning r within src.
func NewError(src *source.Source, kind Kind, r Ranger, message string) *Error {
	return &Error{Src: src, Kind: kind, Ranging: r.Range(), Message: message}
}

// Errorf is like NewError, but formats Message with fmt.Sprintf.
func Errorf(src *source.Source, kind Kind, r Ranger, format string, args ...interface{}) *Error {
	return NewError(src, kind, r, fmt.Sprintf(format, args...))
}

// LineCol returns the 1-based line and column of the start of the error's
// range.
func (e *Error) LineCol() (line, col int) {
	line = e.Src.LineNumber(e.From)
	col = e.From - e.Src.LineStart(line) + 1
	return
}

func (e *Error) sourceLine(line int) string {
	return e.Src.Code[e.Src.LineStart(line):e.Src.LineEnd(line)]
}

// caretWidth is the width of the caret strip: max(1, To-From).
func (e *Error) caretWidth() int {
	if w := e.To - e.From; w > 1 {
		return w
	}
	return 1
}

// Error returns the plain-text, uncolored rendering of the diagnostic:
//
//	filename:line:col: kind: message
//	<source line>
//	<caret strip>
func (e *Error) Error() string {
	return e.render(false, "")
}

// Show renders the diagnostic, colorizing the caret strip when coloring is
// enabled (stderr is a terminal and NoColor is false). indent is prepended
// to the second and third lines, so callers can nest it under other text.
func (e *Error) Show(indent string) string {
	return e.render(colorEnabled(), indent)
}

// ShowPlain is Show with coloring forced off, for callers (tests, scripts
// capturing stderr) that need the exact uncolored text.
func (e *Error) ShowPlain(indent string) string {
	return e.render(false, indent)
}

func (e *Error) render(color bool, indent string) string {
	line, col := e.LineCol()
	var b strings.Builder
	fmt.Fprintf(&b, "%s:%d:%d: %s: %s\n", e.Src.Name, line, col, e.Kind, e.Message)
	b.WriteString(indent)
	b.WriteString(e.sourceLine(line))
	b.WriteByte('\n')
	b.WriteString(indent)
	b.WriteString(strings.Repeat(" ", col-1))
	caret := strings.Repeat("^", e.caretWidth())
	if color {
		b.WriteString(culpritLineBegin)
		b.WriteString(caret)
		b.WriteString(culpritLineEnd)
	} else {
		b.WriteString(caret)
	}
	return b.String()
}

func colorEnabled() bool {
	if NoColor {
		return false
	}
	return isatty.IsTerminal(os.Stderr.Fd())
}
