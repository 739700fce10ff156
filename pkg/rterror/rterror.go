// Package rterror implements the single non-catchable panic path used for
// every runtime fault natrix can raise (division by zero, an undefined
// variable, a type that doesn't support an operation, and so on). There is
// no try/except in the language, so this is the only kind of error the
// evaluator ever produces once parsing has succeeded.
package rterror

import (
	"fmt"
	"runtime"

	"golang.org/x/xerrors"
)

// Fault is the payload of the panic raised by Panicf. It carries the call
// site (file, line, function) the way the original panic(line, file, func,
// fmt, ...) took them as explicit arguments, plus an xerrors.Frame so the
// fault composes with xerrors' %+v detail formatting if it's ever wrapped.
type Fault struct {
	xerrors.Frame
	Function string
	File     string
	Line     int
	Message  string
}

// Panicf formats message and panics with a Fault tagging the caller of
// Panicf as the fault's origin.
func Panicf(format string, args ...interface{}) {
	f := Fault{Frame: xerrors.Caller(1), Message: fmt.Sprintf(format, args...)}
	if pc, file, line, ok := runtime.Caller(1); ok {
		f.File, f.Line = file, line
		if fn := runtime.FuncForPC(pc); fn != nil {
			f.Function = fn.Name()
		}
	}
	panic(f)
}

// Error reproduces log_message_v's "file:line: kind in func: message"
// layout as a single line, the only fatal output a Fault produces.
func (f Fault) Error() string {
	if f.Function == "" {
		return fmt.Sprintf("fault: %s", f.Message)
	}
	return fmt.Sprintf("%s:%d: fault in %s: %s", f.File, f.Line, f.Function, f.Message)
}

// FormatError implements xerrors.Formatter so that "%+v" on a Fault prints
// the message followed by the captured call-site frame.
func (f Fault) FormatError(p xerrors.Printer) error {
	p.Print(f.Message)
	f.Frame.Format(p)
	return nil
}

func (f Fault) Format(s fmt.State, v rune) { xerrors.FormatError(f, s, v) }
