package guard

import (
	"fmt"
	"io"
	"strings"
)

var _ fmt.Formatter = (*Error)(nil)

// Format implements fmt.Formatter.
//
// %s and %v render the compact form produced by Error. %q renders that form
// quoted. %+v renders the verbose report: the error line followed by its
// cause chain, or by its implicit context when no cause was set and the
// context is not suppressed. This is the form meant for logging unhandled
// errors, since it is the only one that surfaces the implicit context.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			io.WriteString(s, e.verbose())
			return
		}
		io.WriteString(s, e.Error())
	case 's':
		io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

// verbose renders the error head without its inline cause suffix, then one
// chain: the cause when present, else the unsuppressed context. The chain
// member is itself rendered verbosely, so nested Errors expand recursively.
func (e *Error) verbose() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", e.className(), e.message)
	switch {
	case e.cause != nil:
		fmt.Fprintf(&b, "\ncause: %+v", e.cause)
	case e.context != nil && !e.hideContext:
		fmt.Fprintf(&b, "\ncontext: %+v", e.context)
	}
	return b.String()
}
