package erronaut

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync/atomic"
)

// Class names a family of errors. Classes are error values so they work as
// errors.Is targets:
//
//	err := erronaut.NewClass(erronaut.TypeError, "want string, got int")
//	errors.Is(err, erronaut.TypeError)  // true
//	errors.Is(err, erronaut.ErrorClass) // true, every class is an ErrorClass
type Class struct {
	name string
}

// Error returns the class name.
func (c *Class) Error() string { return c.name }

// Name returns the class name shown in panel titles.
func (c *Class) Name() string {
	if c == nil {
		return ErrorClass.name
	}
	return c.name
}

// Built-in error classes.
var (
	ErrorClass     = &Class{name: "Error"}
	TypeError      = &Class{name: "TypeError"}
	ReferenceError = &Class{name: "ReferenceError"}
	SyntaxError    = &Class{name: "SyntaxError"}
	RangeError     = &Class{name: "RangeError"}
	URIError       = &Class{name: "URIError"}
	EvalError      = &Class{name: "EvalError"}
)

// Error is an error that prints itself as a red panel when it is constructed.
// It remembers where it was constructed and carries ordered detail fields.
type Error struct {
	class   *Class
	msg     string
	fields  Fields
	cause   error
	pcs     []uintptr
	printed atomic.Bool
	// inline is set when msg already contains the cause text (Errorf).
	inline bool
}

// New constructs an *Error of ErrorClass, prints it through the installed
// interceptor and returns it. keyvals are alternating detail keys and values;
// an empty msg becomes UnknownErrorMessage.
func New(msg string, keyvals ...any) *Error {
	e := newError(ErrorClass, msg, collectFields(keyvals), nil)
	current().report(e, nil)
	return e
}

// NewClass is New for a specific class.
func NewClass(class *Class, msg string, keyvals ...any) *Error {
	e := newError(class, msg, collectFields(keyvals), nil)
	current().report(e, nil)
	return e
}

// Errorf is New with a formatted message. A %w verb makes the wrapped error
// the cause.
func Errorf(format string, args ...any) *Error {
	wrapped := fmt.Errorf(format, args...)
	cause := errors.Unwrap(wrapped)
	if _, ok := wrapped.(interface{ Unwrap() []error }); ok {
		cause = wrapped
	}
	e := newError(ErrorClass, wrapped.Error(), nil, cause)
	e.inline = cause != nil
	current().report(e, nil)
	return e
}

// Wrap constructs an *Error around cause, prints it and returns it. Error()
// reads "msg: cause".
func Wrap(cause error, msg string, keyvals ...any) *Error {
	e := newError(ErrorClass, msg, collectFields(keyvals), cause)
	current().report(e, nil)
	return e
}

// Reject turns an arbitrary rejection reason into an error without printing
// it. Errors pass through unchanged; other values become an *Error whose
// message is fmt.Sprint(reason).
func Reject(reason any) error {
	if err, ok := reason.(error); ok {
		return err
	}
	return newError(ErrorClass, fmt.Sprint(reason), nil, nil)
}

func newError(class *Class, msg string, fields Fields, cause error) *Error {
	if class == nil {
		class = ErrorClass
	}
	if msg == "" {
		msg = UnknownErrorMessage
	}
	return &Error{
		class:  class,
		msg:    msg,
		fields: fields,
		cause:  cause,
		pcs:    capturePCs(1),
	}
}

func (e *Error) Error() string {
	if e.cause != nil && !e.inline && e.cause.Error() != "" {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

// Unwrap returns the cause, if any.
func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is e's class or ErrorClass.
func (e *Error) Is(target error) bool {
	c, ok := target.(*Class)
	if !ok {
		return false
	}
	return c == e.class || c == ErrorClass
}

// Class returns the error class.
func (e *Error) Class() *Class { return e.class }

// Message returns the message without the cause.
func (e *Error) Message() string { return e.msg }

// Fields returns a copy of the detail fields.
func (e *Error) Fields() Fields { return cloneFields(e.fields) }

// Location describes where e was constructed, or UnknownLocation.
func (e *Error) Location() string { return locationFromPCs(e.pcs) }

// StackFrames returns the construction stack, starting at the first frame
// outside erronaut.
func (e *Error) StackFrames() []runtime.Frame {
	if len(e.pcs) == 0 {
		return nil
	}
	frames := runtime.CallersFrames(e.pcs)
	out := make([]runtime.Frame, 0, len(e.pcs))
	started := false
	for {
		frame, more := frames.Next()
		if started || (frame.Function != "" && !isInternalFrame(frame.Function)) {
			started = true
			out = append(out, frame)
		}
		if !more {
			break
		}
	}
	return out
}

// Format implements fmt.Formatter. %s and %v print Error(); %+v adds the
// class, fields, cause and construction stack on separate lines.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.formatVerbose(s)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

func (e *Error) formatVerbose(w io.Writer) {
	_, _ = fmt.Fprintf(w, "%s: %s", e.class.Name(), e.msg)
	for _, line := range appendDetails(nil, e.fields, 0, nil) {
		_, _ = io.WriteString(w, "\n"+line.render(textStyles{}))
	}
	if e.cause != nil {
		_, _ = fmt.Fprintf(w, "\ncause: %+v", e.cause)
	}
	frames := e.StackFrames()
	if len(frames) > 0 {
		_, _ = io.WriteString(w, "\nstack:")
		for _, fr := range frames {
			_, _ = fmt.Fprintf(w, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
		}
	}
}
