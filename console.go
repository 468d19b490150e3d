package erronaut

import (
	"errors"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"pkt.systems/erronaut/theme"
)

// Options controls how a Console renders panels.
type Options struct {
	// NoColor forces colour escape codes off regardless of terminal detection.
	NoColor bool

	// ForceColor bypasses terminal detection and emits colour even when the
	// destination is not a TTY. NoColor wins when both are set.
	ForceColor bool

	// Width fixes the outer panel width in columns. When zero the width is the
	// terminal width minus Margin, or 80 columns minus Margin off a terminal.
	Width int

	// Margin is subtracted from the terminal width. Values <= 0 use 10.
	Margin int

	// TimeFormat overrides the title timestamp layout. Defaults to
	// time.DateTime.
	TimeFormat string

	// UTC renders title timestamps in UTC.
	UTC bool

	// DisableTimestamp drops the timestamp from the title.
	DisableTimestamp bool

	// DisableLocation drops the "at ..." line.
	DisableLocation bool

	// Theme pins the colours of this console. When nil the process-wide
	// theme (see theme.Set) is read on every panel.
	Theme *theme.Theme
}

// Console renders panels to a writer. A Console is safe for concurrent use;
// every panel is written with a single Write call.
//
// Rendering or writing a panel never panics and never returns an error: such
// faults are dropped and counted, see Faults.
type Console struct {
	w          io.Writer
	opts       Options
	margin     int
	timeFormat string
	renderer   *lipgloss.Renderer

	mu     sync.Mutex
	faults atomic.Uint64
}

// NewConsole returns a Console writing to w with default options.
func NewConsole(w io.Writer) *Console {
	return NewConsoleWithOptions(w, Options{})
}

// NewConsoleWithOptions returns a Console writing to w.
func NewConsoleWithOptions(w io.Writer, opts Options) *Console {
	if w == nil {
		w = io.Discard
	}
	margin := opts.Margin
	if margin <= 0 {
		margin = defaultMargin
	}
	timeFormat := opts.TimeFormat
	if timeFormat == "" {
		timeFormat = time.DateTime
	}
	renderer := lipgloss.NewRenderer(w)
	colorEnabled := !opts.NoColor && (opts.ForceColor || (isTerminal(w) && os.Getenv("NO_COLOR") == ""))
	if colorEnabled {
		profile := renderer.ColorProfile()
		if profile == termenv.Ascii {
			profile = termenv.ANSI
		}
		renderer.SetColorProfile(profile)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return &Console{
		w:          w,
		opts:       opts,
		margin:     margin,
		timeFormat: timeFormat,
		renderer:   renderer,
	}
}

// Info prints a blue panel. keyvals are alternating detail keys and values.
func (c *Console) Info(msg string, keyvals ...any) {
	c.emit(KindInfo, "", Msg(msg, keyvals...), CallerLocation())
}

// Warn prints a yellow panel.
func (c *Console) Warn(msg string, keyvals ...any) {
	c.emit(KindWarn, "", Msg(msg, keyvals...), CallerLocation())
}

// Debug prints a green panel.
func (c *Console) Debug(msg string, keyvals ...any) {
	c.emit(KindDebug, "", Msg(msg, keyvals...), CallerLocation())
}

// Error builds an *Error, prints it as a red panel and returns it so it can be
// returned or panicked with. The interceptor will not print it again.
func (c *Console) Error(msg string, keyvals ...any) *Error {
	e := newError(ErrorClass, msg, collectFields(keyvals), nil)
	e.printed.Store(true)
	c.ReportError(e)
	return e
}

// Report prints p as a panel of the given kind, attributed to the caller.
func (c *Console) Report(kind Kind, p Payload) {
	c.emit(kind, "", p, CallerLocation())
}

// ReportError prints err as an error panel. An *Error anywhere in the chain
// contributes its class, fields and construction site; other errors are
// attributed to the caller. A nil err prints nothing.
func (c *Console) ReportError(err error) {
	c.reportError(err, nil)
}

// reportError locates errors without a construction site at origin, or at the
// caller when origin is nil.
func (c *Console) reportError(err error, origin []uintptr) {
	if err == nil {
		return
	}
	title, p, location := describeError(err)
	if location == "" {
		if origin != nil {
			location = locationFromPCs(origin)
		} else {
			location = CallerLocation()
		}
	}
	c.emit(KindError, title, p, location)
}

// Render returns the styled panel for p without printing it.
func (c *Console) Render(kind Kind, p Payload, location string) string {
	return c.renderPanel(kind, buildPanelText(kind, "", p, c.location(location), c.timestamp()))
}

// Format returns the panel content for p as plain text: no border, no colour.
func (c *Console) Format(kind Kind, p Payload, location string) string {
	return buildPanelText(kind, "", p, c.location(location), c.timestamp()).body(textStyles{})
}

// Faults returns how many panels were dropped because rendering or writing
// them failed.
func (c *Console) Faults() uint64 {
	if c == nil {
		return 0
	}
	return c.faults.Load()
}

func (c *Console) emit(kind Kind, title string, p Payload, location string) {
	if c == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			c.faults.Add(1)
		}
	}()
	out := c.renderPanel(kind, buildPanelText(kind, title, p, c.location(location), c.timestamp()))
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := io.WriteString(c.w, out); err != nil {
		c.faults.Add(1)
	}
}

func (c *Console) timestamp() string {
	if c.opts.DisableTimestamp {
		return ""
	}
	now := time.Now()
	if c.opts.UTC {
		now = now.UTC()
	}
	return now.Format(c.timeFormat)
}

func (c *Console) location(location string) string {
	if c.opts.DisableLocation {
		return ""
	}
	return location
}

// describeError extracts the panel title, payload and location of err. The
// location is empty when err carries no construction site.
func describeError(err error) (string, Payload, string) {
	var e *Error
	if !errors.As(err, &e) {
		return ErrorClass.Name(), Payload{Message: err.Error()}, ""
	}
	p := Payload{Message: e.msg, Fields: e.fields}
	if e.cause != nil && !e.inline {
		p.Fields = append(cloneFields(p.Fields), Field{Key: "cause", Value: e.cause.Error()})
	}
	if error(e) != err {
		p.Message = err.Error()
	}
	return e.class.Name(), p, e.Location()
}

func cloneFields(src Fields) Fields {
	if len(src) == 0 {
		return nil
	}
	dst := make(Fields, len(src))
	copy(dst, src)
	return dst
}
