package erronaut

import (
	"context"
	"log/slog"
	"runtime"
)

// HandlerOptions configures a slog Handler.
type HandlerOptions struct {
	// Level is the minimum level printed. Defaults to slog.LevelInfo.
	Level slog.Leveler
}

// Handler is a slog.Handler that prints every record as a panel. Levels map
// to kinds (error and above → error, warn → warn, info → info, below info →
// debug), attributes become detail fields and groups become nested records.
type Handler struct {
	console *Console
	opts    HandlerOptions
	fields  Fields
	groups  []string
}

// NewHandler returns a Handler printing to c, or to Default() when c is nil.
func NewHandler(c *Console, opts *HandlerOptions) *Handler {
	h := &Handler{console: c}
	if opts != nil {
		h.opts = *opts
	}
	return h
}

func (h *Handler) target() *Console {
	if h.console != nil {
		return h.console
	}
	return Default()
}

// Enabled reports whether level reaches the handler's minimum level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

// Handle prints r. It never returns an error; faults are counted by the
// console.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	fields := h.fields
	if r.NumAttrs() > 0 {
		attrs := make([]slog.Attr, 0, r.NumAttrs())
		r.Attrs(func(a slog.Attr) bool {
			attrs = append(attrs, a)
			return true
		})
		if add := attrsToFields(attrs); len(add) > 0 {
			fields = insertAt(fields, h.groups, add)
		}
	}
	location := ""
	if r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		if frame.Function != "" {
			location = formatFrame(frame)
		}
	}
	if location == "" {
		location = CallerLocation()
	}
	h.target().emit(kindForLevel(r.Level), "", Payload{Message: r.Message, Fields: fields}, location)
	return nil
}

// WithAttrs returns a handler whose panels include attrs.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	add := attrsToFields(attrs)
	if len(add) == 0 {
		return h
	}
	clone := *h
	clone.fields = insertAt(h.fields, h.groups, add)
	return &clone
}

// WithGroup returns a handler that nests later attributes under name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string(nil), h.groups...), name)
	return &clone
}

func kindForLevel(level slog.Level) Kind {
	switch {
	case level >= slog.LevelError:
		return KindError
	case level >= slog.LevelWarn:
		return KindWarn
	case level >= slog.LevelInfo:
		return KindInfo
	default:
		return KindDebug
	}
}

func attrsToFields(attrs []slog.Attr) Fields {
	var out Fields
	for _, a := range attrs {
		a.Value = a.Value.Resolve()
		if a.Equal(slog.Attr{}) {
			continue
		}
		if a.Value.Kind() != slog.KindGroup {
			out = append(out, Field{Key: a.Key, Value: a.Value.Any()})
			continue
		}
		nested := attrsToFields(a.Value.Group())
		if len(nested) == 0 {
			continue
		}
		if a.Key == "" {
			out = append(out, nested...)
			continue
		}
		out = append(out, Field{Key: a.Key, Value: nested})
	}
	return out
}

// insertAt appends add to the record found by following path, creating the
// nested records on the way. fs is not modified.
func insertAt(fs Fields, path []string, add Fields) Fields {
	out := cloneFields(fs)
	if len(path) == 0 {
		return append(out, add...)
	}
	for idx := len(out) - 1; idx >= 0; idx-- {
		if out[idx].Key != path[0] {
			continue
		}
		if nested, ok := out[idx].Value.(Fields); ok {
			out[idx].Value = insertAt(nested, path[1:], add)
			return out
		}
	}
	return append(out, Field{Key: path[0], Value: insertAt(nil, path[1:], add)})
}
